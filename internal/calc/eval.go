//go:generate mockgen -source=eval.go -destination=mocks/mock_evaluator.go -package=mocks

package calc

import (
	"context"
	"fmt"
	"sort"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/agbru/fraccalc/internal/fraction"
	"github.com/agbru/fraccalc/internal/logging"
)

const (
	ansName    = "ans"
	tracerName = "github.com/agbru/fraccalc/internal/calc"
)

// Evaluator evaluates statements against some variable state.
type Evaluator interface {
	// Eval parses and runs one statement.
	Eval(ctx context.Context, line string) (Result, error)
	// Variables lists the assigned variables sorted by name.
	Variables() []Binding
	// Reset forgets all variables and ans.
	Reset()
}

// Recorder receives one observation per evaluated statement. kind is
// "fraction" or "bool" on success and an ErrorKind value on failure.
type Recorder interface {
	ObserveEvaluation(kind string, elapsed time.Duration, err error)
}

// Option configures a Session.
type Option func(*Session)

// WithTracer overrides the tracer obtained from the global provider.
func WithTracer(tracer trace.Tracer) Option {
	return func(s *Session) { s.tracer = tracer }
}

// WithRecorder sets the metrics sink.
func WithRecorder(r Recorder) Option {
	return func(s *Session) { s.recorder = r }
}

// WithLogger sets the logger used for debug traces of each statement.
func WithLogger(l logging.Logger) Option {
	return func(s *Session) { s.logger = l }
}

// Session is a stateful Evaluator. It is not safe for concurrent use.
type Session struct {
	vars     map[string]fraction.Fraction
	ans      fraction.Fraction
	tracer   trace.Tracer
	recorder Recorder
	logger   logging.Logger
}

var _ Evaluator = (*Session)(nil)

// NewSession returns an empty session. ans starts at 0/1.
func NewSession(opts ...Option) *Session {
	s := &Session{
		vars:   make(map[string]fraction.Fraction),
		tracer: otel.Tracer(tracerName),
		logger: logging.Nop(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Eval implements Evaluator.
func (s *Session) Eval(ctx context.Context, line string) (Result, error) {
	_, span := s.tracer.Start(ctx, "calc.Eval", trace.WithAttributes(attribute.String("calc.statement", line)))
	defer span.End()

	start := time.Now()
	res, err := s.eval(ctx, line)
	elapsed := time.Since(start)

	kind := res.Kind.String()
	if err != nil {
		kind = ErrorKind(err)
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		s.logger.Debug("statement failed",
			logging.String("statement", line),
			logging.String("kind", kind),
			logging.Err(err))
	} else {
		span.SetAttributes(attribute.String("calc.result", res.String()))
		s.logger.Debug("statement evaluated",
			logging.String("statement", line),
			logging.String("result", res.String()),
			logging.Duration("elapsed", elapsed))
	}
	span.SetAttributes(attribute.String("calc.kind", kind))
	if s.recorder != nil {
		s.recorder.ObserveEvaluation(kind, elapsed, err)
	}
	return res, err
}

func (s *Session) eval(ctx context.Context, line string) (Result, error) {
	if err := ctx.Err(); err != nil {
		return Result{}, err
	}
	stmt, err := parse(line)
	if err != nil {
		return Result{}, err
	}
	res, err := stmt.exec(s)
	if err != nil {
		return Result{}, err
	}
	if res.Kind == KindFraction {
		s.ans = res.Value
	}
	return res, nil
}

// Variables implements Evaluator.
func (s *Session) Variables() []Binding {
	out := make([]Binding, 0, len(s.vars))
	for name, v := range s.vars {
		out = append(out, Binding{Name: name, Value: v})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out
}

// Reset implements Evaluator.
func (s *Session) Reset() {
	clear(s.vars)
	s.ans = fraction.Zero
}

func (s *Session) lookup(name string, pos int) (fraction.Fraction, error) {
	if name == ansName {
		return s.ans, nil
	}
	v, ok := s.vars[name]
	if !ok {
		return fraction.Fraction{}, fmt.Errorf("%q at column %d: %w", name, pos+1, ErrUnknownVariable)
	}
	return v, nil
}

func (l literal) eval(*Session) (fraction.Fraction, error) {
	return l.value, nil
}

func (d decimal) eval(*Session) (fraction.Fraction, error) {
	return fraction.FromFloat(d.value)
}

func (v variable) eval(s *Session) (fraction.Fraction, error) {
	return s.lookup(v.name, v.pos)
}

func (n negation) eval(s *Session) (fraction.Fraction, error) {
	x, err := n.operand.eval(s)
	if err != nil {
		return x, err
	}
	return x.Neg()
}

// eval routes a decimal operand through the scalar overloads.
func (b binary) eval(s *Session) (fraction.Fraction, error) {
	if d, ok := b.right.(decimal); ok {
		left, err := b.left.eval(s)
		if err != nil {
			return left, err
		}
		return fraction.ApplyFloat(b.op, left, d.value)
	}
	if d, ok := b.left.(decimal); ok {
		right, err := b.right.eval(s)
		if err != nil {
			return right, err
		}
		return fraction.FloatApply(b.op, d.value, right)
	}
	left, err := b.left.eval(s)
	if err != nil {
		return left, err
	}
	right, err := b.right.eval(s)
	if err != nil {
		return right, err
	}
	return fraction.Apply(b.op, left, right)
}

func (e exprStmt) exec(s *Session) (Result, error) {
	v, err := e.expr.eval(s)
	if err != nil {
		return Result{}, err
	}
	return Result{Kind: KindFraction, Value: v}, nil
}

func (c compareStmt) exec(s *Session) (Result, error) {
	var (
		truth bool
		err   error
	)
	if d, ok := c.right.(decimal); ok {
		var left fraction.Fraction
		if left, err = c.left.eval(s); err == nil {
			truth, err = fraction.CompareFloat(c.rel, left, d.value)
		}
	} else if d, ok := c.left.(decimal); ok {
		var right fraction.Fraction
		if right, err = c.right.eval(s); err == nil {
			truth, err = fraction.FloatCompare(c.rel, d.value, right)
		}
	} else {
		var left, right fraction.Fraction
		if left, err = c.left.eval(s); err != nil {
			return Result{}, err
		}
		if right, err = c.right.eval(s); err != nil {
			return Result{}, err
		}
		truth = fraction.Compare(c.rel, left, right)
	}
	if err != nil {
		return Result{}, err
	}
	return Result{Kind: KindBool, Truth: truth}, nil
}

func (a assignStmt) exec(s *Session) (Result, error) {
	v, err := a.value.eval(s)
	if err != nil {
		return Result{}, err
	}
	s.vars[a.name] = v
	return Result{Kind: KindFraction, Value: v, Name: a.name}, nil
}

// exec yields the new value for prefix forms and the old one for postfix
// forms. The variable is left untouched on overflow.
func (st stepStmt) exec(s *Session) (Result, error) {
	if st.name == ansName {
		return Result{}, &SyntaxError{Pos: st.pos, Msg: "cannot modify " + ansName}
	}
	v, err := s.lookup(st.name, st.pos)
	if err != nil {
		return Result{}, err
	}
	var out fraction.Fraction
	switch {
	case st.increment && st.prefix:
		out, err = v.Inc()
	case st.increment:
		out, err = v.PostInc()
	case st.prefix:
		out, err = v.Dec()
	default:
		out, err = v.PostDec()
	}
	if err != nil {
		return Result{}, fmt.Errorf("%s: %w", st.name, err)
	}
	s.vars[st.name] = v
	return Result{Kind: KindFraction, Value: out, Name: st.name}, nil
}
