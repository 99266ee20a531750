package calc_test

import (
	"context"
	"fmt"
	"testing"

	"pgregory.net/rapid"

	"github.com/agbru/fraccalc/internal/calc"
	"github.com/agbru/fraccalc/internal/fraction"
)

func drawFraction(t *rapid.T, label string) (int32, int32) {
	n := rapid.Int32Range(-1000, 1000).Draw(t, label+"_num")
	d := rapid.Int32Range(1, 1000).Draw(t, label+"_den")
	if rapid.Bool().Draw(t, label+"_negden") {
		d = -d
	}
	return n, d
}

// TestProperty_EvalMatchesApply checks that the text form of a binary
// operation evaluates to what the library computes directly.
func TestProperty_EvalMatchesApply(t *testing.T) {
	ops := map[fraction.Op]string{
		fraction.OpAdd: "+",
		fraction.OpSub: "-",
		fraction.OpMul: "*",
		fraction.OpDiv: "/",
	}
	rapid.Check(t, func(t *rapid.T) {
		an, ad := drawFraction(t, "a")
		bn, bd := drawFraction(t, "b")
		op := rapid.SampledFrom([]fraction.Op{fraction.OpAdd, fraction.OpSub, fraction.OpMul, fraction.OpDiv}).Draw(t, "op")

		a, b := fraction.MustNew(an, ad), fraction.MustNew(bn, bd)
		want, wantErr := fraction.Apply(op, a, b)

		line := fmt.Sprintf("(%d/%d) %s (%d/%d)", an, ad, ops[op], bn, bd)
		got, err := calc.NewSession().Eval(context.Background(), line)
		if (err != nil) != (wantErr != nil) {
			t.Fatalf("%s: error mismatch: eval %v, apply %v", line, err, wantErr)
		}
		if err == nil && got.Value != want {
			t.Fatalf("%s = %v, want %v", line, got.Value, want)
		}
	})
}

// TestProperty_EvalMatchesCompare checks every relation against Compare.
func TestProperty_EvalMatchesCompare(t *testing.T) {
	rels := map[fraction.Rel]string{
		fraction.RelEq: "==",
		fraction.RelNe: "!=",
		fraction.RelLt: "<",
		fraction.RelGt: ">",
		fraction.RelLe: "<=",
		fraction.RelGe: ">=",
	}
	rapid.Check(t, func(t *rapid.T) {
		an, ad := drawFraction(t, "a")
		bn, bd := drawFraction(t, "b")
		rel := rapid.SampledFrom([]fraction.Rel{
			fraction.RelEq, fraction.RelNe, fraction.RelLt,
			fraction.RelGt, fraction.RelLe, fraction.RelGe,
		}).Draw(t, "rel")

		line := fmt.Sprintf("%d/%d %s %d/%d", an, ad, rels[rel], bn, bd)
		got, err := calc.NewSession().Eval(context.Background(), line)
		if err != nil {
			t.Fatalf("%s: %v", line, err)
		}
		want := fraction.Compare(rel, fraction.MustNew(an, ad), fraction.MustNew(bn, bd))
		if got.Truth != want {
			t.Fatalf("%s = %v, want %v", line, got.Truth, want)
		}
	})
}

// TestProperty_PostfixThenPrefixRoundTrips checks that x++ followed by --x
// restores the variable.
func TestProperty_PostfixThenPrefixRoundTrips(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		n, d := drawFraction(t, "x")
		s := calc.NewSession()
		ctx := context.Background()
		if _, err := s.Eval(ctx, fmt.Sprintf("x = %d/%d", n, d)); err != nil {
			t.Fatal(err)
		}
		if _, err := s.Eval(ctx, "x++"); err != nil {
			t.Fatal(err)
		}
		res, err := s.Eval(ctx, "--x")
		if err != nil {
			t.Fatal(err)
		}
		if want := fraction.MustNew(n, d); res.Value != want {
			t.Fatalf("got %v, want %v", res.Value, want)
		}
	})
}
