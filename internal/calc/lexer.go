package calc

import "fmt"

type tokenKind int

const (
	tokEOF tokenKind = iota
	tokInt
	tokDecimal
	tokIdent
	tokPlus
	tokMinus
	tokStar
	tokSlash
	tokLParen
	tokRParen
	tokAssign
	tokEq
	tokNe
	tokLt
	tokGt
	tokLe
	tokGe
	tokInc
	tokDec
)

type token struct {
	kind tokenKind
	text string
	pos  int
}

// twoCharTokens are checked before single characters so that "<=" wins
// over "<". "--" always lexes as a decrement; write "1 - -2" to subtract a
// negative number.
var twoCharTokens = map[string]tokenKind{
	"==": tokEq,
	"!=": tokNe,
	"<=": tokLe,
	">=": tokGe,
	"++": tokInc,
	"--": tokDec,
}

var oneCharTokens = map[byte]tokenKind{
	'+': tokPlus,
	'-': tokMinus,
	'*': tokStar,
	'/': tokSlash,
	'(': tokLParen,
	')': tokRParen,
	'=': tokAssign,
	'<': tokLt,
	'>': tokGt,
}

// lex splits a statement into tokens. A '#' starts a comment that runs to
// the end of the line. The returned slice always ends with tokEOF.
func lex(input string) ([]token, error) {
	var tokens []token
	i := 0
	for i < len(input) {
		c := input[i]
		switch {
		case c == ' ' || c == '\t' || c == '\r' || c == '\n':
			i++
		case c == '#':
			i = len(input)
		case isDigit(c) || (c == '.' && i+1 < len(input) && isDigit(input[i+1])):
			start := i
			for i < len(input) && isDigit(input[i]) {
				i++
			}
			kind := tokInt
			if i < len(input) && input[i] == '.' {
				kind = tokDecimal
				i++
				for i < len(input) && isDigit(input[i]) {
					i++
				}
			}
			tokens = append(tokens, token{kind: kind, text: input[start:i], pos: start})
		case isIdentStart(c):
			start := i
			for i < len(input) && (isIdentStart(input[i]) || isDigit(input[i])) {
				i++
			}
			tokens = append(tokens, token{kind: tokIdent, text: input[start:i], pos: start})
		default:
			if i+1 < len(input) {
				if kind, ok := twoCharTokens[input[i:i+2]]; ok {
					tokens = append(tokens, token{kind: kind, text: input[i : i+2], pos: i})
					i += 2
					continue
				}
			}
			kind, ok := oneCharTokens[c]
			if !ok {
				return nil, &SyntaxError{Pos: i, Msg: fmt.Sprintf("unexpected character %q", c)}
			}
			tokens = append(tokens, token{kind: kind, text: input[i : i+1], pos: i})
			i++
		}
	}
	return append(tokens, token{kind: tokEOF, pos: len(input)}), nil
}

func isDigit(c byte) bool {
	return '0' <= c && c <= '9'
}

func isIdentStart(c byte) bool {
	return c == '_' || ('a' <= c && c <= 'z') || ('A' <= c && c <= 'Z')
}
