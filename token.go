package shunting

import "strconv"

// Token is a single lexical element of an expression. Tokens are immutable
// once produced; a []Token represents either infix or postfix form, and the
// form is tracked by the caller, not the sequence.
type Token struct {
	// Kind discriminates the token.
	Kind TokenKind
	// Text is the token as it appeared in the input.
	Text string
	// Value is the parsed numeric value of a Number token. It is zero for
	// every other kind.
	Value float64
	// Pos is the 1-based rune column at which the token starts.
	Pos int
}

func (t Token) String() string {
	return t.Kind.String() + ":" + t.Text + "@" + strconv.Itoa(t.Pos)
}

// TokenKind is the type of a token.
type TokenKind int8

const (
	TokenNone TokenKind = iota
	// TokenNumber is a real number literal.
	TokenNumber
	// TokenOperator is one of + - * /.
	TokenOperator
	// TokenLeftParen is (.
	TokenLeftParen
	// TokenRightParen is ).
	TokenRightParen
)

func (k TokenKind) String() string {
	switch k {
	case TokenNone:
		return "None"
	case TokenNumber:
		return "Number"
	case TokenOperator:
		return "Operator"
	case TokenLeftParen:
		return "LeftParen"
	case TokenRightParen:
		return "RightParen"
	default:
		return "TokenKind(" + strconv.Itoa(int(k)) + ")"
	}
}

// Operators contains the runes which are considered to be operators.
const Operators = "+-*/"

// Precedence returns the binding strength of a binary operator, higher
// binding tighter. All four operators are left-associative, so the converter
// pops on equal precedence. Unknown text has precedence 0.
func Precedence(op string) int {
	switch op {
	case "+", "-":
		return 1
	case "*", "/":
		return 2
	default:
		return 0
	}
}
