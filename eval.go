package shunting

import (
	"io"
	"strings"

	"github.com/zephyrtronium/shunting/stack"
)

// EvalPostfix evaluates a postfix token sequence and returns the single
// value it denotes. Numbers push onto an operand stack; each operator pops
// its right operand, then its left, and pushes the result. Exactly one value
// must remain when the input is exhausted.
//
// The sequence may come from ToPostfix or be supplied directly. Panics on
// parenthesis tokens, which cannot occur in postfix form.
func EvalPostfix(tokens []Token) (float64, error) {
	var operands stack.Stack[float64]
	for _, tok := range tokens {
		switch tok.Kind {
		case TokenNumber:
			operands.Push(tok.Value)
		case TokenOperator:
			if operands.Len() < 2 {
				return 0, &InsufficientOperandsError{Col: tok.Pos, Op: tok.Text, Have: operands.Len()}
			}
			b, _ := operands.Pop()
			a, _ := operands.Pop()
			var r float64
			switch tok.Text {
			case "+":
				r = a + b
			case "-":
				r = a - b
			case "*":
				r = a * b
			case "/":
				if b == 0 {
					return 0, &DivisionByZeroError{Col: tok.Pos}
				}
				r = a / b
			default:
				panic("shunting: invalid operator: " + tok.String())
			}
			operands.Push(r)
		default:
			panic("shunting: non-postfix token: " + tok.String())
		}
	}
	if operands.Len() != 1 {
		return 0, &MalformedExpressionError{Left: operands.Len()}
	}
	r, _ := operands.Pop()
	return r, nil
}

// Eval is a shortcut to tokenize, convert, and evaluate an infix expression
// read from src.
func Eval(src io.RuneScanner) (float64, error) {
	toks, err := Tokenize(src)
	if err != nil {
		return 0, err
	}
	rpn, err := ToPostfix(toks)
	if err != nil {
		return 0, err
	}
	return EvalPostfix(rpn)
}

// EvalString is a shortcut to evaluate a string expression.
func EvalString(src string) (float64, error) {
	return Eval(strings.NewReader(src))
}
