package shunting

import "github.com/zephyrtronium/shunting/stack"

// ToPostfix converts an infix token sequence to the equivalent postfix (RPN)
// sequence using the Shunting Yard algorithm. Numbers pass straight to the
// output; operators wait on a stack until an operator of lower precedence
// (or equal precedence, as all operators here are left-associative) arrives
// or the expression ends. The conversion is deterministic and does not
// modify its input.
func ToPostfix(tokens []Token) ([]Token, error) {
	out := make([]Token, 0, len(tokens))
	var ops stack.Stack[Token]
	for _, tok := range tokens {
		switch tok.Kind {
		case TokenNumber:
			out = append(out, tok)
		case TokenLeftParen:
			ops.Push(tok)
		case TokenRightParen:
			for {
				top, ok := ops.Pop()
				if !ok {
					return nil, &UnbalancedParenthesesError{Col: tok.Pos, Paren: ")"}
				}
				if top.Kind == TokenLeftParen {
					// The pair matched; the parens themselves never reach
					// the output.
					break
				}
				out = append(out, top)
			}
		case TokenOperator:
			for {
				top, ok := ops.Peek()
				if !ok || top.Kind == TokenLeftParen || Precedence(top.Text) < Precedence(tok.Text) {
					break
				}
				ops.Pop()
				out = append(out, top)
			}
			ops.Push(tok)
		default:
			panic("shunting: invalid token: " + tok.String())
		}
	}
	for {
		top, ok := ops.Pop()
		if !ok {
			return out, nil
		}
		if top.Kind == TokenLeftParen {
			return nil, &UnbalancedParenthesesError{Col: top.Pos, Paren: "("}
		}
		out = append(out, top)
	}
}
