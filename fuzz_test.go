package shunting_test

import (
	"testing"

	"github.com/zephyrtronium/shunting"
)

func FuzzEvalString(f *testing.F) {
	f.Add("3 + 4 * 2")
	f.Add("(3 + 4")
	f.Add("5 0 /")
	f.Add("1e-3+.5")
	f.Fuzz(func(t *testing.T, s string) {
		shunting.EvalString(s)
	})
}

func FuzzToPostfix(f *testing.F) {
	f.Add("3 + 4 * 2")
	f.Add("((1 + 2) * 3)")
	f.Add(")(")
	f.Fuzz(func(t *testing.T, s string) {
		toks, err := shunting.TokenizeString(s)
		if err != nil {
			return
		}
		rpn, err := shunting.ToPostfix(toks)
		if err != nil {
			return
		}
		// Postfix form needs no parentheses, and conversion only reorders.
		nums := 0
		for _, tok := range toks {
			if tok.Kind == shunting.TokenNumber {
				nums++
			}
		}
		got := 0
		for _, tok := range rpn {
			switch tok.Kind {
			case shunting.TokenLeftParen, shunting.TokenRightParen:
				t.Errorf("parenthesis %v in postfix of %q", tok, s)
			case shunting.TokenNumber:
				got++
			}
		}
		if got != nums {
			t.Errorf("postfix of %q has %d numbers, input has %d", s, got, nums)
		}
	})
}
