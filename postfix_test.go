package shunting_test

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"
	"github.com/zephyrtronium/shunting"
)

// rpnText renders a token sequence as space-separated source text.
func rpnText(toks []shunting.Token) string {
	texts := make([]string, len(toks))
	for i, tok := range toks {
		texts[i] = tok.Text
	}
	return strings.Join(texts, " ")
}

func TestToPostfix(t *testing.T) {
	cases := []struct {
		name string
		src  string
		want string
	}{
		{"empty", "", ""},
		{"num", "3", "3"},
		{"add", "3 + 4", "3 4 +"},
		{"precedence", "3 + 4 * 2", "3 4 2 * +"},
		{"precedence-left", "3 * 4 + 2", "3 4 * 2 +"},
		{"parens", "(3 + 4) * 2", "3 4 + 2 *"},
		{"parens-rhs", "2 * (3 + 4)", "2 3 4 + *"},
		{"nested-parens", "((1 + 2) * (3 + 4))", "1 2 + 3 4 + *"},
		{"left-assoc-sub", "8 - 4 - 2", "8 4 - 2 -"},
		{"left-assoc-div", "8 / 4 / 2", "8 4 / 2 /"},
		{"sub-div", "8 - 4 / 2", "8 4 2 / -"},
		{"mixed", "5 + 1 * 2 - 3", "5 1 2 * + 3 -"},
		{"glued", "3+4*2", "3 4 2 * +"},
		{"redundant-parens", "(3)", "3"},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			toks, err := shunting.TokenizeString(c.src)
			require.NoError(t, err)
			rpn, err := shunting.ToPostfix(toks)
			require.NoError(t, err)
			require.Equal(t, c.want, rpnText(rpn), "wrong postfix for %q", c.src)
		})
	}
}

func TestToPostfixDeterministic(t *testing.T) {
	toks, err := shunting.TokenizeString("1 + 2 * (3 - 4) / 5")
	require.NoError(t, err)
	first, err := shunting.ToPostfix(toks)
	require.NoError(t, err)
	second, err := shunting.ToPostfix(toks)
	require.NoError(t, err)
	if diff := cmp.Diff(first, second); diff != "" {
		t.Errorf("conversion is not deterministic (-first +second):\n%s", diff)
	}
}

func TestToPostfixUnbalanced(t *testing.T) {
	cases := []struct {
		name  string
		src   string
		paren string
		col   int
	}{
		{"unclosed", "(3 + 4", "(", 1},
		{"unmatched-close", "3 + 4)", ")", 6},
		{"extra-close", "(1 + 2))", ")", 8},
		{"extra-open", "((1 + 2)", "(", 1},
		{"bare-close", ")", ")", 1},
		{"bare-open", "(", "(", 1},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			toks, err := shunting.TokenizeString(c.src)
			require.NoError(t, err)
			rpn, err := shunting.ToPostfix(toks)
			require.Nil(t, rpn)
			var ue *shunting.UnbalancedParenthesesError
			require.ErrorAs(t, err, &ue)
			require.Equal(t, c.paren, ue.Paren, "wrong side in %v", err)
			require.Equal(t, c.col, ue.Pos(), "wrong position in %v", err)
		})
	}
}

// Numbers keep their input order and positions through conversion.
func TestToPostfixPreservesTokens(t *testing.T) {
	toks, err := shunting.TokenizeString("3 + 4 * 2")
	require.NoError(t, err)
	rpn, err := shunting.ToPostfix(toks)
	require.NoError(t, err)
	want := []shunting.Token{toks[0], toks[2], toks[4], toks[3], toks[1]}
	if diff := cmp.Diff(want, rpn); diff != "" {
		t.Errorf("converted tokens differ from input tokens (-want +got):\n%s", diff)
	}
}
