package shunting_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"
	"github.com/zephyrtronium/shunting"
)

func TestTokenize(t *testing.T) {
	num := func(text string, value float64, pos int) shunting.Token {
		return shunting.Token{Kind: shunting.TokenNumber, Text: text, Value: value, Pos: pos}
	}
	op := func(text string, pos int) shunting.Token {
		return shunting.Token{Kind: shunting.TokenOperator, Text: text, Pos: pos}
	}
	lparen := func(pos int) shunting.Token {
		return shunting.Token{Kind: shunting.TokenLeftParen, Text: "(", Pos: pos}
	}
	rparen := func(pos int) shunting.Token {
		return shunting.Token{Kind: shunting.TokenRightParen, Text: ")", Pos: pos}
	}
	cases := []struct {
		name string
		src  string
		want []shunting.Token
	}{
		{"empty", "", nil},
		{"spaces", " \t \r\n ", nil},
		{"zero", "0", []shunting.Token{num("0", 0, 1)}},
		{"int", "9876543210", []shunting.Token{num("9876543210", 9876543210, 1)}},
		{"two-nums", "1 0", []shunting.Token{num("1", 1, 1), num("0", 0, 3)}},
		{"real", "1.5", []shunting.Token{num("1.5", 1.5, 1)}},
		{"leading-dot", ".25", []shunting.Token{num(".25", 0.25, 1)}},
		{"exponent", "1e3", []shunting.Token{num("1e3", 1000, 1)}},
		{"exponent-plus", "1e+3", []shunting.Token{num("1e+3", 1000, 1)}},
		{"exponent-minus", "1e-3", []shunting.Token{num("1e-3", 0.001, 1)}},
		{"real-exponent", "2.5e1", []shunting.Token{num("2.5e1", 25, 1)}},
		{"operators", "+ - * /", []shunting.Token{op("+", 1), op("-", 3), op("*", 5), op("/", 7)}},
		{"parens", "()", []shunting.Token{lparen(1), rparen(2)}},
		{"spaced", "3 + 4 * 2", []shunting.Token{num("3", 3, 1), op("+", 3), num("4", 4, 5), op("*", 7), num("2", 2, 9)}},
		{"glued", "3+4", []shunting.Token{num("3", 3, 1), op("+", 2), num("4", 4, 3)}},
		{"glued-parens", "(3+4)*2", []shunting.Token{lparen(1), num("3", 3, 2), op("+", 3), num("4", 4, 4), rparen(5), op("*", 6), num("2", 2, 7)}},
		{"minus-number", "-1", []shunting.Token{op("-", 1), num("1", 1, 2)}},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			got, err := shunting.TokenizeString(c.src)
			require.NoError(t, err)
			if diff := cmp.Diff(c.want, got); diff != "" {
				t.Errorf("wrong tokens for %q (-want +got):\n%s", c.src, diff)
			}
		})
	}
}

func TestTokenizeErrors(t *testing.T) {
	cases := []struct {
		name string
		src  string
		col  int
	}{
		{"letter", "x", 2},
		{"symbol", "$", 2},
		{"late", "3 + $", 6},
		{"double-dot", "1.2.3", 5},
		{"bare-dot", ".", 2},
		{"bare-exponent", "1e", 3},
		{"double-exponent", "1e2e3", 5},
		{"glued-letter", "1a", 3},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			toks, err := shunting.TokenizeString(c.src)
			require.Error(t, err, "tokenizing %q", c.src)
			require.Nil(t, toks)
			var mt *shunting.MalformedTokenError
			require.ErrorAs(t, err, &mt)
			require.Equal(t, c.col, mt.Col, "wrong column in %v", err)
			var ie shunting.InputError
			require.ErrorAs(t, err, &ie)
			require.Equal(t, c.col, ie.Pos())
		})
	}
}
