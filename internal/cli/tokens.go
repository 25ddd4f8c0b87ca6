package cli

import (
	"strconv"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"
	"github.com/zephyrtronium/shunting"
)

func newTokensCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "tokens [expression...]",
		Short: "Show the token sequence of expressions",
		Long: `Tokenize each argument and print the resulting token sequence as a table.
With no arguments, expressions are read from stdin, one per line.`,
		Example: `  shunting tokens "3 + 4 * 2"`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return forEachExpression(cmd, args, func(expr string) error {
				toks, err := shunting.TokenizeString(expr)
				if err != nil {
					return err
				}
				renderTokens(cmd, toks)
				return nil
			})
		},
	}
}

func renderTokens(cmd *cobra.Command, toks []shunting.Token) {
	t := table.NewWriter()
	t.SetOutputMirror(cmd.OutOrStdout())
	t.SetStyle(table.StyleLight)
	t.AppendHeader(table.Row{"#", "Col", "Kind", "Text", "Value"})
	for i, tok := range toks {
		value := ""
		if tok.Kind == shunting.TokenNumber {
			value = strconv.FormatFloat(tok.Value, 'g', -1, 64)
		}
		t.AppendRow(table.Row{i + 1, tok.Pos, tok.Kind.String(), tok.Text, value})
	}
	t.Render()
}
