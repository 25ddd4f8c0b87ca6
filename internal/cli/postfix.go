package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"github.com/zephyrtronium/shunting"
)

func newPostfixCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "postfix [expression...]",
		Short: "Convert infix expressions to postfix form",
		Long: `Convert each argument from infix to postfix (RPN) form and print the
result as space-separated tokens. With no arguments, expressions are read
from stdin, one per line.`,
		Example: `  shunting postfix "3 + 4 * 2"
  shunting postfix "(3 + 4) * 2"`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return forEachExpression(cmd, args, func(expr string) error {
				toks, err := shunting.TokenizeString(expr)
				if err != nil {
					return err
				}
				rpn, err := shunting.ToPostfix(toks)
				if err != nil {
					return err
				}
				fmt.Fprintln(cmd.OutOrStdout(), joinTokens(rpn))
				return nil
			})
		},
	}
}

// joinTokens renders a token sequence as space-separated source text.
func joinTokens(toks []shunting.Token) string {
	texts := make([]string, len(toks))
	for i, tok := range toks {
		texts[i] = tok.Text
	}
	return strings.Join(texts, " ")
}
