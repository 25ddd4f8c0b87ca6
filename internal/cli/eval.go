package cli

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/zephyrtronium/shunting"
)

func newEvalCommand() *cobra.Command {
	var rpn bool
	cmd := &cobra.Command{
		Use:   "eval [expression...]",
		Short: "Evaluate infix expressions",
		Long: `Evaluate each argument as an independent infix expression and print its
value. With no arguments, expressions are read from stdin, one per line.

With --rpn, input is taken as postfix form and evaluated directly, without
conversion.`,
		Example: `  shunting eval "3 + 4 * 2"
  shunting eval --rpn "3 4 + 2 *"
  echo "(3 + 4) * 2" | shunting eval`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := configFrom(cmd)
			return forEachExpression(cmd, args, func(expr string) error {
				var (
					r   float64
					err error
				)
				if rpn {
					var toks []shunting.Token
					toks, err = shunting.TokenizeString(expr)
					if err == nil {
						err = checkPostfix(toks)
					}
					if err == nil {
						r, err = shunting.EvalPostfix(toks)
					}
				} else {
					r, err = shunting.EvalString(expr)
				}
				if err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), cfg.Format+"\n", r)
				return nil
			})
		},
	}
	cmd.Flags().BoolVar(&rpn, "rpn", false, "treat input as postfix (RPN) form")
	return cmd
}

// checkPostfix rejects tokens the postfix evaluator does not accept.
func checkPostfix(toks []shunting.Token) error {
	for _, tok := range toks {
		switch tok.Kind {
		case shunting.TokenLeftParen, shunting.TokenRightParen:
			return fmt.Errorf("%d: parenthesis %q not allowed in postfix form", tok.Pos, tok.Text)
		}
	}
	return nil
}
