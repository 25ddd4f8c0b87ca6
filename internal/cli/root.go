package cli

import (
	"bufio"
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

// Version is set at build time.
var Version = "0.1.0"

// configKey is used to store config in context.
type configKey struct{}

// NewRootCmd creates and returns the root command.
func NewRootCmd() *cobra.Command {
	var cfgFile string
	rootCmd := &cobra.Command{
		Use:   "shunting",
		Short: "Infix to postfix calculator",
		Long: `shunting evaluates arithmetic over + - * / and parentheses by converting
infix expressions to postfix (RPN) form with the Shunting Yard algorithm and
running the result on an operand stack.`,
		Version: Version,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			if cmd.Name() == "help" || cmd.Name() == "completion" || cmd.Name() == "__complete" {
				return nil
			}
			cfg, err := LoadConfig(cfgFile, cmd.Root().PersistentFlags())
			if err != nil {
				return err
			}
			cmd.SetContext(context.WithValue(cmd.Context(), configKey{}, cfg))
			return nil
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default: ./"+DefaultConfigFile+")")
	rootCmd.PersistentFlags().StringP("format", "f", "", "printf verb for results (e.g. %g, %.4f)")
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "verbose output")

	rootCmd.AddCommand(newEvalCommand())
	rootCmd.AddCommand(newPostfixCommand())
	rootCmd.AddCommand(newTokensCommand())
	rootCmd.AddCommand(newREPLCommand())
	return rootCmd
}

// configFrom retrieves the loaded config from the command context.
func configFrom(cmd *cobra.Command) *Config {
	cfg, _ := cmd.Context().Value(configKey{}).(*Config)
	if cfg == nil {
		return &Config{Format: DefaultFormat, HistoryFile: DefaultHistoryFile}
	}
	return cfg
}

// forEachExpression applies fn to each argument, or to each non-empty line
// of stdin when there are no arguments. Failures are reported per expression
// and the command fails if any expression failed.
func forEachExpression(cmd *cobra.Command, args []string, fn func(expr string) error) error {
	exprs := args
	if len(exprs) == 0 {
		sc := bufio.NewScanner(cmd.InOrStdin())
		for sc.Scan() {
			line := strings.TrimSpace(sc.Text())
			if line == "" {
				continue
			}
			exprs = append(exprs, line)
		}
		if err := sc.Err(); err != nil {
			return err
		}
	}
	failed := 0
	for _, expr := range exprs {
		if err := fn(expr); err != nil {
			failed++
			fmt.Fprintf(cmd.ErrOrStderr(), "%s: %v\n", expr, err)
		}
	}
	if failed > 0 {
		return fmt.Errorf("%d of %d expressions failed", failed, len(exprs))
	}
	return nil
}
