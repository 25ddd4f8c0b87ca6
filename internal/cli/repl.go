package cli

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/chzyer/readline"
	"github.com/spf13/cobra"
	"github.com/zephyrtronium/shunting"
)

func newREPLCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "repl",
		Short: "Interactive calculator",
		Long: `Start an interactive session. Each line is evaluated as an infix
expression. Dot-commands control the session; type .help to list them.`,
		RunE: runREPL,
	}
}

func runREPL(cmd *cobra.Command, _ []string) error {
	cfg := configFrom(cmd)

	rl, err := readline.NewEx(&readline.Config{
		Prompt:          "shunting> ",
		HistoryFile:     cfg.HistoryFile,
		InterruptPrompt: "^C",
		EOFPrompt:       ".quit",
	})
	if err != nil {
		return fmt.Errorf("failed to initialize REPL: %w", err)
	}
	defer func() { _ = rl.Close() }()

	out := cmd.OutOrStdout()
	fmt.Fprintln(out, "shunting "+Version)
	fmt.Fprintln(out, "Type .help for commands, .quit to exit")

	echoPostfix := false
	for {
		line, err := rl.Readline()
		if errors.Is(err, readline.ErrInterrupt) {
			continue
		}
		if errors.Is(err, io.EOF) {
			return nil
		}
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}

		if strings.HasPrefix(line, ".") {
			if handleDotCommand(cmd, out, line, &echoPostfix) {
				return nil
			}
			continue
		}

		toks, err := shunting.TokenizeString(line)
		if err != nil {
			fmt.Fprintf(cmd.ErrOrStderr(), "Error: %v\n", err)
			continue
		}
		rpn, err := shunting.ToPostfix(toks)
		if err != nil {
			fmt.Fprintf(cmd.ErrOrStderr(), "Error: %v\n", err)
			continue
		}
		if echoPostfix {
			fmt.Fprintf(out, "%s : ", joinTokens(rpn))
		}
		r, err := shunting.EvalPostfix(rpn)
		if err != nil {
			fmt.Fprintf(cmd.ErrOrStderr(), "Error: %v\n", err)
			continue
		}
		fmt.Fprintf(out, cfg.Format+"\n", r)
	}
}

// handleDotCommand executes a REPL dot-command. It reports whether the
// session should end.
func handleDotCommand(cmd *cobra.Command, out io.Writer, line string, echoPostfix *bool) bool {
	switch {
	case line == ".quit" || line == ".exit":
		return true
	case line == ".help":
		fmt.Fprint(out, `.help            show this help
.postfix         toggle echoing the postfix form before each result
.tokens <expr>   show the token table for an expression
.quit            exit
`)
	case line == ".postfix":
		*echoPostfix = !*echoPostfix
		fmt.Fprintf(out, "postfix echo %s\n", onOff(*echoPostfix))
	case line == ".tokens":
		fmt.Fprintln(cmd.ErrOrStderr(), "usage: .tokens <expr>")
	case strings.HasPrefix(line, ".tokens "):
		toks, err := shunting.TokenizeString(strings.TrimPrefix(line, ".tokens "))
		if err != nil {
			fmt.Fprintf(cmd.ErrOrStderr(), "Error: %v\n", err)
			break
		}
		renderTokens(cmd, toks)
	default:
		fmt.Fprintf(cmd.ErrOrStderr(), "unknown command %q\n", line)
	}
	return false
}

func onOff(v bool) string {
	if v {
		return "on"
	}
	return "off"
}
