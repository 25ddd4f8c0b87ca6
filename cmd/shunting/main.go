// Command shunting is a small calculator over + - * / and parentheses,
// built on the infix-to-postfix pipeline in the root package.
package main

import (
	"fmt"
	"os"

	"github.com/zephyrtronium/shunting/internal/cli"
)

func main() {
	if err := cli.NewRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
