package shunting

import (
	"strings"

	"github.com/zephyrtronium/shunting/stack"
)

// OpenBrackets and CloseBrackets contain the runes which group expressions.
// A bracket in byte position k in OpenBrackets is matched with the bracket
// in byte position k in CloseBrackets.
const (
	OpenBrackets  = "([{"
	CloseBrackets = ")]}"
)

// Balanced reports whether every bracket in s closes in the order it was
// opened. Runes that are not brackets are ignored, so any expression the
// pipeline accepts is also balanced.
func Balanced(s string) bool {
	var open stack.Stack[int]
	for _, r := range s {
		if k := strings.IndexRune(OpenBrackets, r); k >= 0 {
			open.Push(k)
			continue
		}
		if k := strings.IndexRune(CloseBrackets, r); k >= 0 {
			j, ok := open.Pop()
			if !ok || j != k {
				return false
			}
		}
	}
	return open.Empty()
}
