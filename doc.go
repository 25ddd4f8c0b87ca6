// Package shunting implements a stack-based expression pipeline: a tokenizer
// for infix arithmetic, a Shunting Yard converter to postfix (RPN) form, and
// a postfix evaluator over float64 operands.
//
// Data flows one way: raw text becomes tokens, tokens become postfix tokens,
// and postfix tokens become a number. Each stage is a pure function that owns
// its stacks for the duration of the call, so independent calls are safe from
// any number of goroutines.
package shunting
