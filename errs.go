package shunting

import "strconv"

// UnbalancedParenthesesError is an error indicating mismatched or unclosed
// parentheses detected during conversion. It implements InputError.
type UnbalancedParenthesesError struct {
	// Col is the position of the unmatched parenthesis.
	Col int
	// Paren is the unmatched side, "(" or ")".
	Paren string
}

func (err *UnbalancedParenthesesError) Error() string {
	if err.Paren == ")" {
		return errpos(err.Col, "close parenthesis with no open parenthesis")
	}
	return errpos(err.Col, "open parenthesis with no close parenthesis")
}

func (err *UnbalancedParenthesesError) Pos() int {
	return err.Col
}

// InsufficientOperandsError is an error indicating an operator with fewer
// than two operands available during evaluation. It implements InputError.
type InsufficientOperandsError struct {
	// Col is the position of the operator.
	Col int
	// Op is the operator.
	Op string
	// Have is the number of operands that were available.
	Have int
}

func (err *InsufficientOperandsError) Error() string {
	return errpos(err.Col, "operator "+strconv.Quote(err.Op)+" needs 2 operands, have "+strconv.Itoa(err.Have))
}

func (err *InsufficientOperandsError) Pos() int {
	return err.Col
}

// DivisionByZeroError is an error indicating a division whose right operand
// is zero. It implements InputError.
type DivisionByZeroError struct {
	// Col is the position of the / operator.
	Col int
}

func (err *DivisionByZeroError) Error() string {
	return errpos(err.Col, "division by zero")
}

func (err *DivisionByZeroError) Pos() int {
	return err.Col
}

// MalformedExpressionError is an error indicating that evaluation ended with
// zero or more than one value on the operand stack, i.e. an incomplete
// expression or excess operands.
type MalformedExpressionError struct {
	// Left is the number of values left on the operand stack.
	Left int
}

func (err *MalformedExpressionError) Error() string {
	if err.Left == 0 {
		return "no expression"
	}
	return "expression left " + strconv.Itoa(err.Left) + " values on the stack"
}

// errpos is a shortcut to create an error message with a position.
func errpos(pos int, msg string) string {
	return strconv.Itoa(pos) + ": " + msg
}

// InputError is an error with position information. Every error tied to a
// position in invalid input implements InputError.
type InputError interface {
	error
	// Pos returns the position of the error as the number of runes up to and
	// including the start of the token that caused the error.
	Pos() int
}

var (
	_ InputError = (*MalformedTokenError)(nil)
	_ InputError = (*UnbalancedParenthesesError)(nil)
	_ InputError = (*InsufficientOperandsError)(nil)
	_ InputError = (*DivisionByZeroError)(nil)
)
