// Package stack provides the LIFO containers used throughout the module.
package stack

// Stack is a slice-backed LIFO container. The zero value is an empty stack
// ready to use. A Stack belongs to a single caller; it is not safe for
// concurrent use.
type Stack[T any] struct {
	items []T
}

// Push adds one value to the stack top.
func (s *Stack[T]) Push(v T) {
	s.items = append(s.items, v)
}

// Pop removes and returns the top value. The second result is false if the
// stack is empty.
func (s *Stack[T]) Pop() (T, bool) {
	var zero T
	if len(s.items) == 0 {
		return zero, false
	}
	last := len(s.items) - 1
	v := s.items[last]
	s.items = s.items[:last]
	return v, true
}

// Peek returns the top value without removing it. The second result is false
// if the stack is empty.
func (s *Stack[T]) Peek() (T, bool) {
	var zero T
	if len(s.items) == 0 {
		return zero, false
	}
	return s.items[len(s.items)-1], true
}

// Len reports the current stack depth.
func (s *Stack[T]) Len() int {
	return len(s.items)
}

// Empty reports whether the stack holds no values.
func (s *Stack[T]) Empty() bool {
	return len(s.items) == 0
}
