package stack

import "cmp"

// MinStack is a stack that additionally reports its minimum value in
// constant time. It shadows the value stack with a stack of running minima:
// a value is pushed to the shadow when it is less than or equal to the
// current minimum, and popped from the shadow when it leaves the value
// stack.
type MinStack[T cmp.Ordered] struct {
	items Stack[T]
	mins  Stack[T]
}

// Push adds one value to the stack top.
func (s *MinStack[T]) Push(v T) {
	s.items.Push(v)
	if m, ok := s.mins.Peek(); !ok || v <= m {
		s.mins.Push(v)
	}
}

// Pop removes and returns the top value. The second result is false if the
// stack is empty.
func (s *MinStack[T]) Pop() (T, bool) {
	v, ok := s.items.Pop()
	if !ok {
		var zero T
		return zero, false
	}
	if m, _ := s.mins.Peek(); m == v {
		s.mins.Pop()
	}
	return v, true
}

// Peek returns the top value without removing it.
func (s *MinStack[T]) Peek() (T, bool) {
	return s.items.Peek()
}

// Min returns the smallest value currently on the stack. The second result
// is false if the stack is empty.
func (s *MinStack[T]) Min() (T, bool) {
	return s.mins.Peek()
}

// Len reports the current stack depth.
func (s *MinStack[T]) Len() int {
	return s.items.Len()
}
