package stack

// History tracks a current position in a linear sequence of states with
// back and forward movement, the discipline behind browser history and
// undo/redo. Visiting a new state discards the forward stack.
type History[T any] struct {
	back    Stack[T]
	forward Stack[T]
	current T
	set     bool
}

// Visit makes v the current state, pushing the previous state onto the back
// stack and discarding anything that could be moved forward to.
func (h *History[T]) Visit(v T) {
	if h.set {
		h.back.Push(h.current)
	}
	h.current = v
	h.set = true
	h.forward = Stack[T]{}
}

// Back moves to the previous state and returns it. It reports false, without
// moving, when there is no previous state.
func (h *History[T]) Back() (T, bool) {
	v, ok := h.back.Pop()
	if !ok {
		var zero T
		return zero, false
	}
	h.forward.Push(h.current)
	h.current = v
	return v, true
}

// Forward moves to the next state and returns it. It reports false, without
// moving, when there is no next state.
func (h *History[T]) Forward() (T, bool) {
	v, ok := h.forward.Pop()
	if !ok {
		var zero T
		return zero, false
	}
	h.back.Push(h.current)
	h.current = v
	return v, true
}

// Current returns the present state. The second result is false if nothing
// has been visited yet.
func (h *History[T]) Current() (T, bool) {
	return h.current, h.set
}
