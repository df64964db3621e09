// Package navstack holds the back-stack of destinations the UI renders.
// The empty stack is the root (home) screen. A Stack is not safe for
// concurrent use; it is owned by the UI loop.
package navstack

import (
	"slices"

	"goway/destination"
)

// Stack is the ordered navigation history, bottom first.
type Stack struct {
	stack []destination.Destination
	// version increments on every mutation.
	version  uint64
	onChange func(depth int)
}

// OnChange registers fn to be called after every mutation with the new
// depth. goToRoot reports once, with depth 0.
func (s *Stack) OnChange(fn func(depth int)) {
	s.onChange = fn
}

func (s *Stack) changed() {
	s.version++
	if s.onChange != nil {
		s.onChange(len(s.stack))
	}
}

// Navigate pushes d. Pushing the same destination twice yields two entries.
func (s *Stack) Navigate(d destination.Destination) {
	s.stack = append(s.stack, d)
	s.changed()
}

// ReplaceCurrentView swaps the top entry for d.
// If the stack is empty, it just pushes d.
func (s *Stack) ReplaceCurrentView(d destination.Destination) {
	if len(s.stack) > 0 {
		s.stack = s.stack[:len(s.stack)-1]
	}
	s.stack = append(s.stack, d)
	s.changed()
}

// GoBack pops one entry; a no-op on the root.
func (s *Stack) GoBack() {
	s.GoBackLevels(1)
}

// GoBackLevels pops min(levels, depth) entries. levels <= 0 is a no-op.
func (s *Stack) GoBackLevels(levels int) {
	if levels <= 0 || len(s.stack) == 0 {
		return
	}
	levels = min(levels, len(s.stack))
	s.stack = s.stack[:len(s.stack)-levels]
	s.changed()
}

// GoToRoot empties the stack in a single step.
func (s *Stack) GoToRoot() {
	s.stack = nil
	s.changed()
}

// ResetForAppActivation is run when the app comes to the foreground.
func (s *Stack) ResetForAppActivation() {
	s.GoToRoot()
}

// PopToDestination pops entries one at a time until the removed entry
// equals target or the stack is empty. It returns whether target was found.
func (s *Stack) PopToDestination(target destination.Destination) bool {
	for len(s.stack) > 0 {
		last := s.stack[len(s.stack)-1]
		s.stack = s.stack[:len(s.stack)-1]
		s.changed()
		if last.Equal(target) {
			return true
		}
	}
	return false
}

// Peek returns the top entry without removing it.
func (s *Stack) Peek() (destination.Destination, bool) {
	if len(s.stack) == 0 {
		return destination.Destination{}, false
	}
	return s.stack[len(s.stack)-1], true
}

// Destinations returns the full stack (shallow copy).
func (s *Stack) Destinations() []destination.Destination {
	return slices.Clone(s.stack)
}

// Depth returns how many destinations are on the stack.
func (s *Stack) Depth() int {
	return len(s.stack)
}

// Version changes whenever the stack is mutated.
func (s *Stack) Version() uint64 {
	return s.version
}
