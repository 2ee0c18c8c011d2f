// Package stack provides a fixed-capacity LIFO stack.
package stack

import (
	"errors"
	"fmt"
)

// Sentinel errors for stack operations.
var (
	// ErrBadCapacity is returned by New for a non-positive capacity.
	ErrBadCapacity = errors.New("stack: capacity must be > 0")

	// ErrCapacityExceeded is returned by Push when the stack is full.
	ErrCapacityExceeded = errors.New("stack: capacity exceeded")

	// ErrEmpty is returned by Pop and Peek on an empty stack.
	ErrEmpty = errors.New("stack: stack is empty")
)

// Stack is a bounded last-in first-out stack. The top is the end of items.
type Stack[T any] struct {
	items   []T
	maxSize int
}

// New returns an empty stack able to hold capacity items.
func New[T any](capacity int) (*Stack[T], error) {
	if capacity <= 0 {
		return nil, fmt.Errorf("%w: got %d", ErrBadCapacity, capacity)
	}

	return &Stack[T]{items: make([]T, 0, capacity), maxSize: capacity}, nil
}

// Push places v on top of the stack.
func (s *Stack[T]) Push(v T) error {
	if len(s.items) == s.maxSize {
		return fmt.Errorf("%w: cap=%d", ErrCapacityExceeded, s.maxSize)
	}
	s.items = append(s.items, v)

	return nil
}

// Pop removes and returns the most recently pushed item.
func (s *Stack[T]) Pop() (T, error) {
	var zero T
	n := len(s.items)
	if n == 0 {
		return zero, ErrEmpty
	}
	v := s.items[n-1]
	s.items[n-1] = zero
	s.items = s.items[:n-1]

	return v, nil
}

// Peek returns the top item without removing it.
func (s *Stack[T]) Peek() (T, error) {
	if len(s.items) == 0 {
		var zero T
		return zero, ErrEmpty
	}

	return s.items[len(s.items)-1], nil
}

// Len reports the number of items on the stack.
func (s *Stack[T]) Len() int { return len(s.items) }

// Cap reports the fixed capacity.
func (s *Stack[T]) Cap() int { return s.maxSize }
