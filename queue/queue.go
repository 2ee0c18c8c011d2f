// Package queue provides a fixed-capacity FIFO queue backed by a ring buffer.
//
// The capacity is chosen at construction and never grows: pushing onto a full
// queue returns ErrCapacityExceeded and popping from an empty one returns
// ErrEmpty. Both checks happen before any state changes.
//
// Complexity: Push, Pop and Peek are O(1); memory is O(capacity).
package queue

import (
	"errors"
	"fmt"
)

// Sentinel errors for queue operations.
var (
	// ErrBadCapacity is returned by New for a non-positive capacity.
	ErrBadCapacity = errors.New("queue: capacity must be > 0")

	// ErrCapacityExceeded is returned by Push when the queue is full.
	ErrCapacityExceeded = errors.New("queue: capacity exceeded")

	// ErrEmpty is returned by Pop and Peek on an empty queue.
	ErrEmpty = errors.New("queue: queue is empty")
)

// Queue is a bounded first-in first-out queue.
// head is the index of the oldest item; size items follow it (mod len(items)).
type Queue[T any] struct {
	items []T
	head  int
	size  int
}

// New returns an empty queue able to hold capacity items.
func New[T any](capacity int) (*Queue[T], error) {
	if capacity <= 0 {
		return nil, fmt.Errorf("%w: got %d", ErrBadCapacity, capacity)
	}

	return &Queue[T]{items: make([]T, capacity)}, nil
}

// Push appends v at the tail.
func (q *Queue[T]) Push(v T) error {
	if q.size == len(q.items) {
		return fmt.Errorf("%w: cap=%d", ErrCapacityExceeded, len(q.items))
	}
	q.items[(q.head+q.size)%len(q.items)] = v
	q.size++

	return nil
}

// Pop removes and returns the oldest item.
func (q *Queue[T]) Pop() (T, error) {
	var zero T
	if q.size == 0 {
		return zero, ErrEmpty
	}
	v := q.items[q.head]
	q.items[q.head] = zero // release reference for GC
	q.head = (q.head + 1) % len(q.items)
	q.size--

	return v, nil
}

// Peek returns the oldest item without removing it.
func (q *Queue[T]) Peek() (T, error) {
	if q.size == 0 {
		var zero T
		return zero, ErrEmpty
	}

	return q.items[q.head], nil
}

// Len reports the number of queued items.
func (q *Queue[T]) Len() int { return q.size }

// Cap reports the fixed capacity.
func (q *Queue[T]) Cap() int { return len(q.items) }

// Full reports whether another Push would fail.
func (q *Queue[T]) Full() bool { return q.size == len(q.items) }

// Empty reports whether the queue holds no items.
func (q *Queue[T]) Empty() bool { return q.size == 0 }
