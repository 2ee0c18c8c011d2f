// Package list provides a singly linked list node.
//
// Each Node owns the pointer to its successor. A successor can be set once;
// setting it again returns ErrDuplicateLink until Unlink clears it.
package list

import (
	"errors"
	"fmt"
)

var (
	// ErrDuplicateLink is returned by Link when the node already has a successor.
	ErrDuplicateLink = errors.New("list: link already exists")

	// ErrNilNode is returned by Link when the successor is nil.
	ErrNilNode = errors.New("list: nil node")

	// ErrCycle is returned by Walk when the chain loops back on itself.
	ErrCycle = errors.New("list: cycle detected")
)

// Node is one element of a singly linked list.
type Node[T any] struct {
	Value T
	next  *Node[T]
}

// New returns an unlinked node holding v.
func New[T any](v T) *Node[T] {
	return &Node[T]{Value: v}
}

// Link sets next as the successor of n.
func (n *Node[T]) Link(next *Node[T]) error {
	if next == nil {
		return ErrNilNode
	}
	if n.next != nil {
		return fmt.Errorf("%w: node %v -> %v", ErrDuplicateLink, n.Value, n.next.Value)
	}
	n.next = next

	return nil
}

// Unlink detaches and returns the successor of n (nil if none).
func (n *Node[T]) Unlink() *Node[T] {
	next := n.next
	n.next = nil

	return next
}

// Next returns the successor of n, or nil at the tail.
func (n *Node[T]) Next() *Node[T] { return n.next }

// Walk calls fn for n and every successor in order. It stops early when fn
// returns false, and returns ErrCycle if a node is reached twice.
func (n *Node[T]) Walk(fn func(v T) bool) error {
	seen := make(map[*Node[T]]struct{})
	for cur := n; cur != nil; cur = cur.next {
		if _, ok := seen[cur]; ok {
			return ErrCycle
		}
		seen[cur] = struct{}{}
		if !fn(cur.Value) {
			return nil
		}
	}

	return nil
}

// Values collects the chain starting at n. On a cycle it returns the values
// seen before the repeat together with ErrCycle.
func (n *Node[T]) Values() ([]T, error) {
	var out []T
	err := n.Walk(func(v T) bool {
		out = append(out, v)
		return true
	})

	return out, err
}

// Len counts nodes from n to the tail. A cyclic chain reports ErrCycle.
func (n *Node[T]) Len() (int, error) {
	count := 0
	err := n.Walk(func(T) bool {
		count++
		return true
	})

	return count, err
}
