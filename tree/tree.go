// Package tree provides a plain binary tree node with left/right children
// and the usual depth-first traversals.
package tree

import (
	"errors"
	"fmt"

	"github.com/gostructs/classics/stack"
)

// ErrCycle is returned by Attach when the child subtree already contains
// the parent, which would turn the tree into a cycle.
var ErrCycle = errors.New("tree: attach would create a cycle")

// Side selects a child slot.
type Side int

const (
	// Left is the left child slot.
	Left Side = iota
	// Right is the right child slot.
	Right
)

// String implements fmt.Stringer.
func (s Side) String() string {
	if s == Left {
		return "left"
	}
	return "right"
}

// Node is a binary tree node. A nil *Node is an empty tree.
// Children are only set through Attach, which keeps the structure acyclic.
type Node[T any] struct {
	Value T
	left  *Node[T]
	right *Node[T]
}

// New returns a leaf holding v.
func New[T any](v T) *Node[T] {
	return &Node[T]{Value: v}
}

// Attach places child in the given slot, replacing any existing subtree,
// and returns the replaced subtree (nil if the slot was empty). A nil child
// clears the slot. Attaching n itself or one of its ancestors fails with
// ErrCycle and leaves n unchanged.
func (n *Node[T]) Attach(child *Node[T], side Side) (*Node[T], error) {
	if child.contains(n) {
		return nil, fmt.Errorf("%w: %s child", ErrCycle, side)
	}

	var old *Node[T]
	switch side {
	case Left:
		old, n.left = n.left, child
	default:
		old, n.right = n.right, child
	}

	return old, nil
}

// contains reports whether target is a node of the tree rooted at n.
func (n *Node[T]) contains(target *Node[T]) bool {
	if n == nil {
		return false
	}
	return n == target || n.left.contains(target) || n.right.contains(target)
}

// Child returns the subtree in the given slot.
func (n *Node[T]) Child(side Side) *Node[T] {
	if side == Left {
		return n.left
	}
	return n.right
}

// Size counts the nodes of the tree rooted at n.
func (n *Node[T]) Size() int {
	if n == nil {
		return 0
	}
	return 1 + n.left.Size() + n.right.Size()
}

// Height is the number of nodes on the longest root-to-leaf path
// (0 for an empty tree, 1 for a leaf).
func (n *Node[T]) Height() int {
	if n == nil {
		return 0
	}
	return 1 + max(n.left.Height(), n.right.Height())
}

// PreOrder returns values in node-left-right order.
// It walks iteratively with a stack sized to the tree.
func (n *Node[T]) PreOrder() []T {
	size := n.Size()
	if size == 0 {
		return nil
	}
	// size bounds the number of pending subtrees, so Push never overflows.
	s, _ := stack.New[*Node[T]](size)
	_ = s.Push(n)

	out := make([]T, 0, size)
	for s.Len() > 0 {
		cur, _ := s.Pop()
		out = append(out, cur.Value)
		// right first so that left is popped first
		if cur.right != nil {
			_ = s.Push(cur.right)
		}
		if cur.left != nil {
			_ = s.Push(cur.left)
		}
	}

	return out
}

// InOrder returns values in left-node-right order.
// The stack holds the path of pending ancestors, so Height bounds it.
func (n *Node[T]) InOrder() []T {
	if n == nil {
		return nil
	}
	s, _ := stack.New[*Node[T]](n.Height())

	out := make([]T, 0, n.Size())
	cur := n
	for cur != nil || s.Len() > 0 {
		for cur != nil {
			_ = s.Push(cur)
			cur = cur.left
		}
		top, _ := s.Pop()
		out = append(out, top.Value)
		cur = top.right
	}

	return out
}
