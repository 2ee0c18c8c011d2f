// Package dfs defines types and options for depth-first search traversal,
// including cancellation, pre-/post-order hooks, depth limiting, neighbor filtering,
// and full-graph (forest) traversal.
package dfs

import (
	"context"
	"errors"
)

var (
	// ErrGraphNil is returned when a nil graph is passed to Walk or HasCycle.
	ErrGraphNil = errors.New("dfs: graph is nil")

	// ErrVertexOutOfRange indicates a start vertex outside [0, VertexCount()).
	ErrVertexOutOfRange = errors.New("dfs: vertex index out of range")

	// ErrNeighbors is returned when fetching neighbors fails or yields an
	// index outside the graph.
	ErrNeighbors = errors.New("dfs: neighbor iteration error")
)

// Adjacency is the read-only graph view DFS needs.
type Adjacency interface {
	VertexCount() int
	Neighbors(v int) ([]int, error)
}

// Option configures optional behavior of DFS traversal.
type Option func(*Options)

// Options holds configurable parameters for DFS traversal.
type Options struct {
	// Ctx allows cancellation or timeouts; defaults to context.Background().
	Ctx context.Context

	// OnVisit, if non-nil, is invoked when a vertex is discovered (pre-order).
	// Returning an error aborts traversal with that error.
	OnVisit func(v, depth int) error

	// OnExit, if non-nil, is invoked once all descendants of a vertex are
	// explored (post-order).
	OnExit func(v int) error

	// MaxDepth, if non-negative, limits discovery to the given depth.
	// A depth of 0 visits only the start vertex. Default is -1 (no limit).
	MaxDepth int

	// FilterNeighbor, if non-nil, returns false to skip the edge curr→neighbor.
	FilterNeighbor func(curr, neighbor int) bool

	// FullTraversal restarts from every undiscovered vertex in index order,
	// covering disconnected components.
	FullTraversal bool
}

// DefaultOptions returns Options with background context, no hooks, no
// depth limit, no filtering and single-source traversal.
func DefaultOptions() Options {
	return Options{
		Ctx:      context.Background(),
		MaxDepth: -1,
	}
}

// WithContext sets the Context for traversal. A nil context is ignored.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithOnVisit installs fn as a pre-order hook.
func WithOnVisit(fn func(v, depth int) error) Option {
	return func(o *Options) { o.OnVisit = fn }
}

// WithOnExit installs fn as a post-order hook.
func WithOnExit(fn func(v int) error) Option {
	return func(o *Options) { o.OnExit = fn }
}

// WithMaxDepth limits traversal depth to limit.
func WithMaxDepth(limit int) Option {
	return func(o *Options) { o.MaxDepth = limit }
}

// WithFilterNeighbor skips edges for which fn returns false.
func WithFilterNeighbor(fn func(curr, neighbor int) bool) Option {
	return func(o *Options) { o.FilterNeighbor = fn }
}

// WithFullTraversal enables forest traversal over all components.
func WithFullTraversal() Option {
	return func(o *Options) { o.FullTraversal = true }
}

// Result captures the outcome of a depth-first traversal.
type Result struct {
	// PreOrder records vertices in discovery order.
	PreOrder []int

	// PostOrder records vertices in the order they finished.
	PostOrder []int

	// Depth maps each vertex to its depth in its DFS tree.
	Depth map[int]int

	// Parent maps each vertex to the vertex it was discovered from.
	// Tree roots do not appear.
	Parent map[int]int

	// Cyclic reports that an edge to an already discovered vertex, other
	// than the tree edge back to the parent, was seen. In an undirected
	// graph this means the explored part contains a cycle.
	Cyclic bool
}
