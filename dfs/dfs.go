// Package dfs implements an iterative depth-first search over an Adjacency
// view. The explicit frame stack is a fixed-capacity stack.Stack sized to the
// vertex count: a vertex is pushed only when first discovered, so the stack
// never holds more than VertexCount() frames.
package dfs

import (
	"context"
	"fmt"

	"github.com/gostructs/classics/stack"
)

// frame is one vertex on the DFS path together with its neighbor cursor.
type frame struct {
	v     int
	depth int
	nbrs  []int
	next  int
}

// dfsWalker holds per-run DFS state.
type dfsWalker struct {
	g      Adjacency
	opts   Options
	ctx    context.Context
	n      int
	seen   []bool
	frames *stack.Stack[*frame]
	res    *Result
}

// Walk performs depth-first search from start. Neighbors are explored in the
// order Neighbors returns them.
func Walk(g Adjacency, start int, opts ...Option) (*Result, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	n := g.VertexCount()
	if start < 0 || start >= n {
		return nil, fmt.Errorf("%w: start %d, vertices %d", ErrVertexOutOfRange, start, n)
	}
	frames, err := stack.New[*frame](n)
	if err != nil {
		return nil, err
	}

	w := &dfsWalker{
		g:      g,
		opts:   o,
		ctx:    o.Ctx,
		n:      n,
		seen:   make([]bool, n),
		frames: frames,
		res: &Result{
			PreOrder:  make([]int, 0, n),
			PostOrder: make([]int, 0, n),
			Depth:     make(map[int]int, n),
			Parent:    make(map[int]int, n),
		},
	}

	if err = w.traverse(start); err != nil {
		return nil, err
	}
	if o.FullTraversal {
		for v := 0; v < n; v++ {
			if w.seen[v] {
				continue
			}
			if err = w.traverse(v); err != nil {
				return nil, err
			}
		}
	}

	return w.res, nil
}

// traverse explores the tree rooted at root.
func (w *dfsWalker) traverse(root int) error {
	if err := w.discover(root, 0, -1); err != nil {
		return err
	}
	for w.frames.Len() > 0 {
		select {
		case <-w.ctx.Done():
			return w.ctx.Err()
		default:
		}

		top, _ := w.frames.Peek()
		if top.next == len(top.nbrs) {
			_, _ = w.frames.Pop()
			if w.opts.OnExit != nil {
				if err := w.opts.OnExit(top.v); err != nil {
					return fmt.Errorf("dfs: OnExit error at %d: %w", top.v, err)
				}
			}
			w.res.PostOrder = append(w.res.PostOrder, top.v)
			continue
		}

		u := top.nbrs[top.next]
		top.next++
		if u < 0 || u >= w.n {
			return fmt.Errorf("%w: neighbor %d of %d outside [0,%d)", ErrNeighbors, u, top.v, w.n)
		}
		if w.opts.FilterNeighbor != nil && !w.opts.FilterNeighbor(top.v, u) {
			continue
		}
		if w.seen[u] {
			if p, ok := w.res.Parent[top.v]; !ok || p != u {
				w.res.Cyclic = true
			}
			continue
		}
		if w.opts.MaxDepth >= 0 && top.depth+1 > w.opts.MaxDepth {
			continue
		}
		if err := w.discover(u, top.depth+1, top.v); err != nil {
			return err
		}
	}

	return nil
}

// discover marks v, runs the pre-order hook and pushes its frame.
func (w *dfsWalker) discover(v, depth, parent int) error {
	w.seen[v] = true
	w.res.Depth[v] = depth
	if parent >= 0 {
		w.res.Parent[v] = parent
	}
	w.res.PreOrder = append(w.res.PreOrder, v)
	if w.opts.OnVisit != nil {
		if err := w.opts.OnVisit(v, depth); err != nil {
			return fmt.Errorf("dfs: OnVisit error at %d: %w", v, err)
		}
	}

	nbrs, err := w.g.Neighbors(v)
	if err != nil {
		return fmt.Errorf("%w: failed to get neighbors of %d: %v", ErrNeighbors, v, err)
	}

	return w.frames.Push(&frame{v: v, depth: depth, nbrs: nbrs})
}
