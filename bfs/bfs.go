// Package bfs provides breadth-first search over an Adjacency view,
// returning reachability, unweighted distances, parent links and visit order.
package bfs

import (
	"context"
	"fmt"

	"github.com/gostructs/classics/queue"
)

// noTarget marks a walk without an end vertex.
const noTarget = -1

// queueItem pairs a vertex with its BFS depth.
type queueItem struct {
	v     int
	depth int
}

// walker encapsulates mutable BFS state.
type walker struct {
	graph   Adjacency
	opts    Options
	ctx     context.Context
	target  int
	n       int
	queue   *queue.Queue[queueItem]
	visited []bool
	res     *Result
}

// Search runs breadth-first search from start and stops as soon as end is
// discovered. Result.Found reports whether end is reachable.
//
// Each vertex is enqueued at most once, so the search finishes after at most
// VertexCount() dequeues even when end is unreachable.
func Search(g Adjacency, start, end int, opts ...Option) (*Result, error) {
	w, err := newWalker(g, start, opts)
	if err != nil {
		return nil, err
	}
	if end < 0 || end >= w.n {
		return nil, fmt.Errorf("%w: end %d, vertices %d", ErrVertexOutOfRange, end, w.n)
	}
	w.target = end

	return w.run(start)
}

// Walk runs a full breadth-first traversal of the component containing start.
func Walk(g Adjacency, start int, opts ...Option) (*Result, error) {
	w, err := newWalker(g, start, opts)
	if err != nil {
		return nil, err
	}

	return w.run(start)
}

// newWalker validates the input and allocates per-run state.
func newWalker(g Adjacency, start int, opts []Option) (*walker, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}

	n := g.VertexCount()
	if start < 0 || start >= n {
		return nil, fmt.Errorf("%w: start %d, vertices %d", ErrVertexOutOfRange, start, n)
	}
	// every vertex is enqueued at most once, so n slots always suffice
	q, err := queue.New[queueItem](n)
	if err != nil {
		return nil, err
	}

	return &walker{
		graph:   g,
		opts:    o,
		ctx:     o.Ctx,
		target:  noTarget,
		n:       n,
		queue:   q,
		visited: make([]bool, n),
		res: &Result{
			Start:  start,
			Order:  make([]int, 0, n),
			Depth:  make(map[int]int, n),
			Parent: make(map[int]int, n),
		},
	}, nil
}

// run seeds the frontier with start and processes it.
func (w *walker) run(start int) (*Result, error) {
	if start == w.target {
		return w.res, w.reachTarget(start, 0, noTarget)
	}
	if err := w.enqueue(start, 0, noTarget); err != nil {
		return nil, err
	}

	return w.res, w.loop()
}

// discover marks v visited at depth d, records its parent and fires OnEnqueue.
func (w *walker) discover(v, d, parent int) {
	w.visited[v] = true
	w.res.Depth[v] = d
	if parent != noTarget {
		w.res.Parent[v] = parent
	}
	w.opts.OnEnqueue(v, d)
}

// enqueue discovers v and queues it for expansion.
func (w *walker) enqueue(v, d, parent int) error {
	w.discover(v, d, parent)

	return w.queue.Push(queueItem{v: v, depth: d})
}

// reachTarget discovers the target and hands it straight to OnDequeue and
// OnVisit without queueing it; its neighbors are never expanded.
func (w *walker) reachTarget(v, d, parent int) error {
	w.discover(v, d, parent)
	w.res.Found = true
	w.opts.OnDequeue(v, d)

	return w.visit(queueItem{v: v, depth: d})
}

// loop processes the queue until empty, target found, error, or cancellation.
func (w *walker) loop() error {
	for !w.queue.Empty() {
		select {
		case <-w.ctx.Done():
			return w.ctx.Err()
		default:
		}

		item, err := w.queue.Pop()
		if err != nil {
			return err
		}
		w.opts.OnDequeue(item.v, item.depth)
		if err = w.visit(item); err != nil {
			return err
		}
		if err = w.enqueueNeighbors(item); err != nil || w.res.Found {
			return err
		}
	}

	return nil
}

// visit records the vertex in Order and calls OnVisit.
func (w *walker) visit(item queueItem) error {
	w.res.Order = append(w.res.Order, item.v)
	if err := w.opts.OnVisit(item.v, item.depth); err != nil {
		return fmt.Errorf("bfs: OnVisit error at %d: %w", item.v, err)
	}

	return nil
}

// enqueueNeighbors scans the neighbors of item, applies filtering and
// MaxDepth, and enqueues each unseen neighbor. Discovering the target
// dequeues and visits it immediately, ending the search.
func (w *walker) enqueueNeighbors(item queueItem) error {
	neighbors, err := w.graph.Neighbors(item.v)
	if err != nil {
		return fmt.Errorf("%w: failed to get neighbors of %d: %v", ErrNeighbors, item.v, err)
	}
	nextDepth := item.depth + 1
	if w.opts.MaxDepth > 0 && nextDepth > w.opts.MaxDepth {
		return nil
	}
	for _, nbr := range neighbors {
		if nbr < 0 || nbr >= w.n {
			return fmt.Errorf("%w: neighbor %d of %d outside [0,%d)", ErrNeighbors, nbr, item.v, w.n)
		}
		if w.visited[nbr] || !w.opts.FilterNeighbor(item.v, nbr) {
			continue
		}
		if nbr == w.target {
			return w.reachTarget(nbr, nextDepth, item.v)
		}
		if err = w.enqueue(nbr, nextDepth, item.v); err != nil {
			return err
		}
	}

	return nil
}
