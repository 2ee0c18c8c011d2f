package main

import (
	"fmt"
	"io"

	"go.uber.org/zap"

	"github.com/gostructs/classics/bfs"
	"github.com/gostructs/classics/builder"
	"github.com/gostructs/classics/dfs"
	"github.com/gostructs/classics/heap"
	"github.com/gostructs/classics/list"
	"github.com/gostructs/classics/queue"
	"github.com/gostructs/classics/stack"
	"github.com/gostructs/classics/tree"
)

// demo writes human-readable results to out and diagnostics to log.
// Rejected operations are reported and the run continues.
type demo struct {
	log *zap.Logger
	out io.Writer
}

func (d *demo) printf(format string, args ...any) {
	_, _ = fmt.Fprintf(d.out, format, args...)
}

func (d *demo) runHeap(s HeapScenario) error {
	var opts []heap.Option
	if s.Strict {
		opts = append(opts, heap.WithStrictRemoval())
	}
	h := heap.New[int](s.Capacity, opts...)

	for _, v := range s.Insert {
		h.Insert(v)
		d.log.Debug("heap insert", zap.Int("value", v), zap.Ints("heap", h.Values()))
	}
	d.printf("heap after inserts: %v\n", h.Values())

	for _, idx := range s.Remove {
		if err := h.Remove(idx); err != nil {
			d.log.Warn("heap remove rejected", zap.Int("index", idx), zap.Error(err))
			d.printf("heap remove(%d): %v\n", idx, err)
			continue
		}
		d.printf("heap remove(%d): %v\n", idx, h.Values())
	}
	d.log.Info("heap demo done", zap.Int("len", h.Len()), zap.Bool("valid", h.Valid()))

	return nil
}

func (d *demo) runGraph(s GraphScenario) error {
	shape, err := builder.Named(s.Shape)
	if err != nil {
		return err
	}
	g, err := builder.Build(s.Vertices, shape)
	if err != nil {
		return err
	}

	for _, e := range s.Edges {
		if err = g.AddConnection(e[0], e[1]); err != nil {
			d.log.Warn("add connection rejected", zap.Ints("edge", e), zap.Error(err))
			d.printf("connect %d-%d: %v\n", e[0], e[1], err)
		}
	}
	for _, e := range s.Remove {
		if err = g.RemoveConnection(e[0], e[1]); err != nil {
			d.log.Warn("remove connection rejected", zap.Ints("edge", e), zap.Error(err))
			d.printf("disconnect %d-%d: %v\n", e[0], e[1], err)
		}
	}
	d.printf("graph: %d vertices, %d edges\n", g.VertexCount(), g.EdgeCount())

	_, count, err := g.Components()
	if err != nil {
		return err
	}
	cyclic, err := dfs.HasCycle(g)
	if err != nil {
		return err
	}
	d.printf("graph: %d components, cyclic=%t\n", count, cyclic)

	for _, q := range s.Queries {
		start, end := q[0], q[1]
		res, err := g.BreadthFirstSearch(start, end,
			bfs.WithOnVisit(func(v, depth int) error {
				d.log.Debug("bfs visit", zap.Int("vertex", v), zap.Int("depth", depth))
				return nil
			}),
		)
		if err != nil {
			d.log.Warn("bfs rejected", zap.Ints("query", q), zap.Error(err))
			d.printf("bfs(%d,%d): %v\n", start, end, err)
			continue
		}
		if !res.Found {
			d.printf("bfs(%d,%d): not reachable, visited %v\n", start, end, res.Order)
			continue
		}
		path, err := res.PathTo(end)
		if err != nil {
			return err
		}
		d.printf("bfs(%d,%d): reachable in %d hops via %v\n", start, end, len(path)-1, path)
	}

	return nil
}

// runContainers mirrors the classic walkthrough for the simple containers.
func (d *demo) runContainers() error {
	s, err := stack.New[uint32](10)
	if err != nil {
		return err
	}
	for _, v := range []uint32{12, 54} {
		if err = s.Push(v); err != nil {
			return err
		}
	}
	top, _ := s.Pop()
	d.printf("stack pop: %d (len %d)\n", top, s.Len())

	q, err := queue.New[uint32](10)
	if err != nil {
		return err
	}
	for _, v := range []uint32{32, 21} {
		if err = q.Push(v); err != nil {
			return err
		}
	}
	front, _ := q.Pop()
	d.printf("queue pop: %d (len %d)\n", front, q.Len())

	i1, i2, i3 := list.New(5), list.New(12), list.New(27)
	if err = i1.Link(i2); err != nil {
		return err
	}
	if err = i2.Link(i3); err != nil {
		return err
	}
	if err = i1.Link(i3); err != nil {
		d.log.Debug("relink rejected", zap.Error(err))
	}
	vals, err := i1.Values()
	if err != nil {
		return err
	}
	d.printf("list: %v\n", vals)

	root := tree.New[uint32](0)
	for _, c := range []struct {
		v    uint32
		side tree.Side
	}{{10, tree.Left}, {7, tree.Right}, {99, tree.Right}} {
		if _, err = root.Attach(tree.New(c.v), c.side); err != nil {
			return err
		}
	}
	if _, err = root.Attach(root, tree.Left); err != nil {
		d.log.Debug("self attach rejected", zap.Error(err))
	}
	d.printf("tree pre-order: %v (height %d)\n", root.PreOrder(), root.Height())

	return nil
}
