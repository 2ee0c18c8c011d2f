package graph

import (
	"fmt"

	"github.com/gostructs/classics/bfs"
)

// Graph is an undirected, unweighted graph backed by an adjacency matrix.
type Graph struct {
	matrix [][]bool
	edges  int
}

var _ bfs.Adjacency = (*Graph)(nil)

// New allocates a graph with capacity vertices and no edges.
func New(capacity int) (*Graph, error) {
	if capacity <= 0 {
		return nil, fmt.Errorf("%w: got %d", ErrBadCapacity, capacity)
	}
	// one backing array, sliced into rows
	cells := make([]bool, capacity*capacity)
	m := make([][]bool, capacity)
	for i := range m {
		m[i] = cells[i*capacity : (i+1)*capacity : (i+1)*capacity]
	}

	return &Graph{matrix: m}, nil
}

// VertexCount returns the fixed number of vertices.
func (g *Graph) VertexCount() int { return len(g.matrix) }

// EdgeCount returns the number of undirected edges (a self-loop counts once).
func (g *Graph) EdgeCount() int { return g.edges }

// checkIndex returns a wrapped ErrIndexOutOfRange for v outside the graph.
func (g *Graph) checkIndex(v int) error {
	if v < 0 || v >= len(g.matrix) {
		return fmt.Errorf("%w: %d not in [0,%d)", ErrIndexOutOfRange, v, len(g.matrix))
	}
	return nil
}

// AddConnection connects a and b. Adding an existing edge is a no-op.
func (g *Graph) AddConnection(a, b int) error {
	return g.set(a, b, true)
}

// RemoveConnection disconnects a and b. Removing a missing edge is a no-op.
func (g *Graph) RemoveConnection(a, b int) error {
	return g.set(a, b, false)
}

// set validates both indices, then writes the symmetric pair of cells.
func (g *Graph) set(a, b int, on bool) error {
	if err := g.checkIndex(a); err != nil {
		return err
	}
	if err := g.checkIndex(b); err != nil {
		return err
	}
	if g.matrix[a][b] == on {
		return nil
	}
	g.matrix[a][b] = on
	g.matrix[b][a] = on
	if on {
		g.edges++
	} else {
		g.edges--
	}

	return nil
}

// HasConnection reports whether a and b are connected.
func (g *Graph) HasConnection(a, b int) (bool, error) {
	if err := g.checkIndex(a); err != nil {
		return false, err
	}
	if err := g.checkIndex(b); err != nil {
		return false, err
	}

	return g.matrix[a][b], nil
}

// Neighbors returns the vertices connected to v in ascending order.
func (g *Graph) Neighbors(v int) ([]int, error) {
	if err := g.checkIndex(v); err != nil {
		return nil, err
	}
	var out []int
	for u, on := range g.matrix[v] {
		if on {
			out = append(out, u)
		}
	}

	return out, nil
}

// Degree returns the number of neighbors of v.
func (g *Graph) Degree(v int) (int, error) {
	nbrs, err := g.Neighbors(v)
	if err != nil {
		return 0, err
	}

	return len(nbrs), nil
}

// Matrix returns a copy of the adjacency matrix.
func (g *Graph) Matrix() [][]bool {
	n := len(g.matrix)
	out := make([][]bool, n)
	for i, row := range g.matrix {
		out[i] = make([]bool, n)
		copy(out[i], row)
	}

	return out
}
