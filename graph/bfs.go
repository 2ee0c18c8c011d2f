package graph

import "github.com/gostructs/classics/bfs"

// BreadthFirstSearch reports whether end is reachable from start, along with
// visit order, hop distances and parent links. See bfs.Search.
//
// Out-of-range indices are reported as ErrIndexOutOfRange.
func (g *Graph) BreadthFirstSearch(start, end int, opts ...bfs.Option) (*bfs.Result, error) {
	if err := g.checkIndex(start); err != nil {
		return nil, err
	}
	if err := g.checkIndex(end); err != nil {
		return nil, err
	}

	return bfs.Search(g, start, end, opts...)
}

// Reachable reports whether a path connects start and end.
func (g *Graph) Reachable(start, end int) (bool, error) {
	res, err := g.BreadthFirstSearch(start, end)
	if err != nil {
		return false, err
	}

	return res.Found, nil
}

// Components labels each vertex with the index of its connected component,
// numbering components in order of their smallest vertex.
func (g *Graph) Components() ([]int, int, error) {
	n := len(g.matrix)
	label := make([]int, n)
	for i := range label {
		label[i] = -1
	}
	count := 0
	for v := 0; v < n; v++ {
		if label[v] >= 0 {
			continue
		}
		res, err := bfs.Walk(g, v)
		if err != nil {
			return nil, 0, err
		}
		for _, u := range res.Order {
			label[u] = count
		}
		count++
	}

	return label, count, nil
}
