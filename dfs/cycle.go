package dfs

// HasCycle reports whether the undirected graph g contains a cycle.
// A self-loop counts as a cycle; each unordered pair is assumed to be
// listed once per endpoint, as in a symmetric adjacency matrix.
func HasCycle(g Adjacency) (bool, error) {
	if g == nil {
		return false, ErrGraphNil
	}
	if g.VertexCount() == 0 {
		return false, nil
	}
	res, err := Walk(g, 0, WithFullTraversal())
	if err != nil {
		return false, err
	}

	return res.Cyclic, nil
}
