// Package bfs provides breadth-first search over any graph that can report a
// vertex count and per-vertex neighbor indices (see Adjacency), returning
// reachability, unweighted shortest-path distances, parent links, and visit order.
//
// What
//
//   - Search(g, start, end): stop as soon as end is discovered; Result.Found
//     reports reachability and Result.PathTo(end) the fewest-hop route.
//   - Walk(g, start): explore the whole component of start.
//   - Hooks at three stages: OnEnqueue, OnDequeue, OnVisit (may abort).
//   - WithFilterNeighbor prunes individual edges; WithMaxDepth bounds depth.
//
// Termination
//
//	A visited bitmap sized to VertexCount() guarantees that each vertex enters
//	the frontier at most once. The frontier is a fixed-capacity queue of the
//	same size, so at most VertexCount() dequeues happen before the search
//	either finds end or reports it unreachable.
//
// Determinism
//
//	Neighbors are enqueued in the order the Adjacency returns them. The
//	adjacency-matrix graph in package graph returns ascending indices, so the
//	visit sequence is reproducible.
//
// Complexity (V = vertices, E = edges)
//
//   - Time:   O(V + E) for adjacency lists, O(V²) for a dense matrix scan.
//   - Memory: O(V).
//
// Usage
//
//	res, err := bfs.Search(g, 0, 2)
//	if err != nil {
//	    // ErrGraphNil, ErrVertexOutOfRange, ErrOptionViolation, ErrNeighbors,
//	    // context errors or wrapped OnVisit errors
//	}
//	if res.Found {
//	    path, _ := res.PathTo(2)
//	}
//
// Errors
//
//   - ErrGraphNil          if the graph is nil.
//   - ErrVertexOutOfRange  if start or end is outside [0, VertexCount()).
//   - ErrOptionViolation   if an Option is invalid (e.g. negative MaxDepth).
//   - ErrNeighbors         if Neighbors fails or returns an invalid index.
//   - ErrNoPath            from Result.PathTo / Result.Distance for unreached vertices.
package bfs
