// Package dfs provides depth-first traversal over an index-addressed graph
// (anything with VertexCount and Neighbors, such as *graph.Graph).
//
// What
//
//   - Walk(g, start, opts...) returns pre-order, post-order, depth and parent
//     maps, and whether a non-tree edge was seen.
//   - HasCycle(g) reports whether an undirected graph contains a cycle.
//   - Hooks: OnVisit (pre-order) and OnExit (post-order); either may abort.
//   - WithMaxDepth, WithFilterNeighbor and WithFullTraversal shape the walk.
//
// The traversal is iterative, so deep graphs cannot overflow the goroutine
// stack. Each vertex is discovered at most once.
//
// Complexity: O(V + E) for adjacency lists, O(V²) over a dense matrix;
// memory O(V).
package dfs
