// Package classics is a teaching collection of textbook data structures,
// written as small independent packages with explicit errors and no hidden
// global state.
//
// What is inside?
//
//	heap/     generic binary min-heap (insert, remove at any index, pop)
//	graph/    undirected boolean adjacency-matrix graph
//	bfs/      breadth-first search over any adjacency view, with hooks
//	dfs/      depth-first traversal, pre/post order, cycle detection
//	builder/  deterministic topologies (path, cycle, star, grid, random)
//	queue/    fixed-capacity FIFO ring queue (the BFS frontier)
//	stack/    fixed-capacity LIFO stack (DFS and tree traversal)
//	list/     singly linked node with one-shot linking
//	tree/     binary tree node with attach and traversals
//
// The cmd/classics binary walks through every structure from a YAML
// scenario:
//
//	go run ./cmd/classics run --log-level debug
//
// None of the types are safe for concurrent mutation. Errors are package
// sentinels (heap.ErrIndexOutOfRange, graph.ErrBadCapacity, …) wrapped with
// context; match them with errors.Is.
package classics
