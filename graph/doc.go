// Package graph provides an undirected graph over a fixed number of vertices,
// stored as a square boolean adjacency matrix.
//
// Vertices are the integers [0, VertexCount()). They carry no payload; the
// graph records only which pairs are connected. Every mutation writes both
// matrix[a][b] and matrix[b][a], so the matrix is symmetric at all times.
//
// Index arguments are validated before anything is written: an index outside
// [0, VertexCount()) yields ErrIndexOutOfRange and leaves the graph untouched.
//
// BreadthFirstSearch delegates to package bfs; Graph satisfies bfs.Adjacency.
//
// A Graph is not safe for concurrent mutation.
package graph
