// Package builder assembles adjacency-matrix graphs from named topologies
// for tests, benchmarks and demos.
//
// Build(n, cons...) allocates a graph with n vertices and applies each
// Constructor in order. Constructors only add edges, so they compose: a
// Path over a Star yields their union.
//
//	g, err := builder.Build(9, builder.Grid(3, 3))
//	g, err := builder.Build(6, builder.Cycle(), builder.Star(0))
//
// Constructors validate their parameters against the vertex count before
// touching the graph and report ErrTooFewVertices, ErrShapeMismatch or
// ErrInvalidProbability. Identical inputs (and seeds) give identical graphs.
package builder
