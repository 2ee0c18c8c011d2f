package builder

import "errors"

var (
	// ErrTooFewVertices indicates the vertex count is below the topology minimum.
	ErrTooFewVertices = errors.New("builder: parameter too small")

	// ErrShapeMismatch indicates topology parameters that do not fit the graph
	// (e.g. rows*cols != VertexCount, or a star center outside the graph).
	ErrShapeMismatch = errors.New("builder: shape does not fit graph")

	// ErrInvalidProbability indicates an edge probability outside [0,1].
	ErrInvalidProbability = errors.New("builder: probability out of range")

	// ErrConstructFailed wraps a nil constructor or an unknown shape name.
	ErrConstructFailed = errors.New("builder: construction failed")
)
