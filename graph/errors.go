package graph

import "errors"

var (
	// ErrBadCapacity is returned by New when the vertex count is not positive.
	ErrBadCapacity = errors.New("graph: capacity must be > 0")

	// ErrIndexOutOfRange indicates a vertex index outside [0, VertexCount()).
	ErrIndexOutOfRange = errors.New("graph: index out of range")
)
