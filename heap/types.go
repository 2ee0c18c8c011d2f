package heap

import "errors"

// Sentinel errors for heap operations.
var (
	// ErrIndexOutOfRange is returned when an index lies outside [0, Len()).
	ErrIndexOutOfRange = errors.New("heap: index out of range")

	// ErrInvalidRemovalTarget is returned in strict mode when the removal
	// target does not have both children.
	ErrInvalidRemovalTarget = errors.New("heap: removal target lacks two children")

	// ErrEmptyHeap is returned by Pop and Peek on an empty heap.
	ErrEmptyHeap = errors.New("heap: heap is empty")
)

// Option configures a MinHeap at construction.
type Option func(*Options)

// Options holds MinHeap construction parameters.
type Options struct {
	// StrictRemoval limits Remove to indices with two children present.
	StrictRemoval bool
}

// DefaultOptions returns Options with generalized removal enabled.
func DefaultOptions() Options {
	return Options{StrictRemoval: false}
}

// WithStrictRemoval makes Remove reject indices that lack a left or right
// child with ErrInvalidRemovalTarget.
func WithStrictRemoval() Option {
	return func(o *Options) {
		o.StrictRemoval = true
	}
}
