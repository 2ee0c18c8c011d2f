package heap

import (
	"fmt"

	"golang.org/x/exp/constraints"
)

// MinHeap is a binary min-heap stored in a slice.
type MinHeap[T constraints.Ordered] struct {
	data []T
	opts Options
}

// New returns an empty heap with room reserved for capacity elements.
// A negative capacity is treated as zero.
func New[T constraints.Ordered](capacity int, opts ...Option) *MinHeap[T] {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if capacity < 0 {
		capacity = 0
	}

	return &MinHeap[T]{
		data: make([]T, 0, capacity),
		opts: o,
	}
}

// parent returns the parent index of i; ok is false for the root.
func parent(i int) (p int, ok bool) {
	if i <= 0 {
		return 0, false
	}
	return (i - 1) / 2, true
}

// left returns the left child index of i.
func left(i int) int { return 2*i + 1 }

// right returns the right child index of i.
func right(i int) int { return 2*i + 2 }

// Insert adds v and restores heap order by sifting it up.
func (h *MinHeap[T]) Insert(v T) {
	h.data = append(h.data, v)
	h.siftUp(len(h.data) - 1)
}

// Remove deletes the element at index.
//
// The element is swapped with the last one, the slice shrinks by one, and the
// swapped-in element is moved down (or up) until heap order holds again.
// Nothing is modified when an error is returned.
func (h *MinHeap[T]) Remove(index int) error {
	n := len(h.data)
	if n == 0 {
		return fmt.Errorf("%w: %w: index %d", ErrEmptyHeap, ErrIndexOutOfRange, index)
	}
	if index < 0 || index >= n {
		return fmt.Errorf("%w: index %d, len %d", ErrIndexOutOfRange, index, n)
	}
	if h.opts.StrictRemoval && right(index) >= n {
		return fmt.Errorf("%w: index %d, len %d", ErrInvalidRemovalTarget, index, n)
	}
	h.removeAt(index)

	return nil
}

// Pop removes and returns the minimum element.
func (h *MinHeap[T]) Pop() (T, error) {
	if len(h.data) == 0 {
		var zero T
		return zero, ErrEmptyHeap
	}
	v := h.data[0]
	h.removeAt(0)

	return v, nil
}

// Peek returns the minimum element without removing it.
func (h *MinHeap[T]) Peek() (T, error) {
	if len(h.data) == 0 {
		var zero T
		return zero, ErrEmptyHeap
	}

	return h.data[0], nil
}

// Len returns the number of elements.
func (h *MinHeap[T]) Len() int { return len(h.data) }

// Values returns a copy of the backing sequence in heap (array) order.
func (h *MinHeap[T]) Values() []T {
	out := make([]T, len(h.data))
	copy(out, h.data)

	return out
}

// Valid reports whether every non-root element is >= its parent.
func (h *MinHeap[T]) Valid() bool {
	for i := 1; i < len(h.data); i++ {
		p, _ := parent(i)
		if h.data[i] < h.data[p] {
			return false
		}
	}

	return true
}

// removeAt assumes 0 <= i < len(h.data).
func (h *MinHeap[T]) removeAt(i int) {
	last := len(h.data) - 1
	h.swap(i, last)
	var zero T
	h.data[last] = zero
	h.data = h.data[:last]

	if i == last {
		return
	}
	if !h.siftDown(i) {
		h.siftUp(i)
	}
}

// siftUp moves the element at i toward the root while it is smaller than
// its parent.
func (h *MinHeap[T]) siftUp(i int) {
	for {
		p, ok := parent(i)
		if !ok || h.data[p] <= h.data[i] {
			return
		}
		h.swap(p, i)
		i = p
	}
}

// siftDown moves the element at i toward the leaves while a child is
// smaller, always swapping with the smaller child (left on ties).
// It reports whether the element moved.
func (h *MinHeap[T]) siftDown(i int) bool {
	n := len(h.data)
	start := i
	for {
		l := left(i)
		if l >= n {
			break
		}
		smallest := i
		if h.data[l] < h.data[smallest] {
			smallest = l
		}
		if r := right(i); r < n && h.data[r] < h.data[smallest] {
			smallest = r
		}
		if smallest == i {
			break
		}
		h.swap(i, smallest)
		i = smallest
	}

	return i != start
}

func (h *MinHeap[T]) swap(i, j int) { h.data[i], h.data[j] = h.data[j], h.data[i] }
