// Package heap provides an array-backed binary min-heap over any ordered type.
//
// What
//
//   - The heap is a complete binary tree laid out in a slice: for index i the
//     children live at 2i+1 and 2i+2, the parent of i>0 at (i-1)/2.
//   - After every public operation each non-root element is >= its parent.
//   - Insert appends and sifts up; Remove(i) swaps the target with the last
//     element, shrinks by one, and repairs around i.
//
// Removal modes
//
//	By default any in-range index may be removed. The replacement element is
//	sifted down (swapping with the strictly smaller child, left on ties) and,
//	if it did not move, sifted up, so the whole heap stays ordered.
//
//	WithStrictRemoval() restricts Remove to indices that have both children,
//	rejecting others with ErrInvalidRemovalTarget before anything is changed.
//
// Complexity
//
//   - Insert, Remove, Pop: O(log n)
//   - Peek, Len:           O(1)
//   - Valid:               O(n)
//
// Errors
//
//   - ErrIndexOutOfRange       if Remove gets an index outside [0, Len()).
//   - ErrInvalidRemovalTarget  if strict removal targets a node missing a child.
//   - ErrEmptyHeap             if Pop or Peek is called on an empty heap, or
//     Remove is (the error also matches ErrIndexOutOfRange).
//
// Floating-point NaN values have no total order; inserting them leaves the
// invariant undefined.
//
// A MinHeap is not safe for concurrent use.
package heap
