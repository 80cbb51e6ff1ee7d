// Package ring
// Author: momentics <momentics@gmail.com>
//
// Fixed-capacity circular buffers with FIFO overwrite-on-full semantics.
// Three strategies satisfy api.CircularBuffer:
//   - Naive: growable slice trimmed from the front on overflow, O(n) evicting insert
//   - ShiftFree: fixed slice with a rotating insertion cursor, O(1) insert
//   - Deque: double-ended queue whose insertion side flips to the front once full
//
// Dequeue is a peek: it returns the element at HeadIndex and removes nothing.
// Each strategy derives HeadIndex from its own bookkeeping, and the derivations
// are only guaranteed to address the oldest element for the access patterns
// covered by the package tests. Buffers are not safe for concurrent use.
package ring
