// Package api
// Author: momentics <momentics@gmail.com>
//
// Fixed-capacity circular buffer contract shared by every ring strategy.

package api

// CircularBuffer is a fixed-capacity FIFO container with overwrite-on-full
// semantics. Implementations are not safe for concurrent use.
type CircularBuffer[T any] interface {
	// Enqueue appends values in order, evicting the oldest element whenever
	// the buffer is already full.
	Enqueue(values ...T)
	// Dequeue returns the element at HeadIndex without removing it.
	// Returns ErrOutOfRange if the head index does not address a retained element.
	Dequeue() (T, error)
	// IsFull reports whether Len() == Cap().
	IsFull() bool
	// HeadIndex is the strategy-specific position of the oldest element.
	HeadIndex() int
	// Len returns the number of retained elements.
	Len() int
	// Cap returns the fixed capacity.
	Cap() int
	// Elements returns a copy of the backing sequence in physical order.
	Elements() []T
}
