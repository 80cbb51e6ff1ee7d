// File: ring/naive.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Naive is the reference strategy: a plain slice whose front element is
// shifted out whenever an insert would exceed capacity.

package ring

import (
	"fmt"

	"github.com/momentics/ringlab/api"
)

// Ensure compile-time interface compliance.
var (
	_ api.CircularBuffer[any] = (*Naive[any])(nil)
	_ api.Inspector           = (*Naive[any])(nil)
)

// Naive keeps elements oldest-first; the head is always index 0.
type Naive[T any] struct {
	capacity int
	data     []T
}

// NewNaive allocates an empty Naive buffer.
func NewNaive[T any](capacity int) (*Naive[T], error) {
	if err := validateCapacity(capacity); err != nil {
		return nil, err
	}
	return &Naive[T]{
		capacity: capacity,
		data:     make([]T, 0, capacity),
	}, nil
}

// Enqueue appends values, evicting position 0 first whenever the buffer is full.
func (b *Naive[T]) Enqueue(values ...T) {
	for _, v := range values {
		if b.IsFull() {
			// O(n) shift towards the front.
			copy(b.data, b.data[1:])
			b.data = b.data[:len(b.data)-1]
		}
		b.data = append(b.data, v)
	}
}

// Dequeue returns the oldest element without removing it.
func (b *Naive[T]) Dequeue() (T, error) {
	return peek(b.data, b.HeadIndex())
}

func (b *Naive[T]) IsFull() bool   { return len(b.data) == b.capacity }
func (b *Naive[T]) HeadIndex() int { return 0 }
func (b *Naive[T]) Len() int       { return len(b.data) }
func (b *Naive[T]) Cap() int       { return b.capacity }

// Elements returns a copy of the retained elements, oldest first.
func (b *Naive[T]) Elements() []T {
	out := make([]T, len(b.data))
	copy(out, b.data)
	return out
}

func (b *Naive[T]) String() string {
	return fmt.Sprint(b.data)
}

// DumpState implements api.Inspector.
func (b *Naive[T]) DumpState() map[string]any {
	return map[string]any{
		"strategy":   api.StrategyNaive.String(),
		"capacity":   b.capacity,
		"len":        len(b.data),
		"full":       b.IsFull(),
		"head_index": b.HeadIndex(),
		"elements":   b.Elements(),
	}
}
