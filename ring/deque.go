// File: ring/deque.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Deque keeps its elements in a double-ended queue. It fills from the back,
// then once full pushes new values at the front and evicts from the back.

package ring

import (
	"fmt"

	"github.com/gammazero/deque"

	"github.com/momentics/ringlab/api"
)

// Ensure compile-time interface compliance.
var (
	_ api.CircularBuffer[any] = (*Deque[any])(nil)
	_ api.Inspector           = (*Deque[any])(nil)
)

// Deque is a bounded deque with a lifetime insert counter.
type Deque[T any] struct {
	capacity    int
	dq          deque.Deque[T]
	insertCount int // never reset
}

// NewDeque allocates an empty Deque buffer.
func NewDeque[T any](capacity int) (*Deque[T], error) {
	if err := validateCapacity(capacity); err != nil {
		return nil, err
	}
	return &Deque[T]{capacity: capacity}, nil
}

// Enqueue pushes values at the back until full, then at the front,
// dropping the back element to stay within capacity.
func (b *Deque[T]) Enqueue(values ...T) {
	for _, v := range values {
		b.insertCount++
		if b.IsFull() {
			b.dq.PushFront(v)
			b.dq.PopBack()
			continue
		}
		b.dq.PushBack(v)
	}
}

// Dequeue returns the element at HeadIndex without removing it.
func (b *Deque[T]) Dequeue() (T, error) {
	head := b.HeadIndex()
	if head < 0 || head >= b.dq.Len() {
		var zero T
		return zero, headOutOfRange(head, b.dq.Len())
	}
	return b.dq.At(head), nil
}

// HeadIndex derives the head from the lifetime insert count.
//
// Until the buffer has wrapped once the result may point past the retained
// elements (capacity - insertCount, or capacity itself right after the first
// fill), in which case Dequeue reports ErrOutOfRange.
func (b *Deque[T]) HeadIndex() int {
	sub := b.insertCount % b.capacity
	if b.insertCount >= 2*b.capacity {
		sub = 1
	}
	return b.capacity - sub
}

func (b *Deque[T]) IsFull() bool { return b.dq.Len() == b.capacity }
func (b *Deque[T]) Len() int     { return b.dq.Len() }
func (b *Deque[T]) Cap() int     { return b.capacity }

// Elements returns a copy of the deque contents front to back.
func (b *Deque[T]) Elements() []T {
	out := make([]T, b.dq.Len())
	for i := range out {
		out[i] = b.dq.At(i)
	}
	return out
}

func (b *Deque[T]) String() string {
	return fmt.Sprint(b.Elements())
}

// DumpState implements api.Inspector.
func (b *Deque[T]) DumpState() map[string]any {
	return map[string]any{
		"strategy":     api.StrategyDeque.String(),
		"capacity":     b.capacity,
		"len":          b.dq.Len(),
		"full":         b.IsFull(),
		"head_index":   b.HeadIndex(),
		"insert_count": b.insertCount,
		"elements":     b.Elements(),
	}
}
