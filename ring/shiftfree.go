// File: ring/shiftfree.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// ShiftFree overwrites slots in place using a rotating insertion cursor,
// so no element is ever moved after it is written.

package ring

import (
	"fmt"

	"github.com/momentics/ringlab/api"
)

// Ensure compile-time interface compliance.
var (
	_ api.CircularBuffer[any] = (*ShiftFree[any])(nil)
	_ api.Inspector           = (*ShiftFree[any])(nil)
)

// ShiftFree is a fixed-size slice with an insertion cursor.
//
// The cursor is advanced after every write but only wrapped lazily, at the
// start of the next write, so between calls it may equal the capacity.
type ShiftFree[T any] struct {
	capacity    int
	data        []T
	insertIndex int
}

// NewShiftFree allocates an empty ShiftFree buffer.
func NewShiftFree[T any](capacity int) (*ShiftFree[T], error) {
	if err := validateCapacity(capacity); err != nil {
		return nil, err
	}
	return &ShiftFree[T]{
		capacity: capacity,
		data:     make([]T, 0, capacity),
	}, nil
}

// Enqueue writes values at the cursor, overwriting once full.
func (b *ShiftFree[T]) Enqueue(values ...T) {
	for _, v := range values {
		if b.insertIndex >= b.capacity {
			b.insertIndex = 0
		}
		if b.IsFull() {
			b.data[b.insertIndex] = v
		} else {
			b.data = append(b.data, v)
		}
		b.insertIndex++
	}
}

// Dequeue returns the element at HeadIndex without removing it.
func (b *ShiftFree[T]) Dequeue() (T, error) {
	return peek(b.data, b.HeadIndex())
}

// HeadIndex derives the oldest slot from the insertion cursor.
//
// The insertIndex > capacity branch cannot be reached through Enqueue, since
// the cursor is wrapped before it can pass the capacity. It is kept with its
// max(1, capacity-1) fallback so the derivation stays total; do not rely on it.
func (b *ShiftFree[T]) HeadIndex() int {
	if !b.IsFull() {
		return 0
	}
	switch {
	case b.insertIndex > b.capacity:
		return max(1, b.capacity-1)
	case b.insertIndex == b.capacity:
		return 0
	default:
		return b.insertIndex
	}
}

func (b *ShiftFree[T]) IsFull() bool { return len(b.data) == b.capacity }
func (b *ShiftFree[T]) Len() int     { return len(b.data) }
func (b *ShiftFree[T]) Cap() int     { return b.capacity }

// Elements returns a copy of the slots in physical order.
func (b *ShiftFree[T]) Elements() []T {
	out := make([]T, len(b.data))
	copy(out, b.data)
	return out
}

func (b *ShiftFree[T]) String() string {
	return fmt.Sprint(b.data)
}

// DumpState implements api.Inspector.
func (b *ShiftFree[T]) DumpState() map[string]any {
	return map[string]any{
		"strategy":     api.StrategyShiftFree.String(),
		"capacity":     b.capacity,
		"len":          len(b.data),
		"full":         b.IsFull(),
		"head_index":   b.HeadIndex(),
		"insert_index": b.insertIndex,
		"elements":     b.Elements(),
	}
}
