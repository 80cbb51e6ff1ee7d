// File: ring/errors.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0

package ring

import "github.com/momentics/ringlab/api"

func validateCapacity(capacity int) error {
	if capacity < 1 {
		return api.NewError(api.ErrCodeInvalidArgument, "buffer capacity must be at least 1").
			WithContext("capacity", capacity)
	}
	return nil
}

func headOutOfRange(head, n int) error {
	return api.NewError(api.ErrCodeOutOfRange, "head index does not address a retained element").
		WithContext("head_index", head).
		WithContext("len", n)
}

// peek returns data[head] or an out-of-range error.
func peek[T any](data []T, head int) (T, error) {
	if head < 0 || head >= len(data) {
		var zero T
		return zero, headOutOfRange(head, len(data))
	}
	return data[head], nil
}
