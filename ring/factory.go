// File: ring/factory.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0

package ring

import "github.com/momentics/ringlab/api"

// New constructs the buffer implementing strategy s.
func New[T any](s api.Strategy, capacity int) (api.CircularBuffer[T], error) {
	switch s {
	case api.StrategyNaive:
		b, err := NewNaive[T](capacity)
		if err != nil {
			return nil, err
		}
		return b, nil
	case api.StrategyShiftFree:
		b, err := NewShiftFree[T](capacity)
		if err != nil {
			return nil, err
		}
		return b, nil
	case api.StrategyDeque:
		b, err := NewDeque[T](capacity)
		if err != nil {
			return nil, err
		}
		return b, nil
	default:
		return nil, api.NewError(api.ErrCodeInvalidArgument, "unknown buffer strategy").
			WithContext("strategy", s.String())
	}
}
