// File: api/types.go
// Author: momentics <momentics@gmail.com>
//
// Shared API-level type declarations and constants.

package api

// Strategy selects a CircularBuffer implementation.
type Strategy int

const (
	StrategyUnknown Strategy = iota
	StrategyNaive
	StrategyShiftFree
	StrategyDeque
)

func (s Strategy) String() string {
	switch s {
	case StrategyNaive:
		return "naive"
	case StrategyShiftFree:
		return "shift-free"
	case StrategyDeque:
		return "deque"
	default:
		return "unknown"
	}
}

// Strategies lists every known strategy in declaration order.
func Strategies() []Strategy {
	return []Strategy{StrategyNaive, StrategyShiftFree, StrategyDeque}
}
