// File: parity/parity.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Two interchangeable integer parity predicates.

// Package parity implements even/odd checks on ints.
package parity

import "math"

// exactFloatInts bounds the integers float64 represents exactly.
const exactFloatInts int64 = 1 << 53

// IsEvenFast tests the low bit.
func IsEvenFast(v int) bool {
	return v&1 == 0
}

// IsEvenSlow avoids bitwise operations: it halves |v| in floating point and
// checks for a fractional part. Values outside the exact float64 integer
// range are first reduced by an even modulus, which keeps their parity.
func IsEvenSlow(v int) bool {
	x := int64(v) % exactFloatInts
	if x < 0 {
		x = -x
	}
	if x == 0 || x == 2 {
		return true
	}
	half := 0.5 * float64(x)
	return half == math.Trunc(half)
}
