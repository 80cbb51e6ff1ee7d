// File: quicksort/quicksort.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// In-place randomized quicksort with a Hoare-style partition.
// Pending ranges are kept on a FIFO work list instead of the call stack,
// so depth does not grow with unlucky pivots.

// Package quicksort sorts ordered slices in place.
package quicksort

import (
	"cmp"
	"math/rand/v2"

	"github.com/eapache/queue"
)

// span is an inclusive [start, end] range awaiting partitioning.
type span struct {
	start, end int
}

// SortNumbers sorts values ascending in place.
func SortNumbers(values []float64) {
	Sort(values)
}

// Sort sorts data ascending in place using the global random source for pivots.
// The order of NaN values is unspecified.
func Sort[T cmp.Ordered](data []T) {
	sort(data, rand.IntN)
}

// SortWith is Sort with an explicit random source, for reproducible pivots.
func SortWith[T cmp.Ordered](data []T, rng *rand.Rand) {
	sort(data, rng.IntN)
}

func sort[T cmp.Ordered](data []T, intn func(int) int) {
	if len(data) < 2 {
		return
	}
	pending := queue.New()
	pending.Add(span{0, len(data) - 1})
	for pending.Length() > 0 {
		s := pending.Remove().(span)
		i, j := partition(data, s.start, s.end, intn)
		if s.start < j {
			pending.Add(span{s.start, j})
		}
		if i < s.end {
			pending.Add(span{i, s.end})
		}
	}
}

// partition scans inwards from both ends around a pivot drawn uniformly from
// [start, end], swapping out-of-place pairs until the cursors cross.
// On return data[start:j+1] <= pivot <= data[i:end+1].
func partition[T cmp.Ordered](data []T, start, end int, intn func(int) int) (i, j int) {
	pivot := data[start+intn(end-start+1)]
	i, j = start, end
	for i <= j {
		for data[i] < pivot {
			i++
		}
		for data[j] > pivot {
			j--
		}
		if i <= j {
			data[i], data[j] = data[j], data[i]
			i++
			j--
		}
	}
	return i, j
}
