package quicksort_test

import (
	"math/rand/v2"
	"slices"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"pgregory.net/rapid"

	"github.com/momentics/ringlab/quicksort"
)

func TestSortNumbers(t *testing.T) {
	tests := []struct {
		name string
		in   []float64
		want []float64
	}{
		{"nil", nil, nil},
		{"single", []float64{1.5}, []float64{1.5}},
		{"pair", []float64{2, 1}, []float64{1, 2}},
		{
			"mixed signs with duplicates",
			[]float64{-5, -2, 9, 2, 2, 9, -7, 6, -6, -8},
			[]float64{-8, -7, -6, -5, -2, 2, 2, 6, 9, 9},
		},
		{"reals", []float64{0.5, -0.25, 3.75, 0, -0.25}, []float64{-0.25, -0.25, 0, 0.5, 3.75}},
		{"all equal", []float64{3, 3, 3, 3}, []float64{3, 3, 3, 3}},
		{"descending", []float64{5, 4, 3, 2, 1}, []float64{1, 2, 3, 4, 5}},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := slices.Clone(tc.in)
			quicksort.SortNumbers(got)
			if diff := cmp.Diff(tc.want, got); diff != "" {
				t.Errorf("SortNumbers(%v) mismatch (-want +got):\n%s", tc.in, diff)
			}
		})
	}
}

func TestSortWith_Deterministic(t *testing.T) {
	a := []int{9, 1, 8, 2, 7, 3, 6, 4, 5}
	b := slices.Clone(a)
	quicksort.SortWith(a, rand.New(rand.NewPCG(1, 2)))
	quicksort.SortWith(b, rand.New(rand.NewPCG(3, 4)))
	assert.Equal(t, []int{1, 2, 3, 4, 5, 6, 7, 8, 9}, a)
	assert.Equal(t, a, b)
}

// Already sorted input used to be the recursion-depth worst case.
func TestSort_LargeSortedInput(t *testing.T) {
	data := make([]int, 200_000)
	for i := range data {
		data[i] = i / 3
	}
	want := slices.Clone(data)
	quicksort.Sort(data)
	assert.Equal(t, want, data)
}

func TestSort_Strings(t *testing.T) {
	data := []string{"pear", "apple", "fig", "apple"}
	quicksort.Sort(data)
	assert.Equal(t, []string{"apple", "apple", "fig", "pear"}, data)
}

func TestProperty_SortedPermutation(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		in := rapid.SliceOf(rapid.Float64Range(-1e6, 1e6)).Draw(rt, "values")
		got := slices.Clone(in)
		quicksort.SortNumbers(got)

		want := slices.Clone(in)
		slices.Sort(want)
		if diff := cmp.Diff(want, got); diff != "" {
			rt.Fatalf("mismatch (-want +got):\n%s", diff)
		}

		again := slices.Clone(got)
		quicksort.SortNumbers(again)
		if diff := cmp.Diff(got, again); diff != "" {
			rt.Fatalf("not idempotent (-first +second):\n%s", diff)
		}
	})
}
