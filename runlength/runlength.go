package runlength

import (
	"fmt"
)

// Degamini collapses runs of repeated adjacent entries.
// For v = [1, 2, 2, 3] it returns dv = [1, 2, 3], folds = [1, 2, 1] and
// be = [[0 0] [1 2] [3 3]], the inclusive begin/end index of each run in v.
func Degamini[T comparable](v []T) (dv []T, folds []int, be [][2]int) {
	if len(v) == 0 {
		return
	}
	var (
		begin = 0
	)
	for i := 1; i <= len(v); i++ {
		if i == len(v) || v[i] != v[begin] {
			dv = append(dv, v[begin])
			folds = append(folds, i-begin)
			be = append(be, [2]int{begin, i - 1})
			begin = i
		}
	}
	return
}

// Gamini replicates data[i] folding[i] times. A single folding value applies
// to every element. Non-positive folds leave the element unreplicated (one copy).
func Gamini[T any](data []T, folding []int) (bigger []T, err error) {
	var (
		fold = func(i int) int { return folding[0] }
	)
	switch {
	case len(folding) == 0:
		err = fmt.Errorf("gamini: empty folding")
		return
	case len(folding) == len(data):
		fold = func(i int) int { return folding[i] }
	case len(folding) != 1:
		err = fmt.Errorf("gamini: folding length %d does not match data length %d", len(folding), len(data))
		return
	}
	var total int
	for i := range data {
		total += max(fold(i), 1)
	}
	bigger = make([]T, 0, total)
	for i, val := range data {
		for n := 0; n < max(fold(i), 1); n++ {
			bigger = append(bigger, val)
		}
	}
	return
}

// Matranges expands consecutive (lo, hi) pairs into the concatenation of the
// inclusive ranges lo..hi. Matranges([1 4 1 2 -1 2]) is
// [1 2 3 4 1 2 -1 0 1 2]. A pair with hi < lo contributes nothing.
func Matranges(ranges []int) (r []int, err error) {
	if len(ranges)%2 != 0 {
		err = fmt.Errorf("matranges: odd number of range limits (%d)", len(ranges))
		return
	}
	for i := 0; i < len(ranges); i += 2 {
		for val := ranges[i]; val <= ranges[i+1]; val++ {
			r = append(r, val)
		}
	}
	return
}
