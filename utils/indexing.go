package utils

type Index []int

func NewRange(rmin, rmax int) (r Index) {
	var (
		size = rmax - rmin + 1 // INCLUSIVE RANGE
	)
	if size < 0 {
		size = 0
	}
	r = make(Index, size)
	for i := range r {
		r[i] = i + rmin
	}
	return
}

func (I Index) Reverse() (r Index) {
	r = make(Index, len(I))
	for i, val := range I {
		r[len(I)-1-i] = val
	}
	return
}
