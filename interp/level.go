package interp

import (
	"fmt"
)

// LevelCrossing locates the point where a scalar field, linear between p1
// (value z1) and p2 (value z2), takes the value z0. ok is false when z0 is
// not bracketed by z1 and z2.
func LevelCrossing(z1, z2, z0 float64, p1, p2 [2]float64) (p [2]float64, ok bool) {
	if z1 == z2 {
		if z1 == z0 {
			return [2]float64{0.5 * (p1[0] + p2[0]), 0.5 * (p1[1] + p2[1])}, true
		}
		return
	}
	if (z0-z1)*(z0-z2) > 0 {
		return
	}
	t := (z0 - z1) / (z2 - z1)
	p[0] = p1[0] + t*(p2[0]-p1[0])
	p[1] = p1[1] + t*(p2[1]-p1[1])
	ok = true
	return
}

// Interp2 walks the samples z (taken at coordinates yx) in order and returns
// every point where the piecewise linear profile passes through level z0.
func Interp2(z []float64, yx [][2]float64, z0 float64) (zyx [][2]float64, err error) {
	if len(z) != len(yx) {
		err = fmt.Errorf("interp2: len(z) = %d, len(yx) = %d", len(z), len(yx))
		return
	}
	for i := 0; i < len(z)-1; i++ {
		if z[i] == z0 {
			zyx = append(zyx, yx[i])
			continue
		}
		if z[i+1] == z0 {
			continue // picked up on the next pass
		}
		if p, ok := LevelCrossing(z[i], z[i+1], z0, yx[i], yx[i+1]); ok {
			zyx = append(zyx, p)
		}
	}
	if n := len(z); n > 0 && z[n-1] == z0 {
		zyx = append(zyx, yx[n-1])
	}
	return
}

// InterpContour builds the contour at level z0 lying between two contours of
// N points each: thph[0:N] sits at level z[0], thph[N:2N] at level z[1].
// Point i of the result interpolates between point i of each input contour.
func InterpContour(z [2]float64, z0 float64, thph [][2]float64, N int) (contour [][2]float64, err error) {
	if len(thph) != 2*N {
		err = fmt.Errorf("interpcontour: expected %d points, have %d", 2*N, len(thph))
		return
	}
	if (z0-z[0])*(z0-z[1]) > 0 {
		err = fmt.Errorf("interpcontour: level %g not between %g and %g", z0, z[0], z[1])
		return
	}
	contour = make([][2]float64, N)
	for i := 0; i < N; i++ {
		contour[i], _ = LevelCrossing(z[0], z[1], z0, thph[i], thph[i+N])
	}
	return
}
