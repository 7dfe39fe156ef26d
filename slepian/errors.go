package slepian

import (
	"errors"
	"fmt"

	"github.com/notargets/goslepian/geometry2D"
)

var (
	// ErrInvalidInput marks a bad request: too few samples, a bandwidth out
	// of range, mismatched lengths, more tapers than samples. The region
	// pipeline reports its own bad arguments with the same sentinel.
	ErrInvalidInput = geometry2D.ErrInvalidInput
	// ErrNumericalDegeneracy marks a valid request the numerics cannot
	// resolve, for example a weight matrix that is not positive definite.
	ErrNumericalDegeneracy = errors.New("slepian: numerical degeneracy")
	// ErrGeometryInconsistency is returned by the region pipeline.
	ErrGeometryInconsistency = geometry2D.ErrGeometryInconsistency
)

func invalidf(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrInvalidInput, fmt.Sprintf(format, args...))
}

func degeneratef(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrNumericalDegeneracy, fmt.Sprintf(format, args...))
}
