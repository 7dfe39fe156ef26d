// Package geometry2D turns a region description (a binary mask, a scalar
// field or a closed curve) into a 2D quadrature node set: boundary cells are
// extracted, ordered into a closed curve, intersected with scan rows and the
// inside intervals are filled with a rescaled base rule.
package geometry2D
