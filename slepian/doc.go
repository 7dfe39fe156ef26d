// Package slepian computes Slepian (discrete prolate spheroidal) tapers:
// sequences, or functions on a 2D region, with maximal energy concentration
// inside a spectral band or disc.
//
// The classical equal-interval problem is solved through its commuting
// tridiagonal matrix. Unequal sampling and 2D regions lead to the
// generalized problem K x = lambda G x, which is whitened with the Cholesky
// factor of G and solved densely. Nothing in this package logs, prints or
// caches state between calls; independent requests may be solved
// concurrently, see SolveBatch.
package slepian
