// Package runlength holds the small array bookkeeping primitives used by the
// scan-line quadrature: run-length encoding of repeated entries (Degamini),
// its inverse (Gamini) and expansion of index ranges (Matranges).
package runlength
