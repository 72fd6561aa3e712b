package rsdecode

import (
	"github.com/qrsyndrome/rsdecode/gf256"
	"github.com/qrsyndrome/rsdecode/poly"
)

// SyndromePolynomial evaluates the received polynomial R at alpha^0..alpha^(n-1)
// and returns the n results as a Poly, low-order first: coefficient i is
// R(alpha^i). A received word is a valid codeword exactly when every
// syndrome is zero.
func SyndromePolynomial(r poly.Poly, n int) poly.Poly {
	s := make([]int, n)
	for i := 0; i < n; i++ {
		s[i] = poly.Eval(r, gf256.Exp(i))
	}
	return poly.New(s)
}

// HasErrors reports whether the received polynomial's syndromes are
// non-zero, i.e. whether it is not already a valid codeword.
func HasErrors(r poly.Poly, n int) bool {
	return !SyndromePolynomial(r, n).IsZero()
}

// ErrataLocatorPolynomial builds the locator polynomial for a known set of
// positions: the product of (1 + alpha^i x) over every position i. Its
// roots are exactly 1/alpha^i for each i, so its constant term is always 1
// and its degree is always len(positions).
func ErrataLocatorPolynomial(positions []int) poly.Poly {
	locator := poly.Unit
	for _, p := range positions {
		locator = poly.Mul(locator, poly.New([]int{1, gf256.Exp(p)}))
	}
	return locator
}

// Positions maps a locator polynomial to the set of errata positions it
// encodes: position i satisfies gfexp(i) = 1/r for each root r of lambda.
// It returns nil if lambda has a root the field does not support finding
// cleanly (FindRoots itself returning nothing), which callers treat as a
// decoding failure.
func Positions(lambda poly.Poly) []int {
	roots := poly.FindRoots(lambda)
	if roots == nil {
		return nil
	}
	out := make([]int, len(roots))
	for i, r := range roots {
		out[i] = mod255(-gf256.Log(r))
	}
	return out
}

func mod255(x int) int {
	x %= 255
	if x < 0 {
		x += 255
	}
	return x
}
