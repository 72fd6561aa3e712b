package rsdecode

import (
	"github.com/qrsyndrome/rsdecode/gf256"
	"github.com/qrsyndrome/rsdecode/poly"
)

// BerlekampMassey runs the errata-aware Berlekamp-Massey LFSR synthesis
// against the syndrome polynomial s (length n), seeded with the locator of
// the already-known erasure positions. With no erasures it degenerates to
// plain Berlekamp-Massey. check, when true, additionally requires the
// resulting locator's roots to resolve to a position set (rejecting a
// locator whose roots fall outside the field or repeat).
//
// Returns ErrReedSolomon if the syndromes cannot be explained by a
// correctable number of errors.
func BerlekampMassey(s poly.Poly, erasures []int, check bool) (poly.Poly, error) {
	n := s.Length()
	rho := len(erasures)
	if rho > n {
		return poly.Zero, ErrReedSolomon
	}

	l := rho
	lambda := ErrataLocatorPolynomial(erasures)
	b := lambda

	for r := rho + 1; r <= n; r++ {
		delta := discrepancy(lambda, s, l, r)
		deltaXB := poly.MulMonomial(b, 1, delta)
		newLambda := poly.Add(lambda, deltaXB)

		var newB poly.Poly
		if delta == 0 || 2*l > r+rho-1 {
			newB = poly.MulMonomial(b, 1, 1)
		} else {
			newL := r - l + rho
			newB = poly.MulScalar(lambda, gf256.Inv(delta))
			l = newL
		}
		lambda = newLambda
		b = newB
	}

	lambda = lambda.RStripZeros()
	if lambda.IsZero() {
		return poly.Zero, ErrReedSolomon
	}
	v := lambda.Degree() - rho
	if 2*v+rho > n {
		return poly.Zero, ErrReedSolomon
	}
	if check && len(Positions(lambda)) == 0 {
		return poly.Zero, ErrReedSolomon
	}
	return lambda, nil
}

// discrepancy computes the step-r discrepancy of lambda (current LFSR
// length l) against the syndromes: the XOR of lambda[j]*s[r-1-j] for
// j=0..l, with out-of-range indices on either side treated as zero.
func discrepancy(lambda, s poly.Poly, l, r int) int {
	lc := lambda.Coefficients()
	sc := s.Coefficients()
	d := 0
	for j := 0; j <= l; j++ {
		var lv int
		if j < len(lc) {
			lv = lc[j]
		}
		idx := r - 1 - j
		var sv int
		if idx >= 0 && idx < len(sc) {
			sv = sc[idx]
		}
		d = gf256.Add(d, gf256.Mul(lv, sv))
	}
	return d
}
