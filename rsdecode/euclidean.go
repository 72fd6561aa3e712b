package rsdecode

import "github.com/qrsyndrome/rsdecode/poly"

// extendedEuclideanDivide runs the extended Euclidean algorithm to
// completion, returning (u, v, g) such that u*r1 + v*r2 = g = gcd(r1, r2).
func extendedEuclideanDivide(r1, r2 poly.Poly) (u, v, g poly.Poly) {
	rOld, rCur := r1, r2
	uOld, uCur := poly.Unit, poly.Zero
	vOld, vCur := poly.Zero, poly.Unit

	for !rCur.IsZero() {
		q, rem := poly.DivMod(rOld, rCur)
		rOld, rCur = rCur, rem
		uOld, uCur = uCur, poly.Add(uOld, poly.Mul(q, uCur))
		vOld, vCur = vCur, poly.Add(vOld, poly.Mul(q, vCur))
	}
	return uOld.RStripZeros(), vOld.RStripZeros(), rOld.RStripZeros()
}

// sugiyamaEuclideanDivide runs the same Euclidean iteration as
// extendedEuclideanDivide, but stops as soon as the current remainder's
// degree drops to upperdeg or below (or the remainder becomes zero),
// rather than running to a full GCD. This early exit is what turns the
// Euclidean algorithm into an error-locator/evaluator solver: stopping at
// the right degree bound yields the minimal-degree locator consistent
// with the syndromes.
//
// At every step the invariant u*r1 + v*r2 = r holds; (u, v, r) at the
// stopping point is the return value.
func sugiyamaEuclideanDivide(r1, r2 poly.Poly, upperdeg int) (u, v, r poly.Poly) {
	rOld, rCur := r1, r2
	uOld, uCur := poly.Unit, poly.Zero
	vOld, vCur := poly.Zero, poly.Unit

	for !rCur.IsZero() && rCur.Degree() > upperdeg {
		q, rem := poly.DivMod(rOld, rCur)
		uNew := poly.Add(uOld, poly.Mul(q, uCur))
		vNew := poly.Add(vOld, poly.Mul(q, vCur))
		rOld, rCur = rCur, rem
		uOld, uCur = uCur, uNew
		vOld, vCur = vCur, vNew
	}
	return uCur.RStripZeros(), vCur.RStripZeros(), rCur.RStripZeros()
}
