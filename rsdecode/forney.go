package rsdecode

import (
	"github.com/qrsyndrome/rsdecode/gf256"
	"github.com/qrsyndrome/rsdecode/poly"
)

// Forney computes the error magnitude at each given position from the
// (combined error+erasure) locator and its matching evaluator:
//
//	e_k = (alpha^k * Omega(alpha^-k)) / Lambda'(alpha^-k)
//
// where Lambda' is the formal derivative of the locator. The caller is
// responsible for ensuring positions is exactly the root set of lambda;
// Forney's algorithm gives no defined answer otherwise.
func Forney(lambda, omega poly.Poly, positions []int) []int {
	lambdaPrime := poly.Derivative(lambda)
	magnitudes := make([]int, len(positions))
	for i, k := range positions {
		xInv := gf256.Exp(-k)
		num := gf256.Mul(gf256.Exp(k), poly.Eval(omega, xInv))
		den := poly.Eval(lambdaPrime, xInv)
		magnitudes[i] = gf256.Div(num, den)
	}
	return magnitudes
}
