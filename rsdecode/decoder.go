package rsdecode

import (
	"github.com/qrsyndrome/rsdecode/bitutil"
	"github.com/qrsyndrome/rsdecode/poly"
)

// BMDecode corrects r using Berlekamp-Massey with no known erasures.
func BMDecode(r poly.Poly, n int) (poly.Poly, error) {
	return BMDecodeErasures(r, nil, n)
}

// BMDecodeErasures corrects r using Berlekamp-Massey, treating erasures as
// known error positions.
func BMDecodeErasures(r poly.Poly, erasures []int, n int) (poly.Poly, error) {
	if err := validateInput(r, erasures, n); err != nil {
		return poly.Zero, err
	}
	s := SyndromePolynomial(r, n)
	if s.IsZero() {
		return r, nil
	}
	lambda, err := BerlekampMassey(s, erasures, true)
	if err != nil {
		return poly.Zero, err
	}
	positions := Positions(lambda)
	if len(positions) == 0 {
		return poly.Zero, ErrReedSolomon
	}
	omega := truncate(poly.Mul(s, lambda), n)
	return correct(r, lambda, omega, positions)
}

// EuclideanDecode corrects r using Sugiyama's Euclidean algorithm with no
// known erasures.
func EuclideanDecode(r poly.Poly, n int) (poly.Poly, error) {
	return EuclideanDecodeErasures(r, nil, n)
}

// EuclideanDecodeErasures corrects r using Sugiyama's Euclidean algorithm,
// combining the erasure locator with the error locator it solves for.
func EuclideanDecodeErasures(r poly.Poly, erasures []int, n int) (poly.Poly, error) {
	if err := validateInput(r, erasures, n); err != nil {
		return poly.Zero, err
	}
	s := SyndromePolynomial(r, n)
	if s.IsZero() {
		return r, nil
	}

	gamma := ErrataLocatorPolynomial(erasures)
	xn := poly.Monomial(n, 1)
	upperdeg := (n+len(erasures))/2 - 1

	lambda, _, omega := sugiyamaEuclideanDivide(poly.Mul(s, gamma), xn, upperdeg)

	errataLocator := poly.Mul(lambda, gamma)
	positions := append(Positions(lambda), erasures...)
	if len(positions) != errataLocator.Degree() {
		return poly.Zero, ErrReedSolomon
	}

	omegaTrunc := truncate(omega, n)
	return correct(r, errataLocator, omegaTrunc, positions)
}

// FillErasures corrects r given a complete set of erasure positions: the
// error locations are already known, so no root-finding or Berlekamp-
// Massey/Euclidean search is needed, only the erasure locator and Forney's
// algorithm.
func FillErasures(r poly.Poly, erasures []int, n int) (poly.Poly, error) {
	if err := validateInput(r, erasures, n); err != nil {
		return poly.Zero, err
	}
	s := SyndromePolynomial(r, n)
	if s.IsZero() {
		return r, nil
	}
	gamma := ErrataLocatorPolynomial(erasures)
	omega := truncate(poly.Mul(s, gamma), n)
	return correct(r, gamma, omega, erasures)
}

// correct applies Forney's algorithm against locator/omega/positions and
// XORs the resulting magnitudes into r at those positions.
func correct(r, locator, omega poly.Poly, positions []int) (poly.Poly, error) {
	magnitudes := Forney(locator, omega, positions)
	corrected := r.Coefficients()
	for i, pos := range positions {
		if pos < 0 || pos >= len(corrected) {
			return poly.Zero, ErrReedSolomon
		}
		corrected[pos] ^= magnitudes[i]
	}
	return poly.New(corrected), nil
}

// truncate returns p's coefficients 0..n-1, the window the error
// evaluator polynomial must be reduced to before Forney correction.
func truncate(p poly.Poly, n int) poly.Poly {
	c := p.Coefficients()
	if len(c) > n {
		c = c[:n]
	}
	return poly.New(c)
}

// validateInput checks the domain-error conditions shared by every
// decoder facade: received-word length, non-negative n, in-range and
// non-duplicate erasure positions, and |erasures| <= n.
func validateInput(r poly.Poly, erasures []int, n int) error {
	if r.Length() > 255 {
		return ErrInvalidInput
	}
	if n < 0 {
		return ErrInvalidInput
	}
	if _, ok := bitutil.NewBitArrayFromPositions(erasures, r.Length()); !ok {
		return ErrInvalidInput
	}
	if len(erasures) > n {
		return ErrReedSolomon
	}
	return nil
}
