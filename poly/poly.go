// Package poly implements dense polynomials over GF(256) with coefficients
// ordered low-degree first (c[0] is the coefficient of x^0), matching the
// convention QR Code Reed-Solomon decoding uses for received codewords:
// message symbols occupy the high-order positions, parity symbols the
// low-order ones.
//
// Polynomials are treated as immutable values: every operation returns a
// new Poly rather than mutating its receiver or arguments.
package poly

import "github.com/qrsyndrome/rsdecode/gf256"

// Poly is a polynomial over GF(256), coefficients low-degree first.
type Poly struct {
	c []int
}

// Unit is the constant polynomial 1.
var Unit = New([]int{1})

// Zero is the zero polynomial.
var Zero = New([]int{0})

// New builds a Poly from a coefficient slice, c[0] the constant term. The
// slice is copied; the caller's slice is never aliased. A nil or empty
// slice is treated as the zero polynomial.
func New(c []int) Poly {
	if len(c) == 0 {
		return Poly{c: []int{0}}
	}
	cp := make([]int, len(c))
	copy(cp, c)
	return Poly{c: cp}
}

// Coefficients returns a copy of the polynomial's coefficients, low-degree
// first.
func (p Poly) Coefficients() []int {
	out := make([]int, len(p.c))
	copy(out, p.c)
	return out
}

// Length returns the number of stored coefficients (not necessarily the
// stripped canonical length).
func (p Poly) Length() int {
	return len(p.c)
}

// IsZero reports whether every coefficient is zero.
func (p Poly) IsZero() bool {
	for _, v := range p.c {
		if v != 0 {
			return false
		}
	}
	return true
}

// Degree returns the index of the highest non-zero coefficient, or 0 for
// the zero polynomial.
func (p Poly) Degree() int {
	for i := len(p.c) - 1; i > 0; i-- {
		if p.c[i] != 0 {
			return i
		}
	}
	return 0
}

// RStripZeros returns the canonical form of p: either length 1, or its
// last coefficient is non-zero.
func (p Poly) RStripZeros() Poly {
	d := p.Degree()
	return New(p.c[:d+1])
}

// Equal reports whether p and q are the same polynomial after stripping
// trailing zeros.
func (p Poly) Equal(q Poly) bool {
	a, b := p.RStripZeros(), q.RStripZeros()
	if len(a.c) != len(b.c) {
		return false
	}
	for i := range a.c {
		if a.c[i] != b.c[i] {
			return false
		}
	}
	return true
}

// Add returns p+q (equivalently p-q, characteristic 2), zero-padding the
// shorter operand.
func Add(p, q Poly) Poly {
	n := len(p.c)
	if len(q.c) > n {
		n = len(q.c)
	}
	out := make([]int, n)
	for i := 0; i < n; i++ {
		var a, b int
		if i < len(p.c) {
			a = p.c[i]
		}
		if i < len(q.c) {
			b = q.c[i]
		}
		out[i] = gf256.Add(a, b)
	}
	return New(out)
}

// Mul returns p*q via schoolbook convolution.
func Mul(p, q Poly) Poly {
	if p.IsZero() || q.IsZero() {
		return Zero
	}
	out := make([]int, len(p.c)+len(q.c)-1)
	for i, a := range p.c {
		if a == 0 {
			continue
		}
		for j, b := range q.c {
			out[i+j] = gf256.Add(out[i+j], gf256.Mul(a, b))
		}
	}
	return New(out)
}

// MulScalar returns p scaled by a single GF(256) element.
func MulScalar(p Poly, s int) Poly {
	if s == 0 {
		return Zero
	}
	out := make([]int, len(p.c))
	for i, a := range p.c {
		out[i] = gf256.Mul(a, s)
	}
	return New(out)
}

// MulMonomial returns p * coefficient * x^degree.
func MulMonomial(p Poly, degree, coefficient int) Poly {
	if coefficient == 0 || degree < 0 {
		return Zero
	}
	out := make([]int, len(p.c)+degree)
	for i, a := range p.c {
		out[i+degree] = gf256.Mul(a, coefficient)
	}
	return New(out)
}

// Monomial returns coefficient * x^degree.
func Monomial(degree, coefficient int) Poly {
	return MulMonomial(Unit, degree, coefficient)
}

// DivMod performs Euclidean polynomial division: a = q*b + r with
// degree(r) < degree(b). Panics if b is the zero polynomial — dividing by
// zero is a caller programming error, not a decodable-input failure.
func DivMod(a, b Poly) (q, r Poly) {
	if b.IsZero() {
		panic("poly: division by zero polynomial")
	}
	bDeg := b.Degree()
	bLead := b.c[bDeg]
	bLeadInv := gf256.Inv(bLead)

	r = a.RStripZeros()
	quot := make([]int, 0)
	for !r.IsZero() && r.Degree() >= bDeg {
		degreeDiff := r.Degree() - bDeg
		scale := gf256.Mul(r.c[r.Degree()], bLeadInv)
		for len(quot) <= degreeDiff {
			quot = append(quot, 0)
		}
		quot[degreeDiff] = scale
		r = Add(r, MulMonomial(b, degreeDiff, scale)).RStripZeros()
	}
	return New(quot), r
}

// Eval evaluates p at x using Horner's method, starting from the leading
// stored coefficient.
func Eval(p Poly, x int) int {
	d := len(p.c) - 1
	v := p.c[d]
	for i := d - 1; i >= 0; i-- {
		v = gf256.Add(gf256.Mul(v, x), p.c[i])
	}
	return v
}

// Derivative returns the formal derivative of p in characteristic 2:
// coefficients originally at even powers vanish, and coefficients
// originally at odd powers shift down one index.
func Derivative(p Poly) Poly {
	d := p.Degree()
	if d == 0 {
		return Zero
	}
	out := make([]int, d)
	for i := 1; i <= d; i += 2 {
		out[i-1] = p.c[i]
	}
	return New(out)
}

// FindRoots brute-forces the roots of p over GF(256) by Chien-search-style
// trial evaluation: for each candidate r in 0..255, p is evaluated at r via
// Horner's method, an O(d) operation, and r is recorded as a root whenever
// p(r) is zero. A found root is then deflated out with a single synthetic
// division by (x+r), so later candidates are tested against the shrunken
// polynomial; no candidate that isn't a root ever pays for a division. The
// result is empty whenever p has fewer than degree(p) distinct roots in
// GF(256) (duplicate roots, or roots outside the field) — callers treat an
// empty result as a decoding failure, never as "the zero polynomial has no
// roots" (FindRoots is never called on the zero polynomial by this
// package).
func FindRoots(p Poly) []int {
	n := p.Degree()
	roots := make([]int, 0, n)
	cur := p
	for r := 0; r <= 255 && n > 0; r++ {
		if Eval(cur, r) != 0 {
			continue
		}
		roots = append(roots, r)
		cur = deflate(cur, r)
		n--
	}
	if n != 0 {
		return nil
	}
	// Reverse to natural order: roots above were found in increasing-r
	// order as successive leading factors were peeled off.
	for i, j := 0, len(roots)-1; i < j; i, j = i+1, j-1 {
		roots[i], roots[j] = roots[j], roots[i]
	}
	return roots
}

// deflate divides cur by (x+r) via synthetic division, assuming r is
// already known to be a root (cur(r) == 0). It is the O(d) counterpart to
// the O(d) candidate test in FindRoots, paid only when a root is found.
func deflate(cur Poly, r int) Poly {
	c := cur.RStripZeros().c
	d := len(c) - 1
	q := make([]int, d)
	q[d-1] = c[d]
	for k := d - 1; k >= 1; k-- {
		q[k-1] = gf256.Add(c[k], gf256.Mul(r, q[k]))
	}
	return New(q)
}
