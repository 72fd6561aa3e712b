package rsdecode

import (
	"github.com/qrsyndrome/rsdecode/gf256"
	"github.com/qrsyndrome/rsdecode/poly"
)

// generator returns the degree-n Reed-Solomon generator polynomial whose
// roots are alpha^0..alpha^(n-1): the product of (x + alpha^i).
func generator(n int) poly.Poly {
	g := poly.Unit
	for i := 0; i < n; i++ {
		g = poly.Mul(g, poly.New([]int{gf256.Exp(i), 1}))
	}
	return g
}

// encodeMessage builds a systematic codeword from message bytes
// (message[0] most significant) and n parity symbols: the message is
// shifted into the high-order positions and the remainder of dividing by
// the generator is XORed into the low-order (parity) positions, giving a
// codeword with an all-zero syndrome.
func encodeMessage(message []int, n int) poly.Poly {
	m := len(message)
	shifted := make([]int, n+m)
	for j := 0; j < m; j++ {
		shifted[n+j] = message[m-1-j]
	}
	shiftedPoly := poly.New(shifted)
	_, rem := poly.DivMod(shiftedPoly, generator(n))
	return poly.Add(shiftedPoly, rem)
}

// flip XORs mask into the coefficient at position pos.
func flip(c []int, pos, mask int) {
	c[pos] ^= mask
}
