package rsdecode

import (
	"testing"

	"github.com/qrsyndrome/rsdecode/poly"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestForneyRecoversInjectedMagnitudes(t *testing.T) {
	c := encodeMessage([]int{9, 8, 7, 6}, 8)
	received := c.Coefficients()
	positions := []int{0, 3, 6}
	magnitudes := []int{0x11, 0x22, 0x33}
	for i, pos := range positions {
		flip(received, pos, magnitudes[i])
	}
	r := poly.New(received)

	s := SyndromePolynomial(r, 8)
	lambda, err := BerlekampMassey(s, nil, true)
	require.NoError(t, err)
	got := Positions(lambda)
	require.Len(t, got, len(positions))

	omega := truncate(poly.Mul(s, lambda), 8)
	e := Forney(lambda, omega, got)

	for i, pos := range got {
		want := magnitudes[indexOf(positions, pos)]
		assert.Equal(t, want, e[i])
	}
}

func indexOf(s []int, v int) int {
	for i, x := range s {
		if x == v {
			return i
		}
	}
	return -1
}
