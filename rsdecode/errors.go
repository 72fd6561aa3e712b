// Package rsdecode implements Reed-Solomon syndrome decoding over GF(256)
// for QR Code codewords: computing syndromes and errata locators, running
// Berlekamp-Massey and Sugiyama's Euclidean algorithm to find the error
// locator and evaluator, and applying Forney's algorithm to correct the
// received word in place.
package rsdecode

import "errors"

// ErrInvalidInput marks a malformed call: a received word longer than the
// field size, a negative parity count, an erasure position outside the
// word, or a duplicate erasure position.
var ErrInvalidInput = errors.New("rsdecode: invalid input")

// ErrReedSolomon marks a received word with more errors than the code can
// correct, or a locator that could not be resolved to a consistent set of
// positions.
var ErrReedSolomon = errors.New("rsdecode: uncorrectable")
