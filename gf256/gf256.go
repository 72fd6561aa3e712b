// Package gf256 implements arithmetic over GF(256) under the QR Code
// Reed-Solomon primitive polynomial x^8 + x^4 + x^3 + x^2 + 1 (0x11D).
//
// The exponent/log tables are built once at package init and never mutated
// afterward, so every exported function here is safe to call concurrently
// from multiple goroutines on distinct inputs.
package gf256

// Primitive is the QR Code Reed-Solomon primitive polynomial, 0x11D.
const Primitive = 0x11D

// Size is the number of elements in the field.
const Size = 256

var (
	expTable [Size]int
	logTable [Size]int
)

func init() {
	x := 1
	for i := 0; i < Size-1; i++ {
		expTable[i] = x
		logTable[x] = i
		x *= 2
		if x >= Size {
			x ^= Primitive
		}
	}
	// expTable is periodic modulo Size-1; the wraparound entry repeats
	// expTable[0]. Every lookup below reduces its index modulo Size-1
	// first, so that entry is never read.
	expTable[Size-1] = expTable[0]
}

// Add returns a+b in GF(256). Addition and subtraction coincide in
// characteristic 2.
func Add(a, b int) int {
	return a ^ b
}

// Sub returns a-b in GF(256). Identical to Add; kept as a separate name so
// call sites read like ordinary arithmetic.
func Sub(a, b int) int {
	return a ^ b
}

// Mul returns a*b in GF(256).
func Mul(a, b int) int {
	if a == 0 || b == 0 {
		return 0
	}
	return expTable[(logTable[a]+logTable[b])%(Size-1)]
}

// Exp returns 2^k in GF(256) for any integer k, positive, negative, or
// outside [0, 254]; the exponent is reduced modulo 255 in the mathematical
// sense (the result of the reduction is always in [0, 254]).
func Exp(k int) int {
	k %= Size - 1
	if k < 0 {
		k += Size - 1
	}
	return expTable[k]
}

// Log returns the discrete log (base the field generator) of a.
// Panics if a is zero: the log of zero is undefined in GF(256).
func Log(a int) int {
	if a == 0 {
		panic("gf256: log of zero")
	}
	return logTable[a]
}

// Inv returns the multiplicative inverse of a. Panics if a is zero.
func Inv(a int) int {
	if a == 0 {
		panic("gf256: inverse of zero")
	}
	return expTable[(Size-1-logTable[a])%(Size-1)]
}

// Div returns a/b in GF(256). Panics if b is zero.
func Div(a, b int) int {
	if b == 0 {
		panic("gf256: division by zero")
	}
	if a == 0 {
		return 0
	}
	return expTable[((logTable[a]-logTable[b])%(Size-1)+(Size-1))%(Size-1)]
}
