package service

import (
	"fmt"

	cipherDomain "github.com/allisson/ciphers/internal/cipher/domain"
)

// Mod reduces a into [0, m). m must be positive.
func Mod(a, m int) int {
	r := a % m
	if r < 0 {
		r += m
	}
	return r
}

// GCD returns the greatest common divisor of a and b using Euclid's algorithm.
// The result is never negative.
func GCD(a, b int) int {
	if a < 0 {
		a = -a
	}
	if b < 0 {
		b = -b
	}
	for b != 0 {
		a, b = b, a%b
	}
	return a
}

// ModInverse returns the unique x in [0, m) with a*x ≡ 1 (mod m), computed with the
// extended Euclidean algorithm. Returns ErrNotInvertible when gcd(a, m) != 1.
func ModInverse(a, m int) (int, error) {
	if m <= 1 {
		return 0, fmt.Errorf("%w: modulus must be greater than 1, got %d", cipherDomain.ErrNotInvertible, m)
	}

	oldR, r := Mod(a, m), m
	oldS, s := 1, 0
	for r != 0 {
		q := oldR / r
		oldR, r = r, oldR-q*r
		oldS, s = s, oldS-q*s
	}

	if oldR != 1 {
		return 0, fmt.Errorf("%w: %d has no inverse modulo %d", cipherDomain.ErrNotInvertible, a, m)
	}
	return Mod(oldS, m), nil
}

// MatrixInverse2x2Mod inverts a 2x2 matrix under modulus mod as
// det⁻¹ · [[m11, -m01], [-m10, m00]]. Returns ErrNotInvertible when the determinant
// has no inverse under mod.
func MatrixInverse2x2Mod(m [2][2]int, mod int) ([2][2]int, error) {
	a, b := Mod(m[0][0], mod), Mod(m[0][1], mod)
	c, d := Mod(m[1][0], mod), Mod(m[1][1], mod)

	det := Mod(a*d-b*c, mod)
	detInv, err := ModInverse(det, mod)
	if err != nil {
		return [2][2]int{}, fmt.Errorf("%w: matrix determinant %d is not invertible modulo %d",
			cipherDomain.ErrNotInvertible, det, mod)
	}

	return [2][2]int{
		{Mod(detInv*d, mod), Mod(-detInv*b, mod)},
		{Mod(-detInv*c, mod), Mod(detInv*a, mod)},
	}, nil
}
