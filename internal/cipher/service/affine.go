package service

import (
	"fmt"

	cipherDomain "github.com/allisson/ciphers/internal/cipher/domain"
)

type affineCipher struct {
	a int
	b int
}

// NewAffineCipher creates an affine cipher c' = (a*c + b) mod m. The multiplier is
// checked against the modulus of each mode before any symbol is processed.
func NewAffineCipher(key cipherDomain.AffineKey) Cipher {
	return &affineCipher{a: key.A, b: key.B}
}

// params returns a and b reduced modulo m together with a⁻¹.
func (a *affineCipher) params(m int) (int, int, int, error) {
	if GCD(Mod(a.a, m), m) != 1 {
		return 0, 0, 0, fmt.Errorf("%w: affine multiplier %d must be coprime with %d",
			cipherDomain.ErrNotInvertible, a.a, m)
	}
	inv, err := ModInverse(a.a, m)
	if err != nil {
		return 0, 0, 0, err
	}
	return Mod(a.a, m), Mod(a.b, m), inv, nil
}

func (a *affineCipher) EncryptText(text string) (string, error) {
	mul, off, _, err := a.params(cipherDomain.TextModulus)
	if err != nil {
		return "", err
	}
	return mapLetters(text, func(c int) int { return mul*c + off }), nil
}

func (a *affineCipher) DecryptText(text string) (string, error) {
	_, off, inv, err := a.params(cipherDomain.TextModulus)
	if err != nil {
		return "", err
	}
	return mapLetters(text, func(c int) int { return inv * (c - off + cipherDomain.TextModulus) }), nil
}

func (a *affineCipher) EncryptBinary(data []byte) ([]byte, error) {
	mul, off, _, err := a.params(cipherDomain.BinaryModulus)
	if err != nil {
		return nil, err
	}
	return mapBytes(data, func(v int) int { return mul*v + off }), nil
}

func (a *affineCipher) DecryptBinary(data []byte) ([]byte, error) {
	_, off, inv, err := a.params(cipherDomain.BinaryModulus)
	if err != nil {
		return nil, err
	}
	return mapBytes(data, func(v int) int { return inv * (v - off + cipherDomain.BinaryModulus) }), nil
}
