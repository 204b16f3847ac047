package service

import (
	cipherDomain "github.com/allisson/ciphers/internal/cipher/domain"
)

type hillCipher struct {
	matrix [2][2]int
}

// NewHillCipher creates a 2x2 Hill cipher. Encryption accepts any matrix; decryption
// fails with ErrNotInvertible when the determinant has no inverse under the modulus.
func NewHillCipher(key cipherDomain.HillKey) Cipher {
	return &hillCipher{matrix: key.Matrix}
}

// EncryptText keeps only letters, pads an odd count with the filler letter and
// multiplies each letter pair by the key matrix.
func (h *hillCipher) EncryptText(text string) (string, error) {
	return h.text(text, h.matrix), nil
}

func (h *hillCipher) DecryptText(text string) (string, error) {
	inv, err := MatrixInverse2x2Mod(h.matrix, cipherDomain.TextModulus)
	if err != nil {
		return "", err
	}
	return h.text(text, inv), nil
}

func (h *hillCipher) EncryptBinary(data []byte) ([]byte, error) {
	return h.binary(data, h.matrix), nil
}

func (h *hillCipher) DecryptBinary(data []byte) ([]byte, error) {
	inv, err := MatrixInverse2x2Mod(h.matrix, cipherDomain.BinaryModulus)
	if err != nil {
		return nil, err
	}
	return h.binary(data, inv), nil
}

func (h *hillCipher) text(text string, m [2][2]int) string {
	letters := padLetters(cipherDomain.Letters(text), cipherDomain.HillBlockSize)
	v := lettersToOrdinals(letters)
	multiplyPairs(v, m, cipherDomain.TextModulus)
	return ordinalsToLetters(v)
}

func (h *hillCipher) binary(data []byte, m [2][2]int) []byte {
	padded := padBytes(data, cipherDomain.HillBlockSize)
	v := make([]int, len(padded))
	for i, b := range padded {
		v[i] = int(b)
	}
	multiplyPairs(v, m, cipherDomain.BinaryModulus)
	for i, n := range v {
		padded[i] = byte(n)
	}
	return padded
}

// multiplyPairs replaces each consecutive pair (x, y) of v in place by M·(x, y) mod m.
// len(v) must be even.
func multiplyPairs(v []int, m [2][2]int, mod int) {
	a, b := Mod(m[0][0], mod), Mod(m[0][1], mod)
	c, d := Mod(m[1][0], mod), Mod(m[1][1], mod)
	for i := 0; i+1 < len(v); i += 2 {
		x, y := v[i], v[i+1]
		v[i] = (a*x + b*y) % mod
		v[i+1] = (c*x + d*y) % mod
	}
}
