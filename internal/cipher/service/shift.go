package service

import (
	cipherDomain "github.com/allisson/ciphers/internal/cipher/domain"
)

type shiftCipher struct {
	amount int
}

// NewShiftCipher creates a shift (Caesar) cipher: c' = (c + k) mod 26 for letters and
// b' = (b + k) mod 256 for bytes.
func NewShiftCipher(key cipherDomain.ShiftKey) Cipher {
	// 26*256 is a common multiple of both moduli: reducing by it keeps every residue
	// and keeps c+k far from overflow.
	return &shiftCipher{amount: key.Amount % (cipherDomain.TextModulus * cipherDomain.BinaryModulus)}
}

func (s *shiftCipher) EncryptText(text string) (string, error) {
	return mapLetters(text, func(c int) int { return c + s.amount }), nil
}

func (s *shiftCipher) DecryptText(text string) (string, error) {
	return mapLetters(text, func(c int) int { return c - s.amount }), nil
}

func (s *shiftCipher) EncryptBinary(data []byte) ([]byte, error) {
	return mapBytes(data, func(b int) int { return b + s.amount }), nil
}

func (s *shiftCipher) DecryptBinary(data []byte) ([]byte, error) {
	return mapBytes(data, func(b int) int { return b - s.amount }), nil
}
