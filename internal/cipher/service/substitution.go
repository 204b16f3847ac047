package service

import (
	cipherDomain "github.com/allisson/ciphers/internal/cipher/domain"
)

// substitutionBlockLimit is the first byte value of the partial residue block
// (234..255). Those bytes cannot hold all 26 residues and pass through unchanged.
const substitutionBlockLimit = (cipherDomain.BinaryModulus / cipherDomain.TextModulus) * cipherDomain.TextModulus

type substitutionCipher struct {
	forward [cipherDomain.TextModulus]int
	inverse [cipherDomain.TextModulus]int
}

// NewSubstitutionCipher creates a monoalphabetic substitution cipher from a validated
// 26-letter bijection.
func NewSubstitutionCipher(key cipherDomain.SubstitutionKey) (Cipher, error) {
	validated, err := cipherDomain.NewSubstitutionKey(key.Alphabet)
	if err != nil {
		return nil, err
	}

	s := &substitutionCipher{}
	for i := 0; i < cipherDomain.TextModulus; i++ {
		target := cipherDomain.Ordinal(validated.Alphabet[i])
		s.forward[i] = target
		s.inverse[target] = i
	}
	return s, nil
}

func (s *substitutionCipher) EncryptText(text string) (string, error) {
	return mapLetters(text, func(c int) int { return s.forward[c] }), nil
}

func (s *substitutionCipher) DecryptText(text string) (string, error) {
	return mapLetters(text, func(c int) int { return s.inverse[c] }), nil
}

// EncryptBinary remaps the low residue b mod 26 of each byte and keeps its high part
// b div 26, so byte b becomes (b div 26)*26 + table[b mod 26].
func (s *substitutionCipher) EncryptBinary(data []byte) ([]byte, error) {
	return s.remapBytes(data, &s.forward), nil
}

func (s *substitutionCipher) DecryptBinary(data []byte) ([]byte, error) {
	return s.remapBytes(data, &s.inverse), nil
}

func (s *substitutionCipher) remapBytes(data []byte, table *[cipherDomain.TextModulus]int) []byte {
	out := make([]byte, len(data))
	for i, v := range data {
		b := int(v)
		if b >= substitutionBlockLimit {
			out[i] = v
			continue
		}
		high := b / cipherDomain.TextModulus
		out[i] = byte(high*cipherDomain.TextModulus + table[b%cipherDomain.TextModulus])
	}
	return out
}
