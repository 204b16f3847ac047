package domain

import "strings"

const (
	// Alphabet is the ordered 26-letter alphabet shared by all text ciphers.
	Alphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZ"
	// PlayfairAlphabet is the 25-letter grid alphabet with J merged into I.
	PlayfairAlphabet = "ABCDEFGHIKLMNOPQRSTUVWXYZ"
)

// IsLetter reports whether c is an upper-case letter of Alphabet.
func IsLetter(c byte) bool {
	return c >= 'A' && c <= 'Z'
}

// Ordinal maps an upper-case letter to its position 0-25 in Alphabet.
// The caller must ensure IsLetter(c).
func Ordinal(c byte) int {
	return int(c - 'A')
}

// Letter maps any integer to its letter, reducing it modulo 26 first.
func Letter(n int) byte {
	n %= TextModulus
	if n < 0 {
		n += TextModulus
	}
	return Alphabet[n]
}

// NormalizeText upper-cases a text payload. Only A-Z take part in cipher arithmetic.
func NormalizeText(text string) string {
	return strings.ToUpper(text)
}

// Letters upper-cases s and keeps only the letters of Alphabet.
func Letters(s string) string {
	upper := strings.ToUpper(s)
	var b strings.Builder
	b.Grow(len(upper))
	for i := 0; i < len(upper); i++ {
		if IsLetter(upper[i]) {
			b.WriteByte(upper[i])
		}
	}
	return b.String()
}
