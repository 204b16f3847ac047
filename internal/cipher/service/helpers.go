package service

import (
	"strings"

	cipherDomain "github.com/allisson/ciphers/internal/cipher/domain"
)

// mapLetters upper-cases text and replaces every letter by f(ordinal) reduced modulo
// 26. Other characters are copied through and f is not called for them, so stateful
// callers only count letters.
func mapLetters(text string, f func(ordinal int) int) string {
	upper := cipherDomain.NormalizeText(text)
	var b strings.Builder
	b.Grow(len(upper))
	for i := 0; i < len(upper); i++ {
		c := upper[i]
		if cipherDomain.IsLetter(c) {
			b.WriteByte(cipherDomain.Letter(f(cipherDomain.Ordinal(c))))
			continue
		}
		b.WriteByte(c)
	}
	return b.String()
}

// mapBytes applies f to every byte and reduces the result modulo 256.
func mapBytes(data []byte, f func(b int) int) []byte {
	out := make([]byte, len(data))
	for i, v := range data {
		out[i] = byte(Mod(f(int(v)), cipherDomain.BinaryModulus))
	}
	return out
}

// padLetters appends the filler letter until len(s) is a multiple of n.
func padLetters(s string, n int) string {
	if r := len(s) % n; r != 0 {
		return s + strings.Repeat(string(rune(cipherDomain.FillerLetter)), n-r)
	}
	return s
}

// padBytes returns a copy of data extended with the filler byte to a multiple of n.
func padBytes(data []byte, n int) []byte {
	size := len(data)
	if r := size % n; r != 0 {
		size += n - r
	}
	out := make([]byte, size)
	copy(out, data)
	for i := len(data); i < size; i++ {
		out[i] = cipherDomain.FillerByte
	}
	return out
}

// lettersToOrdinals converts an all-letter string into ordinals.
func lettersToOrdinals(s string) []int {
	out := make([]int, len(s))
	for i := 0; i < len(s); i++ {
		out[i] = cipherDomain.Ordinal(s[i])
	}
	return out
}

// ordinalsToLetters converts ordinals back into letters.
func ordinalsToLetters(v []int) string {
	out := make([]byte, len(v))
	for i, n := range v {
		out[i] = cipherDomain.Letter(n)
	}
	return string(out)
}
