package service

import (
	"math"

	cipherDomain "github.com/allisson/ciphers/internal/cipher/domain"
)

type vigenereCipher struct {
	shifts     []int
	byteShifts []int
}

// NewVigenereCipher creates a repeating-keyword additive cipher.
//
// Text mode shifts each letter by the ordinal of the next keyword letter; the keyword
// position advances only on letters. Binary mode rescales each keyword ordinal k in
// 0..25 to round(k/25*255) and shifts every byte by it. Encryption and decryption use
// the same rescaled value, so binary round trips are exact even though only 26 of the
// 256 possible byte shifts are reachable.
func NewVigenereCipher(key cipherDomain.VigenereKey) (Cipher, error) {
	validated, err := cipherDomain.NewVigenereKey(key.Keyword)
	if err != nil {
		return nil, err
	}

	shifts := lettersToOrdinals(validated.Keyword)
	byteShifts := make([]int, len(shifts))
	for i, k := range shifts {
		byteShifts[i] = ScaleLetterToByte(k)
	}
	return &vigenereCipher{shifts: shifts, byteShifts: byteShifts}, nil
}

// ScaleLetterToByte maps a letter ordinal 0..25 linearly onto 0..255.
func ScaleLetterToByte(k int) int {
	return int(math.Round(float64(k) / float64(cipherDomain.TextModulus-1) * float64(cipherDomain.BinaryModulus-1)))
}

func (v *vigenereCipher) EncryptText(text string) (string, error) {
	return v.text(text, 1), nil
}

func (v *vigenereCipher) DecryptText(text string) (string, error) {
	return v.text(text, -1), nil
}

func (v *vigenereCipher) text(text string, sign int) string {
	j := 0
	return mapLetters(text, func(c int) int {
		shift := v.shifts[j%len(v.shifts)]
		j++
		return c + sign*shift
	})
}

func (v *vigenereCipher) EncryptBinary(data []byte) ([]byte, error) {
	return v.binary(data, 1), nil
}

func (v *vigenereCipher) DecryptBinary(data []byte) ([]byte, error) {
	return v.binary(data, -1), nil
}

func (v *vigenereCipher) binary(data []byte, sign int) []byte {
	out := make([]byte, len(data))
	for i, b := range data {
		shift := v.byteShifts[i%len(v.byteShifts)]
		out[i] = byte(Mod(int(b)+sign*shift, cipherDomain.BinaryModulus))
	}
	return out
}
