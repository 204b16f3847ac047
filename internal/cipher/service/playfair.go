package service

import (
	"fmt"

	cipherDomain "github.com/allisson/ciphers/internal/cipher/domain"
)

// nibbleAlphabet spells the 16 nibble values with grid letters. It excludes the
// filler letter, so fillers inserted during encryption can be dropped on decryption.
const nibbleAlphabet = "ABCDEFGHIKLMNOPQ"

// alternateFiller separates a doubled filler letter.
const alternateFiller = 'Q'

type playfairCipher struct {
	grid *PlayfairGrid
}

// NewPlayfairCipher creates a digraph cipher over grid.
func NewPlayfairCipher(grid *PlayfairGrid) Cipher {
	return &playfairCipher{grid: grid}
}

// EncryptText keeps only letters, folds J into I and splits the result into pairs.
// A pair of equal letters, or a trailing single letter, takes the filler X (Q when
// the letter itself is X) and the second letter starts the next pair.
func (p *playfairCipher) EncryptText(text string) (string, error) {
	pairs := digraphs(foldJ(cipherDomain.Letters(text)))
	return p.apply(pairs, 1), nil
}

// DecryptText reads letters strictly two at a time. Fillers are left in place.
func (p *playfairCipher) DecryptText(text string) (string, error) {
	letters := padLetters(foldJ(cipherDomain.Letters(text)), 2)
	return p.apply(letters, -1), nil
}

// EncryptBinary spells every byte as two nibble letters, high nibble first, and
// encrypts the letters. The result is ASCII letters.
func (p *playfairCipher) EncryptBinary(data []byte) ([]byte, error) {
	spelled := make([]byte, 0, 2*len(data))
	for _, b := range data {
		spelled = append(spelled, nibbleAlphabet[b>>4], nibbleAlphabet[b&0x0f])
	}
	return []byte(p.apply(digraphs(string(spelled)), 1)), nil
}

// DecryptBinary reverses EncryptBinary. Input that is not a well formed letter
// transcoding fails with ErrEncodingFailure.
func (p *playfairCipher) DecryptBinary(data []byte) ([]byte, error) {
	if len(data)%2 != 0 {
		return nil, fmt.Errorf("%w: odd number of letters", cipherDomain.ErrEncodingFailure)
	}
	for i, c := range data {
		if !cipherDomain.IsLetter(c) || c == 'J' {
			return nil, fmt.Errorf("%w: byte %d is not a grid letter", cipherDomain.ErrEncodingFailure, i)
		}
	}

	plain := p.apply(string(data), -1)
	spelled := make([]byte, 0, len(plain))
	for i := 0; i < len(plain); i++ {
		if plain[i] != cipherDomain.FillerLetter {
			spelled = append(spelled, plain[i])
		}
	}
	if len(spelled)%2 != 0 {
		return nil, fmt.Errorf("%w: odd number of nibbles", cipherDomain.ErrEncodingFailure)
	}

	out := make([]byte, len(spelled)/2)
	for i := range out {
		hi, ok1 := nibbleValue(spelled[2*i])
		lo, ok2 := nibbleValue(spelled[2*i+1])
		if !ok1 || !ok2 {
			return nil, fmt.Errorf("%w: letter outside nibble alphabet", cipherDomain.ErrEncodingFailure)
		}
		out[i] = hi<<4 | lo
	}
	return out, nil
}

// apply runs the digraph rules over an even-length letter string. dir is 1 to
// encrypt and -1 to decrypt.
func (p *playfairCipher) apply(letters string, dir int) string {
	out := make([]byte, len(letters))
	for i := 0; i+1 < len(letters); i += 2 {
		a, b := p.grid.position(letters[i]), p.grid.position(letters[i+1])
		switch {
		case a.row == b.row:
			out[i] = p.grid.at(a.row, a.col+dir)
			out[i+1] = p.grid.at(b.row, b.col+dir)
		case a.col == b.col:
			out[i] = p.grid.at(a.row+dir, a.col)
			out[i+1] = p.grid.at(b.row+dir, b.col)
		default:
			out[i] = p.grid.at(a.row, b.col)
			out[i+1] = p.grid.at(b.row, a.col)
		}
	}
	return string(out)
}

// digraphs inserts fillers so that letters splits into pairs of distinct letters.
func digraphs(letters string) string {
	out := make([]byte, 0, len(letters)+len(letters)/2+1)
	for i := 0; i < len(letters); {
		a := letters[i]
		if i+1 < len(letters) && letters[i+1] != a {
			out = append(out, a, letters[i+1])
			i += 2
			continue
		}
		out = append(out, a, fillerFor(a))
		i++
	}
	return string(out)
}

func fillerFor(c byte) byte {
	if c == cipherDomain.FillerLetter {
		return alternateFiller
	}
	return cipherDomain.FillerLetter
}

func foldJ(letters string) string {
	b := []byte(letters)
	for i, c := range b {
		if c == 'J' {
			b[i] = 'I'
		}
	}
	return string(b)
}

func nibbleValue(c byte) (byte, bool) {
	for i := 0; i < len(nibbleAlphabet); i++ {
		if nibbleAlphabet[i] == c {
			return byte(i), true
		}
	}
	return 0, false
}
