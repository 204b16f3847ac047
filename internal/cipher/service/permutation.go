package service

import (
	cipherDomain "github.com/allisson/ciphers/internal/cipher/domain"
)

type permutationCipher struct {
	// order holds zero-based target positions: block[j] moves to order[j].
	order []int
}

// NewPermutationCipher creates a block transposition cipher. The block size is the key
// length; payloads are padded with the filler symbol to a multiple of it.
func NewPermutationCipher(key cipherDomain.PermutationKey) (Cipher, error) {
	validated, err := cipherDomain.NewPermutationKey(key.Order)
	if err != nil {
		return nil, err
	}

	order := make([]int, len(validated.Order))
	for i, p := range validated.Order {
		order[i] = p - 1
	}
	return &permutationCipher{order: order}, nil
}

func (p *permutationCipher) EncryptText(text string) (string, error) {
	letters := []byte(padLetters(cipherDomain.Letters(text), len(p.order)))
	return string(p.permute(letters, true)), nil
}

func (p *permutationCipher) DecryptText(text string) (string, error) {
	letters := []byte(padLetters(cipherDomain.Letters(text), len(p.order)))
	return string(p.permute(letters, false)), nil
}

func (p *permutationCipher) EncryptBinary(data []byte) ([]byte, error) {
	return p.permute(padBytes(data, len(p.order)), true), nil
}

func (p *permutationCipher) DecryptBinary(data []byte) ([]byte, error) {
	return p.permute(padBytes(data, len(p.order)), false), nil
}

// permute transposes every block of the already padded input. Encryption scatters
// block[j] to out[order[j]]; decryption gathers it back from there.
func (p *permutationCipher) permute(in []byte, encrypt bool) []byte {
	n := len(p.order)
	out := make([]byte, len(in))
	for start := 0; start+n <= len(in); start += n {
		for j, target := range p.order {
			if encrypt {
				out[start+target] = in[start+j]
			} else {
				out[start+j] = in[start+target]
			}
		}
	}
	return out
}
