package service

import (
	"fmt"

	cipherDomain "github.com/allisson/ciphers/internal/cipher/domain"
)

// Factory builds ciphers from typed keys. Playfair grids are taken from the grid
// cache when one is configured.
type Factory struct {
	grids *GridCache
}

// NewFactory creates a cipher factory. grids may be nil.
func NewFactory(grids *GridCache) *Factory {
	return &Factory{grids: grids}
}

// New creates the cipher matching the variant of key.
func (f *Factory) New(key cipherDomain.Key) (Cipher, error) {
	switch k := key.(type) {
	case cipherDomain.ShiftKey:
		return NewShiftCipher(k), nil
	case cipherDomain.SubstitutionKey:
		return NewSubstitutionCipher(k)
	case cipherDomain.AffineKey:
		return NewAffineCipher(k), nil
	case cipherDomain.VigenereKey:
		return NewVigenereCipher(k)
	case cipherDomain.HillKey:
		return NewHillCipher(k), nil
	case cipherDomain.PermutationKey:
		return NewPermutationCipher(k)
	case cipherDomain.PlayfairKey:
		return NewPlayfairCipher(f.grids.Get(k)), nil
	case cipherDomain.OTPKey:
		return NewOTPCipher(k), nil
	default:
		return nil, fmt.Errorf("%w: unsupported key type %T", cipherDomain.ErrUnknownCipher, key)
	}
}
