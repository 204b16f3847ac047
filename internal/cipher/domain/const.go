// Package domain defines the classical cipher domain: cipher kinds, directions, payload
// modes, typed key material and the binary container frame.
package domain

import "fmt"

// Kind identifies one of the supported classical ciphers.
type Kind string

const (
	Shift        Kind = "shift"
	Substitution Kind = "substitution"
	Affine       Kind = "affine"
	Vigenere     Kind = "vigenere"
	Hill         Kind = "hill"
	Permutation  Kind = "permutation"
	Playfair     Kind = "playfair"
	OTP          Kind = "otp"
)

// Kinds lists every supported cipher in catalogue order.
var Kinds = []Kind{Shift, Substitution, Affine, Vigenere, Hill, Permutation, Playfair, OTP}

// ParseKind converts a cipher identifier into a Kind. Short aliases such as
// "caesar" and "vig" are accepted.
func ParseKind(s string) (Kind, error) {
	switch s {
	case "shift", "caesar":
		return Shift, nil
	case "substitution", "sub":
		return Substitution, nil
	case "affine":
		return Affine, nil
	case "vigenere", "vig":
		return Vigenere, nil
	case "hill":
		return Hill, nil
	case "permutation", "perm":
		return Permutation, nil
	case "playfair":
		return Playfair, nil
	case "otp", "one-time-pad":
		return OTP, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownCipher, s)
	}
}

// Validate checks if the kind is one of the supported ciphers.
func (k Kind) Validate() error {
	switch k {
	case Shift, Substitution, Affine, Vigenere, Hill, Permutation, Playfair, OTP:
		return nil
	default:
		return fmt.Errorf("%w: %q", ErrUnknownCipher, string(k))
	}
}

// String returns the string representation of the kind.
func (k Kind) String() string {
	return string(k)
}

// Direction selects encryption or decryption.
type Direction string

const (
	Encrypt Direction = "encrypt"
	Decrypt Direction = "decrypt"
)

// ParseDirection converts a direction string into a Direction.
func ParseDirection(s string) (Direction, error) {
	switch s {
	case "encrypt", "Encrypt":
		return Encrypt, nil
	case "decrypt", "Decrypt":
		return Decrypt, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrInvalidDirection, s)
	}
}

// Mode selects the payload domain a cipher operates on.
type Mode string

const (
	// Text payloads are processed over the 26-letter alphabet.
	Text Mode = "text"
	// Binary payloads are processed byte by byte and framed in a Container.
	Binary Mode = "binary"
)

// ParseMode converts a mode string into a Mode. An empty string selects Text.
func ParseMode(s string) (Mode, error) {
	switch s {
	case "", "text":
		return Text, nil
	case "binary", "file":
		return Binary, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrInvalidMode, s)
	}
}

// Modulus returns the size of the arithmetic ring used by the mode.
func (m Mode) Modulus() int {
	if m == Binary {
		return BinaryModulus
	}
	return TextModulus
}

const (
	// TextModulus is the alphabet size used by every text cipher.
	TextModulus = 26
	// BinaryModulus is the byte ring size used by every binary cipher.
	BinaryModulus = 256
	// PlayfairGridSize is the side of the Playfair square (25 letters, J merged into I).
	PlayfairGridSize = 5
	// HillBlockSize is the number of letters or bytes multiplied by a Hill matrix at once.
	HillBlockSize = 2
	// FillerLetter pads text blocks and separates doubled Playfair letters.
	FillerLetter = 'X'
	// FillerByte pads binary blocks.
	FillerByte byte = 0x00
)
