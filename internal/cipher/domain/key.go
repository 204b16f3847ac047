package domain

import (
	"encoding/base64"
	"fmt"
	"strconv"
	"strings"
)

// Key is the closed set of typed keys, one variant per cipher Kind.
//
// Only the types declared in this package implement Key, so a type switch over
// the eight variants is exhaustive.
type Key interface {
	// Kind returns the cipher the key belongs to.
	Kind() Kind
	// MarshalText returns a canonical textual form of the key. It is used for
	// fingerprints and must never be logged directly.
	MarshalText() ([]byte, error)
	isKey()
}

// ShiftKey is the additive offset of a shift cipher.
type ShiftKey struct {
	Amount int
}

// SubstitutionKey is a permutation of Alphabet: letter i encrypts to Alphabet[i].
type SubstitutionKey struct {
	Alphabet string
}

// AffineKey holds the multiplier A and offset B of c' = A*c + B.
type AffineKey struct {
	A int
	B int
}

// VigenereKey is a non-empty keyword of letters.
type VigenereKey struct {
	Keyword string
}

// HillKey is a 2x2 integer matrix in row-major order.
type HillKey struct {
	Matrix [2][2]int
}

// PermutationKey is a block transposition over positions 1..n; n is the block size.
type PermutationKey struct {
	Order []int
}

// PlayfairKey is the keyword used to build the 5x5 grid.
type PlayfairKey struct {
	Keyword string
}

// OTPKey is a one-time pad. Text payloads read the pad as text and use its letters.
type OTPKey struct {
	Pad []byte
}

func (ShiftKey) Kind() Kind        { return Shift }
func (SubstitutionKey) Kind() Kind { return Substitution }
func (AffineKey) Kind() Kind       { return Affine }
func (VigenereKey) Kind() Kind     { return Vigenere }
func (HillKey) Kind() Kind         { return Hill }
func (PermutationKey) Kind() Kind  { return Permutation }
func (PlayfairKey) Kind() Kind     { return Playfair }
func (OTPKey) Kind() Kind          { return OTP }

func (ShiftKey) isKey()        {}
func (SubstitutionKey) isKey() {}
func (AffineKey) isKey()       {}
func (VigenereKey) isKey()     {}
func (HillKey) isKey()         {}
func (PermutationKey) isKey()  {}
func (PlayfairKey) isKey()     {}
func (OTPKey) isKey()          {}

func (k ShiftKey) MarshalText() ([]byte, error) {
	return []byte("shift:" + strconv.Itoa(k.Amount)), nil
}

func (k SubstitutionKey) MarshalText() ([]byte, error) {
	return []byte("substitution:" + k.Alphabet), nil
}

func (k AffineKey) MarshalText() ([]byte, error) {
	return []byte(fmt.Sprintf("affine:%d,%d", k.A, k.B)), nil
}

func (k VigenereKey) MarshalText() ([]byte, error) {
	return []byte("vigenere:" + k.Keyword), nil
}

func (k HillKey) MarshalText() ([]byte, error) {
	m := k.Matrix
	return []byte(fmt.Sprintf("hill:%d,%d,%d,%d", m[0][0], m[0][1], m[1][0], m[1][1])), nil
}

func (k PermutationKey) MarshalText() ([]byte, error) {
	parts := make([]string, len(k.Order))
	for i, p := range k.Order {
		parts[i] = strconv.Itoa(p)
	}
	return []byte("permutation:" + strings.Join(parts, ",")), nil
}

func (k PlayfairKey) MarshalText() ([]byte, error) {
	return []byte("playfair:" + k.Keyword), nil
}

func (k OTPKey) MarshalText() ([]byte, error) {
	return []byte("otp:" + base64.StdEncoding.EncodeToString(k.Pad)), nil
}

// KeyMaterial is the raw, untyped key supplied by a caller. Only the fields that
// belong to the selected cipher are read.
type KeyMaterial struct {
	Shift    int
	A        int
	B        int
	Alphabet string
	Keyword  string
	Matrix   [2][2]int
	Order    []int
	Pad      []byte
}

// NewKey validates raw key material against the shape required by kind and returns
// the typed key. Arithmetic constraints that depend on the payload mode (affine
// multiplier, Hill determinant) are checked by the cipher itself.
func NewKey(kind Kind, m KeyMaterial) (Key, error) {
	switch kind {
	case Shift:
		return ShiftKey{Amount: m.Shift}, nil
	case Substitution:
		return NewSubstitutionKey(m.Alphabet)
	case Affine:
		return AffineKey{A: m.A, B: m.B}, nil
	case Vigenere:
		return NewVigenereKey(m.Keyword)
	case Hill:
		return HillKey{Matrix: m.Matrix}, nil
	case Permutation:
		return NewPermutationKey(m.Order)
	case Playfair:
		return NewPlayfairKey(m.Keyword), nil
	case OTP:
		return OTPKey{Pad: m.Pad}, nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownCipher, string(kind))
	}
}

// NewSubstitutionKey validates that alphabet is a bijection over the 26 letters.
func NewSubstitutionKey(alphabet string) (SubstitutionKey, error) {
	upper := strings.ToUpper(alphabet)
	if len(upper) != TextModulus {
		return SubstitutionKey{}, fmt.Errorf(
			"%w: substitution key must be 26 unique letters, got %d characters",
			ErrInvalidKeyShape,
			len(upper),
		)
	}

	var seen [TextModulus]bool
	for i := 0; i < len(upper); i++ {
		c := upper[i]
		if !IsLetter(c) {
			return SubstitutionKey{}, fmt.Errorf(
				"%w: substitution key must contain only letters, found %q",
				ErrInvalidKeyShape,
				c,
			)
		}
		if seen[Ordinal(c)] {
			return SubstitutionKey{}, fmt.Errorf(
				"%w: substitution key repeats letter %q",
				ErrInvalidKeyShape,
				c,
			)
		}
		seen[Ordinal(c)] = true
	}

	return SubstitutionKey{Alphabet: upper}, nil
}

// NewVigenereKey validates that keyword is a non-empty run of letters.
func NewVigenereKey(keyword string) (VigenereKey, error) {
	upper := strings.ToUpper(keyword)
	if upper == "" {
		return VigenereKey{}, fmt.Errorf("%w: vigenere key must not be empty", ErrInvalidKeyShape)
	}
	for i := 0; i < len(upper); i++ {
		if !IsLetter(upper[i]) {
			return VigenereKey{}, fmt.Errorf("%w: vigenere key must be letters", ErrInvalidKeyShape)
		}
	}
	return VigenereKey{Keyword: upper}, nil
}

// MatrixFromRows converts a row list into a Hill matrix. Anything other than two rows
// of two integers fails with ErrInvalidKeyShape.
func MatrixFromRows(rows [][]int) ([2][2]int, error) {
	if len(rows) != 2 || len(rows[0]) != 2 || len(rows[1]) != 2 {
		return [2][2]int{}, fmt.Errorf("%w: matrix must be 2x2", ErrInvalidKeyShape)
	}
	return [2][2]int{
		{rows[0][0], rows[0][1]},
		{rows[1][0], rows[1][1]},
	}, nil
}

// NewPermutationKey validates that order is exactly a permutation of 1..n.
func NewPermutationKey(order []int) (PermutationKey, error) {
	n := len(order)
	if n == 0 {
		return PermutationKey{}, fmt.Errorf("%w: permutation key must not be empty", ErrInvalidKeyShape)
	}

	seen := make([]bool, n)
	for _, p := range order {
		if p < 1 || p > n {
			return PermutationKey{}, fmt.Errorf(
				"%w: permutation key position %d out of range 1..%d",
				ErrInvalidKeyShape,
				p,
				n,
			)
		}
		if seen[p-1] {
			return PermutationKey{}, fmt.Errorf(
				"%w: permutation key repeats position %d",
				ErrInvalidKeyShape,
				p,
			)
		}
		seen[p-1] = true
	}

	cp := make([]int, n)
	copy(cp, order)
	return PermutationKey{Order: cp}, nil
}

// NewPlayfairKey normalizes a keyword to grid letters: upper-cased, J folded into I,
// everything outside the alphabet dropped.
func NewPlayfairKey(keyword string) PlayfairKey {
	return PlayfairKey{Keyword: strings.ReplaceAll(Letters(keyword), "J", "I")}
}
