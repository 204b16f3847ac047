package domain

import "slices"

// CipherInfo describes a cipher and the key material it reads.
type CipherInfo struct {
	Kind        Kind
	Name        string
	KeyFields   []string
	Description string
}

var catalogue = []CipherInfo{
	{
		Kind:        Shift,
		Name:        "Shift",
		KeyFields:   []string{"shift"},
		Description: "Adds a fixed offset to every letter (mod 26) or byte (mod 256).",
	},
	{
		Kind:        Substitution,
		Name:        "Substitution",
		KeyFields:   []string{"alphabet"},
		Description: "Replaces each letter through a 26-letter permutation alphabet.",
	},
	{
		Kind:        Affine,
		Name:        "Affine",
		KeyFields:   []string{"a", "b"},
		Description: "Maps c to a*c+b; a must be coprime with the modulus.",
	},
	{
		Kind:        Vigenere,
		Name:        "Vigenère",
		KeyFields:   []string{"keyword"},
		Description: "Shifts by the letters of a repeating keyword.",
	},
	{
		Kind:        Hill,
		Name:        "Hill",
		KeyFields:   []string{"matrix"},
		Description: "Multiplies symbol pairs by a 2x2 matrix; decryption needs an invertible determinant.",
	},
	{
		Kind:        Permutation,
		Name:        "Permutation",
		KeyFields:   []string{"order"},
		Description: "Reorders fixed-size blocks following a permutation of 1..n.",
	},
	{
		Kind:        Playfair,
		Name:        "Playfair",
		KeyFields:   []string{"keyword"},
		Description: "Encrypts letter pairs on a 5x5 keyword grid with J merged into I.",
	},
	{
		Kind:        OTP,
		Name:        "One-time pad",
		KeyFields:   []string{"pad", "pad_text"},
		Description: "Adds a pad at least as long as the payload.",
	},
}

// Catalogue returns the supported ciphers in display order.
func Catalogue() []CipherInfo {
	out := make([]CipherInfo, len(catalogue))
	for i, info := range catalogue {
		info.KeyFields = slices.Clone(info.KeyFields)
		out[i] = info
	}
	return out
}
