// Package dto provides data transfer objects for HTTP request and response handling.
package dto

import (
	"encoding/base64"
	"encoding/json"
	"fmt"

	validation "github.com/jellydator/validation"

	cipherDomain "github.com/allisson/ciphers/internal/cipher/domain"
	customValidation "github.com/allisson/ciphers/internal/validation"
)

// KeyRequest carries raw key material. Only the fields read by the selected cipher
// need to be set.
type KeyRequest struct {
	Shift    *int    `json:"shift,omitempty"`
	A        *int    `json:"a,omitempty"`
	B        *int    `json:"b,omitempty"`
	Keyword  string  `json:"keyword,omitempty"`
	Alphabet string  `json:"alphabet,omitempty"`
	Matrix   [][]int `json:"matrix,omitempty"` // Two rows of two integers
	Order    []int   `json:"order,omitempty"`
	Pad      string  `json:"pad,omitempty"`      // Base64-encoded pad bytes
	PadText  string  `json:"pad_text,omitempty"` // Pad given as plain text
}

// ParseKeyRequest decodes a JSON key document, as sent in multipart form fields.
func ParseKeyRequest(raw string) (KeyRequest, error) {
	var key KeyRequest
	if raw == "" {
		return key, nil
	}
	if err := json.Unmarshal([]byte(raw), &key); err != nil {
		return KeyRequest{}, fmt.Errorf("invalid key document: %w", err)
	}
	return key, nil
}

// ValidateFor checks that the fields required by kind are present and well formed.
func (k *KeyRequest) ValidateFor(kind cipherDomain.Kind) error {
	return validation.ValidateStruct(k,
		validation.Field(&k.Shift,
			validation.When(kind == cipherDomain.Shift, validation.NotNil),
		),
		validation.Field(&k.A,
			validation.When(kind == cipherDomain.Affine, validation.NotNil),
		),
		validation.Field(&k.B,
			validation.When(kind == cipherDomain.Affine, validation.NotNil),
		),
		validation.Field(&k.Alphabet,
			validation.When(kind == cipherDomain.Substitution,
				validation.Required,
				validation.Length(cipherDomain.TextModulus, cipherDomain.TextModulus),
				customValidation.Letters,
			),
		),
		validation.Field(&k.Keyword,
			validation.When(kind == cipherDomain.Vigenere,
				validation.Required,
				customValidation.Letters,
			),
			validation.When(kind == cipherDomain.Playfair,
				validation.Required,
				customValidation.ContainsLetter,
			),
		),
		validation.Field(&k.Matrix,
			validation.When(kind == cipherDomain.Hill, validation.Required, validation.By(matrixShape)),
		),
		validation.Field(&k.Order,
			validation.When(kind == cipherDomain.Permutation, validation.Required),
		),
		validation.Field(&k.Pad,
			validation.When(kind == cipherDomain.OTP && k.PadText == "", validation.Required),
			customValidation.Base64,
		),
	)
}

func matrixShape(value interface{}) error {
	rows, _ := value.([][]int)
	if _, err := cipherDomain.MatrixFromRows(rows); err != nil {
		return validation.NewError("validation_matrix_shape", "must be two rows of two integers")
	}
	return nil
}

// ToKeyMaterial converts the request into domain key material. The pad is taken
// from Pad when set and from PadText otherwise.
func (k *KeyRequest) ToKeyMaterial() (cipherDomain.KeyMaterial, error) {
	material := cipherDomain.KeyMaterial{
		Keyword:  k.Keyword,
		Alphabet: k.Alphabet,
		Order:    k.Order,
	}
	if k.Shift != nil {
		material.Shift = *k.Shift
	}
	if k.A != nil {
		material.A = *k.A
	}
	if k.B != nil {
		material.B = *k.B
	}
	if k.Matrix != nil {
		matrix, err := cipherDomain.MatrixFromRows(k.Matrix)
		if err != nil {
			return cipherDomain.KeyMaterial{}, err
		}
		material.Matrix = matrix
	}

	if k.Pad != "" {
		pad, err := base64.StdEncoding.DecodeString(k.Pad)
		if err != nil {
			return cipherDomain.KeyMaterial{}, fmt.Errorf("invalid base64 pad: %w", err)
		}
		material.Pad = pad
	} else if k.PadText != "" {
		material.Pad = []byte(k.PadText)
	}

	return material, nil
}

// TransformRequest contains the parameters of a JSON transform call.
type TransformRequest struct {
	Mode     string     `json:"mode"`     // "text" (default) or "binary"
	Text     string     `json:"text"`     // Text mode payload
	Data     string     `json:"data"`     // Binary mode payload, base64-encoded
	Filename string     `json:"filename"` // Binary encrypt only: name stored in the container
	Key      KeyRequest `json:"key"`
	Format   string     `json:"format"` // "normal", "nospace" or "groups"; text results only
}

// Validate checks the request for a transform with the given cipher.
func (r *TransformRequest) Validate(kind cipherDomain.Kind) error {
	binary := r.Mode == string(cipherDomain.Binary) || r.Mode == "file"

	return validation.ValidateStruct(r,
		validation.Field(&r.Mode,
			validation.In("", string(cipherDomain.Text), string(cipherDomain.Binary), "file"),
		),
		validation.Field(&r.Text,
			validation.When(!binary, validation.Required, customValidation.NotBlank),
		),
		validation.Field(&r.Data,
			validation.When(binary, validation.Required),
			customValidation.Base64,
		),
		validation.Field(&r.Filename,
			validation.Length(0, cipherDomain.MaxFilenameBytes),
			customValidation.Filename,
		),
		validation.Field(&r.Key,
			validation.By(func(interface{}) error { return r.Key.ValidateFor(kind) }),
		),
		validation.Field(&r.Format,
			validation.In(
				"",
				string(cipherDomain.FormatNormal),
				string(cipherDomain.FormatNoSpace),
				string(cipherDomain.FormatGroups),
			),
		),
	)
}

// ToInput converts a validated request into a dispatcher input.
func (r *TransformRequest) ToInput(
	kind cipherDomain.Kind,
	direction cipherDomain.Direction,
) (*cipherDomain.TransformInput, error) {
	mode, err := cipherDomain.ParseMode(r.Mode)
	if err != nil {
		return nil, err
	}

	key, err := r.Key.ToKeyMaterial()
	if err != nil {
		return nil, err
	}

	input := &cipherDomain.TransformInput{
		Kind:      kind,
		Direction: direction,
		Mode:      mode,
		Key:       key,
		Filename:  r.Filename,
	}

	if mode == cipherDomain.Text {
		input.Text = r.Text
		return input, nil
	}

	data, err := base64.StdEncoding.DecodeString(r.Data)
	if err != nil {
		return nil, fmt.Errorf("invalid base64 data: %w", err)
	}
	input.Data = data
	return input, nil
}
