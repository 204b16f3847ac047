package domain

import (
	"github.com/allisson/ciphers/internal/errors"
)

// Cipher error definitions.
//
// Every error is a deterministic input validation failure and wraps ErrInvalidInput,
// except ErrPayloadTooLarge which wraps ErrTooLarge.
var (
	// ErrInvalidKeyShape indicates key material of the wrong type, length or structure.
	ErrInvalidKeyShape = errors.Wrap(errors.ErrInvalidInput, "invalid key shape")

	// ErrNotInvertible indicates an affine multiplier or Hill determinant without a
	// modular inverse under the active modulus.
	ErrNotInvertible = errors.Wrap(errors.ErrInvalidInput, "not invertible")

	// ErrKeyTooShort indicates a one-time pad shorter than the payload.
	ErrKeyTooShort = errors.Wrap(errors.ErrInvalidInput, "key too short")

	// ErrUnknownCipher indicates an unrecognized cipher identifier.
	ErrUnknownCipher = errors.Wrap(errors.ErrInvalidInput, "unknown cipher")

	// ErrMalformedContainer indicates a binary frame whose length prefix is inconsistent
	// with the buffer.
	ErrMalformedContainer = errors.Wrap(errors.ErrInvalidInput, "malformed container")

	// ErrEncodingFailure indicates a Playfair binary payload that does not decode back
	// from its letter transcoding.
	ErrEncodingFailure = errors.Wrap(errors.ErrInvalidInput, "encoding failure")

	// ErrInvalidDirection indicates a direction other than encrypt or decrypt.
	ErrInvalidDirection = errors.Wrap(errors.ErrInvalidInput, "invalid direction")

	// ErrInvalidMode indicates a payload mode other than text or binary.
	ErrInvalidMode = errors.Wrap(errors.ErrInvalidInput, "invalid mode")

	// ErrInvalidFormat indicates an unknown output format.
	ErrInvalidFormat = errors.Wrap(errors.ErrInvalidInput, "invalid output format")

	// ErrEmptyPayload indicates a request without any payload.
	ErrEmptyPayload = errors.Wrap(errors.ErrInvalidInput, "empty payload")

	// ErrPayloadTooLarge indicates a payload above the configured size limit.
	ErrPayloadTooLarge = errors.Wrap(errors.ErrTooLarge, "payload too large")
)
