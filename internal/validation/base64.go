package validation

import (
	"encoding/base64"

	validation "github.com/jellydator/validation"
)

func isStdBase64(s string) bool {
	_, err := base64.StdEncoding.DecodeString(s)
	return err == nil
}

// Base64 validates that a binary payload or pad is standard, padded base64.
// Empty strings pass so that Required decides whether the field is needed.
var Base64 = validation.NewStringRuleWithError(
	isStdBase64,
	validation.NewError("validation_base64", "must be standard base64 (RFC 4648, with padding)"),
)
