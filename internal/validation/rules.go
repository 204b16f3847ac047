// Package validation provides custom validation rules for the application.
package validation

import (
	"strings"

	validation "github.com/jellydator/validation"

	apperrors "github.com/allisson/ciphers/internal/errors"
)

// WrapValidationError wraps validation errors as domain ErrInvalidInput
func WrapValidationError(err error) error {
	if err == nil {
		return nil
	}
	return apperrors.Wrap(apperrors.ErrInvalidInput, err.Error())
}

// NotBlank validates that a string is not empty after trimming whitespace
var NotBlank = validation.NewStringRuleWithError(
	func(s string) bool {
		return strings.TrimSpace(s) != ""
	},
	validation.NewError("validation_not_blank", "must not be blank"),
)

// Letters validates that a string holds only ASCII letters, in either case.
var Letters = validation.NewStringRuleWithError(
	func(s string) bool {
		for i := 0; i < len(s); i++ {
			c := s[i] | 0x20
			if c < 'a' || c > 'z' {
				return false
			}
		}
		return true
	},
	validation.NewError("validation_letters", "must contain only letters A-Z"),
)

// ContainsLetter validates that a string holds at least one ASCII letter.
var ContainsLetter = validation.NewStringRuleWithError(
	func(s string) bool {
		for i := 0; i < len(s); i++ {
			c := s[i] | 0x20
			if c >= 'a' && c <= 'z' {
				return true
			}
		}
		return false
	},
	validation.NewError("validation_contains_letter", "must contain at least one letter A-Z"),
)

// Filename validates that a string can be used as a file name: no path separators
// and no control characters.
var Filename = validation.NewStringRuleWithError(
	func(s string) bool {
		for _, r := range s {
			if r == '/' || r == '\\' || r < 0x20 || r == 0x7f {
				return false
			}
		}
		return true
	},
	validation.NewError("validation_filename", "must be a file name without path separators"),
)
