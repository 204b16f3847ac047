package domain

import (
	"fmt"
	"strings"
)

// OutputFormat controls how text results are presented. It never changes the
// ciphertext itself, only its layout.
type OutputFormat string

const (
	FormatNormal  OutputFormat = "normal"
	FormatNoSpace OutputFormat = "nospace"
	FormatGroups  OutputFormat = "groups"
)

// GroupSize is the block width used by FormatGroups.
const GroupSize = 5

// ParseOutputFormat converts a string into an OutputFormat. Empty selects FormatNormal.
func ParseOutputFormat(s string) (OutputFormat, error) {
	switch OutputFormat(s) {
	case "", FormatNormal:
		return FormatNormal, nil
	case FormatNoSpace, FormatGroups:
		return OutputFormat(s), nil
	default:
		return "", fmt.Errorf("%w: %q", ErrInvalidFormat, s)
	}
}

// Apply lays out text according to the format.
func (f OutputFormat) Apply(text string) string {
	switch f {
	case FormatNoSpace:
		return strings.Join(strings.Fields(text), "")
	case FormatGroups:
		clean := []rune(strings.Join(strings.Fields(text), ""))
		groups := make([]string, 0, (len(clean)+GroupSize-1)/GroupSize)
		for i := 0; i < len(clean); i += GroupSize {
			end := min(i+GroupSize, len(clean))
			groups = append(groups, string(clean[i:end]))
		}
		return strings.Join(groups, " ")
	default:
		return text
	}
}
