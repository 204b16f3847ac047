package validation

import (
	"testing"

	validation "github.com/jellydator/validation"
	"github.com/stretchr/testify/assert"
)

func TestBase64(t *testing.T) {
	tests := []struct {
		name      string
		value     interface{}
		shouldErr bool
	}{
		{name: "Payload", value: "AQID"},
		{name: "EmptyLeftToRequired", value: ""},
		{name: "NotBase64", value: "not base64!", shouldErr: true},
		{name: "MissingPadding", value: "AQI", shouldErr: true},
		{name: "URLAlphabet", value: "-_-_", shouldErr: true},
		{name: "NotAString", value: 42, shouldErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validation.Validate(tt.value, Base64)
			if tt.shouldErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
