package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// allBytes returns the 256 byte values in ascending order.
func allBytes() []byte {
	out := make([]byte, 256)
	for i := range out {
		out[i] = byte(i)
	}
	return out
}

// assertTextRoundTrip encrypts and decrypts text and expects the original letters back.
func assertTextRoundTrip(t *testing.T, c Cipher, text, expected string) {
	t.Helper()

	ciphertext, err := c.EncryptText(text)
	require.NoError(t, err)

	plaintext, err := c.DecryptText(ciphertext)
	require.NoError(t, err)
	assert.Equal(t, expected, plaintext)
}

// assertBinaryRoundTrip encrypts and decrypts data and expects it back unchanged.
func assertBinaryRoundTrip(t *testing.T, c Cipher, data []byte) {
	t.Helper()

	ciphertext, err := c.EncryptBinary(data)
	require.NoError(t, err)

	plaintext, err := c.DecryptBinary(ciphertext)
	require.NoError(t, err)
	assert.Equal(t, data, plaintext)
}
