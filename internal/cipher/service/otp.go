package service

import (
	"fmt"

	cipherDomain "github.com/allisson/ciphers/internal/cipher/domain"
)

type otpCipher struct {
	pad []byte
}

// NewOTPCipher creates a one-time pad cipher. Reuse of a pad across calls is not
// detected; keeping pads single-use is the caller's responsibility.
func NewOTPCipher(key cipherDomain.OTPKey) Cipher {
	return &otpCipher{pad: key.Pad}
}

// EncryptText keeps only letters of the payload and of the pad and adds them letter
// by letter. The pad must hold at least as many letters as the payload.
func (o *otpCipher) EncryptText(text string) (string, error) {
	return o.text(text, 1)
}

func (o *otpCipher) DecryptText(text string) (string, error) {
	return o.text(text, -1)
}

func (o *otpCipher) EncryptBinary(data []byte) ([]byte, error) {
	return o.binary(data, 1)
}

func (o *otpCipher) DecryptBinary(data []byte) ([]byte, error) {
	return o.binary(data, -1)
}

func (o *otpCipher) text(text string, sign int) (string, error) {
	letters := cipherDomain.Letters(text)
	pad := cipherDomain.Letters(string(o.pad))
	if len(pad) < len(letters) {
		return "", fmt.Errorf("%w: pad has %d letters, payload has %d",
			cipherDomain.ErrKeyTooShort, len(pad), len(letters))
	}

	out := make([]byte, len(letters))
	for i := 0; i < len(letters); i++ {
		out[i] = cipherDomain.Letter(cipherDomain.Ordinal(letters[i]) + sign*cipherDomain.Ordinal(pad[i]))
	}
	return string(out), nil
}

func (o *otpCipher) binary(data []byte, sign int) ([]byte, error) {
	if len(o.pad) < len(data) {
		return nil, fmt.Errorf("%w: pad has %d bytes, payload has %d",
			cipherDomain.ErrKeyTooShort, len(o.pad), len(data))
	}

	out := make([]byte, len(data))
	for i, b := range data {
		out[i] = byte(Mod(int(b)+sign*int(o.pad[i]), cipherDomain.BinaryModulus))
	}
	return out, nil
}
