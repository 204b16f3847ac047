package usecase

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	cipherDomain "github.com/allisson/ciphers/internal/cipher/domain"
	cipherService "github.com/allisson/ciphers/internal/cipher/service"
	apperrors "github.com/allisson/ciphers/internal/errors"
)

func newTestTransformUseCase(maxPayloadBytes int) TransformUseCase {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	return NewTransformUseCase(cipherService.NewFactory(nil), maxPayloadBytes, logger)
}

type failingFactory struct {
	err error
}

func (f failingFactory) New(cipherDomain.Key) (cipherService.Cipher, error) {
	return nil, f.err
}

func longPad(n int) []byte {
	pad := make([]byte, n)
	for i := range pad {
		pad[i] = byte(i*7 + 3)
	}
	return pad
}

func TestTransformUseCase_Text(t *testing.T) {
	ctx := context.Background()
	useCase := newTestTransformUseCase(0)

	tests := []struct {
		name     string
		kind     cipherDomain.Kind
		key      cipherDomain.KeyMaterial
		input    string
		expected string
	}{
		{name: "Shift", kind: cipherDomain.Shift, key: cipherDomain.KeyMaterial{Shift: 3}, input: "HELLO", expected: "KHOOR"},
		{name: "Affine", kind: cipherDomain.Affine, key: cipherDomain.KeyMaterial{A: 5, B: 8}, input: "AFFINE", expected: "IHHWVC"},
		{name: "Vigenere", kind: cipherDomain.Vigenere, key: cipherDomain.KeyMaterial{Keyword: "KEY"}, input: "ATTACK", expected: "KXRKGI"},
		{name: "Permutation", kind: cipherDomain.Permutation, key: cipherDomain.KeyMaterial{Order: []int{3, 1, 2}}, input: "ABCDEF", expected: "BCAEFD"},
		{name: "Hill", kind: cipherDomain.Hill, key: cipherDomain.KeyMaterial{Matrix: [2][2]int{{3, 3}, {2, 5}}}, input: "HELP", expected: "HIAT"},
		{name: "OTP", kind: cipherDomain.OTP, key: cipherDomain.KeyMaterial{Pad: []byte("XMCKL")}, input: "HELLO", expected: "EQNVZ"},
	}

	for _, tt := range tests {
		t.Run("Success_"+tt.name, func(t *testing.T) {
			// Arrange
			encryptInput := &cipherDomain.TransformInput{
				Kind:      tt.kind,
				Direction: cipherDomain.Encrypt,
				Mode:      cipherDomain.Text,
				Key:       tt.key,
				Text:      tt.input,
			}

			// Act
			encrypted, err := useCase.Transform(ctx, encryptInput)
			require.NoError(t, err)

			decrypted, err := useCase.Transform(ctx, &cipherDomain.TransformInput{
				Kind:      tt.kind,
				Direction: cipherDomain.Decrypt,
				Mode:      cipherDomain.Text,
				Key:       tt.key,
				Text:      encrypted.Text,
			})
			require.NoError(t, err)

			// Assert
			assert.Equal(t, tt.expected, encrypted.Text)
			assert.Equal(t, tt.input, decrypted.Text)
			assert.Equal(t, tt.kind, encrypted.Kind)
			assert.Equal(t, cipherDomain.Encrypt, encrypted.Direction)
			assert.Len(t, encrypted.KeyFingerprint, 16)
			assert.Equal(t, encrypted.KeyFingerprint, decrypted.KeyFingerprint)
			assert.Empty(t, encrypted.Data)
		})
	}
}

func TestTransformUseCase_BinaryContainer(t *testing.T) {
	ctx := context.Background()
	useCase := newTestTransformUseCase(0)
	key := cipherDomain.KeyMaterial{Shift: 3}

	// Arrange
	encryptInput := &cipherDomain.TransformInput{
		Kind:      cipherDomain.Shift,
		Direction: cipherDomain.Encrypt,
		Mode:      cipherDomain.Binary,
		Key:       key,
		Data:      []byte{1, 2, 3},
		Filename:  "note.txt",
	}

	// Act
	encrypted, err := useCase.Transform(ctx, encryptInput)
	require.NoError(t, err)

	// Assert
	expectedFrame, err := cipherDomain.EncodeContainer("note.txt", []byte{4, 5, 6})
	require.NoError(t, err)
	assert.Equal(t, expectedFrame, encrypted.Data)
	assert.Equal(t, "note.txt", encrypted.Filename)
	assert.Equal(t, "note.txt.dat", encrypted.DownloadName)

	decrypted, err := useCase.Transform(ctx, &cipherDomain.TransformInput{
		Kind:      cipherDomain.Shift,
		Direction: cipherDomain.Decrypt,
		Mode:      cipherDomain.Binary,
		Key:       key,
		Data:      encrypted.Data,
	})
	require.NoError(t, err)
	assert.Equal(t, []byte{1, 2, 3}, decrypted.Data)
	assert.Equal(t, "note.txt", decrypted.Filename)
	assert.Equal(t, "DECRYPTED_note.txt", decrypted.DownloadName)
}

func TestTransformUseCase_BinaryRoundTripAllCiphers(t *testing.T) {
	ctx := context.Background()
	useCase := newTestTransformUseCase(0)

	payload := make([]byte, 512)
	for i := range payload {
		payload[i] = byte(i)
	}

	tests := []struct {
		kind cipherDomain.Kind
		key  cipherDomain.KeyMaterial
	}{
		{kind: cipherDomain.Shift, key: cipherDomain.KeyMaterial{Shift: 200}},
		{kind: cipherDomain.Substitution, key: cipherDomain.KeyMaterial{Alphabet: "QWERTYUIOPASDFGHJKLZXCVBNM"}},
		{kind: cipherDomain.Affine, key: cipherDomain.KeyMaterial{A: 5, B: 8}},
		{kind: cipherDomain.Vigenere, key: cipherDomain.KeyMaterial{Keyword: "LEMON"}},
		{kind: cipherDomain.Hill, key: cipherDomain.KeyMaterial{Matrix: [2][2]int{{3, 3}, {2, 5}}}},
		{kind: cipherDomain.Permutation, key: cipherDomain.KeyMaterial{Order: []int{4, 2, 1, 3}}},
		{kind: cipherDomain.Playfair, key: cipherDomain.KeyMaterial{Keyword: "MONARCHY"}},
		{kind: cipherDomain.OTP, key: cipherDomain.KeyMaterial{Pad: longPad(len(payload))}},
	}

	for _, tt := range tests {
		t.Run("Success_"+tt.kind.String(), func(t *testing.T) {
			encrypted, err := useCase.Transform(ctx, &cipherDomain.TransformInput{
				Kind:      tt.kind,
				Direction: cipherDomain.Encrypt,
				Mode:      cipherDomain.Binary,
				Key:       tt.key,
				Data:      payload,
				Filename:  "data.bin",
			})
			require.NoError(t, err)

			decrypted, err := useCase.Transform(ctx, &cipherDomain.TransformInput{
				Kind:      tt.kind,
				Direction: cipherDomain.Decrypt,
				Mode:      cipherDomain.Binary,
				Key:       tt.key,
				Data:      encrypted.Data,
			})
			require.NoError(t, err)

			assert.Equal(t, payload, decrypted.Data)
			assert.Equal(t, "DECRYPTED_data.bin", decrypted.DownloadName)
		})
	}
}

func TestTransformUseCase_RoundTripAtPayloadLimit(t *testing.T) {
	ctx := context.Background()
	const limit = 101
	useCase := newTestTransformUseCase(limit)

	keys := []struct {
		kind cipherDomain.Kind
		key  cipherDomain.KeyMaterial
	}{
		{kind: cipherDomain.Shift, key: cipherDomain.KeyMaterial{Shift: 3}},
		{kind: cipherDomain.Substitution, key: cipherDomain.KeyMaterial{Alphabet: "QWERTYUIOPASDFGHJKLZXCVBNM"}},
		{kind: cipherDomain.Affine, key: cipherDomain.KeyMaterial{A: 5, B: 8}},
		{kind: cipherDomain.Vigenere, key: cipherDomain.KeyMaterial{Keyword: "LEMON"}},
		{kind: cipherDomain.Hill, key: cipherDomain.KeyMaterial{Matrix: [2][2]int{{3, 3}, {2, 5}}}},
		{kind: cipherDomain.Permutation, key: cipherDomain.KeyMaterial{Order: []int{7, 1, 6, 2, 5, 3, 4}}},
		{kind: cipherDomain.Playfair, key: cipherDomain.KeyMaterial{Keyword: "MONARCHY"}},
		{kind: cipherDomain.OTP, key: cipherDomain.KeyMaterial{Pad: []byte(strings.Repeat("KEY", limit))}},
	}

	for _, tt := range keys {
		t.Run("Binary_"+tt.kind.String(), func(t *testing.T) {
			// Zero bytes make Playfair insert a filler into every digraph.
			payload := make([]byte, limit)

			encrypted, err := useCase.Transform(ctx, &cipherDomain.TransformInput{
				Kind:      tt.kind,
				Direction: cipherDomain.Encrypt,
				Mode:      cipherDomain.Binary,
				Key:       tt.key,
				Data:      payload,
				Filename:  strings.Repeat("n", 300),
			})
			require.NoError(t, err)

			decrypted, err := useCase.Transform(ctx, &cipherDomain.TransformInput{
				Kind:      tt.kind,
				Direction: cipherDomain.Decrypt,
				Mode:      cipherDomain.Binary,
				Key:       tt.key,
				Data:      encrypted.Data,
			})
			require.NoError(t, err)
			assert.Equal(t, payload[:limit], decrypted.Data[:limit])
		})

		t.Run("Text_"+tt.kind.String(), func(t *testing.T) {
			encrypted, err := useCase.Transform(ctx, &cipherDomain.TransformInput{
				Kind:      tt.kind,
				Direction: cipherDomain.Encrypt,
				Mode:      cipherDomain.Text,
				Key:       tt.key,
				Text:      strings.Repeat("A", limit),
			})
			require.NoError(t, err)

			_, err = useCase.Transform(ctx, &cipherDomain.TransformInput{
				Kind:      tt.kind,
				Direction: cipherDomain.Decrypt,
				Mode:      cipherDomain.Text,
				Key:       tt.key,
				Text:      encrypted.Text,
			})
			require.NoError(t, err)
		})
	}
}

func TestTransformUseCase_DecryptAboveCeiling(t *testing.T) {
	const limit = 10
	useCase := newTestTransformUseCase(limit)
	key := cipherDomain.KeyMaterial{Keyword: "MONARCHY"}
	ceiling := cipherDomain.MaxCiphertextSize(cipherDomain.Playfair, cipherDomain.Binary, key, limit)

	frame, err := cipherDomain.EncodeContainer("a", make([]byte, ceiling))
	require.NoError(t, err)

	_, err = useCase.Transform(context.Background(), &cipherDomain.TransformInput{
		Kind:      cipherDomain.Playfair,
		Direction: cipherDomain.Decrypt,
		Mode:      cipherDomain.Binary,
		Key:       key,
		Data:      frame,
	})
	assert.ErrorIs(t, err, cipherDomain.ErrPayloadTooLarge)
}

func TestTransformUseCase_SanitizesFilename(t *testing.T) {
	useCase := newTestTransformUseCase(0)

	output, err := useCase.Transform(context.Background(), &cipherDomain.TransformInput{
		Kind:      cipherDomain.Shift,
		Direction: cipherDomain.Encrypt,
		Mode:      cipherDomain.Binary,
		Key:       cipherDomain.KeyMaterial{Shift: 1},
		Data:      []byte{0},
		Filename:  "../secret plans.txt",
	})

	require.NoError(t, err)
	assert.Equal(t, "secret_plans.txt", output.Filename)
	assert.Equal(t, "secret_plans.txt.dat", output.DownloadName)
}

func TestTransformUseCase_Errors(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name          string
		maxPayload    int
		input         *cipherDomain.TransformInput
		expectedError error
	}{
		{
			name:          "Error_NilInput",
			input:         nil,
			expectedError: cipherDomain.ErrEmptyPayload,
		},
		{
			name: "Error_UnknownCipher",
			input: &cipherDomain.TransformInput{
				Kind: "enigma", Direction: cipherDomain.Encrypt, Mode: cipherDomain.Text, Text: "A",
			},
			expectedError: cipherDomain.ErrUnknownCipher,
		},
		{
			name: "Error_InvalidDirection",
			input: &cipherDomain.TransformInput{
				Kind: cipherDomain.Shift, Direction: "sideways", Mode: cipherDomain.Text, Text: "A",
			},
			expectedError: cipherDomain.ErrInvalidDirection,
		},
		{
			name: "Error_InvalidMode",
			input: &cipherDomain.TransformInput{
				Kind: cipherDomain.Shift, Direction: cipherDomain.Encrypt, Mode: "hex", Text: "A",
			},
			expectedError: cipherDomain.ErrInvalidMode,
		},
		{
			name: "Error_EmptyText",
			input: &cipherDomain.TransformInput{
				Kind: cipherDomain.Shift, Direction: cipherDomain.Encrypt, Mode: cipherDomain.Text,
			},
			expectedError: cipherDomain.ErrEmptyPayload,
		},
		{
			name:       "Error_PayloadTooLarge",
			maxPayload: 4,
			input: &cipherDomain.TransformInput{
				Kind: cipherDomain.Shift, Direction: cipherDomain.Encrypt, Mode: cipherDomain.Text, Text: "HELLO",
			},
			expectedError: apperrors.ErrTooLarge,
		},
		{
			name: "Error_InvalidSubstitutionKey",
			input: &cipherDomain.TransformInput{
				Kind:      cipherDomain.Substitution,
				Direction: cipherDomain.Encrypt,
				Mode:      cipherDomain.Text,
				Key:       cipherDomain.KeyMaterial{Alphabet: "ABC"},
				Text:      "HELLO",
			},
			expectedError: cipherDomain.ErrInvalidKeyShape,
		},
		{
			name: "Error_AffineNotCoprime",
			input: &cipherDomain.TransformInput{
				Kind:      cipherDomain.Affine,
				Direction: cipherDomain.Encrypt,
				Mode:      cipherDomain.Text,
				Key:       cipherDomain.KeyMaterial{A: 13, B: 1},
				Text:      "HELLO",
			},
			expectedError: cipherDomain.ErrNotInvertible,
		},
		{
			name: "Error_HillNotInvertibleOnDecrypt",
			input: &cipherDomain.TransformInput{
				Kind:      cipherDomain.Hill,
				Direction: cipherDomain.Decrypt,
				Mode:      cipherDomain.Text,
				Key:       cipherDomain.KeyMaterial{Matrix: [2][2]int{{2, 4}, {1, 2}}},
				Text:      "ABCD",
			},
			expectedError: cipherDomain.ErrNotInvertible,
		},
		{
			name: "Error_OTPKeyTooShort",
			input: &cipherDomain.TransformInput{
				Kind:      cipherDomain.OTP,
				Direction: cipherDomain.Encrypt,
				Mode:      cipherDomain.Binary,
				Key:       cipherDomain.KeyMaterial{Pad: []byte{1}},
				Data:      []byte{1, 2},
			},
			expectedError: cipherDomain.ErrKeyTooShort,
		},
		{
			name: "Error_MalformedContainer",
			input: &cipherDomain.TransformInput{
				Kind:      cipherDomain.Shift,
				Direction: cipherDomain.Decrypt,
				Mode:      cipherDomain.Binary,
				Data:      []byte{0, 0, 0, 9, 'a'},
			},
			expectedError: cipherDomain.ErrMalformedContainer,
		},
		{
			name: "Error_PlayfairEncodingFailure",
			input: &cipherDomain.TransformInput{
				Kind:      cipherDomain.Playfair,
				Direction: cipherDomain.Decrypt,
				Mode:      cipherDomain.Binary,
				Key:       cipherDomain.KeyMaterial{Keyword: "MONARCHY"},
				Data:      []byte{0, 0, 0, 1, 'a', '1', '2'},
			},
			expectedError: cipherDomain.ErrEncodingFailure,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			useCase := newTestTransformUseCase(tt.maxPayload)

			output, err := useCase.Transform(ctx, tt.input)

			assert.Nil(t, output)
			assert.ErrorIs(t, err, tt.expectedError)
		})
	}
}

func TestTransformUseCase_HillEncryptAcceptsSingularMatrix(t *testing.T) {
	useCase := newTestTransformUseCase(0)

	output, err := useCase.Transform(context.Background(), &cipherDomain.TransformInput{
		Kind:      cipherDomain.Hill,
		Direction: cipherDomain.Encrypt,
		Mode:      cipherDomain.Text,
		Key:       cipherDomain.KeyMaterial{Matrix: [2][2]int{{2, 4}, {1, 2}}},
		Text:      "HELP",
	})

	require.NoError(t, err)
	assert.Len(t, output.Text, 4)
}

func TestTransformUseCase_ErrorsAreInvalidInput(t *testing.T) {
	useCase := newTestTransformUseCase(0)

	_, err := useCase.Transform(context.Background(), &cipherDomain.TransformInput{
		Kind:      cipherDomain.Vigenere,
		Direction: cipherDomain.Encrypt,
		Mode:      cipherDomain.Text,
		Key:       cipherDomain.KeyMaterial{Keyword: "1234"},
		Text:      "HELLO",
	})

	assert.ErrorIs(t, err, apperrors.ErrInvalidInput)
}

func TestTransformUseCase_FactoryError(t *testing.T) {
	factoryErr := errors.New("factory failure")
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	useCase := NewTransformUseCase(failingFactory{err: factoryErr}, 0, logger)

	output, err := useCase.Transform(context.Background(), &cipherDomain.TransformInput{
		Kind:      cipherDomain.Shift,
		Direction: cipherDomain.Encrypt,
		Mode:      cipherDomain.Text,
		Text:      "HELLO",
	})

	assert.Nil(t, output)
	assert.Equal(t, factoryErr, err)
}

func TestKeyFingerprint(t *testing.T) {
	a, err := KeyFingerprint(cipherDomain.ShiftKey{Amount: 3})
	require.NoError(t, err)

	again, err := KeyFingerprint(cipherDomain.ShiftKey{Amount: 3})
	require.NoError(t, err)

	b, err := KeyFingerprint(cipherDomain.ShiftKey{Amount: 4})
	require.NoError(t, err)

	assert.Len(t, a, 16)
	assert.Equal(t, a, again)
	assert.NotEqual(t, a, b)
	assert.NotContains(t, a, "shift")
}
