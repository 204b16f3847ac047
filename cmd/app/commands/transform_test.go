package commands

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	cipherDomain "github.com/allisson/ciphers/internal/cipher/domain"
	cipherService "github.com/allisson/ciphers/internal/cipher/service"
	cipherUseCase "github.com/allisson/ciphers/internal/cipher/usecase"
	"github.com/allisson/ciphers/internal/cipher/usecase/mocks"
)

func newEngine() cipherUseCase.TransformUseCase {
	return cipherUseCase.NewTransformUseCase(cipherService.NewFactory(nil), 1<<20, slog.Default())
}

func TestRunTransform(t *testing.T) {
	ctx := context.Background()
	logger := slog.Default()
	shift := 3

	t.Run("Text_FromFlag", func(t *testing.T) {
		var out bytes.Buffer
		io := IOTuple{Writer: &out}

		err := RunTransform(ctx, newEngine(), logger, TransformOptions{
			Cipher:    "shift",
			Direction: cipherDomain.Encrypt,
			Key:       KeyOptions{Shift: &shift},
			Text:      "hello",
		}, io)

		require.NoError(t, err)
		assert.Equal(t, "KHOOR\n", out.String())
	})

	t.Run("Text_FromReaderWithGroups", func(t *testing.T) {
		var out bytes.Buffer
		io := IOTuple{Reader: strings.NewReader("attack at dawn\n"), Writer: &out}

		err := RunTransform(ctx, newEngine(), logger, TransformOptions{
			Cipher:    "vigenere",
			Direction: cipherDomain.Encrypt,
			Key:       KeyOptions{Keyword: "LEMON"},
			Format:    "groups",
		}, io)

		require.NoError(t, err)
		assert.Equal(t, "LXFOP VEFRN HR\n", out.String())
	})

	t.Run("Text_JSONOutputUsesMockedUseCase", func(t *testing.T) {
		mockUseCase := mocks.NewMockTransformUseCase(t)
		mockUseCase.EXPECT().
			Transform(ctx, mock.MatchedBy(func(input *cipherDomain.TransformInput) bool {
				return input.Kind == cipherDomain.Playfair &&
					input.Direction == cipherDomain.Decrypt &&
					input.Mode == cipherDomain.Text &&
					input.Key.Keyword == "MONARCHY" &&
					input.Text == "CIPHER"
			})).
			Return(&cipherDomain.TransformOutput{
				Kind:           cipherDomain.Playfair,
				Direction:      cipherDomain.Decrypt,
				Mode:           cipherDomain.Text,
				Text:           "PLAIN",
				KeyFingerprint: "abc123",
			}, nil).
			Once()

		var out bytes.Buffer
		io := IOTuple{Writer: &out}

		err := RunTransform(ctx, mockUseCase, logger, TransformOptions{
			Cipher:    "playfair",
			Direction: cipherDomain.Decrypt,
			Key:       KeyOptions{Keyword: "MONARCHY"},
			Text:      "CIPHER",
			Output:    "json",
		}, io)
		require.NoError(t, err)

		var result map[string]string
		require.NoError(t, json.Unmarshal(out.Bytes(), &result))
		assert.Equal(t, "playfair", result["cipher"])
		assert.Equal(t, "decrypt", result["direction"])
		assert.Equal(t, "PLAIN", result["text"])
		assert.Equal(t, "abc123", result["key_fingerprint"])
	})

	t.Run("Text_CipherFromKeyFile", func(t *testing.T) {
		path := writeFile(t, t.TempDir(), "key.yaml", "cipher: affine\na: 5\nb: 8\n")
		var out bytes.Buffer
		io := IOTuple{Writer: &out}

		err := RunTransform(ctx, newEngine(), logger, TransformOptions{
			Direction: cipherDomain.Encrypt,
			Key:       KeyOptions{File: path},
			Text:      "AFFINE",
		}, io)

		require.NoError(t, err)
		assert.Equal(t, "IHHWVC\n", out.String())
	})

	t.Run("Binary_RoundTrip", func(t *testing.T) {
		dir := t.TempDir()
		inPath := writeFile(t, dir, "notes.txt", "binary \x00\xff payload")
		var out bytes.Buffer
		io := IOTuple{Writer: &out}

		err := RunTransform(ctx, newEngine(), logger, TransformOptions{
			Cipher:    "shift",
			Direction: cipherDomain.Encrypt,
			Key:       KeyOptions{Shift: &shift},
			InPath:    inPath,
		}, io)
		require.NoError(t, err)

		encryptedPath := filepath.Join(dir, "notes.txt.dat")
		assert.Contains(t, out.String(), encryptedPath)
		frame, err := os.ReadFile(encryptedPath)
		require.NoError(t, err)
		container, err := cipherDomain.DecodeContainer(frame)
		require.NoError(t, err)
		assert.Equal(t, "notes.txt", container.Filename)

		out.Reset()
		decryptedPath := filepath.Join(dir, "recovered.txt")
		err = RunTransform(ctx, newEngine(), logger, TransformOptions{
			Cipher:    "shift",
			Direction: cipherDomain.Decrypt,
			Key:       KeyOptions{Shift: &shift},
			InPath:    encryptedPath,
			OutPath:   decryptedPath,
		}, io)
		require.NoError(t, err)

		recovered, err := os.ReadFile(decryptedPath)
		require.NoError(t, err)
		assert.Equal(t, []byte("binary \x00\xff payload"), recovered)
	})

	t.Run("Binary_Stdout", func(t *testing.T) {
		inPath := writeFile(t, t.TempDir(), "a.bin", "AB")
		var out bytes.Buffer
		io := IOTuple{Writer: &out}

		err := RunTransform(ctx, newEngine(), logger, TransformOptions{
			Cipher:    "otp",
			Direction: cipherDomain.Encrypt,
			Key:       KeyOptions{PadText: "\x01\x01"},
			InPath:    inPath,
			OutPath:   StdoutPath,
		}, io)
		require.NoError(t, err)

		container, err := cipherDomain.DecodeContainer(out.Bytes())
		require.NoError(t, err)
		assert.Equal(t, "a.bin", container.Filename)
		assert.Len(t, container.Ciphertext, 2)
	})

	t.Run("Error_NoCipher", func(t *testing.T) {
		var out bytes.Buffer
		err := RunTransform(ctx, newEngine(), logger, TransformOptions{
			Direction: cipherDomain.Encrypt,
			Text:      "HELLO",
		}, IOTuple{Writer: &out})

		require.Error(t, err)
		assert.Contains(t, err.Error(), "cipher is required")
	})

	t.Run("Error_UnknownCipher", func(t *testing.T) {
		var out bytes.Buffer
		err := RunTransform(ctx, newEngine(), logger, TransformOptions{
			Cipher:    "enigma",
			Direction: cipherDomain.Encrypt,
			Text:      "HELLO",
		}, IOTuple{Writer: &out})

		assert.ErrorIs(t, err, cipherDomain.ErrUnknownCipher)
	})

	t.Run("Error_InvalidFormat", func(t *testing.T) {
		var out bytes.Buffer
		err := RunTransform(ctx, newEngine(), logger, TransformOptions{
			Cipher:    "shift",
			Direction: cipherDomain.Encrypt,
			Key:       KeyOptions{Shift: &shift},
			Text:      "HELLO",
			Format:    "columns",
		}, IOTuple{Writer: &out})

		assert.ErrorIs(t, err, cipherDomain.ErrInvalidFormat)
	})

	t.Run("Error_UseCaseFailure", func(t *testing.T) {
		var out bytes.Buffer
		err := RunTransform(ctx, newEngine(), logger, TransformOptions{
			Cipher:    "hill",
			Direction: cipherDomain.Decrypt,
			Key:       KeyOptions{Matrix: "2,4,1,2"},
			Text:      "ABCD",
		}, IOTuple{Writer: &out})

		assert.ErrorIs(t, err, cipherDomain.ErrNotInvertible)
		assert.Empty(t, out.String())
	})
}

func TestRunListCiphers(t *testing.T) {
	t.Run("Text", func(t *testing.T) {
		var out bytes.Buffer

		require.NoError(t, RunListCiphers(&out, "text"))
		assert.Contains(t, out.String(), "ID")
		for _, kind := range cipherDomain.Kinds {
			assert.Contains(t, out.String(), kind.String())
		}
	})

	t.Run("JSON", func(t *testing.T) {
		var out bytes.Buffer

		require.NoError(t, RunListCiphers(&out, "json"))

		var entries []map[string]interface{}
		require.NoError(t, json.Unmarshal(out.Bytes(), &entries))
		assert.Len(t, entries, len(cipherDomain.Kinds))
		assert.Equal(t, "shift", entries[0]["id"])
	})
}
