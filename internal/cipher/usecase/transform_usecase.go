package usecase

import (
	"context"
	"encoding/hex"
	"fmt"
	"log/slog"

	"golang.org/x/crypto/blake2b"

	cipherDomain "github.com/allisson/ciphers/internal/cipher/domain"
	cipherService "github.com/allisson/ciphers/internal/cipher/service"
	apperrors "github.com/allisson/ciphers/internal/errors"
)

// fingerprintSize is the number of BLAKE2b-256 bytes kept in a key fingerprint.
const fingerprintSize = 8

// transformUseCase implements TransformUseCase.
type transformUseCase struct {
	factory         CipherFactory
	maxPayloadBytes int
	logger          *slog.Logger
}

// NewTransformUseCase creates the transform dispatcher. A maxPayloadBytes of zero
// or less disables the payload limit.
func NewTransformUseCase(factory CipherFactory, maxPayloadBytes int, logger *slog.Logger) TransformUseCase {
	return &transformUseCase{
		factory:         factory,
		maxPayloadBytes: maxPayloadBytes,
		logger:          logger,
	}
}

// Transform validates the request, then dispatches it to the cipher selected by the key.
func (t *transformUseCase) Transform(
	ctx context.Context,
	input *cipherDomain.TransformInput,
) (*cipherDomain.TransformOutput, error) {
	if err := t.validate(input); err != nil {
		return nil, err
	}

	key, err := cipherDomain.NewKey(input.Kind, input.Key)
	if err != nil {
		return nil, err
	}

	cipher, err := t.factory.New(key)
	if err != nil {
		return nil, err
	}

	fingerprint, err := KeyFingerprint(key)
	if err != nil {
		return nil, err
	}

	t.logger.DebugContext(ctx, "transforming payload",
		slog.String("cipher", input.Kind.String()),
		slog.String("direction", string(input.Direction)),
		slog.String("mode", string(input.Mode)),
		slog.Int("payload_bytes", input.PayloadSize()),
		slog.String("key_fingerprint", fingerprint),
	)

	output := &cipherDomain.TransformOutput{
		Kind:           input.Kind,
		Direction:      input.Direction,
		Mode:           input.Mode,
		KeyFingerprint: fingerprint,
	}

	if input.Mode == cipherDomain.Text {
		output.Text, err = transformText(cipher, input.Direction, input.Text)
		if err != nil {
			return nil, err
		}
		return output, nil
	}

	if input.Direction == cipherDomain.Encrypt {
		ciphertext, err := cipher.EncryptBinary(input.Data)
		if err != nil {
			return nil, err
		}

		filename := cipherDomain.SanitizeFilename(input.Filename)
		frame, err := cipherDomain.Container{Filename: filename, Ciphertext: ciphertext}.MarshalBinary()
		if err != nil {
			return nil, err
		}

		output.Data = frame
		output.Filename = filename
		output.DownloadName = cipherDomain.EncryptedFilename(filename)
		return output, nil
	}

	container, err := cipherDomain.DecodeContainer(input.Data)
	if err != nil {
		return nil, err
	}

	plaintext, err := cipher.DecryptBinary(container.Ciphertext)
	if err != nil {
		return nil, err
	}

	filename := cipherDomain.SanitizeFilename(container.Filename)
	output.Data = plaintext
	output.Filename = filename
	output.DownloadName = cipherDomain.DecryptedFilename(filename)
	return output, nil
}

// validate checks the request envelope. Key material is checked by NewKey and the cipher.
func (t *transformUseCase) validate(input *cipherDomain.TransformInput) error {
	if input == nil {
		return cipherDomain.ErrEmptyPayload
	}
	if err := input.Kind.Validate(); err != nil {
		return err
	}

	switch input.Direction {
	case cipherDomain.Encrypt, cipherDomain.Decrypt:
	default:
		return fmt.Errorf("%w: %q", cipherDomain.ErrInvalidDirection, string(input.Direction))
	}

	switch input.Mode {
	case cipherDomain.Text, cipherDomain.Binary:
	default:
		return fmt.Errorf("%w: %q", cipherDomain.ErrInvalidMode, string(input.Mode))
	}

	size := input.PayloadSize()
	if size == 0 {
		return cipherDomain.ErrEmptyPayload
	}
	if t.maxPayloadBytes > 0 {
		if limit := cipherDomain.PayloadLimit(input, t.maxPayloadBytes); size > limit {
			return apperrors.Wrapf(cipherDomain.ErrPayloadTooLarge, "%d bytes exceeds limit of %d", size, limit)
		}
	}
	return nil
}

func transformText(cipher cipherService.Cipher, direction cipherDomain.Direction, text string) (string, error) {
	if direction == cipherDomain.Encrypt {
		return cipher.EncryptText(text)
	}
	return cipher.DecryptText(text)
}

// KeyFingerprint returns a short hex digest identifying key without revealing it.
func KeyFingerprint(key cipherDomain.Key) (string, error) {
	canonical, err := key.MarshalText()
	if err != nil {
		return "", err
	}
	sum := blake2b.Sum256(canonical)
	return hex.EncodeToString(sum[:fingerprintSize]), nil
}
