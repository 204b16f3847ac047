// Package usecase implements the transform dispatcher: it validates a request, builds
// the typed key and cipher, runs the selected direction and mode, and frames binary
// results in a container.
package usecase

import (
	"context"

	cipherDomain "github.com/allisson/ciphers/internal/cipher/domain"
	cipherService "github.com/allisson/ciphers/internal/cipher/service"
)

// CipherFactory builds a cipher from a typed key.
type CipherFactory interface {
	New(key cipherDomain.Key) (cipherService.Cipher, error)
}

// TransformUseCase defines the single entry point of the cipher engine.
type TransformUseCase interface {
	// Transform encrypts or decrypts the payload of input.
	//
	// Binary encryption returns a container frame that records the source filename.
	// Binary decryption expects such a frame and returns the recovered bytes.
	Transform(ctx context.Context, input *cipherDomain.TransformInput) (*cipherDomain.TransformOutput, error)
}
