package domain

import (
	"encoding/binary"
	"fmt"
	"math"
	"path"
	"strings"
	"unicode/utf8"
)

const (
	// ContainerHeaderSize is the size of the big-endian filename length prefix.
	ContainerHeaderSize = 4

	// EncryptedFileSuffix is appended to a filename when offering an encrypted container.
	EncryptedFileSuffix = ".dat"

	// DecryptedFilePrefix is prepended to the recovered filename after decryption.
	DecryptedFilePrefix = "DECRYPTED_"
)

// Container binds encrypted binary content to the name of the file it came from.
//
// Wire format:
//
//	[4 bytes big-endian filename length][filename UTF-8 bytes][ciphertext bytes]
type Container struct {
	Filename   string
	Ciphertext []byte
}

// EncodeContainer frames ciphertext together with its original filename.
func EncodeContainer(filename string, ciphertext []byte) ([]byte, error) {
	if uint64(len(filename)) > math.MaxUint32 {
		return nil, fmt.Errorf("%w: filename exceeds %d bytes", ErrMalformedContainer, uint32(math.MaxUint32))
	}

	out := make([]byte, ContainerHeaderSize+len(filename)+len(ciphertext))
	binary.BigEndian.PutUint32(out[:ContainerHeaderSize], uint32(len(filename)))
	copy(out[ContainerHeaderSize:], filename)
	copy(out[ContainerHeaderSize+len(filename):], ciphertext)
	return out, nil
}

// DecodeContainer parses a frame produced by EncodeContainer.
//
// Returns ErrMalformedContainer when the buffer is shorter than the header, shorter
// than the declared filename, or when the filename is not valid UTF-8.
func DecodeContainer(data []byte) (Container, error) {
	if len(data) < ContainerHeaderSize {
		return Container{}, fmt.Errorf(
			"%w: expected at least %d bytes, got %d",
			ErrMalformedContainer,
			ContainerHeaderSize,
			len(data),
		)
	}

	nameLen := uint64(binary.BigEndian.Uint32(data[:ContainerHeaderSize]))
	if uint64(len(data)-ContainerHeaderSize) < nameLen {
		return Container{}, fmt.Errorf(
			"%w: filename length %d exceeds remaining %d bytes",
			ErrMalformedContainer,
			nameLen,
			len(data)-ContainerHeaderSize,
		)
	}

	end := ContainerHeaderSize + int(nameLen)
	name := data[ContainerHeaderSize:end]
	if !utf8.Valid(name) {
		return Container{}, fmt.Errorf("%w: filename is not valid UTF-8", ErrMalformedContainer)
	}

	ciphertext := make([]byte, len(data)-end)
	copy(ciphertext, data[end:])

	return Container{
		Filename:   string(name),
		Ciphertext: ciphertext,
	}, nil
}

// MarshalBinary returns the framed representation of the container.
func (c Container) MarshalBinary() ([]byte, error) {
	return EncodeContainer(c.Filename, c.Ciphertext)
}

// SanitizeFilename reduces a client supplied name to a safe base name of at most
// MaxFilenameBytes, cut on a rune boundary. Returns "file" when nothing usable is left.
func SanitizeFilename(name string) string {
	name = strings.ReplaceAll(name, "\\", "/")
	name = path.Base(strings.TrimSpace(name))
	name = strings.Map(func(r rune) rune {
		switch {
		case r < 0x20, r == 0x7f:
			return -1
		case r == ' ':
			return '_'
		default:
			return r
		}
	}, name)
	name = strings.TrimLeft(name, ".")
	if name == "" || name == "/" {
		return "file"
	}
	if len(name) > MaxFilenameBytes {
		cut := MaxFilenameBytes
		for cut > 0 && !utf8.RuneStart(name[cut]) {
			cut--
		}
		name = name[:cut]
	}
	return name
}

// EncryptedFilename is the download name offered for an encrypted container.
func EncryptedFilename(original string) string {
	return original + EncryptedFileSuffix
}

// DecryptedFilename is the download name offered for a recovered file.
func DecryptedFilename(original string) string {
	return DecryptedFilePrefix + original
}
