package domain

const (
	// MaxFilenameBytes bounds the sanitized filename stored in a container frame.
	MaxFilenameBytes = 255

	// MaxContainerOverhead is the largest number of bytes a frame adds around its ciphertext.
	MaxContainerOverhead = ContainerHeaderSize + MaxFilenameBytes
)

// MaxCiphertextSize returns the largest payload that encrypting at most limit bytes
// with kind in mode can produce. Decryption accepts payloads up to this size so that
// everything accepted for encryption can be decrypted again.
//
// Text mode allows twice the limit: upper-casing may lengthen some non-ASCII runes and
// Playfair may insert a filler after every letter. Playfair binary spells each byte
// with two letters before fillers, so it allows four times the limit. Block ciphers
// add up to one block of padding and binary payloads add the container frame.
func MaxCiphertextSize(kind Kind, mode Mode, key KeyMaterial, limit int) int {
	growth := 1
	if mode == Text {
		growth = 2
	}
	if kind == Playfair && mode == Binary {
		growth = 4
	}

	size := growth * limit
	switch kind {
	case Hill:
		size += HillBlockSize - 1
	case Permutation:
		if len(key.Order) > 1 {
			size += len(key.Order) - 1
		}
	}

	if mode == Binary {
		size += MaxContainerOverhead
	}
	return size
}

// PayloadLimit returns the size limit for a payload of input: limit itself for
// encryption and MaxCiphertextSize for decryption.
func PayloadLimit(input *TransformInput, limit int) int {
	if input.Direction == Decrypt {
		return MaxCiphertextSize(input.Kind, input.Mode, input.Key, limit)
	}
	return limit
}
