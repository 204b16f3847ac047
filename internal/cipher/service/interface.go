// Package service implements the classical cipher algorithms over text and binary
// payloads, plus the modular arithmetic they share.
//
// Text payloads are upper-cased and processed over the 26-letter alphabet (modulus 26).
// Binary payloads are processed byte by byte (modulus 256). Every cipher is a value
// built from an immutable key and is safe for concurrent use.
package service

// Cipher encrypts and decrypts payloads in both supported modes.
type Cipher interface {
	EncryptText(text string) (string, error)
	DecryptText(text string) (string, error)
	EncryptBinary(data []byte) ([]byte, error)
	DecryptBinary(data []byte) ([]byte, error)
}
