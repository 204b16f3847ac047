package commands

import (
	"bytes"
	"encoding/base64"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	cipherDomain "github.com/allisson/ciphers/internal/cipher/domain"
)

// KeyDocument is the YAML layout of a --key-file. Only the fields read by the
// selected cipher need to be set. Example:
//
//	cipher: hill
//	matrix: [[3, 3], [2, 5]]
type KeyDocument struct {
	Cipher   string  `yaml:"cipher"`
	Shift    *int    `yaml:"shift"`
	A        *int    `yaml:"a"`
	B        *int    `yaml:"b"`
	Keyword  string  `yaml:"keyword"`
	Alphabet string  `yaml:"alphabet"`
	Matrix   [][]int `yaml:"matrix"`
	Order    []int   `yaml:"order"`
	Pad      string  `yaml:"pad"`      // base64
	PadText  string  `yaml:"pad_text"` // pad given as plain text
	PadFile  string  `yaml:"pad_file"` // relative paths resolve against the key file
}

// LoadKeyDocument reads a YAML key document. Unknown fields are rejected so that a
// misspelt field does not silently fall back to a zero key.
func LoadKeyDocument(path string) (*KeyDocument, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read key file: %w", err)
	}

	decoder := yaml.NewDecoder(bytes.NewReader(raw))
	decoder.KnownFields(true)

	var doc KeyDocument
	if err := decoder.Decode(&doc); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("key file %s is empty", path)
		}
		return nil, fmt.Errorf("failed to parse key file %s: %w", path, err)
	}

	if doc.PadFile != "" && !filepath.IsAbs(doc.PadFile) {
		doc.PadFile = filepath.Join(filepath.Dir(path), doc.PadFile)
	}

	return &doc, nil
}

// KeyOptions collects key material given on the command line. Set flags override
// the values of the key file.
type KeyOptions struct {
	File     string
	Shift    *int
	A        *int
	B        *int
	Keyword  string
	Alphabet string
	Matrix   string // row-major "a,b,c,d"
	Order    string // "3,1,2"
	PadFile  string
	PadText  string
}

// resolveKey merges the key file and the flags into key material. It also returns
// the cipher named by the key file, if any.
func resolveKey(opts KeyOptions) (cipherDomain.KeyMaterial, string, error) {
	doc := &KeyDocument{}
	if opts.File != "" {
		loaded, err := LoadKeyDocument(opts.File)
		if err != nil {
			return cipherDomain.KeyMaterial{}, "", err
		}
		doc = loaded
	}

	if opts.Shift != nil {
		doc.Shift = opts.Shift
	}
	if opts.A != nil {
		doc.A = opts.A
	}
	if opts.B != nil {
		doc.B = opts.B
	}
	if opts.Keyword != "" {
		doc.Keyword = opts.Keyword
	}
	if opts.Alphabet != "" {
		doc.Alphabet = opts.Alphabet
	}
	if opts.Matrix != "" {
		values, err := parseIntList(opts.Matrix)
		if err != nil {
			return cipherDomain.KeyMaterial{}, "", fmt.Errorf("invalid --matrix: %w", err)
		}
		if len(values) != 4 {
			return cipherDomain.KeyMaterial{}, "", fmt.Errorf(
				"%w: --matrix needs 4 integers, got %d", cipherDomain.ErrInvalidKeyShape, len(values))
		}
		doc.Matrix = [][]int{values[:2], values[2:]}
	}
	if opts.Order != "" {
		values, err := parseIntList(opts.Order)
		if err != nil {
			return cipherDomain.KeyMaterial{}, "", fmt.Errorf("invalid --order: %w", err)
		}
		doc.Order = values
	}
	if opts.PadFile != "" {
		doc.PadFile = opts.PadFile
		doc.Pad = ""
		doc.PadText = ""
	}
	if opts.PadText != "" {
		doc.PadText = opts.PadText
		doc.Pad = ""
		doc.PadFile = ""
	}

	material, err := doc.Material()
	return material, doc.Cipher, err
}

// Material converts the document into domain key material.
func (d *KeyDocument) Material() (cipherDomain.KeyMaterial, error) {
	material := cipherDomain.KeyMaterial{
		Keyword:  d.Keyword,
		Alphabet: d.Alphabet,
		Order:    d.Order,
	}
	if d.Shift != nil {
		material.Shift = *d.Shift
	}
	if d.A != nil {
		material.A = *d.A
	}
	if d.B != nil {
		material.B = *d.B
	}

	if d.Matrix != nil {
		matrix, err := cipherDomain.MatrixFromRows(d.Matrix)
		if err != nil {
			return cipherDomain.KeyMaterial{}, err
		}
		material.Matrix = matrix
	}

	switch {
	case d.PadFile != "":
		pad, err := os.ReadFile(d.PadFile)
		if err != nil {
			return cipherDomain.KeyMaterial{}, fmt.Errorf("failed to read pad file: %w", err)
		}
		material.Pad = pad
	case d.Pad != "":
		pad, err := base64.StdEncoding.DecodeString(d.Pad)
		if err != nil {
			return cipherDomain.KeyMaterial{}, fmt.Errorf("%w: pad is not valid base64", cipherDomain.ErrInvalidKeyShape)
		}
		material.Pad = pad
	case d.PadText != "":
		material.Pad = []byte(d.PadText)
	}

	return material, nil
}
