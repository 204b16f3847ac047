package dto

import (
	"encoding/base64"

	cipherDomain "github.com/allisson/ciphers/internal/cipher/domain"
)

// TransformResponse represents the result of a transform in API responses.
// Text results fill Text; binary results fill Filename, DownloadName, Data and Size.
type TransformResponse struct {
	Cipher         string `json:"cipher"`
	Direction      string `json:"direction"`
	Mode           string `json:"mode"`
	Text           string `json:"text,omitempty"`
	Filename       string `json:"filename,omitempty"`
	DownloadName   string `json:"download_name,omitempty"`
	Data           string `json:"data,omitempty"` // Base64-encoded
	Size           int    `json:"size,omitempty"`
	KeyFingerprint string `json:"key_fingerprint"`
}

// MapTransformResponse converts a dispatcher output to an API response. The output
// format only affects text results.
func MapTransformResponse(output *cipherDomain.TransformOutput, format cipherDomain.OutputFormat) TransformResponse {
	response := TransformResponse{
		Cipher:         output.Kind.String(),
		Direction:      string(output.Direction),
		Mode:           string(output.Mode),
		KeyFingerprint: output.KeyFingerprint,
	}

	if output.Mode == cipherDomain.Text {
		response.Text = format.Apply(output.Text)
		return response
	}

	response.Filename = output.Filename
	response.DownloadName = output.DownloadName
	response.Data = base64.StdEncoding.EncodeToString(output.Data)
	response.Size = len(output.Data)
	return response
}

// CipherResponse describes one supported cipher.
type CipherResponse struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	KeyFields   []string `json:"key_fields"`
	Modes       []string `json:"modes"`
	Description string   `json:"description"`
}

// ListCiphersResponse represents the cipher catalogue in API responses.
type ListCiphersResponse struct {
	Data []CipherResponse `json:"data"`
}

// MapCatalogueToListResponse converts the domain catalogue to a list response.
func MapCatalogueToListResponse(entries []cipherDomain.CipherInfo) ListCiphersResponse {
	data := make([]CipherResponse, 0, len(entries))
	for _, entry := range entries {
		data = append(data, CipherResponse{
			ID:          entry.Kind.String(),
			Name:        entry.Name,
			KeyFields:   entry.KeyFields,
			Modes:       []string{string(cipherDomain.Text), string(cipherDomain.Binary)},
			Description: entry.Description,
		})
	}
	return ListCiphersResponse{Data: data}
}
