// Package http provides HTTP handlers for the cipher catalogue and transform operations.
package http

import (
	"encoding/base64"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"mime/multipart"
	"net/http"

	"github.com/gin-gonic/gin"

	cipherDomain "github.com/allisson/ciphers/internal/cipher/domain"
	"github.com/allisson/ciphers/internal/cipher/http/dto"
	cipherUseCase "github.com/allisson/ciphers/internal/cipher/usecase"
	"github.com/allisson/ciphers/internal/httputil"
	customValidation "github.com/allisson/ciphers/internal/validation"
)

// CipherHandler handles HTTP requests for cipher transforms.
type CipherHandler struct {
	transformUseCase cipherUseCase.TransformUseCase
	maxPayloadBytes  int64
	logger           *slog.Logger
}

// NewCipherHandler creates a new cipher handler. maxPayloadBytes bounds uploaded
// files; zero or less disables the check.
func NewCipherHandler(
	transformUseCase cipherUseCase.TransformUseCase,
	maxPayloadBytes int64,
	logger *slog.Logger,
) *CipherHandler {
	return &CipherHandler{
		transformUseCase: transformUseCase,
		maxPayloadBytes:  maxPayloadBytes,
		logger:           logger,
	}
}

// ListHandler returns the cipher catalogue.
// GET /v1/ciphers
func (h *CipherHandler) ListHandler(c *gin.Context) {
	c.JSON(http.StatusOK, dto.MapCatalogueToListResponse(cipherDomain.Catalogue()))
}

// TransformHandler encrypts or decrypts a JSON payload.
// POST /v1/ciphers/:cipher/:direction
// Returns 200 OK with the text result, or the base64 container/recovered bytes in binary mode.
func (h *CipherHandler) TransformHandler(c *gin.Context) {
	kind, direction, err := parseRouteParams(c)
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	var req dto.TransformRequest

	// Parse and bind JSON
	if err := c.ShouldBindJSON(&req); err != nil {
		h.handleBodyError(c, err)
		return
	}

	// Validate request
	if err := req.Validate(kind); err != nil {
		httputil.HandleValidationErrorGin(c, customValidation.WrapValidationError(err), h.logger)
		return
	}

	format, err := cipherDomain.ParseOutputFormat(req.Format)
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	input, err := req.ToInput(kind, direction)
	if err != nil {
		httputil.HandleBadRequestGin(c, err, h.logger)
		return
	}

	output, err := h.transformUseCase.Transform(c.Request.Context(), input)
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	c.JSON(http.StatusOK, dto.MapTransformResponse(output, format))
}

// FileHandler encrypts or decrypts an uploaded file in binary mode.
// POST /v1/ciphers/:cipher/:direction/file
// Form fields: "file" (required), "key" (JSON key document), "pad_file" (optional OTP pad).
// Returns the container (encrypt) or the recovered file (decrypt) as an attachment.
func (h *CipherHandler) FileHandler(c *gin.Context) {
	kind, direction, err := parseRouteParams(c)
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	fileHeader, err := c.FormFile("file")
	if err != nil {
		h.handleBodyError(c, fmt.Errorf("missing file: %w", err))
		return
	}

	key, err := dto.ParseKeyRequest(c.PostForm("key"))
	if err != nil {
		httputil.HandleBadRequestGin(c, err, h.logger)
		return
	}

	var pad []byte
	if padHeader, err := c.FormFile("pad_file"); err == nil {
		pad, err = h.readUpload(padHeader, h.maxPayloadBytes)
		if err != nil {
			httputil.HandleErrorGin(c, err, h.logger)
			return
		}
	} else if !errors.Is(err, http.ErrMissingFile) {
		httputil.HandleBadRequestGin(c, fmt.Errorf("invalid pad_file: %w", err), h.logger)
		return
	}

	if pad != nil {
		key.Pad = base64.StdEncoding.EncodeToString(pad)
	}

	if err := key.ValidateFor(kind); err != nil {
		httputil.HandleValidationErrorGin(c, customValidation.WrapValidationError(err), h.logger)
		return
	}

	material, err := key.ToKeyMaterial()
	if err != nil {
		httputil.HandleBadRequestGin(c, err, h.logger)
		return
	}

	input := &cipherDomain.TransformInput{
		Kind:      kind,
		Direction: direction,
		Mode:      cipherDomain.Binary,
		Key:       material,
		Filename:  fileHeader.Filename,
	}

	limit := h.maxPayloadBytes
	if limit > 0 {
		limit = int64(cipherDomain.PayloadLimit(input, int(limit)))
	}
	input.Data, err = h.readUpload(fileHeader, limit)
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	output, err := h.transformUseCase.Transform(c.Request.Context(), input)
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	c.Header("X-Key-Fingerprint", output.KeyFingerprint)
	httputil.AttachmentGin(c, output.DownloadName, "application/octet-stream", output.Data)
}

// readUpload reads an uploaded part fully, refusing parts above limit bytes.
// A limit of zero or less accepts any size.
func (h *CipherHandler) readUpload(header *multipart.FileHeader, limit int64) ([]byte, error) {
	if limit > 0 && header.Size > limit {
		return nil, fmt.Errorf("%w: %s has %d bytes, limit is %d",
			cipherDomain.ErrPayloadTooLarge, header.Filename, header.Size, limit)
	}

	file, err := header.Open()
	if err != nil {
		return nil, err
	}
	defer func() {
		_ = file.Close()
	}()

	return io.ReadAll(file)
}

// handleBodyError reports a body that could not be read or parsed. Bodies cut off by
// the request size limit are reported as 413, anything else as 400.
func (h *CipherHandler) handleBodyError(c *gin.Context, err error) {
	var maxBytesErr *http.MaxBytesError
	if errors.As(err, &maxBytesErr) {
		httputil.HandleErrorGin(c, fmt.Errorf("%w: request body exceeds %d bytes",
			cipherDomain.ErrPayloadTooLarge, maxBytesErr.Limit), h.logger)
		return
	}
	httputil.HandleBadRequestGin(c, err, h.logger)
}

func parseRouteParams(c *gin.Context) (cipherDomain.Kind, cipherDomain.Direction, error) {
	kind, err := cipherDomain.ParseKind(c.Param("cipher"))
	if err != nil {
		return "", "", err
	}
	direction, err := cipherDomain.ParseDirection(c.Param("direction"))
	if err != nil {
		return "", "", err
	}
	return kind, direction, nil
}
