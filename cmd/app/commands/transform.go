package commands

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	cipherDomain "github.com/allisson/ciphers/internal/cipher/domain"
	cipherUseCase "github.com/allisson/ciphers/internal/cipher/usecase"
)

// StdoutPath selects standard output as the destination of a binary result.
const StdoutPath = "-"

// TransformOptions holds the arguments of the encrypt and decrypt commands.
type TransformOptions struct {
	Cipher    string // falls back to the cipher named in the key file
	Direction cipherDomain.Direction
	Key       KeyOptions
	Text      string // text mode payload; read from the input reader when empty
	InPath    string // selects binary mode
	OutPath   string // binary destination; defaults to the suggested download name next to InPath
	Format    string // normal, nospace or groups
	Output    string // text or json
}

// RunTransform encrypts or decrypts one payload. Text results are printed; binary
// results are written to a file (or stdout with --out -).
func RunTransform(
	ctx context.Context,
	useCase cipherUseCase.TransformUseCase,
	logger *slog.Logger,
	opts TransformOptions,
	io IOTuple,
) error {
	material, fileCipher, err := resolveKey(opts.Key)
	if err != nil {
		return err
	}

	cipherName := opts.Cipher
	if cipherName == "" {
		cipherName = fileCipher
	}
	if cipherName == "" {
		return fmt.Errorf("a cipher is required: use --cipher or set cipher in the key file")
	}
	kind, err := cipherDomain.ParseKind(cipherName)
	if err != nil {
		return err
	}

	format, err := cipherDomain.ParseOutputFormat(opts.Format)
	if err != nil {
		return err
	}

	input := &cipherDomain.TransformInput{
		Kind:      kind,
		Direction: opts.Direction,
		Key:       material,
	}

	if opts.InPath != "" {
		data, err := os.ReadFile(opts.InPath)
		if err != nil {
			return fmt.Errorf("failed to read input file: %w", err)
		}
		input.Mode = cipherDomain.Binary
		input.Data = data
		input.Filename = filepath.Base(opts.InPath)
	} else {
		text, err := readText(opts.Text, io.Reader)
		if err != nil {
			return err
		}
		input.Mode = cipherDomain.Text
		input.Text = text
	}

	output, err := useCase.Transform(ctx, input)
	if err != nil {
		return fmt.Errorf("failed to %s: %w", opts.Direction, err)
	}

	if output.Mode == cipherDomain.Text {
		return writeTextResult(io, opts.Output, output, format)
	}

	return writeBinaryResult(logger, io, opts, output)
}

// readText returns text, or the content of reader without its trailing newline
// when text is empty.
func readText(text string, reader io.Reader) (string, error) {
	if text != "" || reader == nil {
		return text, nil
	}
	raw, err := io.ReadAll(reader)
	if err != nil {
		return "", fmt.Errorf("failed to read input: %w", err)
	}
	return strings.TrimRight(string(raw), "\r\n"), nil
}

func writeTextResult(
	io IOTuple,
	outputFormat string,
	output *cipherDomain.TransformOutput,
	format cipherDomain.OutputFormat,
) error {
	text := format.Apply(output.Text)

	if outputFormat == "json" {
		return writeJSON(io.Writer, map[string]string{
			"cipher":          output.Kind.String(),
			"direction":       string(output.Direction),
			"mode":            string(output.Mode),
			"text":            text,
			"key_fingerprint": output.KeyFingerprint,
		})
	}

	_, err := fmt.Fprintln(io.Writer, text)
	return err
}

func writeBinaryResult(
	logger *slog.Logger,
	io IOTuple,
	opts TransformOptions,
	output *cipherDomain.TransformOutput,
) error {
	if opts.OutPath == StdoutPath {
		_, err := io.Writer.Write(output.Data)
		return err
	}

	path := opts.OutPath
	if path == "" {
		path = filepath.Join(filepath.Dir(opts.InPath), output.DownloadName)
	}

	if err := os.WriteFile(path, output.Data, 0o600); err != nil {
		return fmt.Errorf("failed to write output file: %w", err)
	}

	logger.Info("wrote transform result",
		slog.String("path", path),
		slog.Int("bytes", len(output.Data)),
		slog.String("key_fingerprint", output.KeyFingerprint),
	)

	if opts.Output == "json" {
		return writeJSON(io.Writer, map[string]interface{}{
			"cipher":          output.Kind.String(),
			"direction":       string(output.Direction),
			"mode":            string(output.Mode),
			"path":            path,
			"filename":        output.Filename,
			"size":            len(output.Data),
			"key_fingerprint": output.KeyFingerprint,
		})
	}

	_, err := fmt.Fprintf(io.Writer, "Wrote %d bytes to %s\n", len(output.Data), path)
	return err
}
