package usecase

import (
	"context"
	"time"

	cipherDomain "github.com/allisson/ciphers/internal/cipher/domain"
	"github.com/allisson/ciphers/internal/metrics"
)

// transformUseCaseWithMetrics decorates TransformUseCase with metrics instrumentation.
type transformUseCaseWithMetrics struct {
	next    TransformUseCase
	metrics metrics.BusinessMetrics
}

// NewTransformUseCaseWithMetrics wraps a TransformUseCase with metrics recording.
func NewTransformUseCaseWithMetrics(useCase TransformUseCase, m metrics.BusinessMetrics) TransformUseCase {
	return &transformUseCaseWithMetrics{
		next:    useCase,
		metrics: m,
	}
}

// Transform records one operation per call, labelled "<cipher>_<direction>", along
// with its duration and payload size.
func (t *transformUseCaseWithMetrics) Transform(
	ctx context.Context,
	input *cipherDomain.TransformInput,
) (*cipherDomain.TransformOutput, error) {
	start := time.Now()
	output, err := t.next.Transform(ctx, input)

	status := "success"
	if err != nil {
		status = "error"
	}

	operation := operationName(input)
	t.metrics.RecordOperation(ctx, "cipher", operation, status)
	t.metrics.RecordDuration(ctx, "cipher", operation, time.Since(start), status)
	if input != nil {
		t.metrics.RecordPayloadSize(ctx, "cipher", operation, input.PayloadSize(), status)
	}

	return output, err
}

// operationName keeps label cardinality bounded: unknown kinds and directions
// collapse into "unknown".
func operationName(input *cipherDomain.TransformInput) string {
	if input == nil {
		return "unknown"
	}

	kind := "unknown"
	if input.Kind.Validate() == nil {
		kind = input.Kind.String()
	}

	direction := "unknown"
	switch input.Direction {
	case cipherDomain.Encrypt, cipherDomain.Decrypt:
		direction = string(input.Direction)
	}

	return kind + "_" + direction
}
