package metrics

import (
	"context"
	"fmt"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

// payloadBuckets are the histogram boundaries, in bytes, for transformed payloads.
var payloadBuckets = []float64{16, 64, 256, 1024, 4096, 16384, 65536, 262144, 1048576, 4194304, 16777216}

// BusinessMetrics records cipher operations.
//
// Labels are bounded: domain is "cipher", operation is "<cipher>_<direction>"
// (e.g. "vigenere_encrypt"), status is "success" or "error".
type BusinessMetrics interface {
	// RecordOperation counts one operation.
	RecordOperation(ctx context.Context, domain, operation, status string)

	// RecordDuration records the wall time of an operation in seconds.
	RecordDuration(ctx context.Context, domain, operation string, duration time.Duration, status string)

	// RecordPayloadSize records the size in bytes of the payload handed to an operation.
	RecordPayloadSize(ctx context.Context, domain, operation string, size int, status string)
}

type businessMetrics struct {
	operationCounter metric.Int64Counter
	durationHisto    metric.Float64Histogram
	payloadHisto     metric.Int64Histogram
}

// NewBusinessMetrics creates the cipher instruments on meterProvider. Metric names
// are prefixed with namespace (e.g. "ciphers_operations_total").
func NewBusinessMetrics(meterProvider metric.MeterProvider, namespace string) (BusinessMetrics, error) {
	meter := meterProvider.Meter(namespace)

	operationCounter, err := meter.Int64Counter(
		fmt.Sprintf("%s_operations_total", namespace),
		metric.WithDescription("Total number of cipher operations"),
		metric.WithUnit("{operation}"),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create operation counter: %w", err)
	}

	durationHisto, err := meter.Float64Histogram(
		fmt.Sprintf("%s_operation_duration_seconds", namespace),
		metric.WithDescription("Duration of cipher operations in seconds"),
		metric.WithUnit("s"),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create duration histogram: %w", err)
	}

	payloadHisto, err := meter.Int64Histogram(
		fmt.Sprintf("%s_payload_bytes", namespace),
		metric.WithDescription("Size of payloads handed to cipher operations"),
		metric.WithUnit("By"),
		metric.WithExplicitBucketBoundaries(payloadBuckets...),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create payload histogram: %w", err)
	}

	return &businessMetrics{
		operationCounter: operationCounter,
		durationHisto:    durationHisto,
		payloadHisto:     payloadHisto,
	}, nil
}

func operationAttributes(domain, operation, status string) metric.MeasurementOption {
	return metric.WithAttributes(
		attribute.String("domain", domain),
		attribute.String("operation", operation),
		attribute.String("status", status),
	)
}

// RecordOperation increments the operation counter.
func (b *businessMetrics) RecordOperation(ctx context.Context, domain, operation, status string) {
	b.operationCounter.Add(ctx, 1, operationAttributes(domain, operation, status))
}

// RecordDuration records the operation duration in seconds.
func (b *businessMetrics) RecordDuration(
	ctx context.Context,
	domain, operation string,
	duration time.Duration,
	status string,
) {
	b.durationHisto.Record(ctx, duration.Seconds(), operationAttributes(domain, operation, status))
}

// RecordPayloadSize records the payload size in bytes. Negative sizes are ignored.
func (b *businessMetrics) RecordPayloadSize(
	ctx context.Context,
	domain, operation string,
	size int,
	status string,
) {
	if size < 0 {
		return
	}
	b.payloadHisto.Record(ctx, int64(size), operationAttributes(domain, operation, status))
}

// NoOpBusinessMetrics discards every measurement. Used when metrics are disabled.
type NoOpBusinessMetrics struct{}

// NewNoOpBusinessMetrics creates a no-op BusinessMetrics implementation.
func NewNoOpBusinessMetrics() BusinessMetrics {
	return &NoOpBusinessMetrics{}
}

// RecordOperation does nothing.
func (n *NoOpBusinessMetrics) RecordOperation(ctx context.Context, domain, operation, status string) {}

// RecordDuration does nothing.
func (n *NoOpBusinessMetrics) RecordDuration(
	ctx context.Context,
	domain, operation string,
	duration time.Duration,
	status string,
) {
}

// RecordPayloadSize does nothing.
func (n *NoOpBusinessMetrics) RecordPayloadSize(
	ctx context.Context,
	domain, operation string,
	size int,
	status string,
) {
}
