package metrics

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// assertBizMetricLine checks that the Prometheus output contains a business metric
// matching the given name, partial label pattern, and value. Uses regex to handle
// extra OTel scope labels injected by the Prometheus exporter.
func assertBizMetricLine(t *testing.T, output, name, labels, value string) {
	t.Helper()
	pattern := name + `\{[^}]*` + labels + `[^}]*\} ` + value
	assert.Regexp(t, pattern, output)
}

func scrape(t *testing.T, provider *Provider) string {
	t.Helper()
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/metrics", nil)
	provider.Handler().ServeHTTP(w, req)
	require.Equal(t, http.StatusOK, w.Code)
	return w.Body.String()
}

func TestNewBusinessMetrics(t *testing.T) {
	provider, err := NewProvider("test_app")
	require.NoError(t, err)

	businessMetrics, err := NewBusinessMetrics(provider.MeterProvider(), "test_app")

	require.NoError(t, err)
	assert.NotNil(t, businessMetrics)
}

func TestBusinessMetrics_RecordPayloadSize(t *testing.T) {
	provider, err := NewProvider("payload_test")
	require.NoError(t, err)
	defer func() {
		assert.NoError(t, provider.Shutdown(context.Background()))
	}()

	bm, err := NewBusinessMetrics(provider.MeterProvider(), "payload_test")
	require.NoError(t, err)

	ctx := context.Background()
	bm.RecordPayloadSize(ctx, "cipher", "otp_encrypt", 10, "success")
	bm.RecordPayloadSize(ctx, "cipher", "otp_encrypt", 2000, "success")
	bm.RecordPayloadSize(ctx, "cipher", "otp_encrypt", -1, "success")

	output := scrape(t, provider)

	assert.Contains(t, output, "payload_test_payload_bytes")
	assertBizMetricLine(
		t,
		output,
		`payload_test_payload_bytes[a-z_]*_count`,
		`domain="cipher".*operation="otp_encrypt".*status="success"`,
		`2`,
	)
}

func TestNewNoOpBusinessMetrics(t *testing.T) {
	noOpMetrics := NewNoOpBusinessMetrics()

	assert.NotNil(t, noOpMetrics)
	assert.IsType(t, &NoOpBusinessMetrics{}, noOpMetrics)

	ctx := context.Background()
	noOpMetrics.RecordOperation(ctx, "cipher", "shift_encrypt", "success")
	noOpMetrics.RecordDuration(ctx, "cipher", "shift_encrypt", 100*time.Millisecond, "success")
	noOpMetrics.RecordPayloadSize(ctx, "cipher", "shift_encrypt", 42, "error")
}

func TestBusinessMetrics_Integration(t *testing.T) {
	provider, err := NewProvider("integration_test")
	require.NoError(t, err)
	defer func() {
		assert.NoError(t, provider.Shutdown(context.Background()))
	}()

	bm, err := NewBusinessMetrics(provider.MeterProvider(), "integration_test")
	require.NoError(t, err)

	ctx := context.Background()

	bm.RecordOperation(ctx, "cipher", "vigenere_encrypt", "success")
	bm.RecordOperation(ctx, "cipher", "vigenere_encrypt", "success")
	bm.RecordOperation(ctx, "cipher", "vigenere_encrypt", "error")
	bm.RecordOperation(ctx, "cipher", "hill_decrypt", "success")

	bm.RecordDuration(ctx, "cipher", "vigenere_encrypt", 50*time.Millisecond, "success")
	bm.RecordDuration(ctx, "cipher", "vigenere_encrypt", 60*time.Millisecond, "success")
	bm.RecordDuration(ctx, "cipher", "hill_decrypt", 10*time.Millisecond, "error")

	output := scrape(t, provider)

	assertBizMetricLine(
		t,
		output,
		`integration_test_operations_total`,
		`domain="cipher".*operation="vigenere_encrypt".*status="success"`,
		`2`,
	)
	assertBizMetricLine(
		t,
		output,
		`integration_test_operations_total`,
		`domain="cipher".*operation="vigenere_encrypt".*status="error"`,
		`1`,
	)
	assertBizMetricLine(
		t,
		output,
		`integration_test_operations_total`,
		`domain="cipher".*operation="hill_decrypt".*status="success"`,
		`1`,
	)
	assertBizMetricLine(
		t,
		output,
		`integration_test_operation_duration_seconds_count`,
		`domain="cipher".*operation="vigenere_encrypt".*status="success"`,
		`2`,
	)
	assertBizMetricLine(
		t,
		output,
		`integration_test_operation_duration_seconds_count`,
		`domain="cipher".*operation="hill_decrypt".*status="error"`,
		`1`,
	)
}
