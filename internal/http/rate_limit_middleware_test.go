package http

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newRateLimitedRouter(t *testing.T, rps float64, burst int) *gin.Engine {
	t.Helper()

	ctx, cancel := context.WithCancel(context.Background())
	t.Cleanup(cancel)

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	router := gin.New()
	router.Use(RateLimitMiddleware(ctx, rps, burst, logger))
	router.POST("/v1/ciphers/:cipher/:direction", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	return router
}

func postFrom(router *gin.Engine, remoteAddr string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/v1/ciphers/shift/encrypt", nil)
	if remoteAddr != "" {
		req.RemoteAddr = remoteAddr
	}
	router.ServeHTTP(w, req)
	return w
}

func TestRateLimitMiddleware_AllowsRequestsWithinLimit(t *testing.T) {
	router := newRateLimitedRouter(t, 10.0, 20)

	for i := 0; i < 5; i++ {
		assert.Equal(t, http.StatusOK, postFrom(router, "").Code)
	}
}

func TestRateLimitMiddleware_BlocksBurstOverflow(t *testing.T) {
	router := newRateLimitedRouter(t, 0.5, 2)

	for i := 0; i < 2; i++ {
		assert.Equal(t, http.StatusOK, postFrom(router, "").Code, "request %d should succeed", i+1)
	}

	w := postFrom(router, "")

	assert.Equal(t, http.StatusTooManyRequests, w.Code)
	assert.NotEmpty(t, w.Header().Get("Retry-After"))
	assert.NotEqual(t, "0", w.Header().Get("Retry-After"))
	assert.Contains(t, w.Body.String(), "rate_limit_exceeded")
}

func TestRateLimitMiddleware_IndependentLimitsPerIP(t *testing.T) {
	router := newRateLimitedRouter(t, 0.5, 1)

	assert.Equal(t, http.StatusOK, postFrom(router, "192.168.1.100:12345").Code)
	// Same IP, different port.
	assert.Equal(t, http.StatusTooManyRequests, postFrom(router, "192.168.1.100:12346").Code)
	assert.Equal(t, http.StatusOK, postFrom(router, "192.168.1.101:12345").Code)
}

func TestRateLimiterStore_Sweep(t *testing.T) {
	store := &rateLimiterStore{rps: 10.0, burst: 20}

	limiter := store.getLimiter("192.168.1.100")
	require.NotNil(t, limiter)
	assert.Same(t, limiter, store.getLimiter("192.168.1.100"))
	store.getLimiter("192.168.1.101")

	val, ok := store.limiters.Load("192.168.1.100")
	require.True(t, ok)
	entry := val.(*rateLimiterEntry)
	entry.mu.Lock()
	entry.lastAccess = time.Now().Add(-2 * time.Hour)
	entry.mu.Unlock()

	store.sweep(time.Now().Add(-time.Hour))

	_, ok = store.limiters.Load("192.168.1.100")
	assert.False(t, ok, "stale limiter should be removed")
	_, ok = store.limiters.Load("192.168.1.101")
	assert.True(t, ok, "recent limiter should be kept")
}

func TestRateLimiterStore_CleanupStopsWithContext(t *testing.T) {
	store := &rateLimiterStore{rps: 10.0, burst: 20}

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		store.cleanupStale(ctx, 10*time.Millisecond, time.Hour)
		close(done)
	}()

	cancel()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("cleanup goroutine did not stop")
	}
}
