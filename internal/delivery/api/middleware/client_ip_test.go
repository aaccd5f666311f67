package middleware

import (
	"fmt"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"academy/config"
	"academy/internal/infra/ratelimit"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newLimitedEcho(t *testing.T, trustedProxies []string, burst int) *echo.Echo {
	t.Helper()

	extractor, err := ClientIPExtractor(trustedProxies)
	require.NoError(t, err)

	cfg := &config.Config{}
	e := echo.New()
	e.IPExtractor = extractor
	e.HTTPErrorHandler = NewErrorMiddleware(slog.New(slog.DiscardHandler), cfg).HandleHTTPError

	limiter := ratelimit.NewMemoryLimiter(0.001, burst, time.Minute)
	m := NewRateLimitMiddleware(limiter, cfg, slog.New(slog.DiscardHandler))
	e.GET("/invoices/:n", func(c echo.Context) error { return c.String(http.StatusOK, c.RealIP()) }, m.Handle)

	return e
}

func getInvoice(e *echo.Echo, remoteAddr, xff string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/invoices/INV-1", nil)
	req.RemoteAddr = remoteAddr
	if xff != "" {
		req.Header.Set(echo.HeaderXForwardedFor, xff)
		req.Header.Set(echo.HeaderXRealIP, xff)
	}
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	return rec
}

func TestClientIPExtractor_ForwardedHeadersIgnoredByDefault(t *testing.T) {
	e := newLimitedEcho(t, nil, 2)

	var allowed int
	for i := range 10 {
		rec := getInvoice(e, "203.0.113.9:5555", fmt.Sprintf("10.0.0.%d", i))
		if rec.Code == http.StatusOK {
			allowed++
			assert.Equal(t, "203.0.113.9", rec.Body.String())
		} else {
			assert.Equal(t, http.StatusTooManyRequests, rec.Code)
		}
	}

	assert.Equal(t, 2, allowed)
}

func TestClientIPExtractor_TrustedProxy(t *testing.T) {
	e := newLimitedEcho(t, []string{"10.0.0.0/8"}, 1)

	for i := range 5 {
		client := fmt.Sprintf("198.51.100.%d", i)
		rec := getInvoice(e, "10.0.0.5:443", client)

		require.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, client, rec.Body.String())
	}

	// an untrusted peer cannot spoof its way past the proxy list
	assert.Equal(t, http.StatusOK, getInvoice(e, "203.0.113.9:5555", "198.51.100.77").Code)
	assert.Equal(t, http.StatusTooManyRequests, getInvoice(e, "203.0.113.9:5555", "198.51.100.78").Code)
}

func TestClientIPExtractor_InvalidProxy(t *testing.T) {
	for _, proxy := range []string{"not-an-ip", "10.0.0.0/99"} {
		_, err := ClientIPExtractor([]string{proxy})
		assert.Error(t, err, proxy)
	}

	_, err := ClientIPExtractor([]string{"192.0.2.10", "2001:db8::1"})
	assert.NoError(t, err)
}
