package middleware

import (
	"bytes"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"dispatch/config"
	deliverycontext "dispatch/internal/delivery/context"
	domainerrors "dispatch/internal/domain/errors"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestEcho(buf *bytes.Buffer, debug bool, h echo.HandlerFunc) *echo.Echo {
	logger := slog.New(slog.NewTextHandler(buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
	cfg := &config.Config{}
	cfg.Env.Debug = debug

	e := echo.New()
	e.Use(NewRequestIDMiddleware(logger).Process)
	e.Use(NewLoggerMiddleware(logger, cfg).Handle)
	e.GET("/orders/:id", h)

	return e
}

func TestRequestID_GeneratedAndEchoed(t *testing.T) {
	var seen string
	var buf bytes.Buffer
	e := newTestEcho(&buf, false, func(c echo.Context) error {
		seen = deliverycontext.GetRequestIDFromContext(c.Request().Context())

		return c.NoContent(http.StatusOK)
	})

	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/orders/1", nil))

	require.NotEmpty(t, seen)
	assert.Equal(t, seen, rec.Header().Get(deliverycontext.HeaderXRequestID))
}

func TestRequestID_ClientValueKeptUnlessOversized(t *testing.T) {
	var buf bytes.Buffer
	e := newTestEcho(&buf, false, func(c echo.Context) error { return c.NoContent(http.StatusOK) })

	req := httptest.NewRequest(http.MethodGet, "/orders/1", nil)
	req.Header.Set(deliverycontext.HeaderXRequestID, "client-id")
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	assert.Equal(t, "client-id", rec.Header().Get(deliverycontext.HeaderXRequestID))

	req = httptest.NewRequest(http.MethodGet, "/orders/1", nil)
	req.Header.Set(deliverycontext.HeaderXRequestID, strings.Repeat("x", maxRequestIDLength+1))
	rec = httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	assert.Len(t, rec.Header().Get(deliverycontext.HeaderXRequestID), 36)
}

func TestLogger_SuccessOnlyInDebug(t *testing.T) {
	ok := func(c echo.Context) error { return c.NoContent(http.StatusOK) }

	var quiet bytes.Buffer
	newTestEcho(&quiet, false, ok).ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/orders/1", nil))
	assert.NotContains(t, quiet.String(), "HTTP Request")

	var verbose bytes.Buffer
	newTestEcho(&verbose, true, ok).ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/orders/1", nil))
	assert.Contains(t, verbose.String(), "HTTP Request")
	assert.Contains(t, verbose.String(), "route=/orders/:id")
	assert.Contains(t, verbose.String(), "request_id=")
}

func TestLogger_FailuresAlwaysLoggedWithScopedAttrs(t *testing.T) {
	var buf bytes.Buffer
	e := newTestEcho(&buf, false, func(c echo.Context) error {
		deliverycontext.AnnotateRequest(c, nil, slog.String("role", "agent"))

		return domainerrors.ErrOrderNotFound
	})

	e.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/orders/1", nil))

	out := buf.String()
	assert.Contains(t, out, "level=WARN")
	assert.Contains(t, out, "status=404")
	assert.Contains(t, out, "role=agent")
}

func TestStatusFromError(t *testing.T) {
	assert.Equal(t, http.StatusMethodNotAllowed, statusFromError(echo.ErrMethodNotAllowed))
	assert.Equal(t, http.StatusConflict, statusFromError(domainerrors.ErrAgentAtCapacity))
	assert.Equal(t, http.StatusInternalServerError, statusFromError(assert.AnError))
}
