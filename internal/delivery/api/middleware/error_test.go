package middleware

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	domainerrors "dispatch/internal/domain/errors"
	"dispatch/internal/errors"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type errorBody struct {
	Error struct {
		Code    string          `json:"code"`
		Details json.RawMessage `json:"details"`
	} `json:"error"`
}

func renderError(t *testing.T, err error) (*httptest.ResponseRecorder, errorBody, string) {
	t.Helper()

	var logs bytes.Buffer
	m := NewErrorMiddleware(slog.New(slog.NewTextHandler(&logs, nil)))

	e := echo.New()
	rec := httptest.NewRecorder()
	c := e.NewContext(httptest.NewRequest(http.MethodPost, "/api/v1/merchant/orders/1/accept", nil), rec)
	m.HandleHTTPError(err, c)

	var body errorBody
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))

	return rec, body, logs.String()
}

func TestHandleHTTPError(t *testing.T) {
	t.Run("transition error carries current status", func(t *testing.T) {
		rec, body, _ := renderError(t, errors.Wrap(domainerrors.NewTransitionError("preparing", "merchant_accept"), "accept"))
		assert.Equal(t, http.StatusConflict, rec.Code)
		assert.Equal(t, "INVALID_TRANSITION", body.Error.Code)
		assert.Contains(t, string(body.Error.Details), `"current_status":"preparing"`)
	})

	t.Run("validation details are shown", func(t *testing.T) {
		rec, body, logs := renderError(t, domainerrors.ErrValidationFailed.WithDetails("rating must be between 1 and 5"))
		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.JSONEq(t, `"rating must be between 1 and 5"`, string(body.Error.Details))
		assert.Empty(t, logs)
	})

	t.Run("forbidden hides details", func(t *testing.T) {
		rec, body, _ := renderError(t, domainerrors.ErrForbidden.WithDetails("order belongs to another restaurant"))
		assert.Equal(t, http.StatusForbidden, rec.Code)
		assert.Empty(t, body.Error.Details)
	})

	t.Run("database failure is logged and hidden", func(t *testing.T) {
		rec, body, logs := renderError(t, domainerrors.NewDatabaseExecuteError(errors.New("conn reset"), "failed to create order"))
		assert.Equal(t, http.StatusInternalServerError, rec.Code)
		assert.Empty(t, body.Error.Details)
		assert.Contains(t, logs, "conn reset")
	})

	t.Run("echo http error", func(t *testing.T) {
		rec, body, _ := renderError(t, echo.ErrMethodNotAllowed)
		assert.Equal(t, http.StatusMethodNotAllowed, rec.Code)
		assert.Equal(t, "HTTP_ERROR", body.Error.Code)
	})

	t.Run("unknown error is a 500", func(t *testing.T) {
		rec, body, logs := renderError(t, errors.New("nil map write"))
		assert.Equal(t, http.StatusInternalServerError, rec.Code)
		assert.Equal(t, "INTERNAL_ERROR", body.Error.Code)
		assert.Contains(t, logs, "Unhandled error")
	})
}
