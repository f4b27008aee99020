package middleware

import (
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	deliverycontext "tablescout/internal/delivery/context"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func serve(t *testing.T, mw echo.MiddlewareFunc, header map[string]string, h echo.HandlerFunc) *httptest.ResponseRecorder {
	t.Helper()

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	for k, v := range header {
		req.Header.Set(k, v)
	}
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	err := mw(h)(c)
	if err != nil {
		e.HTTPErrorHandler(err, c)
	}

	return rec
}

func TestRequestIDMiddleware(t *testing.T) {
	m := NewRequestIDMiddleware(slog.New(slog.NewTextHandler(io.Discard, nil)))

	tests := []struct {
		name   string
		header string
		keep   bool
	}{
		{name: "caller id kept", header: "req-42", keep: true},
		{name: "missing id generated", header: ""},
		{name: "oversized id replaced", header: strings.Repeat("a", maxRequestIDLength+1)},
		{name: "unsafe id replaced", header: "evil\"id"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var fromCtx string
			rec := serve(t, m.Process, map[string]string{"X-Request-Id": tt.header}, func(c echo.Context) error {
				fromCtx = deliverycontext.GetRequestIDFromContext(c.Request().Context())
				assert.NotNil(t, deliverycontext.GetLogger(c.Request().Context()))

				return c.NoContent(http.StatusNoContent)
			})

			got := rec.Header().Get("X-Request-Id")
			require.NotEmpty(t, got)
			assert.Equal(t, got, fromCtx)
			if tt.keep {
				assert.Equal(t, tt.header, got)
			} else {
				assert.NotEqual(t, tt.header, got)
			}
		})
	}
}

func TestCallerMiddleware(t *testing.T) {
	m := NewCallerMiddleware()

	var userID string
	ok := func(c echo.Context) error {
		userID, _ = deliverycontext.GetUserID(c)

		return c.NoContent(http.StatusNoContent)
	}

	rec := serve(t, m.RequireCaller, map[string]string{"X-User-Id": " user-7 "}, ok)
	assert.Equal(t, http.StatusNoContent, rec.Code)
	assert.Equal(t, "user-7", userID)

	rec = serve(t, m.RequireCaller, nil, ok)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}
