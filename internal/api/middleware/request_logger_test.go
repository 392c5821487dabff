package middleware

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"
)

func TestRequestLogger_LevelFollowsStatus(t *testing.T) {
	cases := []struct {
		name    string
		handler echo.HandlerFunc
		status  int
		level   string
	}{
		{"ok", func(c echo.Context) error { return c.NoContent(http.StatusOK) }, http.StatusOK, "info"},
		{"client error", func(c echo.Context) error {
			return echo.NewHTTPError(http.StatusNotFound, "nope")
		}, http.StatusNotFound, "warn"},
		{"server error", func(c echo.Context) error { return errors.New("boom") }, http.StatusInternalServerError, "error"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			var buf bytes.Buffer
			e := echo.New()
			e.Use(RequestLogger(zerolog.New(&buf)))
			e.GET("/thing", tc.handler)

			req := httptest.NewRequest(http.MethodGet, "/thing?x=1", nil)
			req.Header.Set(echo.HeaderXRequestID, "req-1")
			rec := httptest.NewRecorder()
			e.ServeHTTP(rec, req)

			if rec.Code != tc.status {
				t.Fatalf("expected %d, got %d", tc.status, rec.Code)
			}

			var entry map[string]any
			if err := json.Unmarshal(buf.Bytes(), &entry); err != nil {
				t.Fatalf("expected a single JSON entry, got %q: %v", buf.String(), err)
			}
			if entry["level"] != tc.level {
				t.Fatalf("expected level %s, got %v", tc.level, entry["level"])
			}
			if entry["uri"] != "/thing?x=1" || entry["method"] != http.MethodGet || entry["request_id"] != "req-1" {
				t.Fatalf("unexpected entry %+v", entry)
			}
			if int(entry["status"].(float64)) != tc.status {
				t.Fatalf("logged status %v, want %d", entry["status"], tc.status)
			}
		})
	}
}
