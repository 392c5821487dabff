package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"testing"
)

func TestHealthHandler_Liveness(t *testing.T) {
	h := NewHealthHandler(nil)

	c, rec := newTestContext(http.MethodGet, "/health", nil, "")
	if err := h.Liveness(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
}

func TestHealthHandler_Readiness(t *testing.T) {
	ok := PingerFunc(func(ctx context.Context) error { return nil })
	down := PingerFunc(func(ctx context.Context) error { return errors.New("connection refused") })

	t.Run("all up", func(t *testing.T) {
		h := NewHealthHandler(map[string]Pinger{"database": ok, "redis": ok})
		c, rec := newTestContext(http.MethodGet, "/health/ready", nil, "")
		if err := h.Readiness(c); err != nil {
			t.Fatalf("handler error: %v", err)
		}
		if rec.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", rec.Code)
		}
	})

	t.Run("one down", func(t *testing.T) {
		h := NewHealthHandler(map[string]Pinger{"database": ok, "redis": down})
		c, rec := newTestContext(http.MethodGet, "/health/ready", nil, "")
		if err := h.Readiness(c); err != nil {
			t.Fatalf("handler error: %v", err)
		}
		if rec.Code != http.StatusServiceUnavailable {
			t.Fatalf("expected 503, got %d", rec.Code)
		}

		var resp readinessResponse
		if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
			t.Fatalf("invalid json: %v", err)
		}
		if resp.Status != "degraded" || resp.Dependencies["database"].Status != "ok" ||
			resp.Dependencies["redis"].Error != "connection refused" {
			t.Fatalf("unexpected readiness %+v", resp)
		}
	})
}
