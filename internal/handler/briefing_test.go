package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"testing"

	"coinlens/internal/service"
)

type stubBriefing struct {
	text string
	err  error
}

func (s *stubBriefing) MarketBriefing(ctx context.Context) (string, error) {
	return s.text, s.err
}

func TestGetBriefingUnconfigured(t *testing.T) {
	r := newTestRouter(t, service.Providers{}, nil)

	if w := get(r, "/api/briefing"); w.Code != http.StatusServiceUnavailable {
		t.Fatalf("expected 503, got %d", w.Code)
	}
}

func TestGetBriefing(t *testing.T) {
	r := newTestRouter(t, service.Providers{}, &stubBriefing{text: "Markets are calm."})

	w := get(r, "/api/briefing")
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}

	var body map[string]string
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("parse error: %v", err)
	}
	if body["briefing"] != "Markets are calm." {
		t.Fatalf("unexpected payload: %+v", body)
	}
}

func TestGetBriefingUpstreamError(t *testing.T) {
	r := newTestRouter(t, service.Providers{}, &stubBriefing{err: errors.New("model unavailable")})

	if w := get(r, "/api/briefing"); w.Code != http.StatusInternalServerError {
		t.Fatalf("expected 500, got %d", w.Code)
	}
}
