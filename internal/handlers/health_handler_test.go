package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"blankquiz/internal/models"
)

type stubProvider struct{}

func (s *stubProvider) GenerateContent(ctx context.Context, prompt string, requestID string) (*models.GenerationResponse, error) {
	return &models.GenerationResponse{}, nil
}

func (s *stubProvider) GetProviderName() string { return "stub" }

func TestHealthzHandler(t *testing.T) {
	handler := NewHealthHandler(&stubProvider{}, &mockPromptManager{}, newTestDB(t))

	rec := httptest.NewRecorder()
	handler.HealthzHandler(rec, httptest.NewRequest(http.MethodGet, "/healthz", nil))

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
}

func TestReadyzHandlerReady(t *testing.T) {
	handler := NewHealthHandler(&stubProvider{}, &mockPromptManager{}, newTestDB(t))

	rec := httptest.NewRecorder()
	handler.ReadyzHandler(rec, httptest.NewRequest(http.MethodGet, "/readyz", nil))

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}

	var resp ReadinessResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if resp.Status != "ready" {
		t.Fatalf("expected ready, got %q", resp.Status)
	}
}

func TestReadyzHandlerNotReadyWithoutProvider(t *testing.T) {
	handler := NewHealthHandler(nil, &mockPromptManager{}, newTestDB(t))

	rec := httptest.NewRecorder()
	handler.ReadyzHandler(rec, httptest.NewRequest(http.MethodGet, "/readyz", nil))

	if rec.Code != http.StatusServiceUnavailable {
		t.Fatalf("expected 503, got %d", rec.Code)
	}
}

func TestReadyzHandlerNotReadyWithoutDatabase(t *testing.T) {
	handler := NewHealthHandler(&stubProvider{}, &mockPromptManager{}, nil)

	rec := httptest.NewRecorder()
	handler.ReadyzHandler(rec, httptest.NewRequest(http.MethodGet, "/readyz", nil))

	if rec.Code != http.StatusServiceUnavailable {
		t.Fatalf("expected 503, got %d", rec.Code)
	}
}
