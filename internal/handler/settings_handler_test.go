package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/sleekhouse/backend/internal/repository"
)

// ---------------------------------------------------------------------------
// Mock SettingsRepository
// ---------------------------------------------------------------------------

type mockSettingsRepo struct {
	getFunc func(ctx context.Context, name string) (json.RawMessage, error)
	putFunc func(ctx context.Context, name string, doc json.RawMessage) error
}

func (m *mockSettingsRepo) Get(ctx context.Context, name string) (json.RawMessage, error) {
	if m.getFunc != nil {
		return m.getFunc(ctx, name)
	}
	return nil, repository.ErrNotFound
}

func (m *mockSettingsRepo) Put(ctx context.Context, name string, doc json.RawMessage) error {
	if m.putFunc != nil {
		return m.putFunc(ctx, name, doc)
	}
	return nil
}

// ---------------------------------------------------------------------------
// GET /api/contact/socials tests
// ---------------------------------------------------------------------------

func TestSettingsHandler_Socials_ReturnsDocumentVerbatim(t *testing.T) {
	doc := json.RawMessage(`{"instagram":"https://instagram.com/sleekhouse","facebook":"https://facebook.com/sleekhouse"}`)
	var requestedName string
	mock := &mockSettingsRepo{
		getFunc: func(ctx context.Context, name string) (json.RawMessage, error) {
			requestedName = name
			return doc, nil
		},
	}
	h := NewSettingsHandler(mock)

	req := httptest.NewRequest(http.MethodGet, "/api/contact/socials", nil)
	rec := httptest.NewRecorder()
	h.Socials(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d — body: %s", rec.Code, rec.Body.String())
	}
	if requestedName != "social" {
		t.Errorf("expected fixed document name \"social\", got %q", requestedName)
	}
	if rec.Body.String() != string(doc) {
		t.Errorf("expected stored document verbatim, got %s", rec.Body.String())
	}
}

// TestSettingsHandler_Socials_StoreError verifies every failure, including a
// missing document, collapses to the fixed 500 body.
func TestSettingsHandler_Socials_StoreError(t *testing.T) {
	for _, cause := range []error{
		errors.New("connection refused"),
		repository.ErrNotFound,
	} {
		mock := &mockSettingsRepo{
			getFunc: func(ctx context.Context, name string) (json.RawMessage, error) {
				return nil, cause
			},
		}
		h := NewSettingsHandler(mock)

		req := httptest.NewRequest(http.MethodGet, "/api/contact/socials", nil)
		rec := httptest.NewRecorder()
		h.Socials(rec, req)

		if rec.Code != http.StatusInternalServerError {
			t.Errorf("cause %v: expected 500, got %d", cause, rec.Code)
		}
		var resp map[string]string
		if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
			t.Fatalf("decode response: %v", err)
		}
		if resp["error"] != "Internal server error" {
			t.Errorf("cause %v: expected fixed error body, got %q", cause, resp["error"])
		}
	}
}

// ---------------------------------------------------------------------------
// PUT /api/admin/settings/{name} tests
// ---------------------------------------------------------------------------

func TestSettingsHandler_Put_Success(t *testing.T) {
	var capturedName string
	var capturedDoc json.RawMessage
	mock := &mockSettingsRepo{
		putFunc: func(ctx context.Context, name string, doc json.RawMessage) error {
			capturedName = name
			capturedDoc = doc
			return nil
		},
	}
	h := NewSettingsHandler(mock)

	body := `{"instagram":"https://instagram.com/new"}`
	req := httptest.NewRequest(http.MethodPut, "/api/admin/settings/social", strings.NewReader(body))
	req.SetPathValue("name", "social")
	rec := httptest.NewRecorder()
	h.Put(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d — body: %s", rec.Code, rec.Body.String())
	}
	if capturedName != "social" {
		t.Errorf("expected name=social, got %q", capturedName)
	}
	if string(capturedDoc) != body {
		t.Errorf("expected document stored verbatim, got %s", capturedDoc)
	}
}

// TestSettingsHandler_Put_InvalidJSON verifies non-object bodies are rejected.
func TestSettingsHandler_Put_InvalidJSON(t *testing.T) {
	h := NewSettingsHandler(&mockSettingsRepo{})

	req := httptest.NewRequest(http.MethodPut, "/api/admin/settings/social", strings.NewReader("not json"))
	req.SetPathValue("name", "social")
	rec := httptest.NewRecorder()
	h.Put(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Errorf("expected 400 for invalid JSON, got %d", rec.Code)
	}
}
