package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/sleekhouse/backend/internal/model"
	"github.com/sleekhouse/backend/internal/repository"
)

// ---------------------------------------------------------------------------
// Mock GalleryService
// ---------------------------------------------------------------------------

type mockGalleryService struct {
	listFunc    func(ctx context.Context) ([]*model.GalleryItem, error)
	getByIDFunc func(ctx context.Context, id string) (*model.GalleryItem, error)
	createFunc  func(ctx context.Context, item *model.GalleryItem) error
	updateFunc  func(ctx context.Context, item *model.GalleryItem) error
	deleteFunc  func(ctx context.Context, id string) error
}

func (m *mockGalleryService) List(ctx context.Context) ([]*model.GalleryItem, error) {
	if m.listFunc != nil {
		return m.listFunc(ctx)
	}
	return nil, nil
}

func (m *mockGalleryService) GetByID(ctx context.Context, id string) (*model.GalleryItem, error) {
	if m.getByIDFunc != nil {
		return m.getByIDFunc(ctx, id)
	}
	return nil, repository.ErrNotFound
}

func (m *mockGalleryService) Create(ctx context.Context, item *model.GalleryItem) error {
	if m.createFunc != nil {
		return m.createFunc(ctx, item)
	}
	return nil
}

func (m *mockGalleryService) Update(ctx context.Context, item *model.GalleryItem) error {
	if m.updateFunc != nil {
		return m.updateFunc(ctx, item)
	}
	return nil
}

func (m *mockGalleryService) Delete(ctx context.Context, id string) error {
	if m.deleteFunc != nil {
		return m.deleteFunc(ctx, id)
	}
	return nil
}

// ---------------------------------------------------------------------------
// GET /api/gallery tests
// ---------------------------------------------------------------------------

func TestGalleryHandler_List_Success(t *testing.T) {
	items := []*model.GalleryItem{
		{ID: "a", Title: "Kitchen remodel", Category: "Kitchen"},
		{ID: "b", Title: "Bathroom", Category: "Bathroom"},
	}
	mock := &mockGalleryService{
		listFunc: func(ctx context.Context) ([]*model.GalleryItem, error) {
			return items, nil
		},
	}
	h := NewGalleryHandler(mock)

	req := httptest.NewRequest(http.MethodGet, "/api/gallery", nil)
	rec := httptest.NewRecorder()
	h.List(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d — body: %s", rec.Code, rec.Body.String())
	}
	// The response is the bare array, with the store id merged into each item
	var got []*model.GalleryItem
	if err := json.NewDecoder(rec.Body).Decode(&got); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("expected 2 items, got %d", len(got))
	}
	if got[0].ID != "a" || got[0].Title != "Kitchen remodel" {
		t.Errorf("item fields not returned verbatim: %+v", got[0])
	}
}

// TestGalleryHandler_List_Empty verifies an empty collection returns [] with 200.
func TestGalleryHandler_List_Empty(t *testing.T) {
	mock := &mockGalleryService{
		listFunc: func(ctx context.Context) ([]*model.GalleryItem, error) {
			return nil, nil
		},
	}
	h := NewGalleryHandler(mock)

	req := httptest.NewRequest(http.MethodGet, "/api/gallery", nil)
	rec := httptest.NewRecorder()
	h.List(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200 for empty collection, got %d", rec.Code)
	}
	if strings.TrimSpace(rec.Body.String()) != "[]" {
		t.Errorf("expected body [], got %s", rec.Body.String())
	}
}

// TestGalleryHandler_List_StoreError verifies every failure collapses to the
// fixed 500 body, regardless of the underlying error.
func TestGalleryHandler_List_StoreError(t *testing.T) {
	for _, cause := range []error{
		errors.New("connection refused"),
		errors.New("context deadline exceeded"),
		repository.ErrNotFound,
	} {
		mock := &mockGalleryService{
			listFunc: func(ctx context.Context) ([]*model.GalleryItem, error) {
				return nil, cause
			},
		}
		h := NewGalleryHandler(mock)

		req := httptest.NewRequest(http.MethodGet, "/api/gallery", nil)
		rec := httptest.NewRecorder()
		h.List(rec, req)

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
		if len(resp) != 1 {
			t.Errorf("cause %v: expected no extra fields, got %v", cause, resp)
		}
	}
}

// ---------------------------------------------------------------------------
// Admin gallery tests
// ---------------------------------------------------------------------------

func TestGalleryHandler_Create_Success(t *testing.T) {
	var captured *model.GalleryItem
	mock := &mockGalleryService{
		createFunc: func(ctx context.Context, item *model.GalleryItem) error {
			captured = item
			item.ID = "assigned-id"
			return nil
		},
	}
	h := NewGalleryHandler(mock)

	body := `{"title":"Patio","description":"Stone patio build","category":"Outdoor"}`
	req := httptest.NewRequest(http.MethodPost, "/api/admin/gallery", strings.NewReader(body))
	rec := httptest.NewRecorder()
	h.Create(rec, req)

	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d — body: %s", rec.Code, rec.Body.String())
	}
	if captured == nil || captured.Title != "Patio" {
		t.Errorf("expected Create called with title=Patio, got %+v", captured)
	}
	var resp model.GalleryItem
	if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if resp.ID != "assigned-id" {
		t.Errorf("expected assigned id in response, got %q", resp.ID)
	}
}

// TestGalleryHandler_Create_TitleRequired verifies 400 without a title.
func TestGalleryHandler_Create_TitleRequired(t *testing.T) {
	h := NewGalleryHandler(&mockGalleryService{})

	req := httptest.NewRequest(http.MethodPost, "/api/admin/gallery", strings.NewReader(`{"category":"Outdoor"}`))
	rec := httptest.NewRecorder()
	h.Create(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Errorf("expected 400 for missing title, got %d", rec.Code)
	}
}

func TestGalleryHandler_Update_NotFound(t *testing.T) {
	mock := &mockGalleryService{
		updateFunc: func(ctx context.Context, item *model.GalleryItem) error {
			return repository.ErrNotFound
		},
	}
	h := NewGalleryHandler(mock)

	req := httptest.NewRequest(http.MethodPut, "/api/admin/gallery/missing", strings.NewReader(`{"title":"X"}`))
	req.SetPathValue("id", "missing")
	rec := httptest.NewRecorder()
	h.Update(rec, req)

	if rec.Code != http.StatusNotFound {
		t.Errorf("expected 404 for unknown id, got %d", rec.Code)
	}
}

func TestGalleryHandler_Delete_Success(t *testing.T) {
	var captured string
	mock := &mockGalleryService{
		deleteFunc: func(ctx context.Context, id string) error {
			captured = id
			return nil
		},
	}
	h := NewGalleryHandler(mock)

	req := httptest.NewRequest(http.MethodDelete, "/api/admin/gallery/abc", nil)
	req.SetPathValue("id", "abc")
	rec := httptest.NewRecorder()
	h.Delete(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if captured != "abc" {
		t.Errorf("expected delete id=abc, got %q", captured)
	}
}
