package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/stockroom/inventory-api/internal/core/domain"
	"github.com/stockroom/inventory-api/internal/core/ports"
)

type stubCategoryService struct {
	createFn func(ctx context.Context, input ports.CategoryInput) (*domain.Category, error)
	getFn    func(ctx context.Context, id string) (*domain.Category, error)
	deleteFn func(ctx context.Context, id string) error
}

func (s *stubCategoryService) CreateCategory(ctx context.Context, input ports.CategoryInput) (*domain.Category, error) {
	return s.createFn(ctx, input)
}

func (s *stubCategoryService) ListCategories(ctx context.Context) ([]*domain.Category, error) {
	return nil, nil
}

func (s *stubCategoryService) GetCategory(ctx context.Context, id string) (*domain.Category, error) {
	return s.getFn(ctx, id)
}

func (s *stubCategoryService) UpdateCategory(ctx context.Context, id string, input ports.CategoryInput) (*domain.Category, error) {
	return nil, nil
}

func (s *stubCategoryService) DeleteCategory(ctx context.Context, id string) error {
	return s.deleteFn(ctx, id)
}

func TestCategoryHandler_Create_Success(t *testing.T) {
	stub := &stubCategoryService{
		createFn: func(ctx context.Context, input ports.CategoryInput) (*domain.Category, error) {
			return &domain.Category{ID: "c1", Name: input.Name, Description: input.Description}, nil
		},
	}
	h := NewCategoryHandler(stub)

	c, rec := newTestContext(t, http.MethodPost, "/categories",
		`{"name":"Widgets","description":"small parts"}`)

	if err := h.Create(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d", rec.Code)
	}

	var resp domain.Category
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if resp.ID != "c1" || resp.Name != "Widgets" {
		t.Fatalf("unexpected payload: %+v", resp)
	}
}

func TestCategoryHandler_Create_MissingName(t *testing.T) {
	stub := &stubCategoryService{
		createFn: func(ctx context.Context, input ports.CategoryInput) (*domain.Category, error) {
			t.Fatalf("should not be called")
			return nil, nil
		},
	}
	h := NewCategoryHandler(stub)

	c, _ := newTestContext(t, http.MethodPost, "/categories", `{"description":"no name"}`)

	err := h.Create(c)
	var he *echo.HTTPError
	if !errors.As(err, &he) || he.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 HTTPError, got %v", err)
	}
}

func TestCategoryHandler_Get_NotFound(t *testing.T) {
	stub := &stubCategoryService{
		getFn: func(ctx context.Context, id string) (*domain.Category, error) {
			return nil, domain.ErrCategoryNotFound
		},
	}
	h := NewCategoryHandler(stub)

	c, _ := newTestContext(t, http.MethodGet, "/categories/missing", "")
	c.SetParamNames("id")
	c.SetParamValues("missing")

	err := h.Get(c)
	if !errors.Is(err, domain.ErrCategoryNotFound) {
		t.Fatalf("expected ErrCategoryNotFound to propagate, got %v", err)
	}
}

func TestCategoryHandler_Delete_Success(t *testing.T) {
	var deleted string
	stub := &stubCategoryService{
		deleteFn: func(ctx context.Context, id string) error {
			deleted = id
			return nil
		},
	}
	h := NewCategoryHandler(stub)

	c, rec := newTestContext(t, http.MethodDelete, "/categories/c1", "")
	c.SetParamNames("id")
	c.SetParamValues("c1")

	if err := h.Delete(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if deleted != "c1" {
		t.Fatalf("expected delete of c1, got %q", deleted)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
}
