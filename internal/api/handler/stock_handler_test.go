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

type stubStockService struct {
	adjustFn     func(ctx context.Context, in ports.AdjustStockInput) (*domain.Product, error)
	lowStockFn   func(ctx context.Context) ([]*domain.Product, error)
	outOfStockFn func(ctx context.Context) ([]*domain.Product, error)
}

func (s *stubStockService) AdjustStock(ctx context.Context, in ports.AdjustStockInput) (*domain.Product, error) {
	return s.adjustFn(ctx, in)
}

func (s *stubStockService) ListLowStock(ctx context.Context) ([]*domain.Product, error) {
	return s.lowStockFn(ctx)
}

func (s *stubStockService) ListOutOfStock(ctx context.Context) ([]*domain.Product, error) {
	return s.outOfStockFn(ctx)
}

func TestStockHandler_Adjust_Success(t *testing.T) {
	stub := &stubStockService{
		adjustFn: func(ctx context.Context, in ports.AdjustStockInput) (*domain.Product, error) {
			if in.ProductID != "p1" || in.Operation != domain.StockSubtract || in.Amount != 2 {
				t.Fatalf("unexpected input: %+v", in)
			}
			return &domain.Product{ID: "p1", Quantity: 3, LowStockThreshold: 3}, nil
		},
	}
	h := NewStockHandler(stub)

	c, rec := newTestContext(t, http.MethodPatch, "/products/p1/stock",
		`{"operation":"subtract","amount":2}`)
	c.SetParamNames("id")
	c.SetParamValues("p1")

	if err := h.Adjust(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var resp struct {
		Message string `json:"message"`
		Product struct {
			Quantity int64 `json:"quantity"`
		} `json:"product"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if resp.Message != "stock updated" {
		t.Fatalf("unexpected message: %q", resp.Message)
	}
	if resp.Product.Quantity != 3 {
		t.Fatalf("expected quantity 3, got %d", resp.Product.Quantity)
	}
}

func TestStockHandler_Adjust_InvalidOperation(t *testing.T) {
	stub := &stubStockService{
		adjustFn: func(ctx context.Context, in ports.AdjustStockInput) (*domain.Product, error) {
			t.Fatalf("service should not be called for invalid input")
			return nil, nil
		},
	}
	h := NewStockHandler(stub)

	c, _ := newTestContext(t, http.MethodPatch, "/products/p1/stock",
		`{"operation":"multiply","amount":2}`)
	c.SetParamNames("id")
	c.SetParamValues("p1")

	err := h.Adjust(c)
	var he *echo.HTTPError
	if !errors.As(err, &he) || he.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 HTTPError, got %v", err)
	}
}

func TestStockHandler_Adjust_NonPositiveAmount(t *testing.T) {
	stub := &stubStockService{
		adjustFn: func(ctx context.Context, in ports.AdjustStockInput) (*domain.Product, error) {
			t.Fatalf("service should not be called for invalid input")
			return nil, nil
		},
	}
	h := NewStockHandler(stub)

	c, _ := newTestContext(t, http.MethodPatch, "/products/p1/stock",
		`{"operation":"add","amount":0}`)
	c.SetParamNames("id")
	c.SetParamValues("p1")

	err := h.Adjust(c)
	var he *echo.HTTPError
	if !errors.As(err, &he) || he.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 HTTPError, got %v", err)
	}
}

func TestStockHandler_Adjust_InsufficientStock(t *testing.T) {
	stub := &stubStockService{
		adjustFn: func(ctx context.Context, in ports.AdjustStockInput) (*domain.Product, error) {
			return nil, domain.ErrInsufficientStock
		},
	}
	h := NewStockHandler(stub)

	c, _ := newTestContext(t, http.MethodPatch, "/products/p1/stock",
		`{"operation":"subtract","amount":100}`)
	c.SetParamNames("id")
	c.SetParamValues("p1")

	err := h.Adjust(c)
	if !errors.Is(err, domain.ErrInsufficientStock) {
		t.Fatalf("expected ErrInsufficientStock to propagate, got %v", err)
	}
}

func TestStockHandler_Adjust_ProductNotFound(t *testing.T) {
	stub := &stubStockService{
		adjustFn: func(ctx context.Context, in ports.AdjustStockInput) (*domain.Product, error) {
			return nil, domain.ErrProductNotFound
		},
	}
	h := NewStockHandler(stub)

	c, _ := newTestContext(t, http.MethodPatch, "/products/missing/stock",
		`{"operation":"add","amount":1}`)
	c.SetParamNames("id")
	c.SetParamValues("missing")

	err := h.Adjust(c)
	if !errors.Is(err, domain.ErrProductNotFound) {
		t.Fatalf("expected ErrProductNotFound to propagate, got %v", err)
	}
}

func TestStockHandler_LowStock(t *testing.T) {
	stub := &stubStockService{
		lowStockFn: func(ctx context.Context) ([]*domain.Product, error) {
			return []*domain.Product{{ID: "p1", Quantity: 2, LowStockThreshold: 3}}, nil
		},
	}
	h := NewStockHandler(stub)

	c, rec := newTestContext(t, http.MethodGet, "/products/alerts/low-stock", "")

	if err := h.LowStock(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var resp struct {
		Products []struct {
			ID string `json:"id"`
		} `json:"products"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if len(resp.Products) != 1 || resp.Products[0].ID != "p1" {
		t.Fatalf("unexpected products payload: %+v", resp.Products)
	}
}

func TestStockHandler_OutOfStock_Empty(t *testing.T) {
	stub := &stubStockService{
		outOfStockFn: func(ctx context.Context) ([]*domain.Product, error) {
			return []*domain.Product{}, nil
		},
	}
	h := NewStockHandler(stub)

	c, rec := newTestContext(t, http.MethodGet, "/products/alerts/out-of-stock", "")

	if err := h.OutOfStock(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	var resp struct {
		Products []any `json:"products"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if len(resp.Products) != 0 {
		t.Fatalf("expected empty products array, got %+v", resp.Products)
	}
}
