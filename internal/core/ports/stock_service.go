package ports

import (
	"context"

	"github.com/stockroom/inventory-api/internal/core/domain"
)

// AdjustStockInput is the DTO passed from the transport layer to StockService.
type AdjustStockInput struct {
	ProductID string
	Operation domain.StockOperation
	Amount    int64
}

// StockService applies bounded quantity mutations and derives stock alerts.
type StockService interface {
	// AdjustStock applies the operation and returns the updated product.
	// Subtracting more than the current quantity fails with
	// domain.ErrInsufficientStock and leaves the product unchanged.
	AdjustStock(ctx context.Context, input AdjustStockInput) (*domain.Product, error)
	ListLowStock(ctx context.Context) ([]*domain.Product, error)
	ListOutOfStock(ctx context.Context) ([]*domain.Product, error)
}
