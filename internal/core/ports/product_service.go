package ports

import (
	"context"

	"github.com/stockroom/inventory-api/internal/core/domain"
)

// CreateProductInput carries all data needed to create a new product.
// LowStockThreshold is optional; when nil the domain default applies.
type CreateProductInput struct {
	Name              string
	Description       string
	Categories        []string
	Quantity          int64
	Price             float64
	SupplierInfo      string
	LowStockThreshold *int64
}

// UpdateProductInput carries the writable fields of a product update.
type UpdateProductInput struct {
	Name              string
	Description       string
	Categories        []string
	Price             float64
	SupplierInfo      string
	LowStockThreshold *int64
}

// ProductService defines use-case operations for products.
type ProductService interface {
	CreateProduct(ctx context.Context, input CreateProductInput) (*domain.Product, error)
	ListProducts(ctx context.Context) ([]*domain.Product, error)
	GetProduct(ctx context.Context, id string) (*domain.Product, error)
	ListProductsByCategory(ctx context.Context, categoryID string) ([]*domain.Product, error)
	UpdateProduct(ctx context.Context, id string, input UpdateProductInput) (*domain.Product, error)
	DeleteProduct(ctx context.Context, id string) error
}
