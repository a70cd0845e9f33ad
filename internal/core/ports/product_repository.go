package ports

import (
	"context"
	"time"

	"github.com/stockroom/inventory-api/internal/core/domain"
)

// ProductRepository defines persistence operations for products.
type ProductRepository interface {
	Create(ctx context.Context, p *domain.Product) (*domain.Product, error)
	FindAll(ctx context.Context) ([]*domain.Product, error)
	FindByID(ctx context.Context, id string) (*domain.Product, error)
	FindByCategory(ctx context.Context, categoryID string) ([]*domain.Product, error)
	Update(ctx context.Context, id string, p *domain.Product) (*domain.Product, error)
	Delete(ctx context.Context, id string) error

	// UpdateQuantity persists a new quantity for the product, guarded by the
	// revision observed when the caller read the document. When no document
	// matches id+revision the write is rejected with domain.ErrStaleProduct
	// so the caller can re-read and retry.
	UpdateQuantity(ctx context.Context, id string, quantity int64, revision int64, updatedAt time.Time) error

	// FindLowStock returns products where quantity <= the product's own
	// low-stock threshold (a field-to-field comparison, not a global constant).
	FindLowStock(ctx context.Context) ([]*domain.Product, error)
	FindOutOfStock(ctx context.Context) ([]*domain.Product, error)
}
