package domain

import (
	"errors"
	"time"
)

// DefaultLowStockThreshold is applied when a product is created without an
// explicit threshold.
const DefaultLowStockThreshold = 10

// StockOperation is the kind of mutation applied to a product's quantity.
type StockOperation string

const (
	StockAdd      StockOperation = "add"
	StockSubtract StockOperation = "subtract"
)

var ErrProductNotFound = errors.New("product not found")
var ErrInsufficientStock = errors.New("insufficient stock")
var ErrInvalidStockOperation = errors.New("invalid stock operation")
var ErrInvalidStockAmount = errors.New("stock amount must be positive")

// ErrStaleProduct is returned by the repository when a revision-guarded
// update matched no document, meaning another writer got there first.
var ErrStaleProduct = errors.New("product revision is stale")

// Valid reports whether the operation is one of the two accepted literals.
func (op StockOperation) Valid() bool {
	return op == StockAdd || op == StockSubtract
}

// Product is the core inventory aggregate. Quantity never goes below zero;
// Revision increments on every quantity mutation and guards against
// concurrent lost updates.
type Product struct {
	ID                string    `json:"id"`
	Name              string    `json:"name"`
	Description       string    `json:"description"`
	Categories        []string  `json:"categories"`
	Quantity          int64     `json:"quantity"`
	Price             float64   `json:"price"`
	SupplierInfo      string    `json:"supplier_info,omitempty"`
	LowStockThreshold int64     `json:"low_stock_threshold"`
	Revision          int64     `json:"-"`
	DateAdded         time.Time `json:"date_added"`
	LastUpdated       time.Time `json:"last_updated"`
}

// LowStock reports whether the product is at or below its own threshold.
func (p *Product) LowStock() bool {
	return p.Quantity <= p.LowStockThreshold
}
