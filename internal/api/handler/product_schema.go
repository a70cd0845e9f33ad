package handler

import "github.com/stockroom/inventory-api/internal/core/domain"

// errorResponse is the standard error envelope returned on all 4xx/5xx responses.
type errorResponse struct {
	Error string `json:"error"`
}

// messageResponse is the envelope for operations that return only a confirmation.
type messageResponse struct {
	Message string `json:"message"`
}

type createProductRequest struct {
	Name              string   `json:"name"                validate:"required"`
	Description       string   `json:"description"         validate:"required"`
	Categories        []string `json:"categories"          validate:"required,min=1,dive,required"`
	Quantity          int64    `json:"quantity"            validate:"gte=0"`
	Price             float64  `json:"price"               validate:"gte=0"`
	SupplierInfo      string   `json:"supplier_info"`
	LowStockThreshold *int64   `json:"low_stock_threshold" validate:"omitempty,gte=0"`
}

type updateProductRequest struct {
	Name              string   `json:"name"                validate:"required"`
	Description       string   `json:"description"         validate:"required"`
	Categories        []string `json:"categories"          validate:"required,min=1,dive,required"`
	Price             float64  `json:"price"               validate:"gte=0"`
	SupplierInfo      string   `json:"supplier_info"`
	LowStockThreshold *int64   `json:"low_stock_threshold" validate:"omitempty,gte=0"`
}

type adjustStockRequest struct {
	Operation string `json:"operation" validate:"required,oneof=add subtract"`
	Amount    int64  `json:"amount"    validate:"required,gt=0"`
}

// stockResponse is returned by the stock adjustment endpoint.
type stockResponse struct {
	Message string          `json:"message"`
	Product *domain.Product `json:"product"`
}

// productListResponse wraps the stock alert listings.
type productListResponse struct {
	Products []*domain.Product `json:"products"`
}
