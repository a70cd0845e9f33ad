package handler

import (
	"github.com/stockroom/inventory-api/internal/core/ports"
)

func toCreateProductInput(req createProductRequest) ports.CreateProductInput {
	return ports.CreateProductInput{
		Name:              req.Name,
		Description:       req.Description,
		Categories:        req.Categories,
		Quantity:          req.Quantity,
		Price:             req.Price,
		SupplierInfo:      req.SupplierInfo,
		LowStockThreshold: req.LowStockThreshold,
	}
}

func toUpdateProductInput(req updateProductRequest) ports.UpdateProductInput {
	return ports.UpdateProductInput{
		Name:              req.Name,
		Description:       req.Description,
		Categories:        req.Categories,
		Price:             req.Price,
		SupplierInfo:      req.SupplierInfo,
		LowStockThreshold: req.LowStockThreshold,
	}
}
