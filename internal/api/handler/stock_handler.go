package handler

import (
	"errors"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/stockroom/inventory-api/internal/api/metrics"
	"github.com/stockroom/inventory-api/internal/core/domain"
	"github.com/stockroom/inventory-api/internal/core/ports"
)

// StockHandler handles stock adjustment and stock alert queries.
type StockHandler struct {
	service ports.StockService
}

func NewStockHandler(service ports.StockService) *StockHandler {
	return &StockHandler{service: service}
}

// Adjust handles PATCH /products/:id/stock.
//
// @Summary      Adjust a product's stock level
// @Tags         stock
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string              true  "Product ID"
// @Param        body  body      adjustStockRequest  true  "Adjustment"
// @Success      200   {object}  stockResponse
// @Failure      400   {object}  errorResponse
// @Failure      403   {object}  errorResponse
// @Failure      404   {object}  errorResponse
// @Router       /products/{id}/stock [patch]
func (h *StockHandler) Adjust(c echo.Context) error {
	var req adjustStockRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	start := time.Now()
	product, err := h.service.AdjustStock(c.Request().Context(), ports.AdjustStockInput{
		ProductID: c.Param("id"),
		Operation: domain.StockOperation(req.Operation),
		Amount:    req.Amount,
	})
	metrics.StockAdjustmentDuration.Observe(time.Since(start).Seconds())
	metrics.StockAdjustmentsTotal.WithLabelValues(req.Operation, adjustOutcome(err)).Inc()
	if err != nil {
		return err
	}

	if product.LowStock() {
		metrics.LowStockAlertsTotal.Inc()
	}

	return c.JSON(http.StatusOK, stockResponse{Message: "stock updated", Product: product})
}

// LowStock handles GET /products/alerts/low-stock.
//
// @Summary      List products at or below their low-stock threshold
// @Tags         stock
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  productListResponse
// @Failure      403  {object}  errorResponse
// @Router       /products/alerts/low-stock [get]
func (h *StockHandler) LowStock(c echo.Context) error {
	products, err := h.service.ListLowStock(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, productListResponse{Products: products})
}

// OutOfStock handles GET /products/alerts/out-of-stock.
//
// @Summary      List products with zero quantity
// @Tags         stock
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  productListResponse
// @Failure      403  {object}  errorResponse
// @Router       /products/alerts/out-of-stock [get]
func (h *StockHandler) OutOfStock(c echo.Context) error {
	products, err := h.service.ListOutOfStock(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, productListResponse{Products: products})
}

func adjustOutcome(err error) string {
	switch {
	case err == nil:
		return "success"
	case errors.Is(err, domain.ErrInsufficientStock):
		return "insufficient_stock"
	case errors.Is(err, domain.ErrProductNotFound):
		return "not_found"
	default:
		return "error"
	}
}
