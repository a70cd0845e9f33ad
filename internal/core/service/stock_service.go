package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/stockroom/inventory-api/internal/core/domain"
	"github.com/stockroom/inventory-api/internal/core/ports"
)

// maxAdjustRetries bounds how many times an adjustment is retried when the
// revision-guarded write loses a race against a concurrent writer.
const maxAdjustRetries = 3

// AlertMarker abstracts the low-stock alert dedup store (Redis). Entries
// expire on their own; a product re-alerts once the marker lapses.
type AlertMarker interface {
	Seen(ctx context.Context, productID string) (bool, error)
	Mark(ctx context.Context, productID string) error
}

// StockService applies quantity mutations and derives stock alerts.
type StockService struct {
	repo   ports.ProductRepository
	alerts AlertMarker
	logger zerolog.Logger
}

func NewStockService(repo ports.ProductRepository, alerts AlertMarker, logger zerolog.Logger) *StockService {
	return &StockService{repo: repo, alerts: alerts, logger: logger}
}

// AdjustStock applies a bounded add/subtract mutation to a product's
// quantity. The write is guarded by the revision read at the start of each
// attempt, so two concurrent adjustments cannot silently overwrite each
// other; the loser re-reads and retries.
func (s *StockService) AdjustStock(ctx context.Context, in ports.AdjustStockInput) (*domain.Product, error) {
	// Input validation happens before any store access.
	if !in.Operation.Valid() {
		return nil, domain.ErrInvalidStockOperation
	}
	if in.Amount <= 0 {
		return nil, domain.ErrInvalidStockAmount
	}

	var lastErr error
	for attempt := 0; attempt < maxAdjustRetries; attempt++ {
		product, err := s.repo.FindByID(ctx, in.ProductID)
		if err != nil {
			return nil, err
		}

		quantity := product.Quantity
		switch in.Operation {
		case domain.StockAdd:
			quantity += in.Amount
		case domain.StockSubtract:
			if in.Amount > quantity {
				return nil, domain.ErrInsufficientStock
			}
			quantity -= in.Amount
		}

		now := time.Now().UTC()
		err = s.repo.UpdateQuantity(ctx, product.ID, quantity, product.Revision, now)
		if errors.Is(err, domain.ErrStaleProduct) {
			lastErr = err
			s.logger.Debug().Str("product_id", product.ID).Int("attempt", attempt+1).Msg("stock adjustment lost revision race, retrying")
			continue
		}
		if err != nil {
			return nil, fmt.Errorf("adjust stock: %w", err)
		}

		product.Quantity = quantity
		product.LastUpdated = now
		product.Revision++

		s.logger.Info().
			Str("product_id", product.ID).
			Str("operation", string(in.Operation)).
			Int64("amount", in.Amount).
			Int64("quantity", product.Quantity).
			Msg("stock adjusted")

		s.maybeAlert(ctx, product)
		return product, nil
	}

	return nil, fmt.Errorf("adjust stock: retries exhausted: %w", lastErr)
}

func (s *StockService) ListLowStock(ctx context.Context) ([]*domain.Product, error) {
	return s.repo.FindLowStock(ctx)
}

func (s *StockService) ListOutOfStock(ctx context.Context) ([]*domain.Product, error) {
	return s.repo.FindOutOfStock(ctx)
}

// maybeAlert logs a low-stock alert the first time a product is observed at
// or below its threshold. Marker failures are non-fatal: an alert may repeat,
// but the adjustment itself already succeeded.
func (s *StockService) maybeAlert(ctx context.Context, p *domain.Product) {
	if s.alerts == nil || !p.LowStock() {
		return
	}

	seen, err := s.alerts.Seen(ctx, p.ID)
	if err != nil {
		s.logger.Warn().Err(err).Str("product_id", p.ID).Msg("alert dedup check failed")
	} else if seen {
		return
	}

	if err := s.alerts.Mark(ctx, p.ID); err != nil {
		s.logger.Warn().Err(err).Str("product_id", p.ID).Msg("failed to set alert marker")
	}

	s.logger.Warn().
		Str("product_id", p.ID).
		Str("name", p.Name).
		Int64("quantity", p.Quantity).
		Int64("threshold", p.LowStockThreshold).
		Msg("product low on stock")
}
