package service

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/stockroom/inventory-api/internal/core/domain"
	"github.com/stockroom/inventory-api/internal/core/ports"
)

// ProductService implements product CRUD. Category references are verified
// against the category collection before any write.
type ProductService struct {
	repo         ports.ProductRepository
	categoryRepo ports.CategoryRepository
	logger       zerolog.Logger
}

func NewProductService(repo ports.ProductRepository, categoryRepo ports.CategoryRepository, logger zerolog.Logger) *ProductService {
	return &ProductService{repo: repo, categoryRepo: categoryRepo, logger: logger}
}

func (s *ProductService) CreateProduct(ctx context.Context, input ports.CreateProductInput) (*domain.Product, error) {
	if err := s.verifyCategories(ctx, input.Categories); err != nil {
		return nil, err
	}

	threshold := int64(domain.DefaultLowStockThreshold)
	if input.LowStockThreshold != nil {
		threshold = *input.LowStockThreshold
	}

	now := time.Now().UTC()
	product := &domain.Product{
		Name:              input.Name,
		Description:       input.Description,
		Categories:        input.Categories,
		Quantity:          input.Quantity,
		Price:             input.Price,
		SupplierInfo:      input.SupplierInfo,
		LowStockThreshold: threshold,
		DateAdded:         now,
		LastUpdated:       now,
	}

	created, err := s.repo.Create(ctx, product)
	if err != nil {
		return nil, err
	}

	s.logger.Info().Str("product_id", created.ID).Str("name", created.Name).Int64("quantity", created.Quantity).Msg("product created")
	return created, nil
}

func (s *ProductService) ListProducts(ctx context.Context) ([]*domain.Product, error) {
	return s.repo.FindAll(ctx)
}

func (s *ProductService) GetProduct(ctx context.Context, id string) (*domain.Product, error) {
	return s.repo.FindByID(ctx, id)
}

func (s *ProductService) ListProductsByCategory(ctx context.Context, categoryID string) ([]*domain.Product, error) {
	return s.repo.FindByCategory(ctx, categoryID)
}

// UpdateProduct replaces the writable fields of a product. Quantity is not
// touched here; all quantity mutations go through the stock service.
func (s *ProductService) UpdateProduct(ctx context.Context, id string, input ports.UpdateProductInput) (*domain.Product, error) {
	if err := s.verifyCategories(ctx, input.Categories); err != nil {
		return nil, err
	}

	current, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	current.Name = input.Name
	current.Description = input.Description
	current.Categories = input.Categories
	current.Price = input.Price
	current.SupplierInfo = input.SupplierInfo
	if input.LowStockThreshold != nil {
		current.LowStockThreshold = *input.LowStockThreshold
	}
	current.LastUpdated = time.Now().UTC()

	return s.repo.Update(ctx, id, current)
}

func (s *ProductService) DeleteProduct(ctx context.Context, id string) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}
	s.logger.Info().Str("product_id", id).Msg("product deleted")
	return nil
}

func (s *ProductService) verifyCategories(ctx context.Context, categoryIDs []string) error {
	for _, id := range categoryIDs {
		if _, err := s.categoryRepo.FindByID(ctx, id); err != nil {
			return fmt.Errorf("verify category %s: %w", id, err)
		}
	}
	return nil
}
