package service

import (
	"context"
	"errors"
	"strconv"
	"testing"

	"github.com/rs/zerolog"

	"github.com/stockroom/inventory-api/internal/core/domain"
	"github.com/stockroom/inventory-api/internal/core/ports"
)

type stubCategoryRepo struct {
	categories map[string]*domain.Category
	nextID     int
}

func newStubCategoryRepo(ids ...string) *stubCategoryRepo {
	r := &stubCategoryRepo{categories: make(map[string]*domain.Category)}
	for _, id := range ids {
		r.categories[id] = &domain.Category{ID: id, Name: id}
	}
	return r
}

func (r *stubCategoryRepo) Create(_ context.Context, c *domain.Category) (*domain.Category, error) {
	r.nextID++
	clone := *c
	clone.ID = "cat" + strconv.Itoa(r.nextID)
	r.categories[clone.ID] = &clone
	return &clone, nil
}

func (r *stubCategoryRepo) FindAll(_ context.Context) ([]*domain.Category, error) {
	out := make([]*domain.Category, 0, len(r.categories))
	for _, c := range r.categories {
		clone := *c
		out = append(out, &clone)
	}
	return out, nil
}

func (r *stubCategoryRepo) FindByID(_ context.Context, id string) (*domain.Category, error) {
	c, ok := r.categories[id]
	if !ok {
		return nil, domain.ErrCategoryNotFound
	}
	clone := *c
	return &clone, nil
}

func (r *stubCategoryRepo) Update(_ context.Context, id string, c *domain.Category) (*domain.Category, error) {
	if _, ok := r.categories[id]; !ok {
		return nil, domain.ErrCategoryNotFound
	}
	clone := *c
	clone.ID = id
	r.categories[id] = &clone
	return &clone, nil
}

func (r *stubCategoryRepo) Delete(_ context.Context, id string) error {
	if _, ok := r.categories[id]; !ok {
		return domain.ErrCategoryNotFound
	}
	delete(r.categories, id)
	return nil
}

func newTestProductService(products *stubProductRepo, categories *stubCategoryRepo) *ProductService {
	return NewProductService(products, categories, zerolog.Nop())
}

func TestProductService_Create_DefaultThreshold(t *testing.T) {
	svc := newTestProductService(newStubProductRepo(), newStubCategoryRepo("widgets"))

	product, err := svc.CreateProduct(context.Background(), ports.CreateProductInput{
		Name:        "Sprocket",
		Description: "A sprocket",
		Categories:  []string{"widgets"},
		Quantity:    5,
		Price:       9.99,
	})
	if err != nil {
		t.Fatalf("CreateProduct returned error: %v", err)
	}
	if product.LowStockThreshold != domain.DefaultLowStockThreshold {
		t.Fatalf("expected default threshold %d, got %d", domain.DefaultLowStockThreshold, product.LowStockThreshold)
	}
	if product.DateAdded.IsZero() || product.LastUpdated.IsZero() {
		t.Fatalf("expected timestamps to be set")
	}
}

func TestProductService_Create_ExplicitThreshold(t *testing.T) {
	svc := newTestProductService(newStubProductRepo(), newStubCategoryRepo("widgets"))

	threshold := int64(3)
	product, err := svc.CreateProduct(context.Background(), ports.CreateProductInput{
		Name:              "Sprocket",
		Description:       "A sprocket",
		Categories:        []string{"widgets"},
		Quantity:          5,
		Price:             9.99,
		LowStockThreshold: &threshold,
	})
	if err != nil {
		t.Fatalf("CreateProduct returned error: %v", err)
	}
	if product.LowStockThreshold != 3 {
		t.Fatalf("expected threshold 3, got %d", product.LowStockThreshold)
	}
}

func TestProductService_Create_UnknownCategory(t *testing.T) {
	svc := newTestProductService(newStubProductRepo(), newStubCategoryRepo())

	_, err := svc.CreateProduct(context.Background(), ports.CreateProductInput{
		Name:        "Sprocket",
		Description: "A sprocket",
		Categories:  []string{"nope"},
	})
	if !errors.Is(err, domain.ErrCategoryNotFound) {
		t.Fatalf("expected ErrCategoryNotFound, got %v", err)
	}
}

func TestProductService_Update_PreservesQuantity(t *testing.T) {
	p := testProduct()
	p.Categories = []string{"widgets"}
	repo := newStubProductRepo(p)
	svc := newTestProductService(repo, newStubCategoryRepo("widgets"))

	updated, err := svc.UpdateProduct(context.Background(), "p1", ports.UpdateProductInput{
		Name:        "Renamed",
		Description: "Updated",
		Categories:  []string{"widgets"},
		Price:       19.99,
	})
	if err != nil {
		t.Fatalf("UpdateProduct returned error: %v", err)
	}
	if updated.Quantity != p.Quantity {
		t.Fatalf("product update must not touch quantity: got %d, want %d", updated.Quantity, p.Quantity)
	}
	if updated.Name != "Renamed" {
		t.Fatalf("expected name to change, got %q", updated.Name)
	}
}
