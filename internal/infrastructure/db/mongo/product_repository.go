package mongo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/stockroom/inventory-api/internal/core/domain"
)

const productsCollection = "products"

type ProductRepository struct {
	coll *mongo.Collection
}

func NewProductRepository(db *mongo.Database) *ProductRepository {
	return &ProductRepository{coll: db.Collection(productsCollection)}
}

type productDoc struct {
	ID                primitive.ObjectID   `bson:"_id,omitempty"`
	Name              string               `bson:"name"`
	Description       string               `bson:"description"`
	Categories        []primitive.ObjectID `bson:"categories"`
	Quantity          int64                `bson:"quantity"`
	Price             float64              `bson:"price"`
	SupplierInfo      string               `bson:"supplier_info,omitempty"`
	LowStockThreshold int64                `bson:"low_stock_threshold"`
	Revision          int64                `bson:"revision"`
	DateAdded         int64                `bson:"date_added"`
	LastUpdated       int64                `bson:"last_updated"`
}

func toProductDoc(p *domain.Product) (productDoc, error) {
	categories := make([]primitive.ObjectID, 0, len(p.Categories))
	for _, id := range p.Categories {
		oid, err := primitive.ObjectIDFromHex(id)
		if err != nil {
			return productDoc{}, fmt.Errorf("category id %q: %w", id, domain.ErrCategoryNotFound)
		}
		categories = append(categories, oid)
	}
	return productDoc{
		Name:              p.Name,
		Description:       p.Description,
		Categories:        categories,
		Quantity:          p.Quantity,
		Price:             p.Price,
		SupplierInfo:      p.SupplierInfo,
		LowStockThreshold: p.LowStockThreshold,
		Revision:          p.Revision,
		DateAdded:         p.DateAdded.Unix(),
		LastUpdated:       p.LastUpdated.Unix(),
	}, nil
}

func (d productDoc) toDomain() *domain.Product {
	categories := make([]string, 0, len(d.Categories))
	for _, oid := range d.Categories {
		categories = append(categories, oid.Hex())
	}
	return &domain.Product{
		ID:                d.ID.Hex(),
		Name:              d.Name,
		Description:       d.Description,
		Categories:        categories,
		Quantity:          d.Quantity,
		Price:             d.Price,
		SupplierInfo:      d.SupplierInfo,
		LowStockThreshold: d.LowStockThreshold,
		Revision:          d.Revision,
		DateAdded:         unixToTime(d.DateAdded),
		LastUpdated:       unixToTime(d.LastUpdated),
	}
}

func (r *ProductRepository) Create(ctx context.Context, p *domain.Product) (*domain.Product, error) {
	doc, err := toProductDoc(p)
	if err != nil {
		return nil, err
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := r.coll.InsertOne(ctx, doc)
	if err != nil {
		return nil, fmt.Errorf("insert product: %w", err)
	}

	created := *p
	if oid, ok := res.InsertedID.(primitive.ObjectID); ok {
		created.ID = oid.Hex()
	}
	return &created, nil
}

func (r *ProductRepository) FindAll(ctx context.Context) ([]*domain.Product, error) {
	return r.find(ctx, bson.M{})
}

func (r *ProductRepository) FindByID(ctx context.Context, id string) (*domain.Product, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, domain.ErrProductNotFound
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var doc productDoc
	if err := r.coll.FindOne(ctx, bson.M{"_id": oid}).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrProductNotFound
		}
		return nil, fmt.Errorf("find product: %w", err)
	}
	return doc.toDomain(), nil
}

func (r *ProductRepository) FindByCategory(ctx context.Context, categoryID string) ([]*domain.Product, error) {
	oid, err := primitive.ObjectIDFromHex(categoryID)
	if err != nil {
		return nil, domain.ErrCategoryNotFound
	}
	return r.find(ctx, bson.M{"categories": oid})
}

func (r *ProductRepository) Update(ctx context.Context, id string, p *domain.Product) (*domain.Product, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, domain.ErrProductNotFound
	}

	doc, err := toProductDoc(p)
	if err != nil {
		return nil, err
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	update := bson.M{"$set": bson.M{
		"name":                doc.Name,
		"description":         doc.Description,
		"categories":          doc.Categories,
		"price":               doc.Price,
		"supplier_info":       doc.SupplierInfo,
		"low_stock_threshold": doc.LowStockThreshold,
		"last_updated":        doc.LastUpdated,
	}}
	res, err := r.coll.UpdateByID(ctx, oid, update)
	if err != nil {
		return nil, fmt.Errorf("update product: %w", err)
	}
	if res.MatchedCount == 0 {
		return nil, domain.ErrProductNotFound
	}

	updated := *p
	updated.ID = id
	return &updated, nil
}

func (r *ProductRepository) Delete(ctx context.Context, id string) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return domain.ErrProductNotFound
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := r.coll.DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return fmt.Errorf("delete product: %w", err)
	}
	if res.DeletedCount == 0 {
		return domain.ErrProductNotFound
	}
	return nil
}

// UpdateQuantity sets the new quantity only when the stored revision still
// matches the one the caller read. The revision is bumped in the same write,
// which closes the lost-update window between two concurrent adjustments.
func (r *ProductRepository) UpdateQuantity(ctx context.Context, id string, quantity int64, revision int64, updatedAt time.Time) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return domain.ErrProductNotFound
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := r.coll.UpdateOne(ctx,
		bson.M{"_id": oid, "revision": revision},
		bson.M{
			"$set": bson.M{"quantity": quantity, "last_updated": updatedAt.Unix()},
			"$inc": bson.M{"revision": 1},
		},
	)
	if err != nil {
		return fmt.Errorf("update quantity: %w", err)
	}
	if res.MatchedCount == 0 {
		return domain.ErrStaleProduct
	}
	return nil
}

// FindLowStock compares quantity against each document's own threshold via
// $expr, so the filter runs entirely in the store.
func (r *ProductRepository) FindLowStock(ctx context.Context) ([]*domain.Product, error) {
	return r.find(ctx, bson.M{
		"$expr": bson.M{"$lte": bson.A{"$quantity", "$low_stock_threshold"}},
	})
}

func (r *ProductRepository) FindOutOfStock(ctx context.Context) ([]*domain.Product, error) {
	return r.find(ctx, bson.M{"quantity": bson.M{"$eq": 0}})
}

func (r *ProductRepository) find(ctx context.Context, filter bson.M) ([]*domain.Product, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	cur, err := r.coll.Find(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("find products: %w", err)
	}
	defer cur.Close(ctx)

	products := make([]*domain.Product, 0)
	for cur.Next(ctx) {
		var doc productDoc
		if err := cur.Decode(&doc); err != nil {
			return nil, fmt.Errorf("decode product: %w", err)
		}
		products = append(products, doc.toDomain())
	}
	return products, cur.Err()
}

// EnsureIndexes creates the indexes used by category and stock queries.
func (r *ProductRepository) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	indexes := []mongo.IndexModel{
		{Keys: bson.D{{Key: "categories", Value: 1}}},
		{Keys: bson.D{{Key: "quantity", Value: 1}}},
	}

	_, err := r.coll.Indexes().CreateMany(ctx, indexes)
	return err
}
