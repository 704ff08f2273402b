package mongo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/goodmart/ecommerce-api/internal/core/domain"
)

const productsCollection = "products"

type ProductRepository struct {
	db   *mongo.Database
	coll *mongo.Collection
}

func NewProductRepository(db *mongo.Database) *ProductRepository {
	return &ProductRepository{db: db, coll: db.Collection(productsCollection)}
}

type productDoc struct {
	ID          int64   `bson:"_id"`
	Name        string  `bson:"name"`
	Slug        string  `bson:"slug"`
	Description string  `bson:"description"`
	Price       int64   `bson:"price"`
	ImageURL    string  `bson:"image_url"`
	Stock       int64   `bson:"stock"`
	CategoryID  int64   `bson:"category_id"`
	SupplierID  int64   `bson:"supplier_id"`
	Rating      float64 `bson:"rating"`
	IsActive    bool    `bson:"is_active"`
}

// sellableFilter matches active products with stock remaining.
func sellableFilter() bson.M {
	return bson.M{"is_active": true, "stock": bson.M{"$gt": 0}}
}

func (r *ProductRepository) Insert(ctx context.Context, product *domain.Product) (*domain.Product, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	id, err := nextSequence(ctx, r.db, productsCollection)
	if err != nil {
		return nil, err
	}

	doc := toProductDoc(product)
	doc.ID = id

	if _, err := r.coll.InsertOne(ctx, doc); err != nil {
		return nil, fmt.Errorf("insert product: %w", err)
	}

	created := *product
	created.ID = id
	return &created, nil
}

func (r *ProductRepository) ListSellable(ctx context.Context) ([]*domain.Product, error) {
	return r.list(ctx, sellableFilter())
}

func (r *ProductRepository) ListSellableByCategoryIDs(ctx context.Context, categoryIDs []int64) ([]*domain.Product, error) {
	filter := sellableFilter()
	filter["category_id"] = bson.M{"$in": categoryIDs}
	return r.list(ctx, filter)
}

func (r *ProductRepository) list(ctx context.Context, filter bson.M) ([]*domain.Product, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	cur, err := r.coll.Find(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("list products: %w", err)
	}
	defer cur.Close(ctx)

	var products []*domain.Product
	for cur.Next(ctx) {
		var doc productDoc
		if err := cur.Decode(&doc); err != nil {
			return nil, fmt.Errorf("decode product: %w", err)
		}
		products = append(products, toProduct(doc))
	}
	return products, cur.Err()
}

func (r *ProductRepository) FindBySlug(ctx context.Context, slug string) (*domain.Product, error) {
	return r.findOne(ctx, bson.M{"slug": slug})
}

func (r *ProductRepository) FindSellableBySlug(ctx context.Context, slug string) (*domain.Product, error) {
	filter := sellableFilter()
	filter["slug"] = slug
	return r.findOne(ctx, filter)
}

func (r *ProductRepository) FindActiveByID(ctx context.Context, id int64) (*domain.Product, error) {
	return r.findOne(ctx, bson.M{"_id": id, "is_active": true})
}

func (r *ProductRepository) findOne(ctx context.Context, filter bson.M) (*domain.Product, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var doc productDoc
	if err := r.coll.FindOne(ctx, filter).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrProductNotFound
		}
		return nil, fmt.Errorf("find product: %w", err)
	}
	return toProduct(doc), nil
}

func (r *ProductRepository) Update(ctx context.Context, slug string, product *domain.Product) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := r.coll.UpdateOne(ctx, bson.M{"slug": slug}, bson.M{"$set": bson.M{
		"name":        product.Name,
		"slug":        product.Slug,
		"description": product.Description,
		"price":       product.Price,
		"image_url":   product.ImageURL,
		"stock":       product.Stock,
		"category_id": product.CategoryID,
	}})
	if err != nil {
		return fmt.Errorf("update product: %w", err)
	}
	if res.MatchedCount == 0 {
		return domain.ErrProductNotFound
	}
	return nil
}

func (r *ProductRepository) Deactivate(ctx context.Context, slug string) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := r.coll.UpdateOne(ctx, bson.M{"slug": slug}, bson.M{"$set": bson.M{"is_active": false}})
	if err != nil {
		return fmt.Errorf("deactivate product: %w", err)
	}
	if res.MatchedCount == 0 {
		return domain.ErrProductNotFound
	}
	return nil
}

func (r *ProductRepository) SetRating(ctx context.Context, productID int64, rating float64) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := r.coll.UpdateOne(ctx, bson.M{"_id": productID}, bson.M{"$set": bson.M{"rating": rating}})
	if err != nil {
		return fmt.Errorf("set rating: %w", err)
	}
	if res.MatchedCount == 0 {
		return domain.ErrProductNotFound
	}
	return nil
}

// EnsureIndexes creates the unique slug index and the category lookup index.
func (r *ProductRepository) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	indexes := []mongo.IndexModel{
		{Keys: bson.D{{Key: "slug", Value: 1}}, Options: options.Index().SetUnique(true)},
		{Keys: bson.D{{Key: "category_id", Value: 1}}},
		{Keys: bson.D{{Key: "supplier_id", Value: 1}}},
	}

	_, err := r.coll.Indexes().CreateMany(ctx, indexes)
	return err
}

func toProductDoc(p *domain.Product) productDoc {
	return productDoc{
		ID:          p.ID,
		Name:        p.Name,
		Slug:        p.Slug,
		Description: p.Description,
		Price:       p.Price,
		ImageURL:    p.ImageURL,
		Stock:       p.Stock,
		CategoryID:  p.CategoryID,
		SupplierID:  p.SupplierID,
		Rating:      p.Rating,
		IsActive:    p.IsActive,
	}
}

func toProduct(doc productDoc) *domain.Product {
	return &domain.Product{
		ID:          doc.ID,
		Name:        doc.Name,
		Slug:        doc.Slug,
		Description: doc.Description,
		Price:       doc.Price,
		ImageURL:    doc.ImageURL,
		Stock:       doc.Stock,
		CategoryID:  doc.CategoryID,
		SupplierID:  doc.SupplierID,
		Rating:      doc.Rating,
		IsActive:    doc.IsActive,
	}
}
