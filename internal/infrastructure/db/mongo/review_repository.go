package mongo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/goodmart/ecommerce-api/internal/core/domain"
)

const reviewsCollection = "reviews"

type ReviewRepository struct {
	db   *mongo.Database
	coll *mongo.Collection
}

func NewReviewRepository(db *mongo.Database) *ReviewRepository {
	return &ReviewRepository{db: db, coll: db.Collection(reviewsCollection)}
}

type reviewDoc struct {
	ID          int64     `bson:"_id"`
	UserID      int64     `bson:"user_id"`
	ProductID   int64     `bson:"product_id"`
	Comment     string    `bson:"comment"`
	CommentDate time.Time `bson:"comment_date"`
	Grade       int       `bson:"grade"`
	IsActive    bool      `bson:"is_active"`
}

func (r *ReviewRepository) Insert(ctx context.Context, review *domain.Review) (*domain.Review, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	id, err := nextSequence(ctx, r.db, reviewsCollection)
	if err != nil {
		return nil, err
	}

	doc := reviewDoc{
		ID:          id,
		UserID:      review.UserID,
		ProductID:   review.ProductID,
		Comment:     review.Comment,
		CommentDate: review.CommentDate,
		Grade:       review.Grade,
		IsActive:    review.IsActive,
	}

	if _, err := r.coll.InsertOne(ctx, doc); err != nil {
		return nil, fmt.Errorf("insert review: %w", err)
	}

	created := *review
	created.ID = id
	return &created, nil
}

func (r *ReviewRepository) ListActive(ctx context.Context) ([]*domain.Review, error) {
	return r.list(ctx, bson.M{"is_active": true})
}

func (r *ReviewRepository) ListActiveByProduct(ctx context.Context, productID int64) ([]*domain.Review, error) {
	return r.list(ctx, bson.M{"is_active": true, "product_id": productID})
}

func (r *ReviewRepository) list(ctx context.Context, filter bson.M) ([]*domain.Review, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	cur, err := r.coll.Find(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("list reviews: %w", err)
	}
	defer cur.Close(ctx)

	var reviews []*domain.Review
	for cur.Next(ctx) {
		var doc reviewDoc
		if err := cur.Decode(&doc); err != nil {
			return nil, fmt.Errorf("decode review: %w", err)
		}
		reviews = append(reviews, toReview(doc))
	}
	return reviews, cur.Err()
}

func (r *ReviewRepository) FindActiveByID(ctx context.Context, id int64) (*domain.Review, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var doc reviewDoc
	if err := r.coll.FindOne(ctx, bson.M{"_id": id, "is_active": true}).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrReviewNotFound
		}
		return nil, fmt.Errorf("find review: %w", err)
	}
	return toReview(doc), nil
}

func (r *ReviewRepository) Deactivate(ctx context.Context, id int64) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := r.coll.UpdateOne(ctx, bson.M{"_id": id}, bson.M{"$set": bson.M{"is_active": false}})
	if err != nil {
		return fmt.Errorf("deactivate review: %w", err)
	}
	if res.MatchedCount == 0 {
		return domain.ErrReviewNotFound
	}
	return nil
}

// AverageGrade computes the mean grade over the product's active reviews. The
// count lets callers distinguish "no reviews" from an average of zero.
func (r *ReviewRepository) AverageGrade(ctx context.Context, productID int64) (float64, int64, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	pipeline := mongo.Pipeline{
		{{Key: "$match", Value: bson.M{"product_id": productID, "is_active": true}}},
		{{Key: "$group", Value: bson.M{
			"_id":   nil,
			"avg":   bson.M{"$avg": "$grade"},
			"count": bson.M{"$sum": 1},
		}}},
	}

	cur, err := r.coll.Aggregate(ctx, pipeline)
	if err != nil {
		return 0, 0, fmt.Errorf("average grade: %w", err)
	}
	defer cur.Close(ctx)

	var result struct {
		Avg   float64 `bson:"avg"`
		Count int64   `bson:"count"`
	}
	if cur.Next(ctx) {
		if err := cur.Decode(&result); err != nil {
			return 0, 0, fmt.Errorf("decode average grade: %w", err)
		}
	}
	return result.Avg, result.Count, cur.Err()
}

// EnsureIndexes creates the product lookup index.
func (r *ReviewRepository) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	indexes := []mongo.IndexModel{
		{Keys: bson.D{{Key: "product_id", Value: 1}}},
		{Keys: bson.D{{Key: "user_id", Value: 1}}},
	}

	_, err := r.coll.Indexes().CreateMany(ctx, indexes)
	return err
}

func toReview(doc reviewDoc) *domain.Review {
	return &domain.Review{
		ID:          doc.ID,
		UserID:      doc.UserID,
		ProductID:   doc.ProductID,
		Comment:     doc.Comment,
		CommentDate: doc.CommentDate,
		Grade:       doc.Grade,
		IsActive:    doc.IsActive,
	}
}
