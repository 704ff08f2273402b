package service

import (
	"context"
	"fmt"
	"math"

	"github.com/rs/zerolog"

	"github.com/goodmart/ecommerce-api/internal/core/ports"
)

// RatingService recomputes product ratings from active reviews. It runs on
// the dispatcher workers, one refresh at a time per product.
type RatingService struct {
	reviewRepo  ports.ReviewRepository
	productRepo ports.ProductRepository
	log         zerolog.Logger
}

func NewRatingService(reviewRepo ports.ReviewRepository, productRepo ports.ProductRepository, log zerolog.Logger) *RatingService {
	return &RatingService{reviewRepo: reviewRepo, productRepo: productRepo, log: log}
}

// Refresh writes the mean grade over active reviews, rounded to 2 decimals,
// onto the product. A product with no active reviews goes back to 0.
func (s *RatingService) Refresh(ctx context.Context, productID int64) error {
	avg, count, err := s.reviewRepo.AverageGrade(ctx, productID)
	if err != nil {
		return fmt.Errorf("rating refresh: %w", err)
	}

	rating := 0.0
	if count > 0 {
		rating = math.Round(avg*100) / 100
	}

	if err := s.productRepo.SetRating(ctx, productID, rating); err != nil {
		return fmt.Errorf("rating refresh: set rating: %w", err)
	}

	s.log.Debug().Int64("product_id", productID).Float64("rating", rating).Int64("reviews", count).Msg("rating refreshed")
	return nil
}
