package service

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/goodmart/ecommerce-api/internal/core/domain"
	"github.com/goodmart/ecommerce-api/internal/core/ports"
)

// RatingQueue abstracts the dispatcher that schedules rating refreshes.
type RatingQueue interface {
	Enqueue(productID int64)
}

type ReviewService struct {
	repo        ports.ReviewRepository
	productRepo ports.ProductRepository
	ratings     RatingQueue
	log         zerolog.Logger
}

func NewReviewService(repo ports.ReviewRepository, productRepo ports.ProductRepository, ratings RatingQueue, log zerolog.Logger) *ReviewService {
	return &ReviewService{repo: repo, productRepo: productRepo, ratings: ratings, log: log}
}

func (s *ReviewService) List(ctx context.Context) ([]*domain.Review, error) {
	return s.repo.ListActive(ctx)
}

func (s *ReviewService) ByProduct(ctx context.Context, productID int64) ([]*domain.Review, error) {
	return s.repo.ListActiveByProduct(ctx, productID)
}

// Add inserts a review for an active product and schedules a rating refresh.
// The router already gates this to customers; the actor supplies the author.
func (s *ReviewService) Add(ctx context.Context, actor ports.Actor, input ports.CreateReviewInput) (*domain.Review, error) {
	if _, err := s.productRepo.FindActiveByID(ctx, input.ProductID); err != nil {
		return nil, err
	}

	review := &domain.Review{
		UserID:      actor.UserID,
		ProductID:   input.ProductID,
		Comment:     input.Comment,
		CommentDate: time.Now().UTC(),
		Grade:       input.Grade,
		IsActive:    true,
	}

	created, err := s.repo.Insert(ctx, review)
	if err != nil {
		return nil, err
	}

	s.ratings.Enqueue(input.ProductID)

	s.log.Info().Int64("review_id", created.ID).Int64("product_id", input.ProductID).Int("grade", input.Grade).Msg("review added")
	return created, nil
}

// Delete soft-deletes a review and schedules a rating refresh for its product.
func (s *ReviewService) Delete(ctx context.Context, reviewID int64) error {
	review, err := s.repo.FindActiveByID(ctx, reviewID)
	if err != nil {
		return err
	}

	if err := s.repo.Deactivate(ctx, reviewID); err != nil {
		return err
	}

	s.ratings.Enqueue(review.ProductID)

	s.log.Info().Int64("review_id", reviewID).Int64("product_id", review.ProductID).Msg("review soft-deleted")
	return nil
}
