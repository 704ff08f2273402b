package service

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/goodmart/ecommerce-api/internal/core/domain"
	"github.com/goodmart/ecommerce-api/internal/core/ports"
)

type CategoryService struct {
	repo ports.CategoryRepository
	log  zerolog.Logger
}

func NewCategoryService(repo ports.CategoryRepository, log zerolog.Logger) *CategoryService {
	return &CategoryService{repo: repo, log: log}
}

func (s *CategoryService) List(ctx context.Context) ([]*domain.Category, error) {
	return s.repo.ListActive(ctx)
}

func (s *CategoryService) Create(ctx context.Context, input ports.CreateCategoryInput) (*domain.Category, error) {
	slug := slugify(input.Name)
	if slug == "" {
		return nil, domain.ErrInvalidName
	}

	category := &domain.Category{
		Name:     input.Name,
		Slug:     slug,
		ParentID: input.ParentID,
		IsActive: true,
	}

	created, err := s.repo.Insert(ctx, category)
	if err != nil {
		return nil, err
	}

	s.log.Info().Str("slug", created.Slug).Int64("category_id", created.ID).Msg("category created")
	return created, nil
}

func (s *CategoryService) Update(ctx context.Context, slug string, input ports.CreateCategoryInput) (*domain.Category, error) {
	newSlug := slugify(input.Name)
	if newSlug == "" {
		return nil, domain.ErrInvalidName
	}

	category, err := s.repo.FindBySlug(ctx, slug)
	if err != nil {
		return nil, err
	}

	category.Name = input.Name
	category.Slug = newSlug
	category.ParentID = input.ParentID

	if err := s.repo.Update(ctx, slug, category); err != nil {
		return nil, err
	}

	s.log.Info().Str("slug", category.Slug).Int64("category_id", category.ID).Msg("category updated")
	return category, nil
}

// Delete soft-deletes an active category. Inactive categories read as absent.
func (s *CategoryService) Delete(ctx context.Context, slug string) error {
	category, err := s.repo.FindBySlug(ctx, slug)
	if err != nil {
		return err
	}
	if !category.IsActive {
		return domain.ErrCategoryNotFound
	}

	if err := s.repo.Deactivate(ctx, slug); err != nil {
		return err
	}

	s.log.Info().Str("slug", slug).Msg("category soft-deleted")
	return nil
}
