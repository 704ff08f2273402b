package service

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/goodmart/ecommerce-api/internal/core/domain"
	"github.com/goodmart/ecommerce-api/internal/core/ports"
)

type ProductService struct {
	repo         ports.ProductRepository
	categoryRepo ports.CategoryRepository
	log          zerolog.Logger
}

func NewProductService(repo ports.ProductRepository, categoryRepo ports.CategoryRepository, log zerolog.Logger) *ProductService {
	return &ProductService{repo: repo, categoryRepo: categoryRepo, log: log}
}

func (s *ProductService) List(ctx context.Context) ([]*domain.Product, error) {
	return s.repo.ListSellable(ctx)
}

// ByCategory returns sellable products of the category and its direct
// child categories.
func (s *ProductService) ByCategory(ctx context.Context, categorySlug string) ([]*domain.Product, error) {
	category, err := s.categoryRepo.FindBySlug(ctx, categorySlug)
	if err != nil {
		return nil, err
	}

	childIDs, err := s.categoryRepo.ListChildIDs(ctx, category.ID)
	if err != nil {
		return nil, err
	}

	return s.repo.ListSellableByCategoryIDs(ctx, append([]int64{category.ID}, childIDs...))
}

func (s *ProductService) Detail(ctx context.Context, productSlug string) (*domain.Product, error) {
	return s.repo.FindSellableBySlug(ctx, productSlug)
}

func (s *ProductService) Create(ctx context.Context, actor ports.Actor, input ports.CreateProductInput) (*domain.Product, error) {
	slug := slugify(input.Name)
	if slug == "" {
		return nil, domain.ErrInvalidName
	}
	if _, err := s.categoryRepo.FindByID(ctx, input.CategoryID); err != nil {
		return nil, err
	}

	product := &domain.Product{
		Name:        input.Name,
		Slug:        slug,
		Description: input.Description,
		Price:       input.Price,
		ImageURL:    input.ImageURL,
		Stock:       input.Stock,
		CategoryID:  input.CategoryID,
		SupplierID:  actor.UserID,
		Rating:      0,
		IsActive:    true,
	}

	created, err := s.repo.Insert(ctx, product)
	if err != nil {
		return nil, err
	}

	s.log.Info().Str("slug", created.Slug).Int64("product_id", created.ID).Int64("supplier_id", actor.UserID).Msg("product created")
	return created, nil
}

func (s *ProductService) Update(ctx context.Context, actor ports.Actor, productSlug string, input ports.CreateProductInput) (*domain.Product, error) {
	newSlug := slugify(input.Name)
	if newSlug == "" {
		return nil, domain.ErrInvalidName
	}

	product, err := s.repo.FindBySlug(ctx, productSlug)
	if err != nil {
		return nil, err
	}
	if err := requireOwnerOrAdmin(actor, product.SupplierID); err != nil {
		return nil, err
	}
	if _, err := s.categoryRepo.FindByID(ctx, input.CategoryID); err != nil {
		return nil, err
	}

	product.Name = input.Name
	product.Slug = newSlug
	product.Description = input.Description
	product.Price = input.Price
	product.ImageURL = input.ImageURL
	product.Stock = input.Stock
	product.CategoryID = input.CategoryID

	if err := s.repo.Update(ctx, productSlug, product); err != nil {
		return nil, err
	}

	s.log.Info().Str("slug", product.Slug).Int64("product_id", product.ID).Msg("product updated")
	return product, nil
}

func (s *ProductService) Delete(ctx context.Context, actor ports.Actor, productSlug string) error {
	product, err := s.repo.FindBySlug(ctx, productSlug)
	if err != nil {
		return err
	}
	if err := requireOwnerOrAdmin(actor, product.SupplierID); err != nil {
		return err
	}

	if err := s.repo.Deactivate(ctx, productSlug); err != nil {
		return err
	}

	s.log.Info().Str("slug", productSlug).Int64("product_id", product.ID).Msg("product soft-deleted")
	return nil
}

// requireOwnerOrAdmin fails unless the actor owns the resource or is admin.
func requireOwnerOrAdmin(actor ports.Actor, ownerID int64) error {
	if actor.IsAdmin || actor.UserID == ownerID {
		return nil
	}
	return domain.ErrForbidden
}
