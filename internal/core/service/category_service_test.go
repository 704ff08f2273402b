package service

import (
	"context"
	"errors"
	"testing"

	"github.com/rs/zerolog"

	"github.com/goodmart/ecommerce-api/internal/core/domain"
	"github.com/goodmart/ecommerce-api/internal/core/ports"
)

type stubCategoryRepo struct {
	categories map[int64]*domain.Category
	nextID     int64
}

func newStubCategoryRepo() *stubCategoryRepo {
	return &stubCategoryRepo{categories: make(map[int64]*domain.Category)}
}

func (r *stubCategoryRepo) Insert(_ context.Context, category *domain.Category) (*domain.Category, error) {
	r.nextID++
	clone := *category
	clone.ID = r.nextID
	r.categories[clone.ID] = &clone
	out := clone
	return &out, nil
}

func (r *stubCategoryRepo) ListActive(_ context.Context) ([]*domain.Category, error) {
	var out []*domain.Category
	for _, c := range r.categories {
		if c.IsActive {
			clone := *c
			out = append(out, &clone)
		}
	}
	return out, nil
}

func (r *stubCategoryRepo) FindBySlug(_ context.Context, slug string) (*domain.Category, error) {
	for _, c := range r.categories {
		if c.Slug == slug {
			clone := *c
			return &clone, nil
		}
	}
	return nil, domain.ErrCategoryNotFound
}

func (r *stubCategoryRepo) FindByID(_ context.Context, id int64) (*domain.Category, error) {
	c, ok := r.categories[id]
	if !ok {
		return nil, domain.ErrCategoryNotFound
	}
	clone := *c
	return &clone, nil
}

func (r *stubCategoryRepo) ListChildIDs(_ context.Context, parentID int64) ([]int64, error) {
	var ids []int64
	for _, c := range r.categories {
		if c.ParentID == parentID {
			ids = append(ids, c.ID)
		}
	}
	return ids, nil
}

func (r *stubCategoryRepo) Update(_ context.Context, slug string, category *domain.Category) error {
	for _, c := range r.categories {
		if c.Slug == slug {
			c.Name = category.Name
			c.Slug = category.Slug
			c.ParentID = category.ParentID
			return nil
		}
	}
	return domain.ErrCategoryNotFound
}

func (r *stubCategoryRepo) Deactivate(_ context.Context, slug string) error {
	for _, c := range r.categories {
		if c.Slug == slug {
			c.IsActive = false
			return nil
		}
	}
	return domain.ErrCategoryNotFound
}

func TestCategoryService_Create(t *testing.T) {
	repo := newStubCategoryRepo()
	svc := NewCategoryService(repo, zerolog.Nop())

	created, err := svc.Create(context.Background(), ports.CreateCategoryInput{Name: "Garden Tools"})
	if err != nil {
		t.Fatalf("Create returned error: %v", err)
	}
	if created.Slug != "garden-tools" {
		t.Fatalf("unexpected slug: %q", created.Slug)
	}
	if !created.IsActive {
		t.Fatalf("new category should be active")
	}
	if created.ID == 0 {
		t.Fatalf("expected assigned id")
	}
}

func TestCategoryService_Create_UnsluggableName(t *testing.T) {
	repo := newStubCategoryRepo()
	svc := NewCategoryService(repo, zerolog.Nop())

	if _, err := svc.Create(context.Background(), ports.CreateCategoryInput{Name: "!!!"}); !errors.Is(err, domain.ErrInvalidName) {
		t.Fatalf("expected ErrInvalidName, got %v", err)
	}
}

func TestCategoryService_Update_UnsluggableName(t *testing.T) {
	repo := newStubCategoryRepo()
	svc := NewCategoryService(repo, zerolog.Nop())

	created, err := svc.Create(context.Background(), ports.CreateCategoryInput{Name: "Garden"})
	if err != nil {
		t.Fatalf("Create returned error: %v", err)
	}

	if _, err := svc.Update(context.Background(), created.Slug, ports.CreateCategoryInput{Name: "***"}); !errors.Is(err, domain.ErrInvalidName) {
		t.Fatalf("expected ErrInvalidName, got %v", err)
	}
	if _, err := repo.FindBySlug(context.Background(), "garden"); err != nil {
		t.Fatalf("rejected rename must leave the category untouched, got %v", err)
	}
}

func TestCategoryService_Update_Reslugs(t *testing.T) {
	repo := newStubCategoryRepo()
	svc := NewCategoryService(repo, zerolog.Nop())

	created, err := svc.Create(context.Background(), ports.CreateCategoryInput{Name: "Garden"})
	if err != nil {
		t.Fatalf("Create returned error: %v", err)
	}

	updated, err := svc.Update(context.Background(), created.Slug, ports.CreateCategoryInput{Name: "Garden & Patio"})
	if err != nil {
		t.Fatalf("Update returned error: %v", err)
	}
	if updated.Slug != "garden-patio" {
		t.Fatalf("unexpected slug after update: %q", updated.Slug)
	}
	if _, err := repo.FindBySlug(context.Background(), "garden"); !errors.Is(err, domain.ErrCategoryNotFound) {
		t.Fatalf("old slug should be gone, got %v", err)
	}
}

func TestCategoryService_Delete(t *testing.T) {
	repo := newStubCategoryRepo()
	svc := NewCategoryService(repo, zerolog.Nop())

	created, err := svc.Create(context.Background(), ports.CreateCategoryInput{Name: "Garden"})
	if err != nil {
		t.Fatalf("Create returned error: %v", err)
	}

	if err := svc.Delete(context.Background(), created.Slug); err != nil {
		t.Fatalf("Delete returned error: %v", err)
	}

	// A soft-deleted category reads as absent.
	if err := svc.Delete(context.Background(), created.Slug); !errors.Is(err, domain.ErrCategoryNotFound) {
		t.Fatalf("expected ErrCategoryNotFound for deleted category, got %v", err)
	}
}

func TestCategoryService_Delete_Unknown(t *testing.T) {
	svc := NewCategoryService(newStubCategoryRepo(), zerolog.Nop())

	if err := svc.Delete(context.Background(), "nope"); !errors.Is(err, domain.ErrCategoryNotFound) {
		t.Fatalf("expected ErrCategoryNotFound, got %v", err)
	}
}
