package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"testing"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/goodmart/ecommerce-api/internal/core/domain"
	"github.com/goodmart/ecommerce-api/internal/core/ports"
)

type stubReviewService struct {
	listFn      func(ctx context.Context) ([]*domain.Review, error)
	byProductFn func(ctx context.Context, productID int64) ([]*domain.Review, error)
	addFn       func(ctx context.Context, actor ports.Actor, input ports.CreateReviewInput) (*domain.Review, error)
	deleteFn    func(ctx context.Context, reviewID int64) error
}

func (s *stubReviewService) List(ctx context.Context) ([]*domain.Review, error) {
	return s.listFn(ctx)
}

func (s *stubReviewService) ByProduct(ctx context.Context, productID int64) ([]*domain.Review, error) {
	return s.byProductFn(ctx, productID)
}

func (s *stubReviewService) Add(ctx context.Context, actor ports.Actor, input ports.CreateReviewInput) (*domain.Review, error) {
	return s.addFn(ctx, actor, input)
}

func (s *stubReviewService) Delete(ctx context.Context, reviewID int64) error {
	return s.deleteFn(ctx, reviewID)
}

func TestReviewHandler_Add(t *testing.T) {
	stub := &stubReviewService{
		addFn: func(_ context.Context, actor ports.Actor, input ports.CreateReviewInput) (*domain.Review, error) {
			if actor.UserID != 3 {
				t.Fatalf("unexpected actor: %+v", actor)
			}
			if input.ProductID != 5 || input.Grade != 4 {
				t.Fatalf("unexpected input: %+v", input)
			}
			return &domain.Review{ID: 1, UserID: actor.UserID, ProductID: input.ProductID, Comment: input.Comment, CommentDate: time.Now().UTC(), Grade: input.Grade, IsActive: true}, nil
		},
	}
	handler := NewReviewHandler(stub)

	c, rec := newJSONContext(t, http.MethodPost, "/reviews",
		`{"product_id":5,"comment":"solid","grade":4}`)
	setActorClaims(c, ports.Actor{UserID: 3, Username: "carla", IsCustomer: true})

	if err := handler.Add(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d", rec.Code)
	}

	var resp reviewResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if resp.UserID != 3 || resp.Grade != 4 {
		t.Fatalf("unexpected response: %+v", resp)
	}
}

func TestReviewHandler_Add_GradeOutOfRange(t *testing.T) {
	stub := &stubReviewService{
		addFn: func(_ context.Context, _ ports.Actor, _ ports.CreateReviewInput) (*domain.Review, error) {
			t.Fatalf("service should not be called")
			return nil, nil
		},
	}
	handler := NewReviewHandler(stub)

	for _, body := range []string{
		`{"product_id":5,"grade":0}`,
		`{"product_id":5,"grade":6}`,
	} {
		c, _ := newJSONContext(t, http.MethodPost, "/reviews", body)
		setActorClaims(c, ports.Actor{UserID: 3, Username: "carla", IsCustomer: true})

		err := handler.Add(c)
		var httpErr *echo.HTTPError
		if !errors.As(err, &httpErr) || httpErr.Code != http.StatusBadRequest {
			t.Fatalf("body %s: expected 400, got %v", body, err)
		}
	}
}

func TestReviewHandler_Add_UnknownProduct(t *testing.T) {
	stub := &stubReviewService{
		addFn: func(_ context.Context, _ ports.Actor, _ ports.CreateReviewInput) (*domain.Review, error) {
			return nil, domain.ErrProductNotFound
		},
	}
	handler := NewReviewHandler(stub)

	c, _ := newJSONContext(t, http.MethodPost, "/reviews", `{"product_id":99,"grade":5}`)
	setActorClaims(c, ports.Actor{UserID: 3, Username: "carla", IsCustomer: true})

	if err := handler.Add(c); !errors.Is(err, domain.ErrProductNotFound) {
		t.Fatalf("expected ErrProductNotFound, got %v", err)
	}
}

func TestReviewHandler_ByProduct_BadID(t *testing.T) {
	handler := NewReviewHandler(&stubReviewService{})

	c, _ := newJSONContext(t, http.MethodGet, "/reviews/product/abc", "")
	c.SetParamNames("product_id")
	c.SetParamValues("abc")

	err := handler.ByProduct(c)
	var httpErr *echo.HTTPError
	if !errors.As(err, &httpErr) || httpErr.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %v", err)
	}
}

func TestReviewHandler_Delete(t *testing.T) {
	var deleted int64
	stub := &stubReviewService{
		deleteFn: func(_ context.Context, reviewID int64) error {
			deleted = reviewID
			return nil
		},
	}
	handler := NewReviewHandler(stub)

	c, rec := newJSONContext(t, http.MethodDelete, "/reviews/9", "")
	c.SetParamNames("review_id")
	c.SetParamValues("9")

	if err := handler.Delete(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusNoContent {
		t.Fatalf("expected 204, got %d", rec.Code)
	}
	if deleted != 9 {
		t.Fatalf("unexpected review id passed to service: %d", deleted)
	}
}
