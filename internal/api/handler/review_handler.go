package handler

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/goodmart/ecommerce-api/internal/api/metrics"
	"github.com/goodmart/ecommerce-api/internal/core/domain"
	"github.com/goodmart/ecommerce-api/internal/core/ports"
)

type ReviewHandler struct {
	service ports.ReviewService
}

func NewReviewHandler(service ports.ReviewService) *ReviewHandler {
	return &ReviewHandler{service: service}
}

// List returns all active reviews.
//
// @Summary      List reviews
// @Tags         reviews
// @Produce      json
// @Success      200  {array}  reviewResponse
// @Router       /reviews [get]
func (h *ReviewHandler) List(c echo.Context) error {
	reviews, err := h.service.List(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toReviewResponses(reviews))
}

// ByProduct returns active reviews for one product.
//
// @Summary      List reviews for a product
// @Tags         reviews
// @Produce      json
// @Param        product_id  path      int  true  "Product id"
// @Success      200         {array}   reviewResponse
// @Failure      400         {object}  errorResponse
// @Router       /reviews/{product_id} [get]
func (h *ReviewHandler) ByProduct(c echo.Context) error {
	productID, err := strconv.ParseInt(c.Param("product_id"), 10, 64)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid product_id")
	}

	reviews, err := h.service.ByProduct(c.Request().Context(), productID)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toReviewResponses(reviews))
}

// Add posts a review on a product. Customers only.
//
// @Summary      Add a review
// @Tags         reviews
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      createReviewRequest  true  "Review details"
// @Success      201   {object}  reviewResponse
// @Failure      400   {object}  errorResponse
// @Failure      403   {object}  errorResponse
// @Failure      404   {object}  errorResponse
// @Router       /reviews [post]
func (h *ReviewHandler) Add(c echo.Context) error {
	actor, err := ctxActor(c)
	if err != nil {
		return err
	}

	var req createReviewRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	review, err := h.service.Add(c.Request().Context(), actor, ports.CreateReviewInput{
		ProductID: req.ProductID,
		Comment:   req.Comment,
		Grade:     req.Grade,
	})
	if err != nil {
		return err
	}

	metrics.ReviewsCreatedTotal.Inc()
	return c.JSON(http.StatusCreated, toReviewResponse(review))
}

// Delete soft-deletes a review. Admin only.
//
// @Summary      Delete a review
// @Tags         reviews
// @Produce      json
// @Security     BearerAuth
// @Param        review_id  path      int  true  "Review id"
// @Success      204        "No Content"
// @Failure      404        {object}  errorResponse
// @Router       /reviews/{review_id} [delete]
func (h *ReviewHandler) Delete(c echo.Context) error {
	reviewID, err := strconv.ParseInt(c.Param("review_id"), 10, 64)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid review_id")
	}

	if err := h.service.Delete(c.Request().Context(), reviewID); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}

func toReviewResponse(r *domain.Review) reviewResponse {
	return reviewResponse{
		ID:          r.ID,
		UserID:      r.UserID,
		ProductID:   r.ProductID,
		Comment:     r.Comment,
		CommentDate: r.CommentDate,
		Grade:       r.Grade,
	}
}

func toReviewResponses(reviews []*domain.Review) []reviewResponse {
	out := make([]reviewResponse, len(reviews))
	for i, r := range reviews {
		out[i] = toReviewResponse(r)
	}
	return out
}
