package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/goodmart/ecommerce-api/internal/core/domain"
	"github.com/goodmart/ecommerce-api/internal/core/ports"
)

type CategoryHandler struct {
	service ports.CategoryService
}

func NewCategoryHandler(service ports.CategoryService) *CategoryHandler {
	return &CategoryHandler{service: service}
}

// List returns all active categories.
//
// @Summary      List categories
// @Tags         categories
// @Produce      json
// @Success      200  {array}  categoryResponse
// @Router       /categories [get]
func (h *CategoryHandler) List(c echo.Context) error {
	categories, err := h.service.List(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toCategoryResponses(categories))
}

// Create adds a new category.
//
// @Summary      Create a category
// @Tags         categories
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      createCategoryRequest  true  "Category details"
// @Success      201   {object}  categoryResponse
// @Failure      400   {object}  errorResponse
// @Failure      403   {object}  errorResponse
// @Router       /categories [post]
func (h *CategoryHandler) Create(c echo.Context) error {
	var req createCategoryRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	category, err := h.service.Create(c.Request().Context(), ports.CreateCategoryInput{
		Name:     req.Name,
		ParentID: req.ParentID,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, toCategoryResponse(category))
}

// Update renames or re-parents a category by slug.
//
// @Summary      Update a category
// @Tags         categories
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        category_slug  path      string                 true  "Category slug"
// @Param        body           body      createCategoryRequest  true  "Category details"
// @Success      200            {object}  categoryResponse
// @Failure      404            {object}  errorResponse
// @Router       /categories/{category_slug} [put]
func (h *CategoryHandler) Update(c echo.Context) error {
	var req createCategoryRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	category, err := h.service.Update(c.Request().Context(), c.Param("category_slug"), ports.CreateCategoryInput{
		Name:     req.Name,
		ParentID: req.ParentID,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toCategoryResponse(category))
}

// Delete soft-deletes a category by slug.
//
// @Summary      Delete a category
// @Tags         categories
// @Produce      json
// @Security     BearerAuth
// @Param        category_slug  path      string  true  "Category slug"
// @Success      204            "No Content"
// @Failure      404            {object}  errorResponse
// @Router       /categories/{category_slug} [delete]
func (h *CategoryHandler) Delete(c echo.Context) error {
	if err := h.service.Delete(c.Request().Context(), c.Param("category_slug")); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}

func toCategoryResponse(cat *domain.Category) categoryResponse {
	return categoryResponse{
		ID:       cat.ID,
		Name:     cat.Name,
		Slug:     cat.Slug,
		ParentID: cat.ParentID,
	}
}

func toCategoryResponses(categories []*domain.Category) []categoryResponse {
	out := make([]categoryResponse, len(categories))
	for i, cat := range categories {
		out[i] = toCategoryResponse(cat)
	}
	return out
}
