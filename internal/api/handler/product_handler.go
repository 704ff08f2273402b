package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/goodmart/ecommerce-api/internal/api/metrics"
	"github.com/goodmart/ecommerce-api/internal/core/domain"
	"github.com/goodmart/ecommerce-api/internal/core/ports"
)

type ProductHandler struct {
	service ports.ProductService
}

func NewProductHandler(service ports.ProductService) *ProductHandler {
	return &ProductHandler{service: service}
}

// List returns all active in-stock products.
//
// @Summary      List products
// @Tags         products
// @Produce      json
// @Success      200  {array}  productResponse
// @Router       /products [get]
func (h *ProductHandler) List(c echo.Context) error {
	products, err := h.service.List(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toProductResponses(products))
}

// ByCategory returns products of a category and its direct children.
//
// @Summary      List products by category
// @Tags         products
// @Produce      json
// @Param        category_slug  path      string  true  "Category slug"
// @Success      200            {array}   productResponse
// @Failure      404            {object}  errorResponse
// @Router       /products/{category_slug} [get]
func (h *ProductHandler) ByCategory(c echo.Context) error {
	products, err := h.service.ByCategory(c.Request().Context(), c.Param("category_slug"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toProductResponses(products))
}

// Detail returns a single sellable product by slug.
//
// @Summary      Get product detail
// @Tags         products
// @Produce      json
// @Param        product_slug  path      string  true  "Product slug"
// @Success      200           {object}  productResponse
// @Failure      404           {object}  errorResponse
// @Router       /products/detail/{product_slug} [get]
func (h *ProductHandler) Detail(c echo.Context) error {
	product, err := h.service.Detail(c.Request().Context(), c.Param("product_slug"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toProductResponse(product))
}

// Create adds a new product owned by the calling supplier.
//
// @Summary      Create a product
// @Tags         products
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      createProductRequest  true  "Product details"
// @Success      201   {object}  productResponse
// @Failure      400   {object}  errorResponse
// @Failure      403   {object}  errorResponse
// @Failure      404   {object}  errorResponse
// @Router       /products [post]
func (h *ProductHandler) Create(c echo.Context) error {
	actor, err := ctxActor(c)
	if err != nil {
		return err
	}

	var req createProductRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	product, err := h.service.Create(c.Request().Context(), actor, toProductInput(req))
	if err != nil {
		return err
	}

	metrics.ProductsCreatedTotal.Inc()
	return c.JSON(http.StatusCreated, toProductResponse(product))
}

// Update replaces a product's fields. Owner or admin only.
//
// @Summary      Update a product
// @Tags         products
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        product_slug  path      string                true  "Product slug"
// @Param        body          body      createProductRequest  true  "Product details"
// @Success      200           {object}  productResponse
// @Failure      403           {object}  errorResponse
// @Failure      404           {object}  errorResponse
// @Router       /products/{product_slug} [put]
func (h *ProductHandler) Update(c echo.Context) error {
	actor, err := ctxActor(c)
	if err != nil {
		return err
	}

	var req createProductRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	product, err := h.service.Update(c.Request().Context(), actor, c.Param("product_slug"), toProductInput(req))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toProductResponse(product))
}

// Delete soft-deletes a product. Owner or admin only.
//
// @Summary      Delete a product
// @Tags         products
// @Produce      json
// @Security     BearerAuth
// @Param        product_slug  path      string  true  "Product slug"
// @Success      204           "No Content"
// @Failure      403           {object}  errorResponse
// @Failure      404           {object}  errorResponse
// @Router       /products/{product_slug} [delete]
func (h *ProductHandler) Delete(c echo.Context) error {
	actor, err := ctxActor(c)
	if err != nil {
		return err
	}

	if err := h.service.Delete(c.Request().Context(), actor, c.Param("product_slug")); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}

func toProductInput(req createProductRequest) ports.CreateProductInput {
	return ports.CreateProductInput{
		Name:        req.Name,
		Description: req.Description,
		Price:       req.Price,
		ImageURL:    req.ImageURL,
		Stock:       req.Stock,
		CategoryID:  req.CategoryID,
	}
}

func toProductResponse(p *domain.Product) productResponse {
	return productResponse{
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
	}
}

func toProductResponses(products []*domain.Product) []productResponse {
	out := make([]productResponse, len(products))
	for i, p := range products {
		out[i] = toProductResponse(p)
	}
	return out
}
