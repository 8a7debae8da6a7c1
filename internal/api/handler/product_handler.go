package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/mercadillo/storefront/internal/api/metrics"
	"github.com/mercadillo/storefront/internal/core/ports"
)

type ProductHandler struct {
	productService ports.ProductService
}

func NewProductHandler(productService ports.ProductService) *ProductHandler {
	return &ProductHandler{productService: productService}
}

// List returns the whole catalog.
//
// @Summary      List products
// @Tags         products
// @Produce      json
// @Success      200  {array}   domain.Product
// @Failure      401  {object}  map[string]string
// @Router       /api/products [get]
func (h *ProductHandler) List(c echo.Context) error {
	products, err := h.productService.List(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, products)
}

// Get returns one product by ref.
//
// @Summary      Get a product
// @Tags         products
// @Produce      json
// @Param        ref  path      string  true  "Product ref"
// @Success      200  {object}  domain.Product
// @Failure      404  {object}  map[string]string
// @Router       /api/products/{ref} [get]
func (h *ProductHandler) Get(c echo.Context) error {
	product, err := h.productService.Get(c.Request().Context(), c.Param("ref"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, product)
}

// Create adds a catalog entry. Admin only.
//
// @Summary      Create a product
// @Tags         products
// @Accept       json
// @Produce      json
// @Param        body  body      createProductRequest  true  "Product details"
// @Success      201   {object}  domain.Product
// @Failure      403   {object}  map[string]string
// @Failure      409   {object}  map[string]string
// @Router       /api/products [post]
func (h *ProductHandler) Create(c echo.Context) error {
	var req createProductRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	product, err := h.productService.Create(c.Request().Context(), ports.ProductInput{
		Ref:   req.Ref,
		Name:  req.Name,
		Price: req.Price,
		Stock: req.Stock,
	})
	if err != nil {
		return err
	}

	metrics.ProductOpsTotal.WithLabelValues("create").Inc()
	return c.JSON(http.StatusCreated, product)
}

// Update replaces the writable fields of a product. Admin only.
//
// @Summary      Update a product
// @Tags         products
// @Accept       json
// @Produce      json
// @Param        ref   path      string                true  "Product ref"
// @Param        body  body      updateProductRequest  true  "New product details"
// @Success      200   {object}  domain.Product
// @Failure      403   {object}  map[string]string
// @Failure      404   {object}  map[string]string
// @Router       /api/products/{ref} [put]
func (h *ProductHandler) Update(c echo.Context) error {
	var req updateProductRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	product, err := h.productService.Update(c.Request().Context(), c.Param("ref"), ports.ProductInput{
		Name:  req.Name,
		Price: req.Price,
		Stock: req.Stock,
	})
	if err != nil {
		return err
	}

	metrics.ProductOpsTotal.WithLabelValues("update").Inc()
	return c.JSON(http.StatusOK, product)
}

// Delete removes a product. Admin only.
//
// @Summary      Delete a product
// @Tags         products
// @Produce      json
// @Param        ref  path  string  true  "Product ref"
// @Success      204  "deleted"
// @Failure      403  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /api/products/{ref} [delete]
func (h *ProductHandler) Delete(c echo.Context) error {
	if err := h.productService.Delete(c.Request().Context(), c.Param("ref")); err != nil {
		return err
	}
	metrics.ProductOpsTotal.WithLabelValues("delete").Inc()
	return c.NoContent(http.StatusNoContent)
}
