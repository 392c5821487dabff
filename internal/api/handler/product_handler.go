package handler

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/99minutos/user-catalog-api/internal/core/domain"
	"github.com/99minutos/user-catalog-api/internal/core/ports"
)

// ProductHandler serves the open product catalog. Its not-found and success
// bodies keep the catalog's historical shapes: plain JSON strings and
// {"error": ...} objects.
type ProductHandler struct {
	catalog ports.CatalogService
}

func NewProductHandler(catalog ports.CatalogService) *ProductHandler {
	return &ProductHandler{catalog: catalog}
}

// List returns every product.
//
// @Summary      List products
// @Tags         products
// @Produce      json
// @Success      200  {array}  domain.Product
// @Router       /products [get]
func (h *ProductHandler) List(c echo.Context) error {
	products, err := h.catalog.List(c.Request().Context())
	if err != nil {
		return err
	}
	if products == nil {
		products = []domain.Product{}
	}
	return c.JSON(http.StatusOK, products)
}

// Get returns one product.
//
// @Summary      Get a product
// @Tags         products
// @Produce      json
// @Param        id   path      int  true  "Product id"
// @Success      200  {object}  domain.Product
// @Failure      404  {string}  string
// @Router       /products/{id} [get]
func (h *ProductHandler) Get(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}

	product, err := h.catalog.Get(c.Request().Context(), id)
	if errors.Is(err, domain.ErrNotFound) {
		return c.JSON(http.StatusNotFound, fmt.Sprintf("No Product found with product id :%d", id))
	}
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, product)
}

// Create adds a product and returns it with its id.
//
// @Summary      Create a product
// @Tags         products
// @Accept       json
// @Produce      json
// @Param        body  body      productRequest  true  "Product"
// @Success      200   {object}  domain.Product
// @Failure      422   {object}  messageResponse
// @Router       /products [post]
func (h *ProductHandler) Create(c echo.Context) error {
	var req productRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	product, err := h.catalog.Create(c.Request().Context(), req.toDomain())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, product)
}

// Update overwrites the fields that are set in the body.
//
// @Summary      Update a product
// @Tags         products
// @Accept       json
// @Produce      json
// @Param        id    path      int                  true  "Product id"
// @Param        body  body      productPatchRequest  true  "Fields to change"
// @Success      200   {string}  string
// @Failure      404   {object}  productErrorResponse
// @Router       /products/{id} [put]
func (h *ProductHandler) Update(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}

	var req productPatchRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	_, err = h.catalog.Update(c.Request().Context(), id, req.toDomain())
	if errors.Is(err, domain.ErrNotFound) {
		return c.JSON(http.StatusNotFound, productErrorResponse{Error: "no such Product exists to update"})
	}
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, fmt.Sprintf("product with id : %d updated successfully", id))
}

// Delete removes a product.
//
// @Summary      Delete a product
// @Tags         products
// @Produce      json
// @Param        id   path      int  true  "Product id"
// @Success      200  {string}  string
// @Failure      404  {object}  productErrorResponse
// @Router       /products/{id} [delete]
func (h *ProductHandler) Delete(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}

	err = h.catalog.Delete(c.Request().Context(), id)
	if errors.Is(err, domain.ErrNotFound) {
		return c.JSON(http.StatusNotFound, productErrorResponse{Error: "Product not found"})
	}
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, fmt.Sprintf("Product with id : %d deleted successfully", id))
}
