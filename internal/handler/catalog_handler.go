package handler

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	apperrors "storefront/internal/errors"
	"storefront/internal/model"
	"storefront/internal/service"
)

// CatalogHandler bundles the catalog HTTP handlers.
type CatalogHandler struct {
	svc  service.CatalogService
	port int
}

// NewCatalogHandler creates the handler layer. port is echoed back by the
// health endpoint.
func NewCatalogHandler(svc service.CatalogService, port int) *CatalogHandler {
	return &CatalogHandler{svc: svc, port: port}
}

// CreateProductRequest is the create payload. Required fields are pointers
// so a missing field is distinguishable from a zero value.
type CreateProductRequest struct {
	Name     *string  `json:"name" validate:"required"`
	Price    *float64 `json:"price" validate:"required"`
	Category *string  `json:"category" validate:"required"`
	Stock    *int     `json:"stock"`
}

// Banner godoc
// @Summary Service banner
// @Produce json
// @Success 200 {object} map[string]string
// @Router / [get]
func (h *CatalogHandler) Banner(c echo.Context) error {
	return c.JSON(http.StatusOK, echo.Map{
		"service": "Catalog Service - Product API",
		"status":  "healthy",
		"version": "1.0.0",
	})
}

// Health godoc
// @Summary Health check
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Router /health [get]
func (h *CatalogHandler) Health(c echo.Context) error {
	return c.JSON(http.StatusOK, echo.Map{
		"status":  "UP",
		"service": "catalog-service",
		"port":    h.port,
	})
}

// ListProducts godoc
// @Summary List products, optionally filtered by category
// @Produce json
// @Param category query string false "Category filter (case-insensitive)"
// @Success 200 {object} Envelope
// @Router /api/products [get]
func (h *CatalogHandler) ListProducts(c echo.Context) error {
	category := c.QueryParam("category")
	products := h.svc.List(c.Request().Context(), category)
	resp := Envelope{
		Success: true,
		Data:    products,
		Count:   countOf(len(products)),
	}
	if category != "" {
		resp.Filter = echo.Map{"category": category}
	}
	return c.JSON(http.StatusOK, resp)
}

// GetProduct godoc
// @Summary Get product by id
// @Produce json
// @Param id path int true "Product ID"
// @Success 200 {object} Envelope
// @Failure 404 {object} Envelope
// @Router /api/products/{id} [get]
func (h *CatalogHandler) GetProduct(c echo.Context) error {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, Envelope{Success: false, Error: "Invalid product id"})
	}
	p, err := h.svc.Get(c.Request().Context(), id)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, Envelope{Success: true, Data: p})
}

// CreateProduct godoc
// @Summary Create a product
// @Accept json
// @Produce json
// @Param product body CreateProductRequest true "Product payload"
// @Success 201 {object} Envelope
// @Failure 400 {object} Envelope
// @Router /api/products [post]
func (h *CatalogHandler) CreateProduct(c echo.Context) error {
	var req CreateProductRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, Envelope{Success: false, Error: "Invalid request body"})
	}
	if err := c.Validate(&req); err != nil {
		return respondError(c, apperrors.ErrMissingFields)
	}
	stock := 0
	if req.Stock != nil {
		stock = *req.Stock
	}
	p := h.svc.Create(c.Request().Context(), *req.Name, *req.Price, *req.Category, stock)
	return c.JSON(http.StatusCreated, Envelope{
		Success: true,
		Data:    p,
		Message: "Product created successfully",
	})
}

// UpdateProduct godoc
// @Summary Partially update a product
// @Accept json
// @Produce json
// @Param id path int true "Product ID"
// @Param product body model.ProductPatch true "Fields to change"
// @Success 200 {object} Envelope
// @Failure 404 {object} Envelope
// @Router /api/products/{id} [put]
func (h *CatalogHandler) UpdateProduct(c echo.Context) error {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, Envelope{Success: false, Error: "Invalid product id"})
	}
	var patch model.ProductPatch
	if err := c.Bind(&patch); err != nil {
		return c.JSON(http.StatusBadRequest, Envelope{Success: false, Error: "Invalid request body"})
	}
	p, err := h.svc.Update(c.Request().Context(), id, patch)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, Envelope{
		Success: true,
		Data:    p,
		Message: "Product updated successfully",
	})
}

// DeleteProduct godoc
// @Summary Delete a product
// @Produce json
// @Param id path int true "Product ID"
// @Success 200 {object} Envelope
// @Failure 404 {object} Envelope
// @Router /api/products/{id} [delete]
func (h *CatalogHandler) DeleteProduct(c echo.Context) error {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, Envelope{Success: false, Error: "Invalid product id"})
	}
	if err := h.svc.Delete(c.Request().Context(), id); err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, Envelope{
		Success: true,
		Message: "Product deleted successfully",
	})
}

// ListCategories godoc
// @Summary List distinct categories
// @Produce json
// @Success 200 {object} Envelope
// @Router /api/categories [get]
func (h *CatalogHandler) ListCategories(c echo.Context) error {
	categories := h.svc.Categories(c.Request().Context())
	return c.JSON(http.StatusOK, Envelope{
		Success: true,
		Data:    categories,
		Count:   countOf(len(categories)),
	})
}

// GetStats godoc
// @Summary Catalog statistics
// @Produce json
// @Success 200 {object} Envelope
// @Router /api/stats [get]
func (h *CatalogHandler) GetStats(c echo.Context) error {
	return c.JSON(http.StatusOK, Envelope{
		Success: true,
		Data:    h.svc.Stats(c.Request().Context()),
	})
}

func respondError(c echo.Context, err error) error {
	return c.JSON(apperrors.StatusFor(err), Envelope{
		Success: false,
		Error:   apperrors.MessageFor(err),
	})
}
