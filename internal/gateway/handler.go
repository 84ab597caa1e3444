package gateway

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
)

// Handler exposes the gateway HTTP surface.
type Handler struct {
	aggregator *Aggregator
}

// NewHandler creates the handler layer.
func NewHandler(aggregator *Aggregator) *Handler {
	return &Handler{aggregator: aggregator}
}

// Register wires the gateway routes and middleware. The user id is fixed
// in the path: this is a single-user demo, not a lookup.
func Register(e *echo.Echo, h *Handler) {
	e.Use(middleware.RequestID())
	e.Use(middleware.Logger())
	e.Use(middleware.Recover())
	e.Use(middleware.CORS())

	e.GET("/health", h.Health)
	e.GET("/api/users/1/products", h.UserProducts)
}

// Health godoc
// @Summary Health check
// @Produce json
// @Success 200 {object} map[string]string
// @Router /health [get]
func (h *Handler) Health(c echo.Context) error {
	return c.JSON(http.StatusOK, echo.Map{
		"status":  "UP",
		"service": "gateway-service",
	})
}

// UserProducts godoc
// @Summary User plus current catalog products
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Failure 503 {object} map[string]string
// @Router /api/users/1/products [get]
func (h *Handler) UserProducts(c echo.Context) error {
	user, products, err := h.aggregator.UserProducts(c.Request().Context())
	if err != nil {
		return c.JSON(http.StatusServiceUnavailable, echo.Map{"error": err.Error()})
	}
	return c.JSON(http.StatusOK, echo.Map{
		"user":     user,
		"products": products,
	})
}
