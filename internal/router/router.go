package router

import (
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"storefront/internal/handler"
)

// Register wires the catalog routes and middleware.
func Register(e *echo.Echo, catalogHandler *handler.CatalogHandler) {
	e.Use(middleware.RequestID())
	e.Use(middleware.Logger())
	e.Use(middleware.Recover())
	e.Use(middleware.CORS())

	e.Validator = &CustomValidator{validator: validator.New()}
	e.HTTPErrorHandler = envelopeErrorHandler

	e.GET("/", catalogHandler.Banner)
	e.GET("/health", catalogHandler.Health)

	api := e.Group("/api")
	api.GET("/products", catalogHandler.ListProducts)
	api.GET("/products/:id", catalogHandler.GetProduct)
	api.POST("/products", catalogHandler.CreateProduct)
	api.PUT("/products/:id", catalogHandler.UpdateProduct)
	api.DELETE("/products/:id", catalogHandler.DeleteProduct)
	api.GET("/categories", catalogHandler.ListCategories)
	api.GET("/stats", catalogHandler.GetStats)
}

// envelopeErrorHandler shapes errors that escape the handlers into the
// response envelope: unmatched routes become a 404 with a fixed message,
// everything unanticipated becomes a 500 with no internal detail.
func envelopeErrorHandler(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}
	code := http.StatusInternalServerError
	if he, ok := err.(*echo.HTTPError); ok {
		code = he.Code
	}
	resp := handler.Envelope{Success: false}
	switch {
	case code == http.StatusNotFound || code == http.StatusMethodNotAllowed:
		code = http.StatusNotFound
		resp.Error = "Endpoint not found"
	case code < http.StatusInternalServerError:
		resp.Error = http.StatusText(code)
	default:
		code = http.StatusInternalServerError
		resp.Error = "Internal server error"
	}
	_ = c.JSON(code, resp)
}

// CustomValidator wraps validator for Echo.
type CustomValidator struct {
	validator *validator.Validate
}

// Validate implements echo.Validator interface.
func (cv *CustomValidator) Validate(i interface{}) error {
	return cv.validator.Struct(i)
}
