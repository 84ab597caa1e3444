package errors

import (
	"errors"
	"net/http"
)

var (
	// ErrProductNotFound is returned when the referenced product id does not exist.
	ErrProductNotFound = errors.New("Product not found")
	// ErrMissingFields is returned when a create request omits a required field.
	ErrMissingFields = errors.New("Missing required fields: name, price, category")
)

// StatusFor maps domain errors to HTTP status codes. Anything unrecognized
// is an internal failure and maps to 500.
func StatusFor(err error) int {
	switch {
	case errors.Is(err, ErrProductNotFound):
		return http.StatusNotFound
	case errors.Is(err, ErrMissingFields):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

// MessageFor returns the caller-visible error text for err. Internal
// failures collapse to a generic message so no detail leaks.
func MessageFor(err error) string {
	if StatusFor(err) == http.StatusInternalServerError {
		return "Internal server error"
	}
	return err.Error()
}
