package gateway

import (
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/google/uuid"

	"storefront/internal/model"
)

// DefaultTimeout bounds the single attempt against the catalog.
const DefaultTimeout = 5 * time.Second

// Client issues the bounded call to the catalog service. One attempt per
// request, no retry; every failure mode (timeout, refused connection,
// non-2xx status, malformed payload) surfaces as a plain error.
type Client struct {
	baseURL string
	http    *http.Client
}

// NewClient builds a catalog client for the given base URL.
func NewClient(baseURL string, timeout time.Duration) *Client {
	return &Client{
		baseURL: baseURL,
		http:    &http.Client{Timeout: timeout},
	}
}

type listEnvelope struct {
	Success bool            `json:"success"`
	Data    []model.Product `json:"data"`
}

// FetchProducts fetches the catalog's current product list. The call is
// bounded by the client timeout, not the caller's context: a disconnecting
// client does not cancel the in-flight request.
func (c *Client) FetchProducts() ([]model.Product, error) {
	req, err := http.NewRequest(http.MethodGet, c.baseURL+"/api/products", nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("X-Request-ID", uuid.NewString())

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, fmt.Errorf("catalog service returned status %d", resp.StatusCode)
	}

	var envelope listEnvelope
	if err := json.NewDecoder(resp.Body).Decode(&envelope); err != nil {
		return nil, fmt.Errorf("decode catalog response: %w", err)
	}
	if envelope.Data == nil {
		return []model.Product{}, nil
	}
	return envelope.Data, nil
}
