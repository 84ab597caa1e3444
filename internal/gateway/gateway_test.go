package gateway

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel/trace/noop"
)

func newTestGateway(catalogURL string, timeout time.Duration) *echo.Echo {
	log := logrus.New()
	log.SetOutput(io.Discard)
	tracer := noop.NewTracerProvider().Tracer("test")

	aggregator := NewAggregator(NewClient(catalogURL, timeout), tracer, log)

	e := echo.New()
	Register(e, NewHandler(aggregator))
	return e
}

func get(e *echo.Echo, target string) (int, map[string]interface{}) {
	req := httptest.NewRequest(http.MethodGet, target, nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	var decoded map[string]interface{}
	_ = json.Unmarshal(rec.Body.Bytes(), &decoded)
	return rec.Code, decoded
}

func TestGatewayHealth(t *testing.T) {
	e := newTestGateway("http://localhost:0", DefaultTimeout)

	code, body := get(e, "/health")
	assert.Equal(t, http.StatusOK, code)
	assert.Equal(t, "UP", body["status"])
	assert.Equal(t, "gateway-service", body["service"])
}

func TestUserProductsAggregatesCatalog(t *testing.T) {
	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/products", r.URL.Path)
		assert.NotEmpty(t, r.Header.Get("X-Request-ID"))
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"success":true,"data":[{"id":1,"name":"Laptop","price":8999.99,"category":"Electronics","stock":15}],"count":1}`))
	}))
	defer upstream.Close()

	e := newTestGateway(upstream.URL, DefaultTimeout)

	code, body := get(e, "/api/users/1/products")
	assert.Equal(t, http.StatusOK, code)

	user := body["user"].(map[string]interface{})
	assert.Equal(t, float64(1), user["id"])
	assert.Equal(t, "Alice Silva", user["name"])
	assert.Equal(t, "admin", user["role"])

	products := body["products"].([]interface{})
	require.Len(t, products, 1)
	assert.Equal(t, "Laptop", products[0].(map[string]interface{})["name"])
}

func TestUserProductsUpstreamError(t *testing.T) {
	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "boom", http.StatusInternalServerError)
	}))
	defer upstream.Close()

	e := newTestGateway(upstream.URL, DefaultTimeout)

	code, body := get(e, "/api/users/1/products")
	assert.Equal(t, http.StatusServiceUnavailable, code)
	assert.Contains(t, body["error"], "status 500")
	assert.Nil(t, body["user"])
}

func TestUserProductsUpstreamUnreachable(t *testing.T) {
	// grab a port nothing listens on
	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	upstream.Close()

	e := newTestGateway(upstream.URL, DefaultTimeout)

	code, body := get(e, "/api/users/1/products")
	assert.Equal(t, http.StatusServiceUnavailable, code)
	assert.NotEmpty(t, body["error"])
}

func TestUserProductsUpstreamTimeout(t *testing.T) {
	release := make(chan struct{})
	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		<-release
	}))
	defer func() {
		close(release)
		upstream.Close()
	}()

	e := newTestGateway(upstream.URL, 50*time.Millisecond)

	code, body := get(e, "/api/users/1/products")
	assert.Equal(t, http.StatusServiceUnavailable, code)
	assert.NotEmpty(t, body["error"])
}

func TestUserProductsMalformedUpstreamPayload(t *testing.T) {
	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`not json at all`))
	}))
	defer upstream.Close()

	e := newTestGateway(upstream.URL, DefaultTimeout)

	code, body := get(e, "/api/users/1/products")
	assert.Equal(t, http.StatusServiceUnavailable, code)
	assert.Contains(t, body["error"], "decode catalog response")
}
