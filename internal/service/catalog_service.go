package service

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"storefront/internal/cache"
	"storefront/internal/model"
	"storefront/internal/store"
	"storefront/internal/tracing"
)

const productCacheTTL = 5 * time.Minute

// CatalogService exposes the catalog domain operations. Every operation
// opens a span on the request context and tags it with what it touched.
type CatalogService interface {
	List(ctx context.Context, category string) []model.Product
	Get(ctx context.Context, id int) (model.Product, error)
	Create(ctx context.Context, name string, price float64, category string, stock int) model.Product
	Update(ctx context.Context, id int, patch model.ProductPatch) (model.Product, error)
	Delete(ctx context.Context, id int) error
	Categories(ctx context.Context) []string
	Stats(ctx context.Context) model.ProductStats
}

type catalogService struct {
	store  *store.Store
	cache  *cache.Client
	tracer trace.Tracer
	log    *logrus.Logger
}

// NewCatalogService builds a CatalogService over the store, with an
// optional fail-safe cache for by-id reads.
func NewCatalogService(st *store.Store, c *cache.Client, tracer trace.Tracer, log *logrus.Logger) CatalogService {
	return &catalogService{store: st, cache: c, tracer: tracer, log: log}
}

func (s *catalogService) cacheKey(id int) string {
	return fmt.Sprintf("product:%d", id)
}

func (s *catalogService) List(ctx context.Context, category string) []model.Product {
	_, span := s.tracer.Start(ctx, "get-products")
	defer span.End()
	s.log.Info("Fetching all products")
	if category != "" {
		span.SetAttributes(attribute.String("filter.category", category))
	}
	return s.store.List(category)
}

func (s *catalogService) Get(ctx context.Context, id int) (model.Product, error) {
	ctx, span := s.tracer.Start(ctx, "get-product-by-id")
	defer span.End()
	span.SetAttributes(attribute.Int("product.id", id))
	s.log.WithField("product_id", id).Info("Fetching product")

	if data, _ := s.cache.Get(ctx, s.cacheKey(id)); data != nil {
		var cached model.Product
		if err := json.Unmarshal(data, &cached); err == nil {
			return cached, nil
		}
	}

	p, err := s.store.Get(id)
	if err != nil {
		tracing.Error(span)
		return model.Product{}, err
	}
	if payload, err := json.Marshal(p); err == nil {
		_ = s.cache.Set(ctx, s.cacheKey(id), payload, productCacheTTL)
	}
	return p, nil
}

func (s *catalogService) Create(ctx context.Context, name string, price float64, category string, stock int) model.Product {
	ctx, span := s.tracer.Start(ctx, "create-product")
	defer span.End()
	s.log.Info("Creating new product")

	p := s.store.Create(name, price, category, stock)
	span.SetAttributes(attribute.Int("product.id", p.ID))
	// a new product can reuse the id of a deleted one, so drop any stale entry
	_ = s.cache.Delete(ctx, s.cacheKey(p.ID))
	return p
}

func (s *catalogService) Update(ctx context.Context, id int, patch model.ProductPatch) (model.Product, error) {
	ctx, span := s.tracer.Start(ctx, "update-product")
	defer span.End()
	span.SetAttributes(attribute.Int("product.id", id))
	s.log.WithField("product_id", id).Info("Updating product")

	p, err := s.store.Update(id, patch)
	if err != nil {
		tracing.Error(span)
		return model.Product{}, err
	}
	_ = s.cache.Delete(ctx, s.cacheKey(id))
	return p, nil
}

func (s *catalogService) Delete(ctx context.Context, id int) error {
	ctx, span := s.tracer.Start(ctx, "delete-product")
	defer span.End()
	span.SetAttributes(attribute.Int("product.id", id))
	s.log.WithField("product_id", id).Info("Deleting product")

	if err := s.store.Delete(id); err != nil {
		tracing.Error(span)
		return err
	}
	_ = s.cache.Delete(ctx, s.cacheKey(id))
	return nil
}

func (s *catalogService) Categories(ctx context.Context) []string {
	_, span := s.tracer.Start(ctx, "get-categories")
	defer span.End()
	s.log.Info("Fetching all categories")
	return s.store.Categories()
}

func (s *catalogService) Stats(ctx context.Context) model.ProductStats {
	_, span := s.tracer.Start(ctx, "get-stats")
	defer span.End()
	s.log.Info("Fetching product statistics")
	return s.store.Stats()
}
