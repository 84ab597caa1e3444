package gateway

import (
	"context"

	"github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/trace"

	"storefront/internal/model"
	"storefront/internal/tracing"
)

// Aggregator composes the gateway's static user with a live catalog
// snapshot. The user is the only identity the gateway knows; there is no
// lookup table behind it.
type Aggregator struct {
	user   model.User
	client *Client
	tracer trace.Tracer
	log    *logrus.Logger
}

// NewAggregator seeds the static user and wires the catalog client.
func NewAggregator(client *Client, tracer trace.Tracer, log *logrus.Logger) *Aggregator {
	return &Aggregator{
		user:   model.User{ID: 1, Name: "Alice Silva", Role: "admin"},
		client: client,
		tracer: tracer,
		log:    log,
	}
}

// UserProducts returns the static user together with the catalog's current
// product list. A single attempt is made; any failure is returned as-is
// for the handler to degrade on.
func (a *Aggregator) UserProducts(ctx context.Context) (model.User, []model.Product, error) {
	_, span := a.tracer.Start(ctx, "call-catalog-service")
	defer span.End()

	products, err := a.client.FetchProducts()
	if err != nil {
		tracing.Error(span)
		a.log.WithError(err).Warn("catalog call failed")
		return model.User{}, nil, err
	}
	return a.user, products, nil
}
