package main

import (
	"context"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/sirupsen/logrus"

	"storefront/internal/config"
	"storefront/internal/gateway"
	"storefront/internal/tracing"
)

func main() {
	log := logrus.New()

	cfg, err := config.LoadGateway()
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	tracer, shutdown, err := tracing.Init("gateway-service")
	if err != nil {
		log.Fatalf("tracing init: %v", err)
	}
	defer func() {
		_ = shutdown(context.Background())
	}()

	client := gateway.NewClient(cfg.CatalogURL, gateway.DefaultTimeout)
	aggregator := gateway.NewAggregator(client, tracer, log)
	gatewayHandler := gateway.NewHandler(aggregator)

	e := echo.New()
	gateway.Register(e, gatewayHandler)

	log.Infof("Starting gateway service on port %s, upstream catalog at %s", cfg.Port, cfg.CatalogURL)
	if err := e.Start(":" + cfg.Port); err != nil && err != http.ErrServerClosed {
		log.Fatalf("server start: %v", err)
	}
}
