package main

import (
	"context"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"
	"github.com/sirupsen/logrus"

	"storefront/internal/cache"
	"storefront/internal/config"
	"storefront/internal/handler"
	"storefront/internal/model"
	"storefront/internal/router"
	"storefront/internal/service"
	"storefront/internal/store"
	"storefront/internal/tracing"
)

func seedProducts() []model.Product {
	return []model.Product{
		{ID: 1, Name: "Laptop Dell XPS 15", Price: 8999.99, Category: "Electronics", Stock: 15},
		{ID: 2, Name: "Mouse Logitech MX Master", Price: 349.90, Category: "Accessories", Stock: 50},
		{ID: 3, Name: "Teclado Mecânico Keychron K2", Price: 599.00, Category: "Accessories", Stock: 30},
		{ID: 4, Name: "Monitor LG 27 UltraWide", Price: 2499.00, Category: "Electronics", Stock: 8},
		{ID: 5, Name: "Webcam Logitech C920", Price: 459.90, Category: "Accessories", Stock: 25},
	}
}

func main() {
	log := logrus.New()

	cfg, err := config.LoadCatalog()
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	tracer, shutdown, err := tracing.Init("catalog-service")
	if err != nil {
		log.Fatalf("tracing init: %v", err)
	}
	defer func() {
		_ = shutdown(context.Background())
	}()

	st := store.New()
	st.Seed(seedProducts())

	cacheClient := cache.New(cfg.RedisAddr, cfg.RedisPass, cfg.RedisDB)

	catalogService := service.NewCatalogService(st, cacheClient, tracer, log)

	port, _ := strconv.Atoi(cfg.Port)
	catalogHandler := handler.NewCatalogHandler(catalogService, port)

	e := echo.New()
	router.Register(e, catalogHandler)

	log.Infof("Starting catalog service on port %s", cfg.Port)
	if err := e.Start(":" + cfg.Port); err != nil && err != http.ErrServerClosed {
		log.Fatalf("server start: %v", err)
	}
}
