package config

import "github.com/caarlos0/env/v11"

// Catalog holds the catalog service configuration.
type Catalog struct {
	Port      string `env:"CATALOG_PORT" envDefault:"8002"`
	RedisAddr string `env:"CATALOG_REDIS_ADDR"`
	RedisPass string `env:"CATALOG_REDIS_PASSWORD"`
	RedisDB   int    `env:"CATALOG_REDIS_DB" envDefault:"0"`
}

// Gateway holds the gateway service configuration.
type Gateway struct {
	Port       string `env:"GATEWAY_PORT" envDefault:"8001"`
	CatalogURL string `env:"CATALOG_URL" envDefault:"http://localhost:8002"`
}

// LoadCatalog builds the catalog config from the environment.
func LoadCatalog() (*Catalog, error) {
	cfg := &Catalog{}
	if err := env.Parse(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

// LoadGateway builds the gateway config from the environment.
func LoadGateway() (*Gateway, error) {
	cfg := &Gateway{}
	if err := env.Parse(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}
