package config

import (
	"time"

	"github.com/ilyakaznacheev/cleanenv"
)

// Config is the root application configuration, read from the
// environment (a .env file is autoloaded by the entrypoint).
type Config struct {
	Server  ServerConfig
	Storage StorageConfig
	Auth    AuthConfig
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Port int `env:"PORT" env-default:"8080"`
}

// StorageConfig selects and parameterizes the repository backing.
//
// Driver "memory" is the process-local default used by the demo
// console; "dynamodb" swaps in the DynamoDB repositories without
// changing any call site.
type StorageConfig struct {
	Driver string `env:"STORAGE_DRIVER" env-default:"memory"`

	CustomersTable string `env:"CUSTOMERS_TABLE" env-default:"customers"`
	ServicesTable  string `env:"SERVICES_TABLE"  env-default:"services"`
	ProductsTable  string `env:"PRODUCTS_TABLE"  env-default:"products"`
	EstimatesTable string `env:"ESTIMATES_TABLE" env-default:"estimates"`
}

// AuthConfig holds session token settings for the local auth provider.
type AuthConfig struct {
	TokenSecret string        `env:"AUTH_TOKEN_SECRET" env-default:"oneflow-local-dev-secret"`
	TokenIssuer string        `env:"AUTH_TOKEN_ISSUER" env-default:"oneflow"`
	TokenTTL    time.Duration `env:"AUTH_TOKEN_TTL"    env-default:"24h"`
}

func Load() (Config, error) {
	var cfg Config
	if err := cleanenv.ReadEnv(&cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}
