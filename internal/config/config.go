package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/go-ozzo/ozzo-validation/v4/is"
)

// Config holds the whole application configuration.
// It is populated from environment variables (optionally via a .env file).
type Config struct {
	App     AppConfig
	Log     LogConfig
	GraphQL GraphQLConfig
	Catalog CatalogConfig
}

type AppConfig struct {
	Name        string
	Environment string // development, staging, production
	Port        string
	Version     string
}

type LogConfig struct {
	Level string // trace, debug, info, warn, error
}

type GraphQLConfig struct {
	Path           string
	MaxDepth       int
	MaxParallelism int
	Playground     bool
}

type CatalogConfig struct {
	SeedFile string // empty starts with an empty catalog
}

// Load reads config from environment variables.
func Load() (*Config, error) {
	env := getEnv("APP_ENV", "development")

	cfg := &Config{
		App: AppConfig{
			Name:        getEnv("APP_NAME", "Library API"),
			Environment: env,
			Port:        getEnv("APP_PORT", "4000"),
			Version:     getEnv("APP_VERSION", "1.0.0"),
		},
		Log: LogConfig{
			Level: getEnv("LOG_LEVEL", "info"),
		},
		GraphQL: GraphQLConfig{
			Path:           getEnv("GRAPHQL_PATH", "/graphql"),
			MaxDepth:       getEnvInt("GRAPHQL_MAX_DEPTH", 10),
			MaxParallelism: getEnvInt("GRAPHQL_MAX_PARALLELISM", 10),
			Playground:     getEnvBool("GRAPHQL_PLAYGROUND", env != "production"),
		},
		Catalog: CatalogConfig{
			SeedFile: getEnv("CATALOG_SEED_FILE", ""),
		},
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return cfg, nil
}

// Validate checks that the config is usable.
func (c *Config) Validate() error {
	if err := validation.ValidateStruct(&c.App,
		validation.Field(&c.App.Name, validation.Required),
		validation.Field(&c.App.Environment, validation.Required, validation.In("development", "staging", "production", "test")),
		validation.Field(&c.App.Port, validation.Required, is.Port),
	); err != nil {
		return fmt.Errorf("app: %w", err)
	}

	if err := validation.ValidateStruct(&c.Log,
		validation.Field(&c.Log.Level, validation.In("trace", "debug", "info", "warn", "error")),
	); err != nil {
		return fmt.Errorf("log: %w", err)
	}

	if err := validation.ValidateStruct(&c.GraphQL,
		validation.Field(&c.GraphQL.Path, validation.Required, validation.By(startsWithSlash)),
		validation.Field(&c.GraphQL.MaxDepth, validation.Min(0)),
		validation.Field(&c.GraphQL.MaxParallelism, validation.Min(0)),
	); err != nil {
		return fmt.Errorf("graphql: %w", err)
	}

	return nil
}

func startsWithSlash(value interface{}) error {
	s, _ := value.(string)
	if !strings.HasPrefix(s, "/") {
		return fmt.Errorf("must start with /")
	}
	return nil
}

// Helper functions
func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

func getEnvInt(key string, defaultValue int) int {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}
	value, err := strconv.Atoi(valueStr)
	if err != nil {
		return defaultValue
	}
	return value
}

func getEnvBool(key string, defaultValue bool) bool {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}
	value, err := strconv.ParseBool(valueStr)
	if err != nil {
		return defaultValue
	}
	return value
}
