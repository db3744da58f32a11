package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	for _, key := range []string{"APP_NAME", "APP_ENV", "APP_PORT", "APP_VERSION", "LOG_LEVEL",
		"GRAPHQL_PATH", "GRAPHQL_MAX_DEPTH", "GRAPHQL_MAX_PARALLELISM", "GRAPHQL_PLAYGROUND", "CATALOG_SEED_FILE"} {
		t.Setenv(key, "")
	}

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "development", cfg.App.Environment)
	assert.Equal(t, "4000", cfg.App.Port)
	assert.Equal(t, "info", cfg.Log.Level)
	assert.Equal(t, "/graphql", cfg.GraphQL.Path)
	assert.Equal(t, 10, cfg.GraphQL.MaxDepth)
	assert.Equal(t, 10, cfg.GraphQL.MaxParallelism)
	assert.True(t, cfg.GraphQL.Playground)
	assert.Empty(t, cfg.Catalog.SeedFile)
}

func TestLoad_FromEnv(t *testing.T) {
	t.Setenv("APP_ENV", "production")
	t.Setenv("APP_PORT", "8081")
	t.Setenv("LOG_LEVEL", "debug")
	t.Setenv("GRAPHQL_PATH", "/api/graphql")
	t.Setenv("GRAPHQL_MAX_DEPTH", "5")
	t.Setenv("GRAPHQL_MAX_PARALLELISM", "not-a-number")
	t.Setenv("GRAPHQL_PLAYGROUND", "")
	t.Setenv("CATALOG_SEED_FILE", "testdata/seed.yaml")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "8081", cfg.App.Port)
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, "/api/graphql", cfg.GraphQL.Path)
	assert.Equal(t, 5, cfg.GraphQL.MaxDepth)
	assert.Equal(t, 10, cfg.GraphQL.MaxParallelism)
	assert.False(t, cfg.GraphQL.Playground)
	assert.Equal(t, "testdata/seed.yaml", cfg.Catalog.SeedFile)
}

func TestValidate(t *testing.T) {
	valid := func() *Config {
		return &Config{
			App:     AppConfig{Name: "Library API", Environment: "development", Port: "4000"},
			Log:     LogConfig{Level: "info"},
			GraphQL: GraphQLConfig{Path: "/graphql", MaxDepth: 10, MaxParallelism: 10},
		}
	}

	tests := []struct {
		name   string
		mutate func(c *Config)
		errMsg string
	}{
		{name: "valid", mutate: func(c *Config) {}},
		{name: "bad environment", mutate: func(c *Config) { c.App.Environment = "qa" }, errMsg: "app"},
		{name: "bad port", mutate: func(c *Config) { c.App.Port = "http" }, errMsg: "app"},
		{name: "bad log level", mutate: func(c *Config) { c.Log.Level = "loud" }, errMsg: "log"},
		{name: "relative graphql path", mutate: func(c *Config) { c.GraphQL.Path = "graphql" }, errMsg: "graphql"},
		{name: "negative depth", mutate: func(c *Config) { c.GraphQL.MaxDepth = -1 }, errMsg: "graphql"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := valid()
			tt.mutate(cfg)
			err := cfg.Validate()
			if tt.errMsg == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.errMsg)
		})
	}
}
