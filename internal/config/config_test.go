package config

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("API_KEY", "k")

	cfg, err := Load(context.Background())
	require.NoError(t, err)
	require.Equal(t, ":8080", cfg.Http.Port)
	require.Equal(t, 3, cfg.Geocode.MinLength)
	require.Equal(t, 24*time.Hour, cfg.Geocode.CacheTTL)
	require.Equal(t, 2, cfg.Export.Workers)
	require.Equal(t, 17.0, cfg.Export.Zoom)
	require.Equal(t, 5*time.Second, cfg.Export.TileTimeout)
	require.Equal(t, []string{"*"}, cfg.CORS.AllowedOrigins)
	require.Equal(t, "sketches:events", cfg.Webhook.QueueKey)
	require.True(t, cfg.Webhook.Disabled, "no webhook url means no delivery")
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv("API_KEY", "k")
	t.Setenv("HTTP_PORT", ":9000")
	t.Setenv("GEOCODE_TIMEOUT", "3s")
	t.Setenv("EXPORT_ZOOM", "15.5")
	t.Setenv("EXPORT_WORKERS", "4")
	t.Setenv("EXPORT_TILE_TIMEOUT", "2s")
	t.Setenv("CORS_ALLOWED_ORIGINS", "https://a.example, ,https://b.example")
	t.Setenv("WEBHOOK_URL", "https://hooks.example/sketch")

	cfg, err := Load(context.Background())
	require.NoError(t, err)
	require.Equal(t, ":9000", cfg.Http.Port)
	require.Equal(t, 3*time.Second, cfg.Geocode.Timeout)
	require.Equal(t, 15.5, cfg.Export.Zoom)
	require.Equal(t, 4, cfg.Export.Workers)
	require.Equal(t, 2*time.Second, cfg.Export.TileTimeout)
	require.Equal(t, []string{"https://a.example", "https://b.example"}, cfg.CORS.AllowedOrigins)
	require.False(t, cfg.Webhook.Disabled)
}

func TestValidate(t *testing.T) {
	base := func() *Config {
		return &Config{
			Http:     HttpConfig{Port: ":8080"},
			Postgres: PostgresConfig{Host: "db"},
			APIKey:   "k",
			Webhook:  WebhookConfig{Disabled: true},
			Geocode:  GeocodeConfig{MinLength: 3},
			Export:   ExportConfig{Workers: 1, QueueSize: 1, Width: 10, Height: 10},
		}
	}

	tests := []struct {
		name    string
		mutate  func(c *Config)
		wantErr bool
	}{
		{name: "ok", mutate: func(c *Config) {}},
		{name: "port without colon", mutate: func(c *Config) { c.Http.Port = "8080" }, wantErr: true},
		{name: "no postgres host", mutate: func(c *Config) { c.Postgres.Host = "" }, wantErr: true},
		{name: "no api key", mutate: func(c *Config) { c.APIKey = "" }, wantErr: true},
		{name: "zero workers", mutate: func(c *Config) { c.Export.Workers = 0 }, wantErr: true},
		{name: "zero min length", mutate: func(c *Config) { c.Geocode.MinLength = 0 }, wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := base()
			tt.mutate(c)
			err := c.Validate()
			if (err != nil) != tt.wantErr {
				t.Fatalf("Validate() err = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}
