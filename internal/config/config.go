package config

import (
	"context"
	"errors"
	"log"
	"log/slog"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Env      string         `json:"env"`
	Http     HttpConfig     `json:"http"`
	Postgres PostgresConfig `json:"postgres"`
	Redis    RedisConfig    `json:"redis"`
	APIKey   string         `json:"api_key,omitempty"`
	Webhook  WebhookConfig  `json:"webhook"`
	Geocode  GeocodeConfig  `json:"geocode"`
	Export   ExportConfig   `json:"export"`
	CORS     CORSConfig     `json:"cors"`
}

type HttpConfig struct {
	Port            string        `json:"port"`
	ReadTimeout     time.Duration `json:"read_timeout"`
	WriteTimeout    time.Duration `json:"write_timeout"`
	ShutdownTimeout time.Duration `json:"shutdown_timeout"`
}

type PostgresConfig struct {
	Host     string `json:"host"`
	Port     int    `json:"port"`
	Database string `json:"database"`
	User     string `json:"user"`
	Password string `json:"password,omitempty"`
	SSLMode  string `json:"ssl_mode"`

	MaxConns        int32
	MinConns        int32
	MaxConnLifetime time.Duration
}

type RedisConfig struct {
	Addr     string `json:"addr"`
	Password string `json:"password,omitempty"`
	DB       int    `json:"db"`
}

type WebhookConfig struct {
	URL        string        `json:"url"`
	Disabled   bool          `json:"disabled"`
	QueueKey   string        `json:"queue_key"`
	MaxRetries int           `json:"max_retries"`
	Timeout    time.Duration `json:"timeout"`
}

type GeocodeConfig struct {
	BaseURL   string        `json:"base_url"`
	UserAgent string        `json:"user_agent"`
	Timeout   time.Duration `json:"timeout"`
	MinLength int           `json:"min_length"`
	Limit     int           `json:"limit"`
	CacheTTL  time.Duration `json:"cache_ttl"`
}

type ExportConfig struct {
	TileURL     string        `json:"tile_url"`
	TileTimeout time.Duration `json:"tile_timeout"`
	Width       int           `json:"width"`
	Height      int           `json:"height"`
	Zoom        float64       `json:"zoom"`
	Workers     int           `json:"workers"`
	QueueSize   int           `json:"queue_size"`
	JobTimeout  time.Duration `json:"job_timeout"`
}

type CORSConfig struct {
	AllowedOrigins []string `json:"allowed_origins"`
}

func Load(ctx context.Context) (*Config, error) {

	stdLogger := slog.New(slog.NewTextHandler(os.Stdout, nil))

	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		stdLogger.Warn(".env load warning", slog.Any("error", err))
	}

	cfg := &Config{
		Env: getEnv("ENV", "local"),
		Http: HttpConfig{
			Port:            getEnv("HTTP_PORT", ":8080"),
			ReadTimeout:     getEnvDuration("HTTP_READ_TIMEOUT", 10*time.Second),
			WriteTimeout:    getEnvDuration("HTTP_WRITE_TIMEOUT", 10*time.Second),
			ShutdownTimeout: getEnvDuration("HTTP_SHUTDOWN_TIMEOUT", 10*time.Second),
		},
		Postgres: PostgresConfig{
			Host:            getEnv("POSTGRES_HOST", "pg-local"),
			Port:            getEnvInt("POSTGRES_PORT", 5432),
			Database:        getEnv("POSTGRES_DB", "roadsketch"),
			User:            getEnv("POSTGRES_USER", "postgres"),
			Password:        getEnv("POSTGRES_PASSWORD", "postgres"),
			SSLMode:         getEnv("POSTGRES_SSL_MODE", "disable"),
			MaxConns:        20,
			MinConns:        1,
			MaxConnLifetime: 1 * time.Hour,
		},
		Redis: RedisConfig{
			Addr:     getEnv("REDIS_ADDR", "redis-local:6379"),
			Password: getEnv("REDIS_PASSWORD", ""),
			DB:       getEnvInt("REDIS_DB", 0),
		},
		APIKey: getEnv("API_KEY", "super-secret-key"),
		Webhook: WebhookConfig{
			URL:        getEnv("WEBHOOK_URL", ""),
			Disabled:   getEnvBool("WEBHOOK_DISABLED", false),
			QueueKey:   getEnv("WEBHOOK_QUEUE_KEY", "sketches:events"),
			MaxRetries: getEnvInt("WEBHOOK_MAX_RETRIES", 3),
			Timeout:    getEnvDuration("WEBHOOK_TIMEOUT", 10*time.Second),
		},
		Geocode: GeocodeConfig{
			BaseURL:   getEnv("GEOCODE_BASE_URL", "https://nominatim.openstreetmap.org"),
			UserAgent: getEnv("GEOCODE_USER_AGENT", "roadsketch/1.0"),
			Timeout:   getEnvDuration("GEOCODE_TIMEOUT", 10*time.Second),
			MinLength: getEnvInt("GEOCODE_MIN_LENGTH", 3),
			Limit:     getEnvInt("GEOCODE_LIMIT", 5),
			CacheTTL:  getEnvDuration("GEOCODE_CACHE_TTL", 24*time.Hour),
		},
		Export: ExportConfig{
			TileURL:     getEnv("EXPORT_TILE_URL", "https://tile.openstreetmap.org/{z}/{x}/{y}.png"),
			TileTimeout: getEnvDuration("EXPORT_TILE_TIMEOUT", 5*time.Second),
			Width:       getEnvInt("EXPORT_WIDTH", 1280),
			Height:      getEnvInt("EXPORT_HEIGHT", 800),
			Zoom:        getEnvFloat("EXPORT_ZOOM", 17),
			Workers:     getEnvInt("EXPORT_WORKERS", 2),
			QueueSize:   getEnvInt("EXPORT_QUEUE_SIZE", 16),
			JobTimeout:  getEnvDuration("EXPORT_JOB_TIMEOUT", 30*time.Second),
		},
		CORS: CORSConfig{
			AllowedOrigins: getEnvList("CORS_ALLOWED_ORIGINS", []string{"*"}),
		},
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	stdLogger.Info("Config loaded successfully",
		slog.String("env", cfg.Env),
		slog.String("http_port", cfg.Http.Port),
		slog.String("postgres_db", cfg.Postgres.Database),
		slog.String("redis_addr", cfg.Redis.Addr),
		slog.String("webhook_url", cfg.Webhook.URL),
		slog.String("geocode_url", cfg.Geocode.BaseURL),
		slog.Int("export_workers", cfg.Export.Workers))

	return cfg, nil
}

func (c *Config) Validate() error {

	if c.Http.Port == "" || (len(c.Http.Port) > 0 && c.Http.Port[0] != ':') {
		return errors.New("HTTP_PORT must start with ':' like ':8080'")
	}

	if c.Postgres.Host == "" {
		return errors.New("POSTGRES_HOST required")
	}

	if c.APIKey == "" {
		return errors.New("API_KEY required")
	}

	if c.Geocode.MinLength < 1 {
		return errors.New("GEOCODE_MIN_LENGTH must be positive")
	}

	if c.Export.Workers < 1 || c.Export.QueueSize < 1 {
		return errors.New("EXPORT_WORKERS and EXPORT_QUEUE_SIZE must be positive")
	}

	if c.Export.Width <= 0 || c.Export.Height <= 0 {
		return errors.New("EXPORT_WIDTH and EXPORT_HEIGHT must be positive")
	}

	if !c.Webhook.Disabled && c.Webhook.URL == "" {
		log.Println("WARN: WEBHOOK_URL empty, sketch events will not be delivered")
		c.Webhook.Disabled = true
	}

	if c.Webhook.Disabled {
		log.Println("WARN: Webhooks DISABLED via WEBHOOK_DISABLED=true")
	}

	return nil
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getEnvInt(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return def
}

func getEnvDuration(key string, def time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
	}
	return def
}

func getEnvBool(key string, def bool) bool {
	if v := os.Getenv(key); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			return b
		}
	}
	return def
}

func getEnvFloat(key string, def float64) float64 {
	if v := os.Getenv(key); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			return f
		}
	}
	return def
}

// getEnvList splits a comma separated value, dropping empty items.
func getEnvList(key string, def []string) []string {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	var out []string
	for _, item := range strings.Split(v, ",") {
		if item = strings.TrimSpace(item); item != "" {
			out = append(out, item)
		}
	}
	if len(out) == 0 {
		return def
	}
	return out
}
