package config

import (
	"errors"
	"log/slog"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Env      string         `json:"env"`
	Http     HttpConfig     `json:"http"`
	Postgres PostgresConfig `json:"postgres"`
	Redis    RedisConfig    `json:"redis"`
	APIKey   string         `json:"api_key,omitempty"`
	// IntegritySecret signs device attestation tokens; empty disables
	// the integrity gate (local development).
	IntegritySecret string        `json:"integrity_secret,omitempty"`
	Reports         ReportsConfig `json:"reports"`
	Alerts          AlertsConfig  `json:"alerts"`
	Geocode         GeocodeConfig `json:"geocode"`
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

type ReportsConfig struct {
	ExpireAfter     time.Duration `json:"expire_after"`
	SweepInterval   time.Duration `json:"sweep_interval"`
	RefreshInterval time.Duration `json:"refresh_interval"`
	CacheTTL        time.Duration `json:"cache_ttl"`
	NearbyRadiusM   float64       `json:"nearby_radius_m"`
}

type AlertsConfig struct {
	WorkerPoolSize int           `json:"worker_pool_size"`
	DedupTTL       time.Duration `json:"dedup_ttl"`
	DeliveryURL    string        `json:"delivery_url"`
	Disabled       bool          `json:"disabled"`
}

type GeocodeConfig struct {
	BaseURL   string        `json:"base_url"`
	UserAgent string        `json:"user_agent"`
	Timeout   time.Duration `json:"timeout"`
}

func Load() (*Config, error) {
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
			Database:        getEnv("POSTGRES_DB", "safesignal_db"),
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
		APIKey:          getEnv("API_KEY", ""),
		IntegritySecret: getEnv("INTEGRITY_SECRET", ""),
		Reports: ReportsConfig{
			ExpireAfter:     getEnvDuration("REPORT_EXPIRE_AFTER", 4*time.Hour),
			SweepInterval:   getEnvDuration("REPORT_SWEEP_INTERVAL", 5*time.Minute),
			RefreshInterval: getEnvDuration("REPORT_REFRESH_INTERVAL", 30*time.Second),
			CacheTTL:        getEnvDuration("REPORT_CACHE_TTL", 2*time.Minute),
			NearbyRadiusM:   getEnvFloat("REPORT_NEARBY_RADIUS_M", 1609.34),
		},
		Alerts: AlertsConfig{
			WorkerPoolSize: getEnvInt("ALERT_WORKER_POOL_SIZE", 4),
			DedupTTL:       getEnvDuration("ALERT_DEDUP_TTL", 24*time.Hour),
			DeliveryURL:    getEnv("ALERT_DELIVERY_URL", ""),
			Disabled:       getEnvBool("ALERTS_DISABLED", false),
		},
		Geocode: GeocodeConfig{
			BaseURL:   getEnv("GEOCODE_BASE_URL", "https://nominatim.openstreetmap.org"),
			UserAgent: getEnv("GEOCODE_USER_AGENT", "safesignal/1.0"),
			Timeout:   getEnvDuration("GEOCODE_TIMEOUT", 5*time.Second),
		},
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	stdLogger.Info("Config loaded successfully",
		slog.String("env", cfg.Env),
		slog.String("http_port", cfg.Http.Port),
		slog.String("postgres_db", cfg.Postgres.Database),
		slog.String("redis_addr", cfg.Redis.Addr))

	return cfg, nil
}

func (c *Config) Validate() error {
	if c.Http.Port == "" || c.Http.Port[0] != ':' {
		return errors.New("HTTP_PORT must start with ':' like ':8080'")
	}

	if c.Postgres.Host == "" {
		return errors.New("POSTGRES_HOST required")
	}

	if c.Reports.ExpireAfter <= 0 {
		return errors.New("REPORT_EXPIRE_AFTER must be positive")
	}

	if c.Alerts.WorkerPoolSize < 1 {
		return errors.New("ALERT_WORKER_POOL_SIZE must be at least 1")
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

func getEnvFloat(key string, def float64) float64 {
	if v := os.Getenv(key); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			return f
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
