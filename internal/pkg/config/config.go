package config

import (
	"fmt"
	"time"

	"github.com/kelseyhightower/envconfig"
)

// -----------------------------------------------------------------------------
// Environment variable configuration guidelines:
// - required: Values that differ between environments (port, catalog endpoint,
//   secrets)
// - default: Values common across all environments (timeouts, cache TTLs)
// -----------------------------------------------------------------------------

type Config struct {
	Server  ServerConfig
	Catalog CatalogConfig
	Redis   RedisConfig
	Engine  EngineConfig
	CORS    CORSConfig
	Log     LogConfig
	JWT     JWTConfig
	Cookie  CookieConfig
}

type ServerConfig struct {
	Port string `envconfig:"PORT" required:"true"`
}

// CatalogConfig points at the campaign catalog backend that owns detail
// fetches and redemption submits.
type CatalogConfig struct {
	BaseURL string        `envconfig:"CATALOG_BASE_URL" required:"true"`
	APIKey  string        `envconfig:"CATALOG_API_KEY" required:"true"`
	Timeout time.Duration `envconfig:"CATALOG_TIMEOUT" default:"10s"`
}

type RedisConfig struct {
	Addr        string        `envconfig:"REDIS_ADDR" default:"localhost:6379"`
	Password    string        `envconfig:"REDIS_PASSWORD" default:""`
	DB          int           `envconfig:"REDIS_DB" default:"0"`
	SnapshotTTL time.Duration `envconfig:"REDIS_SNAPSHOT_TTL" default:"5m"`
}

type EngineConfig struct {
	DefaultLocale string `envconfig:"ENGINE_DEFAULT_LOCALE" default:"en"`
	// Shown when an ineligible campaign carries no caption and the text table
	// has no generic alert string.
	DefaultConditionMessage string        `envconfig:"ENGINE_DEFAULT_CONDITION_MESSAGE" default:"This campaign is currently unavailable"`
	SessionIdleTTL          time.Duration `envconfig:"ENGINE_SESSION_IDLE_TTL" default:"30m"`
	SessionSweepInterval    time.Duration `envconfig:"ENGINE_SESSION_SWEEP_INTERVAL" default:"5m"`
}

type CORSConfig struct {
	AllowOrigins     []string      `envconfig:"CORS_ALLOW_ORIGINS" default:"http://localhost:3000,http://localhost:8080"`
	AllowMethods     []string      `envconfig:"CORS_ALLOW_METHODS" default:"GET,POST,PUT,PATCH,DELETE,OPTIONS"`
	AllowHeaders     []string      `envconfig:"CORS_ALLOW_HEADERS" default:"Origin,Content-Type,Accept,Authorization"`
	ExposeHeaders    []string      `envconfig:"CORS_EXPOSE_HEADERS" default:"Content-Length"`
	AllowCredentials bool          `envconfig:"CORS_ALLOW_CREDENTIALS" default:"true"`
	MaxAge           time.Duration `envconfig:"CORS_MAX_AGE" default:"12h"`
}

type LogConfig struct {
	Level          string `envconfig:"LOG_LEVEL" default:"info"`
	TimeZone       string `envconfig:"LOG_TIMEZONE" default:"Asia/Bangkok"`
	TimeFormat     string `envconfig:"LOG_TIME_FORMAT" default:"2006-01-02 15:04:05.000"`
	TimeZoneOffset int    `envconfig:"LOG_TIMEZONE_OFFSET" default:"25200"` // 7*60*60
}

type JWTConfig struct {
	Secret   string `envconfig:"JWT_SECRET" required:"true"`
	Duration string `envconfig:"JWT_DURATION" default:"24h"`
}

type CookieConfig struct {
	Domain   string `envconfig:"COOKIE_DOMAIN" default:""`
	Secure   bool   `envconfig:"COOKIE_SECURE" default:"false"`
	SameSite string `envconfig:"COOKIE_SAME_SITE" default:"Lax"`
}

func LoadConfig() (Config, error) {
	var cfg Config
	err := envconfig.Process("", &cfg)
	if err != nil {
		return Config{}, fmt.Errorf("failed to process env config: %w", err)
	}
	return cfg, nil
}

func NewTestConfig() Config {
	return Config{
		Server: ServerConfig{
			Port: "8889", // Test port
		},
		Catalog: CatalogConfig{
			BaseURL: "http://localhost:18080",
			APIKey:  "test-key",
			Timeout: 2 * time.Second,
		},
		Redis: RedisConfig{
			Addr:        "localhost:16379",
			SnapshotTTL: time.Minute,
		},
		Engine: EngineConfig{
			DefaultLocale:           "en",
			DefaultConditionMessage: "This campaign is currently unavailable",
			SessionIdleTTL:          time.Minute,
			SessionSweepInterval:    time.Minute,
		},
		Log: LogConfig{
			Level:          "error", // Error level only for tests
			TimeZone:       "Asia/Bangkok",
			TimeFormat:     "2006-01-02 15:04:05.000",
			TimeZoneOffset: 25200,
		},
	}
}
