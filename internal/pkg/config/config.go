package config

import (
	"fmt"
	"time"

	"github.com/kelseyhightower/envconfig"
)

// -----------------------------------------------------------------------------
// Environment variable configuration guidelines:
// - required: Values that differ between environments (port, DB connection, etc.), security settings
// - default: Values common across all environments (timezone, timeout, pricing constants, etc.)
// -----------------------------------------------------------------------------

type Config struct {
	Server      ServerConfig
	DB          DBConfig
	CORS        CORSConfig
	Log         LogConfig
	Pricing     PricingConfig
	Negotiation NegotiationConfig
}

type ServerConfig struct {
	Port string `envconfig:"PORT" required:"true"`
}

type DBConfig struct {
	Host     string `envconfig:"DB_HOST" default:"localhost"`
	Port     string `envconfig:"DB_PORT" default:"5432"`
	User     string `envconfig:"DB_USER" required:"true"`
	Password string `envconfig:"DB_PASSWORD" required:"true"`
	DBName   string `envconfig:"DB_NAME" required:"true"`
	SSLMode  string `envconfig:"DB_SSL_MODE" default:"disable"`
	TimeZone string `envconfig:"DB_TIMEZONE" default:"UTC"`
	MaxConns int32  `envconfig:"DB_MAX_CONNS" default:"10"`
}

type CORSConfig struct {
	AllowOrigins     []string      `envconfig:"CORS_ALLOW_ORIGINS" default:"http://localhost:3000,http://localhost:8080"`
	AllowMethods     []string      `envconfig:"CORS_ALLOW_METHODS" default:"GET,POST,OPTIONS"`
	AllowHeaders     []string      `envconfig:"CORS_ALLOW_HEADERS" default:"Origin,Content-Type,Accept"`
	ExposeHeaders    []string      `envconfig:"CORS_EXPOSE_HEADERS" default:"Content-Length"`
	AllowCredentials bool          `envconfig:"CORS_ALLOW_CREDENTIALS" default:"true"`
	MaxAge           time.Duration `envconfig:"CORS_MAX_AGE" default:"12h"`
}

type LogConfig struct {
	Level          string `envconfig:"LOG_LEVEL" default:"info"`
	TimeZone       string `envconfig:"LOG_TIMEZONE" default:"UTC"`
	TimeFormat     string `envconfig:"LOG_TIME_FORMAT" default:"2006-01-02 15:04:05.000"`
	TimeZoneOffset int    `envconfig:"LOG_TIMEZONE_OFFSET" default:"0"`
}

type PricingConfig struct {
	// Flat fee charged when delivery is chosen; self-pickup is free.
	DeliveryFee string `envconfig:"PRICING_DELIVERY_FEE" default:"75.00"`
	// Optional YAML overrides; embedded catalogs are used when empty.
	PromoCatalogPath   string `envconfig:"PRICING_PROMO_CATALOG_PATH"`
	ListingCatalogPath string `envconfig:"PRICING_LISTING_CATALOG_PATH"`
}

type NegotiationConfig struct {
	// 0 disables the cap.
	MaxRounds        int           `envconfig:"NEGOTIATION_MAX_ROUNDS" default:"6"`
	ResponseDelayMin time.Duration `envconfig:"NEGOTIATION_RESPONSE_DELAY_MIN" default:"800ms"`
	ResponseDelayMax time.Duration `envconfig:"NEGOTIATION_RESPONSE_DELAY_MAX" default:"2500ms"`
	IdleTTL          time.Duration `envconfig:"NEGOTIATION_IDLE_TTL" default:"30m"`
	// robfig/cron spec with a seconds field.
	SweepSchedule string `envconfig:"NEGOTIATION_SWEEP_SCHEDULE" default:"0 * * * * *"`
}

func (c *DBConfig) BuildDSN() string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%s/%s?sslmode=%s&timezone=%s",
		c.User, c.Password, c.Host, c.Port, c.DBName, c.SSLMode, c.TimeZone,
	)
}

func LoadConfig() (Config, error) {
	var cfg Config
	err := envconfig.Process("", &cfg)
	if err != nil {
		return Config{}, fmt.Errorf("failed to process env config: %w", err)
	}
	if cfg.Negotiation.ResponseDelayMax < cfg.Negotiation.ResponseDelayMin {
		return Config{}, fmt.Errorf("NEGOTIATION_RESPONSE_DELAY_MAX (%s) is below NEGOTIATION_RESPONSE_DELAY_MIN (%s)",
			cfg.Negotiation.ResponseDelayMax, cfg.Negotiation.ResponseDelayMin)
	}
	return cfg, nil
}

func NewTestConfig() Config {
	return Config{
		Server: ServerConfig{
			Port: "8889", // Test port
		},
		DB: DBConfig{
			Host:     "localhost",
			Port:     "15433", // Test DB port
			User:     "test",
			Password: "test",
			DBName:   "test_db",
			SSLMode:  "disable",
			TimeZone: "UTC",
			MaxConns: 4,
		},
		Log: LogConfig{
			Level:          "error", // Error level only for tests
			TimeZone:       "UTC",
			TimeFormat:     "2006-01-02 15:04:05.000",
			TimeZoneOffset: 0,
		},
		Pricing: PricingConfig{
			DeliveryFee: "75.00",
		},
		Negotiation: NegotiationConfig{
			MaxRounds:     6,
			IdleTTL:       30 * time.Minute,
			SweepSchedule: "0 * * * * *",
		},
	}
}
