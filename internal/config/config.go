package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"

	"github.com/edittrades/signalcore/internal/models"
)

// Config is the root application configuration.
type Config struct {
	Environment string           `mapstructure:"environment" validate:"oneof=development staging production"`
	LogLevel    string           `mapstructure:"log_level" validate:"oneof=debug info warn error"`
	Server      ServerConfig     `mapstructure:"server"`
	MarketData  MarketDataConfig `mapstructure:"market_data"`
	Scan        ScanConfig       `mapstructure:"scan"`
}

// ServerConfig controls the HTTP listener.
type ServerConfig struct {
	Host         string `mapstructure:"host"`
	HTTPPort     int    `mapstructure:"http_port" validate:"min=1024,max=65535"`
	ReadTimeout  int    `mapstructure:"read_timeout" validate:"min=1"`
	WriteTimeout int    `mapstructure:"write_timeout" validate:"min=1"`
	EnableCORS   bool   `mapstructure:"enable_cors"`
}

// MarketDataConfig controls the upstream candle providers.
type MarketDataConfig struct {
	PrimaryBaseURL   string `mapstructure:"primary_base_url" validate:"required,url"`
	SecondaryBaseURL string `mapstructure:"secondary_base_url"`
	RequestTimeoutMs int    `mapstructure:"request_timeout_ms" validate:"min=100"`
	UseSynthetic     bool   `mapstructure:"use_synthetic"`
	PairsRefreshMins int    `mapstructure:"pairs_refresh_mins" validate:"min=1"`
}

// ScanConfig controls the /api/scan endpoint's throttling and defaults.
type ScanConfig struct {
	InterCallDelayMs int `mapstructure:"inter_call_delay_ms" validate:"min=0"`
	DefaultMaxResults int `mapstructure:"default_max_results" validate:"min=1"`
	NewsFeedTTLMins  int `mapstructure:"news_feed_ttl_mins" validate:"min=5"`
}

// Load reads configuration from .env (if present) and the environment,
// applies defaults, and validates the result.
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		if os.Getenv("ENVIRONMENT") == "" {
			fmt.Println("warning: no .env file found, using environment variables only")
		}
	}

	viper.SetConfigType("env")
	viper.AutomaticEnv()
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	viper.BindEnv("server.host", "SERVER_HOST")
	viper.BindEnv("server.http_port", "SERVER_HTTP_PORT")
	viper.BindEnv("server.read_timeout", "SERVER_READ_TIMEOUT")
	viper.BindEnv("server.write_timeout", "SERVER_WRITE_TIMEOUT")
	viper.BindEnv("server.enable_cors", "SERVER_ENABLE_CORS")

	viper.BindEnv("market_data.primary_base_url", "MARKET_DATA_PRIMARY_BASE_URL")
	viper.BindEnv("market_data.secondary_base_url", "MARKET_DATA_SECONDARY_BASE_URL")
	viper.BindEnv("market_data.request_timeout_ms", "MARKET_DATA_REQUEST_TIMEOUT_MS")
	viper.BindEnv("market_data.use_synthetic", "MARKET_DATA_USE_SYNTHETIC")
	viper.BindEnv("market_data.pairs_refresh_mins", "MARKET_DATA_PAIRS_REFRESH_MINS")

	viper.BindEnv("scan.inter_call_delay_ms", "SCAN_INTER_CALL_DELAY_MS")
	viper.BindEnv("scan.default_max_results", "SCAN_DEFAULT_MAX_RESULTS")
	viper.BindEnv("scan.news_feed_ttl_mins", "SCAN_NEWS_FEED_TTL_MINS")

	setDefaults()

	var cfg Config
	if err := viper.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return &cfg, nil
}

// Validate checks the two required fields explicitly (for clearer startup
// messages) and then the struct's validate tags through the shared
// models.Validate instance (kept for parity with the teacher's explicit
// fail-fast-at-startup convention).
func (c *Config) Validate() error {
	if c.Server.HTTPPort == 0 {
		return fmt.Errorf("server http port is required")
	}
	if c.MarketData.PrimaryBaseURL == "" {
		return fmt.Errorf("market_data primary base url is required")
	}
	return models.Validate(c)
}

// String renders the config for startup logging. There are no secrets in
// this config (no upstream API keys are required for public candle/ticker
// endpoints), so nothing is masked, but the method is kept for parity with
// the teacher's convention of never logging a raw struct.
func (c *Config) String() string {
	return fmt.Sprintf("%+v", *c)
}

func setDefaults() {
	viper.SetDefault("environment", "development")
	viper.SetDefault("log_level", "info")

	viper.SetDefault("server.host", "0.0.0.0")
	viper.SetDefault("server.http_port", 8080)
	viper.SetDefault("server.read_timeout", 10)
	viper.SetDefault("server.write_timeout", 10)
	viper.SetDefault("server.enable_cors", true)

	viper.SetDefault("market_data.primary_base_url", "https://api.kraken.com")
	viper.SetDefault("market_data.secondary_base_url", "https://api.exchange.coinbase.com")
	viper.SetDefault("market_data.request_timeout_ms", 5000)
	viper.SetDefault("market_data.use_synthetic", false)
	viper.SetDefault("market_data.pairs_refresh_mins", 60)

	viper.SetDefault("scan.inter_call_delay_ms", 250)
	viper.SetDefault("scan.default_max_results", 20)
	viper.SetDefault("scan.news_feed_ttl_mins", 5)
}
