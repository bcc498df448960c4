package config

import (
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/go-playground/validator"
	_ "github.com/joho/godotenv/autoload"
	"github.com/knadh/koanf"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env"
)

const (
	StoreDriverPostgres = "postgres"
	StoreDriverBolt     = "bolt"

	SessionPolicySessionID = "session_id"
	SessionPolicyUserAgent = "user_agent"

	RefundModeToken = "token"
	RefundModeMall  = "mall"
)

type Config struct {
	Primary  Primary        `koanf:"primary"`
	Server   ServerConfig   `koanf:"server"`
	Database DatabaseConfig `koanf:"database"`
	Store    StoreConfig    `koanf:"store"`
	Webpay   WebpayConfig   `koanf:"webpay"`
	Retry    RetryConfig    `koanf:"retry"`
	Logger   LoggerConfig   `koanf:"logger"`
	Callback CallbackConfig `koanf:"callback"`
	Security SecurityConfig `koanf:"security"`
	Checkout CheckoutConfig `koanf:"checkout"`
}

type Primary struct {
	Env string `koanf:"env" validate:"required"`
}

type ServerConfig struct {
	Port           string        `koanf:"port" validate:"required"`
	BasePath       string        `koanf:"base_path"`
	ReadTimeout    time.Duration `koanf:"read_timeout" validate:"required"`
	WriteTimeout   time.Duration `koanf:"write_timeout" validate:"required"`
	IdleTimeout    time.Duration `koanf:"idle_timeout" validate:"required"`
	RequestTimeout time.Duration `koanf:"request_timeout" validate:"required"`
	RateLimitRPS   float64       `koanf:"rate_limit_rps" validate:"gte=0"`
	RateLimitBurst int           `koanf:"rate_limit_burst" validate:"gte=0"`
}

type DatabaseConfig struct {
	Host            string        `koanf:"host" validate:"required"`
	Port            int           `koanf:"port" validate:"required"`
	User            string        `koanf:"user" validate:"required"`
	Password        string        `koanf:"password" validate:"required"`
	Name            string        `koanf:"name" validate:"required"`
	SSLMode         string        `koanf:"ssl_mode" validate:"required"`
	MaxOpenConns    int           `koanf:"max_open_conns" validate:"required"`
	MaxIdleConns    int           `koanf:"max_idle_conns" validate:"required"`
	ConnMaxLifetime time.Duration `koanf:"conn_max_lifetime" validate:"required"`
	ConnMaxIdleTime time.Duration `koanf:"conn_max_idle_time" validate:"required"`
}

// StoreConfig selects the settlement record backend.
type StoreConfig struct {
	Driver   string `koanf:"driver" validate:"required,oneof=postgres bolt"`
	BoltPath string `koanf:"bolt_path" validate:"required"`
}

// WebpayConfig carries the gateway credentials. Leaving CommerceCode or
// APIKey empty selects the public integration environment.
type WebpayConfig struct {
	CommerceCode      string        `koanf:"commerce_code"`
	APIKey            string        `koanf:"api_key"`
	ChildCommerceCode string        `koanf:"child_commerce_code" validate:"required"`
	RefundMode        string        `koanf:"refund_mode" validate:"required,oneof=token mall"`
	Timeout           time.Duration `koanf:"timeout" validate:"required"`
	BaseURL           string        `koanf:"base_url" validate:"omitempty,url"`
}

// IsProduction reports whether both production credentials are present.
func (c WebpayConfig) IsProduction() bool {
	return c.CommerceCode != "" && c.APIKey != ""
}

type RetryConfig struct {
	BaseDelay  time.Duration `koanf:"base_delay"`
	MaxRetries int           `koanf:"max_retries" validate:"gte=0"`
}

type LoggerConfig struct {
	Level  string `koanf:"level"`
	Format string `koanf:"format" validate:"omitempty,oneof=text json"`
}

// CallbackConfig holds the public address the gateway redirects the buyer
// to and the two storefront pages the buyer finally lands on.
type CallbackConfig struct {
	BaseURL    string `koanf:"base_url" validate:"required,url"`
	SuccessURL string `koanf:"success_url" validate:"required,url"`
	FailureURL string `koanf:"failure_url" validate:"required,url"`
}

type SecurityConfig struct {
	APIKey          string `koanf:"api_key" validate:"required"`
	ReferenceSecret string `koanf:"reference_secret" validate:"required,min=16"`
}

type CheckoutConfig struct {
	SessionPolicy string `koanf:"session_policy" validate:"required,oneof=session_id user_agent"`
}

func defaults() map[string]interface{} {
	return map[string]interface{}{
		"primary.env":                "development",
		"server.port":                "8080",
		"server.base_path":           "/",
		"server.read_timeout":        "15s",
		"server.write_timeout":       "45s",
		"server.idle_timeout":        "60s",
		"server.request_timeout":     "40s",
		"server.rate_limit_rps":      20,
		"server.rate_limit_burst":    40,
		"store.driver":               StoreDriverPostgres,
		"store.bolt_path":            "webpay.db",
		"webpay.child_commerce_code": "597055555542",
		"webpay.refund_mode":         RefundModeToken,
		"webpay.timeout":             "30s",
		"retry.base_delay":           "500ms",
		"retry.max_retries":          0,
		"logger.level":               "info",
		"logger.format":              "text",
		"checkout.session_policy":    SessionPolicySessionID,
	}
}

func LoadConfig() (*Config, error) {
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelError,
	}))
	k := koanf.New(".")

	if err := k.Load(confmap.Provider(defaults(), "."), nil); err != nil {
		logger.Error("failed to load default configuration", "error", err)
		return nil, err
	}

	err := k.Load(env.Provider("GATEWAY_", ".", func(s string) string {
		return strings.ReplaceAll(
			strings.ToLower(strings.TrimPrefix(s, "GATEWAY_")),
			"__",
			".",
		)
	}), nil)
	if err != nil {
		logger.Error("failed to load environment variables", "error", err)
		return nil, err
	}

	mainConfig := &Config{}

	err = k.Unmarshal("", mainConfig)
	if err != nil {
		logger.Error("could not unmarshal main config", "error", err)
		return nil, err
	}

	if err := mainConfig.Validate(); err != nil {
		logger.Error("config validation failed", "error", err)
		return nil, err
	}

	return mainConfig, nil
}

// Validate checks every section. The database section is only required
// when the postgres store is selected.
func (c *Config) Validate() error {
	validate := validator.New()

	if c.Store.Driver == StoreDriverPostgres {
		return validate.Struct(c)
	}
	return validate.StructExcept(c, "Database")
}
