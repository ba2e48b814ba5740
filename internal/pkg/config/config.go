package config

import (
	"fmt"
	"time"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

// -----------------------------------------------------------------------------
// Environment variable configuration guidelines:
// - required: Values that differ between environments (port, DB connection, etc.), security settings
// - default: Values common across all environments (timezone, timeout, etc.), standard settings
// -----------------------------------------------------------------------------

type Config struct {
	Server   ServerConfig
	DB       DBConfig
	Redis    RedisConfig
	CORS     CORSConfig
	Log      LogConfig
	JWT      JWTConfig
	Payment  PaymentConfig
	Postal   PostalConfig
	Checkout CheckoutConfig
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
	TimeZone string `envconfig:"DB_TIMEZONE" default:"Asia/Tokyo"`
}

type RedisConfig struct {
	Addr     string        `envconfig:"REDIS_ADDR" default:"localhost:6379"`
	Password string        `envconfig:"REDIS_PASSWORD" default:""`
	DB       int           `envconfig:"REDIS_DB" default:"0"`
	CacheTTL time.Duration `envconfig:"REDIS_CACHE_TTL" default:"60s"`
}

type CORSConfig struct {
	AllowOrigins     []string      `envconfig:"CORS_ALLOW_ORIGINS" default:"http://localhost:3000,http://localhost:8080"`
	AllowMethods     []string      `envconfig:"CORS_ALLOW_METHODS" default:"GET,POST,PUT,PATCH,DELETE,OPTIONS"`
	AllowHeaders     []string      `envconfig:"CORS_ALLOW_HEADERS" default:"Origin,Content-Type,Accept,Authorization,X-Webhook-Signature"`
	ExposeHeaders    []string      `envconfig:"CORS_EXPOSE_HEADERS" default:"Content-Length"`
	AllowCredentials bool          `envconfig:"CORS_ALLOW_CREDENTIALS" default:"true"`
	MaxAge           time.Duration `envconfig:"CORS_MAX_AGE" default:"12h"`
}

type LogConfig struct {
	Level          string `envconfig:"LOG_LEVEL" default:"info"`
	TimeZone       string `envconfig:"LOG_TIMEZONE" default:"Asia/Tokyo"`
	TimeFormat     string `envconfig:"LOG_TIME_FORMAT" default:"2006-01-02 15:04:05.000"`
	TimeZoneOffset int    `envconfig:"LOG_TIMEZONE_OFFSET" default:"32400"` // 9*60*60
}

type JWTConfig struct {
	Secret   string `envconfig:"JWT_SECRET" required:"true"`
	Duration string `envconfig:"JWT_DURATION" default:"24h"`
}

type PaymentConfig struct {
	BaseURL       string        `envconfig:"PAYMENT_BASE_URL" required:"true"`
	APIKey        string        `envconfig:"PAYMENT_API_KEY" required:"true"`
	WebhookSecret string        `envconfig:"PAYMENT_WEBHOOK_SECRET" required:"true"`
	Timeout       time.Duration `envconfig:"PAYMENT_TIMEOUT" default:"15s"`
}

type PostalConfig struct {
	BaseURL string        `envconfig:"POSTAL_LOOKUP_BASE_URL" default:"https://viacep.com.br/ws"`
	Timeout time.Duration `envconfig:"POSTAL_LOOKUP_TIMEOUT" default:"5s"`
}

type CheckoutConfig struct {
	TaxRate               float64 `envconfig:"CHECKOUT_TAX_RATE" default:"0.10"`
	ShippingFeeCents      int64   `envconfig:"CHECKOUT_SHIPPING_FEE_CENTS" default:"1000"`
	FreeShippingOverCents int64   `envconfig:"CHECKOUT_FREE_SHIPPING_OVER_CENTS" default:"10000"`
}

func (c *DBConfig) BuildDSN() string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%s/%s?sslmode=%s&timezone=%s",
		c.User, c.Password, c.Host, c.Port, c.DBName, c.SSLMode, c.TimeZone,
	)
}

func LoadConfig() (Config, error) {
	// .env is optional; real environments inject variables directly
	_ = godotenv.Load()

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
		DB: DBConfig{
			Host:     "localhost",
			Port:     "15433", // Test DB port
			User:     "test",
			Password: "test",
			DBName:   "test_db",
			SSLMode:  "disable",
			TimeZone: "Asia/Tokyo",
		},
		Log: LogConfig{
			Level:          "error", // Error level only for tests
			TimeZone:       "Asia/Tokyo",
			TimeFormat:     "2006-01-02 15:04:05.000",
			TimeZoneOffset: 32400,
		},
		JWT: JWTConfig{
			Secret:   "test-secret",
			Duration: "24h",
		},
		Payment: PaymentConfig{
			BaseURL:       "http://localhost:12111",
			APIKey:        "sk_test_dummy",
			WebhookSecret: "whsec_test_dummy",
			Timeout:       15 * time.Second,
		},
		Postal: PostalConfig{
			BaseURL: "http://localhost:12112",
			Timeout: 5 * time.Second,
		},
		Checkout: CheckoutConfig{
			TaxRate:               0.10,
			ShippingFeeCents:      1000,
			FreeShippingOverCents: 10000,
		},
	}
}
