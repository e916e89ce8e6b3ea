package config

import (
	"fmt"
	"time"

	"github.com/kelseyhightower/envconfig"
)

// -----------------------------------------------------------------------------
// Environment variable configuration guidelines:
// - required: Values that differ between environments (port, DB connection, upstream URL, secrets)
// - default: Values common across all environments (timeouts, endpoint paths, cache TTLs)
// -----------------------------------------------------------------------------

type Config struct {
	Server      ServerConfig
	DB          DBConfig
	Redis       RedisConfig
	CORS        CORSConfig
	Log         LogConfig
	JWT         JWTConfig
	Marketplace MarketplaceConfig
	Checkout    CheckoutConfig
	RateLimit   RateLimitConfig
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
	TimeZone string `envconfig:"DB_TIMEZONE" default:"Asia/Kolkata"`
	MaxConns int32  `envconfig:"DB_MAX_CONNS" default:"20"`
}

type RedisConfig struct {
	Addr     string `envconfig:"REDIS_ADDR" default:"localhost:6379"`
	Password string `envconfig:"REDIS_PASSWORD" default:""`
	DB       int    `envconfig:"REDIS_DB" default:"0"`
}

type CORSConfig struct {
	AllowOrigins     []string      `envconfig:"CORS_ALLOW_ORIGINS" default:"http://localhost:3000,http://localhost:5173"`
	AllowMethods     []string      `envconfig:"CORS_ALLOW_METHODS" default:"GET,POST,OPTIONS"`
	AllowHeaders     []string      `envconfig:"CORS_ALLOW_HEADERS" default:"Origin,Content-Type,Accept,Authorization"`
	ExposeHeaders    []string      `envconfig:"CORS_EXPOSE_HEADERS" default:"Content-Length"`
	AllowCredentials bool          `envconfig:"CORS_ALLOW_CREDENTIALS" default:"true"`
	MaxAge           time.Duration `envconfig:"CORS_MAX_AGE" default:"12h"`
}

type LogConfig struct {
	Level          string `envconfig:"LOG_LEVEL" default:"info"`
	TimeZone       string `envconfig:"LOG_TIMEZONE" default:"Asia/Kolkata"`
	TimeFormat     string `envconfig:"LOG_TIME_FORMAT" default:"2006-01-02 15:04:05.000"`
	TimeZoneOffset int    `envconfig:"LOG_TIMEZONE_OFFSET" default:"19800"` // 5.5*60*60
}

// JWTConfig holds the secret shared with the marketplace API that issues session tokens.
type JWTConfig struct {
	Secret     string `envconfig:"JWT_SECRET" required:"true"`
	CookieName string `envconfig:"JWT_COOKIE_NAME" default:"token"`
}

type MarketplaceConfig struct {
	BaseURL string        `envconfig:"MARKETPLACE_BASE_URL" required:"true"`
	Timeout time.Duration `envconfig:"MARKETPLACE_TIMEOUT" default:"30s"`
}

type CheckoutConfig struct {
	KeyID        string        `envconfig:"RAZORPAY_KEY_ID" required:"true"`
	ScriptURL    string        `envconfig:"CHECKOUT_SCRIPT_URL" default:"https://checkout.razorpay.com/v1/checkout.js"`
	ProbeScript  bool          `envconfig:"CHECKOUT_PROBE_SCRIPT" default:"true"`
	MerchantName string        `envconfig:"CHECKOUT_MERCHANT_NAME" default:"Internship Portal"`
	ThemeColor   string        `envconfig:"CHECKOUT_THEME_COLOR" default:"#3399cc"`
	ClaimTTL     time.Duration `envconfig:"CHECKOUT_CLAIM_TTL" default:"2m"`
	CatalogTTL   time.Duration `envconfig:"CHECKOUT_COUPON_CATALOG_TTL" default:"5m"`
	SnapshotTTL  time.Duration `envconfig:"CHECKOUT_SNAPSHOT_TTL" default:"30m"`
	// StallAfter is how long an attempt may sit in payment_completed before support sees it.
	StallAfter   time.Duration `envconfig:"CHECKOUT_VERIFY_STALL_AFTER" default:"10m"`
}

type RateLimitConfig struct {
	CouponRPS   float64 `envconfig:"RATE_LIMIT_COUPON_RPS" default:"0.5"`
	CouponBurst int     `envconfig:"RATE_LIMIT_COUPON_BURST" default:"5"`
	ExpiryMin   int     `envconfig:"RATE_LIMIT_EXPIRY_MIN" default:"10"`
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
			TimeZone: "Asia/Kolkata",
			MaxConns: 5,
		},
		Redis: RedisConfig{
			Addr: "localhost:16379",
		},
		Log: LogConfig{
			Level:          "error", // Error level only for tests
			TimeZone:       "Asia/Kolkata",
			TimeFormat:     "2006-01-02 15:04:05.000",
			TimeZoneOffset: 19800,
		},
		JWT: JWTConfig{
			Secret:     "test-secret",
			CookieName: "token",
		},
		Marketplace: MarketplaceConfig{
			BaseURL: "http://localhost:18080",
			Timeout: 5 * time.Second,
		},
		Checkout: CheckoutConfig{
			KeyID:        "rzp_test_key",
			ScriptURL:    "https://checkout.razorpay.com/v1/checkout.js",
			ProbeScript:  false,
			MerchantName: "Internship Portal",
			ThemeColor:   "#3399cc",
			ClaimTTL:     2 * time.Minute,
			CatalogTTL:   5 * time.Minute,
			SnapshotTTL:  30 * time.Minute,
			StallAfter:   10 * time.Minute,
		},
		RateLimit: RateLimitConfig{
			CouponRPS:   100,
			CouponBurst: 100,
			ExpiryMin:   10,
		},
	}
}
