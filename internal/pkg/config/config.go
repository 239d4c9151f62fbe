package config

import (
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/kelseyhightower/envconfig"
)

// -----------------------------------------------------------------------------
// Environment variable configuration guidelines:
// - required: Values that differ between environments (port, upstream URL, secrets)
// - default: Values common across all environments (timezone, timeout, tax rate, etc.)
// -----------------------------------------------------------------------------

type Config struct {
	Server   ServerConfig
	CORS     CORSConfig
	Log      LogConfig
	JWT      JWTConfig
	Cookie   CookieConfig
	Upstream UpstreamConfig
	Booking  BookingConfig
	Payment  PaymentConfig
	Session  SessionConfig
}

type ServerConfig struct {
	Port string `envconfig:"PORT" required:"true"`
}

type CORSConfig struct {
	AllowOrigins     []string      `envconfig:"CORS_ALLOW_ORIGINS" default:"http://localhost:3000,http://localhost:8080"`
	AllowMethods     []string      `envconfig:"CORS_ALLOW_METHODS" default:"GET,POST,PUT,PATCH,DELETE,OPTIONS"`
	AllowHeaders     []string      `envconfig:"CORS_ALLOW_HEADERS" default:"Origin,Content-Type,Accept,Authorization,X-Booking-Session,X-Request-ID"`
	ExposeHeaders    []string      `envconfig:"CORS_EXPOSE_HEADERS" default:"Content-Length,X-Booking-Session,X-Request-ID"`
	AllowCredentials bool          `envconfig:"CORS_ALLOW_CREDENTIALS" default:"true"`
	MaxAge           time.Duration `envconfig:"CORS_MAX_AGE" default:"12h"`
}

type LogConfig struct {
	Level          string `envconfig:"LOG_LEVEL" default:"info"`
	TimeZone       string `envconfig:"LOG_TIMEZONE" default:"Asia/Jakarta"`
	TimeFormat     string `envconfig:"LOG_TIME_FORMAT" default:"2006-01-02 15:04:05.000"`
	TimeZoneOffset int    `envconfig:"LOG_TIMEZONE_OFFSET" default:"25200"` // 7*60*60
}

type JWTConfig struct {
	Secret   string `envconfig:"JWT_SECRET" required:"true"`
	Duration string `envconfig:"JWT_DURATION" default:"24h"`
}

type CookieConfig struct {
	Domain   string `envconfig:"COOKIE_DOMAIN" default:""`
	Secure   bool   `envconfig:"COOKIE_SECURE" default:"true"`
	SameSite string `envconfig:"COOKIE_SAME_SITE" default:"Lax"`
}

// UpstreamConfig points at the booking backend that owns availability, promos and invoices.
type UpstreamConfig struct {
	BaseURL          string        `envconfig:"BOOKING_API_BASE_URL" required:"true" validate:"url"`
	Timeout          time.Duration `envconfig:"BOOKING_API_TIMEOUT" default:"5s" validate:"gt=0"`
	RatePerSecond    float64       `envconfig:"BOOKING_API_RATE_PER_SECOND" default:"20" validate:"gt=0"`
	RateBurst        int           `envconfig:"BOOKING_API_RATE_BURST" default:"40"`
	BreakerFailures  uint32        `envconfig:"BOOKING_API_BREAKER_FAILURES" default:"5"`
	BreakerOpenDelay time.Duration `envconfig:"BOOKING_API_BREAKER_OPEN_DELAY" default:"30s"`
}

type BookingConfig struct {
	TaxRate          float64       `envconfig:"TAX_RATE" default:"0.10" validate:"gte=0,lte=1"`
	DefaultOpenTime  string        `envconfig:"DEFAULT_OPEN_TIME" default:"10:00" validate:"datetime=15:04"`
	DefaultCloseTime string        `envconfig:"DEFAULT_CLOSE_TIME" default:"22:00" validate:"datetime=15:04"`
	RewardLeadTime   time.Duration `envconfig:"REWARD_LEAD_TIME" default:"30m"`
	TimeZone         string        `envconfig:"BOOKING_TIMEZONE" default:"Asia/Jakarta" validate:"timezone"`
}

type PaymentConfig struct {
	GatewayHosts  []string      `envconfig:"GATEWAY_HOSTS" default:"app.midtrans.com,app.sandbox.midtrans.com" validate:"min=1,dive,hostname"`
	RedirectDelay time.Duration `envconfig:"GATEWAY_REDIRECT_DELAY" default:"1500ms"`
	Timeout       time.Duration `envconfig:"PAYMENT_TIMEOUT" default:"30m" validate:"gt=0"`
}

type SessionConfig struct {
	TTL             time.Duration `envconfig:"SESSION_TTL" default:"2h" validate:"gt=0"`
	CleanupInterval time.Duration `envconfig:"SESSION_CLEANUP_INTERVAL" default:"10m"`
}

func (c BookingConfig) Location() *time.Location {
	loc, err := time.LoadLocation(c.TimeZone)
	if err != nil {
		return time.Local
	}
	return loc
}

var validate = validator.New(validator.WithRequiredStructEnabled())

func LoadConfig() (Config, error) {
	var cfg Config
	err := envconfig.Process("", &cfg)
	if err != nil {
		return Config{}, fmt.Errorf("failed to process env config: %w", err)
	}
	return cfg, nil
}

// Validate rejects settings that would only fail later, mid-booking.
func (c Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}
	return nil
}

func NewTestConfig() Config {
	return Config{
		Server: ServerConfig{
			Port: "8889", // Test port
		},
		Log: LogConfig{
			Level:          "error", // Error level only for tests
			TimeZone:       "Asia/Jakarta",
			TimeFormat:     "2006-01-02 15:04:05.000",
			TimeZoneOffset: 25200,
		},
		JWT: JWTConfig{
			Secret:   "test-secret",
			Duration: "1h",
		},
		Cookie: CookieConfig{
			SameSite: "Lax",
		},
		Upstream: UpstreamConfig{
			BaseURL:          "http://booking-api.test",
			Timeout:          time.Second,
			RatePerSecond:    1000,
			RateBurst:        1000,
			BreakerFailures:  3,
			BreakerOpenDelay: time.Second,
		},
		Booking: BookingConfig{
			TaxRate:          0.10,
			DefaultOpenTime:  "10:00",
			DefaultCloseTime: "22:00",
			RewardLeadTime:   30 * time.Minute,
			TimeZone:         "UTC",
		},
		Payment: PaymentConfig{
			GatewayHosts:  []string{"app.sandbox.midtrans.com"},
			RedirectDelay: 1500 * time.Millisecond,
			Timeout:       30 * time.Minute,
		},
		Session: SessionConfig{
			TTL:             time.Hour,
			CleanupInterval: time.Minute,
		},
	}
}
