package cmd

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"sellerdesk/internal/adapters/out/postgres"
	"sellerdesk/internal/adapters/out/restapi"
	"sellerdesk/internal/core/domain/model/order"
	"sellerdesk/internal/core/domain/model/product"
	"sellerdesk/internal/jobs"
	"sellerdesk/internal/pkg/errs"

	"github.com/joho/godotenv"
)

const (
	DefaultHTTPPort          = "8082"
	DefaultUpstreamAPIURL    = "http://localhost:3001"
	DefaultSessionTTL        = 12 * time.Hour
	DefaultRecentOrdersLimit = 10
	DefaultLowStockLimit     = 5
)

type Config struct {
	HTTPPort   string
	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string
	DBSslMode  string

	UpstreamAPIURL  string
	UpstreamTimeout time.Duration

	SessionTTL           time.Duration
	SessionPurgeSchedule string

	PaidFlagPolicy      order.PaidFlagPolicy
	UnknownStatusPolicy order.UnrecognizedStatusPolicy

	RecentOrdersLimit int
	LowStockThreshold int
	LowStockLimit     int
}

// Database returns the connection settings of the console database.
func (c Config) Database() postgres.ConnectionSettings {
	return postgres.ConnectionSettings{
		Host:     c.DBHost,
		Port:     c.DBPort,
		User:     c.DBUser,
		Password: c.DBPassword,
		Name:     c.DBName,
		SslMode:  c.DBSslMode,
	}
}

// LoadConfig reads the configuration from the environment. A .env file in
// the working directory is loaded first when present; real environment
// variables win over it.
func LoadConfig() (Config, error) {
	if err := godotenv.Load(".env"); err != nil && !errors.Is(err, os.ErrNotExist) {
		return Config{}, fmt.Errorf("load .env: %w", err)
	}
	return ConfigFromEnv(os.LookupEnv)
}

// ConfigFromEnv builds a Config from lookup, applying defaults to unset values.
func ConfigFromEnv(lookup func(string) (string, bool)) (Config, error) {
	env := envReader{lookup: lookup}

	cfg := Config{
		HTTPPort:   env.string("HTTP_PORT", DefaultHTTPPort),
		DBHost:     env.string("DB_HOST", "localhost"),
		DBPort:     env.string("DB_PORT", "5432"),
		DBUser:     env.string("DB_USER", "postgres"),
		DBPassword: env.string("DB_PASSWORD", "postgres"),
		DBName:     env.string("DB_NAME", "sellerdesk"),
		DBSslMode:  env.string("DB_SSLMODE", "disable"),

		UpstreamAPIURL:  strings.TrimRight(env.string("UPSTREAM_API_URL", DefaultUpstreamAPIURL), "/"),
		UpstreamTimeout: env.duration("UPSTREAM_TIMEOUT", restapi.DefaultTimeout),

		SessionTTL:           env.duration("SESSION_TTL", DefaultSessionTTL),
		SessionPurgeSchedule: env.string("SESSION_PURGE_SCHEDULE", jobs.DefaultSessionPurgeSchedule),

		RecentOrdersLimit: env.int("RECENT_ORDERS_LIMIT", DefaultRecentOrdersLimit),
		LowStockThreshold: env.int("LOW_STOCK_THRESHOLD", product.DefaultLowStockThreshold),
		LowStockLimit:     env.int("LOW_STOCK_LIMIT", DefaultLowStockLimit),
	}

	var paidErr, statusErr error
	cfg.PaidFlagPolicy, paidErr = order.ParsePaidFlagPolicy(env.string("PAID_FLAG_POLICY", ""))
	cfg.UnknownStatusPolicy, statusErr = order.ParseUnrecognizedStatusPolicy(env.string("UNKNOWN_STATUS_POLICY", ""))

	if err := errors.Join(append(env.errs, paidErr, statusErr, cfg.validate())...); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c Config) validate() error {
	var errList []error
	if c.UpstreamTimeout <= 0 {
		errList = append(errList, errs.NewValueIsOutOfRangeError("UPSTREAM_TIMEOUT", c.UpstreamTimeout, "1ns", "-"))
	}
	if c.SessionTTL <= 0 {
		errList = append(errList, errs.NewValueIsOutOfRangeError("SESSION_TTL", c.SessionTTL, "1ns", "-"))
	}
	if c.RecentOrdersLimit < 0 {
		errList = append(errList, errs.NewValueIsOutOfRangeError("RECENT_ORDERS_LIMIT", c.RecentOrdersLimit, 0, "-"))
	}
	if c.LowStockThreshold < 0 {
		errList = append(errList, errs.NewValueIsOutOfRangeError("LOW_STOCK_THRESHOLD", c.LowStockThreshold, 0, "-"))
	}
	if c.LowStockLimit < 0 {
		errList = append(errList, errs.NewValueIsOutOfRangeError("LOW_STOCK_LIMIT", c.LowStockLimit, 0, "-"))
	}
	return errors.Join(errList...)
}

// envReader collects parse errors so that every bad variable is reported at once.
type envReader struct {
	lookup func(string) (string, bool)
	errs   []error
}

func (r *envReader) string(key, fallback string) string {
	if v, ok := r.lookup(key); ok && strings.TrimSpace(v) != "" {
		return strings.TrimSpace(v)
	}
	return fallback
}

func (r *envReader) int(key string, fallback int) int {
	raw := r.string(key, "")
	if raw == "" {
		return fallback
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		r.errs = append(r.errs, errs.NewValueIsInvalidErrorWithCause(key, err))
		return fallback
	}
	return v
}

func (r *envReader) duration(key string, fallback time.Duration) time.Duration {
	raw := r.string(key, "")
	if raw == "" {
		return fallback
	}
	v, err := time.ParseDuration(raw)
	if err != nil {
		r.errs = append(r.errs, errs.NewValueIsInvalidErrorWithCause(key, err))
		return fallback
	}
	return v
}
