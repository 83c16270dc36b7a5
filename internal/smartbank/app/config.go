package app

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/aussiebroadwan/smartbank/pkg/httpx"
	"golang.org/x/crypto/bcrypt"
)

const (
	DriverSQLite   = "sqlite"
	DriverPostgres = "postgres"

	EnvDev = "dev"
)

var (
	ErrMissingSecret   = errors.New("SECRET_KEY is required outside dev")
	ErrUnknownDriver   = errors.New("unknown DATABASE_DRIVER")
	ErrMissingDatabase = errors.New("DATABASE_URL is required for the postgres driver")
)

type Config struct {
	SecretKey      string        // Required outside dev: HS256 signing secret
	TokenIssuer    string        // Optional: iss claim (default: smartbank-api)
	AccessTokenTTL time.Duration // Optional: token lifetime (default: 30m)
	BcryptCost     int           // Optional: bcrypt work factor (default: bcrypt.DefaultCost)

	DatabaseDriver string // Optional: sqlite or postgres (default: sqlite)
	DatabaseFile   string // Optional: SQLite database file (default: ./smartbank.db)
	DatabaseURL    string // Required for postgres: pgx DSN

	Env                 string        // Environment (dev, staging, prod) (default: dev)
	LogLevel            string        // Log level (debug, info, warn, error) (default: info)
	LogFormat           string        // Log format (json, text) (default: json)
	Port                int           // HTTP server port (default: 8080)
	ShutdownGracePeriod time.Duration // Graceful shutdown timeout (default: 10s)

	StrictLimit   httpx.RateLimitConfig
	ModerateLimit httpx.RateLimitConfig
	LenientLimit  httpx.RateLimitConfig
	PublicLimit   httpx.RateLimitConfig
}

func LoadConfig() Config {
	return Config{
		SecretKey:      os.Getenv("SECRET_KEY"),
		TokenIssuer:    getEnvOrDefault("TOKEN_ISSUER", "smartbank-api"),
		AccessTokenTTL: time.Duration(getEnvIntOrDefault("ACCESS_TOKEN_EXPIRE_MINUTES", 30)) * time.Minute,
		BcryptCost:     getEnvIntOrDefault("BCRYPT_COST", bcrypt.DefaultCost),

		DatabaseDriver: getEnvOrDefault("DATABASE_DRIVER", DriverSQLite),
		DatabaseFile:   getEnvOrDefault("DATABASE_FILE", "smartbank.db"),
		DatabaseURL:    os.Getenv("DATABASE_URL"),

		Env:                 getEnvOrDefault("ENV", EnvDev),
		LogLevel:            getEnvOrDefault("LOG_LEVEL", "info"),
		LogFormat:           getEnvOrDefault("LOG_FORMAT", "json"),
		Port:                getEnvIntOrDefault("PORT", 8080),
		ShutdownGracePeriod: getEnvDurationOrDefault("SHUTDOWN_GRACE_PERIOD", 10*time.Second),

		StrictLimit:   httpx.ParseRateLimitFromEnv("STRICT", httpx.StrictLimit),
		ModerateLimit: httpx.ParseRateLimitFromEnv("MODERATE", httpx.ModerateLimit),
		LenientLimit:  httpx.ParseRateLimitFromEnv("LENIENT", httpx.LenientLimit),
		PublicLimit:   httpx.ParseRateLimitFromEnv("PUBLIC", httpx.PublicLimit),
	}
}

// Validate reports configuration that cannot start a server. An empty secret
// is allowed in dev, where New generates a throwaway one.
func (c Config) Validate() error {
	var errs []error

	if c.SecretKey == "" && c.Env != EnvDev {
		errs = append(errs, ErrMissingSecret)
	}
	switch c.DatabaseDriver {
	case DriverSQLite:
	case DriverPostgres:
		if c.DatabaseURL == "" {
			errs = append(errs, ErrMissingDatabase)
		}
	default:
		errs = append(errs, fmt.Errorf("%w: %q", ErrUnknownDriver, c.DatabaseDriver))
	}
	if c.AccessTokenTTL <= 0 {
		errs = append(errs, fmt.Errorf("ACCESS_TOKEN_EXPIRE_MINUTES must be positive, got %s", c.AccessTokenTTL))
	}
	if c.BcryptCost < bcrypt.MinCost || c.BcryptCost > bcrypt.MaxCost {
		errs = append(errs, fmt.Errorf("BCRYPT_COST must be within [%d, %d], got %d", bcrypt.MinCost, bcrypt.MaxCost, c.BcryptCost))
	}

	return errors.Join(errs...)
}

func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvIntOrDefault(key string, defaultValue int) int {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}

	if intValue, err := strconv.Atoi(value); err == nil {
		return intValue
	}

	return defaultValue
}

func getEnvDurationOrDefault(key string, defaultValue time.Duration) time.Duration {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}

	// Try parsing as duration (e.g., "1h", "30m", "90s")
	if duration, err := time.ParseDuration(value); err == nil {
		return duration
	}

	// Bare integers are seconds.
	if seconds, err := strconv.Atoi(value); err == nil {
		return time.Duration(seconds) * time.Second
	}

	return defaultValue
}
