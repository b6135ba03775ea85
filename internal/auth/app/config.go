package app

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"

	"github.com/acadcopilot/copilot/internal/auth/service"
)

const (
	DriverSQLite   = "sqlite"
	DriverPostgres = "postgres"

	MailDriverLog  = "log"
	MailDriverSMTP = "smtp"
)

type Config struct {
	DatabaseDriver string // Optional: sqlite or postgres (default: sqlite)
	DatabaseFile   string // Optional: path to SQLite database file (default: ./auth.db)
	DatabaseURL    string // Required for postgres: connection string

	SessionTTL               time.Duration // Optional: session lifetime (default: 168h)
	CookieSecure             bool          // Optional: Secure attribute on the session cookie (default: true)
	RequireEmailVerification bool          // Optional: signup needs a verified email (default: true)
	CodeTTL                  time.Duration // Optional: verification code lifetime (default: 10m)
	CodeCooldown             time.Duration // Optional: minimum gap between codes per email, 0 disables (default: 60s)
	VerifiedTTL              time.Duration // Optional: how long a verified email may sign up (default: 30m)

	MailDriver   string // Optional: log or smtp (default: log)
	SMTPHost     string // Required for smtp
	SMTPPort     int    // Optional: SMTP port (default: 587)
	SMTPUsername string // Optional: SMTP PLAIN auth user
	SMTPPassword string // Optional: SMTP PLAIN auth password
	SMTPFrom     string // Required for smtp: sender address

	OTLPEndpoint string // Optional: OTLP gRPC collector, tracing is off when empty
	OTLPInsecure bool   // Optional: plaintext connection to the collector

	Env                  string        // Environment (dev, staging, prod) (default: dev)
	LogLevel             string        // Log level (debug, info, warn, error) (default: info)
	LogFormat            string        // Log format (json, text) (default: json)
	Port                 int           // HTTP server port (default: 8080)
	TrustProxyHeaders    bool          // Rate limit by X-Forwarded-For/X-Real-IP, only behind a proxy that sets them (default: false)
	ShutdownGracePeriod  time.Duration // Graceful shutdown timeout (default: 10s)
	HousekeepingInterval time.Duration // Housekeeping interval (default: 1h)
}

// LoadConfig reads the environment. A .env file in the working directory is
// loaded first, variables already set in the environment take precedence.
func LoadConfig() Config {
	_ = godotenv.Load()

	return Config{
		DatabaseDriver: getEnvOrDefault("AUTH_DATABASE_DRIVER", DriverSQLite),
		DatabaseFile:   getEnvOrDefault("AUTH_DATABASE_FILE", "auth.db"),
		DatabaseURL:    os.Getenv("AUTH_DATABASE_URL"),

		SessionTTL:               getEnvDurationOrDefault("AUTH_SESSION_TTL", service.DefaultSessionTTL),
		CookieSecure:             getEnvBoolOrDefault("AUTH_COOKIE_SECURE", true),
		RequireEmailVerification: getEnvBoolOrDefault("AUTH_REQUIRE_EMAIL_VERIFICATION", true),
		CodeTTL:                  getEnvDurationOrDefault("AUTH_CODE_TTL", service.DefaultCodeTTL),
		CodeCooldown:             getEnvDurationOrDefault("AUTH_CODE_COOLDOWN", service.DefaultCodeCooldown),
		VerifiedTTL:              getEnvDurationOrDefault("AUTH_VERIFIED_TTL", service.DefaultVerifiedTTL),

		MailDriver:   getEnvOrDefault("MAIL_DRIVER", MailDriverLog),
		SMTPHost:     os.Getenv("SMTP_HOST"),
		SMTPPort:     getEnvIntOrDefault("SMTP_PORT", 587),
		SMTPUsername: os.Getenv("SMTP_USERNAME"),
		SMTPPassword: os.Getenv("SMTP_PASSWORD"),
		SMTPFrom:     os.Getenv("SMTP_FROM"),

		OTLPEndpoint: os.Getenv("OTEL_EXPORTER_OTLP_ENDPOINT"),
		OTLPInsecure: getEnvBoolOrDefault("OTEL_EXPORTER_OTLP_INSECURE", false),

		Env:                  getEnvOrDefault("ENV", "dev"),
		LogLevel:             getEnvOrDefault("LOG_LEVEL", "info"),
		LogFormat:            getEnvOrDefault("LOG_FORMAT", "json"),
		Port:                 getEnvIntOrDefault("PORT", 8080),
		TrustProxyHeaders:    getEnvBoolOrDefault("TRUST_PROXY_HEADERS", false),
		ShutdownGracePeriod:  getEnvDurationOrDefault("SHUTDOWN_GRACE_PERIOD", 10*time.Second),
		HousekeepingInterval: getEnvDurationOrDefault("HOUSEKEEPING_INTERVAL", 1*time.Hour),
	}
}

// Validate reports settings the service cannot start with.
func (c Config) Validate() error {
	var errs []error

	switch c.DatabaseDriver {
	case DriverSQLite:
		if c.DatabaseFile == "" {
			errs = append(errs, errors.New("AUTH_DATABASE_FILE is required for the sqlite driver"))
		}
	case DriverPostgres:
		if c.DatabaseURL == "" {
			errs = append(errs, errors.New("AUTH_DATABASE_URL is required for the postgres driver"))
		}
	default:
		errs = append(errs, fmt.Errorf("unknown AUTH_DATABASE_DRIVER %q", c.DatabaseDriver))
	}

	switch c.MailDriver {
	case MailDriverLog:
	case MailDriverSMTP:
		if c.SMTPHost == "" || c.SMTPFrom == "" {
			errs = append(errs, errors.New("SMTP_HOST and SMTP_FROM are required for the smtp mail driver"))
		}
	default:
		errs = append(errs, fmt.Errorf("unknown MAIL_DRIVER %q", c.MailDriver))
	}

	if c.SessionTTL <= 0 {
		errs = append(errs, errors.New("AUTH_SESSION_TTL must be positive"))
	}
	if c.CodeCooldown < 0 {
		errs = append(errs, errors.New("AUTH_CODE_COOLDOWN must not be negative"))
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

func getEnvBoolOrDefault(key string, defaultValue bool) bool {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}

	if boolValue, err := strconv.ParseBool(value); err == nil {
		return boolValue
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

	// Try parsing as integer minutes (for backwards compatibility)
	if minutes, err := strconv.Atoi(value); err == nil {
		return time.Duration(minutes) * time.Minute
	}

	return defaultValue
}
