package config

import (
	"errors"
	"fmt"
	"log"
	"net/mail"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

// Record store drivers
const (
	StoreDriverPostgres = "postgres"
	StoreDriverRedis    = "redis"
	StoreDriverS3       = "s3"
)

// Mail drivers
const (
	MailDriverSMTP   = "smtp"
	MailDriverResend = "resend"
)

type Config struct {
	Port           string
	GinMode        string
	LogLevel       string
	AllowedOrigins []string
	// Per-request deadline handed to the record store and mail transport
	RequestTimeoutSeconds int
	// Record store
	RecordStoreDriver string
	RecordCollection  string // table, stream or key prefix depending on driver
	DBUrl             string
	DBAutoMigrate     bool
	// Redis/Upstash Configuration
	UpstashRedisURL      string
	UpstashRedisPassword string
	// S3-compatible object storage
	S3Provider        string
	S3Region          string
	S3AccessKeyID     string
	S3SecretAccessKey string
	S3Bucket          string
	WasabiEndpoint    string
	// Mail
	MailDriver     string
	SMTPHost       string
	SMTPPort       string
	SMTPUsername   string
	SMTPPassword   string
	SMTPFromEmail  string
	SMTPFromName   string
	ContactEmailTo string
	ResendAPIKey   string
	NotifyTimezone string
}

func LoadConfig() (*Config, error) {
	// .env is optional; production injects real environment variables
	_ = godotenv.Load()

	cfg := &Config{
		Port:                  getEnv("PORT", "8080"),
		GinMode:               getEnv("GIN_MODE", ""),
		LogLevel:              getEnv("LOG_LEVEL", "info"),
		AllowedOrigins:        getEnvList("CORS_ALLOWED_ORIGINS", []string{"http://localhost:3000"}),
		RequestTimeoutSeconds: getEnvInt("REQUEST_TIMEOUT_SECONDS", 15),
		// Record store
		RecordStoreDriver: strings.ToLower(getEnv("RECORD_STORE_DRIVER", StoreDriverPostgres)),
		RecordCollection:  getEnv("RECORD_COLLECTION", "contact_forms"),
		DBUrl:             getEnv("DATABASE_URL", ""),
		DBAutoMigrate:     getEnvBool("DB_AUTO_MIGRATE", true),
		// Redis/Upstash Configuration
		UpstashRedisURL:      getEnv("UPSTASH_REDIS_URL", ""),
		UpstashRedisPassword: getEnv("UPSTASH_REDIS_PASSWORD", ""),
		// S3 / Wasabi
		S3Provider:        getEnv("S3_PROVIDER", "aws"),
		S3Region:          getEnv("S3_REGION", "us-east-1"),
		S3AccessKeyID:     getEnv("S3_ACCESS_KEY_ID", ""),
		S3SecretAccessKey: getEnv("S3_SECRET_ACCESS_KEY", ""),
		S3Bucket:          getEnv("S3_BUCKET", ""),
		WasabiEndpoint:    getEnv("WASABI_ENDPOINT", ""),
		// Mail
		MailDriver:     strings.ToLower(getEnv("MAIL_DRIVER", MailDriverSMTP)),
		SMTPHost:       getEnv("SMTP_HOST", ""),
		SMTPPort:       getEnv("SMTP_PORT", "587"),
		SMTPUsername:   getEnv("SMTP_USERNAME", ""),
		SMTPPassword:   getEnv("SMTP_PASSWORD", ""),
		SMTPFromEmail:  getEnv("SMTP_FROM_EMAIL", ""),
		SMTPFromName:   getEnv("SMTP_FROM_NAME", "Listing Inquiries"),
		ContactEmailTo: getEnv("CONTACT_EMAIL_TO", ""),
		ResendAPIKey:   getEnv("RESEND_API_KEY", ""),
		NotifyTimezone: getEnv("NOTIFY_TIMEZONE", "America/New_York"),
	}

	if cfg.RecordStoreDriver == StoreDriverPostgres && cfg.DBUrl == "" {
		log.Println("WARNING: DATABASE_URL is missing. Application may fail to connect.")
	}

	return cfg, nil
}

// Validate reports every setting the selected drivers need but did not get.
func (c *Config) Validate() error {
	var errs []error

	switch c.RecordStoreDriver {
	case StoreDriverPostgres:
		if c.DBUrl == "" {
			errs = append(errs, errors.New("DATABASE_URL is required for the postgres record store"))
		}
	case StoreDriverRedis:
		if c.UpstashRedisURL == "" {
			errs = append(errs, errors.New("UPSTASH_REDIS_URL is required for the redis record store"))
		}
	case StoreDriverS3:
		if c.S3Bucket == "" {
			errs = append(errs, errors.New("S3_BUCKET is required for the s3 record store"))
		}
	default:
		errs = append(errs, fmt.Errorf("unknown RECORD_STORE_DRIVER %q", c.RecordStoreDriver))
	}
	if c.RecordCollection == "" {
		errs = append(errs, errors.New("RECORD_COLLECTION must not be empty"))
	}

	switch c.MailDriver {
	case MailDriverSMTP:
		if c.SMTPHost == "" {
			errs = append(errs, errors.New("SMTP_HOST is required for the smtp mail driver"))
		}
	case MailDriverResend:
		if c.ResendAPIKey == "" {
			errs = append(errs, errors.New("RESEND_API_KEY is required for the resend mail driver"))
		}
	default:
		errs = append(errs, fmt.Errorf("unknown MAIL_DRIVER %q", c.MailDriver))
	}

	if _, err := mail.ParseAddress(c.SMTPFromEmail); err != nil {
		errs = append(errs, fmt.Errorf("SMTP_FROM_EMAIL is not a valid address: %w", err))
	}
	if _, err := mail.ParseAddress(c.ContactEmailTo); err != nil {
		errs = append(errs, fmt.Errorf("CONTACT_EMAIL_TO is not a valid address: %w", err))
	}
	if c.RequestTimeoutSeconds <= 0 {
		errs = append(errs, errors.New("REQUEST_TIMEOUT_SECONDS must be positive"))
	}

	return errors.Join(errs...)
}

// MailFrom is the sender identity used on every notification.
func (c *Config) MailFrom() string {
	addr := mail.Address{Name: c.SMTPFromName, Address: c.SMTPFromEmail}
	return addr.String()
}

func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}

// getEnvInt returns an integer environment variable or fallback if not set/invalid
func getEnvInt(key string, fallback int) int {
	if value, exists := os.LookupEnv(key); exists {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return fallback
}

// getEnvBool returns a boolean environment variable or fallback if not set/invalid
func getEnvBool(key string, fallback bool) bool {
	if value, exists := os.LookupEnv(key); exists {
		if boolVal, err := strconv.ParseBool(value); err == nil {
			return boolVal
		}
	}
	return fallback
}

// getEnvList splits a comma separated variable, dropping blanks
func getEnvList(key string, fallback []string) []string {
	value, exists := os.LookupEnv(key)
	if !exists {
		return fallback
	}
	var out []string
	for _, part := range strings.Split(value, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
