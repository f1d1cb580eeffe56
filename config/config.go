package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
	"go.uber.org/zap"
)

// Database drivers
const (
	DriverMongo    = "mongo"
	DriverPostgres = "postgres"
)

// Config holds the project config values
type Config struct {
	Env     string
	Port    string
	BaseURL string

	DBDriver       string
	URL            string
	DatabaseName   string
	DatabaseURL    string
	MaxPoolSize    int
	QueryTimeout   time.Duration
	RequestTimeout time.Duration

	JWTSecret    string
	JWTTTL       time.Duration
	AuthCacheTTL time.Duration

	CORSOrigins []string

	SendGridAPIKey   string
	MailFromName     string
	MailFromEmail    string
	ReminderSchedule string

	Cloudinary CloudinaryConfig
}

// CloudinaryConfig holds the credentials used to sign resource media uploads
type CloudinaryConfig struct {
	CloudName    string
	APIKey       string
	APISecret    string
	UploadPreset string
}

// Development reports whether the service runs in development mode
func (c Config) Development() bool {
	return c.Env == "development"
}

// New sets up all config related services: it loads a .env file when present, reads the
// environment through viper and replaces the global zap logger.
func New() (*Config, error) {
	// a missing .env is fine, real deployments use the environment
	_ = godotenv.Load()

	v := viper.New()
	setDefaults(v)
	v.AutomaticEnv()

	conf := &Config{
		Env:     strings.ToLower(v.GetString("ENV")),
		Port:    v.GetString("PORT"),
		BaseURL: v.GetString("BASE_URL"),

		DBDriver:       strings.ToLower(v.GetString("DB_DRIVER")),
		URL:            v.GetString("DB_URI"),
		DatabaseName:   v.GetString("DB_NAME"),
		DatabaseURL:    v.GetString("DATABASE_URL"),
		MaxPoolSize:    v.GetInt("DB_MAX_POOL_SIZE"),
		QueryTimeout:   v.GetDuration("QUERY_TIMEOUT"),
		RequestTimeout: v.GetDuration("REQUEST_TIMEOUT"),

		JWTSecret:    v.GetString("JWT_SECRET"),
		JWTTTL:       v.GetDuration("JWT_TTL"),
		AuthCacheTTL: v.GetDuration("AUTH_CACHE_TTL"),

		CORSOrigins: splitList(v.GetString("CORS_ORIGINS")),

		SendGridAPIKey:   v.GetString("SENDGRID_API_KEY"),
		MailFromName:     v.GetString("MAIL_FROM_NAME"),
		MailFromEmail:    v.GetString("MAIL_FROM_EMAIL"),
		ReminderSchedule: v.GetString("REMINDER_SCHEDULE"),

		Cloudinary: CloudinaryConfig{
			CloudName:    v.GetString("CLOUDINARY_CLOUD_NAME"),
			APIKey:       v.GetString("CLOUDINARY_API_KEY"),
			APISecret:    v.GetString("CLOUDINARY_API_SECRET"),
			UploadPreset: v.GetString("CLOUDINARY_UPLOAD_PRESET"),
		},
	}

	logger, err := setLogger(conf.Env)
	if err != nil {
		return nil, fmt.Errorf("failed to build logger: %w", err)
	}
	_ = zap.ReplaceGlobals(logger)

	if err := conf.validate(); err != nil {
		return nil, err
	}
	return conf, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("ENV", "development")
	v.SetDefault("PORT", "5001")
	v.SetDefault("BASE_URL", "http://localhost:5001")
	v.SetDefault("DB_DRIVER", DriverMongo)
	v.SetDefault("DB_URI", "mongodb://127.0.0.1:27017")
	v.SetDefault("DB_NAME", "stress_buster")
	v.SetDefault("DB_MAX_POOL_SIZE", 10)
	v.SetDefault("QUERY_TIMEOUT", 10*time.Second)
	v.SetDefault("REQUEST_TIMEOUT", 30*time.Second)
	v.SetDefault("JWT_TTL", 7*24*time.Hour)
	v.SetDefault("AUTH_CACHE_TTL", time.Minute)
	v.SetDefault("MAIL_FROM_NAME", "StressBuster")
	v.SetDefault("MAIL_FROM_EMAIL", "no-reply@stressbuster.com")
	v.SetDefault("REMINDER_SCHEDULE", "0 8 * * *")
}

func (c *Config) validate() error {
	switch c.DBDriver {
	case DriverMongo:
	case DriverPostgres:
		if c.DatabaseURL == "" {
			return errors.New("DATABASE_URL must be set when DB_DRIVER is postgres")
		}
	default:
		return fmt.Errorf("unsupported DB_DRIVER %q", c.DBDriver)
	}

	if c.JWTSecret == "" {
		if !c.Development() {
			return errors.New("JWT_SECRET must be set outside development")
		}
		zap.S().Warn("JWT_SECRET is not set, using an insecure development secret")
		c.JWTSecret = "stressbuster-development-secret"
	}
	if c.MaxPoolSize <= 0 {
		c.MaxPoolSize = 10
	}
	return nil
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}
