package config

import (
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// devJWTSecret only signs tokens outside release mode.
const devJWTSecret = "change-me"

const minReleaseJWTSecretLength = 32

type Config struct {
	Port    string
	GinMode string

	// Database
	DBDriver    string
	DatabaseURL string
	DBHost      string
	DBPort      string
	DBUser      string
	DBPassword  string
	DBName      string
	DBSSLMode   string

	// Security
	JWTSecret          string
	CORSAllowedOrigins []string

	// Predictions
	PredictionWindowEnforced bool
	InProgressWindow         time.Duration

	SchedulerEnabled bool

	// Mail
	MailDSN              string
	MailerEnvelopeSender string
	FrontendURL          string
}

// LoadConfig reads the optional .env file, then resolves every setting from the
// environment with sensible development defaults.
func LoadConfig() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	v := viper.New()
	v.AutomaticEnv()
	setDefaults(v)

	cfg := &Config{
		Port:                     v.GetString("PORT"),
		GinMode:                  v.GetString("GIN_MODE"),
		DBDriver:                 strings.ToLower(v.GetString("DB_DRIVER")),
		DatabaseURL:              v.GetString("DATABASE_URL"),
		DBHost:                   v.GetString("DB_HOST"),
		DBPort:                   v.GetString("DB_PORT"),
		DBUser:                   v.GetString("DB_USER"),
		DBPassword:               v.GetString("DB_PASSWORD"),
		DBName:                   v.GetString("DB_NAME"),
		DBSSLMode:                v.GetString("DB_SSLMODE"),
		JWTSecret:                v.GetString("JWT_SECRET"),
		CORSAllowedOrigins:       splitList(v.GetString("CORS_ALLOWED_ORIGINS")),
		PredictionWindowEnforced: v.GetBool("PREDICTION_WINDOW_ENFORCED"),
		InProgressWindow:         v.GetDuration("MATCH_IN_PROGRESS_WINDOW"),
		SchedulerEnabled:         v.GetBool("SCHEDULER_ENABLED"),
		MailDSN:                  v.GetString("MAIL_DSN"),
		MailerEnvelopeSender:     v.GetString("MAILER_ENVELOPE_SENDER"),
		FrontendURL:              v.GetString("FRONTEND_URL"),
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("PORT", "8080")
	v.SetDefault("GIN_MODE", "debug")
	v.SetDefault("DB_DRIVER", "postgres")
	v.SetDefault("DB_HOST", "localhost")
	v.SetDefault("DB_PORT", "5432")
	v.SetDefault("DB_USER", "postgres")
	v.SetDefault("DB_PASSWORD", "postgres")
	v.SetDefault("DB_NAME", "prode")
	v.SetDefault("DB_SSLMODE", "disable")
	v.SetDefault("JWT_SECRET", devJWTSecret)
	v.SetDefault("CORS_ALLOWED_ORIGINS", "*")
	v.SetDefault("PREDICTION_WINDOW_ENFORCED", true)
	v.SetDefault("MATCH_IN_PROGRESS_WINDOW", "2h")
	v.SetDefault("SCHEDULER_ENABLED", true)
	v.SetDefault("FRONTEND_URL", "http://localhost:3000")
}

func (c *Config) Validate() error {
	if c.DBDriver != "postgres" && c.DBDriver != "mysql" {
		return fmt.Errorf("unsupported DB_DRIVER %q (expected postgres or mysql)", c.DBDriver)
	}
	if c.JWTSecret == "" {
		return fmt.Errorf("JWT_SECRET must not be empty")
	}
	if c.GinMode == "release" && (c.JWTSecret == devJWTSecret || len(c.JWTSecret) < minReleaseJWTSecretLength) {
		return fmt.Errorf("JWT_SECRET must be set to a random value of at least %d characters in release mode", minReleaseJWTSecretLength)
	}
	if c.InProgressWindow <= 0 {
		return fmt.Errorf("MATCH_IN_PROGRESS_WINDOW must be a positive duration")
	}
	return nil
}

// DSN returns DATABASE_URL when set, otherwise builds a driver specific DSN
// from the individual DB_* settings.
func (c *Config) DSN() string {
	if c.DatabaseURL != "" {
		return c.DatabaseURL
	}
	if c.DBDriver == "mysql" {
		return fmt.Sprintf("%s:%s@tcp(%s:%s)/%s?charset=utf8mb4&parseTime=True&loc=UTC",
			c.DBUser, c.DBPassword, c.DBHost, c.DBPort, c.DBName)
	}
	return fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%s sslmode=%s TimeZone=UTC",
		c.DBHost, c.DBUser, c.DBPassword, c.DBName, c.DBPort, c.DBSSLMode)
}

func splitList(raw string) []string {
	var out []string
	for _, item := range strings.Split(raw, ",") {
		if item = strings.TrimSpace(item); item != "" {
			out = append(out, item)
		}
	}
	return out
}
