// internal/config/config.go
package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type Config struct {
	Environment string
	Server      ServerConfig
	Database    DatabaseConfig
	Session     SessionConfig
	Commerce    CommerceConfig
	Translation TranslationConfig
	Payment     PaymentConfig
	I18n        I18nConfig
	Frontend    FrontendConfig
}

type FrontendConfig struct {
	BaseURL string
}

type ServerConfig struct {
	Port         string
	Host         string
	ReadTimeout  int
	WriteTimeout int
	IdleTimeout  int
}

type DatabaseConfig struct {
	Host         string
	Port         string
	User         string
	Password     string
	Database     string
	SSLMode      string
	MaxOpenConns int
	MaxIdleConns int
	MaxLifetime  int
	LogLevel     string
}

type SessionConfig struct {
	SecretKey string
	TTL       int // in hours
}

type CommerceConfig struct {
	BaseURL         string
	StorefrontToken string
	RequestTimeout  int // in seconds
	CatalogLimit    int
}

type TranslationConfig struct {
	APIURL string
	APIKey string
	Model  string
}

type PaymentConfig struct {
	StripeSecretKey string
	SuccessURL      string
	CancelURL       string
}

type I18nConfig struct {
	DefaultLocale string
	LocalesPath   string
}

func Load() (*Config, error) {
	// Load .env file if it exists
	godotenv.Load()

	config := &Config{
		Environment: getEnv("ENVIRONMENT", "development"),
		Server: ServerConfig{
			Port:         getEnv("SERVER_PORT", "8080"),
			Host:         getEnv("SERVER_HOST", "localhost"),
			ReadTimeout:  getEnvAsInt("SERVER_READ_TIMEOUT", 15),
			WriteTimeout: getEnvAsInt("SERVER_WRITE_TIMEOUT", 15),
			IdleTimeout:  getEnvAsInt("SERVER_IDLE_TIMEOUT", 60),
		},
		Database: DatabaseConfig{
			Host:         getEnv("DB_HOST", "localhost"),
			Port:         getEnv("DB_PORT", "5432"),
			User:         getEnv("DB_USER", "postgres"),
			Password:     getEnv("DB_PASSWORD", ""),
			Database:     getEnv("DB_NAME", "storefront"),
			SSLMode:      getEnv("DB_SSL_MODE", "disable"),
			MaxOpenConns: getEnvAsInt("DB_MAX_OPEN_CONNS", 25),
			MaxIdleConns: getEnvAsInt("DB_MAX_IDLE_CONNS", 25),
			MaxLifetime:  getEnvAsInt("DB_MAX_LIFETIME", 300),
			LogLevel:     getEnv("DB_LOG_LEVEL", "silent"),
		},
		Session: SessionConfig{
			SecretKey: getEnv("SESSION_SECRET", "your-secret-key-change-in-production"),
			TTL:       getEnvAsInt("SESSION_TTL", 720), // 30 days
		},
		Commerce: CommerceConfig{
			BaseURL:         getEnv("COMMERCE_API_URL", "http://localhost:9090"),
			StorefrontToken: getEnv("COMMERCE_STOREFRONT_TOKEN", ""),
			RequestTimeout:  getEnvAsInt("COMMERCE_REQUEST_TIMEOUT", 10),
			CatalogLimit:    getEnvAsInt("COMMERCE_CATALOG_LIMIT", 20),
		},
		Translation: TranslationConfig{
			APIURL: getEnv("TRANSLATION_API_URL", "https://api.openai.com/v1/chat/completions"),
			APIKey: getEnv("TRANSLATION_API_KEY", ""),
			Model:  getEnv("TRANSLATION_MODEL", "gpt-4o-mini"),
		},
		Payment: PaymentConfig{
			StripeSecretKey: getEnv("STRIPE_SECRET_KEY", ""),
			SuccessURL:      getEnv("CHECKOUT_SUCCESS_URL", "http://localhost:3000/checkout/success"),
			CancelURL:       getEnv("CHECKOUT_CANCEL_URL", "http://localhost:3000/cart"),
		},
		I18n: I18nConfig{
			DefaultLocale: getEnv("DEFAULT_LOCALE", "en"),
			LocalesPath:   getEnv("LOCALES_PATH", "./internal/i18n/locales"),
		},
		Frontend: FrontendConfig{
			BaseURL: getEnv("FRONTEND_BASE_URL", "http://localhost:3000"),
		},
	}

	return config, config.Validate()
}

func (c *Config) Validate() error {
	if c.Session.SecretKey == "your-secret-key-change-in-production" && c.Environment == "production" {
		return fmt.Errorf("session secret key must be changed in production")
	}

	if c.Database.Password == "" && c.Environment == "production" {
		return fmt.Errorf("database password is required in production")
	}

	if c.Commerce.StorefrontToken == "" && c.Environment == "production" {
		return fmt.Errorf("commerce storefront token is required in production")
	}

	return nil
}

// Helper functions
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}
