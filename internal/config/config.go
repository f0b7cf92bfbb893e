package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
)

// CSRF enforcement modes. Advisory matches the legacy deployment: a failed
// or missing anti-forgery token logs a warning but does not block the
// request. Strict rejects it.
const (
	CSRFStrict   = "strict"
	CSRFAdvisory = "advisory"
)

// Config holds all configuration for the application
type Config struct {
	AppMode         string
	Port            string
	CSRFEnforcement string
	Upload          UploadConfig
	Database        DatabaseConfig
	JWT             JWTConfig
	Cookie          CookieConfig
}

// DatabaseConfig holds database configuration
type DatabaseConfig struct {
	Host     string
	Port     string
	User     string
	Password string
	DBName   string
}

// JWTConfig holds bearer token configuration
type JWTConfig struct {
	Secret        string
	TokenTTLHours int
}

// CookieConfig holds cookie configuration
type CookieConfig struct {
	Secure   bool
	SameSite string
	Domain   string
}

// UploadConfig holds file store configuration
type UploadConfig struct {
	Dir     string
	BaseURL string
}

// Global config instance
var AppConfig *Config

// Load reads configuration from .env file and environment variables
func Load() (*Config, error) {
	// Load .env file (ignore error if file doesn't exist in production)
	if err := godotenv.Load(); err != nil {
		logrus.Warn("Warning: .env file not found, using environment variables")
	}

	appMode := strings.TrimSpace(getEnv("APP_MODE", "dev"))
	if appMode != "dev" && appMode != "prod" {
		return nil, fmt.Errorf("invalid APP_MODE: '%s' (must be 'dev' or 'prod')", appMode)
	}

	csrfMode := strings.TrimSpace(getEnv("CSRF_ENFORCEMENT", CSRFAdvisory))
	if csrfMode != CSRFStrict && csrfMode != CSRFAdvisory {
		return nil, fmt.Errorf("invalid CSRF_ENFORCEMENT: '%s' (must be 'strict' or 'advisory')", csrfMode)
	}

	config := &Config{
		AppMode:         appMode,
		Port:            getEnv("PORT", "3000"),
		CSRFEnforcement: csrfMode,
		Upload: UploadConfig{
			Dir:     getEnv("UPLOAD_DIR", "./uploads"),
			BaseURL: getEnv("UPLOAD_BASE_URL", "/files"),
		},
		Database: loadDatabaseConfig(appMode),
		JWT:      loadJWTConfig(appMode),
		Cookie:   loadCookieConfig(appMode),
	}

	AppConfig = config

	logrus.Infof("✅ Configuration loaded successfully [MODE: %s]", appMode)
	return config, nil
}

// loadDatabaseConfig loads database config based on mode
func loadDatabaseConfig(mode string) DatabaseConfig {
	prefix := "DEV_"
	if mode == "prod" {
		prefix = "PROD_"
	}

	return DatabaseConfig{
		Host:     getEnv(prefix+"DB_HOST", "localhost"),
		Port:     getEnv(prefix+"DB_PORT", "3306"),
		User:     getEnv(prefix+"DB_USER", "root"),
		Password: getEnv(prefix+"DB_PASS", ""),
		DBName:   getEnv(prefix+"DB_NAME", "snp_mealhub"),
	}
}

// loadJWTConfig loads bearer token config based on mode
func loadJWTConfig(mode string) JWTConfig {
	prefix := "DEV_"
	if mode == "prod" {
		prefix = "PROD_"
	}

	ttlHours, _ := strconv.Atoi(getEnv("TOKEN_TTL_HOURS", "12"))

	return JWTConfig{
		Secret:        getEnv(prefix+"JWT_SECRET", "default_secret"),
		TokenTTLHours: ttlHours,
	}
}

// loadCookieConfig loads cookie config based on mode
func loadCookieConfig(mode string) CookieConfig {
	prefix := "DEV_"
	if mode == "prod" {
		prefix = "PROD_"
	}

	secure, _ := strconv.ParseBool(getEnv(prefix+"COOKIE_SECURE", "false"))

	return CookieConfig{
		Secure:   secure,
		SameSite: getEnv("COOKIE_SAMESITE", "lax"),
		Domain:   getEnv("COOKIE_DOMAIN", ""),
	}
}

// getEnv gets environment variable with default value
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// IsDev returns true if running in development mode
func (c *Config) IsDev() bool {
	return c.AppMode == "dev"
}

// IsProd returns true if running in production mode
func (c *Config) IsProd() bool {
	return c.AppMode == "prod"
}

// CSRFAdvisoryMode returns true when anti-forgery failures should warn
// instead of block
func (c *Config) CSRFAdvisoryMode() bool {
	return c.CSRFEnforcement == CSRFAdvisory
}

// GetAllowedOrigins returns allowed origins for CORS
func (c *Config) GetAllowedOrigins() string {
	origins := getEnv("ALLOWED_ORIGINS", "")
	if origins == "" {
		if c.IsDev() {
			return "*"
		}
		return "https://meals.nutrition.gov.lk"
	}
	return origins
}
