package config

import (
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
)

type Config struct {
	Port        string
	DatabaseURL string
	JWTSecret   string
	BaseURL     string

	DataDir    string
	UploadsDir string
	BackupsDir string

	CORSOrigin string
	Production bool
	LogLevel   string

	ResetAdmin           bool
	DefaultAdminPassword string
}

// UseDatabase reports whether the relational store is configured.
// The choice is made once at startup.
func (c *Config) UseDatabase() bool {
	return c.DatabaseURL != ""
}

func Load() *Config {
	if err := godotenv.Load(); err != nil {
		logrus.Info("No .env file found. Using system environment variables.")
	}

	return &Config{
		Port:        getEnv("PORT", "5000"),
		DatabaseURL: getEnv("DATABASE_URL", ""),
		JWTSecret:   getEnv("JWT_SECRET", ""),
		BaseURL:     strings.TrimRight(getEnv("BASE_URL", "http://localhost:5000"), "/"),

		DataDir:    getEnv("DATA_DIR", "./data"),
		UploadsDir: getEnv("UPLOADS_DIR", "./uploads"),
		BackupsDir: getEnv("BACKUPS_DIR", "./backups"),

		CORSOrigin: getEnv("CORS_ORIGIN", "*"),
		Production: getEnv("APP_ENV", "") == "production",
		LogLevel:   getEnv("LOG_LEVEL", "info"),

		ResetAdmin:           getBool("RESET_ADMIN", false),
		DefaultAdminPassword: getEnv("DEFAULT_ADMIN_PASSWORD", ""),
	}
}

// MustJWTSecret aborts when the server is started without a signing key.
func (c *Config) MustJWTSecret() string {
	if c.JWTSecret == "" {
		logrus.Fatal("❌ Missing required environment variable: JWT_SECRET")
	}
	return c.JWTSecret
}

func getEnv(key string, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}

func getBool(key string, fallback bool) bool {
	v, ok := os.LookupEnv(key)
	if !ok {
		return fallback
	}
	b, err := strconv.ParseBool(strings.TrimSpace(v))
	if err != nil {
		return fallback
	}
	return b
}
