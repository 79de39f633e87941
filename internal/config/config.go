package config

import (
	"errors"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Server     ServerConfig
	Database   DatabaseConfig
	Auth       AuthConfig
	Pagination PaginationConfig
	Reconcile  ReconcileConfig
}

type ServerConfig struct {
	Host         string
	Port         int
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
}

type DatabaseConfig struct {
	Host         string
	Port         int
	User         string
	Password     string
	Database     string
	SSLMode      string
	MaxOpenConns int
	MaxIdleConns int
}

type AuthConfig struct {
	// Secret signs every issued token. There is no fallback: the
	// process refuses to start without it.
	Secret   string
	TokenTTL time.Duration
}

type PaginationConfig struct {
	DefaultPageSize int
	MaxPageSize     int
}

type ReconcileConfig struct {
	// Schedule is a cron expression for the rating reconcile sweep.
	// Empty disables the sweep.
	Schedule string
}

// Load builds the configuration from the environment, reading an
// optional .env file first.
func Load() (*Config, error) {
	_ = godotenv.Load()

	secret := os.Getenv("RECIPE_APP_SECRET")
	if secret == "" {
		return nil, errors.New("the RECIPE_APP_SECRET environment variable must be set; a .env file may be used for convenience")
	}

	return &Config{
		Server: ServerConfig{
			Host:         getEnv("SERVER_HOST", "0.0.0.0"),
			Port:         getEnvAsInt("SERVER_PORT", 8080),
			ReadTimeout:  time.Duration(getEnvAsInt("SERVER_READ_TIMEOUT", 30)) * time.Second,
			WriteTimeout: time.Duration(getEnvAsInt("SERVER_WRITE_TIMEOUT", 30)) * time.Second,
		},
		Database: DatabaseConfig{
			Host:         getEnv("RECIPE_DATABASE_HOST", "localhost"),
			Port:         getEnvAsInt("RECIPE_DATABASE_PORT", 5432),
			User:         getEnv("RECIPE_DATABASE_USER", "postgres"),
			Password:     getEnv("RECIPE_DATABASE_PASSWORD", "postgres"),
			Database:     getEnv("RECIPE_DATABASE_NAME", "recipes"),
			SSLMode:      getEnv("RECIPE_DATABASE_SSL_MODE", "disable"),
			MaxOpenConns: getEnvAsInt("RECIPE_DATABASE_MAX_OPEN_CONNS", 25),
			MaxIdleConns: getEnvAsInt("RECIPE_DATABASE_MAX_IDLE_CONNS", 5),
		},
		Auth: AuthConfig{
			Secret:   secret,
			TokenTTL: time.Duration(getEnvAsInt("RECIPE_TOKEN_TTL_HOURS", 24*30)) * time.Hour,
		},
		Pagination: PaginationConfig{
			DefaultPageSize: getEnvAsInt("RECIPE_DEFAULT_PAGE_SIZE", 20),
			MaxPageSize:     getEnvAsInt("RECIPE_MAX_PAGE_SIZE", 50),
		},
		Reconcile: ReconcileConfig{
			Schedule: getEnv("RECIPE_RECONCILE_SCHEDULE", "@hourly"),
		},
	}, nil
}

func (c *DatabaseConfig) DSN() string {
	return "host=" + c.Host +
		" port=" + strconv.Itoa(c.Port) +
		" user=" + c.User +
		" password=" + c.Password +
		" dbname=" + c.Database +
		" sslmode=" + c.SSLMode
}

func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	if value, exists := os.LookupEnv(key); exists {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}
