package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Config aggregates runtime configuration for the client.
type Config struct {
	App         AppConfig
	API         APIConfig
	Credentials CredentialsConfig
	Redis       RedisConfig
	Logger      LoggerConfig
	Auth        AuthConfig
	Release     ReleaseConfig
}

// AppConfig controls the local gateway process.
type AppConfig struct {
	Name    string
	Env     string
	Host    string
	Port    string
	Version string
}

// APIConfig points the client at the backend.
type APIConfig struct {
	BaseURL        string
	Prefix         string
	TimeoutSeconds int
}

// CredentialsConfig selects where bearer tokens persist.
type CredentialsConfig struct {
	Backend string
	File    string
}

// RedisConfig holds Redis connection values for the redis credential backend.
type RedisConfig struct {
	Addr     string
	Password string
	DB       int
}

// LoggerConfig configures logging behavior.
type LoggerConfig struct {
	Level string
}

// AuthConfig defines routing-to-credential parameters.
type AuthConfig struct {
	StudentActions    []string
	AmbiguousFallback bool
}

// ReleaseConfig carries the default scoring weights for releasing results.
type ReleaseConfig struct {
	Alpha float64
	Beta  float64
	Gamma float64
}

// Load reads configuration from environment variables, applying defaults where possible.
func Load() (*Config, error) {
	_ = godotenv.Load()

	redisDB, err := strconv.Atoi(getEnv("REDIS_DB", "0"))
	if err != nil {
		return nil, fmt.Errorf("invalid REDIS_DB: %w", err)
	}

	cfg := &Config{
		App: AppConfig{
			Name:    getEnv("APP_NAME", "autoassess-client"),
			Env:     getEnv("APP_ENV", "development"),
			Host:    getEnv("GATEWAY_HOST", "0.0.0.0"),
			Port:    getEnv("GATEWAY_PORT", "5173"),
			Version: getEnv("APP_VERSION", "dev"),
		},
		API: APIConfig{
			BaseURL:        getEnv("API_BASE_URL", "http://localhost:8000"),
			Prefix:         getEnv("API_PREFIX", "/api"),
			TimeoutSeconds: getEnvAsInt("HTTP_TIMEOUT_SECONDS", 0),
		},
		Credentials: CredentialsConfig{
			Backend: getEnv("CRED_BACKEND", "file"),
			File:    getEnv("CRED_FILE", defaultCredentialsFile()),
		},
		Redis: RedisConfig{
			Addr:     getEnv("REDIS_ADDR", "127.0.0.1:6379"),
			Password: os.Getenv("REDIS_PASSWORD"),
			DB:       redisDB,
		},
		Logger: LoggerConfig{
			Level: getEnv("LOG_LEVEL", "info"),
		},
		Auth: AuthConfig{
			StudentActions:    getEnvAsList("AUTH_STUDENT_ACTIONS", []string{"/run", "/submit"}),
			AmbiguousFallback: getEnvAsBool("AUTH_AMBIGUOUS_FALLBACK", true),
		},
		Release: ReleaseConfig{
			Alpha: getEnvAsFloat("RELEASE_ALPHA", 0.6),
			Beta:  getEnvAsFloat("RELEASE_BETA", 0.4),
			Gamma: getEnvAsFloat("RELEASE_GAMMA", 10),
		},
	}

	return cfg, nil
}

// Addr returns the local gateway bind address.
func (a AppConfig) Addr() string {
	return fmt.Sprintf("%s:%s", a.Host, a.Port)
}

// Timeout returns the configured client timeout, zero meaning none.
func (a APIConfig) Timeout() time.Duration {
	if a.TimeoutSeconds <= 0 {
		return 0
	}
	return time.Duration(a.TimeoutSeconds) * time.Second
}

func defaultCredentialsFile() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return ".autoassess-credentials.json"
	}
	return filepath.Join(dir, "autoassess", "credentials.json")
}

func getEnv(key, fallback string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return fallback
}

func getEnvAsInt(key string, fallback int) int {
	val := os.Getenv(key)
	if val == "" {
		return fallback
	}
	parsed, err := strconv.Atoi(val)
	if err != nil {
		return fallback
	}
	return parsed
}

func getEnvAsFloat(key string, fallback float64) float64 {
	val := os.Getenv(key)
	if val == "" {
		return fallback
	}
	parsed, err := strconv.ParseFloat(val, 64)
	if err != nil {
		return fallback
	}
	return parsed
}

func getEnvAsBool(key string, fallback bool) bool {
	val := os.Getenv(key)
	if val == "" {
		return fallback
	}
	parsed, err := strconv.ParseBool(val)
	if err != nil {
		return fallback
	}
	return parsed
}

func getEnvAsList(key string, fallback []string) []string {
	val := os.Getenv(key)
	if val == "" {
		return fallback
	}
	parts := strings.Split(val, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	if len(out) == 0 {
		return fallback
	}
	return out
}
