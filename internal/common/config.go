package common

import (
	"os"
	"strconv"
	"strings"
	"time"
)

// Config holds all application configuration
type Config struct {
	Database DatabaseConfig
	Server   ServerConfig
	LLM      LLMConfig
	Eval     EvalConfig
}

// DatabaseConfig holds database-related configuration
type DatabaseConfig struct {
	DSN              string
	MaxConns         int32
	MinConns         int32
	MaxConnLifetime  time.Duration
	MaxConnIdleTime  time.Duration
	DialTimeout      time.Duration
	StatementTimeout time.Duration
}

// ServerConfig holds HTTP server configuration
type ServerConfig struct {
	HTTPAddr string
}

// LLMConfig holds inference-provider configuration. Provider is chosen
// once at process start; the pipeline never re-reads it.
type LLMConfig struct {
	Provider    string // OPENAI | GOOGLE | ANTHROPIC
	Model       string
	APIKey      string
	Temperature float32
	MaxTokens   int
	Timeout     time.Duration
}

// EvalConfig holds pipeline defaults applied when the caller omits them.
type EvalConfig struct {
	HistoryExecutions int
	Timezone          string
}

// LoadConfig loads configuration from environment variables
func LoadConfig() *Config {
	return &Config{
		Database: DatabaseConfig{
			DSN:              getEnv("MONAI_DATABASE_URL", ""),
			MaxConns:         getEnvAsInt32("MONAI_DB_MAX_CONNS", 20),
			MinConns:         getEnvAsInt32("MONAI_DB_MIN_CONNS", 5),
			MaxConnLifetime:  getEnvAsDuration("MONAI_DB_MAX_CONN_LIFETIME", 30*time.Minute),
			MaxConnIdleTime:  getEnvAsDuration("MONAI_DB_MAX_CONN_IDLE_TIME", 5*time.Minute),
			DialTimeout:      getEnvAsDuration("MONAI_DB_DIAL_TIMEOUT", 3*time.Second),
			StatementTimeout: getEnvAsDuration("MONAI_DB_STATEMENT_TIMEOUT", 0),
		},
		Server: ServerConfig{
			HTTPAddr: getEnv("MONAI_HTTP_ADDR", ":8009"),
		},
		LLM: LLMConfig{
			Provider:    strings.ToUpper(getEnv("MONAI_LLM", "OPENAI")),
			Model:       getEnv("MONAI_LLM_MODEL", "gpt-4"),
			APIKey:      getEnv("MONAI_LLM_KEY", ""),
			Temperature: getEnvAsFloat32("MONAI_LLM_TEMPERATURE", 0.0),
			MaxTokens:   getEnvAsInt("MONAI_LLM_MAX_TOKENS", 200),
			Timeout:     getEnvAsDuration("MONAI_LLM_TIMEOUT", 45*time.Second),
		},
		Eval: EvalConfig{
			HistoryExecutions: getEnvAsInt("MONAI_HISTORY_EXECUTIONS", 10),
			Timezone:          getEnv("MONAI_TIMEZONE", "America/Sao_Paulo"),
		},
	}
}

// Helper functions for environment variable parsing
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return defaultValue
}

func getEnvAsInt32(key string, defaultValue int32) int32 {
	if value := os.Getenv(key); value != "" {
		if intVal, err := strconv.ParseInt(value, 10, 32); err == nil {
			return int32(intVal)
		}
	}
	return defaultValue
}

func getEnvAsFloat32(key string, defaultValue float32) float32 {
	if value := os.Getenv(key); value != "" {
		if floatVal, err := strconv.ParseFloat(value, 32); err == nil {
			return float32(floatVal)
		}
	}
	return defaultValue
}

func getEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if duration, err := time.ParseDuration(value); err == nil {
			return duration
		}
	}
	return defaultValue
}

// Validate validates the loaded configuration
func (c *Config) Validate() error {
	if c.Database.DSN == "" {
		return NewAppError("CONFIG_ERROR", "MONAI_DATABASE_URL is required", ErrInvalidInput)
	}
	if c.LLM.APIKey == "" {
		return NewAppError("CONFIG_ERROR", "MONAI_LLM_KEY is required", ErrInvalidInput)
	}
	switch c.LLM.Provider {
	case "OPENAI", "GOOGLE", "ANTHROPIC":
	default:
		return NewAppError("CONFIG_ERROR", "MONAI_LLM must be OPENAI, GOOGLE or ANTHROPIC", ErrInvalidInput)
	}
	if c.LLM.MaxTokens <= 0 {
		return NewAppError("CONFIG_ERROR", "MONAI_LLM_MAX_TOKENS must be positive", ErrInvalidInput)
	}
	if c.Eval.HistoryExecutions <= 0 {
		return NewAppError("CONFIG_ERROR", "MONAI_HISTORY_EXECUTIONS must be positive", ErrInvalidInput)
	}
	if c.Server.HTTPAddr == "" {
		return NewAppError("CONFIG_ERROR", "MONAI_HTTP_ADDR is required", ErrInvalidInput)
	}
	return nil
}
