package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	ServerAddr     string
	AllowedOrigin  string
	MaxAnswerWords int
	Cohere         CohereConfig
	Logging        LoggingConfig
}

// CohereConfig carries everything the chat-completion client needs.
type CohereConfig struct {
	BaseURL     string
	APIKey      string
	Model       string
	MaxTokens   int
	Temperature float64
	Timeout     time.Duration
}

type LoggingConfig struct {
	Level        string
	Encoding     string
	Development  bool
	EnableCaller bool
	ServiceName  string
}

var (
	cfg     *Config
	loadErr error
	once    sync.Once
)

func Load() (*Config, error) {
	once.Do(func() {
		if err := loadEnvFiles(); err != nil {
			loadErr = fmt.Errorf("load env files: %w", err)
			return
		}

		apiKey := strings.TrimSpace(os.Getenv("API_KEY"))
		if apiKey == "" {
			apiKey = strings.TrimSpace(os.Getenv("COHERE_API_KEY"))
		}

		cfg = &Config{
			ServerAddr:     getEnv("SERVER_ADDR", ":8000"),
			AllowedOrigin:  getEnv("ALLOWED_ORIGIN", "https://gen01.onrender.com"),
			MaxAnswerWords: parsePositiveInt(getEnv("MAX_ANSWER_WORDS", "2000"), 2000),
			Cohere: CohereConfig{
				BaseURL:     strings.TrimRight(getEnv("COHERE_API_BASE", "https://api.cohere.com/v2"), "/"),
				APIKey:      apiKey,
				Model:       getEnv("COHERE_MODEL", "command-r-plus-08-2024"),
				MaxTokens:   parsePositiveInt(getEnv("MAX_TOKENS", "1000"), 1000),
				Temperature: parseFloat(getEnv("TEMPERATURE", "0.2"), 0.2),
				Timeout:     parseDuration(getEnv("COHERE_TIMEOUT", "60s"), 60*time.Second),
			},
			Logging: LoggingConfig{
				Level:        strings.ToLower(getEnv("LOG_LEVEL", "info")),
				Encoding:     strings.ToLower(getEnv("LOG_ENCODING", "console")),
				Development:  parseBool(getEnv("LOG_DEVELOPMENT", "false"), false),
				EnableCaller: parseBool(getEnv("LOG_CALLER", "false"), false),
				ServiceName:  getEnv("SERVICE_NAME", "interview-assistant"),
			},
		}
	})

	return cfg, loadErr
}

func loadEnvFiles() error {
	if err := godotenv.Load(); err != nil {
		var pathErr *fs.PathError
		if errors.As(err, &pathErr) {
			// ignore a missing .env so that environment variables can be supplied externally
			return nil
		}

		return err
	}

	return nil
}

func getEnv(key, fallback string) string {
	if value := strings.TrimSpace(os.Getenv(key)); value != "" {
		return value
	}

	return strings.TrimSpace(fallback)
}

func parsePositiveInt(raw string, fallback int) int {
	value, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil || value <= 0 {
		return fallback
	}

	return value
}

func parseFloat(raw string, fallback float64) float64 {
	value, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
	if err != nil || value < 0 {
		return fallback
	}

	return value
}

func parseDuration(raw string, fallback time.Duration) time.Duration {
	value, err := time.ParseDuration(strings.TrimSpace(raw))
	if err != nil || value <= 0 {
		return fallback
	}

	return value
}

func parseBool(raw string, fallback bool) bool {
	value, err := strconv.ParseBool(strings.TrimSpace(raw))
	if err != nil {
		return fallback
	}

	return value
}
