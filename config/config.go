package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

const (
	ProviderGemini = "gemini"
	ProviderOpenAI = "openai"
	ProviderVADER  = "vader"

	DefaultGeminiModel = "gemini-2.5-flash"
	DefaultOpenAIModel = "gpt-4o-mini"

	// Deliberately weak; deployments are expected to set APP_ACCESS_TOKEN.
	defaultAccessToken = "secret123"

	defaultPort              = "5001"
	defaultLLMRequestTimeout = 60 * time.Second
	defaultMaxUploadMB       = 32
)

// Config is built once at startup and handed to constructors. Nothing reads
// it from a package-level variable.
type Config struct {
	Env string

	GoogleAPIKey string
	OpenAIAPIKey string
	AccessToken  string

	LLMProvider       string
	LLMModel          string
	LLMRequestTimeout time.Duration

	Port           string
	MaxUploadBytes int64
	LogLevel       string
}

// Load reads the configuration from the process environment, applies
// defaults and validates the provider settings.
func Load() (Config, error) {
	cfg := Config{
		Env:          getEnv("APP_ENV", "dev"),
		GoogleAPIKey: os.Getenv("GOOGLE_API_KEY"),
		OpenAIAPIKey: os.Getenv("OPENAI_API_KEY"),
		AccessToken:  getEnv("APP_ACCESS_TOKEN", defaultAccessToken),
		LLMProvider:  strings.ToLower(strings.TrimSpace(getEnv("LLM_PROVIDER", ProviderGemini))),
		LLMModel:     strings.TrimSpace(os.Getenv("LLM_MODEL")),
		Port:         getEnv("PORT", defaultPort),
		LogLevel:     getEnv("LOG_LEVEL", "info"),
	}

	timeoutSeconds, err := getEnvInt("LLM_REQUEST_TIMEOUT_SECONDS", int(defaultLLMRequestTimeout/time.Second))
	if err != nil {
		return Config{}, err
	}
	if timeoutSeconds < 1 {
		return Config{}, fmt.Errorf("invalid LLM_REQUEST_TIMEOUT_SECONDS %d: must be >= 1", timeoutSeconds)
	}
	cfg.LLMRequestTimeout = time.Duration(timeoutSeconds) * time.Second

	maxUploadMB, err := getEnvInt("MAX_UPLOAD_MB", defaultMaxUploadMB)
	if err != nil {
		return Config{}, err
	}
	if maxUploadMB < 1 {
		return Config{}, fmt.Errorf("invalid MAX_UPLOAD_MB %d: must be >= 1", maxUploadMB)
	}
	cfg.MaxUploadBytes = int64(maxUploadMB) << 20

	switch cfg.LLMProvider {
	case ProviderGemini:
		if cfg.GoogleAPIKey == "" {
			return Config{}, fmt.Errorf("GOOGLE_API_KEY is required when LLM_PROVIDER=%s", ProviderGemini)
		}
		if cfg.LLMModel == "" {
			cfg.LLMModel = DefaultGeminiModel
		}
	case ProviderOpenAI:
		if cfg.OpenAIAPIKey == "" {
			return Config{}, fmt.Errorf("OPENAI_API_KEY is required when LLM_PROVIDER=%s", ProviderOpenAI)
		}
		if cfg.LLMModel == "" {
			cfg.LLMModel = DefaultOpenAIModel
		}
	case ProviderVADER:
		cfg.LLMModel = ""
	default:
		return Config{}, fmt.Errorf("LLM_PROVIDER must be one of %q, %q or %q, got %q",
			ProviderGemini, ProviderOpenAI, ProviderVADER, cfg.LLMProvider)
	}

	return cfg, nil
}

// Redacted returns a copy that is safe to log.
func (c Config) Redacted() Config {
	c.GoogleAPIKey = mask(c.GoogleAPIKey)
	c.OpenAIAPIKey = mask(c.OpenAIAPIKey)
	c.AccessToken = mask(c.AccessToken)
	return c
}

func mask(secret string) string {
	if secret == "" {
		return ""
	}
	return "****"
}

func getEnv(key, defaultValue string) string {
	if value, ok := os.LookupEnv(key); ok && value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) (int, error) {
	value := strings.TrimSpace(os.Getenv(key))
	if value == "" {
		return defaultValue, nil
	}
	parsed, err := strconv.Atoi(value)
	if err != nil {
		return 0, fmt.Errorf("invalid %s %q: %w", key, value, err)
	}
	return parsed, nil
}
