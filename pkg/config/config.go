package config

import (
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Server     ServerConfig
	Groq       GroqConfig
	Ollama     OllamaConfig
	Generation GenerationConfig
	Retriever  RetrieverConfig
	Logger     LoggerConfig
}

type LoggerConfig struct {
	Level string
}

type ServerConfig struct {
	Port         string
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
}

type GroqConfig struct {
	APIKey  string
	BaseURL string
	Model   string
	Timeout time.Duration
}

type OllamaConfig struct {
	BaseURL string
	Model   string
	Timeout time.Duration
}

type GenerationConfig struct {
	Chain              []string
	MaxRetries         int
	RetryDelay         time.Duration
	DefaultTemperature float64
	DefaultMaxTokens   int
}

type RetrieverConfig struct {
	EmbeddingDim int
	TopK         int
}

func Load() (*Config, error) {
	// Try to load .env file from current directory or project root
	envFiles := []string{".env", "../.env", "../../.env"}
	for _, envFile := range envFiles {
		if err := godotenv.Load(envFile); err == nil {
			break
		}
	}
	// If no .env file was found, continue with environment variables
	// directly (useful for Docker/K8s)

	readTimeout, _ := strconv.Atoi(getEnv("SERVER_READ_TIMEOUT", "30"))
	writeTimeout, _ := strconv.Atoi(getEnv("SERVER_WRITE_TIMEOUT", "30"))
	groqTimeout, _ := strconv.Atoi(getEnv("GROQ_TIMEOUT", "60"))
	ollamaTimeout, _ := strconv.Atoi(getEnv("OLLAMA_TIMEOUT", "90"))
	maxRetries, _ := strconv.Atoi(getEnv("MAX_RETRIES", "3"))
	retryDelay, _ := strconv.Atoi(getEnv("RETRY_DELAY", "2"))
	defaultTemperature, _ := strconv.ParseFloat(getEnv("DEFAULT_TEMPERATURE", "0.7"), 64)
	defaultMaxTokens, _ := strconv.Atoi(getEnv("DEFAULT_MAX_TOKENS", "256"))
	embeddingDim, _ := strconv.Atoi(getEnv("EMBEDDING_DIM", "128"))
	topK, _ := strconv.Atoi(getEnv("RETRIEVER_TOP_K", "3"))

	return &Config{
		Server: ServerConfig{
			Port:         getEnv("SERVER_PORT", "8080"),
			ReadTimeout:  time.Duration(readTimeout) * time.Second,
			WriteTimeout: time.Duration(writeTimeout) * time.Second,
		},
		Groq: GroqConfig{
			APIKey:  getEnv("GROQ_API_KEY", ""),
			BaseURL: getEnv("GROQ_BASE_URL", "https://api.groq.com/openai/v1"),
			Model:   getEnv("GROQ_MODEL", "llama-3.1-70b-versatile"),
			Timeout: time.Duration(groqTimeout) * time.Second,
		},
		Ollama: OllamaConfig{
			BaseURL: getEnv("OLLAMA_BASE_URL", "http://localhost:11434"),
			Model:   getEnv("OLLAMA_MODEL", "llama3"),
			Timeout: time.Duration(ollamaTimeout) * time.Second,
		},
		Generation: GenerationConfig{
			Chain:              splitList(getEnv("PROVIDER_CHAIN", "groq,ollama,local")),
			MaxRetries:         maxRetries,
			RetryDelay:         time.Duration(retryDelay) * time.Second,
			DefaultTemperature: defaultTemperature,
			DefaultMaxTokens:   defaultMaxTokens,
		},
		Retriever: RetrieverConfig{
			EmbeddingDim: embeddingDim,
			TopK:         topK,
		},
		Logger: LoggerConfig{
			Level: getEnv("LOG_LEVEL", "info"),
		},
	}, nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func splitList(value string) []string {
	parts := strings.Split(value, ",")
	result := make([]string, 0, len(parts))
	for _, part := range parts {
		if part = strings.TrimSpace(part); part != "" {
			result = append(result, part)
		}
	}
	return result
}
