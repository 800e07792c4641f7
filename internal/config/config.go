package config

import (
	"fmt"
	"log"
	"os"
	"strconv"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
)

type Config struct {
	App      AppConfig
	Database DatabaseConfig
	Graph    GraphConfig
	Ai       AIConfig
}

type AppConfig struct {
	Environment string
	LogFilePath string
}

type DatabaseConfig struct {
	Connection string `validate:"required"`
}

type GraphConfig struct {
	URI      string `validate:"required"`
	Username string `validate:"required"`
	Password string `validate:"required"`
}

type AIConfig struct {
	LLMProvider         string `validate:"required"`
	LLMModel            string `validate:"required"`
	OpenRouterAPIKey    string
	OpenRouterBaseURL   string `validate:"required,url"`
	HuggingFaceAPIToken string
	EmbeddingModel      string `validate:"required"`
	EmbeddingDimensions int    `validate:"gt=0"`
	VectorK             int    `validate:"gte=0"`
	GraphK              int    `validate:"gte=0"`
}

func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		log.Println("Note: .env file not found, usage system environment")
	}

	cfg := &Config{
		App: AppConfig{
			Environment: getEnv("GO_ENV", "development"),
			LogFilePath: getEnv("LOG_FILE_PATH", "chat.log"),
		},
		Database: DatabaseConfig{
			Connection: getEnv("POSTGRES_URL", ""),
		},
		Graph: GraphConfig{
			URI:      getEnv("NEO4J_URI", "neo4j://localhost:7687"),
			Username: getEnv("NEO4J_USERNAME", "neo4j"),
			Password: getEnv("NEO4J_PASSWORD", ""),
		},
		Ai: AIConfig{
			LLMProvider:         getEnv("LLM_PROVIDER", "openrouter"),
			LLMModel:            getEnv("OPENROUTER_LLM_MODEL", "meta-llama/llama-3.1-8b-instruct"),
			OpenRouterAPIKey:    getEnv("OPENROUTER_API_KEY", ""),
			OpenRouterBaseURL:   getEnv("OPENROUTER_BASE_URL", "https://openrouter.ai/api/v1"),
			HuggingFaceAPIToken: getEnv("HF_API_TOKEN", ""),
			EmbeddingModel:      getEnv("EMBEDDING_MODEL_NAME", "sentence-transformers/all-MiniLM-L6-v2"),
			EmbeddingDimensions: getEnvAsInt("EMBEDDING_DIMENSIONS", 384),
			VectorK:             getEnvAsInt("RETRIEVAL_VECTOR_K", 4),
			GraphK:              getEnvAsInt("RETRIEVAL_GRAPH_K", 2),
		},
	}

	if err := validator.New().Struct(cfg); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return cfg, nil
}

func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}

func getEnvAsInt(key string, fallback int) int {
	strValue := getEnv(key, "")
	if value, err := strconv.Atoi(strValue); err == nil {
		return value
	}
	return fallback
}
