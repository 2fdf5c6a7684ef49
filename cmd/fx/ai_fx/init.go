package ai_fx

import (
	"log"
	"os"
	"strings"

	"go.uber.org/fx"

	"tourapp/pkg/utils"
)

var Module = fx.Provide(
	ProvideGenerativeClient)

// GenerativeConfig holds configuration for generative clients
type GenerativeConfig struct {
	Provider string
	APIKey   string
	Model    string
}

// ProvideGenerativeClient creates a generative client based on environment variables
func ProvideGenerativeClient() (utils.GenerativeClientInterface, error) {
	config := getGenerativeConfig()

	log.Printf("Initializing %s generative client with model: %s", config.Provider, config.Model)

	return utils.NewGenerativeClient(config.Provider, config.APIKey, config.Model)
}

// getGenerativeConfig reads configuration from environment variables
func getGenerativeConfig() GenerativeConfig {
	provider := getEnvWithDefault("AI_PROVIDER", "gemini")

	var apiKey, model string

	switch strings.ToLower(provider) {
	case "openai":
		apiKey = os.Getenv("OPENAI_API_KEY")
		model = getEnvWithDefault("OPENAI_MODEL", "gpt-4o-mini")
		if apiKey == "" {
			log.Fatal("OPENAI_API_KEY is required when using OpenAI provider")
		}
	case "gemini":
		apiKey = os.Getenv("GEMINI_API_KEY")
		model = getEnvWithDefault("GEMINI_MODEL", "gemini-flash-latest")
		if apiKey == "" {
			log.Fatal("GEMINI_API_KEY is required when using Gemini provider")
		}
	}

	return GenerativeConfig{
		Provider: provider,
		APIKey:   apiKey,
		Model:    model,
	}
}

// getEnvWithDefault returns environment variable or default value
func getEnvWithDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
