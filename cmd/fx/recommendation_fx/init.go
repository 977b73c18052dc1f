package recommendation_fx

import (
	"fmt"
	"log"
	"os"
	"strings"

	"go.uber.org/fx"
	"tripmate/internal/api/controllers"
	"tripmate/internal/repositories"
	"tripmate/internal/services"
	"tripmate/pkg/utils"
)

var Module = fx.Provide(
	ProvideRecommendationAIClient,
	ProvideRecommendationService,
	ProvideRecommendationController)

// AIConfig holds configuration for the external model client.
type AIConfig struct {
	Provider string
	APIKey   string
	Model    string
}

// ProvideRecommendationAIClient creates an AI client based on environment
// variables. A missing API key is a startup error rather than a placeholder
// credential that fails on the first request.
func ProvideRecommendationAIClient() (utils.RecommendationAIInterface, error) {
	config, err := getAIConfig()
	if err != nil {
		return nil, err
	}

	log.Printf("Initializing %s AI client with model: %s", config.Provider, config.Model)

	return utils.NewRecommendationAIClient(config.Provider, config.APIKey, config.Model)
}

func ProvideRecommendationService(
	aiClient utils.RecommendationAIInterface,
	recRepo repositories.RecommendationRepositoryInterface,
) services.RecommendationServiceInterface {
	return services.NewRecommendationService(aiClient, recRepo)
}

func ProvideRecommendationController(
	recommendationService services.RecommendationServiceInterface,
) *controllers.RecommendationController {
	return controllers.NewRecommendationController(recommendationService)
}

func getAIConfig() (AIConfig, error) {
	provider := getEnvWithDefault("AI_PROVIDER", "openai")

	var apiKey, model string

	switch strings.ToLower(provider) {
	case "openai":
		apiKey = os.Getenv("OPENAI_API_KEY")
		model = getEnvWithDefault("OPENAI_MODEL", "gpt-4o-mini")
		if apiKey == "" {
			return AIConfig{}, fmt.Errorf("OPENAI_API_KEY is required when using OpenAI provider")
		}
	case "gemini":
		apiKey = os.Getenv("GEMINI_API_KEY")
		model = getEnvWithDefault("GEMINI_MODEL", "gemini-1.5-flash")
		if apiKey == "" {
			return AIConfig{}, fmt.Errorf("GEMINI_API_KEY is required when using Gemini provider")
		}
	}

	return AIConfig{
		Provider: provider,
		APIKey:   apiKey,
		Model:    model,
	}, nil
}

func getEnvWithDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
