package utils

import (
	"context"
	"fmt"
	"strings"
	"time"
)

const (
	// Destination extraction only needs a "City, Country" answer.
	DestinationMaxTokens = 20
	// Full recommendation payloads fit comfortably in 1500 tokens.
	RecommendationMaxTokens = 1500

	aiCallTimeout = 30 * time.Second
)

// RecommendationAIInterface is the gateway to the external model. Both calls
// are blocking, bounded by a timeout, and never retried.
type RecommendationAIInterface interface {
	// ExtractDestination answers with a short "City, Country" label.
	ExtractDestination(ctx context.Context, prompt string) (string, error)
	// GenerateRecommendations answers with a JSON document only.
	GenerateRecommendations(ctx context.Context, prompt string) (string, error)
}

// NewRecommendationAIClient builds an OpenAI or Gemini backed client based on
// provider config.
func NewRecommendationAIClient(provider, apiKey, model string) (RecommendationAIInterface, error) {
	switch strings.ToLower(provider) {
	case "openai":
		return NewOpenAIRecommendationClient(apiKey, model), nil
	case "gemini":
		return NewGeminiRecommendationClient(apiKey, model)
	default:
		return nil, fmt.Errorf("unsupported AI provider: %s. Use 'openai' or 'gemini'", provider)
	}
}
