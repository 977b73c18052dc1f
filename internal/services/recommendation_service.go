package services

import (
	"context"
	"encoding/json"
	"log"
	"strings"
	"time"

	"tripmate/internal/models/request_models"
	"tripmate/internal/models/response_models"
	"tripmate/internal/repositories"
	"tripmate/pkg/utils"
)

type RecommendationServiceInterface interface {
	GenerateRecommendations(ctx context.Context, request request_models.CreateRecommendationRequest) (*response_models.StoredRecommendation, error)
	GetRecommendationByID(ctx context.Context, id int64) (*response_models.StoredRecommendation, error)
	ListRecommendations(ctx context.Context) ([]response_models.StoredRecommendation, error)
}

type RecommendationService struct {
	aiClient utils.RecommendationAIInterface
	recRepo  repositories.RecommendationRepositoryInterface
}

func NewRecommendationService(
	aiClient utils.RecommendationAIInterface,
	recRepo repositories.RecommendationRepositoryInterface,
) RecommendationServiceInterface {
	return &RecommendationService{
		aiClient: aiClient,
		recRepo:  recRepo,
	}
}

// rawModelResponse is the untyped shape the model returns. Pointer fields
// distinguish a missing key from an empty one for schema validation.
type rawModelResponse struct {
	MustVisitPlaces             *[]response_models.MustVisitPlace `json:"mustVisitPlaces"`
	PersonalizedRecommendations *rawPersonalizedRecommendations   `json:"personalizedRecommendations"`
}

type rawPersonalizedRecommendations struct {
	Food     []response_models.FoodRecommendation  `json:"food"`
	Culture  []response_models.PlaceRecommendation `json:"culture"`
	Nature   []response_models.PlaceRecommendation `json:"nature"`
	Shopping []response_models.PlaceRecommendation `json:"shopping"`
}

// GenerateRecommendations runs the full pipeline: validate, extract the
// destination, generate recommendations, parse and schema-check the model
// JSON, filter by interest category, and persist the result. The two AI calls
// are strictly sequential because the destination is interpolated into the
// second prompt.
func (s *RecommendationService) GenerateRecommendations(ctx context.Context, request request_models.CreateRecommendationRequest) (*response_models.StoredRecommendation, error) {
	if err := validateCreateRequest(request); err != nil {
		return nil, err
	}

	startTime := time.Now()

	destination, err := s.aiClient.ExtractDestination(ctx, BuildDestinationPrompt(request.ItineraryText))
	if err != nil {
		log.Printf("Destination extraction error: %v", err)
		return nil, utils.ClassifyProviderError(err)
	}
	destination = strings.TrimSpace(destination)
	if destination == "" {
		destination = DefaultDestination
	}
	log.Printf("ts: %s - Extracted destination: %s", time.Since(startTime), destination)

	rawJSON, err := s.aiClient.GenerateRecommendations(ctx, BuildRecommendationPrompt(destination, request))
	if err != nil {
		log.Printf("Recommendation generation error: %v", err)
		return nil, utils.ClassifyProviderError(err)
	}
	log.Printf("ts: %s - Received model response (%d bytes)", time.Since(startTime), len(rawJSON))

	raw, err := parseModelResponse(rawJSON)
	if err != nil {
		return nil, err
	}

	result := FilterRecommendations(*raw.MustVisitPlaces, response_models.PersonalizedRecommendations{
		Food:     raw.PersonalizedRecommendations.Food,
		Culture:  raw.PersonalizedRecommendations.Culture,
		Nature:   raw.PersonalizedRecommendations.Nature,
		Shopping: raw.PersonalizedRecommendations.Shopping,
	}, request.Interests)

	stored, err := s.recRepo.SaveRecommendation(ctx, request, result)
	if err != nil {
		log.Printf("Failed to save recommendation: %v", err)
		return nil, utils.ErrDatabaseError
	}
	log.Printf("ts: %s - Saved recommendation %d", time.Since(startTime), stored.ID)

	return stored, nil
}

func (s *RecommendationService) GetRecommendationByID(ctx context.Context, id int64) (*response_models.StoredRecommendation, error) {
	stored, err := s.recRepo.GetRecommendationByID(ctx, id)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if stored == nil {
		return nil, utils.ErrRecommendationNotFound
	}
	return stored, nil
}

func (s *RecommendationService) ListRecommendations(ctx context.Context) ([]response_models.StoredRecommendation, error) {
	list, err := s.recRepo.ListRecommendations(ctx)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	return list, nil
}

func validateCreateRequest(request request_models.CreateRecommendationRequest) error {
	if len(request.ItineraryText) < 10 {
		return utils.ErrItineraryTooShort
	}
	if len(request.Interests) == 0 {
		return utils.ErrNoInterests
	}
	return nil
}

// parseModelResponse turns the model's text into a validated raw response:
// code fences stripped, invalid JSON rejected, required top-level fields
// checked by name.
func parseModelResponse(rawJSON string) (*rawModelResponse, error) {
	cleaned := cleanModelJSON(rawJSON)
	if cleaned == "" {
		return nil, utils.ErrEmptyModelResponse
	}

	var raw rawModelResponse
	if err := json.Unmarshal([]byte(cleaned), &raw); err != nil {
		log.Printf("Failed to parse model response: %s", cleaned)
		return nil, utils.ErrModelResponseNotJSON
	}

	if raw.MustVisitPlaces == nil {
		return nil, &utils.SchemaError{Field: "mustVisitPlaces"}
	}
	if raw.PersonalizedRecommendations == nil {
		return nil, &utils.SchemaError{Field: "personalizedRecommendations"}
	}

	return &raw, nil
}

// cleanModelJSON strips markdown formatting some models wrap around JSON.
func cleanModelJSON(rawJSON string) string {
	rawJSON = strings.ReplaceAll(rawJSON, "```json", "")
	rawJSON = strings.ReplaceAll(rawJSON, "```", "")
	return strings.TrimSpace(rawJSON)
}
