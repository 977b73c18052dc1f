package response_models

import (
	"time"

	"tripmate/internal/models/request_models"
)

type MustVisitPlace struct {
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Duration    string  `json:"duration"`
	Rating      float64 `json:"rating"`
	Category    string  `json:"category"`
}

type FoodRecommendation struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	PriceRange  string `json:"priceRange"`
	MatchReason string `json:"matchReason"`
	Category    string `json:"category"`
}

type PlaceRecommendation struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Duration    string `json:"duration"`
	MatchReason string `json:"matchReason"`
	Category    string `json:"category"`
}

// PersonalizedRecommendations always serializes all four category keys; a
// category the user did not select is an empty list, never null.
type PersonalizedRecommendations struct {
	Food     []FoodRecommendation  `json:"food"`
	Culture  []PlaceRecommendation `json:"culture"`
	Nature   []PlaceRecommendation `json:"nature"`
	Shopping []PlaceRecommendation `json:"shopping"`
}

type RecommendationResult struct {
	MustVisitPlaces             []MustVisitPlace            `json:"mustVisitPlaces"`
	PersonalizedRecommendations PersonalizedRecommendations `json:"personalizedRecommendations"`
}

// StoredRecommendation wraps a request/result pair with its id and creation
// time. Records are immutable once saved.
type StoredRecommendation struct {
	ID              int64                       `json:"id"`
	ItineraryText   string                      `json:"itineraryText"`
	Interests       []string                    `json:"interests"`
	LeisureTime     *request_models.LeisureTime `json:"leisureTime"`
	Recommendations RecommendationResult        `json:"recommendations"`
	CreatedAt       time.Time                   `json:"createdAt"`
}
