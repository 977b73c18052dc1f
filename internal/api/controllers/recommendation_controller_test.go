package controllers

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"tripmate/internal/models/request_models"
	"tripmate/internal/models/response_models"
	"tripmate/pkg/utils"
)

type stubRecommendationService struct {
	stored *response_models.StoredRecommendation
	list   []response_models.StoredRecommendation
	err    error
}

func (s *stubRecommendationService) GenerateRecommendations(ctx context.Context, request request_models.CreateRecommendationRequest) (*response_models.StoredRecommendation, error) {
	return s.stored, s.err
}

func (s *stubRecommendationService) GetRecommendationByID(ctx context.Context, id int64) (*response_models.StoredRecommendation, error) {
	return s.stored, s.err
}

func (s *stubRecommendationService) ListRecommendations(ctx context.Context) ([]response_models.StoredRecommendation, error) {
	return s.list, s.err
}

func newRecommendationRouter(service *stubRecommendationService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	controller := NewRecommendationController(service)

	r := gin.New()
	r.POST("/api/recommendations", controller.CreateRecommendationHandler)
	r.GET("/api/recommendations", controller.ListRecommendationsHandler)
	r.GET("/api/recommendations/:id", controller.GetRecommendationHandler)
	return r
}

func storedFixture() *response_models.StoredRecommendation {
	return &response_models.StoredRecommendation{
		ID:            7,
		ItineraryText: "Flight: LAX to Tokyo, Dec 15-22.",
		Interests:     []string{"Museums"},
		Recommendations: response_models.RecommendationResult{
			MustVisitPlaces: []response_models.MustVisitPlace{
				{Name: "Senso-ji", Rating: 4.7, Category: "cultural"},
			},
			PersonalizedRecommendations: response_models.PersonalizedRecommendations{
				Food:     []response_models.FoodRecommendation{},
				Culture:  []response_models.PlaceRecommendation{{Name: "Tokyo National Museum", MatchReason: "Matches: Museums"}},
				Nature:   []response_models.PlaceRecommendation{},
				Shopping: []response_models.PlaceRecommendation{},
			},
		},
		CreatedAt: time.Date(2024, 12, 1, 9, 0, 0, 0, time.UTC),
	}
}

func TestCreateRecommendationHandlerSuccess(t *testing.T) {
	router := newRecommendationRouter(&stubRecommendationService{stored: storedFixture()})

	body := `{"itineraryText": "Flight: LAX to Tokyo, Dec 15-22.", "interests": ["Museums"]}`
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/recommendations", bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Success         bool                                  `json:"success"`
		ID              int64                                 `json:"id"`
		Recommendations *response_models.RecommendationResult `json:"recommendations"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.True(t, resp.Success)
	assert.Equal(t, int64(7), resp.ID)
	require.NotNil(t, resp.Recommendations)
	assert.Len(t, resp.Recommendations.MustVisitPlaces, 1)
}

func TestCreateRecommendationHandlerMalformedBody(t *testing.T) {
	router := newRecommendationRouter(&stubRecommendationService{})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/recommendations", bytes.NewBufferString("{not json"))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "Invalid request format")
}

func TestCreateRecommendationHandlerStatusMapping(t *testing.T) {
	tests := []struct {
		name       string
		serviceErr error
		wantStatus int
		wantText   string
	}{
		{"validation error", utils.ErrItineraryTooShort, http.StatusBadRequest, "Itinerary must be at least 10 characters"},
		{"auth error", utils.ErrProviderAuth, http.StatusBadGateway, "API key is invalid or missing"},
		{"rate limit error", utils.ErrProviderRateLimit, http.StatusBadGateway, "rate limit"},
		{"schema error", &utils.SchemaError{Field: "mustVisitPlaces"}, http.StatusBadGateway, "missing mustVisitPlaces"},
		{"generic provider error", &utils.ProviderError{Message: "connection reset by peer"}, http.StatusBadGateway, "connection reset by peer"},
		{"database error", utils.ErrDatabaseError, http.StatusInternalServerError, "Internal server error"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router := newRecommendationRouter(&stubRecommendationService{err: tt.serviceErr})

			body := `{"itineraryText": "Flight: LAX to Tokyo, Dec 15-22.", "interests": ["Museums"]}`
			w := httptest.NewRecorder()
			req := httptest.NewRequest(http.MethodPost, "/api/recommendations", bytes.NewBufferString(body))
			req.Header.Set("Content-Type", "application/json")
			router.ServeHTTP(w, req)

			assert.Equal(t, tt.wantStatus, w.Code)
			assert.Contains(t, w.Body.String(), tt.wantText)
		})
	}
}

func TestGetRecommendationHandler(t *testing.T) {
	t.Run("found", func(t *testing.T) {
		router := newRecommendationRouter(&stubRecommendationService{stored: storedFixture()})

		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/recommendations/7", nil))

		require.Equal(t, http.StatusOK, w.Code)
		var stored response_models.StoredRecommendation
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &stored))
		assert.Equal(t, int64(7), stored.ID)
		assert.Equal(t, "Flight: LAX to Tokyo, Dec 15-22.", stored.ItineraryText)
	})

	t.Run("unknown id", func(t *testing.T) {
		router := newRecommendationRouter(&stubRecommendationService{err: utils.ErrRecommendationNotFound})

		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/recommendations/99", nil))

		assert.Equal(t, http.StatusNotFound, w.Code)
		assert.JSONEq(t, `{"message": "Recommendation not found"}`, w.Body.String())
	})

	t.Run("non-numeric id", func(t *testing.T) {
		router := newRecommendationRouter(&stubRecommendationService{})

		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/recommendations/abc", nil))

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestListRecommendationsHandler(t *testing.T) {
	router := newRecommendationRouter(&stubRecommendationService{
		list: []response_models.StoredRecommendation{*storedFixture()},
	})

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/recommendations", nil))

	require.Equal(t, http.StatusOK, w.Code)
	var list []response_models.StoredRecommendation
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &list))
	assert.Len(t, list, 1)
}
