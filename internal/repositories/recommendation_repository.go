package repositories

import (
	"context"
	"sort"
	"sync"
	"time"

	"tripmate/internal/models/request_models"
	"tripmate/internal/models/response_models"
)

// RecommendationRepositoryInterface lookups return (nil, nil) for unknown ids.
type RecommendationRepositoryInterface interface {
	// SaveRecommendation assigns the next sequential id and a creation
	// timestamp.
	SaveRecommendation(ctx context.Context, request request_models.CreateRecommendationRequest, result response_models.RecommendationResult) (*response_models.StoredRecommendation, error)
	GetRecommendationByID(ctx context.Context, id int64) (*response_models.StoredRecommendation, error)
	ListRecommendations(ctx context.Context) ([]response_models.StoredRecommendation, error)
}

// InMemoryRecommendationRepository keeps records for the process lifetime.
// The id counter is guarded by the same mutex as the map, so concurrent saves
// get distinct sequential ids.
type InMemoryRecommendationRepository struct {
	mu     sync.RWMutex
	data   map[int64]response_models.StoredRecommendation
	nextID int64
}

func NewInMemoryRecommendationRepository() RecommendationRepositoryInterface {
	return &InMemoryRecommendationRepository{
		data: make(map[int64]response_models.StoredRecommendation),
	}
}

func (r *InMemoryRecommendationRepository) SaveRecommendation(ctx context.Context, request request_models.CreateRecommendationRequest, result response_models.RecommendationResult) (*response_models.StoredRecommendation, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.nextID++
	stored := response_models.StoredRecommendation{
		ID:              r.nextID,
		ItineraryText:   request.ItineraryText,
		Interests:       request.Interests,
		LeisureTime:     request.LeisureTime,
		Recommendations: result,
		CreatedAt:       time.Now().UTC(),
	}
	r.data[stored.ID] = stored

	return &stored, nil
}

func (r *InMemoryRecommendationRepository) GetRecommendationByID(ctx context.Context, id int64) (*response_models.StoredRecommendation, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	stored, ok := r.data[id]
	if !ok {
		return nil, nil
	}
	return &stored, nil
}

func (r *InMemoryRecommendationRepository) ListRecommendations(ctx context.Context) ([]response_models.StoredRecommendation, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	list := make([]response_models.StoredRecommendation, 0, len(r.data))
	for _, stored := range r.data {
		list = append(list, stored)
	}
	sort.Slice(list, func(i, j int) bool { return list[i].ID < list[j].ID })

	return list, nil
}
