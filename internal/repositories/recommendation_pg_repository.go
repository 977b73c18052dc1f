package repositories

import (
	"context"
	"errors"

	"gorm.io/gorm"
	"tripmate/internal/models/db_models"
	"tripmate/internal/models/request_models"
	"tripmate/internal/models/response_models"
)

type PostgresRecommendationRepository struct {
	db *gorm.DB
}

func NewPostgresRecommendationRepository(db *gorm.DB) RecommendationRepositoryInterface {
	return &PostgresRecommendationRepository{db: db}
}

func (r *PostgresRecommendationRepository) SaveRecommendation(ctx context.Context, request request_models.CreateRecommendationRequest, result response_models.RecommendationResult) (*response_models.StoredRecommendation, error) {
	record := db_models.Recommendation{
		ItineraryText:   request.ItineraryText,
		Interests:       request.Interests,
		LeisureTime:     request.LeisureTime,
		Recommendations: result,
	}

	err := r.db.Transaction(func(tx *gorm.DB) error {
		return tx.WithContext(ctx).Create(&record).Error
	})
	if err != nil {
		return nil, err
	}

	return toStoredRecommendation(record), nil
}

func (r *PostgresRecommendationRepository) GetRecommendationByID(ctx context.Context, id int64) (*response_models.StoredRecommendation, error) {
	var record db_models.Recommendation
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&record).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return toStoredRecommendation(record), nil
}

func (r *PostgresRecommendationRepository) ListRecommendations(ctx context.Context) ([]response_models.StoredRecommendation, error) {
	var records []db_models.Recommendation
	err := r.db.WithContext(ctx).Order("id asc").Find(&records).Error
	if err != nil {
		return nil, err
	}

	list := make([]response_models.StoredRecommendation, 0, len(records))
	for _, record := range records {
		list = append(list, *toStoredRecommendation(record))
	}

	return list, nil
}

func toStoredRecommendation(record db_models.Recommendation) *response_models.StoredRecommendation {
	return &response_models.StoredRecommendation{
		ID:              record.ID,
		ItineraryText:   record.ItineraryText,
		Interests:       record.Interests,
		LeisureTime:     record.LeisureTime,
		Recommendations: record.Recommendations,
		CreatedAt:       record.CreatedAt,
	}
}
