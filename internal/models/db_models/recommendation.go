package db_models

import (
	"time"

	"tripmate/internal/models/request_models"
	"tripmate/internal/models/response_models"
)

type Recommendation struct {
	ID              int64                                `gorm:"primaryKey;autoIncrement"`
	ItineraryText   string                               `gorm:"type:text;not null"`
	Interests       []string                             `gorm:"serializer:json;type:jsonb"`
	LeisureTime     *request_models.LeisureTime          `gorm:"serializer:json;type:jsonb"`
	Recommendations response_models.RecommendationResult `gorm:"serializer:json;type:jsonb;not null"`
	CreatedAt       time.Time
}
