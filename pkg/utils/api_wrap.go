package utils

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
)

func RespondError(c *gin.Context, code int, message string) {
	c.JSON(code, gin.H{"message": message})
}

// HandleServiceError maps service-layer errors to HTTP responses in one place.
// Validation and upload problems are the caller's fault (400), unknown ids are
// 404, provider-side failures are 502, everything else is a 500.
func HandleServiceError(c *gin.Context, err error) {
	var schemaErr *SchemaError
	var providerErr *ProviderError

	switch {
	case errors.Is(err, ErrItineraryTooShort),
		errors.Is(err, ErrNoInterests):
		RespondError(c, http.StatusBadRequest, err.Error())
	case errors.Is(err, ErrNoFileUploaded),
		errors.Is(err, ErrFileTypeNotAllowed),
		errors.Is(err, ErrFileTooLarge):
		RespondError(c, http.StatusBadRequest, err.Error())
	case errors.Is(err, ErrRecommendationNotFound):
		RespondError(c, http.StatusNotFound, "Recommendation not found")
	case errors.Is(err, ErrAccountNotFound),
		errors.Is(err, ErrInvalidCredentials):
		RespondError(c, http.StatusUnauthorized, "Invalid username or password")
	case errors.Is(err, ErrUsernameTaken):
		RespondError(c, http.StatusConflict, "Username already exists")
	case errors.Is(err, ErrProviderAuth),
		errors.Is(err, ErrProviderQuota),
		errors.Is(err, ErrProviderRateLimit),
		errors.Is(err, ErrEmptyModelResponse),
		errors.Is(err, ErrModelResponseNotJSON):
		log.Printf("AI provider error: %v", err)
		RespondError(c, http.StatusBadGateway, err.Error())
	case errors.As(err, &schemaErr):
		log.Printf("AI schema error: %v", err)
		RespondError(c, http.StatusBadGateway, err.Error())
	case errors.As(err, &providerErr):
		log.Printf("AI provider error: %v", err)
		RespondError(c, http.StatusBadGateway, err.Error())
	case errors.Is(err, ErrDatabaseError):
		log.Printf("Database error: %v", err)
		RespondError(c, http.StatusInternalServerError, "Internal server error")
	default:
		log.Printf("Unknown error: %v", err)
		RespondError(c, http.StatusInternalServerError, "Internal server error")
	}
}
