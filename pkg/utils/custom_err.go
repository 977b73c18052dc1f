package utils

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrItineraryTooShort = errors.New("Itinerary must be at least 10 characters")
	ErrNoInterests       = errors.New("Please select at least one interest")

	ErrNoFileUploaded     = errors.New("No file uploaded")
	ErrFileTypeNotAllowed = errors.New("Invalid file type. Please upload PDF, TXT, PNG, or JPG files.")
	ErrFileTooLarge       = errors.New("File is too large. Maximum size is 5MB.")

	ErrEmptyModelResponse   = errors.New("No recommendations generated")
	ErrModelResponseNotJSON = errors.New("Invalid response format from AI service")

	ErrRecommendationNotFound = errors.New("Recommendation not found")
	ErrAccountNotFound        = errors.New("account not found")
	ErrInvalidCredentials     = errors.New("invalid username or password")
	ErrUsernameTaken          = errors.New("username already exists")
	ErrDatabaseError          = errors.New("database error")

	ErrProviderAuth      = errors.New("AI provider API key is invalid or missing. Please check your configuration.")
	ErrProviderQuota     = errors.New("AI provider quota exceeded. Please check your usage limits.")
	ErrProviderRateLimit = errors.New("AI provider rate limit exceeded. Please try again in a moment.")
)

// SchemaError reports a required field missing from the model's JSON response.
type SchemaError struct {
	Field string
}

func (e *SchemaError) Error() string {
	return fmt.Sprintf("Invalid recommendations structure: missing %s", e.Field)
}

// ProviderError carries an unclassified provider failure with its original
// message intact.
type ProviderError struct {
	Message string
}

func (e *ProviderError) Error() string {
	return e.Message
}

// ClassifyProviderError buckets a provider failure by substring match on its
// message: auth, quota, rate limit, or generic with the message preserved
// verbatim.
func ClassifyProviderError(err error) error {
	if err == nil {
		return nil
	}

	msg := err.Error()
	switch {
	case strings.Contains(msg, "API key"):
		return ErrProviderAuth
	case strings.Contains(msg, "quota"):
		return ErrProviderQuota
	case strings.Contains(msg, "rate limit"):
		return ErrProviderRateLimit
	default:
		return &ProviderError{Message: msg}
	}
}
