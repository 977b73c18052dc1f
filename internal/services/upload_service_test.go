package services

import (
	"mime/multipart"
	"net/textproto"
	"testing"

	"github.com/stretchr/testify/assert"
	"tripmate/pkg/utils"
)

func fileHeader(contentType string, size int64) *multipart.FileHeader {
	header := make(textproto.MIMEHeader)
	header.Set("Content-Type", contentType)
	return &multipart.FileHeader{
		Filename: "itinerary",
		Header:   header,
		Size:     size,
	}
}

func TestExtractItineraryTextRejectsOversizedFile(t *testing.T) {
	service := NewUploadService()

	_, err := service.ExtractItineraryText(fileHeader("text/plain", MaxUploadSize+1))
	assert.ErrorIs(t, err, utils.ErrFileTooLarge)
}

func TestExtractItineraryTextRejectsDisallowedType(t *testing.T) {
	service := NewUploadService()

	_, err := service.ExtractItineraryText(fileHeader("application/zip", 128))
	assert.ErrorIs(t, err, utils.ErrFileTypeNotAllowed)
}

func TestExtractItineraryTextIgnoresCharsetSuffix(t *testing.T) {
	service := NewUploadService()

	// Size and type checks pass; the open fails because this header has no
	// backing part, which is enough to show the type was accepted.
	_, err := service.ExtractItineraryText(fileHeader("text/plain; charset=utf-8", 128))
	assert.NotErrorIs(t, err, utils.ErrFileTypeNotAllowed)
}
