package services

import (
	"io"
	"mime/multipart"
	"strings"

	"tripmate/pkg/utils"
)

// MaxUploadSize caps itinerary uploads at 5 MB.
const MaxUploadSize = 5 << 20

var allowedUploadTypes = map[string]bool{
	"text/plain":      true,
	"application/pdf": true,
	"image/png":       true,
	"image/jpeg":      true,
	"image/jpg":       true,
}

type UploadServiceInterface interface {
	ExtractItineraryText(file *multipart.FileHeader) (string, error)
}

type UploadService struct{}

func NewUploadService() UploadServiceInterface {
	return &UploadService{}
}

// ExtractItineraryText gates the upload by size and declared MIME type, then
// returns the raw bytes decoded as UTF-8. Real PDF/image text extraction is
// out of scope; the bytes pass through as-is.
func (s *UploadService) ExtractItineraryText(file *multipart.FileHeader) (string, error) {
	if file.Size > MaxUploadSize {
		return "", utils.ErrFileTooLarge
	}

	contentType := file.Header.Get("Content-Type")
	// Strip any charset suffix, e.g. "text/plain; charset=utf-8".
	if idx := strings.Index(contentType, ";"); idx >= 0 {
		contentType = strings.TrimSpace(contentType[:idx])
	}
	if !allowedUploadTypes[contentType] {
		return "", utils.ErrFileTypeNotAllowed
	}

	f, err := file.Open()
	if err != nil {
		return "", err
	}
	defer f.Close()

	content, err := io.ReadAll(f)
	if err != nil {
		return "", err
	}

	return string(content), nil
}
