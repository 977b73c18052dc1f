package controllers

import (
	"bytes"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/textproto"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"tripmate/internal/services"
)

func newUploadRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	controller := NewUploadController(services.NewUploadService())

	r := gin.New()
	r.POST("/api/upload-itinerary", controller.UploadItineraryHandler)
	return r
}

func multipartBody(t *testing.T, filename, contentType, content string) (*bytes.Buffer, string) {
	t.Helper()

	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)

	header := make(textproto.MIMEHeader)
	header.Set("Content-Disposition", `form-data; name="file"; filename="`+filename+`"`)
	header.Set("Content-Type", contentType)
	part, err := writer.CreatePart(header)
	require.NoError(t, err)
	_, err = part.Write([]byte(content))
	require.NoError(t, err)
	require.NoError(t, writer.Close())

	return &buf, writer.FormDataContentType()
}

func TestUploadItineraryHandlerSuccess(t *testing.T) {
	router := newUploadRouter()

	itinerary := "Flight: LAX to Tokyo, Dec 15-22. Hotel: Park Hyatt Tokyo."
	body, contentType := multipartBody(t, "itinerary.txt", "text/plain", itinerary)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/upload-itinerary", body)
	req.Header.Set("Content-Type", contentType)
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Success  bool   `json:"success"`
		Text     string `json:"text"`
		Filename string `json:"filename"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.True(t, resp.Success)
	assert.Equal(t, itinerary, resp.Text, "bytes pass through as UTF-8 text")
	assert.Equal(t, "itinerary.txt", resp.Filename)
}

func TestUploadItineraryHandlerMissingFile(t *testing.T) {
	router := newUploadRouter()

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/upload-itinerary", strings.NewReader(""))
	req.Header.Set("Content-Type", "multipart/form-data; boundary=xxx")
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "No file uploaded")
}

func TestUploadItineraryHandlerDisallowedType(t *testing.T) {
	router := newUploadRouter()

	body, contentType := multipartBody(t, "itinerary.zip", "application/zip", "PK...")

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/upload-itinerary", body)
	req.Header.Set("Content-Type", contentType)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "Invalid file type")
}

func TestUploadItineraryHandlerAllowedTypes(t *testing.T) {
	router := newUploadRouter()

	for _, contentType := range []string{"text/plain", "application/pdf", "image/png", "image/jpeg"} {
		t.Run(contentType, func(t *testing.T) {
			body, formType := multipartBody(t, "itinerary", contentType, "some bytes")

			w := httptest.NewRecorder()
			req := httptest.NewRequest(http.MethodPost, "/api/upload-itinerary", body)
			req.Header.Set("Content-Type", formType)
			router.ServeHTTP(w, req)

			assert.Equal(t, http.StatusOK, w.Code)
		})
	}
}
