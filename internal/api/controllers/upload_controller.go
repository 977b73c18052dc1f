package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"tripmate/internal/services"
	"tripmate/pkg/utils"
)

type UploadController struct {
	uploadService services.UploadServiceInterface
}

func NewUploadController(uploadService services.UploadServiceInterface) *UploadController {
	return &UploadController{
		uploadService: uploadService,
	}
}

// UploadItineraryHandler godoc
// @Summary Upload an itinerary file
// @Description Accepts a TXT/PDF/PNG/JPG file up to 5MB and returns its text content
// @Tags Upload
// @Accept multipart/form-data
// @Produce json
// @Param file formData file true "Itinerary file"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} map[string]string
// @Router /api/upload-itinerary [post]
func (uc *UploadController) UploadItineraryHandler(c *gin.Context) {
	file, err := c.FormFile("file")
	if err != nil {
		utils.HandleServiceError(c, utils.ErrNoFileUploaded)
		return
	}

	text, err := uc.uploadService.ExtractItineraryText(file)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":  true,
		"text":     text,
		"filename": file.Filename,
	})
}
