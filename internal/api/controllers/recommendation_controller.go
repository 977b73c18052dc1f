package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"tripmate/internal/models/request_models"
	"tripmate/internal/services"
	"tripmate/pkg/utils"
)

type RecommendationController struct {
	recommendationService services.RecommendationServiceInterface
}

func NewRecommendationController(recommendationService services.RecommendationServiceInterface) *RecommendationController {
	return &RecommendationController{
		recommendationService: recommendationService,
	}
}

// CreateRecommendationHandler godoc
// @Summary Generate travel recommendations
// @Description Run the itinerary through the AI pipeline and persist the filtered result
// @Tags Recommendations
// @Accept json
// @Produce json
// @Param request body request_models.CreateRecommendationRequest true "Itinerary, interests and optional leisure preferences"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} map[string]string
// @Router /api/recommendations [post]
func (rc *RecommendationController) CreateRecommendationHandler(c *gin.Context) {
	var req request_models.CreateRecommendationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	stored, err := rc.recommendationService.GenerateRecommendations(c.Request.Context(), req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":         true,
		"id":              stored.ID,
		"recommendations": stored.Recommendations,
	})
}

// GetRecommendationHandler returns a single stored record by id.
func (rc *RecommendationController) GetRecommendationHandler(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid recommendation id")
		return
	}

	stored, err := rc.recommendationService.GetRecommendationByID(c.Request.Context(), id)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, stored)
}

// ListRecommendationsHandler returns every stored record, oldest first.
func (rc *RecommendationController) ListRecommendationsHandler(c *gin.Context) {
	list, err := rc.recommendationService.ListRecommendations(c.Request.Context())
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, list)
}
