package controllers

import (
	"net/http"

	"backend/services"
	"backend/utils"

	"github.com/gin-gonic/gin"
)

// POST /food/analyze  { "image_base64": "data:…" }
func AnalyzeFood(c *gin.Context) {
	var req struct {
		ImageBase64 string `json:"image_base64" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid body"})
		return
	}

	classifier, err := services.NewImageClassifier()
	if err != nil {
		respondError(c, err)
		return
	}
	svc := services.NewAnalysisService(classifier, services.NewNutritionService(), utils.LoadVocabulary())

	result, err := svc.AnalyzeImage(c.Request.Context(), req.ImageBase64)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, result)
}
