package controllers

import (
	"net/http"

	"backend/utils"

	"github.com/gin-gonic/gin"
)

type UploadImageInput struct {
	ImageBase64 string `json:"image_base64" binding:"required"`
}

// POST /images — store a meal photo, return the URL used as image reference.
func UploadImage(c *gin.Context) {
	var input UploadImageInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input"})
		return
	}

	url, err := utils.UploadBase64Image(c.Request.Context(), input.ImageBase64, "meal-images")
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"url": url})
}
