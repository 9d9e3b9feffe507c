package controllers

import (
	"net/http"
	"time"

	"backend/config"
	"backend/models"
	"backend/services"

	"github.com/gin-gonic/gin"
)

type SaveRecordInput struct {
	ImageRef string                     `json:"image_ref"`
	Result   *models.FoodAnalysisResult `json:"result" binding:"required"`
}

// POST /records — persist one analysis result for the authenticated user.
func SaveRecord(c *gin.Context) {
	var input SaveRecordInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	userID := c.GetUint("userID")

	svc := services.NewRecordService(config.DB)
	record, err := svc.SaveAnalysis(c.Request.Context(), userID, input.ImageRef, input.Result)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, record)
}

// GET /records — the user's saved records, newest first.
func ListRecords(c *gin.Context) {
	userID := c.GetUint("userID")

	svc := services.NewRecordService(config.DB)
	records, err := svc.ListRecords(c.Request.Context(), userID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, records)
}

// GET /records/summary?from=2026-08-01&to=2026-08-28 — daily totals.
// Defaults to the last 7 days.
func RecordSummary(c *gin.Context) {
	userID := c.GetUint("userID")

	to := time.Now().Add(24 * time.Hour).Truncate(24 * time.Hour)
	from := to.AddDate(0, 0, -7)
	if v := c.Query("from"); v != "" {
		t, err := time.Parse("2006-01-02", v)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "from must be YYYY-MM-DD"})
			return
		}
		from = t
	}
	if v := c.Query("to"); v != "" {
		t, err := time.Parse("2006-01-02", v)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "to must be YYYY-MM-DD"})
			return
		}
		// inclusive end date
		to = t.AddDate(0, 0, 1)
	}

	svc := services.NewRecordService(config.DB)
	rows, err := svc.DailySummary(c.Request.Context(), userID, from, to)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, rows)
}
