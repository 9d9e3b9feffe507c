package services

import (
	"context"
	"strings"
	"time"

	"gorm.io/gorm"

	"backend/models"
	"backend/utils"
)

// RecordService persists and reads meal records. It does not deduplicate:
// the client tracks an "already saved" flag per analysis, and concurrent
// saves from two devices can both land.
type RecordService struct {
	db *gorm.DB
}

func NewRecordService(db *gorm.DB) *RecordService {
	return &RecordService{db: db}
}

// SaveAnalysis writes one MealRecord for the user. Non-food results and
// results without nutritional data are rejected with a PreconditionError
// before any write happens.
func (s *RecordService) SaveAnalysis(ctx context.Context, userID uint, imageRef string, result *models.FoodAnalysisResult) (*models.MealRecord, error) {
	if result == nil || !result.IsFoodItem {
		return nil, &utils.PreconditionError{Reason: "result is not a food item"}
	}
	if result.NutritionalData == nil {
		return nil, &utils.PreconditionError{Reason: "result has no nutritional data"}
	}

	record := BuildMealRecord(userID, imageRef, result)
	if err := s.db.WithContext(ctx).Create(record).Error; err != nil {
		return nil, err
	}

	var saved models.MealRecord
	if err := s.db.WithContext(ctx).Preload("Items").First(&saved, record.ID).Error; err != nil {
		return nil, err
	}
	return &saved, nil
}

// BuildMealRecord assembles the record with its single aggregated item. One
// food is identified per image, so the record totals mirror the item exactly.
func BuildMealRecord(userID uint, imageRef string, result *models.FoodAnalysisResult) *models.MealRecord {
	nd := result.NutritionalData
	warnings := utils.AssessNutrition(result.Name, nd)

	item := models.MealRecordItem{
		Name:     result.Name,
		Calories: nd.Calories,
		Protein:  nd.Protein,
		Carbs:    nd.Carbs,
		Fat:      nd.Fat,
		Fiber:    copyOptional(nd.Fiber),
		Sugar:    copyOptional(nd.Sugar),
		Sodium:   copyOptional(nd.Sodium),
		Safe:     len(warnings) == 0,
		Warnings: strings.Join(warnings, "; "),
	}

	return &models.MealRecord{
		UserID:        userID,
		ImageRef:      imageRef,
		Items:         []models.MealRecordItem{item},
		TotalCalories: nd.Calories,
		TotalProtein:  nd.Protein,
		TotalCarbs:    nd.Carbs,
		TotalFat:      nd.Fat,
		TotalFiber:    copyOptional(nd.Fiber),
		TotalSugar:    copyOptional(nd.Sugar),
		TotalSodium:   copyOptional(nd.Sodium),
	}
}

func copyOptional(v *float64) *float64 {
	if v == nil {
		return nil
	}
	c := *v
	return &c
}

// ListRecords returns all of the user's records, newest first.
func (s *RecordService) ListRecords(ctx context.Context, userID uint) ([]models.MealRecord, error) {
	var records []models.MealRecord
	err := s.db.WithContext(ctx).
		Preload("Items").
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&records).Error
	return records, err
}

// DailyTotal is one day's aggregate over a user's saved records.
type DailyTotal struct {
	Day      string  `json:"day"`
	Calories float64 `json:"calories"`
	Protein  float64 `json:"protein"`
	Carbs    float64 `json:"carbs"`
	Fat      float64 `json:"fat"`
	Records  int64   `json:"records"`
}

// DailySummary sums record totals per calendar day over [from, to).
func (s *RecordService) DailySummary(ctx context.Context, userID uint, from, to time.Time) ([]DailyTotal, error) {
	var rows []DailyTotal
	err := s.db.WithContext(ctx).
		Model(&models.MealRecord{}).
		Select("date(created_at) AS day, " +
			"SUM(total_calories) AS calories, " +
			"SUM(total_protein) AS protein, " +
			"SUM(total_carbs) AS carbs, " +
			"SUM(total_fat) AS fat, " +
			"COUNT(*) AS records").
		Where("user_id = ? AND created_at >= ? AND created_at < ?", userID, from, to).
		Group("date(created_at)").
		Order("day DESC").
		Scan(&rows).Error
	return rows, err
}
