package services

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"backend/models"
	"backend/utils"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&models.MealRecord{}, &models.MealRecordItem{}))
	return db
}

func foodResult() *models.FoodAnalysisResult {
	sodium := 980.0
	return &models.FoodAnalysisResult{
		Name:       "hot dog",
		IsFoodItem: true,
		NutritionalData: &models.NutritionalData{
			Calories: 290,
			Protein:  10.4,
			Carbs:    2.1,
			Fat:      26.1,
			Sodium:   &sodium,
		},
	}
}

func TestSaveAnalysisPreconditions(t *testing.T) {
	svc := NewRecordService(newTestDB(t))
	ctx := context.Background()

	tests := []struct {
		name   string
		result *models.FoodAnalysisResult
	}{
		{name: "nil result", result: nil},
		{
			name:   "non-food result",
			result: &models.FoodAnalysisResult{Name: "car", IsFoodItem: false},
		},
		{
			name:   "food without nutrition data",
			result: &models.FoodAnalysisResult{Name: "pizza", IsFoodItem: true},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.SaveAnalysis(ctx, 1, "img.jpg", tt.result)
			var preErr *utils.PreconditionError
			require.True(t, errors.As(err, &preErr))
		})
	}

	// nothing was written
	var count int64
	require.NoError(t, svc.db.Model(&models.MealRecord{}).Count(&count).Error)
	assert.Zero(t, count)
}

func TestSaveAnalysisRoundTrip(t *testing.T) {
	svc := NewRecordService(newTestDB(t))
	in := foodResult()

	record, err := svc.SaveAnalysis(context.Background(), 7, "https://img/1.jpg", in)
	require.NoError(t, err)

	assert.Equal(t, uint(7), record.UserID)
	assert.Equal(t, "https://img/1.jpg", record.ImageRef)
	require.Len(t, record.Items, 1)

	// the aggregate total mirrors the input exactly
	nd := in.NutritionalData
	assert.Equal(t, nd.Calories, record.TotalCalories)
	assert.Equal(t, nd.Protein, record.TotalProtein)
	assert.Equal(t, nd.Carbs, record.TotalCarbs)
	assert.Equal(t, nd.Fat, record.TotalFat)
	require.NotNil(t, record.TotalSodium)
	assert.Equal(t, *nd.Sodium, *record.TotalSodium)
	assert.Nil(t, record.TotalFiber)
	assert.Nil(t, record.TotalSugar)

	item := record.Items[0]
	assert.Equal(t, "hot dog", item.Name)
	assert.Equal(t, nd.Calories, item.Calories)
	require.NotNil(t, item.Sodium)
	assert.Equal(t, *nd.Sodium, *item.Sodium)
	// 980mg sodium trips the safety rules
	assert.False(t, item.Safe)
	assert.NotEmpty(t, item.Warnings)
}

func TestSaveAnalysisDoesNotDeduplicate(t *testing.T) {
	svc := NewRecordService(newTestDB(t))
	ctx := context.Background()

	_, err := svc.SaveAnalysis(ctx, 1, "img.jpg", foodResult())
	require.NoError(t, err)
	_, err = svc.SaveAnalysis(ctx, 1, "img.jpg", foodResult())
	require.NoError(t, err)

	records, err := svc.ListRecords(ctx, 1)
	require.NoError(t, err)
	assert.Len(t, records, 2)
}

func TestListRecordsNewestFirstAndScopedToUser(t *testing.T) {
	db := newTestDB(t)
	svc := NewRecordService(db)
	ctx := context.Background()

	older := BuildMealRecord(1, "old.jpg", foodResult())
	older.CreatedAt = time.Now().Add(-48 * time.Hour)
	require.NoError(t, db.Create(older).Error)

	newer := BuildMealRecord(1, "new.jpg", foodResult())
	require.NoError(t, db.Create(newer).Error)

	other := BuildMealRecord(2, "other.jpg", foodResult())
	require.NoError(t, db.Create(other).Error)

	records, err := svc.ListRecords(ctx, 1)
	require.NoError(t, err)
	require.Len(t, records, 2)
	assert.Equal(t, "new.jpg", records[0].ImageRef)
	assert.Equal(t, "old.jpg", records[1].ImageRef)
	require.Len(t, records[0].Items, 1)
}

func TestDailySummary(t *testing.T) {
	db := newTestDB(t)
	svc := NewRecordService(db)
	ctx := context.Background()

	today := BuildMealRecord(1, "a.jpg", foodResult())
	require.NoError(t, db.Create(today).Error)

	alsoToday := BuildMealRecord(1, "b.jpg", foodResult())
	require.NoError(t, db.Create(alsoToday).Error)

	yesterday := BuildMealRecord(1, "c.jpg", foodResult())
	yesterday.CreatedAt = time.Now().Add(-24 * time.Hour)
	require.NoError(t, db.Create(yesterday).Error)

	from := time.Now().Add(-72 * time.Hour)
	to := time.Now().Add(24 * time.Hour)
	rows, err := svc.DailySummary(ctx, 1, from, to)
	require.NoError(t, err)

	require.Len(t, rows, 2)
	// newest day first, two records summed
	assert.Equal(t, int64(2), rows[0].Records)
	assert.Equal(t, 580.0, rows[0].Calories)
	assert.Equal(t, int64(1), rows[1].Records)
}

func TestBuildMealRecordCopiesOptionals(t *testing.T) {
	in := foodResult()
	record := BuildMealRecord(1, "img.jpg", in)

	require.NotNil(t, record.TotalSodium)
	assert.NotSame(t, in.NutritionalData.Sodium, record.TotalSodium)

	// mutating the input must not reach the record
	*in.NutritionalData.Sodium = 1
	assert.Equal(t, 980.0, *record.TotalSodium)
}
