package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"backend/models"
)

func f(v float64) *float64 { return &v }

func TestAssessNutrition(t *testing.T) {
	tests := []struct {
		name     string
		food     string
		nd       *models.NutritionalData
		expected int
	}{
		{
			name:     "nil data yields no warnings",
			food:     "anything",
			nd:       nil,
			expected: 0,
		},
		{
			name:     "clean item yields no warnings",
			food:     "grilled chicken",
			nd:       &models.NutritionalData{Calories: 150, Protein: 28, Carbs: 0, Fat: 4},
			expected: 0,
		},
		{
			name:     "high sodium share",
			food:     "canned soup",
			nd:       &models.NutritionalData{Calories: 300, Sodium: f(600)},
			expected: 1,
		},
		{
			name:     "very high sodium plus density",
			food:     "canned soup",
			nd:       &models.NutritionalData{Calories: 120, Sodium: f(1000)},
			expected: 2,
		},
		{
			name:     "sugary item",
			food:     "soda",
			nd:       &models.NutritionalData{Calories: 200, Sugar: f(30)},
			expected: 1,
		},
		{
			name:     "refined grain by name",
			food:     "white bread",
			nd:       &models.NutritionalData{Calories: 80, Carbs: 14},
			expected: 1,
		},
		{
			name:     "low fiber carbohydrate food",
			food:     "pasta",
			nd:       &models.NutritionalData{Calories: 400, Carbs: 75, Fiber: f(2)},
			expected: 1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			warnings := AssessNutrition(tt.food, tt.nd)
			assert.Len(t, warnings, tt.expected)
		})
	}
}
