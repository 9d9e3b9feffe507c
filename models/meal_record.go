package models

import (
    "gorm.io/gorm"
)

// MealRecord is one saved analysis, scoped to a user. Records are created on
// an explicit save action and never mutated afterwards.
type MealRecord struct {
    gorm.Model
    UserID   uint   `gorm:"index;not null"`
    ImageRef string `gorm:"type:varchar(512)"`
    Items    []MealRecordItem

    // Aggregate over Items. With one identified food per image the totals
    // mirror the single item exactly.
    TotalCalories float64
    TotalProtein  float64
    TotalCarbs    float64
    TotalFat      float64
    TotalFiber    *float64
    TotalSugar    *float64
    TotalSodium   *float64
}

// MealRecordItem stores the nutrition snapshot & safety flag for one food.
type MealRecordItem struct {
    gorm.Model
    MealRecordID uint

    Name     string `gorm:"not null"`
    Calories float64
    Protein  float64
    Carbs    float64
    Fat      float64
    Fiber    *float64
    Sugar    *float64
    Sodium   *float64

    Safe     bool
    Warnings string // "; "-joined warning messages
}
