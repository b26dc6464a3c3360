package models

import (
	"time"

	"gorm.io/gorm"
)

var validMealNames = map[string]bool{
	"breakfast": true,
	"lunch":     true,
	"dinner":    true,
	"snack-1":   true,
	"snack-2":   true,
	"snack-3":   true,
}

func IsValidMealName(name string) bool { return validMealNames[name] }

// MealItem references a Food with a serving-size override.
type MealItem struct {
	gorm.Model
	MealID        uint    `json:"mealId"`
	FoodID        uint    `gorm:"not null" json:"foodId"`
	Food          Food    `json:"food"`
	ServingAmount float64 `gorm:"not null" json:"servingAmount"`
	ServingUnit   string  `gorm:"not null" json:"servingUnit"`
	CustomName    string  `json:"customName,omitempty"`
}

type Meal struct {
	gorm.Model
	MealPlanID uint       `json:"mealPlanId"`
	Name       string     `gorm:"not null" json:"name"`
	Items      []MealItem `json:"items"`

	Calories float64 `json:"calories"`
	Protein  float64 `json:"protein"`
	Carbs    float64 `json:"carbs"`
	Fat      float64 `json:"fat"`
}

// MealPlan is unique per (user, calendar date); saves for an existing
// date replace the stored plan.
type MealPlan struct {
	gorm.Model
	UserID uint      `gorm:"uniqueIndex:idx_meal_plans_user_date;not null" json:"userId"`
	Date   time.Time `gorm:"uniqueIndex:idx_meal_plans_user_date;not null" json:"date"`
	Meals  []Meal    `json:"meals"`

	Calories float64 `json:"calories"`
	Protein  float64 `json:"protein"`
	Carbs    float64 `json:"carbs"`
	Fat      float64 `json:"fat"`

	Notes string `json:"notes,omitempty"`
}
