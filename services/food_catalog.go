package services

import (
	"fmt"
	"math"

	"github.com/UJJWAL-7777/Diet-Manager/config"
	"github.com/UJJWAL-7777/Diet-Manager/models"
)

type FoodListQuery struct {
	Search   string
	Category string
	Page     int
	Limit    int
}

// ListPublicFoods pages through the public catalog, name ascending.
func ListPublicFoods(q FoodListQuery) ([]models.Food, int, error) {
	if q.Page < 1 {
		q.Page = 1
	}
	if q.Limit < 1 {
		q.Limit = 20
	}

	tx := config.DB.Model(&models.Food{}).Where("is_public = ?", true)
	if q.Search != "" {
		like := "%" + q.Search + "%"
		tx = tx.Where("name ILIKE ? OR brand ILIKE ?", like, like)
	}
	if q.Category != "" {
		tx = tx.Where("category = ?", q.Category)
	}

	var total int64
	if err := tx.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var foods []models.Food
	err := tx.Order("name asc").
		Limit(q.Limit).
		Offset((q.Page - 1) * q.Limit).
		Find(&foods).Error
	if err != nil {
		return nil, 0, err
	}

	totalPages := int(math.Ceil(float64(total) / float64(q.Limit)))
	return foods, totalPages, nil
}

type CustomFoodInput struct {
	Name          string           `json:"name"`
	Brand         string           `json:"brand"`
	ServingAmount float64          `json:"servingAmount"`
	ServingUnit   string           `json:"servingUnit"`
	Nutrition     models.Nutrition `json:"nutrition"`
	Category      string           `json:"category"`
	IsPublic      *bool            `json:"isPublic"`
}

func (in CustomFoodInput) validate() error {
	if in.Name == "" {
		return fmt.Errorf("name is required")
	}
	if in.ServingAmount <= 0 {
		return fmt.Errorf("serving amount must be positive")
	}
	if !models.IsValidServingUnit(in.ServingUnit) {
		return fmt.Errorf("invalid serving unit %q", in.ServingUnit)
	}
	if !models.IsValidCategory(in.Category) {
		return fmt.Errorf("invalid category %q", in.Category)
	}
	for name, v := range map[string]float64{
		"calories": in.Nutrition.Calories, "protein": in.Nutrition.Protein,
		"carbs": in.Nutrition.Carbs, "fat": in.Nutrition.Fat,
		"fiber": in.Nutrition.Fiber, "sugar": in.Nutrition.Sugar,
		"sodium": in.Nutrition.Sodium, "cholesterol": in.Nutrition.Cholesterol,
	} {
		if v < 0 {
			return fmt.Errorf("%s must be non-negative", name)
		}
	}
	return nil
}

// CreateCustomFood persists a user-authored food.
func CreateCustomFood(userID uint, in CustomFoodInput) (*models.Food, error) {
	if err := in.validate(); err != nil {
		return nil, err
	}

	brand := in.Brand
	if brand == "" {
		brand = "Generic"
	}
	isPublic := true
	if in.IsPublic != nil {
		isPublic = *in.IsPublic
	}

	food := models.Food{
		Name:          in.Name,
		Brand:         brand,
		ServingAmount: in.ServingAmount,
		ServingUnit:   in.ServingUnit,
		Nutrition:     in.Nutrition,
		Category:      in.Category,
		Source:        models.SourceCustom,
		IsPublic:      isPublic,
		CreatedBy:     &userID,
	}
	if err := config.DB.Create(&food).Error; err != nil {
		return nil, err
	}
	return &food, nil
}
