package services

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/UJJWAL-7777/Diet-Manager/config"
	"github.com/UJJWAL-7777/Diet-Manager/models"

	"gorm.io/gorm"
)

type MealItemInput struct {
	FoodID        uint    `json:"foodId"`
	ServingAmount float64 `json:"servingAmount"`
	ServingUnit   string  `json:"servingUnit"`
	CustomName    string  `json:"customName"`
}

type MealInput struct {
	Name  string          `json:"name"`
	Items []MealItemInput `json:"items"`
}

type MealPlanService struct{}

func NewMealPlanService() *MealPlanService { return &MealPlanService{} }

func validateMeals(meals []MealInput) error {
	for _, m := range meals {
		if !models.IsValidMealName(m.Name) {
			return fmt.Errorf("invalid meal name %q", m.Name)
		}
		for _, it := range m.Items {
			if it.FoodID == 0 {
				return fmt.Errorf("meal %q has an item without a food reference", m.Name)
			}
			if it.ServingAmount <= 0 {
				return fmt.Errorf("meal %q has an item with a non-positive serving amount", m.Name)
			}
		}
	}
	return nil
}

// scaleNutrition scales a food's per-serving facts to the item's serving
// amount. Units are taken at face value; the override is a plain ratio
// of amounts.
func scaleNutrition(food models.Food, servingAmount float64) models.Nutrition {
	ratio := 1.0
	if food.ServingAmount > 0 {
		ratio = servingAmount / food.ServingAmount
	}
	n := food.Nutrition
	return models.Nutrition{
		Calories:    n.Calories * ratio,
		Protein:     n.Protein * ratio,
		Carbs:       n.Carbs * ratio,
		Fat:         n.Fat * ratio,
		Fiber:       n.Fiber * ratio,
		Sugar:       n.Sugar * ratio,
		Sodium:      n.Sodium * ratio,
		Cholesterol: n.Cholesterol * ratio,
	}
}

func buildMeals(meals []MealInput, foods map[uint]models.Food) []models.Meal {
	out := make([]models.Meal, 0, len(meals))
	for _, m := range meals {
		meal := models.Meal{Name: m.Name}
		for _, it := range m.Items {
			meal.Items = append(meal.Items, models.MealItem{
				FoodID:        it.FoodID,
				ServingAmount: it.ServingAmount,
				ServingUnit:   it.ServingUnit,
				CustomName:    it.CustomName,
			})
			if food, ok := foods[it.FoodID]; ok {
				n := scaleNutrition(food, it.ServingAmount)
				meal.Calories += n.Calories
				meal.Protein += n.Protein
				meal.Carbs += n.Carbs
				meal.Fat += n.Fat
			}
		}
		out = append(out, meal)
	}
	return out
}

// allergyWarnings flags meal items whose food name matches one of the
// profile's allergy strings.
func allergyWarnings(foods map[uint]models.Food, allergies string) []string {
	if allergies == "" {
		return nil
	}
	var warnings []string
	for _, allergy := range strings.Split(allergies, ",") {
		a := strings.ToLower(strings.TrimSpace(allergy))
		if a == "" {
			continue
		}
		for _, food := range foods {
			if strings.Contains(strings.ToLower(food.Name), a) {
				warnings = append(warnings, fmt.Sprintf("%s matches your %q allergy", food.Name, allergy))
			}
		}
	}
	return warnings
}

// Save upserts the plan for (user, date): a second save for the same
// date replaces the first. Meal and daily totals are recomputed from the
// referenced foods. Returned warnings flag foods matching the profile's
// allergies.
func (s *MealPlanService) Save(userID uint, date time.Time, meals []MealInput, notes string) (*models.MealPlan, []string, error) {
	if err := validateMeals(meals); err != nil {
		return nil, nil, err
	}

	foods, err := loadFoods(meals)
	if err != nil {
		return nil, nil, err
	}

	built := buildMeals(meals, foods)

	var plan models.MealPlan
	err = config.DB.Where("user_id = ? AND date = ?", userID, date).First(&plan).Error
	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		plan = models.MealPlan{UserID: userID, Date: date}
	case err != nil:
		return nil, nil, err
	default:
		// replace the stored meals wholesale
		if err := s.deleteMeals(plan.ID); err != nil {
			return nil, nil, err
		}
	}

	plan.Notes = notes
	plan.Meals = built
	plan.Calories, plan.Protein, plan.Carbs, plan.Fat = 0, 0, 0, 0
	for _, m := range built {
		plan.Calories += m.Calories
		plan.Protein += m.Protein
		plan.Carbs += m.Carbs
		plan.Fat += m.Fat
	}

	if err := config.DB.Save(&plan).Error; err != nil {
		return nil, nil, err
	}

	var saved models.MealPlan
	if err := config.DB.Preload("Meals.Items.Food").First(&saved, plan.ID).Error; err != nil {
		return nil, nil, err
	}

	var warnings []string
	var profile models.UserProfile
	if err := config.DB.Where("user_id = ?", userID).First(&profile).Error; err == nil {
		warnings = allergyWarnings(foods, profile.Allergies)
	}

	return &saved, warnings, nil
}

// Get returns the plan for the date, or nil when none exists.
func (s *MealPlanService) Get(userID uint, date time.Time) (*models.MealPlan, error) {
	var plan models.MealPlan
	err := config.DB.Preload("Meals.Items.Food").
		Where("user_id = ? AND date = ?", userID, date).
		First(&plan).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &plan, nil
}

func (s *MealPlanService) deleteMeals(planID uint) error {
	var mealIDs []uint
	if err := config.DB.Model(&models.Meal{}).
		Where("meal_plan_id = ?", planID).
		Pluck("id", &mealIDs).Error; err != nil {
		return err
	}
	if len(mealIDs) > 0 {
		if err := config.DB.Where("meal_id IN ?", mealIDs).
			Delete(&models.MealItem{}).Error; err != nil {
			return err
		}
		if err := config.DB.Where("meal_plan_id = ?", planID).
			Delete(&models.Meal{}).Error; err != nil {
			return err
		}
	}
	return nil
}

func loadFoods(meals []MealInput) (map[uint]models.Food, error) {
	ids := make([]uint, 0)
	seen := make(map[uint]bool)
	for _, m := range meals {
		for _, it := range m.Items {
			if !seen[it.FoodID] {
				seen[it.FoodID] = true
				ids = append(ids, it.FoodID)
			}
		}
	}
	foods := make(map[uint]models.Food, len(ids))
	if len(ids) == 0 {
		return foods, nil
	}

	var rows []models.Food
	if err := config.DB.Where("id IN ?", ids).Find(&rows).Error; err != nil {
		return nil, err
	}
	for _, f := range rows {
		foods[f.ID] = f
	}
	if len(rows) != len(ids) {
		return nil, fmt.Errorf("one or more referenced foods do not exist")
	}
	return foods, nil
}
