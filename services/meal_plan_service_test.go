package services

import (
	"math"
	"testing"

	"github.com/UJJWAL-7777/Diet-Manager/models"
)

func TestValidateMeals(t *testing.T) {
	ok := []MealInput{
		{Name: "breakfast", Items: []MealItemInput{{FoodID: 1, ServingAmount: 100, ServingUnit: "g"}}},
		{Name: "snack-2"},
	}
	if err := validateMeals(ok); err != nil {
		t.Errorf("validateMeals(ok) = %v", err)
	}

	if err := validateMeals([]MealInput{{Name: "brunch"}}); err == nil {
		t.Error("expected error for invalid meal name")
	}
	if err := validateMeals([]MealInput{
		{Name: "lunch", Items: []MealItemInput{{FoodID: 0, ServingAmount: 100}}},
	}); err == nil {
		t.Error("expected error for item without food reference")
	}
	if err := validateMeals([]MealInput{
		{Name: "lunch", Items: []MealItemInput{{FoodID: 1, ServingAmount: 0}}},
	}); err == nil {
		t.Error("expected error for non-positive serving amount")
	}
}

func TestScaleNutrition(t *testing.T) {
	food := models.Food{
		ServingAmount: 100,
		Nutrition:     models.Nutrition{Calories: 52, Protein: 0.3, Carbs: 14},
	}

	scaled := scaleNutrition(food, 150)
	if math.Abs(scaled.Calories-78) > 1e-9 {
		t.Errorf("Calories = %v, want 78", scaled.Calories)
	}
	if math.Abs(scaled.Carbs-21) > 1e-9 {
		t.Errorf("Carbs = %v, want 21", scaled.Carbs)
	}

	// zero base serving must not divide; facts pass through unscaled
	food.ServingAmount = 0
	if got := scaleNutrition(food, 150); got != food.Nutrition {
		t.Errorf("zero-serving scale = %+v, want %+v", got, food.Nutrition)
	}
}

func TestBuildMealsComputesTotals(t *testing.T) {
	foods := map[uint]models.Food{
		1: {ServingAmount: 100, Nutrition: models.Nutrition{Calories: 52, Protein: 0.3, Carbs: 14, Fat: 0.2}},
		2: {ServingAmount: 100, Nutrition: models.Nutrition{Calories: 165, Protein: 31, Fat: 3.6}},
	}
	meals := buildMeals([]MealInput{
		{Name: "lunch", Items: []MealItemInput{
			{FoodID: 1, ServingAmount: 100, ServingUnit: "g"},
			{FoodID: 2, ServingAmount: 200, ServingUnit: "g"},
		}},
	}, foods)

	if len(meals) != 1 {
		t.Fatalf("got %d meals, want 1", len(meals))
	}
	m := meals[0]
	if math.Abs(m.Calories-(52+330)) > 1e-9 {
		t.Errorf("Calories = %v, want 382", m.Calories)
	}
	if math.Abs(m.Protein-(0.3+62)) > 1e-9 {
		t.Errorf("Protein = %v, want 62.3", m.Protein)
	}
	if len(m.Items) != 2 {
		t.Errorf("got %d items, want 2", len(m.Items))
	}
}

func TestAllergyWarnings(t *testing.T) {
	foods := map[uint]models.Food{
		1: {Name: "Peanut Butter"},
		2: {Name: "Brown Rice"},
	}

	warnings := allergyWarnings(foods, "peanut, shellfish")
	if len(warnings) != 1 {
		t.Fatalf("got %d warnings, want 1: %v", len(warnings), warnings)
	}

	if got := allergyWarnings(foods, ""); got != nil {
		t.Errorf("no allergies should yield no warnings, got %v", got)
	}
}
