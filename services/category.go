package services

import (
	"strings"

	"github.com/UJJWAL-7777/Diet-Manager/models"
)

// categoryKeywords is checked in order; the first category with a
// matching keyword wins.
var categoryKeywords = []struct {
	category string
	keywords []string
}{
	{models.CategoryFruits, []string{"apple", "banana", "orange", "berry", "mango", "grape"}},
	{models.CategoryVegetables, []string{"broccoli", "carrot", "spinach", "lettuce", "tomato", "potato"}},
	{models.CategoryGrains, []string{"rice", "pasta", "bread", "oat", "wheat", "cereal"}},
	{models.CategoryProtein, []string{"chicken", "beef", "fish", "egg", "tofu", "bean"}},
	{models.CategoryDairy, []string{"milk", "cheese", "yogurt", "cream", "butter", "curd"}},
	{models.CategoryFats, []string{"oil", "avocado", "nut", "seed", "olive"}},
}

// Categorize assigns a food category by keyword-matching the name.
func Categorize(foodName string) string {
	name := strings.ToLower(foodName)
	for _, c := range categoryKeywords {
		for _, kw := range c.keywords {
			if strings.Contains(name, kw) {
				return c.category
			}
		}
	}
	return models.CategoryOther
}
