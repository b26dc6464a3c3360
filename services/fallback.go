package services

import (
	"strings"

	"github.com/UJJWAL-7777/Diet-Manager/models"
)

// fallbackFoods is the static table used when no provider returns
// anything. Ordered so results are deterministic. Keys match by being a
// substring of the lowercased query.
var fallbackFoods = []struct {
	key  string
	food FoodResult
}{
	{"apple", FoodResult{
		Name: "Apple", Brand: "Generic",
		ServingSize: ServingSize{Amount: 100, Unit: "g"},
		Nutrition:   models.Nutrition{Calories: 52, Protein: 0.3, Carbs: 14, Fat: 0.2, Fiber: 2.4, Sugar: 10, Sodium: 1},
		Category:    models.CategoryFruits,
	}},
	{"banana", FoodResult{
		Name: "Banana", Brand: "Generic",
		ServingSize: ServingSize{Amount: 100, Unit: "g"},
		Nutrition:   models.Nutrition{Calories: 89, Protein: 1.1, Carbs: 23, Fat: 0.3, Fiber: 2.6, Sugar: 12, Sodium: 1},
		Category:    models.CategoryFruits,
	}},
	{"chicken", FoodResult{
		Name: "Chicken Breast", Brand: "Generic",
		ServingSize: ServingSize{Amount: 100, Unit: "g"},
		Nutrition:   models.Nutrition{Calories: 165, Protein: 31, Fat: 3.6, Sodium: 74, Cholesterol: 85},
		Category:    models.CategoryProtein,
	}},
	{"rice", FoodResult{
		Name: "Brown Rice", Brand: "Generic",
		ServingSize: ServingSize{Amount: 100, Unit: "g"},
		Nutrition:   models.Nutrition{Calories: 123, Protein: 2.7, Carbs: 26, Fat: 1, Fiber: 1.8, Sugar: 0.4, Sodium: 1},
		Category:    models.CategoryGrains,
	}},
	{"broccoli", FoodResult{
		Name: "Broccoli", Brand: "Generic",
		ServingSize: ServingSize{Amount: 100, Unit: "g"},
		Nutrition:   models.Nutrition{Calories: 34, Protein: 2.8, Carbs: 7, Fat: 0.4, Fiber: 2.6, Sugar: 1.7, Sodium: 33},
		Category:    models.CategoryVegetables,
	}},
	{"milk", FoodResult{
		Name: "Milk", Brand: "Generic",
		ServingSize: ServingSize{Amount: 100, Unit: "ml"},
		Nutrition:   models.Nutrition{Calories: 42, Protein: 3.4, Carbs: 5, Fat: 1, Sugar: 5, Sodium: 44, Cholesterol: 5},
		Category:    models.CategoryDairy,
	}},
	{"curd", FoodResult{
		Name: "Curd", Brand: "Generic",
		ServingSize: ServingSize{Amount: 100, Unit: "g"},
		Nutrition:   models.Nutrition{Calories: 98, Protein: 11, Carbs: 3.4, Fat: 4.3, Sugar: 2.7, Sodium: 36, Cholesterol: 17},
		Category:    models.CategoryDairy,
	}},
	{"egg", FoodResult{
		Name: "Egg", Brand: "Generic",
		ServingSize: ServingSize{Amount: 1, Unit: "piece"},
		Nutrition:   models.Nutrition{Calories: 72, Protein: 6.3, Carbs: 0.4, Fat: 4.8, Sugar: 0.2, Sodium: 71, Cholesterol: 186},
		Category:    models.CategoryProtein,
	}},
	{"bread", FoodResult{
		Name: "Bread", Brand: "Generic",
		ServingSize: ServingSize{Amount: 1, Unit: "slice"},
		Nutrition:   models.Nutrition{Calories: 79, Protein: 3.1, Carbs: 14, Fat: 1, Fiber: 1.2, Sugar: 1.6, Sodium: 147},
		Category:    models.CategoryGrains,
	}},
}

func fallbackMatches(query string) []FoodResult {
	q := strings.ToLower(query)
	var out []FoodResult
	for _, entry := range fallbackFoods {
		if strings.Contains(q, entry.key) {
			f := entry.food
			f.Source = models.SourceFallback
			out = append(out, f)
		}
	}
	return out
}
