package services

import (
	"errors"
	"testing"

	"github.com/UJJWAL-7777/Diet-Manager/models"
	"github.com/UJJWAL-7777/Diet-Manager/pkg/logger"
)

type stubProvider struct {
	name    string
	results []FoodResult
	err     error
	calls   int
}

func (p *stubProvider) Name() string { return p.name }

func (p *stubProvider) Search(query string, maxResults int) ([]FoodResult, error) {
	p.calls++
	return p.results, p.err
}

func newTestFoodService(providers ...FoodProvider) *FoodService {
	return NewFoodService(logger.New(), nil, providers...)
}

func TestSearchFoodsRejectsShortQuery(t *testing.T) {
	provider := &stubProvider{name: "stub"}
	svc := newTestFoodService(provider)

	for _, q := range []string{"", "a", " a ", "  "} {
		if _, err := svc.SearchFoods(q); !errors.Is(err, ErrQueryTooShort) {
			t.Errorf("SearchFoods(%q) error = %v, want ErrQueryTooShort", q, err)
		}
	}
	if provider.calls != 0 {
		t.Errorf("provider called %d times for rejected queries, want 0", provider.calls)
	}
}

func TestSearchFoodsProviderFailureFallsBack(t *testing.T) {
	svc := newTestFoodService(&stubProvider{name: "stub", err: errors.New("timeout")})

	results, err := svc.SearchFoods("curd")
	if err != nil {
		t.Fatalf("SearchFoods returned error: %v", err)
	}
	if len(results) != 1 {
		t.Fatalf("got %d results, want 1", len(results))
	}
	got := results[0]
	if got.Name != "Curd" {
		t.Errorf("Name = %q, want Curd", got.Name)
	}
	if got.Nutrition.Calories != 98 {
		t.Errorf("Calories = %v, want 98", got.Nutrition.Calories)
	}
	if got.Category != models.CategoryDairy {
		t.Errorf("Category = %q, want dairy", got.Category)
	}
	if got.Source != models.SourceFallback {
		t.Errorf("Source = %q, want fallback", got.Source)
	}
}

func TestSearchFoodsEmptyProviderFallsBack(t *testing.T) {
	svc := newTestFoodService(&stubProvider{name: "stub"})

	results, err := svc.SearchFoods("chicken rice")
	if err != nil {
		t.Fatalf("SearchFoods returned error: %v", err)
	}
	// both "chicken" and "rice" are substrings of the query
	if len(results) != 2 {
		t.Fatalf("got %d results, want 2: %+v", len(results), results)
	}
	if results[0].Name != "Chicken Breast" || results[1].Name != "Brown Rice" {
		t.Errorf("unexpected fallback results: %+v", results)
	}
}

func TestSearchFoodsDeduplicatesByName(t *testing.T) {
	apple := FoodResult{Name: "Apple", Source: models.SourceUSDA, Nutrition: models.Nutrition{Calories: 52}}
	svc := newTestFoodService(
		&stubProvider{name: "one", results: []FoodResult{apple}},
		&stubProvider{name: "two", results: []FoodResult{
			{Name: "Apple", Source: models.SourceEdamam, Nutrition: models.Nutrition{Calories: 50}},
			{Name: "Apple Pie", Source: models.SourceEdamam, Nutrition: models.Nutrition{Calories: 237}},
		}},
	)

	results, err := svc.SearchFoods("apple")
	if err != nil {
		t.Fatalf("SearchFoods returned error: %v", err)
	}
	if len(results) != 2 {
		t.Fatalf("got %d results, want 2: %+v", len(results), results)
	}
	if results[0].Source != models.SourceUSDA {
		t.Errorf("first Apple source = %q, want usda (first occurrence kept)", results[0].Source)
	}
}

func TestSearchFoodsNeverErrorsWhenAllProvidersFail(t *testing.T) {
	svc := newTestFoodService(
		&stubProvider{name: "one", err: errors.New("boom")},
		&stubProvider{name: "two", err: errors.New("bust")},
	)

	// no fallback key matches either; empty slice, no error
	results, err := svc.SearchFoods("zzzz")
	if err != nil {
		t.Fatalf("SearchFoods returned error: %v", err)
	}
	if len(results) != 0 {
		t.Errorf("got %d results, want 0", len(results))
	}
}

func TestCategorize(t *testing.T) {
	tests := []struct {
		name string
		want string
	}{
		{"Fuji Apple", models.CategoryFruits},
		{"Baby Spinach", models.CategoryVegetables},
		{"Whole Wheat Bread", models.CategoryGrains},
		{"Grilled Chicken", models.CategoryProtein},
		{"Greek Yogurt", models.CategoryDairy},
		{"Olive Oil", models.CategoryFats},
		{"Mystery Dish", models.CategoryOther},
		// first matching category wins: "apple" (fruits) beats "bread" (grains)
		{"Apple Bread", models.CategoryFruits},
	}
	for _, tt := range tests {
		if got := Categorize(tt.name); got != tt.want {
			t.Errorf("Categorize(%q) = %q, want %q", tt.name, got, tt.want)
		}
	}
}

func TestFallbackMatchesKeyIsSubstringOfQuery(t *testing.T) {
	if got := fallbackMatches("scrambled EGG with toast"); len(got) != 1 || got[0].Name != "Egg" {
		t.Errorf("fallbackMatches = %+v, want single Egg entry", got)
	}
	if got := fallbackMatches("eg"); len(got) != 0 {
		t.Errorf("fallbackMatches(%q) = %+v, want none", "eg", got)
	}
}
