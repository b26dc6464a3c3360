package services

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/UJJWAL-7777/Diet-Manager/models"
)

func newTestUSDAService(handler http.HandlerFunc) (*USDAService, *httptest.Server) {
	ts := httptest.NewServer(handler)
	svc := &USDAService{
		apiKey:  "test-key",
		baseURL: ts.URL,
		client:  &http.Client{Timeout: time.Second},
	}
	return svc, ts
}

func TestUSDASearchMapsNutrientIDs(t *testing.T) {
	svc, ts := newTestUSDAService(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Query().Get("query") != "apple" {
			t.Errorf("query param = %q, want apple", r.URL.Query().Get("query"))
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"foods":[{
			"fdcId": 171688,
			"description": "Apple, raw",
			"foodNutrients": [
				{"nutrientId": 1008, "value": 52},
				{"nutrientId": 1003, "value": 0.3},
				{"nutrientId": 1005, "value": 14},
				{"nutrientId": 1004, "value": 0.2},
				{"nutrientId": 1079, "value": 2.4},
				{"nutrientId": 2000, "value": 10},
				{"nutrientId": 1093, "value": 1},
				{"nutrientId": 1253, "value": 0},
				{"nutrientId": 9999, "value": 42}
			]
		}]}`))
	})
	defer ts.Close()

	results, err := svc.Search("apple", 10)
	if err != nil {
		t.Fatalf("Search returned error: %v", err)
	}
	if len(results) != 1 {
		t.Fatalf("got %d results, want 1", len(results))
	}

	got := results[0]
	want := models.Nutrition{Calories: 52, Protein: 0.3, Carbs: 14, Fat: 0.2, Fiber: 2.4, Sugar: 10, Sodium: 1}
	if got.Nutrition != want {
		t.Errorf("Nutrition = %+v, want %+v", got.Nutrition, want)
	}
	if got.Source != models.SourceUSDA {
		t.Errorf("Source = %q, want usda", got.Source)
	}
	if got.ExternalID != "171688" {
		t.Errorf("ExternalID = %q, want 171688", got.ExternalID)
	}
	if got.Category != models.CategoryFruits {
		t.Errorf("Category = %q, want fruits", got.Category)
	}
	if got.ServingSize != (ServingSize{Amount: 100, Unit: "g"}) {
		t.Errorf("ServingSize = %+v, want 100 g", got.ServingSize)
	}
}

func TestUSDASearchFiltersRecords(t *testing.T) {
	svc, ts := newTestUSDAService(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"foods":[
			{"fdcId": 1, "description": "Apple, raw",
			 "foodNutrients": [{"nutrientId": 1008, "value": 52}]},
			{"fdcId": 2, "description": "Banana, raw",
			 "foodNutrients": [{"nutrientId": 1008, "value": 89}]},
			{"fdcId": 3, "description": "Apple juice", "foodNutrients": []},
			{"fdcId": 4, "description": "Apple, dried",
			 "foodNutrients": [{"nutrientId": 1003, "value": 1.5}]}
		]}`))
	})
	defer ts.Close()

	results, err := svc.Search("apple", 10)
	if err != nil {
		t.Fatalf("Search returned error: %v", err)
	}

	// "Banana, raw" fails the substring filter, "Apple juice" carries no
	// nutrients, "Apple, dried" maps to zero calories
	if len(results) != 1 || results[0].Name != "Apple, raw" {
		t.Fatalf("results = %+v, want only Apple, raw", results)
	}
}

func TestUSDASearchNonOKStatusIsError(t *testing.T) {
	svc, ts := newTestUSDAService(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "rate limited", http.StatusTooManyRequests)
	})
	defer ts.Close()

	if _, err := svc.Search("apple", 10); err == nil {
		t.Fatal("Search returned nil error for non-200 response")
	}
}
