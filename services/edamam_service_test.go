package services

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/UJJWAL-7777/Diet-Manager/models"
)

func newTestEdamamService(handler http.HandlerFunc) (*EdamamService, *httptest.Server) {
	ts := httptest.NewServer(handler)
	svc := &EdamamService{
		appID:   "id",
		appKey:  "key",
		baseURL: ts.URL,
		client:  &http.Client{Timeout: time.Second},
	}
	return svc, ts
}

func TestEdamamSearchMapsNutrients(t *testing.T) {
	svc, ts := newTestEdamamService(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Query().Get("ingr") != "milk" {
			t.Errorf("ingr param = %q, want milk", r.URL.Query().Get("ingr"))
		}
		w.Write([]byte(`{"hints":[{"food":{
			"foodId": "food_abc",
			"label": "Milk",
			"category": "Dairy products",
			"nutrients": {"ENERC_KCAL": 42, "PROCNT": 3.4, "CHOCDF": 5, "FAT": 1, "SUGAR": 5}
		}}]}`))
	})
	defer ts.Close()

	results, err := svc.Search("milk", 10)
	if err != nil {
		t.Fatalf("Search returned error: %v", err)
	}
	if len(results) != 1 {
		t.Fatalf("got %d results, want 1", len(results))
	}

	got := results[0]
	if got.Name != "Milk" || got.Brand != "Dairy products" {
		t.Errorf("Name/Brand = %q/%q", got.Name, got.Brand)
	}
	want := models.Nutrition{Calories: 42, Protein: 3.4, Carbs: 5, Fat: 1, Sugar: 5}
	if got.Nutrition != want {
		t.Errorf("Nutrition = %+v, want %+v", got.Nutrition, want)
	}
	if got.Source != models.SourceEdamam || got.ExternalID != "food_abc" {
		t.Errorf("Source/ExternalID = %q/%q", got.Source, got.ExternalID)
	}
	if got.Category != models.CategoryDairy {
		t.Errorf("Category = %q, want dairy", got.Category)
	}
}

func TestEdamamSearchCapsResults(t *testing.T) {
	svc, ts := newTestEdamamService(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"hints":[
			{"food":{"foodId":"1","label":"Egg","nutrients":{"ENERC_KCAL":72}}},
			{"food":{"foodId":"2","label":"Egg White","nutrients":{"ENERC_KCAL":17}}},
			{"food":{"foodId":"3","label":"Egg Yolk","nutrients":{"ENERC_KCAL":55}}}
		]}`))
	})
	defer ts.Close()

	results, err := svc.Search("egg", 2)
	if err != nil {
		t.Fatalf("Search returned error: %v", err)
	}
	if len(results) != 2 {
		t.Errorf("got %d results, want cap of 2", len(results))
	}
}

func TestEdamamSearchEmptyBrandDefaultsToGeneric(t *testing.T) {
	svc, ts := newTestEdamamService(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"hints":[{"food":{"foodId":"1","label":"Bread","nutrients":{"ENERC_KCAL":79}}}]}`))
	})
	defer ts.Close()

	results, err := svc.Search("bread", 10)
	if err != nil {
		t.Fatalf("Search returned error: %v", err)
	}
	if results[0].Brand != "Generic" {
		t.Errorf("Brand = %q, want Generic", results[0].Brand)
	}
}
