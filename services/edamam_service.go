package services

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/UJJWAL-7777/Diet-Manager/models"
)

// EdamamService queries the Edamam Food Database parser endpoint.
type EdamamService struct {
	appID   string
	appKey  string
	baseURL string
	client  *http.Client
}

func NewEdamamService(appID, appKey string) *EdamamService {
	return &EdamamService{
		appID:   appID,
		appKey:  appKey,
		baseURL: "https://api.edamam.com/api/food-database/v2/parser",
		client:  &http.Client{Timeout: 10 * time.Second},
	}
}

func (s *EdamamService) Name() string { return "edamam" }

type edamamParserResponse struct {
	Hints []struct {
		Food struct {
			FoodID    string             `json:"foodId"`
			Label     string             `json:"label"`
			Category  string             `json:"category"`
			Nutrients map[string]float64 `json:"nutrients"`
		} `json:"food"`
	} `json:"hints"`
}

func (s *EdamamService) Search(query string, maxResults int) ([]FoodResult, error) {
	params := url.Values{}
	params.Set("ingr", query)
	params.Set("app_id", s.appID)
	params.Set("app_key", s.appKey)
	params.Set("nutritionType", "cooking")

	resp, err := s.client.Get(s.baseURL + "?" + params.Encode())
	if err != nil {
		return nil, fmt.Errorf("failed to call Edamam parser: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read Edamam parser response: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("edamam parser API error %d: %s", resp.StatusCode, string(body))
	}

	var pr edamamParserResponse
	if err := json.Unmarshal(body, &pr); err != nil {
		return nil, fmt.Errorf("failed to parse Edamam parser JSON: %w", err)
	}

	results := make([]FoodResult, 0, len(pr.Hints))
	for i, h := range pr.Hints {
		if i >= maxResults {
			break
		}
		brand := h.Food.Category
		if brand == "" {
			brand = "Generic"
		}
		results = append(results, FoodResult{
			Name:        h.Food.Label,
			Brand:       brand,
			ServingSize: ServingSize{Amount: 100, Unit: "g"},
			Nutrition: models.Nutrition{
				Calories: h.Food.Nutrients["ENERC_KCAL"],
				Protein:  h.Food.Nutrients["PROCNT"],
				Carbs:    h.Food.Nutrients["CHOCDF"],
				Fat:      h.Food.Nutrients["FAT"],
				Fiber:    h.Food.Nutrients["FIBTG"],
				Sugar:    h.Food.Nutrients["SUGAR"],
				// Edamam does not reliably provide sodium or cholesterol
			},
			Category:   Categorize(h.Food.Label),
			Source:     models.SourceEdamam,
			ExternalID: h.Food.FoodID,
		})
	}
	return results, nil
}
