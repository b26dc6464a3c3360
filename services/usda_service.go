package services

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/UJJWAL-7777/Diet-Manager/models"
)

// USDAService queries the USDA FoodData Central search endpoint.
type USDAService struct {
	apiKey  string
	baseURL string
	client  *http.Client
}

func NewUSDAService(apiKey string) *USDAService {
	return &USDAService{
		apiKey:  apiKey,
		baseURL: "https://api.nal.usda.gov/fdc/v1/foods/search",
		client:  &http.Client{Timeout: 10 * time.Second},
	}
}

func (s *USDAService) Name() string { return "usda" }

type usdaSearchResponse struct {
	Foods []struct {
		FdcID         int    `json:"fdcId"`
		Description   string `json:"description"`
		FoodNutrients []struct {
			NutrientID int     `json:"nutrientId"`
			Value      float64 `json:"value"`
		} `json:"foodNutrients"`
	} `json:"foods"`
}

// FoodData Central nutrient numbers for the fields we keep.
const (
	usdaEnergy      = 1008
	usdaProtein     = 1003
	usdaCarbs       = 1005
	usdaFat         = 1004
	usdaFiber       = 1079
	usdaSugar       = 2000
	usdaSodium      = 1093
	usdaCholesterol = 1253
)

// Search returns normalized records for descriptions containing the
// query. Records with no nutrient entries, or that map to zero
// calories, are dropped.
func (s *USDAService) Search(query string, maxResults int) ([]FoodResult, error) {
	params := url.Values{}
	params.Set("api_key", s.apiKey)
	params.Set("query", query)
	params.Set("pageSize", strconv.Itoa(maxResults))
	params.Set("dataType", "Foundation,SR Legacy")

	resp, err := s.client.Get(s.baseURL + "?" + params.Encode())
	if err != nil {
		return nil, fmt.Errorf("failed to call USDA search: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read USDA response: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("USDA API error %d: %s", resp.StatusCode, string(body))
	}

	var sr usdaSearchResponse
	if err := json.Unmarshal(body, &sr); err != nil {
		return nil, fmt.Errorf("failed to parse USDA JSON: %w", err)
	}

	q := strings.ToLower(query)
	results := make([]FoodResult, 0, len(sr.Foods))
	for _, f := range sr.Foods {
		if !strings.Contains(strings.ToLower(f.Description), q) {
			continue
		}
		if len(f.FoodNutrients) == 0 {
			continue
		}

		var nut models.Nutrition
		for _, n := range f.FoodNutrients {
			switch n.NutrientID {
			case usdaEnergy:
				nut.Calories = n.Value
			case usdaProtein:
				nut.Protein = n.Value
			case usdaCarbs:
				nut.Carbs = n.Value
			case usdaFat:
				nut.Fat = n.Value
			case usdaFiber:
				nut.Fiber = n.Value
			case usdaSugar:
				nut.Sugar = n.Value
			case usdaSodium:
				nut.Sodium = n.Value
			case usdaCholesterol:
				nut.Cholesterol = n.Value
			}
		}
		if nut.Calories == 0 {
			continue
		}

		results = append(results, FoodResult{
			Name:        f.Description,
			Brand:       "USDA",
			ServingSize: ServingSize{Amount: 100, Unit: "g"},
			Nutrition:   nut,
			Category:    Categorize(f.Description),
			Source:      models.SourceUSDA,
			ExternalID:  strconv.Itoa(f.FdcID),
		})
	}
	return results, nil
}
