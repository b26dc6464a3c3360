package services

import (
	"errors"
	"fmt"
	"strings"

	"github.com/UJJWAL-7777/Diet-Manager/models"
	"github.com/UJJWAL-7777/Diet-Manager/pkg/logger"
)

// ErrQueryTooShort is returned for queries under two characters; no
// provider is contacted in that case.
var ErrQueryTooShort = errors.New("search query must be at least 2 characters")

const maxProviderResults = 10

// ServingSize pairs an amount with its unit.
type ServingSize struct {
	Amount float64 `json:"amount"`
	Unit   string  `json:"unit"`
}

// FoodResult is the normalized record every provider and the fallback
// table are converted into before being returned to callers.
type FoodResult struct {
	Name        string           `json:"name"`
	Brand       string           `json:"brand"`
	ServingSize ServingSize      `json:"servingSize"`
	Nutrition   models.Nutrition `json:"nutrition"`
	Category    string           `json:"category"`
	Source      string           `json:"source"`
	ExternalID  string           `json:"externalId,omitempty"`
}

// FoodProvider is one external nutrition database. Implementations are
// tried in priority order; any error is absorbed by the aggregator.
type FoodProvider interface {
	Name() string
	Search(query string, maxResults int) ([]FoodResult, error)
}

type FoodService struct {
	providers []FoodProvider
	rek       *RekognitionService
	log       *logger.Logger
}

func NewFoodService(log *logger.Logger, rek *RekognitionService, providers ...FoodProvider) *FoodService {
	return &FoodService{providers: providers, rek: rek, log: log}
}

// SearchFoods fans out to the configured providers in order, falling
// back to the static table when nothing survives, and deduplicates by
// name. It never fails for a well-formed query: provider errors are
// logged and treated as empty results.
func (s *FoodService) SearchFoods(query string) ([]FoodResult, error) {
	q := strings.TrimSpace(query)
	if len(q) < 2 {
		return nil, ErrQueryTooShort
	}

	var results []FoodResult
	for _, p := range s.providers {
		found, err := p.Search(q, maxProviderResults)
		if err != nil {
			s.log.Warnw("food provider failed, skipping", "provider", p.Name(), "error", err)
			continue
		}
		results = append(results, found...)
	}

	if len(results) == 0 {
		results = fallbackMatches(q)
	}

	return dedupeByName(results), nil
}

// RecognizeAndSearch detects food labels in a base64 image and searches
// for the top label.
func (s *FoodService) RecognizeAndSearch(base64Img string) ([]FoodResult, error) {
	if s.rek == nil {
		return nil, errors.New("photo recognition is not configured")
	}
	labels, err := s.rek.RecognizeLabels(base64Img)
	if err != nil {
		return nil, err
	}
	if len(labels) == 0 {
		return nil, fmt.Errorf("no food detected in image")
	}
	return s.SearchFoods(labels[0])
}

// dedupeByName keeps the first occurrence of each exact name.
func dedupeByName(foods []FoodResult) []FoodResult {
	seen := make(map[string]bool, len(foods))
	out := make([]FoodResult, 0, len(foods))
	for _, f := range foods {
		if seen[f.Name] {
			continue
		}
		seen[f.Name] = true
		out = append(out, f)
	}
	return out
}
