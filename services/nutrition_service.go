package services

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"strings"
	"time"

	"backend/models"
	"backend/utils"
)

const nutritionEndpoint = "https://api.nal.usda.gov/fdc/v1/foods/search"

// The lookup is restricted to one data subtype; survey foods index common
// prepared dishes, which is what the classifier hands us.
const nutritionDataType = "Survey (FNDDS)"

const nutritionPageSize = 5

// NutritionLookup is the orchestrator's view of the nutrition database.
type NutritionLookup interface {
	Lookup(ctx context.Context, query string) (*models.NutritionalData, error)
}

// NutritionService queries the FoodData Central search endpoint. BaseURL is
// overridable for tests.
type NutritionService struct {
	BaseURL string
	client  *http.Client
}

func NewNutritionService() *NutritionService {
	return &NutritionService{
		BaseURL: nutritionEndpoint,
		client:  &http.Client{Timeout: 10 * time.Second},
	}
}

// FoodNutrient is one name/value/unit triple from the provider's nutrient
// list.
type FoodNutrient struct {
	NutrientName string  `json:"nutrientName"`
	Value        float64 `json:"value"`
	UnitName     string  `json:"unitName"`
}

type foodSearchResponse struct {
	Foods []struct {
		Description   string         `json:"description"`
		FoodNutrients []FoodNutrient `json:"foodNutrients"`
	} `json:"foods"`
}

// Lookup resolves a free-text food name to nutritional data. The first match
// is taken as-is — the provider already ranks by relevance and we do not
// re-rank. Zero matches yield a NotFoundError.
func (s *NutritionService) Lookup(ctx context.Context, query string) (*models.NutritionalData, error) {
	key := os.Getenv("NUTRITION_API_KEY")
	if key == "" {
		return nil, &utils.ConfigurationError{Key: "NUTRITION_API_KEY"}
	}

	params := url.Values{}
	params.Set("api_key", key)
	params.Set("query", query)
	params.Set("dataType", nutritionDataType)
	params.Set("pageSize", fmt.Sprintf("%d", nutritionPageSize))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.BaseURL+"?"+params.Encode(), nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create nutrition request: %w", err)
	}

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to call nutrition API: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read nutrition response: %w", err)
	}
	switch {
	case resp.StatusCode == http.StatusUnauthorized || resp.StatusCode == http.StatusForbidden:
		return nil, &utils.AuthorizationError{Provider: "nutrition", Status: resp.StatusCode}
	case resp.StatusCode != http.StatusOK:
		return nil, &utils.RemoteServiceError{Provider: "nutrition", Status: resp.StatusCode, Detail: string(body)}
	}

	var sr foodSearchResponse
	if err := json.Unmarshal(body, &sr); err != nil {
		return nil, fmt.Errorf("failed to parse nutrition JSON: %w", err)
	}
	if len(sr.Foods) == 0 {
		return nil, &utils.NotFoundError{Query: query}
	}

	return ExtractNutrients(sr.Foods[0].FoodNutrients), nil
}

// ExtractNutrients maps a nutrient list onto the fixed NutritionalData
// fields. Matching is a case-insensitive substring check; when several
// nutrients match the same field, the last one in the list wins — assignment
// is unconditional on every iteration.
func ExtractNutrients(nutrients []FoodNutrient) *models.NutritionalData {
	nd := &models.NutritionalData{}
	for _, n := range nutrients {
		name := strings.ToLower(n.NutrientName)
		v := n.Value
		switch {
		case strings.Contains(name, "energy"):
			nd.Calories = v
		case strings.Contains(name, "protein"):
			nd.Protein = v
		case strings.Contains(name, "carbohydrate"):
			nd.Carbs = v
		case strings.Contains(name, "total lipid") || strings.Contains(name, "fat"):
			nd.Fat = v
		case strings.Contains(name, "fiber"):
			val := v
			nd.Fiber = &val
		case strings.Contains(name, "sugar"):
			val := v
			nd.Sugar = &val
		case strings.Contains(name, "sodium"):
			val := v
			nd.Sodium = &val
		}
	}
	return nd
}
