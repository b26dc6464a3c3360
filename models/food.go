package models

import "gorm.io/gorm"

const (
	CategoryFruits     = "fruits"
	CategoryVegetables = "vegetables"
	CategoryGrains     = "grains"
	CategoryProtein    = "protein"
	CategoryDairy      = "dairy"
	CategoryFats       = "fats"
	CategoryOther      = "other"
)

const (
	SourceUSDA     = "usda"
	SourceEdamam   = "edamam"
	SourceCustom   = "custom"
	SourceFallback = "fallback"
)

var validServingUnits = map[string]bool{
	"g": true, "ml": true, "cup": true, "tbsp": true,
	"tsp": true, "piece": true, "slice": true, "oz": true,
}

var validCategories = map[string]bool{
	CategoryFruits: true, CategoryVegetables: true, CategoryGrains: true,
	CategoryProtein: true, CategoryDairy: true, CategoryFats: true,
	"beverages": true, "snacks": true, "condiments": true, CategoryOther: true,
}

func IsValidServingUnit(u string) bool { return validServingUnits[u] }

func IsValidCategory(c string) bool { return validCategories[c] }

// Nutrition facts per serving, all non-negative.
type Nutrition struct {
	Calories    float64 `json:"calories"`
	Protein     float64 `json:"protein"`
	Carbs       float64 `json:"carbs"`
	Fat         float64 `json:"fat"`
	Fiber       float64 `json:"fiber"`
	Sugar       float64 `json:"sugar"`
	Sodium      float64 `json:"sodium"`
	Cholesterol float64 `json:"cholesterol"`
}

// Food is a catalog entry. Custom foods carry the creating user; foods
// produced by the search aggregation are ephemeral and only land here
// when a user saves them explicitly.
type Food struct {
	gorm.Model
	Name          string    `gorm:"not null;index" json:"name"`
	Brand         string    `gorm:"default:Generic" json:"brand"`
	ServingAmount float64   `gorm:"not null" json:"servingAmount"`
	ServingUnit   string    `gorm:"not null" json:"servingUnit"`
	Nutrition     Nutrition `gorm:"embedded" json:"nutrition"`
	Category      string    `gorm:"not null" json:"category"`
	Source        string    `gorm:"default:custom" json:"source"`
	ExternalID    string    `json:"externalId,omitempty"`
	IsPublic      bool      `gorm:"default:true" json:"isPublic"`
	CreatedBy     *uint     `json:"createdBy,omitempty"`
}
