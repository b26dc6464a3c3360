package models

import "gorm.io/gorm"

const (
	GoalWeightLoss  = "weight_loss"
	GoalWeightGain  = "weight_gain"
	GoalMaintenance = "maintenance"
	GoalMuscleGain  = "muscle_gain"
)

const (
	ActivitySedentary  = "sedentary"
	ActivityLight      = "light"
	ActivityModerate   = "moderate"
	ActivityActive     = "active"
	ActivityVeryActive = "very_active"
)

var validGoals = map[string]bool{
	GoalWeightLoss:  true,
	GoalWeightGain:  true,
	GoalMaintenance: true,
	GoalMuscleGain:  true,
}

var validActivityLevels = map[string]bool{
	ActivitySedentary:  true,
	ActivityLight:      true,
	ActivityModerate:   true,
	ActivityActive:     true,
	ActivityVeryActive: true,
}

var validGenders = map[string]bool{
	"male":   true,
	"female": true,
	"other":  true,
}

var validDietaryRestrictions = map[string]bool{
	"vegetarian":  true,
	"vegan":       true,
	"gluten-free": true,
	"dairy-free":  true,
	"nut-free":    true,
	"keto":        true,
	"paleo":       true,
}

func IsValidGoal(g string) bool { return validGoals[g] }

func IsValidActivityLevel(a string) bool { return validActivityLevels[a] }

func IsValidGender(g string) bool { return validGenders[g] }

func IsValidDietaryRestriction(r string) bool { return validDietaryRestrictions[r] }

// UserProfile holds one row per user. The daily targets are derived from
// the physical attributes whenever all of them are present; until then the
// column defaults stand in.
type UserProfile struct {
	gorm.Model
	UserID uint `gorm:"uniqueIndex;not null" json:"userId"`

	Age    int     `json:"age"`
	Gender string  `json:"gender"`
	Height float64 `json:"height"` // cm
	Weight float64 `json:"weight"` // kg

	Goal          string `gorm:"default:maintenance" json:"goal"`
	ActivityLevel string `gorm:"default:moderate" json:"activityLevel"`

	// comma-joined tag lists
	DietaryRestrictions string `json:"dietaryRestrictions"`
	Allergies           string `json:"allergies"`

	DailyCalories int `gorm:"default:2000" json:"dailyCalories"`
	ProteinTarget int `gorm:"default:50" json:"proteinTarget"` // g
	CarbsTarget   int `gorm:"default:250" json:"carbsTarget"`  // g
	FatTarget     int `gorm:"default:70" json:"fatTarget"`     // g

	MealCount int `gorm:"default:3" json:"mealCount"`
}
