package services

import (
	"errors"
	"fmt"
	"strings"

	"github.com/UJJWAL-7777/Diet-Manager/config"
	"github.com/UJJWAL-7777/Diet-Manager/models"

	"gorm.io/gorm"
)

type ProfileInput struct {
	Age                 int      `json:"age"`
	Gender              string   `json:"gender"`
	Height              float64  `json:"height"`
	Weight              float64  `json:"weight"`
	Goal                string   `json:"goal"`
	ActivityLevel       string   `json:"activityLevel"`
	DietaryRestrictions []string `json:"dietaryRestrictions"`
	Allergies           []string `json:"allergies"`
	MealCount           int      `json:"mealCount"`
}

func (in ProfileInput) validate() error {
	if in.Gender != "" && !models.IsValidGender(in.Gender) {
		return fmt.Errorf("invalid gender %q", in.Gender)
	}
	if in.Goal != "" && !models.IsValidGoal(in.Goal) {
		return fmt.Errorf("invalid goal %q", in.Goal)
	}
	if in.ActivityLevel != "" && !models.IsValidActivityLevel(in.ActivityLevel) {
		return fmt.Errorf("invalid activity level %q", in.ActivityLevel)
	}
	if in.Age != 0 && (in.Age < 13 || in.Age > 120) {
		return fmt.Errorf("age must be between 13 and 120")
	}
	if in.MealCount != 0 && (in.MealCount < 1 || in.MealCount > 6) {
		return fmt.Errorf("meal count must be between 1 and 6")
	}
	for _, r := range in.DietaryRestrictions {
		if !models.IsValidDietaryRestriction(r) {
			return fmt.Errorf("invalid dietary restriction %q", r)
		}
	}
	return nil
}

// SaveProfile upserts the single profile row for the user. The daily
// targets are recomputed only once age, height, weight and gender are
// all known; until then any previously stored targets remain.
func SaveProfile(userID uint, in ProfileInput) (*models.UserProfile, error) {
	if err := in.validate(); err != nil {
		return nil, err
	}

	var profile models.UserProfile
	err := config.DB.Where("user_id = ?", userID).First(&profile).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		profile = models.UserProfile{
			UserID:        userID,
			Goal:          models.GoalMaintenance,
			ActivityLevel: models.ActivityModerate,
			DailyCalories: 2000,
			ProteinTarget: 50,
			CarbsTarget:   250,
			FatTarget:     70,
			MealCount:     3,
		}
	} else if err != nil {
		return nil, err
	}

	if in.Age > 0 {
		profile.Age = in.Age
	}
	if in.Gender != "" {
		profile.Gender = in.Gender
	}
	if in.Height > 0 {
		profile.Height = in.Height
	}
	if in.Weight > 0 {
		profile.Weight = in.Weight
	}
	if in.Goal != "" {
		profile.Goal = in.Goal
	}
	if in.ActivityLevel != "" {
		profile.ActivityLevel = in.ActivityLevel
	}
	if in.DietaryRestrictions != nil {
		profile.DietaryRestrictions = strings.Join(in.DietaryRestrictions, ",")
	}
	if in.Allergies != nil {
		profile.Allergies = strings.Join(in.Allergies, ",")
	}
	if in.MealCount > 0 {
		profile.MealCount = in.MealCount
	}

	if profile.Age > 0 && profile.Height > 0 && profile.Weight > 0 && profile.Gender != "" {
		t := CalculateTargets(TargetInput{
			Gender:        profile.Gender,
			WeightKg:      profile.Weight,
			HeightCm:      profile.Height,
			Age:           profile.Age,
			ActivityLevel: profile.ActivityLevel,
			Goal:          profile.Goal,
		})
		profile.DailyCalories = t.DailyCalories
		profile.ProteinTarget = t.ProteinG
		profile.CarbsTarget = t.CarbsG
		profile.FatTarget = t.FatG
	}

	if err := config.DB.Save(&profile).Error; err != nil {
		return nil, err
	}
	return &profile, nil
}

func GetProfile(userID uint) (*models.UserProfile, error) {
	var profile models.UserProfile
	if err := config.DB.Where("user_id = ?", userID).First(&profile).Error; err != nil {
		return nil, err
	}
	return &profile, nil
}
