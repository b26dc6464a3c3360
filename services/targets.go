package services

import (
	"math"

	"github.com/UJJWAL-7777/Diet-Manager/models"
)

type TargetInput struct {
	Gender        string
	WeightKg      float64
	HeightCm      float64
	Age           int
	ActivityLevel string
	Goal          string
}

type Targets struct {
	DailyCalories int
	ProteinG      int
	CarbsG        int
	FatG          int
}

var activityFactors = map[string]float64{
	models.ActivitySedentary:  1.2,
	models.ActivityLight:      1.375,
	models.ActivityModerate:   1.55,
	models.ActivityActive:     1.725,
	models.ActivityVeryActive: 1.9,
}

// CalculateTargets derives daily calories and macro targets from the
// profile attributes. BMR via Mifflin-St Jeor; genders other than "male"
// use the female coefficient. Unrecognized activity levels fall back to
// the moderate factor. Macros are fixed proportions of calories
// (30% protein, 25% fat, 45% carbs), each rounded independently, so the
// gram totals do not reconcile exactly back to the calorie figure.
func CalculateTargets(in TargetInput) Targets {
	bmr := 10*in.WeightKg + 6.25*in.HeightCm - 5*float64(in.Age)
	if in.Gender == "male" {
		bmr += 5
	} else {
		bmr -= 161
	}

	factor, ok := activityFactors[in.ActivityLevel]
	if !ok {
		factor = 1.55
	}
	calories := bmr * factor

	switch in.Goal {
	case models.GoalWeightLoss:
		calories -= 500
	case models.GoalWeightGain, models.GoalMuscleGain:
		calories += 500
	}

	daily := math.Round(calories)
	return Targets{
		DailyCalories: int(daily),
		ProteinG:      int(math.Round(daily * 0.3 / 4)),
		CarbsG:        int(math.Round(daily * 0.45 / 4)),
		FatG:          int(math.Round(daily * 0.25 / 9)),
	}
}
