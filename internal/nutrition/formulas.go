package nutrition

import (
	"math"

	"github.com/plateful-app/plateful-cli/internal/model"
)

const (
	lbsPerKg   = 2.20462
	cmPerInch  = 2.54
	kcalPerLb  = 3500.0
	loseRate   = 1.5  // lbs per week
	gainRate   = 0.75 // lbs per week
	minLoseCal = 1200
)

// activityMultipliers maps activity levels to their TDEE multiplier.
// Single source of truth for valid levels; also used for input
// validation at the profile edge.
var activityMultipliers = map[model.ActivityLevel]float64{
	model.ActivitySedentary:  1.2,
	model.ActivityModerate:   1.375,
	model.ActivityActive:     1.55,
	model.ActivityVeryActive: 1.725,
	model.ActivityAthlete:    1.9,
}

func ValidActivityLevel(level model.ActivityLevel) bool {
	_, ok := activityMultipliers[level]
	return ok
}

// BMI computes body mass index from imperial inputs. Zero or negative
// height is the caller's problem; the result propagates as Inf/NaN.
func BMI(weightLbs, heightIn float64) float64 {
	return weightLbs / (heightIn * heightIn) * 703
}

func BMICategory(bmi float64) string {
	switch {
	case bmi < 18.5:
		return "Underweight"
	case bmi < 25:
		return "Normal"
	case bmi < 30:
		return "Overweight"
	default:
		return "Obese"
	}
}

// TDEE estimates total daily energy expenditure via Mifflin-St Jeor on
// metric-converted weight/height, scaled by the activity multiplier.
// Unknown activity levels fall back to sedentary.
func TDEE(p model.UserProfile) int {
	weightKg := p.WeightLbs / lbsPerKg
	heightCm := p.HeightIn * cmPerInch
	bmr := 10*weightKg + 6.25*heightCm - 5*float64(p.Age)
	if p.Gender == model.GenderMale {
		bmr += 5
	} else {
		bmr -= 161
	}
	mult, ok := activityMultipliers[p.ActivityLevel]
	if !ok {
		mult = activityMultipliers[model.ActivitySedentary]
	}
	return int(math.Round(bmr * mult))
}

type GoalProjection struct {
	Calories    int
	WeeksToGoal int
	Deficit     int
}

// GoalCalories projects a daily calorie budget from TDEE and the weight
// delta to the target. Loss runs at 1.5 lb/week and is floored at
// 1200 kcal/day; gain runs at 0.75 lb/week. 3500 kcal ~= 1 lb.
func GoalCalories(tdee int, goalType model.GoalType, weightDiffLbs float64) GoalProjection {
	switch goalType {
	case model.GoalLose:
		deficit := int(math.Round(loseRate * kcalPerLb / 7))
		calories := tdee - deficit
		if calories < minLoseCal {
			calories = minLoseCal
		}
		return GoalProjection{
			Calories:    calories,
			WeeksToGoal: int(math.Round(math.Abs(weightDiffLbs) / loseRate)),
			Deficit:     deficit,
		}
	case model.GoalGain:
		surplus := int(math.Round(gainRate * kcalPerLb / 7))
		return GoalProjection{
			Calories:    tdee + surplus,
			WeeksToGoal: int(math.Round(math.Abs(weightDiffLbs) / gainRate)),
			Deficit:     -surplus,
		}
	default:
		return GoalProjection{Calories: tdee}
	}
}

// macroRatios holds calorie shares for protein/fat/carbs per goal type.
var macroRatios = map[model.GoalType][3]float64{
	model.GoalLose:     {0.35, 0.30, 0.35},
	model.GoalGain:     {0.30, 0.25, 0.45},
	model.GoalMaintain: {0.30, 0.30, 0.40},
}

type MacroGrams struct {
	ProteinG int
	CarbsG   int
	FatG     int
}

// MacroSplit converts a calorie budget into macro grams at 4/9/4 kcal
// per gram. Each macro is rounded independently, so the implied total
// can drift from the budget by a few kcal.
func MacroSplit(calories int, goalType model.GoalType) MacroGrams {
	ratios, ok := macroRatios[goalType]
	if !ok {
		ratios = macroRatios[model.GoalMaintain]
	}
	cal := float64(calories)
	return MacroGrams{
		ProteinG: int(math.Round(cal * ratios[0] / 4)),
		FatG:     int(math.Round(cal * ratios[1] / 9)),
		CarbsG:   int(math.Round(cal * ratios[2] / 4)),
	}
}

// GoalTypeFor derives the goal direction from current vs. target
// weight. Within a pound either way counts as maintenance.
func GoalTypeFor(currentLbs, goalLbs float64) model.GoalType {
	diff := currentLbs - goalLbs
	switch {
	case diff > 1:
		return model.GoalLose
	case diff < -1:
		return model.GoalGain
	default:
		return model.GoalMaintain
	}
}

// GoalsForProfile runs the full derivation: TDEE, goal-calorie
// projection against the target weight, then the macro split.
func GoalsForProfile(p model.UserProfile) model.DailyGoals {
	tdee := TDEE(p)
	proj := GoalCalories(tdee, p.GoalType, p.WeightLbs-p.GoalWeightLbs)
	macros := MacroSplit(proj.Calories, p.GoalType)
	return model.DailyGoals{
		Calories: proj.Calories,
		ProteinG: macros.ProteinG,
		CarbsG:   macros.CarbsG,
		FatG:     macros.FatG,
	}
}
