package insights

import "github.com/plateful-app/plateful-cli/internal/model"

type ActivitySummary struct {
	Reps            int `json:"reps"`
	ExerciseMinutes int `json:"exercise_minutes"`
	WalkingMinutes  int `json:"walking_minutes"`
}

// TodayActivity sums the widget counters for one date: reps×sets over
// strength work, duration over strength+cardio, and walking minutes
// separately.
func TodayActivity(logs []model.ExerciseLog, date string) ActivitySummary {
	var out ActivitySummary
	for _, l := range logs {
		if l.Date != date {
			continue
		}
		switch l.Type {
		case model.ExerciseStrength:
			if l.Reps != nil && l.Sets != nil {
				out.Reps += *l.Reps * *l.Sets
			}
			if l.DurationMin != nil {
				out.ExerciseMinutes += *l.DurationMin
			}
		case model.ExerciseCardio:
			if l.DurationMin != nil {
				out.ExerciseMinutes += *l.DurationMin
			}
		case model.ExerciseWalking:
			if l.DurationMin != nil {
				out.WalkingMinutes += *l.DurationMin
			}
		}
	}
	return out
}

type DayTotals struct {
	Calories int `json:"calories"`
	ProteinG int `json:"protein_g"`
	CarbsG   int `json:"carbs_g"`
	FatG     int `json:"fat_g"`
	FiberG   int `json:"fiber_g"`
}

// TotalsForDate sums meal logs by exact date-string match.
func TotalsForDate(logs []model.MealLog, date string) DayTotals {
	var out DayTotals
	for _, l := range logs {
		if l.Date != date {
			continue
		}
		out.Calories += l.Nutrition.Calories
		out.ProteinG += l.Nutrition.ProteinG
		out.CarbsG += l.Nutrition.CarbsG
		out.FatG += l.Nutrition.FatG
		out.FiberG += l.Nutrition.FiberG
	}
	return out
}
