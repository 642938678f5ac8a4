// Package insights derives chart- and widget-ready views from store
// contents. Everything here is a pure projection: full recompute per
// call, no caching.
package insights

import (
	"math"
	"time"

	"github.com/plateful-app/plateful-cli/internal/model"
)

// maintenanceOffset is drawn above the goal line as the "don't exceed"
// reference on the dashboard chart.
const maintenanceOffset = 500

// calorieAxisFloor keeps short windows from producing a cramped axis.
const calorieAxisFloor = 2500

type DayPoint struct {
	Date        string   `json:"date"`
	Calories    int      `json:"calories"`
	ProteinG    int      `json:"protein_g"`
	CarbsG      int      `json:"carbs_g"`
	FatG        int      `json:"fat_g"`
	Maintenance int      `json:"maintenance"`
	WeightLbs   *float64 `json:"weight_lbs,omitempty"`
}

type ChartData struct {
	Days            []DayPoint `json:"days"`
	CalorieAxisMax  int        `json:"calorie_axis_max"`
	AverageCalories float64    `json:"avg_calories"`
}

// ChartSeries rolls meal logs and weight entries into one point per day
// for the window of `days` days ending at `today`. Calories and macros
// are summed by exact date-string match; the weight shown for a date is
// its latest entry by timestamp.
func ChartSeries(logs []model.MealLog, weights []model.WeightEntry, goals model.DailyGoals, days int, today time.Time) ChartData {
	maintenance := goals.Calories + maintenanceOffset

	byDate := make(map[string]*DayPoint, days)
	points := make([]DayPoint, days)
	for i := 0; i < days; i++ {
		date := today.AddDate(0, 0, i-days+1).Format("2006-01-02")
		points[i] = DayPoint{Date: date, Maintenance: maintenance}
		byDate[date] = &points[i]
	}

	for _, l := range logs {
		p, ok := byDate[l.Date]
		if !ok {
			continue
		}
		p.Calories += l.Nutrition.Calories
		p.ProteinG += l.Nutrition.ProteinG
		p.CarbsG += l.Nutrition.CarbsG
		p.FatG += l.Nutrition.FatG
	}

	latestByDate := make(map[string]model.WeightEntry, len(weights))
	for _, w := range weights {
		if prev, ok := latestByDate[w.Date]; !ok || w.Timestamp > prev.Timestamp {
			latestByDate[w.Date] = w
		}
	}
	for date, p := range byDate {
		if w, ok := latestByDate[date]; ok {
			v := w.WeightLbs
			p.WeightLbs = &v
		}
	}

	// Second pass: axis scale and average over the produced sequence.
	out := ChartData{Days: points, CalorieAxisMax: calorieAxisFloor}
	total := 0
	for _, p := range points {
		if p.Calories > out.CalorieAxisMax {
			out.CalorieAxisMax = p.Calories
		}
		total += p.Calories
	}
	if days > 0 {
		out.AverageCalories = float64(total) / float64(days)
	}
	return out
}

// WeightAxisRange computes the plot range over observed weights plus
// the goal weight, padded 20% each way.
func WeightAxisRange(entries []model.WeightEntry, goalWeightLbs float64) (low, high int, ok bool) {
	min, max := goalWeightLbs, goalWeightLbs
	any := goalWeightLbs > 0
	for _, e := range entries {
		if !any || e.WeightLbs < min {
			min = e.WeightLbs
		}
		if !any || e.WeightLbs > max {
			max = e.WeightLbs
		}
		any = true
	}
	if !any {
		return 0, 0, false
	}
	return int(math.Floor(min * 0.8)), int(math.Ceil(max * 1.2)), true
}
