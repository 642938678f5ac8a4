package insights_test

import (
	"testing"
	"time"

	"github.com/plateful-app/plateful-cli/internal/insights"
	"github.com/plateful-app/plateful-cli/internal/model"
)

func mealLog(date string, calories, protein int) model.MealLog {
	return model.MealLog{
		ID:        date + "-log",
		Title:     "meal",
		Servings:  1,
		Nutrition: model.Nutrition{Calories: calories, ProteinG: protein},
		Date:      date,
	}
}

func TestChartSeriesSumsSameDayLogs(t *testing.T) {
	t.Parallel()

	today := time.Date(2024, 1, 3, 12, 0, 0, 0, time.Local)
	logs := []model.MealLog{
		mealLog("2024-01-01", 500, 30),
		mealLog("2024-01-01", 300, 20),
		mealLog("2023-12-20", 900, 50), // outside the window
	}
	goals := model.DailyGoals{Calories: 1800}

	data := insights.ChartSeries(logs, nil, goals, 7, today)
	if len(data.Days) != 7 {
		t.Fatalf("expected 7 points, got %d", len(data.Days))
	}
	if first, last := data.Days[0].Date, data.Days[6].Date; first != "2023-12-28" || last != "2024-01-03" {
		t.Fatalf("unexpected window %s..%s", first, last)
	}

	var jan1 *insights.DayPoint
	for i := range data.Days {
		if data.Days[i].Date == "2024-01-01" {
			jan1 = &data.Days[i]
		}
	}
	if jan1 == nil {
		t.Fatal("window missing 2024-01-01")
	}
	if jan1.Calories != 800 || jan1.ProteinG != 50 {
		t.Fatalf("expected summed 800 kcal / 50g protein, got %+v", jan1)
	}
	if jan1.Maintenance != 2300 {
		t.Fatalf("expected maintenance goal+500, got %d", jan1.Maintenance)
	}
}

func TestChartSeriesAxisFloorAndAverage(t *testing.T) {
	t.Parallel()

	today := time.Date(2024, 1, 7, 0, 0, 0, 0, time.Local)
	goals := model.DailyGoals{Calories: 1500}

	data := insights.ChartSeries(nil, nil, goals, 7, today)
	if data.CalorieAxisMax != 2500 {
		t.Fatalf("expected 2500 axis floor, got %d", data.CalorieAxisMax)
	}
	if data.AverageCalories != 0 {
		t.Fatalf("expected zero average for empty logs, got %f", data.AverageCalories)
	}

	big := []model.MealLog{mealLog("2024-01-07", 3100, 0)}
	data = insights.ChartSeries(big, nil, goals, 7, today)
	if data.CalorieAxisMax != 3100 {
		t.Fatalf("expected axis max to follow the data, got %d", data.CalorieAxisMax)
	}

	// The maintenance line does not stretch the axis; only logged days do.
	highGoals := model.DailyGoals{Calories: 3000}
	data = insights.ChartSeries(nil, nil, highGoals, 7, today)
	if data.CalorieAxisMax != 2500 {
		t.Fatalf("expected floor despite high maintenance line, got %d", data.CalorieAxisMax)
	}

	// Degenerate empty window must not divide by zero.
	empty := insights.ChartSeries(big, nil, goals, 0, today)
	if len(empty.Days) != 0 || empty.AverageCalories != 0 {
		t.Fatalf("expected empty series, got %+v", empty)
	}
}

func TestChartSeriesPicksLatestWeightPerDate(t *testing.T) {
	t.Parallel()

	today := time.Date(2024, 1, 7, 0, 0, 0, 0, time.Local)
	weights := []model.WeightEntry{
		{ID: "w1", WeightLbs: 181, Date: "2024-01-06", Timestamp: 100},
		{ID: "w2", WeightLbs: 180, Date: "2024-01-06", Timestamp: 200},
	}
	data := insights.ChartSeries(nil, weights, model.DailyGoals{Calories: 2000}, 7, today)

	for _, p := range data.Days {
		if p.Date == "2024-01-06" {
			if p.WeightLbs == nil || *p.WeightLbs != 180 {
				t.Fatalf("expected latest-by-timestamp weight 180, got %+v", p.WeightLbs)
			}
			return
		}
	}
	t.Fatal("window missing 2024-01-06")
}

func TestWeightAxisRange(t *testing.T) {
	t.Parallel()

	entries := []model.WeightEntry{
		{WeightLbs: 180, Date: "2024-01-01"},
		{WeightLbs: 175, Date: "2024-01-02"},
	}
	low, high, ok := insights.WeightAxisRange(entries, 165)
	if !ok {
		t.Fatal("expected a range")
	}
	// floor(165*0.8)=132, ceil(180*1.2)=216
	if low != 132 || high != 216 {
		t.Fatalf("expected [132,216], got [%d,%d]", low, high)
	}

	if _, _, ok := insights.WeightAxisRange(nil, 0); ok {
		t.Fatal("expected no range with no data")
	}
}

func intPtr(v int) *int { return &v }

func TestTodayActivityWidgets(t *testing.T) {
	t.Parallel()

	logs := []model.ExerciseLog{
		{ID: "e1", Name: "Bench", Type: model.ExerciseStrength, Reps: intPtr(8), Sets: intPtr(3), DurationMin: intPtr(20), Date: "2024-01-05"},
		{ID: "e2", Name: "Row", Type: model.ExerciseCardio, DurationMin: intPtr(30), Date: "2024-01-05"},
		{ID: "e3", Name: "Walk", Type: model.ExerciseWalking, DurationMin: intPtr(45), Date: "2024-01-05"},
		{ID: "e4", Name: "Squat", Type: model.ExerciseStrength, Reps: intPtr(5), Sets: intPtr(5), Date: "2024-01-04"}, // other day
	}
	got := insights.TodayActivity(logs, "2024-01-05")
	if got.Reps != 24 {
		t.Fatalf("expected 24 reps, got %d", got.Reps)
	}
	if got.ExerciseMinutes != 50 {
		t.Fatalf("expected 50 exercise minutes, got %d", got.ExerciseMinutes)
	}
	if got.WalkingMinutes != 45 {
		t.Fatalf("expected 45 walking minutes, got %d", got.WalkingMinutes)
	}
}

func TestTotalsForDate(t *testing.T) {
	t.Parallel()

	logs := []model.MealLog{
		mealLog("2024-01-05", 600, 40),
		mealLog("2024-01-05", 450, 25),
		mealLog("2024-01-06", 800, 50),
	}
	got := insights.TotalsForDate(logs, "2024-01-05")
	if got.Calories != 1050 || got.ProteinG != 65 {
		t.Fatalf("unexpected totals %+v", got)
	}
}
