package ai

import (
	"context"
	"testing"
	"time"

	"github.com/plateful-app/plateful-cli/internal/model"
)

func TestRecipeFromDescriptionMapsPayload(t *testing.T) {
	t.Parallel()

	ts := chatStub(t, `Here is your recipe:
{"title": "Garlic Chicken", "servings": 4, "prep_minutes": 10, "cook_minutes": 25,
 "ingredients": [{"name": "chicken breast", "amount": "1 lb", "category": "protein"}],
 "instructions": ["Season.", "Bake."],
 "nutrition": {"calories": 320, "protein": 38, "fat": 12}}`)
	defer ts.Close()

	r, err := RecipeFromDescription(context.Background(), testClient(ts), "garlic chicken", nil)
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	if r.Title != "Garlic Chicken" || r.Servings != 4 {
		t.Fatalf("unexpected recipe %+v", r)
	}
	if r.Source != model.SourceDescription {
		t.Fatalf("expected description source, got %s", r.Source)
	}
	if r.PerServing.Calories != 320 || r.PerServing.ProteinG != 38 {
		t.Fatalf("unexpected nutrition %+v", r.PerServing)
	}
	// carbs and fiber were absent from the payload
	if r.PerServing.CarbsG != 0 || r.PerServing.FiberG != 0 {
		t.Fatalf("missing macros must default to zero, got %+v", r.PerServing)
	}
	if r.ID == "" {
		t.Fatal("recipe must get an id")
	}
}

func TestRecipePayloadDefaultsServingsToOne(t *testing.T) {
	t.Parallel()

	ts := chatStub(t, `{"title": "Toast", "nutrition": {"calories": 120}}`)
	defer ts.Close()

	r, err := ImportRecipeFromURL(context.Background(), testClient(ts), "https://example.com/toast", nil)
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	if r.Servings != 1 {
		t.Fatalf("expected servings default 1, got %v", r.Servings)
	}
	if r.Source != model.SourceURLImport {
		t.Fatalf("expected url source, got %s", r.Source)
	}
}

func TestParseMealTextBuildsLog(t *testing.T) {
	t.Parallel()

	ts := chatStub(t, `{"title": "Pepperoni Pizza", "servings": 2,
 "nutrition": {"calories": 580, "protein": 24, "carbs": 58, "fat": 28},
 "ingredients": [{"name": "pizza slice", "amount": "2", "category": "grain"}]}`)
	defer ts.Close()

	now := time.Date(2026, 3, 1, 19, 30, 0, 0, time.Local)
	log, err := ParseMealText(context.Background(), testClient(ts), "two slices of pepperoni pizza", "2026-03-01", now)
	if err != nil {
		t.Fatalf("parse meal: %v", err)
	}
	if log.Title != "Pepperoni Pizza" || log.Date != "2026-03-01" {
		t.Fatalf("unexpected log %+v", log)
	}
	if log.Nutrition.Calories != 580 {
		t.Fatalf("expected absolute calories 580, got %d", log.Nutrition.Calories)
	}
	if log.Timestamp != now.UnixMilli() {
		t.Fatalf("unexpected timestamp %d", log.Timestamp)
	}
	if len(log.Ingredients) != 1 {
		t.Fatalf("expected ingredient snapshot, got %+v", log.Ingredients)
	}
	if log.RecipeID != "" {
		t.Fatal("free-text logs must not reference a recipe")
	}
}

func TestWeeklyPlanMapsDaysToDates(t *testing.T) {
	t.Parallel()

	ts := chatStub(t, `[
	  {"breakfast": {"title": "Oats", "nutrition": {"calories": 350}},
	   "lunch": {"title": "Chicken Bowl", "nutrition": {"calories": 650}},
	   "dinner": {"title": "Salmon", "nutrition": {"calories": 600}},
	   "snack": {"title": "Yogurt", "nutrition": {"calories": 150}}},
	  {"breakfast": {"title": "Eggs", "nutrition": {"calories": 300}},
	   "lunch": {"title": "Wrap", "nutrition": {"calories": 550}},
	   "dinner": {"title": "Stir Fry", "nutrition": {"calories": 620}},
	   "snack": {"title": "Apple", "nutrition": {"calories": 95}}}
	]`)
	defer ts.Close()

	start := time.Date(2026, 3, 2, 0, 0, 0, 0, time.Local)
	plans, err := WeeklyPlan(context.Background(), testClient(ts), nil, nil, start)
	if err != nil {
		t.Fatalf("weekly plan: %v", err)
	}
	if len(plans) != 2 {
		t.Fatalf("expected 2 plans, got %d", len(plans))
	}
	if plans[0].Date != "2026-03-02" || plans[1].Date != "2026-03-03" {
		t.Fatalf("unexpected dates %s, %s", plans[0].Date, plans[1].Date)
	}
	if plans[0].Totals.Calories != 350+650+600+150 {
		t.Fatalf("unexpected totals %d", plans[0].Totals.Calories)
	}
	item, ok := plans[0].Slots[model.SlotLunch]
	if !ok || item.Kind != model.PlanItemCustomMeal || item.Title() != "Chicken Bowl" {
		t.Fatalf("unexpected lunch slot %+v", item)
	}
}

func TestDailyMealSwapReturnsTaggedItem(t *testing.T) {
	t.Parallel()

	ts := chatStub(t, `{"title": "Lentil Soup", "nutrition": {"calories": 420, "protein": 22}}`)
	defer ts.Close()

	plan := model.MealPlan{
		ID:   "p1",
		Date: "2026-03-02",
		Slots: map[model.MealSlot]model.PlanItem{
			model.SlotLunch: {
				Kind:       model.PlanItemCustomMeal,
				CustomMeal: &model.SavedCustomMeal{ID: "m1", Name: "Burger", Nutrition: model.Nutrition{Calories: 800}},
			},
		},
	}
	item, err := DailyMealSwap(context.Background(), testClient(ts), plan, model.SlotLunch, nil, nil)
	if err != nil {
		t.Fatalf("swap: %v", err)
	}
	if item.Kind != model.PlanItemCustomMeal || item.Title() != "Lentil Soup" {
		t.Fatalf("unexpected item %+v", item)
	}
	if item.Nutrition().Calories != 420 {
		t.Fatalf("unexpected nutrition %+v", item.Nutrition())
	}
}

func TestCoachAdviceReturnsPlainText(t *testing.T) {
	t.Parallel()

	ts := chatStub(t, "  You're close to goal, keep dinner light tonight.  ")
	defer ts.Close()

	advice, err := CoachAdvice(context.Background(), testClient(ts), nil, nil, 1400)
	if err != nil {
		t.Fatalf("coach: %v", err)
	}
	if advice != "You're close to goal, keep dinner light tonight." {
		t.Fatalf("unexpected advice %q", advice)
	}
}
