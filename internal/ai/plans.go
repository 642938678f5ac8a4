package ai

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/plateful-app/plateful-cli/internal/model"
)

type planMealPayload struct {
	Title     string           `json:"title"`
	Nutrition nutritionPayload `json:"nutrition"`
}

type planDayPayload struct {
	Breakfast planMealPayload `json:"breakfast"`
	Lunch     planMealPayload `json:"lunch"`
	Dinner    planMealPayload `json:"dinner"`
	Snack     planMealPayload `json:"snack"`
}

func (d planDayPayload) toPlan(date string) model.MealPlan {
	slots := make(map[model.MealSlot]model.PlanItem, 4)
	add := func(slot model.MealSlot, meal planMealPayload) {
		if strings.TrimSpace(meal.Title) == "" {
			return
		}
		slots[slot] = model.PlanItem{
			Kind: model.PlanItemCustomMeal,
			CustomMeal: &model.SavedCustomMeal{
				ID:        uuid.NewString(),
				Name:      strings.TrimSpace(meal.Title),
				Nutrition: meal.Nutrition.toModel(),
				CreatedAt: time.Now().UnixMilli(),
			},
		}
	}
	add(model.SlotBreakfast, d.Breakfast)
	add(model.SlotLunch, d.Lunch)
	add(model.SlotDinner, d.Dinner)
	add(model.SlotSnack, d.Snack)

	plan := model.MealPlan{ID: uuid.NewString(), Date: date, Slots: slots}
	for _, item := range slots {
		n := item.Nutrition()
		plan.Totals.Calories += n.Calories
		plan.Totals.ProteinG += n.ProteinG
		plan.Totals.CarbsG += n.CarbsG
		plan.Totals.FatG += n.FatG
		plan.Totals.FiberG += n.FiberG
	}
	return plan
}

const planSchemaHint = `Each meal is {"title": string, "nutrition": {"calories": number, "protein": number, "carbs": number, "fat": number, "fiber": number}}.`

func goalClause(profile *model.UserProfile, goals *model.DailyGoals) string {
	var sb strings.Builder
	if profile != nil {
		fmt.Fprintf(&sb, " The eater weighs %.0f lbs and wants to %s weight.", profile.WeightLbs, profile.GoalType)
	}
	if goals != nil {
		fmt.Fprintf(&sb, " Target %d kcal/day with %dg protein, %dg carbs, %dg fat.", goals.Calories, goals.ProteinG, goals.CarbsG, goals.FatG)
	}
	return sb.String()
}

// WeeklyPlan generates seven daily meal plans starting at start.
func WeeklyPlan(ctx context.Context, c *Client, profile *model.UserProfile, goals *model.DailyGoals, start time.Time) ([]model.MealPlan, error) {
	prompt := fmt.Sprintf(
		`Plan 7 days of meals (breakfast, lunch, dinner, snack).%s%s
Reply with a single JSON array of 7 objects, one per day, each:
{"breakfast": meal, "lunch": meal, "dinner": meal, "snack": meal}. %s`,
		goalClause(profile, goals), avoidanceClause(profile), planSchemaHint)

	content, err := c.Chat(ctx, []Message{{Role: "user", Content: prompt}}, 2400, nil)
	if err != nil {
		return nil, err
	}
	raw, err := ExtractJSON(content)
	if err != nil {
		return nil, err
	}
	var days []planDayPayload
	if err := json.Unmarshal([]byte(raw), &days); err != nil {
		return nil, fmt.Errorf("decode weekly plan payload: %w", err)
	}
	if len(days) == 0 {
		return nil, fmt.Errorf("weekly plan payload is empty")
	}

	plans := make([]model.MealPlan, 0, len(days))
	for i, day := range days {
		date := start.AddDate(0, 0, i).Format("2006-01-02")
		plans = append(plans, day.toPlan(date))
	}
	return plans, nil
}

// DailyMealSwap proposes a replacement for one slot of an existing
// plan, keeping the day's remaining meals in mind.
func DailyMealSwap(ctx context.Context, c *Client, plan model.MealPlan, slot model.MealSlot, profile *model.UserProfile, goals *model.DailyGoals) (model.PlanItem, error) {
	var others []string
	for s, item := range plan.Slots {
		if s != slot {
			others = append(others, fmt.Sprintf("%s: %s (%d kcal)", s, item.Title(), item.Nutrition().Calories))
		}
	}
	current := "nothing planned"
	if item, ok := plan.Slots[slot]; ok {
		current = fmt.Sprintf("%s (%d kcal)", item.Title(), item.Nutrition().Calories)
	}
	prompt := fmt.Sprintf(
		`Suggest a different %s to replace %s on %s.%s%s
The rest of the day is: %s.
Reply with a single JSON object: %s`,
		slot, current, plan.Date, goalClause(profile, goals), avoidanceClause(profile),
		strings.Join(others, "; "), planSchemaHint)

	content, err := c.Chat(ctx, []Message{{Role: "user", Content: prompt}}, 400, nil)
	if err != nil {
		return model.PlanItem{}, err
	}
	raw, err := ExtractJSON(content)
	if err != nil {
		return model.PlanItem{}, err
	}
	var meal planMealPayload
	if err := json.Unmarshal([]byte(raw), &meal); err != nil {
		return model.PlanItem{}, fmt.Errorf("decode swap payload: %w", err)
	}
	if strings.TrimSpace(meal.Title) == "" {
		return model.PlanItem{}, fmt.Errorf("swap payload has no title")
	}
	return model.PlanItem{
		Kind: model.PlanItemCustomMeal,
		CustomMeal: &model.SavedCustomMeal{
			ID:        uuid.NewString(),
			Name:      strings.TrimSpace(meal.Title),
			Nutrition: meal.Nutrition.toModel(),
			CreatedAt: time.Now().UnixMilli(),
		},
	}, nil
}
