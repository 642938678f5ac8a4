package store

import (
	"fmt"

	"github.com/plateful-app/plateful-cli/internal/model"
)

func (s *Store) MealPlans() []model.MealPlan {
	return s.state.MealPlans
}

// AddMealPlan appends a plan. Uniqueness per date is not enforced;
// MealPlanForDate resolves collisions by taking the first match.
func (s *Store) AddMealPlan(p model.MealPlan) error {
	if p.ID == "" {
		return fmt.Errorf("meal plan id is required")
	}
	if err := validateDate(p.Date); err != nil {
		return err
	}
	for slot, item := range p.Slots {
		if err := validatePlanItem(slot, item); err != nil {
			return err
		}
	}
	s.state.MealPlans = append(s.state.MealPlans, p)
	return s.save()
}

func (s *Store) DeleteMealPlan(id string) error {
	for i := range s.state.MealPlans {
		if s.state.MealPlans[i].ID == id {
			s.state.MealPlans = append(s.state.MealPlans[:i], s.state.MealPlans[i+1:]...)
			return s.save()
		}
	}
	return fmt.Errorf("meal plan %s not found", id)
}

func (s *Store) MealPlanForDate(date string) (model.MealPlan, bool) {
	for _, p := range s.state.MealPlans {
		if p.Date == date {
			return p, true
		}
	}
	return model.MealPlan{}, false
}

// SwapPlanSlot replaces one slot's item and reprices the plan totals.
func (s *Store) SwapPlanSlot(planID string, slot model.MealSlot, item model.PlanItem) error {
	if err := validatePlanItem(slot, item); err != nil {
		return err
	}
	for i := range s.state.MealPlans {
		if s.state.MealPlans[i].ID == planID {
			if s.state.MealPlans[i].Slots == nil {
				s.state.MealPlans[i].Slots = make(map[model.MealSlot]model.PlanItem)
			}
			s.state.MealPlans[i].Slots[slot] = item
			s.state.MealPlans[i].Totals = PlanTotals(s.state.MealPlans[i].Slots)
			return s.save()
		}
	}
	return fmt.Errorf("meal plan %s not found", planID)
}

// PlanTotals sums slot nutrition into the plan's precomputed totals.
func PlanTotals(slots map[model.MealSlot]model.PlanItem) model.Nutrition {
	var total model.Nutrition
	for _, item := range slots {
		n := item.Nutrition()
		total.Calories += n.Calories
		total.ProteinG += n.ProteinG
		total.CarbsG += n.CarbsG
		total.FatG += n.FatG
		total.FiberG += n.FiberG
	}
	return total
}

func validatePlanItem(slot model.MealSlot, item model.PlanItem) error {
	switch slot {
	case model.SlotBreakfast, model.SlotLunch, model.SlotDinner, model.SlotSnack:
	default:
		return fmt.Errorf("invalid meal slot %q", slot)
	}
	switch item.Kind {
	case model.PlanItemRecipe:
		if item.Recipe == nil {
			return fmt.Errorf("plan item tagged recipe has no recipe")
		}
	case model.PlanItemCustomMeal:
		if item.CustomMeal == nil {
			return fmt.Errorf("plan item tagged custom_meal has no meal")
		}
	default:
		return fmt.Errorf("invalid plan item kind %q", item.Kind)
	}
	return nil
}
