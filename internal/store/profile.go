package store

import (
	"fmt"
	"strings"

	"github.com/plateful-app/plateful-cli/internal/model"
	"github.com/plateful-app/plateful-cli/internal/nutrition"
)

// SetProfile replaces the profile wholesale. The goal type is derived
// from current vs. target weight, the avoid list is deduplicated
// case-insensitively, and daily goals are recomputed unless the user
// has pinned custom macros.
func (s *Store) SetProfile(p model.UserProfile) error {
	if p.WeightLbs <= 0 {
		return fmt.Errorf("weight must be > 0")
	}
	if p.HeightIn <= 0 {
		return fmt.Errorf("height must be > 0")
	}
	if p.Age <= 0 {
		return fmt.Errorf("age must be > 0")
	}
	if p.Gender != model.GenderMale && p.Gender != model.GenderFemale {
		return fmt.Errorf("gender must be male or female")
	}
	if !nutrition.ValidActivityLevel(p.ActivityLevel) {
		return fmt.Errorf("invalid activity level %q", p.ActivityLevel)
	}
	if p.GoalWeightLbs <= 0 {
		return fmt.Errorf("goal weight must be > 0")
	}
	if p.BodyFatPct != nil && (*p.BodyFatPct < 0 || *p.BodyFatPct > 100) {
		return fmt.Errorf("body-fat must be between 0 and 100")
	}

	p.GoalType = nutrition.GoalTypeFor(p.WeightLbs, p.GoalWeightLbs)
	p.AvoidedIngredients = dedupeFold(p.AvoidedIngredients)

	s.state.Profile = &p
	if s.state.Goals == nil || !s.state.Goals.IsCustom {
		goals := nutrition.GoalsForProfile(p)
		s.state.Goals = &goals
	}
	return s.save()
}

func (s *Store) Profile() *model.UserProfile {
	return s.state.Profile
}

func (s *Store) Goals() *model.DailyGoals {
	return s.state.Goals
}

func (s *Store) SetGoals(g model.DailyGoals) error {
	if g.Calories < 0 || g.ProteinG < 0 || g.CarbsG < 0 || g.FatG < 0 {
		return fmt.Errorf("goal values must be >= 0")
	}
	s.state.Goals = &g
	return s.save()
}

// SetCustomMacros pins user-chosen macro grams. Calories are derived
// here (4/4/9), which is the only place the calorie identity is
// enforced.
func (s *Store) SetCustomMacros(proteinG, carbsG, fatG int) error {
	if proteinG < 0 || carbsG < 0 || fatG < 0 {
		return fmt.Errorf("macro grams must be >= 0")
	}
	s.state.Goals = &model.DailyGoals{
		Calories: proteinG*4 + carbsG*4 + fatG*9,
		ProteinG: proteinG,
		CarbsG:   carbsG,
		FatG:     fatG,
		IsCustom: true,
	}
	return s.save()
}

func dedupeFold(names []string) []string {
	if len(names) == 0 {
		return nil
	}
	seen := make(map[string]bool, len(names))
	out := make([]string, 0, len(names))
	for _, n := range names {
		n = strings.TrimSpace(n)
		if n == "" {
			continue
		}
		key := strings.ToLower(n)
		if seen[key] {
			continue
		}
		seen[key] = true
		out = append(out, n)
	}
	return out
}
