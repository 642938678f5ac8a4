package store

import (
	"encoding/json"
	"fmt"
)

type ImportMode string

const (
	ImportModeReplace ImportMode = "replace"
	ImportModeMerge   ImportMode = "merge"
)

// ExportState serializes the full application state for backup.
// Credentials are deliberately excluded.
func (s *Store) ExportState() ([]byte, error) {
	blob, err := json.MarshalIndent(s.state, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("encode export: %w", err)
	}
	return blob, nil
}

// ImportState loads a previously exported state. Replace swaps the
// whole state; merge appends the imported collections onto the current
// ones and only fills profile/goals when currently unset.
func (s *Store) ImportState(blob []byte, mode ImportMode) error {
	var incoming State
	if err := json.Unmarshal(blob, &incoming); err != nil {
		return fmt.Errorf("decode import: %w", err)
	}
	switch mode {
	case ImportModeReplace:
		incoming.User = s.state.User
		incoming.IsAuthenticated = s.state.IsAuthenticated
		s.state = incoming
	case ImportModeMerge:
		if s.state.Profile == nil {
			s.state.Profile = incoming.Profile
		}
		if s.state.Goals == nil {
			s.state.Goals = incoming.Goals
		}
		s.state.Recipes = append(s.state.Recipes, incoming.Recipes...)
		s.state.Folders = append(s.state.Folders, incoming.Folders...)
		s.state.MealLogs = append(s.state.MealLogs, incoming.MealLogs...)
		s.state.WeightEntries = append(s.state.WeightEntries, incoming.WeightEntries...)
		s.state.ExerciseLogs = append(s.state.ExerciseLogs, incoming.ExerciseLogs...)
		s.state.MealPlans = append(s.state.MealPlans, incoming.MealPlans...)
		s.state.SavedMeals = append(s.state.SavedMeals, incoming.SavedMeals...)
		s.state.CustomIngredients = append(s.state.CustomIngredients, incoming.CustomIngredients...)
		s.state.CustomRestaurants = append(s.state.CustomRestaurants, incoming.CustomRestaurants...)
		s.state.CustomRestaurantMeals = append(s.state.CustomRestaurantMeals, incoming.CustomRestaurantMeals...)
	default:
		return fmt.Errorf("invalid import mode %q (use replace or merge)", mode)
	}

	s.titleIndex = make(map[string]string, len(s.state.Recipes))
	for _, r := range s.state.Recipes {
		s.titleIndex[normalizeTitle(r.Title)] = r.ID
	}
	return s.save()
}
