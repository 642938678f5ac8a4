// Package store owns the application state. Every other component
// reads and writes through it: mutations are single synchronous state
// transitions, and the whole state is serialized back to storage after
// each one (hydrate on open, serialize on write).
package store

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/plateful-app/plateful-cli/internal/model"
	"github.com/plateful-app/plateful-cli/internal/storage"
)

// State is the serialized shape of everything the app tracks. It owns
// every entity collection; screens and commands hold no copies.
type State struct {
	Profile               *model.UserProfile           `json:"profile,omitempty"`
	Goals                 *model.DailyGoals            `json:"goals,omitempty"`
	Recipes               []model.Recipe               `json:"recipes"`
	Folders               []model.Folder               `json:"folders"`
	MealLogs              []model.MealLog              `json:"meal_logs"`
	WeightEntries         []model.WeightEntry          `json:"weight_entries"`
	ExerciseLogs          []model.ExerciseLog          `json:"exercise_logs"`
	MealPlans             []model.MealPlan             `json:"meal_plans"`
	SavedMeals            []model.SavedCustomMeal      `json:"saved_meals"`
	CustomIngredients     []model.CustomIngredient     `json:"custom_ingredients"`
	CustomRestaurants     []model.CustomRestaurant     `json:"custom_restaurants"`
	CustomRestaurantMeals []model.CustomRestaurantMeal `json:"custom_restaurant_meals"`
	CoachAdvice           string                       `json:"coach_advice,omitempty"`
	CoachAdviceAt         int64                        `json:"coach_advice_at,omitempty"`
	User                  *model.User                  `json:"user,omitempty"`
	IsAuthenticated       bool                         `json:"is_authenticated"`
}

type Store struct {
	kv    *storage.KV
	state State
	// titleIndex maps normalized recipe titles to recipe ids for O(1)
	// duplicate detection.
	titleIndex map[string]string
}

func Open(path string) (*Store, error) {
	kv, err := storage.Open(path)
	if err != nil {
		return nil, err
	}
	s := &Store{kv: kv}
	if err := s.hydrate(); err != nil {
		kv.Close()
		return nil, err
	}
	return s, nil
}

func (s *Store) Close() error {
	return s.kv.Close()
}

func (s *Store) hydrate() error {
	blob, ok, err := s.kv.Get(storage.StateKey)
	if err != nil {
		return err
	}
	if ok {
		if err := json.Unmarshal(blob, &s.state); err != nil {
			return fmt.Errorf("decode persisted state: %w", err)
		}
	}
	s.titleIndex = make(map[string]string, len(s.state.Recipes))
	for _, r := range s.state.Recipes {
		s.titleIndex[normalizeTitle(r.Title)] = r.ID
	}
	return nil
}

func (s *Store) save() error {
	blob, err := json.Marshal(s.state)
	if err != nil {
		return fmt.Errorf("encode state: %w", err)
	}
	return s.kv.Set(storage.StateKey, blob)
}

func NewID() string {
	return uuid.NewString()
}

func normalizeTitle(title string) string {
	return strings.TrimSpace(strings.ToLower(title))
}

// DateOf formats t as the local-time day key used across all logs.
func DateOf(t time.Time) string {
	return t.Format("2006-01-02")
}

func validateDate(date string) error {
	if _, err := time.Parse("2006-01-02", date); err != nil {
		return fmt.Errorf("invalid date %q (expected YYYY-MM-DD)", date)
	}
	return nil
}
