package store

import (
	"fmt"
	"strings"

	"github.com/plateful-app/plateful-cli/internal/model"
)

func (s *Store) SavedMeals() []model.SavedCustomMeal {
	return s.state.SavedMeals
}

func (s *Store) AddSavedMeal(m model.SavedCustomMeal) error {
	if m.ID == "" {
		return fmt.Errorf("saved meal id is required")
	}
	if strings.TrimSpace(m.Name) == "" {
		return fmt.Errorf("saved meal name is required")
	}
	s.state.SavedMeals = append(s.state.SavedMeals, m)
	return s.save()
}

func (s *Store) DeleteSavedMeal(id string) error {
	for i := range s.state.SavedMeals {
		if s.state.SavedMeals[i].ID == id {
			s.state.SavedMeals = append(s.state.SavedMeals[:i], s.state.SavedMeals[i+1:]...)
			return s.save()
		}
	}
	return fmt.Errorf("saved meal %s not found", id)
}

func (s *Store) CustomIngredients() []model.CustomIngredient {
	return s.state.CustomIngredients
}

func (s *Store) AddCustomIngredient(ing model.CustomIngredient) error {
	if ing.ID == "" {
		return fmt.Errorf("ingredient id is required")
	}
	if strings.TrimSpace(ing.Name) == "" {
		return fmt.Errorf("ingredient name is required")
	}
	if ing.CaloriesPer100g < 0 || ing.ProteinPer100g < 0 || ing.CarbsPer100g < 0 || ing.FatPer100g < 0 {
		return fmt.Errorf("nutrition values must be >= 0")
	}
	if ing.DefaultServingG <= 0 {
		return fmt.Errorf("default serving grams must be > 0")
	}
	s.state.CustomIngredients = append(s.state.CustomIngredients, ing)
	return s.save()
}

func (s *Store) DeleteCustomIngredient(id string) error {
	for i := range s.state.CustomIngredients {
		if s.state.CustomIngredients[i].ID == id {
			s.state.CustomIngredients = append(s.state.CustomIngredients[:i], s.state.CustomIngredients[i+1:]...)
			return s.save()
		}
	}
	return fmt.Errorf("custom ingredient %s not found", id)
}

func (s *Store) CustomRestaurants() []model.CustomRestaurant {
	return s.state.CustomRestaurants
}

func (s *Store) AddCustomRestaurant(r model.CustomRestaurant) error {
	if r.ID == "" {
		return fmt.Errorf("restaurant id is required")
	}
	if strings.TrimSpace(r.Name) == "" {
		return fmt.Errorf("restaurant name is required")
	}
	s.state.CustomRestaurants = append(s.state.CustomRestaurants, r)
	return s.save()
}

func (s *Store) CustomRestaurantMeals() []model.CustomRestaurantMeal {
	return s.state.CustomRestaurantMeals
}

func (s *Store) AddCustomRestaurantMeal(m model.CustomRestaurantMeal) error {
	if m.ID == "" {
		return fmt.Errorf("restaurant meal id is required")
	}
	if strings.TrimSpace(m.Name) == "" {
		return fmt.Errorf("restaurant meal name is required")
	}
	if m.RestaurantID != "" {
		found := false
		for _, r := range s.state.CustomRestaurants {
			if r.ID == m.RestaurantID {
				found = true
				break
			}
		}
		if !found {
			return fmt.Errorf("restaurant %s not found", m.RestaurantID)
		}
	}
	s.state.CustomRestaurantMeals = append(s.state.CustomRestaurantMeals, m)
	return s.save()
}

// CoachAdvice returns the cached advice text and when it was stored.
func (s *Store) CoachAdvice() (string, int64) {
	return s.state.CoachAdvice, s.state.CoachAdviceAt
}

func (s *Store) SetCoachAdvice(advice string, at int64) error {
	s.state.CoachAdvice = advice
	s.state.CoachAdviceAt = at
	return s.save()
}
