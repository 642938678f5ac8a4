package store

import (
	"fmt"
	"math"
	"strings"

	"github.com/plateful-app/plateful-cli/internal/model"
)

func (s *Store) Recipes() []model.Recipe {
	return s.state.Recipes
}

func (s *Store) RecipeByID(id string) (model.Recipe, bool) {
	for _, r := range s.state.Recipes {
		if r.ID == id {
			return r, true
		}
	}
	return model.Recipe{}, false
}

func (s *Store) AddRecipe(r model.Recipe) error {
	if err := validateRecipe(r); err != nil {
		return err
	}
	s.state.Recipes = append(s.state.Recipes, r)
	s.titleIndex[normalizeTitle(r.Title)] = r.ID
	return s.save()
}

func (s *Store) UpdateRecipe(r model.Recipe) error {
	if err := validateRecipe(r); err != nil {
		return err
	}
	for i := range s.state.Recipes {
		if s.state.Recipes[i].ID == r.ID {
			oldNorm := normalizeTitle(s.state.Recipes[i].Title)
			s.state.Recipes[i] = r
			s.titleIndex[normalizeTitle(r.Title)] = r.ID
			if oldNorm != normalizeTitle(r.Title) {
				s.reindexTitle(oldNorm)
			}
			return s.save()
		}
	}
	return fmt.Errorf("recipe %s not found", r.ID)
}

func (s *Store) DeleteRecipe(id string) error {
	for i := range s.state.Recipes {
		if s.state.Recipes[i].ID == id {
			norm := normalizeTitle(s.state.Recipes[i].Title)
			s.state.Recipes = append(s.state.Recipes[:i], s.state.Recipes[i+1:]...)
			s.reindexTitle(norm)
			return s.save()
		}
	}
	return fmt.Errorf("recipe %s not found", id)
}

// reindexTitle repoints the duplicate index at any remaining recipe
// with the given normalized title, or clears the entry. Titles are not
// unique (forced adds, retitles), so removing one holder must not
// forget the others.
func (s *Store) reindexTitle(norm string) {
	for _, r := range s.state.Recipes {
		if normalizeTitle(r.Title) == norm {
			s.titleIndex[norm] = r.ID
			return
		}
	}
	delete(s.titleIndex, norm)
}

// RateRecipe sets a 0–5 rating in half-star steps.
func (s *Store) RateRecipe(id string, rating float64) error {
	if rating < 0 || rating > 5 || math.Mod(rating*2, 1) != 0 {
		return fmt.Errorf("rating must be between 0 and 5 in 0.5 steps")
	}
	for i := range s.state.Recipes {
		if s.state.Recipes[i].ID == id {
			s.state.Recipes[i].Rating = rating
			return s.save()
		}
	}
	return fmt.Errorf("recipe %s not found", id)
}

// FindDuplicateRecipe reports an existing recipe whose title matches
// after trimming and case folding. "Tacos " duplicates "tacos";
// "Fish Tacos" does not.
func (s *Store) FindDuplicateRecipe(title string) (model.Recipe, bool) {
	id, ok := s.titleIndex[normalizeTitle(title)]
	if !ok {
		return model.Recipe{}, false
	}
	return s.RecipeByID(id)
}

func (s *Store) RecipesInFolder(folderID string) []model.Recipe {
	out := make([]model.Recipe, 0)
	for _, r := range s.state.Recipes {
		if r.FolderID == folderID {
			out = append(out, r)
		}
	}
	return out
}

func validateRecipe(r model.Recipe) error {
	if r.ID == "" {
		return fmt.Errorf("recipe id is required")
	}
	if strings.TrimSpace(r.Title) == "" {
		return fmt.Errorf("recipe title is required")
	}
	if r.Servings <= 0 {
		return fmt.Errorf("servings must be > 0")
	}
	return nil
}
