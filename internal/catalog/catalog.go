// Package catalog holds the built-in food and restaurant reference
// tables plus lookup helpers. User-created entries are merged in at
// read time and never written back into the statics.
package catalog

import (
	"math"
	"sort"
	"strings"

	"github.com/plateful-app/plateful-cli/internal/model"
)

type FoodItem struct {
	Name            string  `json:"name"`
	Category        string  `json:"category"`
	CaloriesPer100g float64 `json:"calories_per_100g"`
	ProteinPer100g  float64 `json:"protein_per_100g"`
	CarbsPer100g    float64 `json:"carbs_per_100g"`
	FatPer100g      float64 `json:"fat_per_100g"`
	DefaultServingG float64 `json:"default_serving_g"`
	IsCustom        bool    `json:"is_custom,omitempty"`
}

type RestaurantMeal struct {
	Name      string          `json:"name"`
	Nutrition model.Nutrition `json:"nutrition"`
}

type Restaurant struct {
	Name     string           `json:"name"`
	Meals    []RestaurantMeal `json:"meals"`
	IsCustom bool             `json:"is_custom,omitempty"`
}

// Categories lists the distinct categories across items, sorted.
func Categories(items []FoodItem) []string {
	seen := make(map[string]bool)
	out := make([]string, 0)
	for _, item := range items {
		if !seen[item.Category] {
			seen[item.Category] = true
			out = append(out, item.Category)
		}
	}
	sort.Strings(out)
	return out
}

func ByCategory(items []FoodItem, category string) []FoodItem {
	category = strings.ToLower(strings.TrimSpace(category))
	out := make([]FoodItem, 0)
	for _, item := range items {
		if strings.ToLower(item.Category) == category {
			out = append(out, item)
		}
	}
	return out
}

// Search matches case-insensitive substrings of the item name.
func Search(items []FoodItem, query string) []FoodItem {
	query = strings.ToLower(strings.TrimSpace(query))
	if query == "" {
		return nil
	}
	out := make([]FoodItem, 0)
	for _, item := range items {
		if strings.Contains(strings.ToLower(item.Name), query) {
			out = append(out, item)
		}
	}
	return out
}

// Nutrition scales an item's per-100g data to its default serving size
// times the serving count. Each field is rounded independently.
func Nutrition(item FoodItem, servings float64) model.Nutrition {
	scale := item.DefaultServingG / 100 * servings
	return model.Nutrition{
		Calories: int(math.Round(item.CaloriesPer100g * scale)),
		ProteinG: int(math.Round(item.ProteinPer100g * scale)),
		CarbsG:   int(math.Round(item.CarbsPer100g * scale)),
		FatG:     int(math.Round(item.FatPer100g * scale)),
	}
}

// MergeIngredients concatenates custom ingredients onto the static
// table. The static slice is copied, never appended to.
func MergeIngredients(custom []model.CustomIngredient) []FoodItem {
	out := make([]FoodItem, 0, len(Ingredients)+len(custom))
	out = append(out, Ingredients...)
	for _, c := range custom {
		out = append(out, FoodItem{
			Name:            c.Name,
			Category:        c.Category,
			CaloriesPer100g: c.CaloriesPer100g,
			ProteinPer100g:  c.ProteinPer100g,
			CarbsPer100g:    c.CarbsPer100g,
			FatPer100g:      c.FatPer100g,
			DefaultServingG: c.DefaultServingG,
			IsCustom:        true,
		})
	}
	return out
}

// MergeRestaurants concatenates custom restaurants (and their meals)
// onto the static table.
func MergeRestaurants(custom []model.CustomRestaurant, customMeals []model.CustomRestaurantMeal) []Restaurant {
	out := make([]Restaurant, 0, len(Restaurants)+len(custom))
	out = append(out, Restaurants...)
	for _, c := range custom {
		r := Restaurant{Name: c.Name, IsCustom: true}
		for _, m := range customMeals {
			if m.RestaurantID == c.ID {
				r.Meals = append(r.Meals, RestaurantMeal{Name: m.Name, Nutrition: m.Nutrition})
			}
		}
		out = append(out, r)
	}
	return out
}
