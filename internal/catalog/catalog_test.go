package catalog_test

import (
	"testing"

	"github.com/plateful-app/plateful-cli/internal/catalog"
	"github.com/plateful-app/plateful-cli/internal/model"
)

func TestNutritionScalesPerServing(t *testing.T) {
	t.Parallel()

	item := catalog.FoodItem{
		Name:            "Chicken Breast",
		CaloriesPer100g: 165,
		ProteinPer100g:  31,
		DefaultServingG: 140,
	}
	// round(165 * 1.4 * 2) = 462
	got := catalog.Nutrition(item, 2)
	if got.Calories != 462 {
		t.Fatalf("expected 462 kcal, got %d", got.Calories)
	}
	// round(31 * 1.4 * 2) = round(86.8) = 87
	if got.ProteinG != 87 {
		t.Fatalf("expected 87g protein, got %d", got.ProteinG)
	}
}

func TestSearchIsCaseInsensitiveSubstring(t *testing.T) {
	t.Parallel()

	hits := catalog.Search(catalog.Ingredients, "chick")
	if len(hits) < 2 {
		t.Fatalf("expected chicken items, got %d", len(hits))
	}
	for _, h := range hits {
		if h.Name != "Chicken Breast" && h.Name != "Chicken Thigh" && h.Name != "Chickpeas (cooked)" {
			t.Fatalf("unexpected hit %q", h.Name)
		}
	}
	if got := catalog.Search(catalog.Ingredients, "   "); got != nil {
		t.Fatalf("blank query must return nothing, got %v", got)
	}
}

func TestByCategoryAndCategories(t *testing.T) {
	t.Parallel()

	grains := catalog.ByCategory(catalog.Ingredients, "GRAIN")
	if len(grains) == 0 {
		t.Fatal("expected grain items")
	}
	for _, g := range grains {
		if g.Category != "grain" {
			t.Fatalf("wrong category %q", g.Category)
		}
	}

	cats := catalog.Categories(catalog.Ingredients)
	seen := make(map[string]bool)
	for _, c := range cats {
		if seen[c] {
			t.Fatalf("duplicate category %q", c)
		}
		seen[c] = true
	}
	if !seen["protein"] || !seen["vegetable"] {
		t.Fatalf("missing expected categories in %v", cats)
	}
}

func TestMergeKeepsStaticsUntouched(t *testing.T) {
	t.Parallel()

	staticLen := len(catalog.Ingredients)
	custom := []model.CustomIngredient{{
		ID:              "ci1",
		Name:            "Protein Waffle",
		Category:        "grain",
		CaloriesPer100g: 250,
		DefaultServingG: 75,
	}}
	merged := catalog.MergeIngredients(custom)
	if len(merged) != staticLen+1 {
		t.Fatalf("expected %d merged items, got %d", staticLen+1, len(merged))
	}
	if !merged[len(merged)-1].IsCustom {
		t.Fatal("custom entry must be flagged")
	}
	if len(catalog.Ingredients) != staticLen {
		t.Fatal("merge must not mutate the static table")
	}

	restaurants := catalog.MergeRestaurants(
		[]model.CustomRestaurant{{ID: "r1", Name: "Corner Deli"}},
		[]model.CustomRestaurantMeal{{ID: "m1", RestaurantID: "r1", Name: "Club Sandwich", Nutrition: model.Nutrition{Calories: 520}}},
	)
	last := restaurants[len(restaurants)-1]
	if last.Name != "Corner Deli" || len(last.Meals) != 1 || !last.IsCustom {
		t.Fatalf("unexpected merged restaurant %+v", last)
	}
}
