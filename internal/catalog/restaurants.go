package catalog

import "github.com/plateful-app/plateful-cli/internal/model"

// Restaurants is the built-in restaurant meal table. Nutrition is
// fixed per meal, not per 100g.
var Restaurants = []Restaurant{
	{
		Name: "Chipotle",
		Meals: []RestaurantMeal{
			{Name: "Chicken Burrito Bowl", Nutrition: model.Nutrition{Calories: 665, ProteinG: 49, CarbsG: 63, FatG: 23, FiberG: 10}},
			{Name: "Steak Tacos (3)", Nutrition: model.Nutrition{Calories: 560, ProteinG: 33, CarbsG: 53, FatG: 23, FiberG: 6}},
			{Name: "Veggie Salad Bowl", Nutrition: model.Nutrition{Calories: 505, ProteinG: 14, CarbsG: 54, FatG: 26, FiberG: 13}},
		},
	},
	{
		Name: "Subway",
		Meals: []RestaurantMeal{
			{Name: "6in Turkey Breast", Nutrition: model.Nutrition{Calories: 280, ProteinG: 18, CarbsG: 46, FatG: 4, FiberG: 5}},
			{Name: "6in Meatball Marinara", Nutrition: model.Nutrition{Calories: 430, ProteinG: 20, CarbsG: 53, FatG: 16, FiberG: 6}},
			{Name: "Footlong Veggie Delite", Nutrition: model.Nutrition{Calories: 460, ProteinG: 16, CarbsG: 88, FatG: 5, FiberG: 10}},
		},
	},
	{
		Name: "McDonald's",
		Meals: []RestaurantMeal{
			{Name: "Big Mac", Nutrition: model.Nutrition{Calories: 590, ProteinG: 25, CarbsG: 46, FatG: 34, FiberG: 3}},
			{Name: "10pc McNuggets", Nutrition: model.Nutrition{Calories: 410, ProteinG: 23, CarbsG: 26, FatG: 24, FiberG: 1}},
			{Name: "Egg McMuffin", Nutrition: model.Nutrition{Calories: 310, ProteinG: 17, CarbsG: 30, FatG: 13, FiberG: 2}},
		},
	},
	{
		Name: "Panera",
		Meals: []RestaurantMeal{
			{Name: "Caesar Salad with Chicken", Nutrition: model.Nutrition{Calories: 440, ProteinG: 31, CarbsG: 19, FatG: 27, FiberG: 3}},
			{Name: "Broccoli Cheddar Soup (bowl)", Nutrition: model.Nutrition{Calories: 360, ProteinG: 14, CarbsG: 25, FatG: 23, FiberG: 3}},
			{Name: "Turkey Sandwich", Nutrition: model.Nutrition{Calories: 560, ProteinG: 33, CarbsG: 62, FatG: 19, FiberG: 4}},
		},
	},
	{
		Name: "Sweetgreen",
		Meals: []RestaurantMeal{
			{Name: "Harvest Bowl", Nutrition: model.Nutrition{Calories: 705, ProteinG: 29, CarbsG: 78, FatG: 32, FiberG: 10}},
			{Name: "Kale Caesar", Nutrition: model.Nutrition{Calories: 470, ProteinG: 31, CarbsG: 24, FatG: 29, FiberG: 5}},
		},
	},
}
