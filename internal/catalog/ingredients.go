package catalog

// Ingredients is the built-in per-100g reference table.
var Ingredients = []FoodItem{
	{Name: "Chicken Breast", Category: "protein", CaloriesPer100g: 165, ProteinPer100g: 31, CarbsPer100g: 0, FatPer100g: 3.6, DefaultServingG: 140},
	{Name: "Chicken Thigh", Category: "protein", CaloriesPer100g: 209, ProteinPer100g: 26, CarbsPer100g: 0, FatPer100g: 10.9, DefaultServingG: 130},
	{Name: "Ground Beef 85/15", Category: "protein", CaloriesPer100g: 250, ProteinPer100g: 26, CarbsPer100g: 0, FatPer100g: 15, DefaultServingG: 110},
	{Name: "Salmon", Category: "protein", CaloriesPer100g: 208, ProteinPer100g: 20, CarbsPer100g: 0, FatPer100g: 13, DefaultServingG: 150},
	{Name: "Tuna (canned)", Category: "protein", CaloriesPer100g: 116, ProteinPer100g: 26, CarbsPer100g: 0, FatPer100g: 0.8, DefaultServingG: 85},
	{Name: "Egg", Category: "protein", CaloriesPer100g: 155, ProteinPer100g: 13, CarbsPer100g: 1.1, FatPer100g: 11, DefaultServingG: 50},
	{Name: "Tofu (firm)", Category: "protein", CaloriesPer100g: 76, ProteinPer100g: 8, CarbsPer100g: 1.9, FatPer100g: 4.8, DefaultServingG: 120},
	{Name: "Greek Yogurt (plain)", Category: "dairy", CaloriesPer100g: 59, ProteinPer100g: 10, CarbsPer100g: 3.6, FatPer100g: 0.4, DefaultServingG: 170},
	{Name: "Cheddar Cheese", Category: "dairy", CaloriesPer100g: 403, ProteinPer100g: 25, CarbsPer100g: 1.3, FatPer100g: 33, DefaultServingG: 28},
	{Name: "Whole Milk", Category: "dairy", CaloriesPer100g: 61, ProteinPer100g: 3.2, CarbsPer100g: 4.8, FatPer100g: 3.3, DefaultServingG: 240},
	{Name: "White Rice (cooked)", Category: "grain", CaloriesPer100g: 130, ProteinPer100g: 2.7, CarbsPer100g: 28, FatPer100g: 0.3, DefaultServingG: 160},
	{Name: "Brown Rice (cooked)", Category: "grain", CaloriesPer100g: 112, ProteinPer100g: 2.3, CarbsPer100g: 24, FatPer100g: 0.8, DefaultServingG: 160},
	{Name: "Oats (dry)", Category: "grain", CaloriesPer100g: 389, ProteinPer100g: 17, CarbsPer100g: 66, FatPer100g: 6.9, DefaultServingG: 40},
	{Name: "Pasta (cooked)", Category: "grain", CaloriesPer100g: 131, ProteinPer100g: 5, CarbsPer100g: 25, FatPer100g: 1.1, DefaultServingG: 140},
	{Name: "Whole Wheat Bread", Category: "grain", CaloriesPer100g: 247, ProteinPer100g: 13, CarbsPer100g: 41, FatPer100g: 3.4, DefaultServingG: 32},
	{Name: "Quinoa (cooked)", Category: "grain", CaloriesPer100g: 120, ProteinPer100g: 4.4, CarbsPer100g: 21, FatPer100g: 1.9, DefaultServingG: 140},
	{Name: "Sweet Potato", Category: "vegetable", CaloriesPer100g: 86, ProteinPer100g: 1.6, CarbsPer100g: 20, FatPer100g: 0.1, DefaultServingG: 150},
	{Name: "Broccoli", Category: "vegetable", CaloriesPer100g: 34, ProteinPer100g: 2.8, CarbsPer100g: 7, FatPer100g: 0.4, DefaultServingG: 90},
	{Name: "Spinach", Category: "vegetable", CaloriesPer100g: 23, ProteinPer100g: 2.9, CarbsPer100g: 3.6, FatPer100g: 0.4, DefaultServingG: 60},
	{Name: "Carrot", Category: "vegetable", CaloriesPer100g: 41, ProteinPer100g: 0.9, CarbsPer100g: 10, FatPer100g: 0.2, DefaultServingG: 80},
	{Name: "Bell Pepper", Category: "vegetable", CaloriesPer100g: 31, ProteinPer100g: 1, CarbsPer100g: 6, FatPer100g: 0.3, DefaultServingG: 120},
	{Name: "Banana", Category: "fruit", CaloriesPer100g: 89, ProteinPer100g: 1.1, CarbsPer100g: 23, FatPer100g: 0.3, DefaultServingG: 118},
	{Name: "Apple", Category: "fruit", CaloriesPer100g: 52, ProteinPer100g: 0.3, CarbsPer100g: 14, FatPer100g: 0.2, DefaultServingG: 180},
	{Name: "Blueberries", Category: "fruit", CaloriesPer100g: 57, ProteinPer100g: 0.7, CarbsPer100g: 14, FatPer100g: 0.3, DefaultServingG: 140},
	{Name: "Avocado", Category: "fruit", CaloriesPer100g: 160, ProteinPer100g: 2, CarbsPer100g: 9, FatPer100g: 15, DefaultServingG: 100},
	{Name: "Olive Oil", Category: "fat", CaloriesPer100g: 884, ProteinPer100g: 0, CarbsPer100g: 0, FatPer100g: 100, DefaultServingG: 14},
	{Name: "Butter", Category: "fat", CaloriesPer100g: 717, ProteinPer100g: 0.9, CarbsPer100g: 0.1, FatPer100g: 81, DefaultServingG: 14},
	{Name: "Peanut Butter", Category: "fat", CaloriesPer100g: 588, ProteinPer100g: 25, CarbsPer100g: 20, FatPer100g: 50, DefaultServingG: 32},
	{Name: "Almonds", Category: "fat", CaloriesPer100g: 579, ProteinPer100g: 21, CarbsPer100g: 22, FatPer100g: 50, DefaultServingG: 28},
	{Name: "Black Beans (cooked)", Category: "legume", CaloriesPer100g: 132, ProteinPer100g: 8.9, CarbsPer100g: 24, FatPer100g: 0.5, DefaultServingG: 130},
	{Name: "Chickpeas (cooked)", Category: "legume", CaloriesPer100g: 164, ProteinPer100g: 8.9, CarbsPer100g: 27, FatPer100g: 2.6, DefaultServingG: 130},
	{Name: "Lentils (cooked)", Category: "legume", CaloriesPer100g: 116, ProteinPer100g: 9, CarbsPer100g: 20, FatPer100g: 0.4, DefaultServingG: 130},
}
