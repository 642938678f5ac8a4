package plateful

import (
	"fmt"
	"strings"

	"github.com/plateful-app/plateful-cli/internal/catalog"
	"github.com/plateful-app/plateful-cli/internal/model"
	"github.com/plateful-app/plateful-cli/internal/store"
	"github.com/spf13/cobra"
)

var foodCmd = &cobra.Command{
	Use:   "food",
	Short: "Browse the ingredient catalog",
}

var (
	foodCategory       string
	foodCustomCategory string
	foodServings       float64
	foodCal100   float64
	foodPro100   float64
	foodCarb100  float64
	foodFat100   float64
	foodServingG float64
)

func mergedFoods(s *store.Store) []catalog.FoodItem {
	return catalog.MergeIngredients(s.CustomIngredients())
}

var foodCategoriesCmd = &cobra.Command{
	Use:   "categories",
	Short: "List ingredient categories",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withStore(func(s *store.Store) error {
			for _, c := range catalog.Categories(mergedFoods(s)) {
				fmt.Fprintln(cmd.OutOrStdout(), c)
			}
			return nil
		})
	},
}

var foodSearchCmd = &cobra.Command{
	Use:   "search <query>",
	Short: "Search ingredients by name",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return withStore(func(s *store.Store) error {
			items := mergedFoods(s)
			if foodCategory != "" {
				items = catalog.ByCategory(items, foodCategory)
			}
			matches := catalog.Search(items, args[0])
			if len(matches) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "No matches")
				return nil
			}
			for _, item := range matches {
				tag := ""
				if item.IsCustom {
					tag = "  (custom)"
				}
				fmt.Fprintf(cmd.OutOrStdout(), "%-28s %-12s %.0f kcal/100g%s\n",
					item.Name, item.Category, item.CaloriesPer100g, tag)
			}
			return nil
		})
	},
}

var foodInfoCmd = &cobra.Command{
	Use:   "info <name>",
	Short: "Show scaled nutrition for an ingredient",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return withStore(func(s *store.Store) error {
			var found *catalog.FoodItem
			for _, item := range mergedFoods(s) {
				if strings.EqualFold(item.Name, args[0]) {
					f := item
					found = &f
					break
				}
			}
			if found == nil {
				return fmt.Errorf("no ingredient named %q", args[0])
			}
			n := catalog.Nutrition(*found, foodServings)
			fmt.Fprintf(cmd.OutOrStdout(), "%s, %.1f serving(s) of %.0fg:\n", found.Name, foodServings, found.DefaultServingG)
			fmt.Fprintf(cmd.OutOrStdout(), "%d kcal, %dg protein, %dg carbs, %dg fat\n",
				n.Calories, n.ProteinG, n.CarbsG, n.FatG)
			return nil
		})
	},
}

var foodCustomCmd = &cobra.Command{
	Use:   "custom <name>",
	Short: "Add a custom ingredient (values per 100g)",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return withStore(func(s *store.Store) error {
			ing := model.CustomIngredient{
				ID:              store.NewID(),
				Name:            args[0],
				Category:        foodCustomCategory,
				CaloriesPer100g: foodCal100,
				ProteinPer100g:  foodPro100,
				CarbsPer100g:    foodCarb100,
				FatPer100g:      foodFat100,
				DefaultServingG: foodServingG,
			}
			if err := s.AddCustomIngredient(ing); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Added %q (%s)\n", ing.Name, ing.ID)
			return nil
		})
	},
}

var foodDeleteCmd = &cobra.Command{
	Use:   "delete <id>",
	Short: "Delete a custom ingredient",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return withStore(func(s *store.Store) error {
			if err := s.DeleteCustomIngredient(args[0]); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "Deleted")
			return nil
		})
	},
}

func init() {
	rootCmd.AddCommand(foodCmd)
	foodCmd.AddCommand(foodCategoriesCmd, foodSearchCmd, foodInfoCmd, foodCustomCmd, foodDeleteCmd)

	foodSearchCmd.Flags().StringVar(&foodCategory, "category", "", "Restrict to one category")
	foodInfoCmd.Flags().Float64Var(&foodServings, "servings", 1, "Number of default servings")
	foodCustomCmd.Flags().StringVar(&foodCustomCategory, "category", "other", "Category")
	foodCustomCmd.Flags().Float64Var(&foodCal100, "calories", 0, "Calories per 100g")
	foodCustomCmd.Flags().Float64Var(&foodPro100, "protein", 0, "Protein grams per 100g")
	foodCustomCmd.Flags().Float64Var(&foodCarb100, "carbs", 0, "Carb grams per 100g")
	foodCustomCmd.Flags().Float64Var(&foodFat100, "fat", 0, "Fat grams per 100g")
	foodCustomCmd.Flags().Float64Var(&foodServingG, "serving", 100, "Default serving size in grams")
	_ = foodCustomCmd.MarkFlagRequired("calories")
}
