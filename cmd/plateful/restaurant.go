package plateful

import (
	"fmt"
	"strings"

	"github.com/plateful-app/plateful-cli/internal/catalog"
	"github.com/plateful-app/plateful-cli/internal/model"
	"github.com/plateful-app/plateful-cli/internal/store"
	"github.com/spf13/cobra"
)

var restaurantCmd = &cobra.Command{
	Use:   "restaurant",
	Short: "Browse restaurant meals",
}

var (
	restaurantMealCal     int
	restaurantMealProtein int
	restaurantMealCarbs   int
	restaurantMealFat     int
)

var restaurantListCmd = &cobra.Command{
	Use:   "list [name]",
	Short: "List restaurants, or the meals of one restaurant",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return withStore(func(s *store.Store) error {
			restaurants := catalog.MergeRestaurants(s.CustomRestaurants(), s.CustomRestaurantMeals())
			out := cmd.OutOrStdout()
			if len(args) == 0 {
				for _, r := range restaurants {
					tag := ""
					if r.IsCustom {
						tag = "  (custom)"
					}
					fmt.Fprintf(out, "%-28s %d meal(s)%s\n", r.Name, len(r.Meals), tag)
				}
				return nil
			}
			for _, r := range restaurants {
				if !strings.EqualFold(r.Name, args[0]) {
					continue
				}
				for _, m := range r.Meals {
					fmt.Fprintf(out, "%-36s %4d kcal  P%dg C%dg F%dg\n",
						m.Name, m.Nutrition.Calories, m.Nutrition.ProteinG, m.Nutrition.CarbsG, m.Nutrition.FatG)
				}
				return nil
			}
			return fmt.Errorf("no restaurant named %q", args[0])
		})
	},
}

var restaurantCustomCmd = &cobra.Command{
	Use:   "custom <name>",
	Short: "Add a custom restaurant",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return withStore(func(s *store.Store) error {
			r := model.CustomRestaurant{ID: store.NewID(), Name: args[0]}
			if err := s.AddCustomRestaurant(r); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Added %q (%s)\n", r.Name, r.ID)
			return nil
		})
	},
}

var restaurantMealCmd = &cobra.Command{
	Use:   "meal <restaurant-id> <name>",
	Short: "Add a meal to a custom restaurant",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		return withStore(func(s *store.Store) error {
			m := model.CustomRestaurantMeal{
				ID:           store.NewID(),
				RestaurantID: args[0],
				Name:         args[1],
				Nutrition: model.Nutrition{
					Calories: restaurantMealCal,
					ProteinG: restaurantMealProtein,
					CarbsG:   restaurantMealCarbs,
					FatG:     restaurantMealFat,
				},
			}
			if err := s.AddCustomRestaurantMeal(m); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Added %q (%d kcal)\n", m.Name, m.Nutrition.Calories)
			return nil
		})
	},
}

func init() {
	rootCmd.AddCommand(restaurantCmd)
	restaurantCmd.AddCommand(restaurantListCmd, restaurantCustomCmd, restaurantMealCmd)

	restaurantMealCmd.Flags().IntVar(&restaurantMealCal, "calories", 0, "Calories")
	restaurantMealCmd.Flags().IntVar(&restaurantMealProtein, "protein", 0, "Protein grams")
	restaurantMealCmd.Flags().IntVar(&restaurantMealCarbs, "carbs", 0, "Carb grams")
	restaurantMealCmd.Flags().IntVar(&restaurantMealFat, "fat", 0, "Fat grams")
	_ = restaurantMealCmd.MarkFlagRequired("calories")
}
