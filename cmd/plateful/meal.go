package plateful

import (
	"fmt"
	"time"

	"github.com/plateful-app/plateful-cli/internal/model"
	"github.com/plateful-app/plateful-cli/internal/store"
	"github.com/spf13/cobra"
)

var mealCmd = &cobra.Command{
	Use:   "meal",
	Short: "Save custom meals for one-command logging",
}

var (
	mealDate     string
	mealCalories int
	mealProtein  int
	mealCarbs    int
	mealFat      int
	mealFiber    int
)

var mealSaveCmd = &cobra.Command{
	Use:   "save <name>",
	Short: "Save a reusable custom meal",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return withStore(func(s *store.Store) error {
			m := model.SavedCustomMeal{
				ID:   store.NewID(),
				Name: args[0],
				Nutrition: model.Nutrition{
					Calories: mealCalories,
					ProteinG: mealProtein,
					CarbsG:   mealCarbs,
					FatG:     mealFat,
					FiberG:   mealFiber,
				},
				CreatedAt: time.Now().UnixMilli(),
			}
			if err := s.AddSavedMeal(m); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Saved %q (%s)\n", m.Name, m.ID)
			return nil
		})
	},
}

var mealListCmd = &cobra.Command{
	Use:   "list",
	Short: "List saved custom meals",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withStore(func(s *store.Store) error {
			meals := s.SavedMeals()
			if len(meals) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "No saved meals yet")
				return nil
			}
			for _, m := range meals {
				fmt.Fprintf(cmd.OutOrStdout(), "%s  %-28s %4d kcal  P%dg C%dg F%dg\n",
					m.ID, m.Name, m.Nutrition.Calories, m.Nutrition.ProteinG, m.Nutrition.CarbsG, m.Nutrition.FatG)
			}
			return nil
		})
	},
}

var mealLogCmd = &cobra.Command{
	Use:   "log <id>",
	Short: "Log a saved meal for a date",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		date, err := parseDateOrToday(mealDate)
		if err != nil {
			return err
		}
		return withStore(func(s *store.Store) error {
			var saved *model.SavedCustomMeal
			for _, m := range s.SavedMeals() {
				if m.ID == args[0] {
					sm := m
					saved = &sm
					break
				}
			}
			if saved == nil {
				return fmt.Errorf("saved meal %s not found", args[0])
			}
			entry := model.MealLog{
				ID:        store.NewID(),
				Title:     saved.Name,
				Servings:  1,
				Nutrition: saved.Nutrition,
				Date:      date,
				Timestamp: time.Now().UnixMilli(),
			}
			if err := s.AddMealLog(entry); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Logged %q (%d kcal) on %s\n", entry.Title, entry.Nutrition.Calories, entry.Date)
			return nil
		})
	},
}

var mealDeleteCmd = &cobra.Command{
	Use:   "delete <id>",
	Short: "Delete a saved meal",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return withStore(func(s *store.Store) error {
			if err := s.DeleteSavedMeal(args[0]); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "Deleted")
			return nil
		})
	},
}

func init() {
	rootCmd.AddCommand(mealCmd)
	mealCmd.AddCommand(mealSaveCmd, mealListCmd, mealLogCmd, mealDeleteCmd)

	mealSaveCmd.Flags().IntVar(&mealCalories, "calories", 0, "Calories")
	mealSaveCmd.Flags().IntVar(&mealProtein, "protein", 0, "Protein grams")
	mealSaveCmd.Flags().IntVar(&mealCarbs, "carbs", 0, "Carb grams")
	mealSaveCmd.Flags().IntVar(&mealFat, "fat", 0, "Fat grams")
	mealSaveCmd.Flags().IntVar(&mealFiber, "fiber", 0, "Fiber grams")
	_ = mealSaveCmd.MarkFlagRequired("calories")
	mealLogCmd.Flags().StringVar(&mealDate, "date", "", "Date as YYYY-MM-DD (default today)")
}
