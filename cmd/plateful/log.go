package plateful

import (
	"fmt"
	"time"

	"github.com/plateful-app/plateful-cli/internal/ai"
	"github.com/plateful-app/plateful-cli/internal/insights"
	"github.com/plateful-app/plateful-cli/internal/model"
	"github.com/plateful-app/plateful-cli/internal/store"
	"github.com/spf13/cobra"
)

var logCmd = &cobra.Command{
	Use:   "log",
	Short: "Record and review meal logs",
}

var (
	logDate     string
	logServings float64
	logCalories int
	logProtein  int
	logCarbs    int
	logFat      int
	logFiber    int
	logRecipeID string
)

var logAddCmd = &cobra.Command{
	Use:   "add <title>",
	Short: "Log a meal with explicit nutrition",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		date, err := parseDateOrToday(logDate)
		if err != nil {
			return err
		}
		return withStore(func(s *store.Store) error {
			entry := model.MealLog{
				ID:       store.NewID(),
				RecipeID: logRecipeID,
				Title:    args[0],
				Servings: logServings,
				Nutrition: model.Nutrition{
					Calories: logCalories,
					ProteinG: logProtein,
					CarbsG:   logCarbs,
					FatG:     logFat,
					FiberG:   logFiber,
				},
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

var logRecipeCmd = &cobra.Command{
	Use:   "recipe <recipe-id>",
	Short: "Log servings of a saved recipe",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		date, err := parseDateOrToday(logDate)
		if err != nil {
			return err
		}
		return withStore(func(s *store.Store) error {
			r, ok := s.RecipeByID(args[0])
			if !ok {
				return fmt.Errorf("recipe %s not found", args[0])
			}
			entry := model.MealLog{
				ID:       store.NewID(),
				RecipeID: r.ID,
				Title:    r.Title,
				Servings: logServings,
				Nutrition: model.Nutrition{
					Calories: int(float64(r.PerServing.Calories)*logServings + 0.5),
					ProteinG: int(float64(r.PerServing.ProteinG)*logServings + 0.5),
					CarbsG:   int(float64(r.PerServing.CarbsG)*logServings + 0.5),
					FatG:     int(float64(r.PerServing.FatG)*logServings + 0.5),
					FiberG:   int(float64(r.PerServing.FiberG)*logServings + 0.5),
				},
				Date:         date,
				Timestamp:    time.Now().UnixMilli(),
				Ingredients:  r.Ingredients,
				Instructions: r.Instructions,
			}
			if err := s.AddMealLog(entry); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Logged %.1f serving(s) of %q (%d kcal)\n", entry.Servings, entry.Title, entry.Nutrition.Calories)
			return nil
		})
	},
}

var logAICmd = &cobra.Command{
	Use:   "ai <description>",
	Short: "Log a meal from free text, estimated by the AI model",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		date, err := parseDateOrToday(logDate)
		if err != nil {
			return err
		}
		entry, err := ai.ParseMealText(cmd.Context(), aiClient(), args[0], date, time.Now())
		if err != nil {
			return err
		}
		return withStore(func(s *store.Store) error {
			if err := s.AddMealLog(entry); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Logged %q: %d kcal, %dg protein, %dg carbs, %dg fat\n",
				entry.Title, entry.Nutrition.Calories, entry.Nutrition.ProteinG, entry.Nutrition.CarbsG, entry.Nutrition.FatG)
			return nil
		})
	},
}

var logListCmd = &cobra.Command{
	Use:   "list",
	Short: "List meal logs for a date",
	RunE: func(cmd *cobra.Command, args []string) error {
		date, err := parseDateOrToday(logDate)
		if err != nil {
			return err
		}
		return withStore(func(s *store.Store) error {
			logs := s.MealLogsForDate(date)
			if len(logs) == 0 {
				fmt.Fprintf(cmd.OutOrStdout(), "No meals logged on %s\n", date)
				return nil
			}
			for _, l := range logs {
				fmt.Fprintf(cmd.OutOrStdout(), "%s  %-30s %5d kcal  P%dg C%dg F%dg\n",
					l.ID, l.Title, l.Nutrition.Calories, l.Nutrition.ProteinG, l.Nutrition.CarbsG, l.Nutrition.FatG)
			}
			totals := insights.TotalsForDate(s.MealLogs(), date)
			fmt.Fprintf(cmd.OutOrStdout(), "Total: %d kcal, %dg protein, %dg carbs, %dg fat\n",
				totals.Calories, totals.ProteinG, totals.CarbsG, totals.FatG)
			return nil
		})
	},
}

var logDeleteCmd = &cobra.Command{
	Use:   "delete <id>",
	Short: "Delete a meal log",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return withStore(func(s *store.Store) error {
			if err := s.DeleteMealLog(args[0]); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "Deleted")
			return nil
		})
	},
}

func init() {
	rootCmd.AddCommand(logCmd)
	logCmd.AddCommand(logAddCmd, logRecipeCmd, logAICmd, logListCmd, logDeleteCmd)

	logCmd.PersistentFlags().StringVar(&logDate, "date", "", "Date as YYYY-MM-DD (default today)")
	logAddCmd.Flags().Float64Var(&logServings, "servings", 1, "Servings eaten")
	logAddCmd.Flags().IntVar(&logCalories, "calories", 0, "Calories")
	logAddCmd.Flags().IntVar(&logProtein, "protein", 0, "Protein grams")
	logAddCmd.Flags().IntVar(&logCarbs, "carbs", 0, "Carb grams")
	logAddCmd.Flags().IntVar(&logFat, "fat", 0, "Fat grams")
	logAddCmd.Flags().IntVar(&logFiber, "fiber", 0, "Fiber grams")
	logAddCmd.Flags().StringVar(&logRecipeID, "recipe", "", "Recipe ID this log came from")
	_ = logAddCmd.MarkFlagRequired("calories")
	logRecipeCmd.Flags().Float64Var(&logServings, "servings", 1, "Servings eaten")
}
