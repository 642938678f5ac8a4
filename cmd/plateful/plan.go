package plateful

import (
	"fmt"
	"time"

	"github.com/plateful-app/plateful-cli/internal/ai"
	"github.com/plateful-app/plateful-cli/internal/model"
	"github.com/plateful-app/plateful-cli/internal/store"
	"github.com/spf13/cobra"
)

var planCmd = &cobra.Command{
	Use:   "plan",
	Short: "Generate and manage weekly meal plans",
}

var (
	planDate string
	planSlot string
)

var slotOrder = []model.MealSlot{model.SlotBreakfast, model.SlotLunch, model.SlotDinner, model.SlotSnack}

var planWeekCmd = &cobra.Command{
	Use:   "week",
	Short: "Generate a 7-day meal plan starting from a date",
	RunE: func(cmd *cobra.Command, args []string) error {
		date, err := parseDateOrToday(planDate)
		if err != nil {
			return err
		}
		start, _ := time.Parse("2006-01-02", date)
		return withStore(func(s *store.Store) error {
			plans, err := ai.WeeklyPlan(cmd.Context(), aiClient(), s.Profile(), s.Goals(), start)
			if err != nil {
				return err
			}
			for _, p := range plans {
				if err := s.AddMealPlan(p); err != nil {
					return err
				}
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Generated %d day plan starting %s\n", len(plans), date)
			return nil
		})
	},
}

var planShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show the plan for a date",
	RunE: func(cmd *cobra.Command, args []string) error {
		date, err := parseDateOrToday(planDate)
		if err != nil {
			return err
		}
		return withStore(func(s *store.Store) error {
			p, ok := s.MealPlanForDate(date)
			if !ok {
				fmt.Fprintf(cmd.OutOrStdout(), "No plan for %s\n", date)
				return nil
			}
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Plan %s for %s\n", p.ID, p.Date)
			for _, slot := range slotOrder {
				item, ok := p.Slots[slot]
				if !ok {
					continue
				}
				n := item.Nutrition()
				fmt.Fprintf(out, "  %-10s %-32s %4d kcal\n", slot, item.Title(), n.Calories)
			}
			fmt.Fprintf(out, "Totals: %d kcal, %dg protein, %dg carbs, %dg fat\n",
				p.Totals.Calories, p.Totals.ProteinG, p.Totals.CarbsG, p.Totals.FatG)
			return nil
		})
	},
}

var planSwapCmd = &cobra.Command{
	Use:   "swap",
	Short: "Replace one slot of a day's plan with a fresh suggestion",
	RunE: func(cmd *cobra.Command, args []string) error {
		date, err := parseDateOrToday(planDate)
		if err != nil {
			return err
		}
		slot, err := parseSlot(planSlot)
		if err != nil {
			return err
		}
		return withStore(func(s *store.Store) error {
			p, ok := s.MealPlanForDate(date)
			if !ok {
				return fmt.Errorf("no plan for %s", date)
			}
			item, err := ai.DailyMealSwap(cmd.Context(), aiClient(), p, model.MealSlot(slot), s.Profile(), s.Goals())
			if err != nil {
				return err
			}
			if err := s.SwapPlanSlot(p.ID, model.MealSlot(slot), item); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Swapped %s to %q (%d kcal)\n", slot, item.Title(), item.Nutrition().Calories)
			return nil
		})
	},
}

var planAcceptCmd = &cobra.Command{
	Use:   "accept",
	Short: "Save a planned recipe into your collection",
	RunE: func(cmd *cobra.Command, args []string) error {
		date, err := parseDateOrToday(planDate)
		if err != nil {
			return err
		}
		slot, err := parseSlot(planSlot)
		if err != nil {
			return err
		}
		return withStore(func(s *store.Store) error {
			p, ok := s.MealPlanForDate(date)
			if !ok {
				return fmt.Errorf("no plan for %s", date)
			}
			item, ok := p.Slots[model.MealSlot(slot)]
			if !ok {
				return fmt.Errorf("plan for %s has no %s", date, slot)
			}
			var r model.Recipe
			switch item.Kind {
			case model.PlanItemRecipe:
				r = *item.Recipe
			case model.PlanItemCustomMeal:
				r = model.Recipe{
					Title:      item.CustomMeal.Name,
					Servings:   1,
					PerServing: item.CustomMeal.Nutrition,
				}
			}
			r.ID = store.NewID()
			r.Source = model.SourceMealPlan
			r.IsSuggested = true
			r.CreatedAt = time.Now().UnixMilli()
			if dup, ok := s.FindDuplicateRecipe(r.Title); ok {
				return fmt.Errorf("a recipe named %q already exists (%s)", dup.Title, dup.ID)
			}
			if err := s.AddRecipe(r); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Saved %q (%s)\n", r.Title, r.ID)
			return nil
		})
	},
}

var planDeleteCmd = &cobra.Command{
	Use:   "delete <id>",
	Short: "Delete a meal plan",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return withStore(func(s *store.Store) error {
			if err := s.DeleteMealPlan(args[0]); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "Deleted")
			return nil
		})
	},
}

func init() {
	rootCmd.AddCommand(planCmd)
	planCmd.AddCommand(planWeekCmd, planShowCmd, planSwapCmd, planAcceptCmd, planDeleteCmd)

	planCmd.PersistentFlags().StringVar(&planDate, "date", "", "Date as YYYY-MM-DD (default today)")
	planSwapCmd.Flags().StringVar(&planSlot, "slot", "", "breakfast, lunch, dinner or snack")
	planAcceptCmd.Flags().StringVar(&planSlot, "slot", "", "breakfast, lunch, dinner or snack")
	_ = planSwapCmd.MarkFlagRequired("slot")
	_ = planAcceptCmd.MarkFlagRequired("slot")
}
