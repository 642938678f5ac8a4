package plateful

import (
	"fmt"

	"github.com/plateful-app/plateful-cli/internal/model"
	"github.com/plateful-app/plateful-cli/internal/store"
	"github.com/spf13/cobra"
)

var goalCmd = &cobra.Command{
	Use:   "goal",
	Short: "Show or override daily calorie and macro goals",
}

var goalShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show current daily goals",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withStore(func(s *store.Store) error {
			g := s.Goals()
			if g == nil {
				fmt.Fprintln(cmd.OutOrStdout(), "No goals yet; set a profile first")
				return nil
			}
			kind := "derived from profile"
			if g.IsCustom {
				kind = "custom"
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Calories: %d (%s)\nProtein: %dg\nCarbs: %dg\nFat: %dg\n",
				g.Calories, kind, g.ProteinG, g.CarbsG, g.FatG)
			return nil
		})
	},
}

var (
	customProtein int
	customCarbs   int
	customFat     int

	setCalories int
	setProtein  int
	setCarbs    int
	setFat      int
)

var goalSetCmd = &cobra.Command{
	Use:   "set",
	Short: "Override all goal values directly",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withStore(func(s *store.Store) error {
			g := model.DailyGoals{
				Calories: setCalories,
				ProteinG: setProtein,
				CarbsG:   setCarbs,
				FatG:     setFat,
				IsCustom: true,
			}
			if err := s.SetGoals(g); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Goals set: %d kcal, %dg protein, %dg carbs, %dg fat\n",
				g.Calories, g.ProteinG, g.CarbsG, g.FatG)
			return nil
		})
	},
}

var goalCustomCmd = &cobra.Command{
	Use:   "custom",
	Short: "Pin custom macro grams (calories are derived at 4/4/9)",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withStore(func(s *store.Store) error {
			if err := s.SetCustomMacros(customProtein, customCarbs, customFat); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Custom goals set: %d kcal\n", s.Goals().Calories)
			return nil
		})
	},
}

func init() {
	rootCmd.AddCommand(goalCmd)
	goalCmd.AddCommand(goalShowCmd, goalSetCmd, goalCustomCmd)

	goalSetCmd.Flags().IntVar(&setCalories, "calories", 0, "Calories per day")
	goalSetCmd.Flags().IntVar(&setProtein, "protein", 0, "Protein grams per day")
	goalSetCmd.Flags().IntVar(&setCarbs, "carbs", 0, "Carb grams per day")
	goalSetCmd.Flags().IntVar(&setFat, "fat", 0, "Fat grams per day")
	_ = goalSetCmd.MarkFlagRequired("calories")

	goalCustomCmd.Flags().IntVar(&customProtein, "protein", 0, "Protein grams per day")
	goalCustomCmd.Flags().IntVar(&customCarbs, "carbs", 0, "Carb grams per day")
	goalCustomCmd.Flags().IntVar(&customFat, "fat", 0, "Fat grams per day")
	_ = goalCustomCmd.MarkFlagRequired("protein")
	_ = goalCustomCmd.MarkFlagRequired("carbs")
	_ = goalCustomCmd.MarkFlagRequired("fat")
}
