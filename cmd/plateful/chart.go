package plateful

import (
	"fmt"
	"time"

	"github.com/plateful-app/plateful-cli/internal/insights"
	"github.com/plateful-app/plateful-cli/internal/store"
	"github.com/spf13/cobra"
)

var chartDays int

var chartCmd = &cobra.Command{
	Use:   "chart",
	Short: "Show calorie and weight history",
	RunE: func(cmd *cobra.Command, args []string) error {
		switch chartDays {
		case 7, 14, 30:
		default:
			return fmt.Errorf("--days must be 7, 14 or 30")
		}
		return withStore(func(s *store.Store) error {
			goals := s.Goals()
			if goals == nil {
				return fmt.Errorf("no goals yet: set a profile first")
			}
			data := insights.ChartSeries(s.MealLogs(), s.WeightEntries(), *goals, chartDays, time.Now())
			out := cmd.OutOrStdout()
			for _, d := range data.Days {
				weight := ""
				if d.WeightLbs != nil {
					weight = fmt.Sprintf("  %.1f lbs", *d.WeightLbs)
				}
				fmt.Fprintf(out, "%s  %5d kcal  P%3dg C%3dg F%3dg%s\n",
					d.Date, d.Calories, d.ProteinG, d.CarbsG, d.FatG, weight)
			}
			fmt.Fprintf(out, "Average: %.0f kcal/day  (axis max %d)\n",
				data.AverageCalories, data.CalorieAxisMax)

			var goalWeight float64
			if p := s.Profile(); p != nil {
				goalWeight = p.GoalWeightLbs
			}
			if low, high, ok := insights.WeightAxisRange(s.WeightEntries(), goalWeight); ok {
				fmt.Fprintf(out, "Weight axis: %d to %d lbs\n", low, high)
			}
			return nil
		})
	},
}

func init() {
	rootCmd.AddCommand(chartCmd)
	chartCmd.Flags().IntVar(&chartDays, "days", 7, "Window size: 7, 14 or 30")
}
