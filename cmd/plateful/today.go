package plateful

import (
	"fmt"

	"github.com/plateful-app/plateful-cli/internal/insights"
	"github.com/plateful-app/plateful-cli/internal/store"
	"github.com/spf13/cobra"
)

var todayDate string

var todayCmd = &cobra.Command{
	Use:   "today",
	Short: "Dashboard: today's intake, remaining goals and activity",
	RunE: func(cmd *cobra.Command, args []string) error {
		date, err := parseDateOrToday(todayDate)
		if err != nil {
			return err
		}
		return withStore(func(s *store.Store) error {
			out := cmd.OutOrStdout()
			totals := insights.TotalsForDate(s.MealLogs(), date)
			fmt.Fprintf(out, "%s\n", date)
			fmt.Fprintf(out, "Eaten: %d kcal, %dg protein, %dg carbs, %dg fat\n",
				totals.Calories, totals.ProteinG, totals.CarbsG, totals.FatG)
			if g := s.Goals(); g != nil {
				fmt.Fprintf(out, "Remaining: %d kcal, %dg protein, %dg carbs, %dg fat\n",
					g.Calories-totals.Calories, g.ProteinG-totals.ProteinG,
					g.CarbsG-totals.CarbsG, g.FatG-totals.FatG)
			}
			activity := insights.TodayActivity(s.ExerciseLogs(), date)
			fmt.Fprintf(out, "Activity: %d reps, %d exercise min, %d walking min\n",
				activity.Reps, activity.ExerciseMinutes, activity.WalkingMinutes)
			if w, ok := s.LatestWeight(); ok {
				fmt.Fprintf(out, "Latest weight: %.1f lbs (%s)\n", w.WeightLbs, w.Date)
			}
			if p, ok := s.MealPlanForDate(date); ok {
				fmt.Fprintf(out, "Planned today: %d kcal across %d meal(s)\n", p.Totals.Calories, len(p.Slots))
			}
			return nil
		})
	},
}

func init() {
	rootCmd.AddCommand(todayCmd)
	todayCmd.Flags().StringVar(&todayDate, "date", "", "Date as YYYY-MM-DD (default today)")
}
