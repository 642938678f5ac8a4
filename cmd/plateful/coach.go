package plateful

import (
	"fmt"
	"time"

	"github.com/plateful-app/plateful-cli/internal/ai"
	"github.com/plateful-app/plateful-cli/internal/insights"
	"github.com/plateful-app/plateful-cli/internal/store"
	"github.com/spf13/cobra"
)

var coachRefresh bool

var coachCmd = &cobra.Command{
	Use:   "coach",
	Short: "Get a short piece of coaching advice",
	Long:  "Advice is cached for 12 hours; pass --refresh to force a new request. If the model is unreachable a built-in tip is shown instead.",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withStore(func(s *store.Store) error {
			now := time.Now()
			if !coachRefresh {
				if advice, at := s.CoachAdvice(); advice != "" &&
					now.Sub(time.UnixMilli(at)) < ai.CoachAdviceMaxAge {
					fmt.Fprintln(cmd.OutOrStdout(), advice)
					return nil
				}
			}
			today := insights.TotalsForDate(s.MealLogs(), store.DateOf(now))
			advice, err := ai.CoachAdvice(cmd.Context(), aiClient(), s.Profile(), s.Goals(), today.Calories)
			if err != nil {
				fmt.Fprintln(cmd.OutOrStdout(), ai.CoachFallback)
				return nil
			}
			if err := s.SetCoachAdvice(advice, now.UnixMilli()); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), advice)
			return nil
		})
	},
}

func init() {
	rootCmd.AddCommand(coachCmd)
	coachCmd.Flags().BoolVar(&coachRefresh, "refresh", false, "Ignore the cached advice")
}
