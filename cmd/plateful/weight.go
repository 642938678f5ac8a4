package plateful

import (
	"fmt"
	"strconv"
	"time"

	"github.com/plateful-app/plateful-cli/internal/model"
	"github.com/plateful-app/plateful-cli/internal/store"
	"github.com/spf13/cobra"
)

var weightCmd = &cobra.Command{
	Use:   "weight",
	Short: "Track weigh-ins",
}

var weightDate string

var weightAddCmd = &cobra.Command{
	Use:   "add <lbs>",
	Short: "Record a weigh-in (replaces any entry for the same date)",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		lbs, err := strconv.ParseFloat(args[0], 64)
		if err != nil {
			return fmt.Errorf("invalid weight %q", args[0])
		}
		date, err := parseDateOrToday(weightDate)
		if err != nil {
			return err
		}
		return withStore(func(s *store.Store) error {
			entry := model.WeightEntry{
				ID:        store.NewID(),
				WeightLbs: lbs,
				Date:      date,
				Timestamp: time.Now().UnixMilli(),
			}
			if err := s.AddWeightEntry(entry); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Recorded %.1f lbs on %s\n", lbs, date)
			return nil
		})
	},
}

var weightListCmd = &cobra.Command{
	Use:   "list",
	Short: "List weigh-ins, newest first",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withStore(func(s *store.Store) error {
			entries := s.WeightEntries()
			if len(entries) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "No weigh-ins yet")
				return nil
			}
			for i := len(entries) - 1; i >= 0; i-- {
				e := entries[i]
				fmt.Fprintf(cmd.OutOrStdout(), "%s  %s  %.1f lbs\n", e.ID, e.Date, e.WeightLbs)
			}
			return nil
		})
	},
}

var weightDeleteCmd = &cobra.Command{
	Use:   "delete <id>",
	Short: "Delete a weigh-in",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return withStore(func(s *store.Store) error {
			if err := s.DeleteWeightEntry(args[0]); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "Deleted")
			return nil
		})
	},
}

func init() {
	rootCmd.AddCommand(weightCmd)
	weightCmd.AddCommand(weightAddCmd, weightListCmd, weightDeleteCmd)

	weightAddCmd.Flags().StringVar(&weightDate, "date", "", "Date as YYYY-MM-DD (default today)")
}
