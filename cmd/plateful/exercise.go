package plateful

import (
	"fmt"
	"strings"
	"time"

	"github.com/plateful-app/plateful-cli/internal/model"
	"github.com/plateful-app/plateful-cli/internal/store"
	"github.com/spf13/cobra"
)

var exerciseCmd = &cobra.Command{
	Use:   "exercise",
	Short: "Track workouts and walks",
}

var (
	exerciseDate     string
	exerciseType     string
	exerciseReps     int
	exerciseSets     int
	exerciseDuration int
)

var exerciseAddCmd = &cobra.Command{
	Use:   "add <name>",
	Short: "Log an exercise",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		date, err := parseDateOrToday(exerciseDate)
		if err != nil {
			return err
		}
		entry := model.ExerciseLog{
			ID:        store.NewID(),
			Name:      args[0],
			Type:      model.ExerciseType(strings.ToLower(exerciseType)),
			Date:      date,
			Timestamp: time.Now().UnixMilli(),
		}
		if cmd.Flags().Changed("reps") {
			v := exerciseReps
			entry.Reps = &v
		}
		if cmd.Flags().Changed("sets") {
			v := exerciseSets
			entry.Sets = &v
		}
		if cmd.Flags().Changed("duration") {
			v := exerciseDuration
			entry.DurationMin = &v
		}
		return withStore(func(s *store.Store) error {
			if err := s.AddExerciseLog(entry); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Logged %s (%s) on %s\n", entry.Name, entry.Type, entry.Date)
			return nil
		})
	},
}

var exerciseListCmd = &cobra.Command{
	Use:   "list",
	Short: "List exercises for a date",
	RunE: func(cmd *cobra.Command, args []string) error {
		date, err := parseDateOrToday(exerciseDate)
		if err != nil {
			return err
		}
		return withStore(func(s *store.Store) error {
			logs := s.ExerciseLogsForDate(date)
			if len(logs) == 0 {
				fmt.Fprintf(cmd.OutOrStdout(), "No exercises on %s\n", date)
				return nil
			}
			for _, l := range logs {
				detail := ""
				if l.Reps != nil && l.Sets != nil {
					detail = fmt.Sprintf("%dx%d", *l.Sets, *l.Reps)
				}
				if l.DurationMin != nil {
					if detail != "" {
						detail += ", "
					}
					detail += fmt.Sprintf("%d min", *l.DurationMin)
				}
				fmt.Fprintf(cmd.OutOrStdout(), "%s  %-20s %-10s %s\n", l.ID, l.Name, l.Type, detail)
			}
			return nil
		})
	},
}

var exerciseDeleteCmd = &cobra.Command{
	Use:   "delete <id>",
	Short: "Delete an exercise log",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return withStore(func(s *store.Store) error {
			if err := s.DeleteExerciseLog(args[0]); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "Deleted")
			return nil
		})
	},
}

func init() {
	rootCmd.AddCommand(exerciseCmd)
	exerciseCmd.AddCommand(exerciseAddCmd, exerciseListCmd, exerciseDeleteCmd)

	exerciseCmd.PersistentFlags().StringVar(&exerciseDate, "date", "", "Date as YYYY-MM-DD (default today)")
	exerciseAddCmd.Flags().StringVar(&exerciseType, "type", "strength", "strength, cardio or walking")
	exerciseAddCmd.Flags().IntVar(&exerciseReps, "reps", 0, "Reps per set")
	exerciseAddCmd.Flags().IntVar(&exerciseSets, "sets", 0, "Number of sets")
	exerciseAddCmd.Flags().IntVar(&exerciseDuration, "duration", 0, "Duration in minutes")
}
