package store

import (
	"fmt"
	"strings"

	"github.com/plateful-app/plateful-cli/internal/model"
)

func (s *Store) MealLogs() []model.MealLog {
	return s.state.MealLogs
}

// AddMealLog appends a log. Logs are immutable once written; multiple
// logs per date are expected and summed by the aggregation layer.
func (s *Store) AddMealLog(l model.MealLog) error {
	if l.ID == "" {
		return fmt.Errorf("meal log id is required")
	}
	if strings.TrimSpace(l.Title) == "" {
		return fmt.Errorf("meal log title is required")
	}
	if err := validateDate(l.Date); err != nil {
		return err
	}
	s.state.MealLogs = append(s.state.MealLogs, l)
	return s.save()
}

func (s *Store) DeleteMealLog(id string) error {
	for i := range s.state.MealLogs {
		if s.state.MealLogs[i].ID == id {
			s.state.MealLogs = append(s.state.MealLogs[:i], s.state.MealLogs[i+1:]...)
			return s.save()
		}
	}
	return fmt.Errorf("meal log %s not found", id)
}

func (s *Store) MealLogsForDate(date string) []model.MealLog {
	out := make([]model.MealLog, 0)
	for _, l := range s.state.MealLogs {
		if l.Date == date {
			out = append(out, l)
		}
	}
	return out
}

func (s *Store) ExerciseLogs() []model.ExerciseLog {
	return s.state.ExerciseLogs
}

func (s *Store) AddExerciseLog(l model.ExerciseLog) error {
	if l.ID == "" {
		return fmt.Errorf("exercise log id is required")
	}
	if strings.TrimSpace(l.Name) == "" {
		return fmt.Errorf("exercise name is required")
	}
	switch l.Type {
	case model.ExerciseStrength, model.ExerciseCardio, model.ExerciseWalking:
	default:
		return fmt.Errorf("invalid exercise type %q (use strength, cardio or walking)", l.Type)
	}
	if err := validateDate(l.Date); err != nil {
		return err
	}
	s.state.ExerciseLogs = append(s.state.ExerciseLogs, l)
	return s.save()
}

func (s *Store) DeleteExerciseLog(id string) error {
	for i := range s.state.ExerciseLogs {
		if s.state.ExerciseLogs[i].ID == id {
			s.state.ExerciseLogs = append(s.state.ExerciseLogs[:i], s.state.ExerciseLogs[i+1:]...)
			return s.save()
		}
	}
	return fmt.Errorf("exercise log %s not found", id)
}

func (s *Store) ExerciseLogsForDate(date string) []model.ExerciseLog {
	out := make([]model.ExerciseLog, 0)
	for _, l := range s.state.ExerciseLogs {
		if l.Date == date {
			out = append(out, l)
		}
	}
	return out
}
