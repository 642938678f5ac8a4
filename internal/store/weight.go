package store

import (
	"fmt"

	"github.com/plateful-app/plateful-cli/internal/model"
)

func (s *Store) WeightEntries() []model.WeightEntry {
	return s.state.WeightEntries
}

// AddWeightEntry keeps at most one entry per date: any existing entry
// for the same date is dropped before the new one is inserted, so the
// later write wins.
func (s *Store) AddWeightEntry(e model.WeightEntry) error {
	if e.ID == "" {
		return fmt.Errorf("weight entry id is required")
	}
	if e.WeightLbs <= 0 {
		return fmt.Errorf("weight must be > 0")
	}
	if err := validateDate(e.Date); err != nil {
		return err
	}
	kept := s.state.WeightEntries[:0]
	for _, existing := range s.state.WeightEntries {
		if existing.Date != e.Date {
			kept = append(kept, existing)
		}
	}
	s.state.WeightEntries = append(kept, e)
	return s.save()
}

func (s *Store) DeleteWeightEntry(id string) error {
	for i := range s.state.WeightEntries {
		if s.state.WeightEntries[i].ID == id {
			s.state.WeightEntries = append(s.state.WeightEntries[:i], s.state.WeightEntries[i+1:]...)
			return s.save()
		}
	}
	return fmt.Errorf("weight entry %s not found", id)
}

// LatestWeight returns the entry with the highest timestamp.
func (s *Store) LatestWeight() (model.WeightEntry, bool) {
	var latest model.WeightEntry
	found := false
	for _, e := range s.state.WeightEntries {
		if !found || e.Timestamp > latest.Timestamp {
			latest = e
			found = true
		}
	}
	return latest, found
}
