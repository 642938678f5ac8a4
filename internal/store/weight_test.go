package store_test

import (
	"testing"

	"github.com/plateful-app/plateful-cli/internal/model"
	"github.com/plateful-app/plateful-cli/internal/store"
)

func TestAddWeightEntryOverwritesSameDate(t *testing.T) {
	t.Parallel()
	s := newTestStore(t)

	first := model.WeightEntry{ID: store.NewID(), WeightLbs: 181.2, Date: "2026-03-01", Timestamp: 100}
	second := model.WeightEntry{ID: store.NewID(), WeightLbs: 180.4, Date: "2026-03-01", Timestamp: 200}
	if err := s.AddWeightEntry(first); err != nil {
		t.Fatalf("add first entry: %v", err)
	}
	if err := s.AddWeightEntry(second); err != nil {
		t.Fatalf("add second entry: %v", err)
	}

	entries := s.WeightEntries()
	count := 0
	for _, e := range entries {
		if e.Date == "2026-03-01" {
			count++
			if e.WeightLbs != 180.4 {
				t.Fatalf("expected later write to win, got %v", e.WeightLbs)
			}
		}
	}
	if count != 1 {
		t.Fatalf("expected exactly one entry for the date, got %d", count)
	}
}

func TestLatestWeightByTimestamp(t *testing.T) {
	t.Parallel()
	s := newTestStore(t)

	if _, ok := s.LatestWeight(); ok {
		t.Fatal("empty store must report no latest weight")
	}
	entries := []model.WeightEntry{
		{ID: store.NewID(), WeightLbs: 182, Date: "2026-02-27", Timestamp: 300},
		{ID: store.NewID(), WeightLbs: 183, Date: "2026-02-25", Timestamp: 100},
		{ID: store.NewID(), WeightLbs: 181, Date: "2026-02-26", Timestamp: 200},
	}
	for _, e := range entries {
		if err := s.AddWeightEntry(e); err != nil {
			t.Fatalf("add entry: %v", err)
		}
	}
	latest, ok := s.LatestWeight()
	if !ok || latest.WeightLbs != 182 {
		t.Fatalf("expected latest 182 by timestamp, got %+v ok=%v", latest, ok)
	}
}

func TestAddWeightEntryValidation(t *testing.T) {
	t.Parallel()
	s := newTestStore(t)

	if err := s.AddWeightEntry(model.WeightEntry{ID: store.NewID(), WeightLbs: 0, Date: "2026-03-01"}); err == nil {
		t.Fatal("expected error for zero weight")
	}
	if err := s.AddWeightEntry(model.WeightEntry{ID: store.NewID(), WeightLbs: 180, Date: "03/01/2026"}); err == nil {
		t.Fatal("expected error for malformed date")
	}
}
