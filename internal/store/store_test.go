package store_test

import (
	"path/filepath"
	"testing"

	"github.com/plateful-app/plateful-cli/internal/model"
	"github.com/plateful-app/plateful-cli/internal/store"
)

func newTestStore(t *testing.T) *store.Store {
	t.Helper()
	s, err := store.Open(filepath.Join(t.TempDir(), "plateful.db"))
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	t.Cleanup(func() { _ = s.Close() })
	return s
}

func testProfile() model.UserProfile {
	return model.UserProfile{
		WeightLbs:     180,
		HeightIn:      70,
		Age:           30,
		Gender:        model.GenderMale,
		ActivityLevel: model.ActivityModerate,
		GoalWeightLbs: 165,
	}
}

func TestSetProfileDerivesGoalsAndGoalType(t *testing.T) {
	t.Parallel()
	s := newTestStore(t)

	if err := s.SetProfile(testProfile()); err != nil {
		t.Fatalf("set profile: %v", err)
	}
	p := s.Profile()
	if p == nil || p.GoalType != model.GoalLose {
		t.Fatalf("expected derived lose goal type, got %+v", p)
	}
	g := s.Goals()
	if g == nil || g.Calories < 1200 || g.IsCustom {
		t.Fatalf("expected derived non-custom goals, got %+v", g)
	}
}

func TestSetProfileDeduplicatesAvoidList(t *testing.T) {
	t.Parallel()
	s := newTestStore(t)

	p := testProfile()
	p.AvoidedIngredients = []string{"Peanuts", "peanuts", " Shellfish ", "", "PEANUTS"}
	if err := s.SetProfile(p); err != nil {
		t.Fatalf("set profile: %v", err)
	}
	got := s.Profile().AvoidedIngredients
	if len(got) != 2 || got[0] != "Peanuts" || got[1] != "Shellfish" {
		t.Fatalf("expected deduplicated avoid list, got %v", got)
	}
}

func TestCustomMacrosPinCalorieIdentity(t *testing.T) {
	t.Parallel()
	s := newTestStore(t)

	if err := s.SetCustomMacros(150, 200, 60); err != nil {
		t.Fatalf("set custom macros: %v", err)
	}
	g := s.Goals()
	if !g.IsCustom {
		t.Fatal("expected custom flag")
	}
	if g.Calories != 150*4+200*4+60*9 {
		t.Fatalf("calories %d violate the 4/4/9 identity", g.Calories)
	}

	// A later profile write must not clobber pinned macros.
	if err := s.SetProfile(testProfile()); err != nil {
		t.Fatalf("set profile: %v", err)
	}
	if got := s.Goals(); !got.IsCustom || got.Calories != g.Calories {
		t.Fatalf("custom goals overwritten by profile update: %+v", got)
	}
}

func TestStateSurvivesReopen(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "plateful.db")
	s, err := store.Open(path)
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	if err := s.AddMealLog(model.MealLog{
		ID:        store.NewID(),
		Title:     "Oatmeal",
		Servings:  1,
		Nutrition: model.Nutrition{Calories: 300},
		Date:      "2026-03-01",
		Timestamp: 1,
	}); err != nil {
		t.Fatalf("add meal log: %v", err)
	}
	if err := s.Close(); err != nil {
		t.Fatalf("close: %v", err)
	}

	reopened, err := store.Open(path)
	if err != nil {
		t.Fatalf("reopen store: %v", err)
	}
	defer reopened.Close()
	logs := reopened.MealLogsForDate("2026-03-01")
	if len(logs) != 1 || logs[0].Title != "Oatmeal" {
		t.Fatalf("expected hydrated meal log, got %+v", logs)
	}
}
