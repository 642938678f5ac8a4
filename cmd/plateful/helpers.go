package plateful

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/plateful-app/plateful-cli/internal/ai"
	"github.com/plateful-app/plateful-cli/internal/app"
	"github.com/plateful-app/plateful-cli/internal/store"
)

func resolveStorePath() (string, error) {
	if storePath != "" {
		return storePath, nil
	}
	return app.DefaultStorePath()
}

func withStore(run func(*store.Store) error) error {
	path, err := resolveStorePath()
	if err != nil {
		return err
	}
	if err := app.EnsureStoreDir(path); err != nil {
		return err
	}
	s, err := store.Open(path)
	if err != nil {
		return err
	}
	defer s.Close()
	return run(s)
}

// aiClient builds the generator client from the environment. The key
// is required by the client itself, so a missing key fails on use, not
// here.
func aiClient() *ai.Client {
	return &ai.Client{
		APIKey:  os.Getenv("PLATEFUL_AI_KEY"),
		BaseURL: os.Getenv("PLATEFUL_AI_URL"),
		Model:   os.Getenv("PLATEFUL_AI_MODEL"),
	}
}

// parseDateOrToday accepts YYYY-MM-DD or blank for today.
func parseDateOrToday(date string) (string, error) {
	date = strings.TrimSpace(date)
	if date == "" {
		return store.DateOf(time.Now()), nil
	}
	if _, err := time.Parse("2006-01-02", date); err != nil {
		return "", fmt.Errorf("invalid date %q (expected YYYY-MM-DD)", date)
	}
	return date, nil
}

func parseSlot(raw string) (string, error) {
	slot := strings.ToLower(strings.TrimSpace(raw))
	switch slot {
	case "breakfast", "lunch", "dinner", "snack":
		return slot, nil
	}
	return "", fmt.Errorf("invalid meal slot %q (use breakfast, lunch, dinner or snack)", raw)
}
