package plateful

import (
	"bytes"
	"path/filepath"
	"strings"
	"testing"
)

func runCommand(t *testing.T, storeFile string, args ...string) string {
	t.Helper()
	buf := &bytes.Buffer{}
	rootCmd.SetOut(buf)
	rootCmd.SetErr(buf)
	rootCmd.SetArgs(append([]string{"--store", storeFile}, args...))
	if err := rootCmd.Execute(); err != nil {
		t.Fatalf("plateful %s: %v", strings.Join(args, " "), err)
	}
	return buf.String()
}

func TestRootHelp(t *testing.T) {
	buf := &bytes.Buffer{}
	rootCmd.SetOut(buf)
	rootCmd.SetErr(buf)
	rootCmd.SetArgs([]string{"--help"})

	if err := rootCmd.Execute(); err != nil {
		t.Fatalf("execute root help: %v", err)
	}
	if buf.Len() == 0 {
		t.Fatalf("expected help output")
	}
}

func TestInitCommandIdempotent(t *testing.T) {
	path := filepath.Join(t.TempDir(), "plateful.db")
	for i := 0; i < 2; i++ {
		buf := &bytes.Buffer{}
		rootCmd.SetOut(buf)
		rootCmd.SetErr(buf)
		rootCmd.SetArgs([]string{"--store", path, "init"})
		if err := rootCmd.Execute(); err != nil {
			t.Fatalf("init run %d failed: %v", i+1, err)
		}
	}
}

func TestProfileThenGoalShow(t *testing.T) {
	path := filepath.Join(t.TempDir(), "plateful.db")

	out := runCommand(t, path, "profile", "set",
		"--weight", "180", "--height", "70", "--age", "30",
		"--gender", "male", "--activity", "moderate", "--goal-weight", "165")
	if !strings.Contains(out, "Profile saved") {
		t.Fatalf("unexpected output: %q", out)
	}

	out = runCommand(t, path, "goal", "show")
	if !strings.Contains(out, "Calories: 1701") {
		t.Fatalf("expected derived calories in output, got %q", out)
	}
	if !strings.Contains(out, "derived from profile") {
		t.Fatalf("expected derived marker, got %q", out)
	}
}

func TestGoalCustomPinsMacros(t *testing.T) {
	path := filepath.Join(t.TempDir(), "plateful.db")
	runCommand(t, path, "profile", "set",
		"--weight", "180", "--height", "70", "--age", "30",
		"--gender", "male", "--activity", "moderate", "--goal-weight", "165")

	out := runCommand(t, path, "goal", "custom", "--protein", "150", "--carbs", "200", "--fat", "60")
	// 150*4 + 200*4 + 60*9 = 1940
	if !strings.Contains(out, "1940 kcal") {
		t.Fatalf("expected derived custom calories, got %q", out)
	}

	out = runCommand(t, path, "goal", "show")
	if !strings.Contains(out, "(custom)") {
		t.Fatalf("expected custom marker, got %q", out)
	}
}

func TestGoalSetOverride(t *testing.T) {
	path := filepath.Join(t.TempDir(), "plateful.db")

	runCommand(t, path, "goal", "set", "--calories", "2200", "--protein", "160", "--carbs", "220", "--fat", "70")

	out := runCommand(t, path, "goal", "show")
	if !strings.Contains(out, "Calories: 2200") || !strings.Contains(out, "(custom)") {
		t.Fatalf("expected overridden custom goals, got %q", out)
	}
}

func TestFoodCustomDelete(t *testing.T) {
	path := filepath.Join(t.TempDir(), "plateful.db")

	out := runCommand(t, path, "food", "custom", "Seitan", "--calories", "143")
	lp, rp := strings.LastIndex(out, "("), strings.LastIndex(out, ")")
	if lp < 0 || rp <= lp {
		t.Fatalf("expected id in output, got %q", out)
	}
	id := out[lp+1 : rp]

	runCommand(t, path, "food", "delete", id)
	out = runCommand(t, path, "food", "search", "Seitan")
	if !strings.Contains(out, "No matches") {
		t.Fatalf("expected ingredient gone, got %q", out)
	}
}

func TestLogAddAndList(t *testing.T) {
	path := filepath.Join(t.TempDir(), "plateful.db")

	runCommand(t, path, "log", "add", "Oatmeal", "--calories", "350", "--protein", "12", "--date", "2026-03-01")
	runCommand(t, path, "log", "add", "Coffee", "--calories", "5", "--date", "2026-03-01")

	out := runCommand(t, path, "log", "list", "--date", "2026-03-01")
	if !strings.Contains(out, "Oatmeal") || !strings.Contains(out, "Coffee") {
		t.Fatalf("expected both meals listed, got %q", out)
	}
	if !strings.Contains(out, "Total: 355 kcal") {
		t.Fatalf("expected summed total, got %q", out)
	}
}

func TestWeightAddReplacesSameDate(t *testing.T) {
	path := filepath.Join(t.TempDir(), "plateful.db")

	runCommand(t, path, "weight", "add", "181.5", "--date", "2026-03-01")
	runCommand(t, path, "weight", "add", "180.0", "--date", "2026-03-01")

	out := runCommand(t, path, "weight", "list")
	if strings.Contains(out, "181.5") {
		t.Fatalf("expected first entry replaced, got %q", out)
	}
	if !strings.Contains(out, "180.0") {
		t.Fatalf("expected latest entry, got %q", out)
	}
}

func TestRecipeDuplicateRejectedWithoutForce(t *testing.T) {
	path := filepath.Join(t.TempDir(), "plateful.db")

	runCommand(t, path, "recipe", "add", "Fish Tacos", "--calories", "420")

	buf := &bytes.Buffer{}
	rootCmd.SetOut(buf)
	rootCmd.SetErr(buf)
	rootCmd.SetArgs([]string{"--store", path, "recipe", "add", "  fish tacos ", "--calories", "400"})
	if err := rootCmd.Execute(); err == nil {
		t.Fatalf("expected duplicate rejection")
	}

	out := runCommand(t, path, "recipe", "add", "  fish tacos ", "--calories", "400", "--force")
	if !strings.Contains(out, "Saved") {
		t.Fatalf("expected forced add to succeed, got %q", out)
	}
}

func TestFoodInfoScalesServing(t *testing.T) {
	path := filepath.Join(t.TempDir(), "plateful.db")

	out := runCommand(t, path, "food", "info", "Chicken Breast", "--servings", "2")
	// 165 kcal/100g at a 140g serving, twice: round(165*1.4*2) = 462.
	if !strings.Contains(out, "462 kcal") {
		t.Fatalf("expected scaled nutrition, got %q", out)
	}
}

func TestExportImportRoundTrip(t *testing.T) {
	dir := t.TempDir()
	src := filepath.Join(dir, "src.db")
	dst := filepath.Join(dir, "dst.db")
	dump := filepath.Join(dir, "dump.json")

	runCommand(t, src, "recipe", "add", "Chili", "--calories", "500")
	runCommand(t, src, "export", dump)
	runCommand(t, dst, "import", dump)

	out := runCommand(t, dst, "recipe", "list")
	if !strings.Contains(out, "Chili") {
		t.Fatalf("expected imported recipe, got %q", out)
	}
}

func TestAuthFlow(t *testing.T) {
	path := filepath.Join(t.TempDir(), "plateful.db")

	runCommand(t, path, "register", "a@b.co", "--username", "ada", "--password", "secret1")
	out := runCommand(t, path, "whoami")
	if !strings.Contains(out, "ada") {
		t.Fatalf("expected logged-in user, got %q", out)
	}

	runCommand(t, path, "logout")
	out = runCommand(t, path, "whoami")
	if !strings.Contains(out, "Not logged in") {
		t.Fatalf("expected logged out, got %q", out)
	}

	out = runCommand(t, path, "login", "a@b.co", "--password", "secret1")
	if !strings.Contains(out, "ada") {
		t.Fatalf("expected login to restore user, got %q", out)
	}
}
