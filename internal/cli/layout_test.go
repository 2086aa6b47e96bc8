package cli

import (
	"io"
	"os"
	"path/filepath"
	"testing"

	apperrors "github.com/griddlekit/griddle/pkg/errors"
	"github.com/griddlekit/griddle/pkg/grid"
)

func writeSignals(t *testing.T, dir string) string {
	t.Helper()
	path := filepath.Join(dir, "signals.json")
	data := `[{"kind":"repos","present":true,"count":12},{"kind":"team","present":true,"count":3}]`
	if err := os.WriteFile(path, []byte(data), 0644); err != nil {
		t.Fatalf("write signals: %v", err)
	}
	return path
}

func runCommand(t *testing.T, args ...string) error {
	t.Helper()
	c := New(io.Discard, LogInfo)
	root := c.RootCommand()
	root.SetOut(io.Discard)
	root.SetErr(io.Discard)
	root.SetArgs(args)
	return root.Execute()
}

func TestLayoutCommandWritesLayoutFile(t *testing.T) {
	tmp := t.TempDir()
	input := writeSignals(t, tmp)
	output := filepath.Join(tmp, "out.layout.json")

	if err := runCommand(t, "layout", input, "-o", output); err != nil {
		t.Fatalf("layout command: %v", err)
	}

	layout, err := grid.ReadLayoutFile(output)
	if err != nil {
		t.Fatalf("read output: %v", err)
	}
	if len(layout.Cards) != 2 {
		t.Fatalf("layout has %d cards, want 2", len(layout.Cards))
	}

	repos, _ := layout.Get("repos")
	if repos.Row != 0 || repos.Col != 0 || repos.Width != 6 || repos.Height != 2 {
		t.Errorf("repos = %+v, want 6x2 at (0,0)", repos)
	}
	team, _ := layout.Get("team")
	if team.Row != 0 || team.Col != 6 {
		t.Errorf("team = %+v, want (0,6)", team)
	}
}

func TestLayoutCommandDefaultOutputPath(t *testing.T) {
	tmp := t.TempDir()
	input := writeSignals(t, tmp)

	if err := runCommand(t, "layout", input); err != nil {
		t.Fatalf("layout command: %v", err)
	}

	want := filepath.Join(tmp, "signals.layout.json")
	if _, err := os.Stat(want); err != nil {
		t.Errorf("default output %s not written: %v", want, err)
	}
}

func TestLayoutCommandNeedsInput(t *testing.T) {
	if err := runCommand(t, "layout"); err == nil {
		t.Error("layout without input succeeded, want error")
	}
}

func TestLayoutCommandColumnsFlag(t *testing.T) {
	tmp := t.TempDir()
	input := writeSignals(t, tmp)
	output := filepath.Join(tmp, "out.layout.json")

	if err := runCommand(t, "layout", input, "-o", output, "--columns", "6"); err != nil {
		t.Fatalf("layout command: %v", err)
	}

	layout, err := grid.ReadLayoutFile(output)
	if err != nil {
		t.Fatalf("read output: %v", err)
	}
	if layout.Columns != 6 {
		t.Errorf("columns = %d, want 6", layout.Columns)
	}
	// On a 6-column grid both cards span rows instead of sharing one.
	team, _ := layout.Get("team")
	if team.Row != 2 {
		t.Errorf("team row = %d, want 2", team.Row)
	}
}

func TestLayoutCommandRejectsMalformedSignals(t *testing.T) {
	tmp := t.TempDir()
	input := filepath.Join(tmp, "bad.json")
	if err := os.WriteFile(input, []byte("{oops"), 0644); err != nil {
		t.Fatal(err)
	}

	err := runCommand(t, "layout", input)
	if err == nil {
		t.Fatal("layout with malformed signals succeeded, want error")
	}
	if !apperrors.Is(err, apperrors.ErrCodeInvalidSignal) {
		t.Errorf("error = %v, want code %v", err, apperrors.ErrCodeInvalidSignal)
	}
}

func TestLayoutCommandMissingSignalsFile(t *testing.T) {
	err := runCommand(t, "layout", filepath.Join(t.TempDir(), "absent.json"))
	if err == nil {
		t.Fatal("layout with missing signals file succeeded, want error")
	}
	if !apperrors.Is(err, apperrors.ErrCodeFileNotFound) {
		t.Errorf("error = %v, want code %v", err, apperrors.ErrCodeFileNotFound)
	}
}
