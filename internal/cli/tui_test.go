package cli

import (
	"context"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/griddlekit/griddle/internal/config"
)

func newDemoModel(t *testing.T) GridModel {
	t.Helper()
	cfg := config.Default()
	dash, store := demoDashboard(context.Background(), cfg, nil)
	return NewGridModel(store, dash.Engine(), cfg.Metrics())
}

func press(t *testing.T, m GridModel, key tea.KeyType) GridModel {
	t.Helper()
	next, _ := m.Update(tea.KeyMsg{Type: key})
	return next.(GridModel)
}

func TestGridModelSeedsDemoLayout(t *testing.T) {
	m := newDemoModel(t)

	repos, ok := m.store.Position("repos")
	if !ok || repos.Row != 0 || repos.Col != 0 {
		t.Errorf("repos = %+v, want (0,0)", repos)
	}
	team, ok := m.store.Position("team")
	if !ok || team.Row != 0 || team.Col != 6 {
		t.Errorf("team = %+v, want (0,6)", team)
	}
}

func TestGridModelSpaceStartsAndDropsDrag(t *testing.T) {
	m := newDemoModel(t)

	m = press(t, m, tea.KeySpace)
	if id, ok := m.eng.Dragging(); !ok || id != "repos" {
		t.Fatalf("Dragging() = %q, %v after pickup, want repos", id, ok)
	}

	for i := 0; i < 6; i++ {
		m = press(t, m, tea.KeyRight)
	}
	if m.preview == nil || m.preview.Row != 0 || m.preview.Col != 6 {
		t.Fatalf("preview = %+v, want (0,6)", m.preview)
	}

	m = press(t, m, tea.KeySpace)
	if _, ok := m.eng.Dragging(); ok {
		t.Error("still dragging after drop")
	}
	repos, _ := m.store.Position("repos")
	if repos.Row != 0 || repos.Col != 6 {
		t.Errorf("repos after drop = %+v, want (0,6)", repos)
	}
}

func TestGridModelEscapeCancelsDrag(t *testing.T) {
	m := newDemoModel(t)
	before := m.store.Layout()

	m = press(t, m, tea.KeySpace)
	m = press(t, m, tea.KeyDown)
	m = press(t, m, tea.KeyEsc)

	if _, ok := m.eng.Dragging(); ok {
		t.Error("still dragging after escape")
	}
	after := m.store.Layout()
	for _, want := range before.Cards {
		got, ok := after.Get(want.ID)
		if !ok || got != want {
			t.Errorf("card %s after cancel = %+v, want %+v", want.ID, got, want)
		}
	}
}

func TestGridModelSpaceOnEmptyCellIsNoop(t *testing.T) {
	m := newDemoModel(t)

	// Park the cursor below every card.
	for i := 0; i < 20; i++ {
		m = press(t, m, tea.KeyDown)
	}
	m = press(t, m, tea.KeySpace)

	if _, ok := m.eng.Dragging(); ok {
		t.Error("dragging after space on empty cell")
	}
	if !strings.Contains(m.status, "no card") {
		t.Errorf("status = %q, want no-card notice", m.status)
	}
}

func TestGridModelViewRendersCardsAndLegend(t *testing.T) {
	m := newDemoModel(t)
	view := m.View()

	for _, want := range []string{"Griddle", "repos", "team", "billing", "alerts"} {
		if !strings.Contains(view, want) {
			t.Errorf("View() missing %q", want)
		}
	}
}

func TestGridModelQuitCancelsActiveDrag(t *testing.T) {
	m := newDemoModel(t)
	m = press(t, m, tea.KeySpace)

	next, cmd := m.Update(tea.KeyMsg{Type: tea.KeyCtrlC})
	m = next.(GridModel)
	if cmd == nil {
		t.Error("ctrl+c did not return a quit command")
	}
	if _, ok := m.eng.Dragging(); ok {
		t.Error("still dragging after quit")
	}
}
