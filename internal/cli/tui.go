package cli

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/griddlekit/griddle/pkg/engine"
	"github.com/griddlekit/griddle/pkg/grid"
)

// Grid cell styles
var (
	tuiEmptyStyle   = lipgloss.NewStyle().Foreground(colorDim)
	tuiCursorStyle  = lipgloss.NewStyle().Bold(true).Foreground(colorYellow)
	tuiPreviewStyle = lipgloss.NewStyle().Foreground(colorYellow)
	tuiDragStyle    = lipgloss.NewStyle().Bold(true).Foreground(colorCyan)

	tuiCardColors = []lipgloss.Color{colorCyan, colorGreen, colorBlue, colorWhite, colorYellow, colorGray}
)

// minDemoRows keeps the raster tall enough to drag cards downward into
// empty space.
const minDemoRows = 8

// =============================================================================
// GridModel - Interactive drag demo
// =============================================================================

// GridModel is the bubbletea model for the interactive grid demo. Arrow
// keys move a synthesized pointer across the drop zone; space picks up
// and drops the card under the pointer, escape cancels the drag. The
// model never mutates a layout itself, it only feeds pointer events to
// the engine.
type GridModel struct {
	store   *engine.Store
	eng     *engine.Engine
	metrics engine.Metrics

	cursor  engine.Cell
	preview *engine.Cell
	status  string
}

// NewGridModel creates a grid demo model over an engine stack.
func NewGridModel(store *engine.Store, eng *engine.Engine, metrics engine.Metrics) GridModel {
	return GridModel{
		store:   store,
		eng:     eng,
		metrics: metrics,
		status:  "space pick up · arrows move · esc cancel · q quit",
	}
}

func (m GridModel) Init() tea.Cmd {
	return nil
}

// pointer synthesizes drop-zone coordinates for the cursor cell, the way
// a browser would report a pointer hovering over that cell.
func (m GridModel) pointer() (x, y float64) {
	return float64(m.cursor.Col) * m.metrics.ColWidth, float64(m.cursor.Row) * m.metrics.RowHeight
}

func (m GridModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			m.eng.Cancel()
			return m, tea.Quit
		case "esc":
			if _, ok := m.eng.Dragging(); ok {
				m.eng.Cancel()
				m.preview = nil
				m.status = "drag cancelled"
			}
		case "up", "k":
			if m.cursor.Row > 0 {
				m.cursor.Row--
				m = m.moved()
			}
		case "down", "j":
			m.cursor.Row++
			m = m.moved()
		case "left", "h":
			if m.cursor.Col > 0 {
				m.cursor.Col--
				m = m.moved()
			}
		case "right", "l":
			if m.cursor.Col < m.store.Columns()-1 {
				m.cursor.Col++
				m = m.moved()
			}
		case " ":
			m = m.toggleDrag()
		}
	}
	return m, nil
}

// moved reports the new pointer position to an active drag session.
func (m GridModel) moved() GridModel {
	x, y := m.pointer()
	if cell, ok := m.eng.DragOver(x, y); ok {
		m.preview = &cell
	} else {
		m.preview = nil
	}
	return m
}

// toggleDrag picks up the card under the cursor, or drops a held one.
func (m GridModel) toggleDrag() GridModel {
	if _, ok := m.eng.Dragging(); ok {
		x, y := m.pointer()
		m.eng.Drop(x, y)
		m.preview = nil
		m.status = "dropped"
		return m
	}

	card, ok := cardAt(m.store.Layout(), m.cursor)
	if !ok {
		m.status = "no card under cursor"
		return m
	}
	m.eng.DragStart(card.ID)
	m.status = "dragging " + card.ID
	return m.moved()
}

func (m GridModel) View() string {
	layout := m.store.Layout()
	dragID, dragging := m.eng.Dragging()

	rows := layout.Rows()
	if r := m.cursor.Row + 1; r > rows {
		rows = r
	}
	if rows < minDemoRows {
		rows = minDemoRows
	}

	var b strings.Builder
	b.WriteString(StyleTitle.Render("Griddle"))
	b.WriteString("\n")
	b.WriteString(StyleDim.Render(m.status))
	b.WriteString("\n\n")

	for row := 0; row < rows; row++ {
		for col := 0; col < layout.Columns; col++ {
			cell := engine.Cell{Row: row, Col: col}
			glyph, style := m.renderCell(layout, cell, dragID, dragging)
			if cell == m.cursor {
				style = tuiCursorStyle
			}
			b.WriteString(style.Render(glyph))
		}
		b.WriteString("\n")
	}

	b.WriteString("\n")
	for i, card := range layout.Cards {
		if i > 0 {
			b.WriteString(StyleDim.Render("  "))
		}
		style := lipgloss.NewStyle().Foreground(tuiCardColors[i%len(tuiCardColors)])
		b.WriteString(style.Render(fmt.Sprintf("%c %s", cardGlyph(i), card.ID)))
	}
	b.WriteString("\n")

	return b.String()
}

// renderCell picks the glyph and style for one raster cell.
func (m GridModel) renderCell(layout grid.Layout, cell engine.Cell, dragID string, dragging bool) (string, lipgloss.Style) {
	if dragging && m.preview != nil {
		held, ok := layout.Get(dragID)
		if ok && cell.Row >= m.preview.Row && cell.Row < m.preview.Row+held.Height &&
			cell.Col >= m.preview.Col && cell.Col < m.preview.Col+held.Width {
			return "▒", tuiPreviewStyle
		}
	}

	for i, card := range layout.Cards {
		if cell.Row >= card.Row && cell.Row < card.Bottom() &&
			cell.Col >= card.Col && cell.Col < card.Right() {
			style := lipgloss.NewStyle().Foreground(tuiCardColors[i%len(tuiCardColors)])
			if dragging && card.ID == dragID {
				style = tuiDragStyle
			}
			return string(cardGlyph(i)), style
		}
	}
	return "·", tuiEmptyStyle
}

// cardAt finds the card covering a cell, if any.
func cardAt(layout grid.Layout, cell engine.Cell) (grid.Card, bool) {
	for _, card := range layout.Cards {
		if cell.Row >= card.Row && cell.Row < card.Bottom() &&
			cell.Col >= card.Col && cell.Col < card.Right() {
			return card, true
		}
	}
	return grid.Card{}, false
}

// cardGlyph maps a card index to a stable display rune.
func cardGlyph(i int) rune {
	return rune('A' + i%26)
}
