package engine

import (
	"math"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"

	"github.com/griddlekit/griddle/pkg/grid"
	"github.com/griddlekit/griddle/pkg/observability"
)

// Cell is a grid coordinate: the target of a pointer position.
type Cell struct {
	Row int `json:"row"`
	Col int `json:"col"`
}

// Metrics converts pointer coordinates, relative to the drop-zone origin,
// into grid cells. ColWidth and RowHeight are the rendered size of one
// grid unit in the host's coordinate space (pixels, terminal cells, ...).
type Metrics struct {
	ColWidth  float64
	RowHeight float64
}

// CellFor maps a pointer position to the cell a card of the given width
// would land on. The column is clamped so the card stays inside the grid;
// the row is clamped at zero. Degenerate metrics map everything to the
// origin rather than failing.
func (m Metrics) CellFor(x, y float64, columns, width int) Cell {
	var cell Cell
	if m.ColWidth > 0 {
		cell.Col = int(math.Round(x / m.ColWidth))
	}
	if m.RowHeight > 0 {
		cell.Row = int(math.Round(y / m.RowHeight))
	}
	if cell.Row < 0 {
		cell.Row = 0
	}
	if cell.Col < 0 {
		cell.Col = 0
	}
	if max := columns - width; cell.Col > max {
		cell.Col = max
		if cell.Col < 0 {
			cell.Col = 0
		}
	}
	return cell
}

// Session is the ephemeral state of one drag gesture. It lives from
// DragStart until Drop or Cancel and is never persisted.
type Session struct {
	ID     string
	CardID string
	Origin Cell
}

// Engine is the drag state machine: Idle → Dragging → {Dropped,
// Cancelled} → Idle. At most one session is active at a time; starting a
// second is a protocol violation that resets the machine to Idle.
//
// A drag gesture is a strict synchronous event sequence (start, zero or
// more moves, one drop or cancel) delivered by a single host goroutine;
// the engine does not serialize concurrent gestures.
type Engine struct {
	store   *Store
	metrics Metrics
	logger  *log.Logger
	session *Session
}

// New creates an engine driving the given store. A nil logger falls back
// to log.Default().
func New(store *Store, metrics Metrics, logger *log.Logger) *Engine {
	if logger == nil {
		logger = log.Default()
	}
	return &Engine{store: store, metrics: metrics, logger: logger}
}

// Dragging reports whether a drag session is active, and for which card.
func (e *Engine) Dragging() (string, bool) {
	if e.session == nil {
		return "", false
	}
	return e.session.CardID, true
}

// DragStart begins a drag gesture for the given card. Unknown cards are
// ignored. If a session is already active the protocol was violated: the
// stale session is discarded, the machine resets to Idle, and the new
// start is not honored.
func (e *Engine) DragStart(cardID string) {
	if e.session != nil {
		e.logger.Warn("drag started while another is active; resetting", "card", cardID, "active", e.session.CardID)
		observability.Drag().OnProtocolViolation("drag already active")
		e.session = nil
		return
	}

	c, ok := e.store.Layout().Get(cardID)
	if !ok {
		e.logger.Debug("drag start for unknown card ignored", "card", cardID)
		return
	}

	e.session = &Session{
		ID:     uuid.NewString(),
		CardID: cardID,
		Origin: Cell{Row: c.Row, Col: c.Col},
	}
	observability.Drag().OnDragStart(cardID)
}

// DragOver recomputes the advisory preview cell for the current pointer
// position. It is purely visual: no layout mutation happens until Drop.
// Returns false when no drag is active.
func (e *Engine) DragOver(x, y float64) (Cell, bool) {
	if e.session == nil {
		return Cell{}, false
	}
	l := e.store.Layout()
	c, ok := l.Get(e.session.CardID)
	if !ok {
		// The card vanished mid-drag (its data source depleted).
		e.session = nil
		return Cell{}, false
	}
	return e.metrics.CellFor(x, y, l.Columns, c.Width), true
}

// Drop completes the gesture: the dragged card lands on the cell under
// the pointer, overlapped cards cascade downward, a global resolution
// pass separates anything the cascade missed, gravity closes the vertical
// gaps, and the final layout is swapped into the store in one step.
// A drop with no active session is ignored.
func (e *Engine) Drop(x, y float64) {
	if e.session == nil {
		return
	}
	sess := e.session
	e.session = nil

	l := e.store.Layout()
	card, ok := l.Get(sess.CardID)
	if !ok {
		return
	}

	target := e.metrics.CellFor(x, y, l.Columns, card.Width)
	card.Row, card.Col = target.Row, target.Col

	// Work on a copy without the dragged card, cascade the cards under
	// the landing rectangle, then insert and run the safety passes.
	work := l.Remove(card.ID)
	work = grid.PushDown(work, card)
	work = work.Insert(card)
	work = grid.ResolveOverlaps(work)
	work = grid.Compact(work)

	e.store.Swap(work)
	observability.Drag().OnDrop(card.ID, target.Row, target.Col)
	e.logger.Debug("drop complete", "card", card.ID, "row", target.Row, "col", target.Col)
}

// Cancel abandons the gesture (release outside the drop zone, Escape).
// The layout is unchanged; no partial mutation happened before Drop.
func (e *Engine) Cancel() {
	if e.session == nil {
		return
	}
	cardID := e.session.CardID
	e.session = nil
	observability.Drag().OnCancel(cardID)
}
