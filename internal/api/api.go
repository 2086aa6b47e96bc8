package api

import (
	"context"
	"encoding/json"
	"net/http"
	"sync"
	"time"

	"github.com/charmbracelet/log"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/griddlekit/griddle/pkg/catalog"
	"github.com/griddlekit/griddle/pkg/engine"
	apperrors "github.com/griddlekit/griddle/pkg/errors"
	"github.com/griddlekit/griddle/pkg/signal"
)

// Server wires the layout engine, dashboard, and signal fetcher to HTTP
// routes.
//
// The drag engine expects gestures from a single goroutine, and a Drop
// and a Sync both read the store's layout before swapping a new one in.
// The server is where concurrent writers meet (request goroutines and
// the refresh loop), so mu serializes every mutating path: the drag
// handlers, signal ingestion, and Refresh. Snapshot reads stay lock-free.
type Server struct {
	store     *engine.Store
	engine    *engine.Engine
	dashboard *engine.Dashboard
	fetcher   *signal.Fetcher
	logger    *log.Logger

	mu sync.Mutex
}

// New creates a server. The fetcher may be nil when no signal sources
// are configured; POST /api/signals then remains the only signal input.
func New(store *engine.Store, eng *engine.Engine, dash *engine.Dashboard, fetcher *signal.Fetcher, logger *log.Logger) *Server {
	if logger == nil {
		logger = log.Default()
	}
	return &Server{store: store, engine: eng, dashboard: dash, fetcher: fetcher, logger: logger}
}

// Router builds the HTTP handler.
func (s *Server) Router() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Recoverer)

	r.Get("/healthz", s.handleHealthz)
	r.Route("/api", func(r chi.Router) {
		r.Get("/layout", s.handleLayout)
		r.Get("/cards/{id}/position", s.handlePosition)
		r.Post("/signals", s.handleSignals)
		r.Route("/drag", func(r chi.Router) {
			r.Post("/start", s.handleDragStart)
			r.Post("/over", s.handleDragOver)
			r.Post("/drop", s.handleDragDrop)
			r.Post("/cancel", s.handleDragCancel)
		})
	})
	return r
}

// Refresh pulls signals from the fetcher and applies them. It is a
// no-op without a fetcher.
func (s *Server) Refresh(ctx context.Context) {
	if s.fetcher == nil {
		return
	}
	signals := s.fetcher.Refresh(ctx)

	s.mu.Lock()
	changed := s.dashboard.Apply(signals)
	s.mu.Unlock()
	if changed {
		s.logger.Info("layout updated from signal refresh")
	}
}

// RefreshLoop applies fetched signals every interval until ctx is done.
func (s *Server) RefreshLoop(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			s.Refresh(ctx)
		}
	}
}

func (s *Server) handleHealthz(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("OK"))
}

func (s *Server) handleLayout(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, layoutResponse{Layout: s.store.Layout()})
}

func (s *Server) handlePosition(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	pos, ok := s.store.Position(id)
	if !ok {
		writeError(w, http.StatusNotFound, apperrors.New(apperrors.ErrCodeCardNotFound, "card not found: %s", id))
		return
	}
	writeJSON(w, http.StatusOK, pos)
}

func (s *Server) handleSignals(w http.ResponseWriter, r *http.Request) {
	var signals []catalog.Signal
	if err := json.NewDecoder(r.Body).Decode(&signals); err != nil {
		writeError(w, http.StatusBadRequest, apperrors.Wrap(apperrors.ErrCodeInvalidSignal, err, "invalid signal payload"))
		return
	}

	s.mu.Lock()
	changed := s.dashboard.Apply(signals)
	layout := s.store.Layout()
	s.mu.Unlock()

	writeJSON(w, http.StatusOK, signalsResponse{
		Changed: changed,
		Layout:  layout,
	})
}

func (s *Server) handleDragStart(w http.ResponseWriter, r *http.Request) {
	var req dragStartRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, apperrors.Wrap(apperrors.ErrCodeInvalidInput, err, "invalid drag payload"))
		return
	}
	if err := apperrors.ValidateCardID(req.CardID); err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}

	s.mu.Lock()
	s.engine.DragStart(req.CardID)
	_, dragging := s.engine.Dragging()
	s.mu.Unlock()

	writeJSON(w, http.StatusOK, dragResponse{Dragging: dragging})
}

func (s *Server) handleDragOver(w http.ResponseWriter, r *http.Request) {
	var req pointerRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, apperrors.Wrap(apperrors.ErrCodeInvalidInput, err, "invalid pointer payload"))
		return
	}

	s.mu.Lock()
	cell, ok := s.engine.DragOver(req.X, req.Y)
	s.mu.Unlock()

	resp := dragResponse{Dragging: ok}
	if ok {
		resp.Preview = &cell
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleDragDrop(w http.ResponseWriter, r *http.Request) {
	var req pointerRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, apperrors.Wrap(apperrors.ErrCodeInvalidInput, err, "invalid pointer payload"))
		return
	}

	s.mu.Lock()
	s.engine.Drop(req.X, req.Y)
	layout := s.store.Layout()
	s.mu.Unlock()

	writeJSON(w, http.StatusOK, layoutResponse{Layout: layout})
}

func (s *Server) handleDragCancel(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	s.engine.Cancel()
	layout := s.store.Layout()
	s.mu.Unlock()

	writeJSON(w, http.StatusOK, layoutResponse{Layout: layout})
}

func writeError(w http.ResponseWriter, status int, err error) {
	writeJSON(w, status, errorResponse{
		Error: apperrors.UserMessage(err),
		Code:  string(apperrors.GetCode(err)),
	})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
