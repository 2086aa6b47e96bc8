package api

import (
	"github.com/griddlekit/griddle/pkg/engine"
	"github.com/griddlekit/griddle/pkg/grid"
)

type errorResponse struct {
	Error string `json:"error"`
	Code  string `json:"code,omitempty"`
}

type layoutResponse struct {
	Layout grid.Layout `json:"layout"`
}

type signalsResponse struct {
	Changed bool        `json:"changed"`
	Layout  grid.Layout `json:"layout"`
}

type dragStartRequest struct {
	CardID string `json:"card_id"`
}

type pointerRequest struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

type dragResponse struct {
	Dragging bool         `json:"dragging"`
	Preview  *engine.Cell `json:"preview,omitempty"`
}
