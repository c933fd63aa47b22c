package server

import (
	"github.com/katalvlaran/gridpath/astar"
	"github.com/katalvlaran/gridpath/grid"
)

// SearchRequest is the body of POST /v1/search and the first WebSocket message.
type SearchRequest struct {
	// Grid is the text grid, rows separated by newlines.
	Grid string `json:"grid" binding:"required"`
	// Start and Goal default to the top-left and bottom-right corners.
	Start *grid.Point `json:"start,omitempty"`
	Goal  *grid.Point `json:"goal,omitempty"`
	// Render is "kind" (default) or "fcost".
	Render string `json:"render,omitempty"`
}

// SearchResponse reports a finished search.
type SearchResponse struct {
	Found    bool         `json:"found"`
	State    string       `json:"state"`
	Path     []grid.Point `json:"path"`
	Cost     float64      `json:"cost"`
	Expanded int          `json:"expanded"`
	Rendered string       `json:"rendered"`
}

// StepMessage is one search step on the stream.
type StepMessage struct {
	Step    int          `json:"step"`
	State   string       `json:"state"`
	Current grid.Point   `json:"current"`
	Open    []grid.Point `json:"open"`
	Closed  []grid.Point `json:"closed"`
}

// Stream message types.
const (
	TypeStep   = "step"
	TypeResult = "result"
	TypeError  = "error"
)

// StreamMessage is the envelope of every server→client WebSocket message.
type StreamMessage struct {
	Type   string          `json:"type"`
	Step   *StepMessage    `json:"step,omitempty"`
	Result *SearchResponse `json:"result,omitempty"`
	Error  string          `json:"error,omitempty"`
}

type errorResponse struct {
	Error string `json:"error"`
}

func stepMessage(s astar.Snapshot) *StepMessage {
	return &StepMessage{
		Step:    s.Step,
		State:   s.State.String(),
		Current: s.Current,
		Open:    s.Open,
		Closed:  s.Closed,
	}
}
