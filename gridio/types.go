package gridio

import "errors"

// ErrMalformedInput indicates a character that is not a recognised cell digit.
var ErrMalformedInput = errors.New("gridio: malformed input")

// InfToken is printed in ModeFCost for cells whose heuristic was never evaluated.
const InfToken = "INF"

// Mode selects what Render prints per cell.
type Mode int

const (
	// ModeKind prints the kind digit of each cell.
	ModeKind Mode = iota
	// ModeFCost prints the fCost of each cell.
	ModeFCost
)

// ParseMode maps "kind" and "fcost" to a Mode.
func ParseMode(s string) (Mode, bool) {
	switch s {
	case "kind", "":
		return ModeKind, true
	case "fcost":
		return ModeFCost, true
	}
	return ModeKind, false
}

// String returns the name accepted by ParseMode.
func (m Mode) String() string {
	if m == ModeFCost {
		return "fcost"
	}
	return "kind"
}

// RenderOptions configures Render.
type RenderOptions struct {
	Mode  Mode
	Color bool
}

// RenderOption configures Render via functional arguments.
type RenderOption func(*RenderOptions)

// WithMode selects the per-cell output.
func WithMode(m Mode) RenderOption {
	return func(o *RenderOptions) { o.Mode = m }
}

// WithColor toggles ANSI colouring.
func WithColor(on bool) RenderOption {
	return func(o *RenderOptions) { o.Color = on }
}
