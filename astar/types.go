package astar

import (
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/katalvlaran/gridpath/grid"
)

// StepCost is the cost of one orthogonal move.
const StepCost = 1.0

// Sentinel errors. Every configuration problem wraps ErrConfiguration.
var (
	// ErrConfiguration is the umbrella for inputs that prevent a search from starting.
	ErrConfiguration = errors.New("astar: configuration error")

	// ErrNilGrid indicates a nil *grid.Grid.
	ErrNilGrid = fmt.Errorf("%w: grid is nil", ErrConfiguration)

	// ErrObstacleEndpoint indicates that the start or goal cell is not Open.
	ErrObstacleEndpoint = fmt.Errorf("%w: start and goal must be open cells", ErrConfiguration)
)

// State is the lifecycle state of a Searcher.
type State int

const (
	// StateUnstarted: nothing finalized yet.
	StateUnstarted State = iota
	// StateRunning: start finalized, goal not yet reached.
	StateRunning
	// StateSucceeded: goal finalized, path reconstructed.
	StateSucceeded
	// StateFailed: open set exhausted before reaching the goal.
	StateFailed
)

// String returns the lowercase state name.
func (s State) String() string {
	switch s {
	case StateUnstarted:
		return "unstarted"
	case StateRunning:
		return "running"
	case StateSucceeded:
		return "succeeded"
	case StateFailed:
		return "failed"
	}
	return fmt.Sprintf("State(%d)", int(s))
}

// Done reports whether s is terminal.
func (s State) Done() bool {
	return s == StateSucceeded || s == StateFailed
}

// Result is the outcome of a finished search.
//
//   - Path: start to goal inclusive; nil unless Found.
//   - Cost: gCost of the goal (len(Path)-1 moves × StepCost).
//   - Expanded: number of finalized cells.
type Result struct {
	Path     []grid.Point
	Cost     float64
	Expanded int
	State    State
	Found    bool
}

// Snapshot is the per-step view of a running search, for tracing and UIs.
type Snapshot struct {
	Step    int
	State   State
	Current grid.Point
	Open    []grid.Point // sorted by id
	Closed  []grid.Point // finalization order
}

// Options configures a search.
type Options struct {
	// Start and Goal override the default corners when the matching Has flag is set.
	Start, Goal       grid.Point
	HasStart, HasGoal bool

	// OnFinalize is called for every cell the search finalizes, in order.
	OnFinalize func(c *grid.Cell)

	// Logger receives debug and info events. Never nil after DefaultOptions.
	Logger *zap.Logger
}

// Option configures a search via functional arguments.
type Option func(*Options)

// DefaultOptions returns options with corner endpoints, a no-op hook and a no-op logger.
func DefaultOptions() Options {
	return Options{
		OnFinalize: func(*grid.Cell) {},
		Logger:     zap.NewNop(),
	}
}

// WithStart sets the start coordinate. Bounds are checked against the grid
// when the search is built.
func WithStart(x, y int) Option {
	return func(o *Options) {
		o.Start = grid.Point{X: x, Y: y}
		o.HasStart = true
	}
}

// WithGoal sets the goal coordinate.
func WithGoal(x, y int) Option {
	return func(o *Options) {
		o.Goal = grid.Point{X: x, Y: y}
		o.HasGoal = true
	}
}

// WithOnFinalize registers a hook run for every finalized cell.
func WithOnFinalize(fn func(c *grid.Cell)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnFinalize = fn
		}
	}
}

// WithLogger routes search events to l.
func WithLogger(l *zap.Logger) Option {
	return func(o *Options) {
		if l != nil {
			o.Logger = l
		}
	}
}
