package astar

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/katalvlaran/gridpath/grid"
)

// Searcher runs one A* search over one grid, one Step at a time.
// It owns the grid for the duration of the run.
type Searcher struct {
	g        *grid.Grid
	start    *grid.Cell
	goal     *grid.Cell
	frontier *Frontier
	opts     Options
	log      *zap.Logger

	state State
	steps int
	path  []grid.Point
}

// NewSearcher validates the grid and endpoints and returns a Searcher in
// StateUnstarted. The default endpoints are (0,0) and (W-1,H-1).
//
// Validation (in order):
//  1. g must be non-nil (ErrNilGrid).
//  2. start and goal must be in bounds (grid.ErrOutOfBounds).
//  3. start and goal must be Open (ErrObstacleEndpoint).
//
// All returned errors satisfy errors.Is(err, ErrConfiguration).
func NewSearcher(g *grid.Grid, opts ...Option) (*Searcher, error) {
	if g == nil {
		return nil, ErrNilGrid
	}
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}
	if !cfg.HasStart {
		cfg.Start = grid.Point{X: 0, Y: 0}
	}
	if !cfg.HasGoal {
		cfg.Goal = grid.Point{X: g.Width() - 1, Y: g.Height() - 1}
	}

	start, err := endpoint(g, "start", cfg.Start)
	if err != nil {
		return nil, err
	}
	goal, err := endpoint(g, "goal", cfg.Goal)
	if err != nil {
		return nil, err
	}

	return &Searcher{
		g:        g,
		start:    start,
		goal:     goal,
		frontier: NewFrontier(g, goal.Point()),
		opts:     cfg,
		log:      cfg.Logger.With(zap.Stringer("start", start.Point()), zap.Stringer("goal", goal.Point())),
		state:    StateUnstarted,
	}, nil
}

func endpoint(g *grid.Grid, name string, p grid.Point) (*grid.Cell, error) {
	c, err := g.Lookup(p)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrConfiguration, name, err)
	}
	if c.Kind() != grid.Open {
		return nil, fmt.Errorf("%w: %s %s is %s", ErrObstacleEndpoint, name, p, c.Kind())
	}
	return c, nil
}

// State returns the current lifecycle state.
func (s *Searcher) State() State { return s.state }

// Frontier exposes the open/closed bookkeeping for inspection.
func (s *Searcher) Frontier() *Frontier { return s.frontier }

// Step advances the search by one transition and returns the new state.
// Calling Step on a finished search is a no-op.
func (s *Searcher) Step() State {
	switch s.state {
	case StateUnstarted:
		s.frontier.Seed(s.start)
		s.state = StateRunning
		s.afterFinalize(s.start)
	case StateRunning:
		current, _ := s.frontier.Current()
		for _, n := range s.g.OpenNeighbors(current) {
			s.frontier.Offer(n, current)
		}
		next, ok := s.frontier.PopBestAndFinalize()
		if !ok {
			s.state = StateFailed
			s.log.Info("no path",
				zap.Int("expanded", s.frontier.ClosedLen()),
				zap.Int("steps", s.steps+1))
			break
		}
		s.afterFinalize(next)
	default:
		return s.state
	}
	s.steps++

	return s.state
}

// afterFinalize runs the hook and checks the goal condition by id.
func (s *Searcher) afterFinalize(c *grid.Cell) {
	s.log.Debug("finalized",
		zap.Int("x", c.X()),
		zap.Int("y", c.Y()),
		zap.Float64("g", c.GCost()),
		zap.Float64("h", c.HCost()),
		zap.Int("open", s.frontier.OpenLen()))
	s.opts.OnFinalize(c)

	if SameCell(c, s.goal) {
		s.path = s.reconstruct()
		s.state = StateSucceeded
		s.log.Info("path found",
			zap.Int("length", len(s.path)),
			zap.Float64("cost", s.goal.GCost()),
			zap.Int("expanded", s.frontier.ClosedLen()))
	}
}

// reconstruct walks predecessor ids from the goal back to the start,
// marks every cell OnPath and returns the points start-first.
// Predecessors always point at earlier-finalized cells, so the walk ends
// at the start; the length bound only guards against a corrupted grid.
func (s *Searcher) reconstruct() []grid.Point {
	path := make([]grid.Point, 0, int(s.goal.GCost()/StepCost)+1)
	c := s.goal
	for i := 0; i < s.g.Len(); i++ {
		c.SetKind(grid.OnPath)
		path = append(path, c.Point())
		prev, ok := c.Predecessor()
		if !ok {
			break
		}
		c = s.g.Cell(prev)
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	return path
}

// Run steps until the search is done and returns its Result.
// Each cell is finalized at most once, so Run performs at most W×H+1 steps.
func (s *Searcher) Run() Result {
	for !s.state.Done() {
		s.Step()
	}
	return s.Result()
}

// Result reports the outcome so far. Path is nil unless the search succeeded.
func (s *Searcher) Result() Result {
	res := Result{
		Expanded: s.frontier.ClosedLen(),
		State:    s.state,
		Found:    s.state == StateSucceeded,
	}
	if res.Found {
		res.Path = append([]grid.Point(nil), s.path...)
		res.Cost = s.goal.GCost()
	}
	return res
}

// Snapshot captures the open set, the closed sequence and the current cell.
func (s *Searcher) Snapshot() Snapshot {
	snap := Snapshot{Step: s.steps, State: s.state}
	if c, ok := s.frontier.Current(); ok {
		snap.Current = c.Point()
	}
	snap.Open = s.points(s.frontier.OpenIDs())
	snap.Closed = s.points(s.frontier.ClosedIDs())

	return snap
}

func (s *Searcher) points(ids []int) []grid.Point {
	res := make([]grid.Point, len(ids))
	for i, id := range ids {
		res[i] = s.g.Cell(id).Point()
	}
	return res
}

// Search runs A* on g to completion.
// A missing path is reported as Result{State: StateFailed}, not an error;
// errors are reserved for configuration problems (ErrConfiguration).
func Search(g *grid.Grid, opts ...Option) (Result, error) {
	s, err := NewSearcher(g, opts...)
	if err != nil {
		return Result{}, err
	}
	return s.Run(), nil
}
