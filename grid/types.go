package grid

import (
	"errors"
	"fmt"
	"math"
)

// Sentinel errors for grid construction and lookup.
var (
	// ErrEmptyGrid indicates the grid has no rows or no columns.
	ErrEmptyGrid = errors.New("grid: grid must have at least one row and one column")
	// ErrNonRectangular indicates rows of differing lengths.
	ErrNonRectangular = errors.New("grid: all rows must have the same length")
	// ErrOutOfBounds indicates a coordinate outside the grid.
	ErrOutOfBounds = errors.New("grid: coordinate out of bounds")
	// ErrInvalidKind indicates a value that is not a known Kind.
	ErrInvalidKind = errors.New("grid: invalid cell kind")
)

// Kind classifies a cell. Open and Obstacle describe terrain; Finalized
// and OnPath are annotations written by the search.
// The numeric values match the digits of the text format.
type Kind int

const (
	// Open is traversable terrain.
	Open Kind = 0
	// Finalized marks a cell the search has closed.
	Finalized Kind = 1
	// OnPath marks a cell on the reconstructed path.
	OnPath Kind = 3
	// Obstacle is blocked terrain.
	Obstacle Kind = 5
)

// Valid reports whether k is one of the four known kinds.
func (k Kind) Valid() bool {
	switch k {
	case Open, Finalized, OnPath, Obstacle:
		return true
	}
	return false
}

// String returns a human-readable kind name.
func (k Kind) String() string {
	switch k {
	case Open:
		return "open"
	case Finalized:
		return "finalized"
	case OnPath:
		return "path"
	case Obstacle:
		return "obstacle"
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

// NoPredecessor is the predecessor id of a cell nobody has reached yet.
const NoPredecessor = -1

// Point is a grid coordinate. X grows to the right, Y grows downwards.
type Point struct {
	X int `json:"x"`
	Y int `json:"y"`
}

// String formats p as "(x,y)".
func (p Point) String() string {
	return fmt.Sprintf("(%d,%d)", p.X, p.Y)
}

// Cell is one arena entry of a Grid.
// Position and id never change after the grid is built; Kind, costs and
// predecessor are search state.
type Cell struct {
	x, y int
	id   int
	kind Kind
	g, h float64 // g: cost from start, h: heuristic to goal (+Inf = never evaluated)
	pred int     // predecessor id or NoPredecessor
}

func newCell(x, y, id int, kind Kind) Cell {
	return Cell{x: x, y: y, id: id, kind: kind, h: math.Inf(1), pred: NoPredecessor}
}

// X returns the column of c.
func (c *Cell) X() int { return c.x }

// Y returns the row of c.
func (c *Cell) Y() int { return c.y }

// ID returns the row-major id x + y*Width.
func (c *Cell) ID() int { return c.id }

// Point returns the coordinate of c.
func (c *Cell) Point() Point { return Point{X: c.x, Y: c.y} }

// Kind returns the current kind of c.
func (c *Cell) Kind() Kind { return c.kind }

// SetKind overwrites the kind of c.
func (c *Cell) SetKind(k Kind) { c.kind = k }

// Walkable reports whether the search may expand into c.
func (c *Cell) Walkable() bool { return c.kind == Open }

// GCost returns the best known cost from the start to c.
func (c *Cell) GCost() float64 { return c.g }

// SetGCost records the best known cost from the start to c.
func (c *Cell) SetGCost(v float64) { c.g = v }

// HCost returns the heuristic estimate from c to the goal, or +Inf if it
// was never evaluated.
func (c *Cell) HCost() float64 { return c.h }

// SetHeuristic records the heuristic estimate from c to the goal.
func (c *Cell) SetHeuristic(v float64) { c.h = v }

// Evaluated reports whether the heuristic of c has been set.
func (c *Cell) Evaluated() bool { return !math.IsInf(c.h, 1) }

// FCost returns gCost + hCost. It is +Inf for a cell never evaluated.
func (c *Cell) FCost() float64 { return c.g + c.h }

// Predecessor returns the id of the cell through which the best known
// route reaches c. ok is false when c has none.
func (c *Cell) Predecessor() (id int, ok bool) {
	return c.pred, c.pred != NoPredecessor
}

// SetPredecessor points c at the cell with the given id.
func (c *Cell) SetPredecessor(id int) { c.pred = id }

// String describes c for logs and test failures.
func (c *Cell) String() string {
	return fmt.Sprintf("Cell(%d,%d) %s", c.x, c.y, c.kind)
}

// resetSearch clears search state, keeping terrain.
func (c *Cell) resetSearch() {
	if c.kind == Finalized || c.kind == OnPath {
		c.kind = Open
	}
	c.g = 0
	c.h = math.Inf(1)
	c.pred = NoPredecessor
}
