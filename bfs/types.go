// Package bfs provides tunable options and error definitions
// for breadth‐first search over a grid.Grid.
package bfs

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/gridpath/grid"
)

// Sentinel errors for BFS execution.
var (
	// ErrGridNil is returned if a nil grid pointer is passed.
	ErrGridNil = errors.New("bfs: grid is nil")

	// ErrBlockedStart is returned when the start cell is an obstacle.
	ErrBlockedStart = errors.New("bfs: start cell is an obstacle")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("bfs: invalid option supplied")

	// ErrNoPath is returned by PathTo and ShortestSteps for unreachable cells.
	ErrNoPath = errors.New("bfs: no path")
)

// Option configures BFS behavior via functional arguments.
// If an Option is invalid (e.g. negative depth), it will be recorded
// internally and surfaced as ErrOptionViolation when BFS is invoked.
type Option func(*Options)

// Options holds parameters and callbacks to customize BFS execution.
type Options struct {
	// OnVisit is called when visiting a cell. If it returns an error,
	// BFS aborts and propagates that error.
	OnVisit func(c *grid.Cell, depth int) error

	// MaxDepth, if > 0, stops exploring beyond this depth.
	// A value of 0 explicitly disables any depth limit.
	MaxDepth int

	// internal error recorded during option parsing
	err error
}

// DefaultOptions returns Options with no depth limit and a no-op hook.
func DefaultOptions() Options {
	return Options{
		OnVisit:  func(*grid.Cell, int) error { return nil },
		MaxDepth: 0,
	}
}

// WithOnVisit registers a callback to run on visit; returning an error
// from this callback stops the BFS.
func WithOnVisit(fn func(c *grid.Cell, depth int) error) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnVisit = fn
		}
	}
}

// WithMaxDepth stops the search at the given depth (inclusive).
//
//	d > 0: limit to depth d
//	d == 0: explicit no depth limit
//	d < 0: invalid option → ErrOptionViolation
func WithMaxDepth(d int) Option {
	return func(o *Options) {
		if d < 0 {
			o.err = fmt.Errorf("%w: MaxDepth cannot be negative (%d)", ErrOptionViolation, d)
			return
		}
		o.MaxDepth = d
	}
}

// Result holds the outcome of a BFS traversal:
//   - Order: cell ids visited, in visit sequence.
//   - Depth: map from cell id to its distance (in steps) from the start.
//   - Parent: map from cell id to its predecessor in the BFS tree.
type Result struct {
	Order  []int
	Depth  map[int]int
	Parent map[int]int

	g *grid.Grid
}

// Reached reports whether p was visited.
func (r *Result) Reached(p grid.Point) bool {
	c := r.g.At(p.X, p.Y)
	if c == nil {
		return false
	}
	_, ok := r.Depth[c.ID()]
	return ok
}

// PathTo reconstructs the path from the start cell to dest.
// Returns an error wrapping ErrNoPath if dest was not reached.
func (r *Result) PathTo(dest grid.Point) ([]grid.Point, error) {
	if !r.Reached(dest) {
		return nil, fmt.Errorf("%w to %s", ErrNoPath, dest)
	}
	// build reversed path
	path := []grid.Point{}
	for cur := r.g.At(dest.X, dest.Y).ID(); ; {
		path = append(path, r.g.Cell(cur).Point())
		prev, ok := r.Parent[cur]
		if !ok {
			break
		}
		cur = prev
	}
	// reverse to get start → dest
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	return path, nil
}
