// Package bfs provides breadth-first search over a grid.Grid,
// returning unweighted shortest-step distances, parent links, and visit order.
package bfs

import (
	"fmt"

	mapset "github.com/deckarep/golang-set"

	"github.com/katalvlaran/gridpath/grid"
)

// queueItem pairs a cell id with its BFS depth.
type queueItem struct {
	id    int
	depth int
}

// walker encapsulates mutable BFS state.
type walker struct {
	g       *grid.Grid
	opts    Options
	queue   []queueItem
	visited mapset.Set
	res     *Result
}

// BFS runs breadth-first search on g starting from start,
// applying any number of functional Options. The grid is not modified.
// Returns ErrGridNil, grid.ErrOutOfBounds or ErrBlockedStart for invalid
// input, ErrOptionViolation for bad options, or any OnVisit hook error.
func BFS(g *grid.Grid, start grid.Point, opts ...Option) (*Result, error) {
	if g == nil {
		return nil, ErrGridNil
	}
	// Build options and catch any invalid ones immediately
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}

	// Validate start cell
	s, err := g.Lookup(start)
	if err != nil {
		return nil, fmt.Errorf("bfs: start: %w", err)
	}
	if s.Kind() == grid.Obstacle {
		return nil, ErrBlockedStart
	}

	n := g.Len()
	w := &walker{
		g:       g,
		opts:    o,
		queue:   make([]queueItem, 0, n),
		visited: mapset.NewThreadUnsafeSet(),
		res: &Result{
			Order:  make([]int, 0, n),
			Depth:  make(map[int]int, n),
			Parent: make(map[int]int, n),
			g:      g,
		},
	}

	// Seed queue with start cell (no parent)
	w.enqueue(s.ID(), 0, grid.NoPredecessor)

	return w.res, w.loop()
}

// ShortestSteps returns the number of moves on a shortest 4-directional
// path from start to goal, or an error wrapping ErrNoPath.
func ShortestSteps(g *grid.Grid, start, goal grid.Point) (int, error) {
	res, err := BFS(g, start)
	if err != nil {
		return 0, err
	}
	if !res.Reached(goal) {
		return 0, fmt.Errorf("%w from %s to %s", ErrNoPath, start, goal)
	}
	return res.Depth[g.At(goal.X, goal.Y).ID()], nil
}

// enqueue marks id visited at depth d, records its parent,
// and adds it to the queue.
func (w *walker) enqueue(id, d, parent int) {
	w.visited.Add(id)
	w.res.Depth[id] = d
	if parent != grid.NoPredecessor {
		w.res.Parent[id] = parent
	}
	w.queue = append(w.queue, queueItem{id: id, depth: d})
}

// loop processes the queue until empty or a hook error.
func (w *walker) loop() error {
	for len(w.queue) > 0 {
		item := w.queue[0]
		w.queue = w.queue[1:]

		c := w.g.Cell(item.id)
		w.res.Order = append(w.res.Order, item.id)
		if err := w.opts.OnVisit(c, item.depth); err != nil {
			return err
		}

		nextDepth := item.depth + 1
		if w.opts.MaxDepth > 0 && nextDepth > w.opts.MaxDepth {
			continue
		}
		for _, nbr := range w.g.Neighbors4(c) {
			if nbr.Kind() == grid.Obstacle || w.visited.Contains(nbr.ID()) {
				continue
			}
			w.enqueue(nbr.ID(), nextDepth, item.id)
		}
	}
	return nil
}
