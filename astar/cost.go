package astar

import (
	"math"

	"github.com/katalvlaran/gridpath/grid"
)

// Heuristic returns the Euclidean distance from a to target.
// It never overestimates the 4-directional step distance, so A* stays optimal.
func Heuristic(a, target grid.Point) float64 {
	return math.Hypot(float64(a.X-target.X), float64(a.Y-target.Y))
}

// FCost returns c's recorded gCost plus its heuristic distance to target.
func FCost(c *grid.Cell, target grid.Point) float64 {
	return c.GCost() + Heuristic(c.Point(), target)
}

// SameCell reports whether a and b are the same cell, compared by id.
func SameCell(a, b *grid.Cell) bool {
	return a.ID() == b.ID()
}

// Better reports whether a ranks strictly before b in the open set:
// lower fCost, then lower hCost, then lower id.
func Better(a, b *grid.Cell) bool {
	if fa, fb := a.FCost(), b.FCost(); fa != fb {
		return fa < fb
	}
	if a.HCost() != b.HCost() {
		return a.HCost() < b.HCost()
	}
	return a.ID() < b.ID()
}
