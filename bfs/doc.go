// Package bfs provides breadth-first search over a grid.Grid, returning
// unweighted 4-directional step distances, parent links, and visit order.
//
// What
//
//   - Explore cells in non-decreasing step distance from a start cell.
//   - Every non-Obstacle cell is passable, so a grid that already carries
//     Finalized/OnPath annotations from a previous A* run is still valid input.
//   - Returns a Result containing:
//   - Order: visit sequence (cell ids)
//   - Depth: cell id → steps from start
//   - Parent: cell id → predecessor id in the BFS tree
//   - Hooks: OnVisit (may abort with an error).
//   - Honors MaxDepth limit (d>0) or explicit “no limit” (d==0).
//
// Why
//
//   - Brute-force reference for A*: on unit-cost 4-directional grids BFS
//     depth is the true shortest distance.
//   - Reachability checks before running a heavier search.
//
// Determinism
//
//	Neighbours are enqueued in grid.Neighbors4 order (up, down, left, right),
//	so the visit sequence is fully reproducible.
//
// Complexity (N = W×H)
//
//   - Time:   O(N)
//   - Memory: O(N)
package bfs
