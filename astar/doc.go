// Package astar finds a shortest 4-directional path between two cells of a
// grid.Grid using A* with a Euclidean-distance heuristic.
//
// A search is a small state machine:
//
//	Unstarted ──Step──▶ Running ──Step…──▶ Succeeded
//	                              └───────▶ Failed
//
// The first Step finalizes the start cell. Every later Step expands the
// open neighbours of the most recently finalized cell into the Frontier,
// then finalizes the open cell with the lowest fCost (ties: lower hCost,
// then lower id). The search succeeds when the goal is finalized and fails
// when the open set runs dry first. Failure is a normal outcome, reported
// through Result.State, not through an error.
//
// Complexity:
//
//   - Time:  O(N log N) where N = W×H; each cell is finalized at most once.
//   - Space: O(N) for the open-set heap and the closed sequence.
//
// Costs:
//
//   - gCost: StepCost per move, accumulated from the start.
//   - hCost: Euclidean distance to the goal, +Inf until first evaluated.
//   - fCost: gCost + hCost.
//
// Options:
//
//   - WithStart / WithGoal: override the default top-left / bottom-right corners.
//   - WithOnFinalize: hook called for every finalized cell, in order.
//   - WithLogger: *zap.Logger for debug tracing (default: no-op).
//
// Errors (all satisfy errors.Is(err, ErrConfiguration)):
//
//   - ErrNilGrid: the grid pointer is nil.
//   - ErrObstacleEndpoint: the start or goal cell is not Open.
//   - grid.ErrOutOfBounds: the start or goal lies outside the grid.
//
// The search mutates the grid it runs on: kinds become Finalized/OnPath and
// cells carry costs and predecessors. Use grid.Grid.Reset or Clone between
// runs.
package astar
