// Package grid holds the fixed-size 2D arena of cells that the
// A* search runs on.
//
// What:
//
//   - Grid is a rectangular Width×Height array of Cells, addressed by a
//     row-major id (x + y*Width). The id, not the pointer, is a cell's
//     identity.
//   - Cell pairs an immutable position with mutable search state: Kind,
//     gCost, hCost and a predecessor id.
//   - Neighbors4 returns the in-bounds orthogonal neighbours in the fixed
//     order up, down, left, right. There is no wraparound and no diagonal.
//
// Kinds:
//
//   - Open      (0) traversable terrain.
//   - Finalized (1) annotation: the search closed this cell.
//   - OnPath    (3) annotation: the cell lies on the returned path.
//   - Obstacle  (5) blocked terrain.
//
// Complexity:
//
//   - New, FromKinds, Reset, Clone: O(W×H) time and memory.
//   - Cell, At, Neighbors4, OpenNeighbors: O(1).
//
// Errors:
//
//   - ErrEmptyGrid: zero rows or zero columns.
//   - ErrNonRectangular: rows of differing lengths.
//   - ErrOutOfBounds: a coordinate outside the grid.
//   - ErrInvalidKind: a value that is not one of the four kinds.
//
// A Grid is not safe for concurrent mutation. Concurrent searches must each
// use their own Grid (see Clone).
package grid
