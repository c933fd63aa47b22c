package grid

import "fmt"

// conn4 lists the orthogonal offsets in the order up, down, left, right.
var conn4 = [4][2]int{{0, -1}, {0, 1}, {-1, 0}, {1, 0}}

// Grid is a fixed-size, row-major arena of Cells.
type Grid struct {
	width, height int
	cells         []Cell
}

// New returns a width×height grid with every cell Open.
// Returns ErrEmptyGrid if either dimension is not positive.
// Complexity: O(W×H).
func New(width, height int) (*Grid, error) {
	if width <= 0 || height <= 0 {
		return nil, ErrEmptyGrid
	}
	g := &Grid{width: width, height: height, cells: make([]Cell, width*height)}
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			id := g.index(x, y)
			g.cells[id] = newCell(x, y, id, Open)
		}
	}

	return g, nil
}

// FromKinds builds a grid from rows of kinds, rows[y][x].
// Returns ErrEmptyGrid, ErrNonRectangular, or ErrInvalidKind.
// Complexity: O(W×H).
func FromKinds(rows [][]Kind) (*Grid, error) {
	if len(rows) == 0 || len(rows[0]) == 0 {
		return nil, ErrEmptyGrid
	}
	w := len(rows[0])
	for y, row := range rows {
		if len(row) != w {
			return nil, fmt.Errorf("%w: row %d has %d cells, want %d", ErrNonRectangular, y, len(row), w)
		}
	}
	g, err := New(w, len(rows))
	if err != nil {
		return nil, err
	}
	for y, row := range rows {
		for x, k := range row {
			if !k.Valid() {
				return nil, fmt.Errorf("%w: %d at (%d,%d)", ErrInvalidKind, int(k), x, y)
			}
			g.cells[g.index(x, y)].kind = k
		}
	}

	return g, nil
}

// Width returns the number of columns.
func (g *Grid) Width() int { return g.width }

// Height returns the number of rows.
func (g *Grid) Height() int { return g.height }

// Len returns the number of cells.
func (g *Grid) Len() int { return len(g.cells) }

// InBounds reports whether (x,y) lies within the grid.
func (g *Grid) InBounds(x, y int) bool {
	return x >= 0 && x < g.width && y >= 0 && y < g.height
}

// index maps (x,y) to its row-major id. The caller checks bounds.
func (g *Grid) index(x, y int) int {
	return y*g.width + x
}

// Coordinate converts a row-major id back to (x,y).
func (g *Grid) Coordinate(id int) (x, y int) {
	return id % g.width, id / g.width
}

// Cell returns the cell with the given id. It panics if id is out of range.
func (g *Grid) Cell(id int) *Cell {
	return &g.cells[id]
}

// At returns the cell at (x,y), or nil if (x,y) is out of bounds.
func (g *Grid) At(x, y int) *Cell {
	if !g.InBounds(x, y) {
		return nil
	}
	return &g.cells[g.index(x, y)]
}

// Lookup returns the cell at p or an error wrapping ErrOutOfBounds.
func (g *Grid) Lookup(p Point) (*Cell, error) {
	c := g.At(p.X, p.Y)
	if c == nil {
		return nil, fmt.Errorf("%w: %s in %dx%d grid", ErrOutOfBounds, p, g.width, g.height)
	}
	return c, nil
}

// SetKind changes the kind of the cell at (x,y).
func (g *Grid) SetKind(x, y int, k Kind) error {
	if !k.Valid() {
		return fmt.Errorf("%w: %d", ErrInvalidKind, int(k))
	}
	c, err := g.Lookup(Point{X: x, Y: y})
	if err != nil {
		return err
	}
	c.kind = k

	return nil
}

// Neighbors4 returns the in-bounds orthogonal neighbours of c in the order
// up, down, left, right. Cells on an edge simply have fewer neighbours.
func (g *Grid) Neighbors4(c *Cell) []*Cell {
	res := make([]*Cell, 0, len(conn4))
	for _, d := range conn4 {
		if n := g.At(c.x+d[0], c.y+d[1]); n != nil {
			res = append(res, n)
		}
	}
	return res
}

// OpenNeighbors returns the subset of Neighbors4 whose kind is Open.
func (g *Grid) OpenNeighbors(c *Cell) []*Cell {
	res := make([]*Cell, 0, len(conn4))
	for _, n := range g.Neighbors4(c) {
		if n.Walkable() {
			res = append(res, n)
		}
	}
	return res
}

// Reset turns Finalized and OnPath cells back into Open cells and clears
// all costs and predecessors, so the grid can host another search.
func (g *Grid) Reset() {
	for i := range g.cells {
		g.cells[i].resetSearch()
	}
}

// Clone returns a deep copy of g, search state included.
func (g *Grid) Clone() *Grid {
	cp := &Grid{width: g.width, height: g.height, cells: make([]Cell, len(g.cells))}
	copy(cp.cells, g.cells)
	return cp
}

// Kinds returns a rows[y][x] snapshot of every cell's kind.
func (g *Grid) Kinds() [][]Kind {
	rows := make([][]Kind, g.height)
	for y := 0; y < g.height; y++ {
		rows[y] = make([]Kind, g.width)
		for x := 0; x < g.width; x++ {
			rows[y][x] = g.cells[g.index(x, y)].kind
		}
	}
	return rows
}
