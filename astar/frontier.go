package astar

import (
	"container/heap"
	"sort"

	mapset "github.com/deckarep/golang-set"

	"github.com/katalvlaran/gridpath/grid"
)

// Frontier owns the open set (discovered, not yet finalized) and the closed
// sequence (finalized, in order). A cell is in at most one of the two.
type Frontier struct {
	g      *grid.Grid
	target grid.Point

	open  openQueue
	items map[int]*openItem // cell id → heap entry

	closed    []int      // finalized ids, oldest first
	finalized mapset.Set // ids in closed
}

// NewFrontier returns an empty frontier over g ranking cells against target.
func NewFrontier(g *grid.Grid, target grid.Point) *Frontier {
	f := &Frontier{
		g:         g,
		target:    target,
		open:      openQueue{g: g},
		items:     make(map[int]*openItem),
		closed:    make([]int, 0, g.Len()),
		finalized: mapset.NewThreadUnsafeSet(),
	}
	heap.Init(&f.open)

	return f
}

// Offer relaxes candidate through current, which must already be finalized.
// On first discovery, or when the route through current is strictly
// cheaper than the recorded one, candidate takes current as predecessor
// and its costs are rewritten; the open set is then updated.
// Finalized candidates and routes that are not strictly better are ignored,
// so offering the same pair twice changes nothing.
// Returns true if candidate was inserted or improved.
func (f *Frontier) Offer(candidate, current *grid.Cell) bool {
	id := candidate.ID()
	if f.IsFinalized(id) {
		return false
	}
	tentative := current.GCost() + StepCost
	if _, seen := candidate.Predecessor(); seen && tentative >= candidate.GCost() {
		return false
	}

	candidate.SetPredecessor(current.ID())
	candidate.SetGCost(tentative)
	candidate.SetHeuristic(Heuristic(candidate.Point(), f.target))

	if it, ok := f.items[id]; ok {
		heap.Fix(&f.open, it.index)
	} else {
		it = &openItem{id: id}
		heap.Push(&f.open, it)
		f.items[id] = it
	}

	return true
}

// Seed finalizes c directly as the root of the search: gCost 0, no
// predecessor, hCost evaluated against the target.
func (f *Frontier) Seed(c *grid.Cell) {
	c.SetGCost(0)
	c.SetHeuristic(Heuristic(c.Point(), f.target))
	c.SetPredecessor(grid.NoPredecessor)
	f.finalize(c)
}

// PopBestAndFinalize removes the best open cell (see Better), marks it
// Finalized and appends it to the closed sequence.
// ok is false when the open set is empty.
func (f *Frontier) PopBestAndFinalize() (c *grid.Cell, ok bool) {
	if f.open.Len() == 0 {
		return nil, false
	}
	it := heap.Pop(&f.open).(*openItem)
	delete(f.items, it.id)
	c = f.g.Cell(it.id)
	f.finalize(c)

	return c, true
}

func (f *Frontier) finalize(c *grid.Cell) {
	c.SetKind(grid.Finalized)
	f.closed = append(f.closed, c.ID())
	f.finalized.Add(c.ID())
}

// Current returns the most recently finalized cell.
func (f *Frontier) Current() (*grid.Cell, bool) {
	if len(f.closed) == 0 {
		return nil, false
	}
	return f.g.Cell(f.closed[len(f.closed)-1]), true
}

// InOpen reports whether the cell with the given id is in the open set.
func (f *Frontier) InOpen(id int) bool {
	_, ok := f.items[id]
	return ok
}

// IsFinalized reports whether the cell with the given id was finalized.
func (f *Frontier) IsFinalized(id int) bool {
	return f.finalized.Contains(id)
}

// OpenLen returns the size of the open set.
func (f *Frontier) OpenLen() int { return f.open.Len() }

// ClosedLen returns the number of finalized cells.
func (f *Frontier) ClosedLen() int { return len(f.closed) }

// OpenIDs returns the open-set ids in ascending order.
func (f *Frontier) OpenIDs() []int {
	ids := make([]int, 0, len(f.items))
	for id := range f.items {
		ids = append(ids, id)
	}
	sort.Ints(ids)
	return ids
}

// ClosedIDs returns a copy of the closed sequence in finalization order.
func (f *Frontier) ClosedIDs() []int {
	return append([]int(nil), f.closed...)
}

// openItem is one heap entry; index is maintained by openQueue.Swap so the
// entry can be re-sifted with heap.Fix after a relaxation.
type openItem struct {
	id    int
	index int
}

// openQueue is a min-heap of open cells ordered by Better.
type openQueue struct {
	g     *grid.Grid
	items []*openItem
}

func (q openQueue) Len() int { return len(q.items) }

func (q openQueue) Less(i, j int) bool {
	return Better(q.g.Cell(q.items[i].id), q.g.Cell(q.items[j].id))
}

func (q openQueue) Swap(i, j int) {
	q.items[i], q.items[j] = q.items[j], q.items[i]
	q.items[i].index = i
	q.items[j].index = j
}

func (q *openQueue) Push(x any) {
	it := x.(*openItem)
	it.index = len(q.items)
	q.items = append(q.items, it)
}

func (q *openQueue) Pop() any {
	old := q.items
	n := len(old)
	it := old[n-1]
	old[n-1] = nil
	it.index = -1
	q.items = old[:n-1]

	return it
}
