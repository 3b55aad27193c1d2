package sim

import (
	"bugsim/internal/hexgrid"
)

// Cell is one grid unit: its food store, the bug occupying it (if any),
// and the single-step distance to the nearest bug used by food dynamics.
type Cell struct {
	Food    int
	Bug     *Bug
	Nearest int // 0 if occupied, -1 if no bug within one step
}

// World is the cell array. Rows are Grid[y][x].
type World struct {
	Grid [][]Cell
	Geo  hexgrid.Grid
}

func newWorld(wx, wy, startFood int) *World {
	grid := make([][]Cell, wy)
	for y := range grid {
		row := make([]Cell, wx)
		for x := range row {
			row[x] = Cell{Food: startFood, Nearest: -1}
		}
		grid[y] = row
	}
	return &World{Grid: grid, Geo: hexgrid.Grid{Width: wx, Height: wy}}
}

func (w *World) cell(p hexgrid.Pos) *Cell {
	return &w.Grid[p.Y][p.X]
}

func (w *World) occupy(p hexgrid.Pos, b *Bug) {
	w.cell(p).Bug = b
}

func (w *World) vacate(p hexgrid.Pos) {
	w.cell(p).Bug = nil
}

// placeBug pushes b into the bug list at the tail and marks its cell
// occupied. Used for both genesis and births; births land after the
// scheduler's current cursor, which is deliberately how the reference
// lets newborns be processed in the same tick (§5).
func (e *Engine) placeBug(b *Bug) {
	e.World.occupy(b.Position(), b)
	if e.tail == nil {
		e.head, e.tail = b, b
	} else {
		e.tail.next = b
		b.prev = e.tail
		e.tail = b
	}
	e.Population++
}

// killBug converts b's remaining weight to food on its cell, releases its
// genes, splices it out of the bug list, and — if b is the bug the
// scheduler has cached as the next one to visit — advances that cursor so
// iteration doesn't dangle on a freed node (§5's kill-during-iteration
// contract).
func (e *Engine) killBug(b *Bug) {
	if b.dead {
		return
	}
	b.dead = true

	c := e.World.cell(b.Position())
	if c.Bug == b {
		c.Food += b.Weight()
		c.Bug = nil
	}

	// The scheduler caches the next bug to visit in e.cursor before
	// dispatching the current one. If the bug being killed is that cached
	// bug (the classic case: it's the losing defender in this step's
	// combat), rewrite the cursor to skip past it now, before splicing
	// destroys b.next.
	if e.cursor == b {
		e.cursor = b.next
	}

	if b.prev != nil {
		b.prev.next = b.next
	} else {
		e.head = b.next
	}
	if b.next != nil {
		b.next.prev = b.prev
	} else {
		e.tail = b.prev
	}
	b.prev, b.next = nil, nil

	e.Population--
}

// ageOfOldest returns today - birthday of the longest-lived living bug.
// Append-on-birth keeps the list in non-decreasing birthday order from the
// head, so the head is always the oldest survivor.
func (e *Engine) ageOfOldest() int {
	if e.head == nil {
		return 0
	}
	return e.Today - e.head.Birthday
}
