package engine

// dispatch applies a subtick's update callback to cell if its kind is
// among ids and it has not already fired this tick. (sx, sy) is the
// coordinate the dispatched cell was found at; (ax, ay) is the anchor
// coordinate the callback should treat as "the cell being updated". For
// every mode except neighbour these are identical.
func dispatch(kinds *KindRegistry, ids []CellKind, cell *Cell, sx, sy, ax, ay int, turbo bool) {
	if cell == nil {
		return
	}
	if !turbo && cell.Updated {
		return
	}
	matched := false
	for _, id := range ids {
		if id == cell.ID {
			matched = true
			break
		}
	}
	if !matched {
		return
	}
	table := kinds.GetTable(cell)
	if table == nil || table.Update == nil {
		return
	}
	if !turbo {
		cell.Updated = true
	}
	table.Update(cell, sx, sy, ax, ay, table.Payload)
}

// tickedColumn visits column x top to bottom, dispatching cells whose
// kind is in ids. This is the unit of work both the serial ticked
// traversal and a parallel ticked phase run, one call per column.
func tickedColumn(g Grid, kinds *KindRegistry, ids []CellKind, turbo bool, x int) {
	for y := 0; y < g.Height(); y++ {
		if !g.CheckChunk(x, y) {
			y = g.ChunkOff(y, +1) - 1
			continue
		}
		dispatch(kinds, ids, g.Get(x, y), x, y, x, y, turbo)
	}
}

// RunTicked performs the full single-threaded ticked traversal: every
// column, ascending, left to right (spec.md §4.2).
func RunTicked(g Grid, kinds *KindRegistry, s *Subtick, turbo bool) {
	for x := 0; x < g.Width(); x++ {
		tickedColumn(g, kinds, s.ids, turbo, x)
	}
}

// trackedRightRow visits row y from the right edge inward, dispatching
// cells facing Right: the direction a right-facing mover needs its
// neighbour ahead of it resolved first.
func trackedRightRow(g Grid, kinds *KindRegistry, ids []CellKind, turbo bool, y int) {
	for x := g.Width() - 1; x >= 0; x-- {
		if !g.CheckChunk(x, y) {
			x = g.ChunkOff(x, 0)
			continue
		}
		cell := g.Get(x, y)
		if cell == nil || cell.Rotation != Right {
			continue
		}
		dispatch(kinds, ids, cell, x, y, x, y, turbo)
	}
}

// trackedLeftRow mirrors trackedRightRow for Left-facing cells.
func trackedLeftRow(g Grid, kinds *KindRegistry, ids []CellKind, turbo bool, y int) {
	for x := 0; x < g.Width(); x++ {
		if !g.CheckChunk(x, y) {
			x = g.ChunkOff(x, +1) - 1
			continue
		}
		cell := g.Get(x, y)
		if cell == nil || cell.Rotation != Left {
			continue
		}
		dispatch(kinds, ids, cell, x, y, x, y, turbo)
	}
}

// trackedDownColumn visits column x from the bottom edge inward,
// dispatching Down-facing cells.
func trackedDownColumn(g Grid, kinds *KindRegistry, ids []CellKind, turbo bool, x int) {
	for y := g.Height() - 1; y >= 0; y-- {
		if !g.CheckChunk(x, y) {
			y = g.ChunkOff(y, 0)
			continue
		}
		cell := g.Get(x, y)
		if cell == nil || cell.Rotation != Down {
			continue
		}
		dispatch(kinds, ids, cell, x, y, x, y, turbo)
	}
}

// trackedUpColumn mirrors trackedDownColumn for Up-facing cells.
func trackedUpColumn(g Grid, kinds *KindRegistry, ids []CellKind, turbo bool, x int) {
	for y := 0; y < g.Height(); y++ {
		if !g.CheckChunk(x, y) {
			y = g.ChunkOff(y, +1) - 1
			continue
		}
		cell := g.Get(x, y)
		if cell == nil || cell.Rotation != Up {
			continue
		}
		dispatch(kinds, ids, cell, x, y, x, y, turbo)
	}
}

// RunTracked performs the full single-threaded tracked traversal: four
// sub-passes, one per rotation, in the fixed order {right, left, up,
// down} (spec.md §4.2). Right/left are row-shaped, up/down column-shaped.
func RunTracked(g Grid, kinds *KindRegistry, s *Subtick, turbo bool) {
	for y := 0; y < g.Height(); y++ {
		trackedRightRow(g, kinds, s.ids, turbo, y)
	}
	for y := 0; y < g.Height(); y++ {
		trackedLeftRow(g, kinds, s.ids, turbo, y)
	}
	for x := 0; x < g.Width(); x++ {
		trackedUpColumn(g, kinds, s.ids, turbo, x)
	}
	for x := 0; x < g.Width(); x++ {
		trackedDownColumn(g, kinds, s.ids, turbo, x)
	}
}

var neighbourOffsets = [4][2]int{
	{-1, 0},
	{1, 0},
	{0, -1},
	{0, 1},
}

// neighbourRow inspects the four orthogonal neighbours of every cell in
// row y, dispatching on the neighbour's kind with the neighbour as source
// and (x, y) as anchor. Neighbour mode never consults the Updated guard:
// a rotator cell legitimately rotates more than one anchor per tick.
func neighbourRow(g Grid, kinds *KindRegistry, ids []CellKind, y int) {
	for x := 0; x < g.Width(); x++ {
		if !g.CheckChunk(x, y) {
			x = g.ChunkOff(x, +1) - 1
			continue
		}
		for _, off := range neighbourOffsets {
			cx, cy := x+off[0], y+off[1]
			cell := g.Get(cx, cy)
			if cell == nil {
				continue
			}
			dispatch(kinds, ids, cell, cx, cy, x, y, true)
		}
	}
}

// RunNeighbour performs the full single-threaded neighbour traversal
// (spec.md §4.2). The `true` turbo argument to dispatch above is
// intentional, not a shortcut: neighbour-mode callbacks act on the
// anchor, not the source, so the per-cell Updated guard does not apply to
// them at all.
func RunNeighbour(g Grid, kinds *KindRegistry, s *Subtick) {
	for y := 0; y < g.Height(); y++ {
		neighbourRow(g, kinds, s.ids, y)
	}
}

// runOrder applies a single custom-mode order record across the grid,
// filtering dispatched cells to the rotations it lists.
func runOrder(g Grid, kinds *KindRegistry, ids []CellKind, turbo bool, order OrderRecord) {
	allowed := func(r Rotation) bool {
		if len(order.Rotations) == 0 {
			return true
		}
		for _, want := range order.Rotations {
			if want == r {
				return true
			}
		}
		return false
	}
	switch order.Order {
	case OrderTicked:
		for x := 0; x < g.Width(); x++ {
			for y := 0; y < g.Height(); y++ {
				cell := g.Get(x, y)
				if cell == nil || !allowed(cell.Rotation) {
					continue
				}
				dispatch(kinds, ids, cell, x, y, x, y, turbo)
			}
		}
	case OrderTrackedRight:
		for y := 0; y < g.Height(); y++ {
			for x := g.Width() - 1; x >= 0; x-- {
				cell := g.Get(x, y)
				if cell == nil || !allowed(cell.Rotation) {
					continue
				}
				dispatch(kinds, ids, cell, x, y, x, y, turbo)
			}
		}
	case OrderTrackedLeft:
		for y := 0; y < g.Height(); y++ {
			for x := 0; x < g.Width(); x++ {
				cell := g.Get(x, y)
				if cell == nil || !allowed(cell.Rotation) {
					continue
				}
				dispatch(kinds, ids, cell, x, y, x, y, turbo)
			}
		}
	case OrderTrackedUp:
		for x := 0; x < g.Width(); x++ {
			for y := 0; y < g.Height(); y++ {
				cell := g.Get(x, y)
				if cell == nil || !allowed(cell.Rotation) {
					continue
				}
				dispatch(kinds, ids, cell, x, y, x, y, turbo)
			}
		}
	case OrderTrackedDown:
		for x := 0; x < g.Width(); x++ {
			for y := g.Height() - 1; y >= 0; y-- {
				cell := g.Get(x, y)
				if cell == nil || !allowed(cell.Rotation) {
					continue
				}
				dispatch(kinds, ids, cell, x, y, x, y, turbo)
			}
		}
	}
}

// RunCustom applies each order record of a custom-mode subtick in turn
// (spec.md §4.2): no cell is dispatched twice within a single record, and
// records run in the order the subtick declared them.
func RunCustom(g Grid, kinds *KindRegistry, s *Subtick, turbo bool) {
	cm, ok := s.mode.(CustomMode)
	if !ok {
		return
	}
	for _, order := range cm.Orders {
		runOrder(g, kinds, s.ids, turbo, order)
	}
}
