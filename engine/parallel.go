package engine

// ParallelThreshold is the grid-size cutoff below which parallel
// decomposition is overhead-dominated and the scheduler falls back to
// single-threaded dispatch, regardless of a subtick's parallel flag
// (spec.md §4.3).
const ParallelThreshold = 10000

func shouldParallelize(g Grid, pool WorkerPool, singleThreaded bool, subtickParallel bool) bool {
	if !subtickParallel {
		return false
	}
	if singleThreaded {
		return false
	}
	if pool.Disabled() {
		return false
	}
	if g.Width()*g.Height() < ParallelThreshold {
		return false
	}
	return true
}

// RunSubtick dispatches one subtick's traversal, choosing between the
// serial and parallel decomposition of its mode per spec.md §4.3's
// eligibility rules.
func RunSubtick(g Grid, kinds *KindRegistry, pool WorkerPool, s *Subtick, turbo, singleThreaded bool) {
	parallel := shouldParallelize(g, pool, singleThreaded, s.parallel)
	switch s.mode.(type) {
	case TickedMode:
		if parallel {
			runTickedParallel(g, kinds, pool, s, turbo)
		} else {
			RunTicked(g, kinds, s, turbo)
		}
	case TrackedMode:
		if parallel {
			runTrackedParallel(g, kinds, pool, s, turbo)
		} else {
			RunTracked(g, kinds, s, turbo)
		}
	case NeighbourMode:
		if parallel {
			runNeighbourParallel(g, kinds, pool, s)
		} else {
			RunNeighbour(g, kinds, s)
		}
	case CustomMode:
		// Custom orders are user-composed traversal pipelines; spec.md
		// §4.2 only constrains their single-threaded semantics, so
		// custom subticks always run serially here regardless of their
		// parallel flag.
		RunCustom(g, kinds, s, turbo)
	}
}

// activeStride returns the indices in [0, limit) at the given offset and
// stride (1+spacing) for which active(i) holds.
func activeStride(limit, offset, stride int, active func(int) bool) []int {
	var out []int
	for i := offset; i < limit; i += stride {
		if active(i) {
			out = append(out, i)
		}
	}
	return out
}

// runTickedParallel decomposes a ticked subtick into spacing+1 phases,
// each a batch of whole-column tasks at one stride offset (spec.md §4.3's
// Ticked row: task axis x, spacing+1 phases).
func runTickedParallel(g Grid, kinds *KindRegistry, pool WorkerPool, s *Subtick, turbo bool) {
	stride := 1 + s.spacing
	for offset := 0; offset < stride; offset++ {
		cols := activeStride(g.Width(), offset, stride, g.CheckColumn)
		pool.WaitForTasks(len(cols), func(i int) {
			tickedColumn(g, kinds, s.ids, turbo, cols[i])
		})
	}
}

// runNeighbourParallel decomposes a neighbour subtick into spacing+1
// phases of whole-row tasks (spec.md §4.3's Neighbour row: task axis y).
func runNeighbourParallel(g Grid, kinds *KindRegistry, pool WorkerPool, s *Subtick) {
	stride := 1 + s.spacing
	for offset := 0; offset < stride; offset++ {
		rows := activeStride(g.Height(), offset, stride, g.CheckRow)
		pool.WaitForTasks(len(rows), func(i int) {
			neighbourRow(g, kinds, s.ids, rows[i])
		})
	}
}

// runTrackedParallel decomposes a tracked subtick into 2*(spacing+1)
// phases: for every stride offset, a horizontal (row) phase dispatching
// right- then left-facing cells, followed by a vertical (column) phase
// dispatching up- then down-facing cells (spec.md §4.3). The horizontal
// phase always precedes the vertical phase at the same offset, and both
// rotations of a phase share one task so the Updated guard still governs
// them correctly.
func runTrackedParallel(g Grid, kinds *KindRegistry, pool WorkerPool, s *Subtick, turbo bool) {
	stride := 1 + s.spacing
	for offset := 0; offset < stride; offset++ {
		rows := activeStride(g.Height(), offset, stride, g.CheckRow)
		pool.WaitForTasks(len(rows), func(i int) {
			y := rows[i]
			trackedRightRow(g, kinds, s.ids, turbo, y)
			trackedLeftRow(g, kinds, s.ids, turbo, y)
		})

		cols := activeStride(g.Width(), offset, stride, g.CheckColumn)
		pool.WaitForTasks(len(cols), func(i int) {
			x := cols[i]
			trackedUpColumn(g, kinds, s.ids, turbo, x)
			trackedDownColumn(g, kinds, s.ids, turbo, x)
		})
	}
}
