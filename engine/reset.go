package engine

// resetColumn clears the ephemeral per-cell state of every cell in column
// x: the Updated flag, the interpolation caches (LX, LY, RotData) and the
// optimization scratch bytes (spec.md §4.4).
func resetColumn(g Grid, x int) {
	for y := 0; y < g.Height(); y++ {
		if !g.CheckChunk(x, y) {
			y = g.ChunkOff(y, +1) - 1
			continue
		}
		cell := g.Get(x, y)
		if cell == nil {
			continue
		}
		cell.Updated = false
		cell.LX, cell.LY = x, y
		cell.RotData = cell.Rotation
		for i := range cell.Opt {
			cell.Opt[i] = 0
		}
	}
}

// Reset performs the per-tick reset of spec.md §4.4, parallelized
// identically to a spacing=0 ticked subtick (one task per active column)
// when the grid is large enough and a worker pool is available; turbo
// mode skips the reset entirely, since it never consults Updated.
func Reset(g Grid, pool WorkerPool, singleThreaded, turbo, extraGraphicsInfo bool, hook GraphicsHook) {
	if turbo {
		return
	}
	if extraGraphicsInfo && hook != nil {
		hook.ResetTrashedCount()
	}

	if !singleThreaded && !pool.Disabled() && g.Width()*g.Height() >= ParallelThreshold {
		cols := activeStride(g.Width(), 0, 1, g.CheckColumn)
		pool.WaitForTasks(len(cols), func(i int) {
			resetColumn(g, cols[i])
		})
		return
	}

	// Serial path: skip every column with no activity.
	for x := 0; x < g.Width(); x++ {
		if !g.CheckColumn(x) {
			continue
		}
		resetColumn(g, x)
	}
}
