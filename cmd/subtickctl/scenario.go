package main

import "github.com/subtickctl/subtickctl/engine"

// BuildDemoScenario seeds a freshly constructed Engine with a fixed
// layout exercising all three built-in kinds plus a wall, so run/gui/bench
// have something visible to drive without requiring a save-file format
// (spec.md names none). The layout is deterministic rather than randomized:
// bench needs the serial and parallel engines to start from bit-identical
// grids.
func BuildDemoScenario(eng *engine.Engine) {
	g := eng.Grid()
	b := eng.Builtins()
	wall := engine.RegisterWall(eng.Kinds())

	midY := g.Height() / 2
	for x := 2; x < g.Width()-2; x += 7 {
		g.SetCell(x, midY, b.Mover, engine.Right)
	}

	if g.Width() > 10 {
		g.SetCell(g.Width()-3, midY, wall, engine.Right)
	}

	for y := 4; y < g.Height()-4; y += 11 {
		g.SetCell(3, y, b.Generator, engine.Right)
		g.SetCell(4, y, b.Mover, engine.Right)
	}

	for x := 6; x < g.Width()-6; x += 13 {
		for y := 6; y < g.Height()-6; y += 13 {
			g.SetCell(x, y, b.RotatorCW, engine.Right)
		}
	}
}
