package engine

// BuiltinKinds holds the cell kinds Bootstrap registers, so callers can
// place them on a grid without re-interning the names themselves.
type BuiltinKinds struct {
	Mover       CellKind
	Generator   CellKind
	RotatorCW   CellKind
	RotatorCCW  CellKind
}

// genOptBit maps a rotation to the optimization-scratch bit a generator
// facing that rotation uses to memoize "blocked, and so is everyone
// behind me" (spec.md §4.5). Four rotations, four bits.
func genOptBit(r Rotation) int { return int(r) }

func doMover(g Grid) func(cell *Cell, x, y, _ux, _uy int, payload any) {
	return func(cell *Cell, x, y, _ux, _uy int, payload any) {
		g.Push(x, y, cell.Rotation, 0, nil)
	}
}

func doGenerator(g Grid, turbo bool) func(cell *Cell, x, y, _ux, _uy int, payload any) {
	return func(cell *Cell, x, y, _ux, _uy int, payload any) {
		rot := cell.Rotation
		fx, fy := g.FrontX(x, rot), g.FrontY(y, rot)

		if !turbo {
			front := g.Get(fx, fy)
			if front == nil {
				return
			}
			if front.ID != Empty && g.GetOptimization(fx, fy, genOptBit(rot)) {
				g.SetOptimization(x, y, genOptBit(rot), true)
				return
			}
		} else if g.Get(fx, fy) == nil {
			return
		}

		bx, by := g.ShiftX(x, rot, -1), g.ShiftY(y, rot, -1)
		back := g.Get(bx, by)
		if back == nil {
			return
		}
		if !g.CanGenerate(back, bx, by, cell, x, y, rot) {
			return
		}
		if g.Push(fx, fy, rot, 1, back) == 0 && !turbo {
			g.SetOptimization(x, y, genOptBit(rot), true)
		}
	}
}

func doRotatorCW(g Grid) func(cell *Cell, x, y, ux, uy int, payload any) {
	return func(cell *Cell, x, y, ux, uy int, payload any) {
		toRot := g.Get(ux, uy)
		if toRot == nil || toRot.ID == Empty {
			return
		}
		g.Rotate(ux, uy, 1)
	}
}

func doRotatorCCW(g Grid) func(cell *Cell, x, y, ux, uy int, payload any) {
	return func(cell *Cell, x, y, ux, uy int, payload any) {
		toRot := g.Get(ux, uy)
		if toRot == nil || toRot.ID == Empty {
			return
		}
		g.Rotate(ux, uy, -1)
	}
}

// Bootstrap registers the built-in mover, generator and rotator update
// callbacks and wires them into three subticks at the priorities the
// original engine ships: generators (1.0), rotators (2.0), movers (3.0),
// all tracked/neighbour/tracked respectively and parallel-eligible
// (spec.md §4.5). Resulting per-tick order: generate, then rotate, then
// move.
func Bootstrap(reg *Registry, kinds *KindRegistry, g Grid, turbo bool) BuiltinKinds {
	mover := kinds.Intern("mover")
	kinds.NewTable(mover).Update = doMover(g)
	moverSub := reg.AddTracked("movers", 3.0, 0, true)
	reg.AddCell(moverSub, mover)

	generator := kinds.Intern("generator")
	kinds.NewTable(generator).Update = doGenerator(g, turbo)
	generatorSub := reg.AddTracked("generators", 1.0, 0, true)
	reg.AddCell(generatorSub, generator)

	rotatorCW := kinds.Intern("rotator_cw")
	kinds.NewTable(rotatorCW).Update = doRotatorCW(g)
	rotatorCCW := kinds.Intern("rotator_ccw")
	kinds.NewTable(rotatorCCW).Update = doRotatorCCW(g)
	rotatorSub := reg.AddNeighbour("rotators", 2.0, 0, true)
	reg.AddCell(rotatorSub, rotatorCW)
	reg.AddCell(rotatorSub, rotatorCCW)

	return BuiltinKinds{Mover: mover, Generator: generator, RotatorCW: rotatorCW, RotatorCCW: rotatorCCW}
}

// RegisterWall interns a non-pushable "wall" kind. Walls are not part of
// the scheduler's own built-in behaviors (spec.md §4.5 names only mover,
// generator and the two rotators); they exist here because spec.md §8's
// Scenario 1 ("three movers and a wall") needs an immovable obstacle to
// demonstrate blocked pushes, and the grid's push chain (engine/
// chunkgrid.go) already has a Pushable concept to hang one on.
func RegisterWall(kinds *KindRegistry) CellKind {
	wall := kinds.Intern("wall")
	kinds.NewTable(wall).Pushable = false
	return wall
}
