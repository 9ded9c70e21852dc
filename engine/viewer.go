package engine

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
)

// Viewer renders an Engine's grid with ebiten: an Update-advances,
// Draw-paints game loop over a palette of the built-in mover, generator
// and rotator kinds, driven by Engine.Tick. Kinds without a palette entry
// (a wall, for instance) are not drawn unless SetColor adds one.
type Viewer struct {
	eng          *Engine
	pixelScale   int
	ticksPerDraw int
	frame        int
	palette      map[CellKind]color.Color
	background   color.Color
}

// NewViewer returns a Viewer over eng. ticksPerDraw controls how many
// render frames elapse between simulation ticks; the default of 2 keeps
// a GUI window legible at 60Hz without slowing the simulation loop
// itself.
func NewViewer(eng *Engine, pixelScale, ticksPerDraw int) *Viewer {
	if pixelScale < 1 {
		pixelScale = 5
	}
	if ticksPerDraw < 1 {
		ticksPerDraw = 2
	}
	b := eng.Builtins()
	return &Viewer{
		eng:          eng,
		pixelScale:   pixelScale,
		ticksPerDraw: ticksPerDraw,
		background:   color.RGBA{20, 40, 90, 255},
		palette: map[CellKind]color.Color{
			b.Mover:      color.RGBA{255, 230, 120, 255},
			b.Generator:  color.RGBA{120, 220, 255, 255},
			b.RotatorCW:  color.RGBA{120, 255, 150, 255},
			b.RotatorCCW: color.RGBA{220, 120, 255, 255},
		},
	}
}

// SetColor overrides (or adds) the display color for a cell kind, e.g.
// for a "wall" kind registered outside of Bootstrap.
func (v *Viewer) SetColor(id CellKind, c color.Color) { v.palette[id] = c }

func (v *Viewer) Update() error {
	if v.frame%v.ticksPerDraw != 0 {
		v.frame++
		return nil
	}
	v.eng.Tick()
	v.frame++
	return nil
}

func (v *Viewer) Draw(screen *ebiten.Image) {
	screen.Fill(v.background)
	g := v.eng.Grid()
	for y := 0; y < g.Height(); y++ {
		for x := 0; x < g.Width(); x++ {
			cell := g.Get(x, y)
			if cell == nil || cell.ID == Empty {
				continue
			}
			c, ok := v.palette[cell.ID]
			if !ok {
				continue
			}
			for dy := 0; dy < v.pixelScale; dy++ {
				for dx := 0; dx < v.pixelScale; dx++ {
					screen.Set(x*v.pixelScale+dx, y*v.pixelScale+dy, c)
				}
			}
		}
	}
}

func (v *Viewer) Layout(outW, outH int) (int, int) {
	g := v.eng.Grid()
	return g.Width() * v.pixelScale, g.Height() * v.pixelScale
}

// RunGUI opens an ebiten window and runs the viewer's game loop until the
// window is closed.
func RunGUI(eng *Engine, pixelScale, ticksPerDraw int, title string) error {
	v := NewViewer(eng, pixelScale, ticksPerDraw)
	g := eng.Grid()
	ebiten.SetWindowSize(g.Width()*v.pixelScale, g.Height()*v.pixelScale)
	ebiten.SetWindowTitle(title)
	return ebiten.RunGame(v)
}
