//go:build ebiten

package ui

import (
	"image/color"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"lunar-lander/internal/landing"
	"lunar-lander/internal/render"
	"lunar-lander/internal/sims/lander"
)

// Overlay draws the collision geometry on top of the view. D toggles it.
type Overlay struct {
	world *lander.World
	scale int
	show  bool
}

// NewOverlay constructs a new overlay instance.
func NewOverlay(w *lander.World, scale int) *Overlay {
	return &Overlay{world: w, scale: max(scale, 1)}
}

// Update handles the toggle key.
func (o *Overlay) Update() {
	if inpututil.IsKeyJustPressed(ebiten.KeyD) {
		o.show = !o.show
	}
}

// Draw renders zone bounds and the craft's leg and body lines.
func (o *Overlay) Draw(screen *ebiten.Image) {
	if !o.show {
		return
	}
	h := o.world.Size().H
	if t := o.world.Terrain(); t != nil {
		for _, z := range t.Zones {
			top := t.Heights[z.Start]
			for _, x := range []float64{float64(z.Start), float64(z.End)} {
				o.stroke(screen, x, top, x, top+40, h, zoneEdgeColor)
			}
		}
	}

	f := landing.FootprintOf(o.world.Pose())
	col := legColor
	if o.world.Report().LegHit {
		col = hitColor
	}
	o.stroke(screen, f.LeftLeg.Lo, f.LegBottom, f.LeftLeg.Hi, f.LegBottom, h, col)
	o.stroke(screen, f.RightLeg.Lo, f.LegBottom, f.RightLeg.Hi, f.LegBottom, h, col)

	col = bodyColor
	if o.world.Report().BodyHit {
		col = hitColor
	}
	o.stroke(screen, f.Body.Lo, f.BodyBottom, f.Body.Hi, f.BodyBottom, h, col)
}

func (o *Overlay) stroke(screen *ebiten.Image, x0, y0, x1, y1 float64, screenH int, col color.Color) {
	seg := render.Segment{
		A: mgl64.Vec2{x0, render.ScreenY(y0, screenH)},
		B: mgl64.Vec2{x1, render.ScreenY(y1, screenH)},
	}
	render.StrokeSegment(screen, seg, o.scale, col)
}

var (
	zoneEdgeColor = color.RGBA{R: 90, G: 200, B: 255, A: 200}
	legColor      = color.RGBA{R: 80, G: 255, B: 120, A: 255}
	bodyColor     = color.RGBA{R: 255, G: 200, B: 80, A: 255}
	hitColor      = color.RGBA{R: 255, G: 60, B: 60, A: 255}
)
