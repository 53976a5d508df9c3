//go:build ebiten

package ui

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font/basicfont"

	"lunar-lander/internal/core"
	"lunar-lander/internal/sims/lander"
)

// HUD renders the flight readout over the view and the parameter panel to
// the right of it.
type HUD struct {
	world      *lander.World
	width      int
	panel      *ebiten.Image
	lastHeight int
	showParams bool

	status   Status
	snapshot core.ParameterSnapshot
}

// NewHUD constructs a HUD for the world and a parameter panel of the given width.
func NewHUD(w *lander.World, width int) *HUD {
	return &HUD{world: w, width: max(width, 0), showParams: true}
}

// Update refreshes the cached readouts and toggles the panel on P.
func (h *HUD) Update() {
	if h == nil {
		return
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyP) {
		h.showParams = !h.showParams
	}
	h.status = StatusOf(h.world)
	h.snapshot = h.world.Parameters()
}

// Draw paints the readout at the top left, any banner in the middle of the
// view and the panel at offsetX.
func (h *HUD) Draw(screen *ebiten.Image, offsetX int) {
	if h == nil {
		return
	}
	face := basicfont.Face7x13
	for i, line := range h.status.Lines() {
		text.Draw(screen, line, face, panelPadding, panelPadding+headerBaseline+i*rowHeight, readoutColor)
	}

	if banner := h.status.Banner(); len(banner) > 0 {
		cx := offsetX / 2
		top := screen.Bounds().Dy()/3 - len(banner)*rowHeight/2
		for i, line := range banner {
			b := text.BoundString(face, line)
			text.Draw(screen, line, face, cx-b.Dx()/2, top+i*rowHeight, bannerColor)
		}
	}

	if h.width > 0 && h.showParams {
		h.drawPanel(screen, offsetX)
	}
}

func (h *HUD) drawPanel(screen *ebiten.Image, offsetX int) {
	height := screen.Bounds().Dy()
	if height <= 0 {
		return
	}
	if h.panel == nil || h.lastHeight != height {
		h.panel = ebiten.NewImage(h.width, height)
		h.lastHeight = height
	}
	h.panel.Fill(color.RGBA{R: 16, G: 16, B: 20, A: 255})

	face := basicfont.Face7x13
	y := panelPadding + headerBaseline
	text.Draw(h.panel, "Parameters (P)", face, panelPadding, y, headerColor)
	y += rowHeight
	for _, g := range h.snapshot.Groups {
		y += rowHeight / 2
		text.Draw(h.panel, g.Name, face, panelPadding, y, headerColor)
		y += rowHeight
		for _, p := range g.Params {
			text.Draw(h.panel, p.Label, face, panelPadding, y, labelColor)
			b := text.BoundString(face, p.Value)
			text.Draw(h.panel, p.Value, face, h.width-panelPadding-b.Dx(), y, readoutColor)
			y += rowHeight
		}
	}

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(float64(offsetX), 0)
	screen.DrawImage(h.panel, op)
}

var (
	readoutColor = color.RGBA{R: 220, G: 220, B: 230, A: 255}
	labelColor   = color.RGBA{R: 160, G: 160, B: 170, A: 255}
	headerColor  = color.RGBA{R: 200, G: 200, B: 210, A: 255}
	bannerColor  = color.RGBA{R: 255, G: 220, B: 120, A: 255}
)

const (
	panelPadding   = 12
	rowHeight      = 16
	headerBaseline = 6
)
