//go:build ebiten

package render

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"lunar-lander/internal/landing"
	"lunar-lander/internal/terrain"
)

// TerrainPainter keeps one RGBA image of the current terrain.
type TerrainPainter struct {
	w, h    int
	img     *ebiten.Image
	buf     []byte
	pal     Palette
	painted *terrain.Terrain
}

// NewTerrainPainter allocates a painter for a w*h world.
func NewTerrainPainter(w, h int, pal Palette) *TerrainPainter {
	return &TerrainPainter{
		w:   w,
		h:   h,
		img: ebiten.NewImage(w, h),
		buf: make([]byte, 4*w*h),
		pal: pal,
	}
}

// Blit draws t onto dst. The raster is rebuilt only when t changes.
func (tp *TerrainPainter) Blit(dst *ebiten.Image, t *terrain.Terrain, scale int) {
	if t == nil {
		dst.Fill(tp.pal.Sky)
		return
	}
	if t != tp.painted {
		FillTerrainRGBA(tp.buf, tp.w, tp.h, t.Heights, t.Zones, tp.pal)
		tp.img.WritePixels(tp.buf)
		tp.painted = t
	}
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(scale), float64(scale))
	dst.DrawImage(tp.img, op)
}

// Size returns the dimensions of the underlying image.
func (tp *TerrainPainter) Size() (int, int) { return tp.w, tp.h }

var (
	craftColor = color.RGBA{R: 230, G: 230, B: 240, A: 255}
	flameColor = color.RGBA{R: 255, G: 160, B: 40, A: 255}
	crashColor = color.RGBA{R: 255, G: 70, B: 60, A: 255}
)

// DrawCraft strokes the craft outline, with a flame under it while the
// engine fires.
func DrawCraft(dst *ebiten.Image, p landing.Pose, screenH, scale int, thrusting, crashed bool) {
	col := craftColor
	if crashed {
		col = crashColor
	}
	s := float32(scale)
	for _, seg := range CraftSegments(p, screenH) {
		strokeSegment(dst, seg, s, col)
	}
	if thrusting {
		strokeSegment(dst, FlameSegment(p, screenH, p.Size.Y()*0.5), s, flameColor)
	}
}

// StrokeSegment draws seg scaled by scale.
func StrokeSegment(dst *ebiten.Image, seg Segment, scale int, col color.Color) {
	strokeSegment(dst, seg, float32(scale), col)
}

func strokeSegment(dst *ebiten.Image, seg Segment, s float32, col color.Color) {
	vector.StrokeLine(dst,
		float32(seg.A.X())*s, float32(seg.A.Y())*s,
		float32(seg.B.X())*s, float32(seg.B.Y())*s,
		s, col, false)
}
