package render

import (
	"github.com/go-gl/mathgl/mgl64"

	"lunar-lander/internal/landing"
)

// Segment is a line in screen coordinates.
type Segment struct {
	A, B mgl64.Vec2
}

// CraftSegments outlines the craft: the body box above the leg zone and two
// splayed legs. Points are rotated about the box centre and returned in
// screen coordinates.
func CraftSegments(p landing.Pose, screenH int) []Segment {
	w, h := p.Size.X(), p.Size.Y()
	legTop := h * landing.LegHeightRatio
	leg := w * landing.LegWidthRatio

	// Corners relative to the bottom-left of the box.
	local := []Segment{
		{mgl64.Vec2{0, legTop}, mgl64.Vec2{w, legTop}},
		{mgl64.Vec2{w, legTop}, mgl64.Vec2{w, h}},
		{mgl64.Vec2{w, h}, mgl64.Vec2{0, h}},
		{mgl64.Vec2{0, h}, mgl64.Vec2{0, legTop}},
		{mgl64.Vec2{leg / 2, legTop}, mgl64.Vec2{0, 0}},
		{mgl64.Vec2{w - leg/2, legTop}, mgl64.Vec2{w, 0}},
	}
	return transform(p, screenH, local)
}

// FlameSegment is the exhaust plume below the body, scaled by length.
func FlameSegment(p landing.Pose, screenH int, length float64) Segment {
	w := p.Size.X()
	legTop := p.Size.Y() * landing.LegHeightRatio
	seg := []Segment{{mgl64.Vec2{w / 2, legTop}, mgl64.Vec2{w / 2, legTop - length}}}
	return transform(p, screenH, seg)[0]
}

func transform(p landing.Pose, screenH int, local []Segment) []Segment {
	half := p.Size.Mul(0.5)
	center := p.Position.Add(half)
	rot := mgl64.Rotate2D(mgl64.DegToRad(p.Rotation))
	toScreen := func(v mgl64.Vec2) mgl64.Vec2 {
		world := center.Add(rot.Mul2x1(v.Sub(half)))
		return mgl64.Vec2{world.X(), ScreenY(world.Y(), screenH)}
	}
	out := make([]Segment, len(local))
	for i, s := range local {
		out[i] = Segment{toScreen(s.A), toScreen(s.B)}
	}
	return out
}
