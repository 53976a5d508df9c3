package landing

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// Pose places the craft's bounding box. Position is the bottom-left corner in
// world units with y growing upward, and Rotation is in degrees with 0 upright.
type Pose struct {
	Position mgl64.Vec2
	Size     mgl64.Vec2
	Rotation float64
}

// NormalizeDegrees maps any angle into [0, 360).
func NormalizeDegrees(deg float64) float64 {
	a := math.Mod(deg, 360)
	if a < 0 {
		a += 360
	}
	if a >= 360 {
		a = 0
	}
	return a
}

// DeviationFromVertical returns how far the rotation is from upright, in [0, 180].
func DeviationFromVertical(rotation float64) float64 {
	a := NormalizeDegrees(rotation)
	return math.Min(a, 360-a)
}
