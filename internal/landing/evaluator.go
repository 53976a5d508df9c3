// Package landing decides whether the craft touched the ground, and whether
// that contact was a safe landing.
package landing

import (
	"github.com/go-gl/mathgl/mgl64"

	"lunar-lander/internal/terrain"
)

const (
	// CollisionMargin is how far above a terrain sample contact registers.
	CollisionMargin = 3.0
	// MaxLandingSpeed is the fastest safe touchdown speed.
	MaxLandingSpeed = 10.0
	// MaxLandingAngle is the largest safe deviation from upright, in degrees.
	MaxLandingAngle = 15.0
)

// ZoneMatch is a zone that wholly contains a touched span, with the slack left
// on each side.
type ZoneMatch struct {
	Zone      terrain.Zone
	LeftEdge  int
	RightEdge int
}

// Report carries the decision and what led to it.
type Report struct {
	Outcome Outcome

	LegHit  bool
	BodyHit bool
	// TouchMin and TouchMax bound the terrain indices in contact. Valid only
	// when LegHit or BodyHit is set.
	TouchMin int
	TouchMax int

	OnZone bool
	Match  ZoneMatch

	Speed     float64
	Deviation float64
	SpeedOK   bool
	AngleOK   bool
}

// Evaluate classifies the contact between the craft and the terrain.
func Evaluate(pose Pose, heights terrain.Profile, zones []terrain.Zone, velocity mgl64.Vec2) Outcome {
	return Inspect(pose, heights, zones, velocity).Outcome
}

// Inspect is Evaluate plus the intermediate results.
func Inspect(pose Pose, heights terrain.Profile, zones []terrain.Zone, velocity mgl64.Vec2) Report {
	r := Report{
		Speed:     velocity.Len(),
		Deviation: DeviationFromVertical(pose.Rotation),
	}
	r.SpeedOK = r.Speed <= MaxLandingSpeed
	r.AngleOK = r.Deviation <= MaxLandingAngle

	n := len(heights)
	if n == 0 {
		return r
	}
	start := max(int(pose.Position.X()), 0)
	end := min(int(pose.Position.X()+pose.Size.X()), n-1)
	if start >= n || end < start {
		return r
	}

	fp := FootprintOf(pose)
	touched := false
	touch := func(i int) {
		if !touched {
			r.TouchMin, r.TouchMax = i, i
			touched = true
			return
		}
		r.TouchMin = min(r.TouchMin, i)
		r.TouchMax = max(r.TouchMax, i)
	}
	for i := start; i <= end; i++ {
		ground := heights[i] + CollisionMargin
		x := float64(i)
		if fp.LegBottom <= ground && fp.LegsOver(x) {
			r.LegHit = true
			touch(i)
		}
		if fp.BodyBottom <= ground && fp.Body.Contains(x) {
			r.BodyHit = true
			touch(i)
		}
	}

	switch {
	case r.LegHit:
		r.Match, r.OnZone = FindZone(r.TouchMin, r.TouchMax, zones)
		if r.OnZone && r.SpeedOK && r.AngleOK {
			r.Outcome = LandingSuccess
		} else {
			r.Outcome = LegCollision
		}
	case r.BodyHit:
		r.Outcome = BodyCollision
	}
	return r
}

// FindZone returns the first zone wholly containing [lo, hi].
func FindZone(lo, hi int, zones []terrain.Zone) (ZoneMatch, bool) {
	for _, z := range zones {
		if z.Contains(lo, hi) {
			return ZoneMatch{Zone: z, LeftEdge: lo - z.Start, RightEdge: z.End - hi}, true
		}
	}
	return ZoneMatch{}, false
}
