package lander

import (
	"errors"
	"fmt"
	"math"

	"lunar-lander/internal/terrain"
)

// FlightState is what the autopilot sees of the craft.
type FlightState struct {
	CenterX  float64
	Altitude float64
	VX, VY   float64
	Rotation float64
	// TargetX is the horizontal point the craft should settle over.
	TargetX float64
}

// Command is one tick of pilot input.
type Command struct {
	Throttle bool
	// Rotate is the signed turn in degrees, counter-clockwise positive.
	Rotate float64
}

// Autopilot flies the craft towards the nearest landing zone, holding the
// descent rate under MaxDescent and settling upright before contact.
type Autopilot struct {
	MaxDescent float64
	MinDescent float64
	MaxDrift   float64
	TiltLimit  float64
	TurnRate   float64
	// FlareAltitude is where horizontal steering stops and the craft levels out.
	FlareAltitude float64
}

// DefaultAutopilot returns gains that land the default craft on most terrains.
func DefaultAutopilot() Autopilot {
	return Autopilot{
		MaxDescent:    8,
		MinDescent:    2,
		MaxDrift:      12,
		TiltLimit:     12,
		TurnRate:      3,
		FlareAltitude: 25,
	}
}

// Decide maps a flight state to pilot input.
func (a Autopilot) Decide(s FlightState) Command {
	desiredVX := 0.0
	if s.Altitude > a.FlareAltitude {
		desiredVX = clamp((s.TargetX-s.CenterX)*0.15, -a.MaxDrift, a.MaxDrift)
	}

	// Thrust points along (-sin r, cos r), so a negative rotation pushes right.
	desiredRot := 0.0
	if s.Altitude > a.FlareAltitude {
		desiredRot = clamp(-(desiredVX-s.VX)*2, -a.TiltLimit, a.TiltLimit)
	}
	turn := clamp(signedAngle(desiredRot-s.Rotation), -a.TurnRate, a.TurnRate)

	descent := clamp(s.Altitude*0.08, a.MinDescent, a.MaxDescent)
	return Command{
		Throttle: s.VY < -descent,
		Rotate:   turn,
	}
}

// Fly applies one tick of autopilot input to w.
func (a Autopilot) Fly(w *World) {
	if w.Dead() || w.Terrain() == nil {
		return
	}
	pose := w.Pose()
	center := pose.Position.X() + pose.Size.X()/2
	v := w.Velocity()
	cmd := a.Decide(FlightState{
		CenterX:  center,
		Altitude: w.Altitude(),
		VX:       v.X(),
		VY:       v.Y(),
		Rotation: pose.Rotation,
		TargetX:  nearestZoneCenter(w.Terrain().Zones, center),
	})
	w.Rotate(cmd.Rotate)
	w.SetThrottle(cmd.Throttle)
}

// ErrTickLimit is returned when an attempt outlasts its tick budget.
var ErrTickLimit = errors.New("lander: attempt exceeded tick limit")

// FlySession flies the remaining attempts of w's session at dt seconds per
// tick, giving each attempt at most maxTicks ticks.
func (a Autopilot) FlySession(w *World, dt float64, maxTicks int) error {
	for {
		if err := w.Err(); err != nil {
			return err
		}
		for i := 0; i < maxTicks && !w.Dead(); i++ {
			a.Fly(w)
			w.Step(dt)
		}
		if !w.Dead() {
			return fmt.Errorf("%w: attempt %d after %d ticks", ErrTickLimit, w.Session().CurrentAttemptDisplay(), maxTicks)
		}
		if w.Session().Complete() {
			return nil
		}
		if err := w.Restart(); err != nil {
			return err
		}
	}
}

func nearestZoneCenter(zones []terrain.Zone, x float64) float64 {
	best, bestDist := x, math.Inf(1)
	for _, z := range zones {
		c := float64(z.Start+z.End+1) / 2
		if d := math.Abs(c - x); d < bestDist {
			best, bestDist = c, d
		}
	}
	return best
}

// signedAngle maps deg into (-180, 180].
func signedAngle(deg float64) float64 {
	a := math.Mod(deg, 360)
	if a > 180 {
		a -= 360
	} else if a <= -180 {
		a += 360
	}
	return a
}

func clamp(v, lo, hi float64) float64 {
	return math.Max(lo, math.Min(hi, v))
}
