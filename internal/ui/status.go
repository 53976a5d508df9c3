// Package ui builds the on-screen readouts for the lander game.
package ui

import (
	"fmt"
	"strings"

	"lunar-lander/internal/landing"
	"lunar-lander/internal/session"
	"lunar-lander/internal/sims/lander"
	"lunar-lander/internal/terrain"
)

// Status is a snapshot of everything the HUD shows for one frame.
type Status struct {
	Altitude  float64
	VX, VY    float64
	Fuel      float64
	DeltaV    float64
	Rotation  float64
	Deviation float64
	Throttle  bool

	Attempt int
	Total   float64

	Dead    bool
	Outcome landing.Outcome
	Zone    terrain.Difficulty
	Score   float64

	SessionDone bool
	Successes   int
	AvgFuel     float64
	Rating      string

	Err error
}

// StatusOf reads the world's current state.
func StatusOf(w *lander.World) Status {
	e := w.Engine()
	v := w.Velocity()
	s := w.Session()
	rot := w.Pose().Rotation
	st := Status{
		Altitude:    w.Altitude(),
		VX:          v.X(),
		VY:          v.Y(),
		Fuel:        e.FuelPercent(),
		DeltaV:      e.DeltaV(),
		Rotation:    rot,
		Deviation:   landing.DeviationFromVertical(rot),
		Throttle:    w.Throttle(),
		Attempt:     s.CurrentAttemptDisplay(),
		Total:       s.TotalScore(),
		Dead:        w.Dead(),
		Outcome:     w.Outcome(),
		SessionDone: s.Complete(),
		Successes:   s.SuccessCount(),
		AvgFuel:     s.AverageFuelEfficiency(),
		Rating:      s.PerformanceRating(),
		Err:         w.Err(),
	}
	if st.Dead {
		// The session has already moved past the attempt just flown.
		st.Attempt = s.CurrentIndex()
	}
	if a, ok := w.LastAttempt(); ok && st.Dead {
		st.Zone = a.Zone
		st.Score = a.Score
	}
	return st
}

// Lines returns the flight readout, one entry per row.
func (s Status) Lines() []string {
	thr := "OFF"
	if s.Throttle {
		thr = "ON"
	}
	return []string{
		fmt.Sprintf("ALT   %7.1f", s.Altitude),
		fmt.Sprintf("VX    %7.2f", s.VX),
		fmt.Sprintf("VY    %7.2f", s.VY),
		fmt.Sprintf("FUEL  %6.1f%%", s.Fuel),
		fmt.Sprintf("DV    %7.0f", s.DeltaV),
		fmt.Sprintf("ANGLE %7.1f", s.Deviation),
		fmt.Sprintf("THR   %7s", thr),
		fmt.Sprintf("ATTEMPT %d/%d", s.Attempt, session.MaxAttempts),
		fmt.Sprintf("SCORE %7.0f", s.Total),
	}
}

// Banner returns the centred message shown after touchdown, or nil while
// the craft is flying.
func (s Status) Banner() []string {
	if s.Err != nil {
		return []string{"TERRAIN ERROR", s.Err.Error(), "PRESS S TO RESEED"}
	}
	if !s.Dead {
		return nil
	}
	var out []string
	switch s.Outcome {
	case landing.LandingSuccess:
		out = append(out,
			fmt.Sprintf("LANDED ON %s ZONE", strings.ToUpper(s.Zone.String())),
			fmt.Sprintf("SCORE %.0f", s.Score))
	case landing.BodyCollision:
		out = append(out, "CRASHED: BODY HIT THE GROUND")
	default:
		out = append(out, "CRASHED: HARD LEG CONTACT")
	}
	if s.SessionDone {
		return append(out,
			fmt.Sprintf("SESSION COMPLETE  TOTAL %.0f", s.Total),
			fmt.Sprintf("LANDINGS %d/%d  AVG FUEL %.0f%%", s.Successes, session.MaxAttempts, s.AvgFuel),
			"RATING: "+s.Rating,
			"PRESS R FOR A NEW SESSION")
	}
	return append(out, fmt.Sprintf("PRESS R FOR ATTEMPT %d/%d", s.Attempt+1, session.MaxAttempts))
}
