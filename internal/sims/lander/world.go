// Package lander runs the per-tick loop of a lunar landing: terrain per
// attempt, rocket physics, touchdown checks and the three-attempt session.
package lander

import (
	"context"
	"fmt"
	"math"
	"time"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/rs/zerolog"

	"lunar-lander/internal/core"
	"lunar-lander/internal/landing"
	"lunar-lander/internal/physics"
	"lunar-lander/internal/session"
	"lunar-lander/internal/telemetry"
	"lunar-lander/internal/terrain"
	pkgcore "lunar-lander/pkg/core"
)

// World stores the state of one play session.
type World struct {
	cfg Config

	log zerolog.Logger
	rec *telemetry.Recorder
	rng *pkgcore.RNG

	terrain *terrain.Terrain
	engine  *physics.Engine
	body    *physics.Body
	pose    landing.Pose
	report  landing.Report

	throttle bool
	dead     bool
	elapsed  time.Duration

	session *session.Session
	last    session.Attempt
	hasLast bool

	err error
}

// New returns a lander world with the default configuration.
func New() *World {
	return NewWithConfig(DefaultConfig())
}

// NewWithConfig returns a world configured from the provided options, ready
// for its first attempt.
func NewWithConfig(cfg Config) *World {
	w := &World{
		cfg:     cfg,
		log:     zerolog.Nop(),
		session: session.New(),
	}
	w.Reset(cfg.Seed)
	return w
}

// SetLogger replaces the world's logger.
func (w *World) SetLogger(l zerolog.Logger) { w.log = l.With().Str("sim", w.Name()).Logger() }

// SetRecorder attaches metric instruments. A nil recorder disables metrics.
func (w *World) SetRecorder(r *telemetry.Recorder) { w.rec = r }

// Name returns the simulation identifier.
func (w *World) Name() string { return "lander" }

// Size reports the world dimensions.
func (w *World) Size() core.Size { return core.Size{W: w.cfg.Width, H: w.cfg.Height} }

// Config returns the active configuration.
func (w *World) Config() Config { return w.cfg }

// Reset starts a new session whose terrains derive from seed. A zero seed
// falls back to the configured one.
func (w *World) Reset(seed int64) {
	effective := seed
	if effective == 0 {
		effective = w.cfg.Seed
	}
	w.rng = pkgcore.NewRNG(effective)
	w.session.Reset()
	w.hasLast = false
	_ = w.NewAttempt()
}

// NewAttempt generates fresh terrain and puts a fuelled craft at the spawn
// point. The session is left untouched.
func (w *World) NewAttempt() error {
	p := w.cfg.Params
	gen := terrain.NewGenerator(w.rng.Int64())
	t, err := gen.Generate(terrain.Params{
		Points:         w.cfg.Width,
		MinHeight:      p.HeightMin,
		MaxHeight:      p.HeightMax,
		BaseFrequency:  p.BaseFrequency,
		Octaves:        p.Octaves,
		Persistence:    p.Persistence,
		ReferenceWidth: w.cfg.ReferenceWidth(),
	})
	w.resetCraft()
	if err != nil {
		w.terrain = nil
		w.err = fmt.Errorf("generate terrain: %w", err)
		w.log.Error().Err(w.err).Int("points", w.cfg.Width).Msg("attempt not started")
		return w.err
	}
	w.err = nil
	w.terrain = t

	if t.Fallback {
		w.log.Warn().Int("points", w.cfg.Width).Msg("zones did not fit, placed a single zone")
	}
	if t.SoftConflicts > 0 {
		w.log.Warn().Int("conflicts", t.SoftConflicts).Msg("zones placed closer than the spacing rule")
	}
	for _, z := range t.Zones {
		w.log.Debug().
			Int("start", z.Start).
			Int("end", z.End).
			Stringer("difficulty", z.Difficulty).
			Msg("landing zone")
	}
	w.log.Info().
		Int("attempt", w.session.CurrentAttemptDisplay()).
		Int("zones", len(t.Zones)).
		Msg("attempt started")
	w.rec.Terrain(context.Background(), len(t.Zones), t.Fallback, t.SoftConflicts)
	return nil
}

func (w *World) resetCraft() {
	p := w.cfg.Params
	w.engine = &physics.Engine{
		DryMass:         p.DryMass,
		FuelMass:        p.FuelMass,
		MaxFuelMass:     p.FuelMass,
		ExhaustVelocity: p.ExhaustVelocity,
		MaxThrust:       p.MaxThrust,
	}
	w.body = physics.NewBody(w.engine.TotalMass())
	w.pose = landing.Pose{
		Position: mgl64.Vec2{
			float64(w.cfg.Width)/2 - p.LanderWidth/2,
			p.SpawnAltitude - p.LanderHeight/2,
		},
		Size: mgl64.Vec2{p.LanderWidth, p.LanderHeight},
	}
	w.report = landing.Report{}
	w.throttle = false
	w.dead = false
	w.elapsed = 0
}

// Restart handles a restart request: a finished session starts over, a lost
// attempt moves on to the next one, and a live attempt is flown again
// without being recorded.
func (w *World) Restart() error {
	switch {
	case w.session.Complete():
		w.session.Reset()
		w.hasLast = false
		w.log.Info().Msg("new session")
	case w.dead && w.session.CanStartNextAttempt():
		w.log.Info().Int("attempt", w.session.CurrentAttemptDisplay()).Msg("next attempt")
	case w.dead:
		w.session.Reset()
		w.hasLast = false
		w.log.Info().Msg("new session")
	default:
		w.log.Info().Int("attempt", w.session.CurrentAttemptDisplay()).Msg("restarting attempt")
	}
	return w.NewAttempt()
}

// SetThrottle opens or closes the engine. It takes effect on the next Step.
func (w *World) SetThrottle(on bool) { w.throttle = on }

// Rotate turns the craft by deg degrees; positive is counter-clockwise.
func (w *World) Rotate(deg float64) {
	if w.dead {
		return
	}
	w.pose.Rotation = landing.NormalizeDegrees(w.pose.Rotation + deg)
}

// RotateLeft and RotateRight turn by the configured step.
func (w *World) RotateLeft() { w.Rotate(w.cfg.Params.RotationStep) }
func (w *World) RotateRight() { w.Rotate(-w.cfg.Params.RotationStep) }

// Step advances the craft by dt seconds and checks for ground contact.
func (w *World) Step(dt float64) {
	if w.dead || w.terrain == nil || dt <= 0 {
		return
	}
	if w.throttle && w.engine.HasFuel() {
		w.engine.Aim(w.pose.Rotation)
	} else {
		w.engine.StopThrust()
	}

	w.body.ResetForces()
	w.body.AddForce(physics.Gravity(w.body.Mass, w.cfg.Params.Gravity))
	w.body.AddForce(w.engine.GenerateThrust(dt))
	w.body.Integrate(dt)

	pos := w.pose.Position.Add(w.body.Velocity.Mul(dt))
	w.pose.Position = mgl64.Vec2{
		wrap(pos.X(), float64(w.cfg.Width)),
		wrap(pos.Y(), float64(w.cfg.Height)),
	}
	w.body.Mass = w.engine.TotalMass()
	w.elapsed += time.Duration(dt * float64(time.Second))

	w.report = landing.Inspect(w.pose, w.terrain.Heights, w.terrain.Zones, w.body.Velocity)
	if w.report.Outcome.Terminal() {
		w.touchdown()
	}
}

func (w *World) touchdown() {
	r := w.report
	w.dead = true
	w.throttle = false
	w.body.Stop()
	w.engine.StopThrust()

	result, zone := session.Failure, terrain.DifficultyNone
	if r.Outcome.Success() {
		result, zone = session.Success, r.Match.Zone.Difficulty
	}
	attempt, err := w.session.CompleteAttempt(result, w.engine.FuelPercent(), zone, w.elapsed)
	if err != nil {
		w.log.Warn().Err(err).Stringer("outcome", r.Outcome).Msg("touchdown not recorded")
		return
	}
	w.last, w.hasLast = attempt, true

	ev := w.log.Info().
		Int("attempt", w.session.CurrentIndex()).
		Stringer("outcome", r.Outcome).
		Float64("speed", r.Speed).
		Float64("deviation", r.Deviation).
		Bool("on_zone", r.OnZone).
		Float64("fuel_pct", attempt.FuelRemaining).
		Dur("time", attempt.TimeTaken).
		Float64("score", attempt.Score).
		Float64("total", w.session.TotalScore())
	if r.OnZone {
		ev = ev.Stringer("zone", r.Match.Zone.Difficulty).
			Int("left_edge", r.Match.LeftEdge).
			Int("right_edge", r.Match.RightEdge)
	}
	ev.Msg("attempt complete")
	w.rec.Attempt(context.Background(), r.Outcome.String(), zone.String(), r.Speed, attempt.Score)

	if w.session.Complete() {
		w.log.Info().
			Int("successes", w.session.SuccessCount()).
			Float64("avg_fuel_pct", w.session.AverageFuelEfficiency()).
			Float64("total", w.session.TotalScore()).
			Str("rating", w.session.PerformanceRating()).
			Msg("session complete")
	}
}

// Altitude is the height of the craft's bottom above the highest terrain
// sample under it.
func (w *World) Altitude() float64 {
	if w.terrain == nil || len(w.terrain.Heights) == 0 {
		return w.pose.Position.Y()
	}
	h := w.terrain.Heights
	lo := max(int(w.pose.Position.X()), 0)
	hi := min(int(w.pose.Position.X()+w.pose.Size.X()), len(h)-1)
	if lo > hi {
		return w.pose.Position.Y()
	}
	top := h[lo]
	for _, v := range h[lo : hi+1] {
		top = math.Max(top, v)
	}
	return w.pose.Position.Y() - top
}

// Engine returns a copy of the propellant state.
func (w *World) Engine() *physics.Engine {
	e := *w.engine
	return &e
}

func (w *World) Pose() landing.Pose { return w.pose }
func (w *World) Velocity() mgl64.Vec2 { return w.body.Velocity }
func (w *World) Terrain() *terrain.Terrain { return w.terrain }
func (w *World) Outcome() landing.Outcome { return w.report.Outcome }
func (w *World) Report() landing.Report { return w.report }
func (w *World) Session() *session.Session { return w.session }
func (w *World) Elapsed() time.Duration { return w.elapsed }
func (w *World) Dead() bool { return w.dead }
func (w *World) Throttle() bool { return w.throttle && !w.dead }

// Err returns the error that kept the current attempt from starting.
func (w *World) Err() error { return w.err }

// LastAttempt returns the most recently recorded attempt of this session.
func (w *World) LastAttempt() (session.Attempt, bool) { return w.last, w.hasLast }

func wrap(v, m float64) float64 {
	if m <= 0 {
		return v
	}
	r := math.Mod(v, m)
	if r < 0 {
		r += m
	}
	if r >= m {
		r = 0
	}
	return r
}

func init() {
	core.Register("lander", func(cfg map[string]string) core.Sim {
		return NewWithConfig(FromMap(cfg))
	})
}
