package lander

import (
	"bytes"
	"testing"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"lunar-lander/internal/core"
	"lunar-lander/internal/landing"
	"lunar-lander/internal/session"
	"lunar-lander/internal/terrain"
)

const tick = 1.0 / 60

// hoverOverZone parks the craft just above the first zone's flat top.
func hoverOverZone(t *testing.T, w *World) terrain.Zone {
	t.Helper()
	tr := w.Terrain()
	require.NotNil(t, tr)
	require.NotEmpty(t, tr.Zones)
	z := tr.Zones[0]
	center := float64(z.Start+z.End+1) / 2
	w.pose.Position = mgl64.Vec2{center - w.pose.Size.X()/2, tr.Heights[z.Start] + 1}
	w.pose.Rotation = 0
	return z
}

func TestNewWorldSpawnsCraft(t *testing.T) {
	w := New()
	require.NoError(t, w.Err())
	assert.Equal(t, core.Size{W: 800, H: 600}, w.Size())
	assert.Equal(t, "lander", w.Name())

	p := w.Pose()
	assert.Equal(t, mgl64.Vec2{384, 234}, p.Position)
	assert.Equal(t, mgl64.Vec2{32, 32}, p.Size)
	assert.Equal(t, 0.0, p.Rotation)
	assert.Equal(t, 100.0, w.Engine().FuelPercent())
	assert.Equal(t, landing.None, w.Outcome())
	assert.False(t, w.Dead())

	tr := w.Terrain()
	require.Len(t, tr.Heights, 800)
	lo, hi := tr.Heights.Bounds()
	assert.InDelta(t, 60, lo, 1e-9)
	assert.InDelta(t, 100, hi, 1e-9)
	for _, z := range tr.Zones {
		assert.Equal(t, int(48*z.Difficulty.WidthMultiplier()), z.WidthPoints)
	}
}

func TestResetIsDeterministic(t *testing.T) {
	a := New()
	b := New()
	a.Reset(7)
	b.Reset(7)
	assert.Equal(t, a.Terrain(), b.Terrain())

	b.Reset(8)
	assert.NotEqual(t, a.Terrain().Heights, b.Terrain().Heights)
}

func TestStepFreeFall(t *testing.T) {
	w := New()
	y0 := w.Pose().Position.Y()
	w.Step(tick)
	assert.InDelta(t, -1.625*tick, w.Velocity().Y(), 1e-9)
	assert.Less(t, w.Pose().Position.Y(), y0)
	assert.Equal(t, 100.0, w.Engine().FuelPercent())
	assert.InDelta(t, tick, w.Elapsed().Seconds(), 1e-6)
}

func TestStepThrustBurnsFuelAndSyncsMass(t *testing.T) {
	w := New()
	w.SetThrottle(true)
	w.Step(tick)
	assert.Greater(t, w.Velocity().Y(), 0.0)
	e := w.Engine()
	assert.Less(t, e.FuelMass, e.MaxFuelMass)
	assert.Equal(t, e.TotalMass(), w.body.Mass)

	w.SetThrottle(false)
	before := w.Engine().FuelMass
	w.Step(tick)
	assert.Equal(t, before, w.Engine().FuelMass)
}

func TestStepWrapsHorizontally(t *testing.T) {
	w := New()
	w.pose.Position = mgl64.Vec2{799.5, 400}
	w.body.Velocity = mgl64.Vec2{60, 0}
	w.Step(tick)
	x := w.Pose().Position.X()
	assert.GreaterOrEqual(t, x, 0.0)
	assert.Less(t, x, 1.0)
}

func TestRotateNormalises(t *testing.T) {
	w := New()
	w.RotateRight()
	assert.Equal(t, 357.0, w.Pose().Rotation)
	w.RotateLeft()
	w.RotateLeft()
	assert.Equal(t, 3.0, w.Pose().Rotation)
	w.Rotate(720)
	assert.Equal(t, 3.0, w.Pose().Rotation)
}

func TestGentleTouchdownOnZoneScores(t *testing.T) {
	w := New()
	z := hoverOverZone(t, w)
	w.Step(tick)

	require.Equal(t, landing.LandingSuccess, w.Outcome())
	assert.True(t, w.Dead())
	assert.Equal(t, z, w.Report().Match.Zone)

	a, ok := w.LastAttempt()
	require.True(t, ok)
	assert.Equal(t, session.Success, a.Result)
	assert.Equal(t, z.Difficulty, a.Zone)
	assert.Equal(t, 100.0, a.FuelRemaining)
	assert.InDelta(t, session.Score(z.Difficulty, 100, a.TimeTaken), a.Score, 1e-9)
	assert.InDelta(t, 1000*z.Difficulty.ScoreMultiplier()*2*1.2, a.Score, 1e-6)
	assert.Equal(t, a.Score, w.Session().TotalScore())

	// Dead craft ignore input and time.
	pos := w.Pose()
	w.Rotate(30)
	w.Step(tick)
	assert.Equal(t, pos, w.Pose())
	assert.Equal(t, mgl64.Vec2{}, w.Velocity())
}

func TestFastTouchdownOnZoneFails(t *testing.T) {
	w := New()
	hoverOverZone(t, w)
	w.body.Velocity = mgl64.Vec2{0, -20}
	w.Step(tick)

	assert.Equal(t, landing.LegCollision, w.Outcome())
	a, ok := w.LastAttempt()
	require.True(t, ok)
	assert.Equal(t, session.Failure, a.Result)
	assert.Equal(t, terrain.DifficultyNone, a.Zone)
	assert.Equal(t, 0.0, a.Score)
}

func TestFreeFallFromSpawnCrashes(t *testing.T) {
	w := New()
	for i := 0; i < 60*60 && !w.Dead(); i++ {
		w.Step(tick)
	}
	require.True(t, w.Dead())
	assert.True(t, w.Outcome().Terminal())
	assert.NotEqual(t, landing.LandingSuccess, w.Outcome())
	assert.Greater(t, w.Report().Speed, landing.MaxLandingSpeed)
	assert.Equal(t, 1, w.Session().FailureCount())
}

func TestRestartFlow(t *testing.T) {
	w := New()

	// Alive: the attempt is flown again without being recorded.
	w.Step(tick)
	require.NoError(t, w.Restart())
	assert.Equal(t, 0, w.Session().CurrentIndex())
	assert.Equal(t, 0.0, w.Elapsed().Seconds())

	// Dead with attempts left: next attempt.
	for i := 0; i < session.MaxAttempts; i++ {
		hoverOverZone(t, w)
		w.Step(tick)
		require.True(t, w.Dead())
		if i < session.MaxAttempts-1 {
			require.NoError(t, w.Restart())
			assert.False(t, w.Dead())
			assert.Equal(t, i+1, w.Session().CurrentIndex())
		}
	}

	s := w.Session()
	require.True(t, s.Complete())
	assert.Equal(t, 3, s.SuccessCount())
	assert.Equal(t, "ACE PILOT", s.PerformanceRating())

	// Complete: a new session.
	require.NoError(t, w.Restart())
	assert.False(t, w.Session().Complete())
	assert.Equal(t, 0, w.Session().CurrentIndex())
	_, ok := w.LastAttempt()
	assert.False(t, ok)
}

func TestTerrainErrorIsReported(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Width = 200
	w := NewWithConfig(cfg)
	require.Error(t, w.Err())
	assert.ErrorIs(t, w.Err(), terrain.ErrNoRoomForZone)
	assert.Nil(t, w.Terrain())

	assert.NotPanics(t, func() { w.Step(tick) })
	assert.Equal(t, 0.0, w.Elapsed().Seconds())
}

func TestTouchdownIsLogged(t *testing.T) {
	var buf bytes.Buffer
	w := New()
	w.SetLogger(zerolog.New(&buf))
	hoverOverZone(t, w)
	w.Step(tick)
	assert.Contains(t, buf.String(), `"outcome":"landing_success"`)
	assert.Contains(t, buf.String(), `"message":"attempt complete"`)
}

func TestAltitude(t *testing.T) {
	w := New()
	hoverOverZone(t, w)
	assert.InDelta(t, 1, w.Altitude(), 1e-9)
}

func TestRegistered(t *testing.T) {
	f, ok := core.Sims()["lander"]
	require.True(t, ok)
	sim := f(map[string]string{"w": "1000", "seed": "5"})
	assert.Equal(t, core.Size{W: 1000, H: 600}, sim.Size())
}

func TestParametersRoundTrip(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Params.Gravity = 3.7
	w := NewWithConfig(cfg)
	snap := w.Parameters()
	p, ok := snap.Lookup("gravity")
	require.True(t, ok)
	assert.Equal(t, "3.7", p.Value)
	assert.Equal(t, cfg, FromMap(snap.Map()))
}
