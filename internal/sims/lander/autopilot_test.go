package lander

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"lunar-lander/internal/terrain"
)

func TestDecideBrakesFastDescent(t *testing.T) {
	a := DefaultAutopilot()
	cmd := a.Decide(FlightState{CenterX: 300, TargetX: 300, Altitude: 100, VY: -20})
	assert.True(t, cmd.Throttle)
	assert.InDelta(t, 0, cmd.Rotate, 1e-12)

	cmd = a.Decide(FlightState{CenterX: 300, TargetX: 300, Altitude: 100, VY: 5})
	assert.False(t, cmd.Throttle)
}

func TestDecideSlowsNearGround(t *testing.T) {
	a := DefaultAutopilot()
	assert.True(t, a.Decide(FlightState{Altitude: 10, VY: -3}).Throttle)
	assert.False(t, a.Decide(FlightState{Altitude: 10, VY: -1}).Throttle)
}

func TestDecideSteersTowardsTarget(t *testing.T) {
	a := DefaultAutopilot()
	right := a.Decide(FlightState{CenterX: 100, TargetX: 400, Altitude: 200})
	assert.Equal(t, -a.TurnRate, right.Rotate)

	left := a.Decide(FlightState{CenterX: 400, TargetX: 100, Altitude: 200})
	assert.Equal(t, a.TurnRate, left.Rotate)
}

func TestDecideLevelsOutBeforeContact(t *testing.T) {
	a := DefaultAutopilot()
	assert.Equal(t, -a.TurnRate, a.Decide(FlightState{Altitude: 10, Rotation: 10}).Rotate)
	assert.Equal(t, a.TurnRate, a.Decide(FlightState{Altitude: 10, Rotation: 350}).Rotate)
	assert.InDelta(t, -1, a.Decide(FlightState{Altitude: 10, Rotation: 1}).Rotate, 1e-12)
}

func TestAutopilotFinishesAttempt(t *testing.T) {
	w := New()
	require.NoError(t, w.Err())
	a := DefaultAutopilot()
	for i := 0; i < 60*600 && !w.Dead(); i++ {
		a.Fly(w)
		w.Step(1.0 / 60)
	}
	require.True(t, w.Dead())
	assert.True(t, w.Outcome().Terminal())
	_, ok := w.LastAttempt()
	assert.True(t, ok)
	assert.Equal(t, 1, w.Session().CurrentIndex())
}

func TestSignedAngle(t *testing.T) {
	assert.Equal(t, 10.0, signedAngle(-350))
	assert.Equal(t, -10.0, signedAngle(350))
	assert.Equal(t, 180.0, signedAngle(-180))
}

func TestFlySessionCompletes(t *testing.T) {
	w := New()
	require.NoError(t, DefaultAutopilot().FlySession(w, 1.0/60, 60*600))
	s := w.Session()
	assert.True(t, s.Complete())
	assert.Equal(t, 3, s.SuccessCount()+s.FailureCount())
}

func TestFlySessionTickLimit(t *testing.T) {
	err := DefaultAutopilot().FlySession(New(), 1.0/60, 1)
	assert.ErrorIs(t, err, ErrTickLimit)
}

func TestFlySessionTerrainError(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Width = 200
	err := DefaultAutopilot().FlySession(NewWithConfig(cfg), 1.0/60, 10)
	assert.ErrorIs(t, err, terrain.ErrNoRoomForZone)
}
