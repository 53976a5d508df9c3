package ui

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"lunar-lander/internal/landing"
	"lunar-lander/internal/sims/lander"
	"lunar-lander/internal/terrain"
)

func TestStatusOfFreshWorld(t *testing.T) {
	s := StatusOf(lander.New())
	assert.Equal(t, 1, s.Attempt)
	assert.Equal(t, 100.0, s.Fuel)
	assert.False(t, s.Dead)
	assert.Nil(t, s.Banner())

	lines := s.Lines()
	require.Len(t, lines, 9)
	assert.Equal(t, "FUEL   100.0%", lines[3])
	assert.Equal(t, "ATTEMPT 1/3", lines[7])
	assert.Equal(t, "THR       OFF", lines[6])
}

func TestStatusAfterCrash(t *testing.T) {
	w := lander.New()
	for i := 0; i < 60*60 && !w.Dead(); i++ {
		w.Step(1.0 / 60)
	}
	require.True(t, w.Dead())

	s := StatusOf(w)
	assert.Equal(t, 1, s.Attempt)
	assert.Equal(t, terrain.DifficultyNone, s.Zone)
	banner := s.Banner()
	require.Len(t, banner, 2)
	assert.Contains(t, banner[0], "CRASHED")
	assert.Equal(t, "PRESS R FOR ATTEMPT 2/3", banner[1])
}

func TestBannerSuccess(t *testing.T) {
	s := Status{Dead: true, Outcome: landing.LandingSuccess, Zone: terrain.Hard, Score: 4320, Attempt: 2}
	assert.Equal(t, []string{"LANDED ON HARD ZONE", "SCORE 4320", "PRESS R FOR ATTEMPT 3/3"}, s.Banner())
}

func TestBannerSessionComplete(t *testing.T) {
	s := Status{
		Dead:        true,
		Outcome:     landing.BodyCollision,
		Attempt:     3,
		SessionDone: true,
		Total:       5000,
		Successes:   2,
		AvgFuel:     64,
		Rating:      "COMPETENT",
	}
	assert.Equal(t, []string{
		"CRASHED: BODY HIT THE GROUND",
		"SESSION COMPLETE  TOTAL 5000",
		"LANDINGS 2/3  AVG FUEL 64%",
		"RATING: COMPETENT",
		"PRESS R FOR A NEW SESSION",
	}, s.Banner())
}

func TestBannerError(t *testing.T) {
	s := Status{Err: errors.New("boom")}
	assert.Equal(t, "TERRAIN ERROR", s.Banner()[0])
}
