package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"lunar-lander/internal/terrain"
)

func baseParams() terrain.Params {
	return terrain.Params{MinHeight: 60, MaxHeight: 100, BaseFrequency: 0.01, Octaves: 6, Persistence: 0.5}
}

func TestSweepOrdersAndCountsRuns(t *testing.T) {
	results := sweep(baseParams(), grid([]int{1000, 250, 400}, []int{54}), 10, 3)
	require.Len(t, results, 3)
	assert.Equal(t, 250, results[0].scenario.points)
	assert.Equal(t, 1000, results[2].scenario.points)

	for _, r := range results {
		assert.Equal(t, 10, r.runs)
		assert.Zero(t, r.otherErrors)
	}

	// No zone fits 250 points with a reference width of 54.
	assert.Equal(t, 10, results[0].noRoom)
	assert.Zero(t, results[0].meanZones())

	// 400 points always falls back to a single zone.
	assert.Equal(t, 10, results[1].fallbacks)
	assert.Equal(t, 10, results[1].zoneCounts[1])
	assert.Equal(t, 1.0, results[1].meanZones())
}

func TestRunScenarioIsDeterministic(t *testing.T) {
	sc := scenario{points: 800, refWidth: 48}
	a := runScenario(baseParams(), sc, 25)
	b := runScenario(baseParams(), sc, 25)
	assert.Equal(t, a, b)

	total := 0
	for _, n := range a.difficulties {
		total += n
	}
	assert.Equal(t, a.zoneCounts[1]+2*a.zoneCounts[2]+3*a.zoneCounts[3], total)
}

func TestIntListSet(t *testing.T) {
	var l intList
	require.NoError(t, l.Set("1, 2"))
	require.NoError(t, l.Set("3"))
	assert.Equal(t, intList{1, 2, 3}, l)
	assert.Equal(t, "1,2,3", l.String())
	assert.Error(t, l.Set("x"))
}
