package core

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestFixedStepFirstTickIsImmediate(t *testing.T) {
	fs := NewFixedStep(60)
	assert.True(t, fs.ShouldStep())
	assert.Equal(t, time.Second/60, fs.Step())
}

func TestFixedStepDefaultsInvalidRate(t *testing.T) {
	fs := NewFixedStep(0)
	assert.Equal(t, time.Second/60, fs.Step())
	fs.SetTPS(-3)
	assert.Equal(t, time.Second/60, fs.Step())
	fs.SetTPS(30)
	assert.InDelta(t, 1.0/30, fs.Seconds(), 1e-9)
}

func TestParameterSnapshotLookup(t *testing.T) {
	s := ParameterSnapshot{Groups: []ParameterGroup{
		{Name: "World", Params: []Parameter{{Key: "w", Value: "800"}, {Key: "h", Value: "600"}}},
		{Name: "Engine", Params: []Parameter{{Key: "max_thrust", Value: "150000"}}},
	}}
	p, ok := s.Lookup("max_thrust")
	assert.True(t, ok)
	assert.Equal(t, "150000", p.Value)
	_, ok = s.Lookup("missing")
	assert.False(t, ok)
	assert.Equal(t, map[string]string{"w": "800", "h": "600", "max_thrust": "150000"}, s.Map())
}

func TestRegister(t *testing.T) {
	Register("", func(map[string]string) Sim { return nil })
	Register("nil-factory", nil)
	_, ok := Sims()[""]
	assert.False(t, ok)
	_, ok = Sims()["nil-factory"]
	assert.False(t, ok)
}
