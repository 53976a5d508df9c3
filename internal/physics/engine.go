package physics

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// Engine is the craft's propulsion state. Masses are in kg, velocities in
// m/s and forces in N.
type Engine struct {
	DryMass         float64
	FuelMass        float64
	MaxFuelMass     float64
	ExhaustVelocity float64
	MaxThrust       float64

	// Thrust is the requested thrust; only its direction survives clamping.
	Thrust    mgl64.Vec2
	Thrusting bool
}

// NewApolloLM returns an engine loosely based on the Apollo Lunar Module,
// with thrust scaled up for a controllable descent.
func NewApolloLM() *Engine {
	return &Engine{
		DryMass:         15000,
		FuelMass:        8200,
		MaxFuelMass:     8200,
		ExhaustVelocity: 3050,
		MaxThrust:       150000,
	}
}

// TotalMass is dry mass plus remaining fuel.
func (e *Engine) TotalMass() float64 { return e.DryMass + e.FuelMass }

// HasFuel reports whether any propellant remains.
func (e *Engine) HasFuel() bool { return e.FuelMass > 0 }

// FuelPercent returns the remaining fuel in [0, 100].
func (e *Engine) FuelPercent() float64 {
	if e.MaxFuelMass <= 0 {
		return 0
	}
	return e.FuelMass / e.MaxFuelMass * 100
}

// Refuel fills the tank.
func (e *Engine) Refuel() { e.FuelMass = e.MaxFuelMass }

// StopThrust cuts the engine.
func (e *Engine) StopThrust() {
	e.Thrust = mgl64.Vec2{}
	e.Thrusting = false
}

// Aim requests full thrust along the craft's up axis. A rotation of 0 degrees
// points straight up; positive rotation tilts the nozzle output to the left.
func (e *Engine) Aim(rotationDegrees float64) {
	a := mgl64.DegToRad(rotationDegrees + 90)
	e.Thrust = mgl64.Vec2{math.Cos(a), math.Sin(a)}.Mul(e.MaxThrust)
	e.Thrusting = true
}

// GenerateThrust burns propellant for dt seconds and returns the thrust force.
// The requested magnitude is clamped to MaxThrust and the fuel mass never
// drops below zero.
func (e *Engine) GenerateThrust(dt float64) mgl64.Vec2 {
	if !e.Thrusting || e.FuelMass <= 0 {
		e.Thrust = mgl64.Vec2{}
		return mgl64.Vec2{}
	}
	magnitude := math.Min(e.Thrust.Len(), e.MaxThrust)
	if magnitude <= 0 || e.ExhaustVelocity <= 0 {
		return mgl64.Vec2{}
	}
	flow := magnitude / e.ExhaustVelocity
	e.FuelMass = math.Max(e.FuelMass-flow*dt, 0)
	return e.Thrust.Normalize().Mul(magnitude)
}

// DeltaV is the remaining velocity change from the rocket equation,
// v_e * ln(total / dry). It is 0 without fuel.
func (e *Engine) DeltaV() float64 {
	if e.FuelMass <= 0 || e.DryMass <= 0 {
		return 0
	}
	return e.ExhaustVelocity * math.Log(e.TotalMass()/e.DryMass)
}
