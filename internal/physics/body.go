package physics

import "github.com/go-gl/mathgl/mgl64"

// LunarGravity is the surface gravity of the Moon in m/s².
const LunarGravity = 1.625

// Body accumulates forces for one tick and integrates them into velocity.
// Position is owned by the caller.
type Body struct {
	Velocity mgl64.Vec2
	Mass     float64
	Forces   mgl64.Vec2
}

// NewBody returns a body at rest.
func NewBody(mass float64) *Body {
	return &Body{Mass: mass}
}

// ResetForces clears the accumulator. Call it at the start of every tick.
func (b *Body) ResetForces() { b.Forces = mgl64.Vec2{} }

// AddForce adds f to this tick's net force.
func (b *Body) AddForce(f mgl64.Vec2) { b.Forces = b.Forces.Add(f) }

// Integrate applies one explicit Euler step of F = ma.
func (b *Body) Integrate(dt float64) {
	if b.Mass <= 0 {
		return
	}
	a := b.Forces.Mul(1 / b.Mass)
	b.Velocity = b.Velocity.Add(a.Mul(dt))
}

// Stop zeroes velocity and pending forces.
func (b *Body) Stop() {
	b.Velocity = mgl64.Vec2{}
	b.Forces = mgl64.Vec2{}
}

// Gravity returns the weight of mass under acceleration g, pointing down.
func Gravity(mass, g float64) mgl64.Vec2 {
	return mgl64.Vec2{0, -g * mass}
}
