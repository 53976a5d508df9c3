package lander

import (
	"strconv"

	"lunar-lander/internal/physics"
)

// Params holds the tunable terrain, craft and engine values.
type Params struct {
	// HeightMin and HeightMax bound the rescaled terrain profile.
	HeightMin     float64
	HeightMax     float64
	BaseFrequency float64
	Octaves       int
	Persistence   float64
	// ZoneWidthFactor scales the lander width into the zone reference width.
	ZoneWidthFactor float64

	LanderWidth  float64
	LanderHeight float64
	// SpawnAltitude is where the craft's centre starts.
	SpawnAltitude float64
	// RotationStep is the turn per key press, in degrees.
	RotationStep float64
	Gravity      float64

	DryMass         float64
	FuelMass        float64
	ExhaustVelocity float64
	MaxThrust       float64
}

// Config controls the lander world dimensions.
type Config struct {
	Width  int
	Height int

	Seed int64

	Params Params
}

// DefaultConfig returns the standard configuration.
func DefaultConfig() Config {
	lm := physics.NewApolloLM()
	return Config{
		Width:  800,
		Height: 600,
		Seed:   1969,
		Params: Params{
			HeightMin:       60,
			HeightMax:       100,
			BaseFrequency:   0.01,
			Octaves:         6,
			Persistence:     0.5,
			ZoneWidthFactor: 1.5,
			LanderWidth:     32,
			LanderHeight:    32,
			SpawnAltitude:   250,
			RotationStep:    3,
			Gravity:         physics.LunarGravity,
			DryMass:         lm.DryMass,
			FuelMass:        lm.MaxFuelMass,
			ExhaustVelocity: lm.ExhaustVelocity,
			MaxThrust:       lm.MaxThrust,
		},
	}
}

// ReferenceWidth is the zone width, in terrain points, before the
// difficulty multiplier.
func (c Config) ReferenceWidth() int {
	return int(c.Params.LanderWidth * c.Params.ZoneWidthFactor)
}

// FromMap populates the config from a string map (flag-style key/value pairs).
// Malformed or out-of-range values keep their defaults.
func FromMap(cfg map[string]string) Config {
	c := DefaultConfig()
	if cfg == nil {
		return c
	}
	p := &c.Params

	setInt(cfg, "w", &c.Width, 1)
	setInt(cfg, "h", &c.Height, 1)
	if v, ok := cfg["seed"]; ok {
		if parsed, err := strconv.ParseInt(v, 10, 64); err == nil {
			c.Seed = parsed
		}
	}

	setFloat(cfg, "height_min", &p.HeightMin, 0)
	setFloat(cfg, "height_max", &p.HeightMax, 0)
	if p.HeightMax < p.HeightMin {
		p.HeightMax = p.HeightMin
	}
	setFloat(cfg, "base_frequency", &p.BaseFrequency, 0)
	setInt(cfg, "octaves", &p.Octaves, 1)
	setFloat(cfg, "persistence", &p.Persistence, 0)
	setFloat(cfg, "zone_width_factor", &p.ZoneWidthFactor, 0)

	setFloat(cfg, "lander_w", &p.LanderWidth, 1)
	setFloat(cfg, "lander_h", &p.LanderHeight, 1)
	setFloat(cfg, "spawn_altitude", &p.SpawnAltitude, 0)
	setFloat(cfg, "rotation_step", &p.RotationStep, 0)
	setFloat(cfg, "gravity", &p.Gravity, 0)

	setFloat(cfg, "dry_mass", &p.DryMass, 1)
	setFloat(cfg, "fuel_mass", &p.FuelMass, 0)
	setFloat(cfg, "exhaust_velocity", &p.ExhaustVelocity, 1)
	setFloat(cfg, "max_thrust", &p.MaxThrust, 0)
	return c
}

func setInt(cfg map[string]string, key string, dst *int, minValue int) {
	v, ok := cfg[key]
	if !ok {
		return
	}
	if parsed, err := strconv.Atoi(v); err == nil && parsed >= minValue {
		*dst = parsed
	}
}

func setFloat(cfg map[string]string, key string, dst *float64, minValue float64) {
	v, ok := cfg[key]
	if !ok {
		return
	}
	if parsed, err := strconv.ParseFloat(v, 64); err == nil && parsed >= minValue {
		*dst = parsed
	}
}
