package lander

import (
	"strconv"

	"lunar-lander/internal/core"
)

// Parameters exposes the world's active configuration.
func (w *World) Parameters() core.ParameterSnapshot { return w.cfg.Snapshot() }

// Snapshot lists every tunable under the key FromMap reads it from.
func (c Config) Snapshot() core.ParameterSnapshot {
	params := c.Params
	groups := []core.ParameterGroup{
		{
			Name: "World",
			Params: []core.Parameter{
				intParam("w", "Width", c.Width),
				intParam("h", "Height", c.Height),
				int64Param("seed", "Seed", c.Seed),
			},
		},
		{
			Name:    "Terrain",
			Summary: "Fractal noise profile with 1-3 flat landing zones",
			Params: []core.Parameter{
				floatParam("height_min", "Height min", params.HeightMin),
				floatParam("height_max", "Height max", params.HeightMax),
				floatParam("base_frequency", "Base frequency", params.BaseFrequency),
				intParam("octaves", "Octaves", params.Octaves),
				floatParam("persistence", "Persistence", params.Persistence),
				floatParam("zone_width_factor", "Zone width factor", params.ZoneWidthFactor),
			},
		},
		{
			Name: "Craft",
			Params: []core.Parameter{
				floatParam("lander_w", "Lander width", params.LanderWidth),
				floatParam("lander_h", "Lander height", params.LanderHeight),
				floatParam("spawn_altitude", "Spawn altitude", params.SpawnAltitude),
				floatParam("rotation_step", "Rotation step", params.RotationStep),
				floatParam("gravity", "Gravity", params.Gravity),
			},
		},
		{
			Name: "Engine",
			Params: []core.Parameter{
				floatParam("dry_mass", "Dry mass", params.DryMass),
				floatParam("fuel_mass", "Fuel mass", params.FuelMass),
				floatParam("exhaust_velocity", "Exhaust velocity", params.ExhaustVelocity),
				floatParam("max_thrust", "Max thrust", params.MaxThrust),
			},
		},
	}
	return core.ParameterSnapshot{Groups: groups}
}

func intParam(key, label string, value int) core.Parameter {
	return core.Parameter{
		Key:   key,
		Label: label,
		Type:  core.ParamTypeInt,
		Value: strconv.Itoa(value),
	}
}

func int64Param(key, label string, value int64) core.Parameter {
	return core.Parameter{
		Key:   key,
		Label: label,
		Type:  core.ParamTypeInt,
		Value: strconv.FormatInt(value, 10),
	}
}

func floatParam(key, label string, value float64) core.Parameter {
	return core.Parameter{
		Key:   key,
		Label: label,
		Type:  core.ParamTypeFloat,
		Value: strconv.FormatFloat(value, 'f', -1, 64),
	}
}
