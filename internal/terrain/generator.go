package terrain

import (
	"errors"
	"fmt"
	"slices"

	"lunar-lander/pkg/core"
)

const (
	// ZoneSpacing is the minimum number of points kept between two zones.
	ZoneSpacing = 150
	// EdgeMargin keeps zones away from both terrain edges.
	EdgeMargin = 100
	// MaxPlacementRetries bounds the rejected proposals per zone before a
	// conflicting proposal is accepted.
	MaxPlacementRetries = 50

	minZones = 1
	maxZones = 3
)

var (
	ErrInvalidPoints         = errors.New("terrain: point count must be positive")
	ErrInvalidReferenceWidth = errors.New("terrain: reference width must be positive")
	ErrInvalidHeightRange    = errors.New("terrain: max height below min height")
	ErrNoRoomForZone         = errors.New("terrain: no room for a landing zone")
)

// Params configures one terrain generation.
type Params struct {
	Points         int
	MinHeight      float64
	MaxHeight      float64
	BaseFrequency  float64
	Octaves        int
	Persistence    float64
	ReferenceWidth int
}

// Terrain is the generated height profile and its landing zones, sorted by Start.
type Terrain struct {
	Heights Profile
	Zones   []Zone

	// Fallback is set when the requested zones could not fit and a single zone was placed.
	Fallback bool
	// SoftConflicts counts zones accepted despite violating ZoneSpacing.
	SoftConflicts int
}

// Generator produces terrain from a deterministic random source.
type Generator struct {
	rng *core.RNG
}

// NewGenerator returns a Generator seeded with seed.
func NewGenerator(seed int64) *Generator {
	return &Generator{rng: core.NewRNG(seed)}
}

// Generate builds a height profile with 1-3 flat landing zones.
func (g *Generator) Generate(p Params) (*Terrain, error) {
	if p.Points <= 0 {
		return nil, ErrInvalidPoints
	}
	if p.ReferenceWidth <= 0 {
		return nil, ErrInvalidReferenceWidth
	}
	if p.MaxHeight < p.MinHeight {
		return nil, fmt.Errorf("%w: [%g, %g]", ErrInvalidHeightRange, p.MinHeight, p.MaxHeight)
	}

	t, err := g.placeZones(p.Points, p.ReferenceWidth)
	if err != nil {
		return nil, err
	}

	field := NewNoiseField(g.rng.Int64(), p.BaseFrequency, p.Octaves, p.Persistence)
	heights := make(Profile, p.Points)
	for i := range heights {
		heights[i] = field.At(float64(i))
	}
	for _, z := range t.Zones {
		flat := field.At(float64(z.Start))
		for i := z.Start; i <= z.End; i++ {
			heights[i] = flat
		}
	}
	rescale(heights, p.MinHeight, p.MaxHeight)
	t.Heights = heights
	return t, nil
}

// placeZones picks zone count, difficulties and positions. Heights are left empty.
func (g *Generator) placeZones(points, refWidth int) (*Terrain, error) {
	count := g.rng.IntRange(minZones, maxZones+1)

	widest := zoneWidth(refWidth, Easy)
	available := points - 2*EdgeMargin
	if count*(widest+ZoneSpacing) > available {
		z, err := g.placeSingle(points, refWidth)
		if err != nil {
			return nil, err
		}
		return &Terrain{Zones: []Zone{z}, Fallback: true}, nil
	}

	t := &Terrain{Zones: make([]Zone, 0, count)}
	for i := 0; i < count; i++ {
		d := g.drawDifficulty()
		width := zoneWidth(refWidth, d)
		for attempt := 0; ; attempt++ {
			start := g.rng.IntRange(EdgeMargin, points-width-EdgeMargin)
			end := start + width - 1
			overlaps := slices.ContainsFunc(t.Zones, func(z Zone) bool {
				return z.conflicts(start, end, ZoneSpacing)
			})
			if !overlaps || attempt >= MaxPlacementRetries {
				if overlaps {
					t.SoftConflicts++
				}
				t.Zones = append(t.Zones, Zone{Start: start, End: end, Difficulty: d, WidthPoints: width})
				break
			}
		}
	}
	slices.SortFunc(t.Zones, func(a, b Zone) int { return a.Start - b.Start })
	return t, nil
}

// placeSingle places one zone, narrowing the drawn difficulty until it fits.
func (g *Generator) placeSingle(points, refWidth int) (Zone, error) {
	for d := g.drawDifficulty(); d != DifficultyNone; d = d.narrower() {
		width := zoneWidth(refWidth, d)
		hi := points - width - EdgeMargin
		if hi <= EdgeMargin {
			continue
		}
		start := g.rng.IntRange(EdgeMargin, hi)
		return Zone{Start: start, End: start + width - 1, Difficulty: d, WidthPoints: width}, nil
	}
	return Zone{}, fmt.Errorf("%w: %d points, reference width %d", ErrNoRoomForZone, points, refWidth)
}

func (g *Generator) drawDifficulty() Difficulty {
	return Difficulties[g.rng.IntN(len(Difficulties))]
}

func zoneWidth(refWidth int, d Difficulty) int {
	w := int(float64(refWidth) * d.WidthMultiplier())
	return max(w, 1)
}

// rescale maps the observed range of heights onto [lo, hi]. A flat profile maps to lo.
func rescale(heights Profile, lo, hi float64) {
	minH, maxH := heights.Bounds()
	span := maxH - minH
	for i, h := range heights {
		n := 0.0
		if span > 0 {
			n = (h - minH) / span
		}
		heights[i] = n*(hi-lo) + lo
	}
}
