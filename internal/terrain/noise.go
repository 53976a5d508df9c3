package terrain

import perlin "github.com/aquilax/go-perlin"

// NoiseField samples fractal 1-D gradient noise along the terrain axis.
type NoiseField struct {
	noise         *perlin.Perlin
	baseFrequency float64
	octaves       int
	persistence   float64
}

// NewNoiseField builds a field whose gradients are derived from seed.
func NewNoiseField(seed int64, baseFrequency float64, octaves int, persistence float64) *NoiseField {
	return &NoiseField{
		// A single library octave; the fractal sum happens in At.
		noise:         perlin.NewPerlin(2, 2, 1, seed),
		baseFrequency: baseFrequency,
		octaves:       octaves,
		persistence:   persistence,
	}
}

// At returns the octave sum at x normalised by the total amplitude.
func (f *NoiseField) At(x float64) float64 {
	if f.octaves <= 0 {
		return 0
	}
	sum := 0.0
	amplitude := 1.0
	frequency := f.baseFrequency
	total := 0.0
	for i := 0; i < f.octaves; i++ {
		sum += f.noise.Noise1D(x*frequency) * amplitude
		total += amplitude
		amplitude *= f.persistence
		frequency *= 2
	}
	if total == 0 {
		return 0
	}
	return sum / total
}
