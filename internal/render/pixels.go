package render

import (
	"image/color"

	"lunar-lander/internal/terrain"
)

// Palette colours the terrain raster.
type Palette struct {
	Sky    color.RGBA
	Ground color.RGBA
	// Zones is indexed by terrain.Difficulty.
	Zones [4]color.RGBA
}

// DefaultPalette returns the standard lunar colours.
func DefaultPalette() Palette {
	return Palette{
		Sky:    color.RGBA{R: 4, G: 4, B: 12, A: 255},
		Ground: color.RGBA{R: 120, G: 120, B: 128, A: 255},
		Zones: [4]color.RGBA{
			terrain.DifficultyNone: {R: 120, G: 120, B: 128, A: 255},
			terrain.Hard:           {R: 220, G: 70, B: 60, A: 255},
			terrain.Medium:         {R: 230, G: 190, B: 60, A: 255},
			terrain.Easy:           {R: 80, G: 200, B: 110, A: 255},
		},
	}
}

// FillTerrainRGBA rasterises heights into buf, a w*h RGBA image with row 0 at
// the top. World y grows upward, so row r shows world height h-1-r. Columns
// past the end of the profile are sky.
func FillTerrainRGBA(buf []byte, w, h int, heights terrain.Profile, zones []terrain.Zone, pal Palette) {
	if len(buf) < 4*w*h {
		return
	}
	column := make([]color.RGBA, w)
	for x := range column {
		column[x] = pal.Ground
	}
	for _, z := range zones {
		for x := max(z.Start, 0); x <= z.End && x < w; x++ {
			column[x] = pal.Zones[z.Difficulty]
		}
	}
	for r := 0; r < h; r++ {
		worldY := float64(h - 1 - r)
		for x := 0; x < w; x++ {
			col := pal.Sky
			if x < len(heights) && worldY < heights[x] {
				col = column[x]
			}
			base := (r*w + x) * 4
			buf[base+0] = col.R
			buf[base+1] = col.G
			buf[base+2] = col.B
			buf[base+3] = col.A
		}
	}
}

// ScreenY converts a world height into a screen row coordinate.
func ScreenY(worldY float64, screenH int) float64 {
	return float64(screenH) - worldY
}
