package dither

import "math"

// colorDistance returns the Euclidean distance between two colors in RGB
// space. Alpha does not participate.
func colorDistance(a, b [4]float64) float64 {
	r := a[0] - b[0]
	g := a[1] - b[1]
	b2 := a[2] - b[2]

	return math.Sqrt(r*r + g*g + b2*b2)
}

// closestPaletteColor returns the palette entry nearest to px. Ties resolve
// to the lowest palette index. The palette must be non-empty; resolve
// guarantees that.
func closestPaletteColor(px [4]float64, pal [][4]float64) [4]float64 {
	best := 0
	bestDist := colorDistance(pal[0], px)
	for i := 1; i < len(pal); i++ {
		if d := colorDistance(pal[i], px); d < bestDist {
			best, bestDist = i, d
		}
	}

	return pal[best]
}
