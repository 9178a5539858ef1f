package raster

import (
	"fmt"

	"github.com/lucasb-eyer/go-colorful"
)

// ColorReport is one line of the optional palette diagnostics: the
// retained color's hue/saturation/lightness and its share of the
// histogrammed pixels, purely for structured logging. It never feeds
// back into the Euclidean-distance decisions the reducer itself makes.
type ColorReport struct {
	Hex     string
	Hue     float64
	Sat     float64
	Light   float64
	SharePct float64
}

// Describe converts p's retained colors to HSL reports: a read-only
// reporting pass over an already-decided palette, never feeding back
// into the palette's own decisions.
func Describe(p *Palette) []ColorReport {
	total := 0
	for _, rec := range p.Colors {
		total += rec.Count
	}

	reports := make([]ColorReport, len(p.Colors))
	for i, rec := range p.Colors {
		cf := colorful.Color{
			R: float64(rec.Color.R) / 255.0,
			G: float64(rec.Color.G) / 255.0,
			B: float64(rec.Color.B) / 255.0,
		}
		h, s, l := cf.Hsl()

		share := 0.0
		if total > 0 {
			share = 100 * float64(rec.Count) / float64(total)
		}

		reports[i] = ColorReport{
			Hex:      fmt.Sprintf("#%02X%02X%02X", rec.Color.R, rec.Color.G, rec.Color.B),
			Hue:      h,
			Sat:      s,
			Light:    l,
			SharePct: share,
		}
	}
	return reports
}
