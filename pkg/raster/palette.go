package raster

import (
	"errors"
	"fmt"
	"image"
	"math"
	"math/rand"
	"sort"
)

// ErrInvalidPaletteSize is returned when the requested palette size K is
// not positive.
var ErrInvalidPaletteSize = errors.New("raster: palette size K must be >= 1")

// ErrEmptyImage is returned for a zero-area image, which has no
// distinct colors to histogram.
var ErrEmptyImage = errors.New("raster: image has zero area")

// ColorRecord is one entry of a histogram or palette: a color plus how
// many source pixels currently map to it.
type ColorRecord struct {
	Color Color
	Count int
}

// Palette is an ordered, length-<=K sequence of dominant colors.
type Palette struct {
	Colors []ColorRecord
}

// Nearest returns the index of the palette color closest to c by
// Euclidean RGBA distance, breaking ties by the first (lowest-index)
// match.
func (p *Palette) Nearest(c Color) int {
	best := -1
	bestDist := 0
	for i, rec := range p.Colors {
		d := DistanceSquared(c, rec.Color)
		if best == -1 || d < bestDist {
			best = i
			bestDist = d
		}
	}
	return best
}

// Contains reports whether c equals (relaxed) any retained palette
// color.
func (p *Palette) Contains(c Color) bool {
	for _, rec := range p.Colors {
		if Equal(c, rec.Color) {
			return true
		}
	}
	return false
}

// ReduceResult is the output of the Palette Reducer: the retained
// palette, the null color substituted for source transparency, and the
// repainted working image ready for segmentation.
type ReduceResult struct {
	Palette    *Palette
	NullColor  Color
	Working    *WorkingImage
	Histogram  int // number of distinct colors before agglomeration
}

// Reduce runs Phases A-E of the Palette Reducer: it histograms img,
// agglomerates by spatial hashing, truncates to at most k colors,
// selects a null color, and repaints a working image. rng
// supplies the randomness used by Phase D; tests pass a seeded
// *rand.Rand for determinism, and the pipeline also passes a fixed
// seed (1), so a given palette always gets the same null color.
func Reduce(img image.Image, k int, rng *rand.Rand) (*ReduceResult, error) {
	if k <= 0 {
		return nil, ErrInvalidPaletteSize
	}

	entries, hasTransparency, err := histogram(img)
	if err != nil {
		return nil, err
	}

	hashWidth := 10
	if hasTransparency {
		hashWidth = 5
	}

	survivors := agglomerate(entries, hashWidth)

	sort.SliceStable(survivors, func(i, j int) bool {
		return survivors[i].Count > survivors[j].Count
	})
	if len(survivors) > k {
		survivors = survivors[:k]
	}

	palette := &Palette{Colors: survivors}

	nullColor := selectNullColor(palette, rng)

	working, err := repaint(img, palette, nullColor)
	if err != nil {
		return nil, err
	}

	return &ReduceResult{
		Palette:   palette,
		NullColor: nullColor,
		Working:   working,
		Histogram: len(entries),
	}, nil
}

// histogram implements Phase A: scan every pixel, build the set of
// distinct colors in first-encountered order, with per-color counts.
// It also reports whether any pixel is fully transparent, which
// decides the Phase B hashWidth.
func histogram(img image.Image) ([]ColorRecord, bool, error) {
	bounds := img.Bounds()
	w, h := bounds.Dx(), bounds.Dy()
	if w <= 0 || h <= 0 {
		return nil, false, ErrEmptyImage
	}

	index := make(map[uint32]int)
	var entries []ColorRecord
	hasTransparency := false

	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			c := FromRGBA(img.At(x, y))
			if c.A == 0 {
				hasTransparency = true
			}
			key := c.Pack()
			if idx, ok := index[key]; ok {
				entries[idx].Count++
				continue
			}
			index[key] = len(entries)
			entries = append(entries, ColorRecord{Color: c, Count: 1})
		}
	}

	if len(entries) == 0 {
		return nil, false, ErrEmptyImage
	}

	return entries, hasTransparency, nil
}

// selectNullColor implements Phase D: sample random opaque RGBA until
// it doesn't equal (relaxed) any retained palette color.
func selectNullColor(p *Palette, rng *rand.Rand) Color {
	if rng == nil {
		rng = rand.New(rand.NewSource(1))
	}
	for {
		c := Color{
			R: uint8(rng.Intn(256)),
			G: uint8(rng.Intn(256)),
			B: uint8(rng.Intn(256)),
			A: 255,
		}
		if !p.Contains(c) {
			return c
		}
	}
}

// repaint implements Phase E: for each source pixel, write the null
// color if the pixel was literally (0,0,0,0), else the nearest palette
// color by Euclidean RGBA distance (ties -> first in palette order).
func repaint(img image.Image, p *Palette, nullColor Color) (*WorkingImage, error) {
	bounds := img.Bounds()
	w, h := bounds.Dx(), bounds.Dy()
	if len(p.Colors) == 0 {
		return nil, fmt.Errorf("raster: repaint called with empty palette")
	}

	out := NewWorkingImage(w, h)
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			src := FromRGBA(img.At(bounds.Min.X+x, bounds.Min.Y+y))
			if src == (Color{}) {
				out.Set(x, y, nullColor)
				continue
			}
			idx := p.Nearest(src)
			out.Set(x, y, p.Colors[idx].Color)
		}
	}
	return out, nil
}

// hashDistance is the plain (non-squared) Euclidean distance used by
// Phase B's hashWidth comparison, which is specified as a linear
// threshold.
func hashDistance(a, b Color) float64 {
	return math.Sqrt(float64(DistanceSquared(a, b)))
}
