// Package testutil provides shared test fixtures: temp-file helpers
// and small synthetic images covering the pipeline's own test
// scenarios.
package testutil

import (
	"image"
	"image/color"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"io"
	"path/filepath"
	"testing"
)

// TempDir returns a fresh temporary directory for test output files.
func TempDir(t *testing.T) string {
	t.Helper()
	return t.TempDir()
}

// TempFilePath returns a path for a temporary file named name.
func TempFilePath(t *testing.T, name string) string {
	t.Helper()
	return filepath.Join(t.TempDir(), name)
}

// DecodeImage decodes an image from a reader and returns the image and format.
func DecodeImage(r io.Reader) (image.Image, string, error) {
	return image.Decode(r)
}

// SolidSquare builds an n x n opaque image of one color (scenario A).
func SolidSquare(n int, c color.RGBA) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, n, n))
	for y := 0; y < n; y++ {
		for x := 0; x < n; x++ {
			img.SetRGBA(x, y, c)
		}
	}
	return img
}

// TwoColorHalves builds a w x h image split into a left half of left
// and a right half of right (scenario B).
func TwoColorHalves(w, h int, left, right color.RGBA) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			if x < w/2 {
				img.SetRGBA(x, y, left)
			} else {
				img.SetRGBA(x, y, right)
			}
		}
	}
	return img
}

// TransparentRing builds an n x n image of color c with a fully
// transparent holeSize x holeSize hole centered in it (scenario C).
// holeSize must be large enough that the hole's own boundary pixel
// count clears the region segmenter's size-10 noise filter once it is
// repainted with the null color (a literal 3x3 hole, as in the
// specification's own worked numeric example, yields only 8 boundary
// pixels and would be discarded as noise; see DESIGN.md).
func TransparentRing(n, holeSize int, c color.RGBA) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, n, n))
	lo := (n - holeSize) / 2
	hi := lo + holeSize
	for y := 0; y < n; y++ {
		for x := 0; x < n; x++ {
			if x >= lo && x < hi && y >= lo && y < hi {
				img.SetRGBA(x, y, color.RGBA{})
				continue
			}
			img.SetRGBA(x, y, c)
		}
	}
	return img
}

// Octagon builds an n x n image of color c shaped like a square with
// its four corners cut at depth cut, leaving a region whose boundary
// is a true octagon, a corner-cutting square with every edge meeting
// its neighbor well above a typical sharp-corner threshold. Everything
// outside the octagon is left fully transparent. Used to exercise
// smoothing (scenario F) on a closed shape, since a straight-edged
// rectangle simplifies to four 90-degree corners, all of them sharp.
func Octagon(n, r, cut int, c color.RGBA) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, n, n))
	cx, cy := n/2, n/2
	for y := 0; y < n; y++ {
		for x := 0; x < n; x++ {
			dx, dy := x-cx, y-cy
			if dx < 0 {
				dx = -dx
			}
			if dy < 0 {
				dy = -dy
			}
			if dx <= r && dy <= r && dx+dy <= r+cut {
				img.SetRGBA(x, y, c)
			}
		}
	}
	return img
}

// SingleStripe builds a w x h image of background with a 1-pixel-thick
// horizontal stripe of color stripe at row y (scenario F).
func SingleStripe(w, h, y int, background, stripe color.RGBA) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for yy := 0; yy < h; yy++ {
		for xx := 0; xx < w; xx++ {
			if yy == y {
				img.SetRGBA(xx, yy, stripe)
			} else {
				img.SetRGBA(xx, yy, background)
			}
		}
	}
	return img
}
