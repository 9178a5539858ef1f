package raster

import (
	"image"
	"image/color"
	"math/rand"
	"testing"
)

func solidImage(n int, c color.RGBA) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, n, n))
	for y := 0; y < n; y++ {
		for x := 0; x < n; x++ {
			img.SetRGBA(x, y, c)
		}
	}
	return img
}

func TestReduceRejectsNonPositiveK(t *testing.T) {
	img := solidImage(4, color.RGBA{R: 1, G: 2, B: 3, A: 255})
	if _, err := Reduce(img, 0, nil); err != ErrInvalidPaletteSize {
		t.Errorf("Reduce(k=0) error = %v, want ErrInvalidPaletteSize", err)
	}
}

func TestReduceEveryPixelMapsToPaletteMember(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 8, 8))
	for y := 0; y < 8; y++ {
		for x := 0; x < 8; x++ {
			img.SetRGBA(x, y, color.RGBA{R: uint8(x * 30), G: uint8(y * 30), B: 0, A: 255})
		}
	}

	result, err := Reduce(img, 4, rand.New(rand.NewSource(1)))
	if err != nil {
		t.Fatalf("Reduce: %v", err)
	}

	for y := 0; y < 8; y++ {
		for x := 0; x < 8; x++ {
			got := result.Working.At(x, y)
			if !result.Palette.Contains(got) && !Equal(got, result.NullColor) {
				t.Errorf("pixel (%d,%d)=%v is neither a palette color nor the null color", x, y, got)
			}
		}
	}
}

func TestReducePaletteRetentionNeverExceedsK(t *testing.T) {
	// 256 distinct opaque colors (R and G alone distinguish every (x,y)
	// pair), spread far enough apart in RGB space that hash-agglomeration
	// leaves well over 3 survivors: the truncation to K is the only thing
	// that can still be binding, so retention must land on exactly K, not
	// merely <= K.
	img := image.NewRGBA(image.Rect(0, 0, 16, 16))
	for y := 0; y < 16; y++ {
		for x := 0; x < 16; x++ {
			img.SetRGBA(x, y, color.RGBA{R: uint8(x * 16), G: uint8(y * 16), B: uint8((x + y) * 8), A: 255})
		}
	}

	result, err := Reduce(img, 3, rand.New(rand.NewSource(1)))
	if err != nil {
		t.Fatalf("Reduce: %v", err)
	}
	if len(result.Palette.Colors) != 3 {
		t.Errorf("retained %d colors, want exactly min(K, post-merge count) = 3", len(result.Palette.Colors))
	}
}

func TestReduceMergesNearIdenticalColors(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 4, 2))
	for y := 0; y < 2; y++ {
		for x := 0; x < 4; x++ {
			if x < 2 {
				img.SetRGBA(x, y, color.RGBA{R: 100, G: 100, B: 100, A: 255})
			} else {
				img.SetRGBA(x, y, color.RGBA{R: 101, G: 100, B: 100, A: 255})
			}
		}
	}

	result, err := Reduce(img, 8, rand.New(rand.NewSource(1)))
	if err != nil {
		t.Fatalf("Reduce: %v", err)
	}
	if len(result.Palette.Colors) != 1 {
		t.Errorf("retained %d colors, want 1 (two near-identical grays should merge)", len(result.Palette.Colors))
	}
}

func TestReduceIdempotentModuloNullColor(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 6, 6))
	for y := 0; y < 6; y++ {
		for x := 0; x < 6; x++ {
			img.SetRGBA(x, y, color.RGBA{R: uint8(x * 40), G: uint8(y * 40), B: 10, A: 255})
		}
	}

	first, err := Reduce(img, 3, rand.New(rand.NewSource(7)))
	if err != nil {
		t.Fatalf("Reduce (first): %v", err)
	}

	asImage := workingImageAsImage(first.Working)
	second, err := Reduce(asImage, 3, rand.New(rand.NewSource(7)))
	if err != nil {
		t.Fatalf("Reduce (second): %v", err)
	}

	for y := 0; y < 6; y++ {
		for x := 0; x < 6; x++ {
			a, b := first.Working.At(x, y), second.Working.At(x, y)
			if Equal(a, first.NullColor) || Equal(b, second.NullColor) {
				continue
			}
			if a != b {
				t.Errorf("pixel (%d,%d) changed across reduction: %v -> %v", x, y, a, b)
			}
		}
	}
}

func workingImageAsImage(w *WorkingImage) image.Image {
	img := image.NewRGBA(image.Rect(0, 0, w.Width, w.Height))
	for y := 0; y < w.Height; y++ {
		for x := 0; x < w.Width; x++ {
			c := w.At(x, y)
			img.SetRGBA(x, y, color.RGBA{R: c.R, G: c.G, B: c.B, A: c.A})
		}
	}
	return img
}
