// Package preview implements the headless stand-in for the interactive
// 4-panel viewer described in the original source (original_source/main.cpp):
// "Original", "Reduced Colors", "Extracted Edges", "Generate Polygons".
// Instead of opening a raylib window it downsamples each frame with
// nfnt/resize and writes it as a PNG.
package preview

import (
	"fmt"
	"image"
	"image/color"
	"image/png"
	"os"

	"github.com/nfnt/resize"

	"github.com/willibrandon/raster2svg-go/pkg/raster"
)

// Width is the fixed preview frame width; height is scaled to preserve
// aspect ratio by resize.Resize (height argument 0).
const Width = 512

// Stage names the four frames captured, in capture order, matching the
// panel titles from the original interactive viewer.
const (
	StageOriginal         = 0
	StageReducedColors    = 1
	StageExtractedEdges   = 2
	StageGeneratePolygons = 3
)

// Capture downsamples img and writes it to <outputBase>.preview<stage>.png.
func Capture(img image.Image, outputBase string, stage int) error {
	resized := resize.Resize(Width, 0, img, resize.Bilinear)

	path := fmt.Sprintf("%s.preview%d.png", outputBase, stage)
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("preview: creating %s: %w", path, err)
	}
	defer f.Close()

	if err := png.Encode(f, resized); err != nil {
		return fmt.Errorf("preview: encoding %s: %w", path, err)
	}
	return nil
}

// WorkingImageToImage adapts a raster.WorkingImage to the standard
// image.Image interface so it can be captured and downsampled.
func WorkingImageToImage(w *raster.WorkingImage) image.Image {
	rgba := image.NewRGBA(image.Rect(0, 0, w.Width, w.Height))
	for y := 0; y < w.Height; y++ {
		for x := 0; x < w.Width; x++ {
			c := w.At(x, y)
			rgba.Set(x, y, color.RGBA{R: c.R, G: c.G, B: c.B, A: c.A})
		}
	}
	return rgba
}

// BoundaryFrame renders a copy of base with every region's remaining
// boundary pixels painted black, approximating the "Extracted Edges"
// panel.
func BoundaryFrame(base *raster.WorkingImage, regions []*raster.Region) image.Image {
	marked := base.Clone()
	black := raster.Color{R: 0, G: 0, B: 0, A: 255}
	for _, region := range regions {
		for _, coord := range region.UnmatchedPixels {
			marked.Set(coord.X, coord.Y, black)
		}
	}
	return WorkingImageToImage(marked)
}

// PolygonFrame renders a copy of base with each loop's simplified
// vertices painted black, approximating the "Generate Polygons" panel.
func PolygonFrame(base *raster.WorkingImage, regions []*raster.Region) image.Image {
	marked := base.Clone()
	black := raster.Color{R: 0, G: 0, B: 0, A: 255}
	for _, region := range regions {
		for _, loop := range region.Loops {
			for _, v := range loop.Simplified {
				if v.In(marked.Width, marked.Height) {
					marked.Set(v.X, v.Y, black)
				}
			}
		}
	}
	return WorkingImageToImage(marked)
}
