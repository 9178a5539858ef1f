package raster

// WorkingImage is the mutable RGBA grid the segmenter owns exclusively
// while it writes, and every later stage only reads. Unlike
// *image.RGBA it stores raster.Color directly, so flood fill and
// boundary classification never pay for color-model conversions.
type WorkingImage struct {
	Width, Height int
	Pixels        []Color
}

// NewWorkingImage allocates a width x height grid, all pixels zero
// (fully transparent black).
func NewWorkingImage(width, height int) *WorkingImage {
	return &WorkingImage{
		Width:  width,
		Height: height,
		Pixels: make([]Color, width*height),
	}
}

// At returns the color at (x, y). Callers must ensure the coordinate is
// in bounds; unlike image.RGBA's RGBAAt, At does no bounds check.
func (w *WorkingImage) At(x, y int) Color {
	return w.Pixels[y*w.Width+x]
}

// Set writes the color at (x, y).
func (w *WorkingImage) Set(x, y int, c Color) {
	w.Pixels[y*w.Width+x] = c
}

// Clone returns an independent copy of the working image, used by the
// headless preview renderer to capture a frame without perturbing the
// pipeline's own mutable state.
func (w *WorkingImage) Clone() *WorkingImage {
	cp := &WorkingImage{Width: w.Width, Height: w.Height, Pixels: make([]Color, len(w.Pixels))}
	copy(cp.Pixels, w.Pixels)
	return cp
}
