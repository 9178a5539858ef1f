package raster

// Region is a maximal 4-connected set of pixels of one color, plus the
// boundary pixels discovered while flood-filling it. Lifecycle: created
// during segmentation; unmatchedPixels are drained into Loops by the
// contour tracer; all but the longest loop are discarded before
// simplification.
type Region struct {
	Color           Color
	Width           int // image width, for packing/unpacking boundary keys
	unmatchedOrder  []int // keys, in discovery order, for deterministic tracing starts
	UnmatchedPixels map[int]Coordinate
	Loops           []Loop
}

const minRegionBoundary = 10

// Segment implements the Region Segmenter: scan the
// working image in row-major order; for every unvisited pixel with
// alpha != 0, flood-fill its 4-connected, relaxed-equal component,
// marking visited interior pixels as alpha-0 on the working image and
// collecting boundary pixels. Regions with fewer than 10 boundary
// pixels are discarded as noise. Surviving regions have their boundary
// pixels repainted back onto the working image before tracing.
func Segment(working *WorkingImage) []*Region {
	w, h := working.Width, working.Height
	visited := make([]bool, w*h)

	var regions []*Region

	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			key := y*w + x
			if visited[key] {
				continue
			}
			c := working.At(x, y)
			if c.A == 0 {
				visited[key] = true
				continue
			}

			region := floodFill(working, visited, x, y, c)
			if len(region.UnmatchedPixels) < minRegionBoundary {
				continue
			}
			regions = append(regions, region)
		}
	}

	for _, r := range regions {
		for _, coord := range r.UnmatchedPixels {
			working.Set(coord.X, coord.Y, r.Color)
		}
	}

	return regions
}

func floodFill(working *WorkingImage, visited []bool, startX, startY int, regionColor Color) *Region {
	w, h := working.Width, working.Height
	region := &Region{
		Color:           regionColor,
		Width:           w,
		UnmatchedPixels: make(map[int]Coordinate),
	}

	stack := []Coordinate{{X: startX, Y: startY}}
	visited[startY*w+startX] = true

	for len(stack) > 0 {
		cur := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		isBoundary := false
		for _, n := range cur.Neighbors4() {
			if !n.In(w, h) {
				isBoundary = true
				continue
			}
			if !Equal(working.At(n.X, n.Y), regionColor) {
				isBoundary = true
				continue
			}
			key := n.Y*w + n.X
			if visited[key] {
				continue
			}
			visited[key] = true
			stack = append(stack, n)
		}

		// Mark visited interior by clearing alpha, distinguishing it
		// from not-yet-visited pixels.
		c := working.At(cur.X, cur.Y)
		working.Set(cur.X, cur.Y, Color{R: c.R, G: c.G, B: c.B, A: 0})

		if isBoundary {
			key := cur.Y*w + cur.X
			region.UnmatchedPixels[key] = cur
			region.unmatchedOrder = append(region.unmatchedOrder, key)
		}
	}

	return region
}
