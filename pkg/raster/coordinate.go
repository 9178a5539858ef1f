package raster

// Coordinate is an integer pixel position, 0 <= X < W, 0 <= Y < H.
type Coordinate struct {
	X, Y int
}

// Key packs a Coordinate into the y*W+x integer used as a map key
// throughout segmentation and tracing.
func (c Coordinate) Key(width int) int {
	return c.Y*width + c.X
}

// CoordinateFromKey reverses Key for a given image width.
func CoordinateFromKey(key, width int) Coordinate {
	return Coordinate{X: key % width, Y: key / width}
}

// In reports whether c lies within a width x height image.
func (c Coordinate) In(width, height int) bool {
	return c.X >= 0 && c.Y >= 0 && c.X < width && c.Y < height
}

// Neighbors4 returns the four axis-aligned neighbors in the fixed
// order used by segmentation's flood fill: up, down, left, right.
func (c Coordinate) Neighbors4() [4]Coordinate {
	return [4]Coordinate{
		{X: c.X, Y: c.Y - 1},
		{X: c.X, Y: c.Y + 1},
		{X: c.X - 1, Y: c.Y},
		{X: c.X + 1, Y: c.Y},
	}
}

// neighborOffset8 is the contour tracer's fixed 8-neighbor priority
// order: up, left, down, right, down-right, down-left, up-right,
// up-left.
var neighborOffset8 = [8]Coordinate{
	{X: 0, Y: -1},
	{X: -1, Y: 0},
	{X: 0, Y: 1},
	{X: 1, Y: 0},
	{X: 1, Y: 1},
	{X: -1, Y: 1},
	{X: 1, Y: -1},
	{X: -1, Y: -1},
}

// Neighbors8 returns the eight neighbors of c in the tracer's fixed
// priority order.
func (c Coordinate) Neighbors8() [8]Coordinate {
	var out [8]Coordinate
	for i, off := range neighborOffset8 {
		out[i] = Coordinate{X: c.X + off.X, Y: c.Y + off.Y}
	}
	return out
}
