package raster

// Loop is an ordered traversal of a region's boundary pixels.
// Coordinates is the raw traced path; Simplified, Area, IdealLength
// and IdealError are filled in by the polygon simplifier.
type Loop struct {
	Coordinates []Coordinate
	Closed      bool
	Color       Color

	Simplified  []Coordinate
	Area        float64
	IdealLength int
	IdealError  float64
}

// Len returns the vertex count of the traced (not simplified) loop.
func (l *Loop) Len() int {
	return len(l.Coordinates)
}
