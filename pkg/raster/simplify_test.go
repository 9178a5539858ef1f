package raster

import "testing"

func squareLoop(n int) *Loop {
	return &Loop{
		Coordinates: []Coordinate{
			{X: 0, Y: 0}, {X: n, Y: 0}, {X: n, Y: n}, {X: 0, Y: n},
		},
	}
}

func TestSimplifyZeroToleranceRemovesNothing(t *testing.T) {
	loop := squareLoop(10)
	Simplify(loop, 0)

	if loop.IdealLength != len(loop.Coordinates) {
		t.Errorf("IdealLength = %d, want %d (tau=0 must not remove any vertex)", loop.IdealLength, len(loop.Coordinates))
	}
	if len(loop.Simplified) != len(loop.Coordinates) {
		t.Errorf("Simplified has %d vertices, want %d", len(loop.Simplified), len(loop.Coordinates))
	}
}

func TestSimplifiedIsSubsequenceOfOriginal(t *testing.T) {
	loop := &Loop{
		Coordinates: []Coordinate{
			{X: 0, Y: 0}, {X: 1, Y: 0}, {X: 2, Y: 0}, {X: 3, Y: 0},
			{X: 3, Y: 3}, {X: 0, Y: 3},
		},
	}
	Simplify(loop, 2.0)

	idx := 0
	for _, v := range loop.Simplified {
		found := false
		for idx < len(loop.Coordinates) {
			if loop.Coordinates[idx] == v {
				found = true
				idx++
				break
			}
			idx++
		}
		if !found {
			t.Fatalf("simplified vertex %v is not a subsequence member of the original loop", v)
		}
	}
}

func TestSimplifyEmptyLoop(t *testing.T) {
	loop := &Loop{}
	Simplify(loop, 5.0)
	if loop.Simplified != nil {
		t.Errorf("Simplified = %v, want nil for an empty loop", loop.Simplified)
	}
	if loop.IdealLength != 0 {
		t.Errorf("IdealLength = %d, want 0", loop.IdealLength)
	}
}

func TestMinAreaVertexIndexBreaksTiesByLowestIndex(t *testing.T) {
	// Four collinear points: every interior vertex has zero triangle
	// area, so the tie must resolve to the lowest index.
	verts := []Coordinate{{X: 0, Y: 0}, {X: 1, Y: 0}, {X: 2, Y: 0}, {X: 3, Y: 0}}
	if got := minAreaVertexIndex(verts); got != 0 {
		t.Errorf("minAreaVertexIndex = %d, want 0", got)
	}
}
