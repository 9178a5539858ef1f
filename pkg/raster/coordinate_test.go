package raster

import "testing"

func TestCoordinateKeyRoundTrip(t *testing.T) {
	width := 37
	coords := []Coordinate{{X: 0, Y: 0}, {X: 36, Y: 0}, {X: 5, Y: 12}}
	for _, c := range coords {
		got := CoordinateFromKey(c.Key(width), width)
		if got != c {
			t.Errorf("CoordinateFromKey(Key(%v)) = %v, want %v", c, got, c)
		}
	}
}

func TestNeighbors8Order(t *testing.T) {
	c := Coordinate{X: 5, Y: 5}
	want := [8]Coordinate{
		{X: 5, Y: 4}, {X: 4, Y: 5}, {X: 5, Y: 6}, {X: 6, Y: 5},
		{X: 6, Y: 6}, {X: 4, Y: 6}, {X: 6, Y: 4}, {X: 4, Y: 4},
	}
	got := c.Neighbors8()
	if got != want {
		t.Errorf("Neighbors8() = %v, want %v (up, left, down, right, down-right, down-left, up-right, up-left)", got, want)
	}
}

func TestCoordinateIn(t *testing.T) {
	if !(Coordinate{X: 0, Y: 0}).In(10, 10) {
		t.Errorf("(0,0) should be in a 10x10 grid")
	}
	if (Coordinate{X: 10, Y: 0}).In(10, 10) {
		t.Errorf("(10,0) should be out of bounds for a 10x10 grid")
	}
	if (Coordinate{X: -1, Y: 0}).In(10, 10) {
		t.Errorf("(-1,0) should be out of bounds")
	}
}
