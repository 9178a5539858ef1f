package raster

import "testing"

func TestEqualRelaxesTransparentAlpha(t *testing.T) {
	tests := []struct {
		name string
		a, b Color
		want bool
	}{
		{"identical opaque", Color{R: 10, G: 20, B: 30, A: 255}, Color{R: 10, G: 20, B: 30, A: 255}, true},
		{"different opaque alpha", Color{R: 10, G: 20, B: 30, A: 255}, Color{R: 10, G: 20, B: 30, A: 128}, false},
		{"one transparent, rgb matches", Color{R: 10, G: 20, B: 30, A: 0}, Color{R: 10, G: 20, B: 30, A: 255}, true},
		{"both transparent, rgb differs", Color{R: 10, G: 20, B: 30, A: 0}, Color{R: 11, G: 20, B: 30, A: 0}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Equal(tt.a, tt.b); got != tt.want {
				t.Errorf("Equal(%v, %v) = %v, want %v", tt.a, tt.b, got, tt.want)
			}
		})
	}
}

func TestPackUnpackRoundTrip(t *testing.T) {
	colors := []Color{
		{R: 0, G: 0, B: 0, A: 0},
		{R: 255, G: 255, B: 255, A: 255},
		{R: 12, G: 200, B: 7, A: 64},
	}
	for _, c := range colors {
		key := c.Pack()
		got := Unpack(key)
		if got != c {
			t.Errorf("Unpack(Pack(%v)) = %v, want %v", c, got, c)
		}
	}
}

func TestDistanceSquaredZeroForIdentical(t *testing.T) {
	c := Color{R: 5, G: 6, B: 7, A: 8}
	if d := DistanceSquared(c, c); d != 0 {
		t.Errorf("DistanceSquared(c, c) = %d, want 0", d)
	}
}
