package config

import "testing"

func TestParseArgsFillsDefaults(t *testing.T) {
	opts, err := ParseArgs([]string{"in.png", "out.svg", "8"})
	if err != nil {
		t.Fatalf("ParseArgs: %v", err)
	}
	if opts.NumColors != 8 {
		t.Errorf("NumColors = %d, want 8", opts.NumColors)
	}
	if opts.PolygonError != DefaultPolygonError {
		t.Errorf("PolygonError = %v, want default %v", opts.PolygonError, DefaultPolygonError)
	}
	if opts.ShowInteractive != DefaultShowInteractive {
		t.Errorf("ShowInteractive = %v, want default %v", opts.ShowInteractive, DefaultShowInteractive)
	}
	if opts.SmoothEdges != DefaultSmoothEdges {
		t.Errorf("SmoothEdges = %v, want default %v", opts.SmoothEdges, DefaultSmoothEdges)
	}
}

func TestParseArgsFullForm(t *testing.T) {
	opts, err := ParseArgs([]string{"in.png", "out.svg", "4", "2.5", "true", "false"})
	if err != nil {
		t.Fatalf("ParseArgs: %v", err)
	}
	if opts.PolygonError != 2.5 {
		t.Errorf("PolygonError = %v, want 2.5", opts.PolygonError)
	}
	if !opts.ShowInteractive {
		t.Errorf("ShowInteractive = false, want true")
	}
	if opts.SmoothEdges {
		t.Errorf("SmoothEdges = true, want false")
	}
}

func TestParseArgsRejectsBadArgCount(t *testing.T) {
	tests := [][]string{
		{"in.png", "out.svg"},
		{"in.png", "out.svg", "4", "1", "true", "false", "extra"},
	}
	for _, argv := range tests {
		if _, err := ParseArgs(argv); err == nil {
			t.Errorf("ParseArgs(%v) expected error for bad argument count", argv)
		}
	}
}

func TestParseArgsRejectsNonPositiveNumColors(t *testing.T) {
	if _, err := ParseArgs([]string{"in.png", "out.svg", "0"}); err == nil {
		t.Errorf("expected error for num-colors=0")
	}
}

func TestParseArgsRejectsNegativePolygonError(t *testing.T) {
	if _, err := ParseArgs([]string{"in.png", "out.svg", "4", "-1"}); err == nil {
		t.Errorf("expected error for negative polygon-error")
	}
}

func TestParseArgsRejectsNonLiteralBooleans(t *testing.T) {
	tests := []string{"1", "t", "yes", "TRUE"}
	for _, v := range tests {
		if _, err := ParseArgs([]string{"in.png", "out.svg", "4", "1", v}); err == nil {
			t.Errorf("show-interactive=%q expected rejection (only literal true/false allowed)", v)
		}
	}
}
