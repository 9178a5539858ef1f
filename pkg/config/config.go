// Package config parses and validates the CLI arguments for the
// raster-to-vector converter, following a fill-defaults-then-validate
// three-phase split. This program carries no persisted configuration
// and reads no environment variables; all input arrives as positional
// CLI arguments.
package config

import (
	"fmt"
	"strconv"
)

// Default values applied when the optional trailing arguments are
// omitted.
const (
	DefaultPolygonError    = 5.0
	DefaultShowInteractive = false
	DefaultSmoothEdges     = false
)

// Options holds validated CLI input for one conversion run.
type Options struct {
	ImagePath       string
	OutputPath      string
	NumColors       int
	PolygonError    float64
	ShowInteractive bool
	SmoothEdges     bool
}

// ParseArgs parses argv (excluding the program name) into Options,
// filling defaults for omitted trailing arguments, then validating the
// result.
//
// Expected form: <image-path> <output-path> <num-colors>
// [<polygon-error> <show-interactive> <smooth-edges>]
func ParseArgs(argv []string) (*Options, error) {
	if len(argv) < 3 || len(argv) > 6 {
		return nil, fmt.Errorf("expected 3 to 6 arguments, got %d: usage: <input-image-path> <output-svg-path> <num-colors> [<polygon-error> <show-interactive> <smooth-edges>]", len(argv))
	}

	opts := &Options{
		ImagePath:       argv[0],
		OutputPath:      argv[1],
		PolygonError:    DefaultPolygonError,
		ShowInteractive: DefaultShowInteractive,
		SmoothEdges:     DefaultSmoothEdges,
	}

	numColors, err := strconv.Atoi(argv[2])
	if err != nil {
		return nil, fmt.Errorf("num-colors must be an integer: %w", err)
	}
	opts.NumColors = numColors

	if len(argv) >= 4 {
		tau, err := strconv.ParseFloat(argv[3], 64)
		if err != nil {
			return nil, fmt.Errorf("polygon-error must be a number: %w", err)
		}
		opts.PolygonError = tau
	}

	if len(argv) >= 5 {
		b, err := parseBool(argv[4])
		if err != nil {
			return nil, fmt.Errorf("show-interactive: %w", err)
		}
		opts.ShowInteractive = b
	}

	if len(argv) >= 6 {
		b, err := parseBool(argv[5])
		if err != nil {
			return nil, fmt.Errorf("smooth-edges: %w", err)
		}
		opts.SmoothEdges = b
	}

	if err := opts.Validate(); err != nil {
		return nil, err
	}

	return opts, nil
}

// parseBool restricts boolean arguments to the literal strings "true"
// and "false", rejecting Go's broader strconv.ParseBool vocabulary
// (t/f/1/0/...).
func parseBool(s string) (bool, error) {
	switch s {
	case "true":
		return true, nil
	case "false":
		return false, nil
	default:
		return false, fmt.Errorf("must be literal \"true\" or \"false\", got %q", s)
	}
}

// Validate checks field-level invariants not already enforced during
// parsing.
func (o *Options) Validate() error {
	if o.ImagePath == "" {
		return fmt.Errorf("input image path must not be empty")
	}
	if o.OutputPath == "" {
		return fmt.Errorf("output SVG path must not be empty")
	}
	if o.NumColors < 1 {
		return fmt.Errorf("num-colors must be >= 1, got %d", o.NumColors)
	}
	if o.PolygonError < 0 {
		return fmt.Errorf("polygon-error must be >= 0, got %v", o.PolygonError)
	}
	return nil
}
