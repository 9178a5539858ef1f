// Package pipeline orchestrates the five core stages (Palette Reducer,
// Region Segmenter, Contour Tracer, Polygon Simplifier, SVG Emitter)
// behind one synchronous Run call, wrapping each stage with
// request-scoped logging and timing.
package pipeline

import (
	"context"
	"fmt"
	"image"
	"math/rand"
	"time"

	"github.com/willibrandon/mtlog/core"

	"github.com/willibrandon/raster2svg-go/internal/logging"
	"github.com/willibrandon/raster2svg-go/pkg/config"
	"github.com/willibrandon/raster2svg-go/pkg/preview"
	"github.com/willibrandon/raster2svg-go/pkg/raster"
	"github.com/willibrandon/raster2svg-go/pkg/svgwriter"
)

// Options is the validated CLI input for one run; ParseArgs builds one
// from argv.
type Options = config.Options

// ParseArgs parses and validates CLI arguments into Options.
var ParseArgs = config.ParseArgs

// Result summarizes a completed run for logging and tests.
type Result struct {
	RegionCount  int
	LoopCount    int
	PaletteSize  int
	SVG          string
	StageElapsed map[string]time.Duration
}

// Run executes the full pipeline against img with the given options,
// logging each stage's timing under a single per-invocation RunID.
// outputBase is used to name preview frames when opts.ShowInteractive
// is set; it is never read back by the pipeline.
func Run(ctx context.Context, img image.Image, opts *Options, outputBase string, logger core.Logger) (*Result, error) {
	runID := logging.NewRunID()
	result := &Result{StageElapsed: make(map[string]time.Duration)}

	if opts.ShowInteractive {
		if err := preview.Capture(img, outputBase, preview.StageOriginal); err != nil {
			return nil, err
		}
	}

	var reduced *raster.ReduceResult
	if err := timedStage(ctx, logger, runID, "PaletteReduce", &result.StageElapsed, func(ctx context.Context) error {
		rng := rand.New(rand.NewSource(1))
		r, err := raster.Reduce(img, opts.NumColors, rng)
		if err != nil {
			return fmt.Errorf("palette reduction: %w", err)
		}
		reduced = r

		for _, report := range raster.Describe(reduced.Palette) {
			logger.Information("color {Hex} hue {Hue} sat {Sat} light {Light} share {SharePct}%",
				report.Hex, report.Hue, report.Sat, report.Light, report.SharePct)
		}
		return nil
	}); err != nil {
		return nil, err
	}
	result.PaletteSize = len(reduced.Palette.Colors)

	if opts.ShowInteractive {
		if err := preview.Capture(preview.WorkingImageToImage(reduced.Working), outputBase, preview.StageReducedColors); err != nil {
			return nil, err
		}
	}

	// An empty region set after the size-10 noise filter is not fatal:
	// the run still produces a valid (empty) SVG wrapper/mask skeleton.
	var regions []*raster.Region
	if err := timedStage(ctx, logger, runID, "Segment", &result.StageElapsed, func(ctx context.Context) error {
		regions = raster.Segment(reduced.Working)
		if len(regions) == 0 {
			logger.Information("Segmentation produced zero regions; emitting empty SVG skeleton")
		}
		return nil
	}); err != nil {
		return nil, err
	}
	result.RegionCount = len(regions)

	if opts.ShowInteractive {
		if err := preview.Capture(preview.BoundaryFrame(reduced.Working, regions), outputBase, preview.StageExtractedEdges); err != nil {
			return nil, err
		}
	}

	if err := timedStage(ctx, logger, runID, "Trace", &result.StageElapsed, func(ctx context.Context) error {
		raster.TraceAll(regions, reduced.Working.Width, reduced.Working.Height)
		return nil
	}); err != nil {
		return nil, err
	}

	var loops []*raster.Loop
	if err := timedStage(ctx, logger, runID, "Simplify", &result.StageElapsed, func(ctx context.Context) error {
		for _, region := range regions {
			for i := range region.Loops {
				raster.Simplify(&region.Loops[i], opts.PolygonError)
				loops = append(loops, &region.Loops[i])
			}
		}
		return nil
	}); err != nil {
		return nil, err
	}
	result.LoopCount = len(loops)

	if opts.ShowInteractive {
		if err := preview.Capture(preview.PolygonFrame(reduced.Working, regions), outputBase, preview.StageGeneratePolygons); err != nil {
			return nil, err
		}
	}

	if err := timedStage(ctx, logger, runID, "Emit", &result.StageElapsed, func(ctx context.Context) error {
		result.SVG = svgwriter.Render(reduced.Working.Width, reduced.Working.Height, loops, reduced.NullColor, opts.SmoothEdges)
		return nil
	}); err != nil {
		return nil, err
	}

	return result, nil
}

func timedStage(ctx context.Context, logger core.Logger, runID, name string, elapsed *map[string]time.Duration, fn func(context.Context) error) error {
	start := time.Now()
	err := logging.Stage(ctx, logger, runID, name, fn)
	(*elapsed)[name] = time.Since(start)
	return err
}
