// Command raster2svg converts a raster bitmap into an SVG via palette
// quantization, region segmentation, contour tracing, polygon
// simplification and SVG emission: logger construction, error
// surfacing to stderr, and non-zero exit codes on failure.
package main

import (
	"context"
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"os"
	"path/filepath"
	"strings"

	"github.com/willibrandon/raster2svg-go/internal/logging"
	"github.com/willibrandon/raster2svg-go/pkg/pipeline"
)

func main() {
	os.Exit(run(os.Args[1:]))
}

func run(argv []string) int {
	logger := logging.New("info")

	opts, err := pipeline.ParseArgs(argv)
	if err != nil {
		fmt.Fprintf(os.Stderr, "%v\n\nusage: raster2svg <input-image-path> <output-svg-path> <num-colors> [<polygon-error> <show-interactive> <smooth-edges>]\n", err)
		return 1
	}

	in, err := os.Open(opts.ImagePath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "opening input image: %v\n", err)
		return 1
	}
	defer in.Close()

	img, _, err := image.Decode(in)
	if err != nil {
		fmt.Fprintf(os.Stderr, "decoding input image: %v\n", err)
		return 1
	}

	outputBase := strings.TrimSuffix(opts.OutputPath, filepath.Ext(opts.OutputPath))

	result, err := pipeline.Run(context.Background(), img, opts, outputBase, logger)
	if err != nil {
		logger.Error("Conversion failed: {Error}", err)
		fmt.Fprintf(os.Stderr, "conversion failed: %v\n", err)
		return 1
	}

	if err := os.WriteFile(opts.OutputPath, []byte(result.SVG), 0644); err != nil {
		logger.Error("Writing output SVG failed: {Error}", err)
		fmt.Fprintf(os.Stderr, "writing output: %v\n", err)
		return 1
	}

	logger.Information("Converted {Regions} regions, {Loops} loops, {PaletteSize} colors -> {Output}",
		result.RegionCount, result.LoopCount, result.PaletteSize, opts.OutputPath)

	return 0
}
