// Command tilingsolve loads a tiling instance document, solves it and
// writes the solved tiling as SVG or PNG.
//
// Exit codes: 0 solved, 1 proven infeasible, 2 any error.
package main

import (
	"errors"
	"flag"
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/phillip-keldenich/tiling-problem/render"
	"github.com/phillip-keldenich/tiling-problem/tile"
	"github.com/phillip-keldenich/tiling-problem/tiling"
	"github.com/phillip-keldenich/tiling-problem/tilingio"
)

func main() {
	var (
		instancePath  = flag.String("instance", "", "path to the JSON instance document (required)")
		outputPath    = flag.String("out", "", "output image path; omit to solve without rendering")
		format        = flag.String("format", "svg", "output format: svg or png")
		noRotations   = flag.Bool("no-rotations", false, "disallow rotated tile orientations")
		noReflections = flag.Bool("no-reflections", false, "disallow reflected tile orientations")
		scale         = flag.Float64("scale", 40, "output units per world unit (a tile spans 2 world units)")
		verbose       = flag.Bool("v", false, "enable debug logging")
	)
	flag.Parse()

	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.TimeOnly})
	zerolog.SetGlobalLevel(zerolog.InfoLevel)
	if *verbose {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	}

	if *instancePath == "" {
		flag.Usage()
		os.Exit(2)
	}

	inst, err := tilingio.LoadFile(*instancePath)
	if err != nil {
		log.Error().Err(err).Str("path", *instancePath).Msg("failed to load instance")
		os.Exit(2)
	}
	log.Info().
		Str("instance", inst.Name).
		Int("tile_types", len(inst.TileTypes)).
		Int("width", inst.Width).
		Int("height", inst.Height).
		Msg("instance loaded")

	opts := tiling.DefaultSolveOptions()
	opts.Symmetry = tile.Options{
		AllowRotations:   !*noRotations,
		AllowReflections: !*noReflections,
	}

	start := time.Now()
	sol, err := tiling.Solve(inst, opts)
	elapsed := time.Since(start)
	switch {
	case errors.Is(err, tiling.ErrNoSolution):
		log.Info().Dur("elapsed", elapsed).Msg("no solution exists")
		os.Exit(1)
	case err != nil:
		log.Error().Err(err).Dur("elapsed", elapsed).Msg("solve failed")
		os.Exit(2)
	}
	log.Info().Dur("elapsed", elapsed).Int("cells", len(sol)).Msg("solved")

	if *outputPath == "" {
		return
	}
	if err := writeOutput(*outputPath, *format, sol, *scale); err != nil {
		log.Error().Err(err).Str("path", *outputPath).Msg("failed to write output")
		os.Exit(2)
	}
	log.Info().Str("path", *outputPath).Str("format", *format).Msg("output written")
}

func writeOutput(path, format string, sol tiling.Solution, scale float64) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	ropts := render.DefaultOptions()
	ropts.Scale = scale
	switch format {
	case "png":
		return render.WritePNG(f, sol, ropts)
	case "svg":
		return render.WriteSVG(f, sol, ropts)
	default:
		return errors.New("unknown output format: " + format)
	}
}
