package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"
	"strings"
	"time"
)

// config holds the command line configuration: the selection thresholds,
// the template and jitter settings, and the four input/output paths.
type config struct {
	wayDistance  float64
	wayClosure   float64
	nodeDistance float64
	templatePath string
	seed         int64
	logLevel     string

	contoursPath string
	peaksPath    string
	boundaryPath string
	outputPath   string
}

func main() {
	var cfg config

	flag.Float64Var(&cfg.wayDistance, "d", 30, "max distance from a way's barycenter to the nearest summit")
	flag.Float64Var(&cfg.wayClosure, "c", 200, "max endpoint gap for a way to be kept whole")
	flag.Float64Var(&cfg.nodeDistance, "n", 120, "node-to-summit distance used when decomposing rejected ways")
	flag.StringVar(&cfg.templatePath, "template", "template.html", "HTML page template")
	flag.Int64Var(&cfg.seed, "seed", 0, "sub-segment jitter seed (0 seeds from the current time)")
	flag.StringVar(&cfg.logLevel, "log-level", "info", "log level (debug|info|warn|error)")
	flag.Usage = usage
	flag.Parse()

	if flag.NArg() != 4 {
		usage()
		os.Exit(2)
	}
	cfg.contoursPath = flag.Arg(0)
	cfg.peaksPath = flag.Arg(1)
	cfg.boundaryPath = flag.Arg(2)
	cfg.outputPath = flag.Arg(3)

	if cfg.seed == 0 {
		cfg.seed = time.Now().UnixNano()
	}

	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: parseLevel(cfg.logLevel),
	}))

	if err := run(cfg, logger); err != nil {
		logger.Error("map generation failed", "error", err)
		os.Exit(1)
	}
}

func parseLevel(level string) slog.Level {
	switch strings.ToLower(level) {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

func usage() {
	fmt.Fprintf(os.Stderr, "Usage: %s [flags] contours.osm peaks.csv boundary.poly out.html\n\n", os.Args[0])
	fmt.Fprintln(os.Stderr, "Render a static summit visit map from OSM contour lines, a CSV of")
	fmt.Fprintln(os.Stderr, "summits with visit status, and a POLY region boundary.")
	fmt.Fprintln(os.Stderr)
	fmt.Fprintln(os.Stderr, "Flags:")
	flag.PrintDefaults()
}
