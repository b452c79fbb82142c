package main

import (
	"fmt"
	"log/slog"
	"math/rand"
	"os"
	"sort"

	"github.com/paulmach/orb"

	"github.com/tmazeau/puymap/internal/geo"
	"github.com/tmazeau/puymap/internal/parser"
	"github.com/tmazeau/puymap/internal/render"
)

// run executes the full pipeline: load the three inputs, scale everything
// into the output canvas, build the scene and write the page around it.
func run(cfg config, logger *slog.Logger) error {
	tpl, err := render.LoadTemplate(cfg.templatePath)
	if err != nil {
		return err
	}

	nodes, ways, err := parser.LoadContours(cfg.contoursPath)
	if err != nil {
		return err
	}
	logger.Info("loaded contours", "nodes", len(nodes), "ways", len(ways))

	peaks, err := parser.LoadPeaks(cfg.peaksPath)
	if err != nil {
		return err
	}
	if len(peaks) == 0 {
		return fmt.Errorf("no summits with coordinates in %s", cfg.peaksPath)
	}
	// North to south: smaller projected y is further north.
	sort.SliceStable(peaks, func(i, j int) bool {
		return peaks[i].Point[1] < peaks[j].Point[1]
	})
	logger.Info("loaded summits", "count", len(peaks), "visited", countVisited(peaks))

	boundary, err := parser.LoadBoundary(cfg.boundaryPath)
	if err != nil {
		return err
	}
	ring := boundary.Rings[0]
	logger.Info("loaded boundary",
		"title", boundary.Title, "ring", ring.Name, "points", len(ring.Points))

	// The scaler fits on every contour node, referenced by a way or not,
	// then maps ways, summits and the outline into the same canvas.
	scaler := geo.NewScaler(geo.DefaultTarget)
	if err := scaler.Fit(nodeValues(nodes)); err != nil {
		return fmt.Errorf("fit contour extent: %w", err)
	}
	for _, way := range ways {
		if err := scaler.Transform(way.Points); err != nil {
			return err
		}
	}
	for i := range peaks {
		p, err := scaler.Apply(peaks[i].Point)
		if err != nil {
			return err
		}
		peaks[i].Point = p
	}
	if err := scaler.Transform(ring.Points); err != nil {
		return err
	}

	opts := render.Options{
		WayDistance:  cfg.wayDistance,
		WayClosure:   cfg.wayClosure,
		NodeDistance: cfg.nodeDistance,
		Rand:         rand.New(rand.NewSource(cfg.seed)),
	}
	scene, err := render.BuildScene(ways, peaks, ring, opts)
	if err != nil {
		return err
	}
	logger.Info("built scene", "bytes", len(scene))

	out, err := os.Create(cfg.outputPath)
	if err != nil {
		return fmt.Errorf("create output: %w", err)
	}
	if err := render.BuildPage(out, tpl, scene, peaks); err != nil {
		out.Close()
		return err
	}
	if err := out.Close(); err != nil {
		return fmt.Errorf("close output: %w", err)
	}
	logger.Info("wrote map", "path", cfg.outputPath)

	return nil
}

func nodeValues(nodes map[string]orb.Point) []orb.Point {
	pts := make([]orb.Point, 0, len(nodes))
	for _, p := range nodes {
		pts = append(pts, p)
	}
	return pts
}

func countVisited(peaks []parser.Peak) int {
	visited := 0
	for i := range peaks {
		if peaks[i].Visited {
			visited++
		}
	}
	return visited
}
