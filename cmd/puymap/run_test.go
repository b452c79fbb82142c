package main

import (
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testConfig(t *testing.T) config {
	t.Helper()
	return config{
		// Keep every fixture way whole: the fixture extent spans hundreds of
		// canvas units, far beyond the defaults tuned for dense contour data.
		wayDistance:  1e6,
		wayClosure:   1e6,
		nodeDistance: 120,
		templatePath: "../../template.html",
		seed:         1,
		contoursPath: "testdata/contours.osm",
		peaksPath:    "testdata/peaks.csv",
		boundaryPath: "testdata/boundary.poly",
		outputPath:   filepath.Join(t.TempDir(), "out.html"),
	}
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestRunEndToEnd(t *testing.T) {
	cfg := testConfig(t)
	require.NoError(t, run(cfg, discardLogger()))

	raw, err := os.ReadFile(cfg.outputPath)
	require.NoError(t, err)
	html := string(raw)

	assert.Contains(t, html, "1 / 2 summits visited (50.0%)")

	// One boundary outline plus the two contour ways.
	assert.Equal(t, 3, strings.Count(html, "<path"))

	// The closed 500 m ring keeps its elevation band fill; the open way's
	// endpoint gap exceeds the open fill limit and renders hollow.
	assert.Contains(t, html, `fill="rgba(179.00, 212.00, 174.67, 0.3)"`)
	assert.Contains(t, html, `fill="transparent"`)
	assert.Contains(t, html, `d="M 1000.00 0.00 L 0.00 `)

	// Both summits placed, north of the region first.
	assert.Equal(t, 2, strings.Count(html, `class="puy"`))
	one := strings.Index(html, `<li class="visited">puy one</li>`)
	two := strings.Index(html, `<li>puy two</li>`)
	require.NotEqual(t, -1, one)
	require.NotEqual(t, -1, two)
	assert.Less(t, one, two, "checklist runs north to south")
}

func TestRunDeterministicOutput(t *testing.T) {
	first := testConfig(t)
	require.NoError(t, run(first, discardLogger()))

	second := testConfig(t)
	require.NoError(t, run(second, discardLogger()))

	a, err := os.ReadFile(first.outputPath)
	require.NoError(t, err)
	b, err := os.ReadFile(second.outputPath)
	require.NoError(t, err)
	assert.Equal(t, a, b, "same inputs and seed give identical pages")
}

func TestRunMissingTemplate(t *testing.T) {
	cfg := testConfig(t)
	cfg.templatePath = filepath.Join(t.TempDir(), "missing.html")

	err := run(cfg, discardLogger())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "load page template")
}

func TestRunNoSummits(t *testing.T) {
	cfg := testConfig(t)
	cfg.peaksPath = filepath.Join(t.TempDir(), "peaks.csv")
	csv := "label,lat,lon,visited,elevation\nnowhere,nan,nan,0,\n"
	require.NoError(t, os.WriteFile(cfg.peaksPath, []byte(csv), 0o644))

	err := run(cfg, discardLogger())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no summits with coordinates")
}

func TestParseLevel(t *testing.T) {
	assert.Equal(t, slog.LevelDebug, parseLevel("debug"))
	assert.Equal(t, slog.LevelWarn, parseLevel("WARN"))
	assert.Equal(t, slog.LevelError, parseLevel("error"))
	assert.Equal(t, slog.LevelInfo, parseLevel("info"))
	assert.Equal(t, slog.LevelInfo, parseLevel("everything"))
}
