package render

import (
	"testing"

	"github.com/paulmach/orb"
	"github.com/stretchr/testify/assert"

	"github.com/tmazeau/puymap/internal/parser"
)

func TestElevationColorAnchors(t *testing.T) {
	r, g, b := elevationColor(300)
	assert.InDelta(t, 255.0, r, 1e-9)
	assert.InDelta(t, 255.0, g, 1e-9)
	assert.InDelta(t, 255.0, b, 1e-9)

	r, g, b = elevationColor(900)
	assert.InDelta(t, 27.0, r, 1e-9)
	assert.InDelta(t, 126.0, g, 1e-9)
	assert.InDelta(t, 14.0, b, 1e-9)

	r, g, b = elevationColor(1200)
	assert.InDelta(t, 87.0, r, 1e-9)
	assert.InDelta(t, 53.0, g, 1e-9)
	assert.InDelta(t, 0.0, b, 1e-9)
}

func TestElevationColorClampsOutsideBands(t *testing.T) {
	r, g, b := elevationColor(0)
	assert.InDelta(t, 255.0, r, 1e-9)
	assert.InDelta(t, 255.0, g, 1e-9)
	assert.InDelta(t, 255.0, b, 1e-9)

	r, g, b = elevationColor(5000)
	assert.InDelta(t, 87.0, r, 1e-9)
	assert.InDelta(t, 53.0, g, 1e-9)
	assert.InDelta(t, 0.0, b, 1e-9)
}

func TestElevationColorContinuousAtBandEdge(t *testing.T) {
	r1, g1, b1 := elevationColor(900)
	r2, g2, b2 := elevationColor(901)

	assert.InDelta(t, r1, r2, 0.5)
	assert.InDelta(t, g1, g2, 0.5)
	assert.InDelta(t, b1, b2, 0.5)
}

func TestFillColor(t *testing.T) {
	closed := &parser.Way{
		Elevation: 600,
		Points:    orb.LineString{{0, 0}, {10, 0}, {10, 10}, {0, 0}},
	}
	assert.Equal(t, "rgba(141.00, 190.50, 134.50, 0.3)", fillColor(closed))

	sub := &parser.Way{
		Elevation: 600,
		Points:    closed.Points,
		Highlight: true,
	}
	assert.Equal(t, "transparent", fillColor(sub))

	open := &parser.Way{
		Elevation: 600,
		Points:    orb.LineString{{0, 0}, {150, 0}, {300, 0}},
	}
	assert.Equal(t, "transparent", fillColor(open), "an endpoint gap over 200 drops the fill")
}

func TestStrokeWidth(t *testing.T) {
	assert.Equal(t, "0.6", strokeWidth(&parser.Way{Elevation: 600}))
	assert.Equal(t, "0.6", strokeWidth(&parser.Way{Elevation: 0}))
	assert.Equal(t, "0.3", strokeWidth(&parser.Way{Elevation: 620}))
}

func TestStrokeColor(t *testing.T) {
	assert.Equal(t, "black", strokeColor(&parser.Way{Elevation: 600}))
	assert.Equal(t, "url(#Gradient1)", strokeColor(&parser.Way{Elevation: 600, Highlight: true}))
}

func TestPeakColor(t *testing.T) {
	assert.Equal(t, "rgba(50, 50, 255, 1)", peakColor(&parser.Peak{Visited: true}))
	assert.Equal(t, "rgba(255, 50, 50, 1)", peakColor(&parser.Peak{Visited: false}))
}
