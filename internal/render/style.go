package render

import (
	"fmt"
	"math"

	"github.com/tmazeau/puymap/internal/parser"
)

// Elevation color bands, in meters.
const (
	minElevation = 300
	midElevation = 900
	maxElevation = 1200
)

// openFillGap is the endpoint gap, in canvas units, beyond which a contour
// is drawn as an open line with no fill.
const openFillGap = 200.0

var (
	lowBandColor  = [3]float64{255, 255, 255} // white
	midBandColor  = [3]float64{27, 126, 14}   // dark green
	highBandColor = [3]float64{87, 53, 0}     // brown
)

// elevationColor interpolates the fill color for an elevation: white to dark
// green across [300, 900], dark green to brown across (900, 1200]. Values
// outside the bands clamp to the band edges.
func elevationColor(elevation int) (r, g, b float64) {
	var start, end [3]float64
	var percent float64

	if elevation > midElevation {
		start, end = midBandColor, highBandColor
		percent = float64(elevation-midElevation) / float64(maxElevation-midElevation)
	} else {
		start, end = lowBandColor, midBandColor
		percent = float64(elevation-minElevation) / float64(midElevation-minElevation)
	}
	percent = math.Min(1, math.Max(0, percent))

	r = percent*end[0] + (1-percent)*start[0]
	g = percent*end[1] + (1-percent)*start[1]
	b = percent*end[2] + (1-percent)*start[2]
	return r, g, b
}

// fillColor returns the way's fill. Sub-segments and open ways stay
// transparent; closed contours get their translucent elevation color.
func fillColor(way *parser.Way) string {
	if way.Highlight || way.Closure() > openFillGap {
		return "transparent"
	}
	r, g, b := elevationColor(way.Elevation)
	return fmt.Sprintf("rgba(%.2f, %.2f, %.2f, 0.3)", r, g, b)
}

// strokeColor returns the way's stroke paint. Sub-segments use the shared
// vertical gradient instead of a flat color.
func strokeColor(way *parser.Way) string {
	if way.Highlight {
		return "url(#Gradient1)"
	}
	return "black"
}

// strokeWidth thickens every 50 m contour.
func strokeWidth(way *parser.Way) string {
	if way.Elevation%50 == 0 {
		return "0.6"
	}
	return "0.3"
}

// peakColor encodes visit status: blue for visited, red for not yet.
func peakColor(peak *parser.Peak) string {
	if peak.Visited {
		return "rgba(50, 50, 255, 1)"
	}
	return "rgba(255, 50, 50, 1)"
}
