// Package geo maps geographic coordinates onto the planar canvases the
// rest of the pipeline works in: a Mercator-style projection into a fixed
// virtual canvas, and a bounding-box scaler that normalizes projected
// points into output units while preserving their aspect ratio.
package geo

import (
	"fmt"
	"math"

	"github.com/paulmach/orb"
)

// Virtual canvas the projection maps into. Longitude spans the full canvas
// width; the equator lands on the canvas half-height.
const (
	canvasWidth  = 679.0
	canvasHeight = 724.0
)

// ErrInvalidCoordinate indicates a coordinate outside the projectable domain.
type ErrInvalidCoordinate struct {
	Lat, Lon float64
}

func (e *ErrInvalidCoordinate) Error() string {
	return fmt.Sprintf("invalid coordinate: lat=%f lon=%f (lat must be strictly within ±90, lon within ±180)",
		e.Lat, e.Lon)
}

// Project converts a latitude/longitude pair in degrees to a point on the
// 679×724 virtual canvas. The x axis is linear in longitude; the y axis
// applies the inverse-Gudermannian log-tangent transform of latitude,
// centered on the canvas half-height, so Project(0, 0) = (339.5, 362).
//
// Latitude must be strictly inside (-90, 90): the log-tangent term has no
// value at the poles. Longitude must be within [-180, 180].
func Project(lat, lon float64) (orb.Point, error) {
	if lat <= -90.0 || lat >= 90.0 || lon < -180.0 || lon > 180.0 {
		return orb.Point{}, &ErrInvalidCoordinate{Lat: lat, Lon: lon}
	}

	theta := math.Pi * lat / 180.0
	phi := math.Pi * lon / 180.0

	x := canvasWidth * (phi + math.Pi) / (2 * math.Pi)
	y := 0.5*canvasHeight - canvasWidth/(2*math.Pi)*math.Log(math.Tan(0.25*math.Pi+0.5*theta))

	return orb.Point{x, y}, nil
}
