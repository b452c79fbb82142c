package geo

import (
	"errors"

	"github.com/paulmach/orb"
)

// DefaultTarget is the output canvas size the pipeline scales the fitted
// extent's long axis to.
const DefaultTarget = 1000.0

var (
	// ErrNotFitted is returned when Transform or Apply is called before a
	// successful Fit.
	ErrNotFitted = errors.New("scaler: transform called before fit")

	// ErrEmptyExtent is returned when Fit is called with no points.
	ErrEmptyExtent = errors.New("scaler: fit over an empty point set")

	// ErrDegenerateExtent is returned when the fitted bounding box has zero
	// width or zero height, leaving the aspect ratio undefined.
	ErrDegenerateExtent = errors.New("scaler: fit extent has zero width or height")
)

// Scaler is a two-phase space transformer: Fit learns the bounding box and
// aspect ratio of a point set, Transform rewrites points into output-canvas
// units. The x axis of the output spans [0, target]; the y axis spans
// [0, target/aspect], so the fitted extent keeps its proportions.
//
// A Scaler must be fitted once per coordinate space before any Transform or
// Apply call.
type Scaler struct {
	target float64
	bound  orb.Bound
	aspect float64
	fitted bool
}

// NewScaler returns a Scaler mapping fitted extents onto a canvas whose
// long axis measures target units.
func NewScaler(target float64) *Scaler {
	return &Scaler{target: target}
}

// Fit computes the bounding box and aspect ratio of pts, replacing any
// previous fit.
func (s *Scaler) Fit(pts []orb.Point) error {
	if len(pts) == 0 {
		return ErrEmptyExtent
	}

	bound := orb.Bound{Min: pts[0], Max: pts[0]}
	for _, p := range pts[1:] {
		bound = bound.Extend(p)
	}

	width := bound.Max[0] - bound.Min[0]
	height := bound.Max[1] - bound.Min[1]
	if width == 0 || height == 0 {
		return ErrDegenerateExtent
	}

	s.bound = bound
	s.aspect = width / height
	s.fitted = true
	return nil
}

// Apply maps a single point from the fitted space onto the output canvas.
func (s *Scaler) Apply(p orb.Point) (orb.Point, error) {
	if !s.fitted {
		return orb.Point{}, ErrNotFitted
	}
	return s.apply(p), nil
}

// Transform rewrites every point in pts in place.
func (s *Scaler) Transform(pts []orb.Point) error {
	if !s.fitted {
		return ErrNotFitted
	}
	for i, p := range pts {
		pts[i] = s.apply(p)
	}
	return nil
}

func (s *Scaler) apply(p orb.Point) orb.Point {
	return orb.Point{
		(p[0] - s.bound.Min[0]) / (s.bound.Max[0] - s.bound.Min[0]) * s.target,
		(p[1] - s.bound.Min[1]) / (s.bound.Max[1] - s.bound.Min[1]) * s.target / s.aspect,
	}
}

// Bound returns the bounding box learned by the last Fit.
func (s *Scaler) Bound() orb.Bound {
	return s.bound
}

// Aspect returns the width/height ratio learned by the last Fit.
func (s *Scaler) Aspect() float64 {
	return s.aspect
}
