package parser

import (
	"fmt"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/planar"
)

// Way is a topographic contour line extracted from OSM data.
//
// Points are already projected onto the virtual canvas; the loader resolves
// every `nd ref` against the node table and projects as it reads. A Way
// whose first and last points coincide traces a closed elevation ring.
type Way struct {
	// Elevation is the contour elevation in meters, from the way's `ele` tag.
	Elevation int
	// Points is the node sequence in document order.
	Points orb.LineString
	// Highlight marks a derived sub-segment rather than a whole contour.
	// Sub-segments render with the gradient stroke and no fill.
	Highlight bool
}

// Barycenter returns the mean of the way's points, or the zero point for an
// empty way.
func (w *Way) Barycenter() orb.Point {
	if len(w.Points) == 0 {
		return orb.Point{}
	}

	var sx, sy float64
	for _, p := range w.Points {
		sx += p[0]
		sy += p[1]
	}
	n := float64(len(w.Points))
	return orb.Point{sx / n, sy / n}
}

// Closure returns the distance between the way's endpoints. A perfectly
// closed ring has closure 0.
func (w *Way) Closure() float64 {
	if len(w.Points) < 2 {
		return 0
	}
	return planar.Distance(w.Points[0], w.Points[len(w.Points)-1])
}

// Peak is a summit read from the visits CSV.
type Peak struct {
	// Point is the summit location projected onto the virtual canvas.
	Point orb.Point
	// Label is the display name, without the elevation suffix.
	Label string
	// Visited reports whether the summit is checked off.
	Visited bool
	// Elevation is the summit elevation in meters, nil when the CSV cell
	// is empty.
	Elevation *int
}

// FullLabel returns the label with the elevation suffix, e.g.
// "puy de Dôme (1465m)". Peaks without a known elevation keep the bare label.
func (p *Peak) FullLabel() string {
	if p.Elevation == nil {
		return p.Label
	}
	return fmt.Sprintf("%s (%dm)", p.Label, *p.Elevation)
}

// Boundary is a region outline in the Osmosis POLY format: a title line
// followed by one or more named rings.
type Boundary struct {
	Title string
	Rings []Ring
}

// Ring is one named section of a POLY file.
type Ring struct {
	Name string
	// Points is the outline in file order, projected onto the virtual canvas.
	Points orb.LineString
}
