// Package render turns loaded map data into the final deliverable: it picks
// and decomposes contour ways around the summits, styles them by elevation,
// assembles the SVG scene and renders the HTML page around it.
package render

import (
	"math/rand"
)

// Options configures way selection and decomposition. Distances are in
// scaled canvas units (the scaler's 1000-unit space).
type Options struct {
	// WayDistance is how far a way's barycenter may sit from the nearest
	// summit before the way is rejected as a whole.
	WayDistance float64

	// WayClosure is the largest endpoint gap a way may have before it is
	// rejected as a whole.
	WayClosure float64

	// NodeDistance is the per-node proximity threshold used when a rejected
	// way is decomposed into sub-segments.
	NodeDistance float64

	// Rand drives the jitter applied to sub-segment endpoints. A nil Rand
	// gets a time-seeded source; inject a fixed seed for reproducible output.
	Rand *rand.Rand
}

// DefaultOptions returns the thresholds tuned for the 1:25000 contour export.
func DefaultOptions() Options {
	return Options{
		WayDistance:  30,
		WayClosure:   200,
		NodeDistance: 120,
		Rand:         nil,
	}
}
