package render

import (
	"errors"
	"fmt"
	"strings"

	"github.com/beevik/etree"
	"github.com/paulmach/orb"

	"github.com/tmazeau/puymap/internal/geo"
	"github.com/tmazeau/puymap/internal/parser"
	"github.com/tmazeau/puymap/internal/spatial"
)

// BuildScene assembles the SVG scene: the region outline, the selected
// contour ways, and one marker per summit, in that paint order. All inputs
// must already be in scaled canvas coordinates.
//
// The scene's viewBox is fitted to the placed content (way and summit
// points), so an outline larger than the drawn contours gets cropped rather
// than padding the map with empty space.
func BuildScene(ways []*parser.Way, peaks []parser.Peak, ring parser.Ring, opts Options) (string, error) {
	if len(ring.Points) == 0 {
		return "", errors.New("boundary ring has no points")
	}

	summits := spatial.NewIndex(peakPoints(peaks))
	placed := make(map[orb.Point]struct{})

	doc := etree.NewDocument()
	svg := doc.CreateElement("svg")
	writeGradient(svg.CreateElement("defs"))

	scene := svg.CreateElement("g")
	scene.CreateAttr("id", "scene")

	outline := scene.CreateElement("g")
	outline.CreateAttr("stroke-linejoin", "round")
	writeBoundary(outline, ring)

	contours := scene.CreateElement("g")
	contours.CreateAttr("stroke-linejoin", "round")
	for _, way := range selectWays(ways, summits, opts) {
		writeWay(contours, way, placed)
	}

	markers := scene.CreateElement("g")
	for i := range peaks {
		writePeak(markers, &peaks[i], placed)
	}

	bound, err := fitScene(placed)
	if err != nil {
		return "", err
	}
	width := bound.Max[0] - bound.Min[0]
	height := bound.Max[1] - bound.Min[1]
	svg.CreateAttr("width", fmt.Sprintf("%.2f", width))
	svg.CreateAttr("height", fmt.Sprintf("%.2f", height))
	svg.CreateAttr("viewBox", fmt.Sprintf("%.2f %.2f %.2f %.2f",
		bound.Min[0], bound.Min[1], width, height))
	svg.CreateAttr("xmlns", "http://www.w3.org/2000/svg")

	doc.Indent(2)
	return doc.WriteToString()
}

// fitScene computes the bounding box of everything placed in the scene.
func fitScene(placed map[orb.Point]struct{}) (orb.Bound, error) {
	pts := make([]orb.Point, 0, len(placed))
	for p := range placed {
		pts = append(pts, p)
	}

	scaler := geo.NewScaler(geo.DefaultTarget)
	if err := scaler.Fit(pts); err != nil {
		return orb.Bound{}, fmt.Errorf("fit scene extent: %w", err)
	}
	return scaler.Bound(), nil
}

// writeGradient emits the vertical fade used as the sub-segment stroke.
func writeGradient(defs *etree.Element) {
	gradient := defs.CreateElement("linearGradient")
	gradient.CreateAttr("id", "Gradient1")
	gradient.CreateAttr("x1", "0")
	gradient.CreateAttr("x2", "0")
	gradient.CreateAttr("y1", "0")
	gradient.CreateAttr("y2", "1")

	stops := []struct {
		offset  string
		opacity string
	}{
		{"0%", ".3"},
		{"50%", ".4"},
		{"100%", ".3"},
	}
	for _, stop := range stops {
		el := gradient.CreateElement("stop")
		el.CreateAttr("offset", stop.offset)
		el.CreateAttr("stop-color", "black")
		el.CreateAttr("stop-opacity", stop.opacity)
	}
}

// writeBoundary draws the region outline, thinned to every 10th interior
// point.
func writeBoundary(parent *etree.Element, ring parser.Ring) {
	var d strings.Builder
	fmt.Fprintf(&d, "M %s", coord(ring.Points[0]))
	for i := 1; i < len(ring.Points)-1; i += 10 {
		fmt.Fprintf(&d, " L %s", coord(ring.Points[i]))
	}

	path := parent.CreateElement("path")
	path.CreateAttr("stroke", "grey")
	path.CreateAttr("fill", "transparent")
	path.CreateAttr("stroke-width", "1")
	path.CreateAttr("d", d.String())
}

// writeWay draws one contour. Whole ways start their path at the last point
// so a nearly-closed ring draws its closing segment; sub-segments start at
// their first point.
func writeWay(parent *etree.Element, way *parser.Way, placed map[orb.Point]struct{}) {
	if len(way.Points) == 0 {
		return
	}

	start := way.Points[len(way.Points)-1]
	if way.Highlight {
		start = way.Points[0]
	}

	var d strings.Builder
	fmt.Fprintf(&d, "M %s", coord(start))
	for _, p := range way.Points {
		fmt.Fprintf(&d, " L %s", coord(p))
		placed[p] = struct{}{}
	}

	path := parent.CreateElement("path")
	path.CreateAttr("fill", fillColor(way))
	path.CreateAttr("d", d.String())
	path.CreateAttr("stroke", strokeColor(way))
	path.CreateAttr("stroke-width", strokeWidth(way))
}

// writePeak draws a summit marker: a small status-colored circle with the
// full label floating above it.
func writePeak(parent *etree.Element, peak *parser.Peak, placed map[orb.Point]struct{}) {
	placed[peak.Point] = struct{}{}

	marker := parent.CreateElement("g")
	marker.CreateAttr("class", "puy")

	circle := marker.CreateElement("circle")
	circle.CreateAttr("cx", fmt.Sprintf("%.2f", peak.Point[0]))
	circle.CreateAttr("cy", fmt.Sprintf("%.2f", peak.Point[1]))
	circle.CreateAttr("r", "3")
	circle.CreateAttr("fill", peakColor(peak))
	circle.CreateAttr("stroke", "black")

	label := marker.CreateElement("text")
	label.CreateAttr("x", fmt.Sprintf("%.2f", peak.Point[0]))
	label.CreateAttr("y", fmt.Sprintf("%.2f", peak.Point[1]))
	label.CreateAttr("text-anchor", "middle")
	label.CreateAttr("stroke", "white")
	label.CreateAttr("dy", "-7")
	label.SetText(peak.FullLabel())
}

func coord(p orb.Point) string {
	return fmt.Sprintf("%.2f %.2f", p[0], p[1])
}

func peakPoints(peaks []parser.Peak) []orb.Point {
	pts := make([]orb.Point, len(peaks))
	for i := range peaks {
		pts[i] = peaks[i].Point
	}
	return pts
}
