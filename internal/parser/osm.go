package parser

import (
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/beevik/etree"
	"github.com/paulmach/orb"

	"github.com/tmazeau/puymap/internal/geo"
)

// LoadContours loads elevation contour ways from an OSM XML extract.
//
// The returned node table holds every live node in the file keyed by id,
// projected onto the virtual canvas; it is the coordinate population the
// scaler later fits on, whether or not a way references the node. Ways keep
// their `nd` sequence in document order and must carry an integer `ele` tag;
// ways without one, and ways with no nodes, are dropped.
//
// Example:
//
//	nodes, ways, err := parser.LoadContours("contours.osm")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Printf("loaded %d nodes, %d contour ways\n", len(nodes), len(ways))
func LoadContours(path string) (map[string]orb.Point, []*Way, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, nil, fmt.Errorf("open contours: %w", err)
	}
	defer file.Close()

	return parseContours(file)
}

func parseContours(reader io.Reader) (map[string]orb.Point, []*Way, error) {
	doc := etree.NewDocument()
	if _, err := doc.ReadFrom(reader); err != nil {
		return nil, nil, fmt.Errorf("parse OSM XML: %w", err)
	}

	root := doc.Root()
	if root == nil || root.Tag != "osm" {
		return nil, nil, fmt.Errorf("parse OSM XML: missing <osm> root element")
	}

	nodes, err := parseNodes(root)
	if err != nil {
		return nil, nil, err
	}

	ways, err := parseWays(root, nodes)
	if err != nil {
		return nil, nil, err
	}

	return nodes, ways, nil
}

// parseNodes projects every live <node> into the canvas, keyed by id.
// JOSM marks locally deleted elements with action="delete"; those nodes are
// not part of the live data and are skipped.
func parseNodes(root *etree.Element) (map[string]orb.Point, error) {
	nodes := make(map[string]orb.Point)

	for _, el := range root.SelectElements("node") {
		if el.SelectAttrValue("action", "") == "delete" {
			continue
		}

		id := el.SelectAttrValue("id", "")
		if id == "" {
			return nil, fmt.Errorf("parse OSM XML: node without id attribute")
		}

		lat, err := strconv.ParseFloat(el.SelectAttrValue("lat", ""), 64)
		if err != nil {
			return nil, fmt.Errorf("node %s: parse lat: %w", id, err)
		}
		lon, err := strconv.ParseFloat(el.SelectAttrValue("lon", ""), 64)
		if err != nil {
			return nil, fmt.Errorf("node %s: parse lon: %w", id, err)
		}

		p, err := geo.Project(lat, lon)
		if err != nil {
			return nil, fmt.Errorf("node %s: %w", id, err)
		}
		nodes[id] = p
	}

	return nodes, nil
}

// parseWays collects <way> elements carrying an ele tag, resolving nd refs
// against the node table. A ref to an unknown (or deleted) node is an error.
func parseWays(root *etree.Element, nodes map[string]orb.Point) ([]*Way, error) {
	var ways []*Way

	for _, el := range root.SelectElements("way") {
		wayID := el.SelectAttrValue("id", "")

		eleValue, ok := elevationTag(el)
		if !ok {
			continue
		}
		elevation, err := strconv.Atoi(eleValue)
		if err != nil || elevation < 0 {
			return nil, &ErrInvalidElevation{WayID: wayID, Value: eleValue}
		}

		refs := el.SelectElements("nd")
		if len(refs) == 0 {
			continue
		}

		points := make(orb.LineString, 0, len(refs))
		for _, nd := range refs {
			ref := nd.SelectAttrValue("ref", "")
			p, ok := nodes[ref]
			if !ok {
				return nil, &ErrMissingNode{WayID: wayID, NodeID: ref}
			}
			points = append(points, p)
		}

		ways = append(ways, &Way{Elevation: elevation, Points: points})
	}

	return ways, nil
}

func elevationTag(way *etree.Element) (string, bool) {
	for _, tag := range way.SelectElements("tag") {
		if tag.SelectAttrValue("k", "") == "ele" {
			return tag.SelectAttrValue("v", ""), true
		}
	}
	return "", false
}
