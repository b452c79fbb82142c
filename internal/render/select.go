package render

import (
	"math/rand"
	"sort"
	"time"

	"github.com/tmazeau/puymap/internal/parser"
	"github.com/tmazeau/puymap/internal/spatial"
)

// minRunLength is the shortest proximity run a sub-segment may be cut from.
const minRunLength = 100

// maxTrim bounds the random jitter removed from each end of a sub-segment.
const maxTrim = 20

// selectWays decides which contour ways to draw. Ways are considered in
// ascending elevation order so higher contours paint over lower ones. A way
// survives whole when its barycenter sits within WayDistance of a summit and
// its endpoints close within WayClosure; anything else is decomposed and only
// the decomposition's sub-segments are kept, in the way's place.
func selectWays(ways []*parser.Way, summits *spatial.Index, opts Options) []*parser.Way {
	rng := opts.Rand
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}

	sorted := make([]*parser.Way, len(ways))
	copy(sorted, ways)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Elevation < sorted[j].Elevation
	})

	var selected []*parser.Way
	for _, way := range sorted {
		rejected := summits.NearestDistance(way.Barycenter()) > opts.WayDistance ||
			way.Closure() > opts.WayClosure
		if !rejected {
			selected = append(selected, way)
			continue
		}
		selected = append(selected, decompose(way, summits, opts.NodeDistance, rng)...)
	}
	return selected
}

// decompose cuts a rejected way into highlighted sub-segments: maximal runs
// of nodes within threshold of a summit, longer than minRunLength, with a
// random trim at both ends so the cuts don't land on run boundaries. The
// right trim is at least one node, keeping every sub-segment strictly
// shorter than its run.
func decompose(way *parser.Way, summits *spatial.Index, threshold float64, rng *rand.Rand) []*parser.Way {
	near := make([]bool, len(way.Points))
	for i, p := range way.Points {
		near[i] = summits.NearestDistance(p) < threshold
	}

	var subs []*parser.Way
	start := 0
	for _, r := range compressRuns(near) {
		if r.value && r.length > minRunLength {
			left := start + rng.Intn(maxTrim)
			right := start + r.length - (1 + rng.Intn(maxTrim-1))
			subs = append(subs, &parser.Way{
				Elevation: way.Elevation,
				Points:    way.Points[left:right],
				Highlight: true,
			})
		}
		start += r.length
	}
	return subs
}

// run is a maximal stretch of equal values in a boolean sequence.
type run struct {
	value  bool
	length int
}

// compressRuns run-length encodes values. The lengths sum to len(values).
func compressRuns(values []bool) []run {
	var runs []run
	for i, v := range values {
		if i > 0 && v == runs[len(runs)-1].value {
			runs[len(runs)-1].length++
			continue
		}
		runs = append(runs, run{value: v, length: 1})
	}
	return runs
}
