package parser

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/tmazeau/puymap/internal/geo"
)

// peakColumns are the header columns the visits CSV must carry, in any order.
var peakColumns = []string{"lat", "lon", "label", "visited", "elevation"}

// peakRow is one data row of the visits CSV, cells still raw.
type peakRow struct {
	row       int
	lat       string
	lon       string
	label     string
	visited   string
	elevation string
}

// LoadPeaks loads summits from a CSV of visits.
//
// The first row must be a header naming lat, lon, label, visited and
// elevation columns. Rows whose lat or lon cell is empty or "nan" are
// skipped; any other malformed cell is an error. The visited flag accepts
// "1" (visited), "0" or an empty cell (not visited), nothing else.
func LoadPeaks(path string) ([]Peak, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open peaks: %w", err)
	}
	defer file.Close()

	return parsePeaks(file)
}

func parsePeaks(reader io.Reader) ([]Peak, error) {
	r := csv.NewReader(reader)

	header, err := r.Read()
	if err != nil {
		return nil, fmt.Errorf("read peaks header: %w", err)
	}

	columns := make(map[string]int, len(header))
	for i, name := range header {
		columns[strings.ToLower(strings.TrimSpace(name))] = i
	}
	for _, name := range peakColumns {
		if _, ok := columns[name]; !ok {
			return nil, &ErrMissingColumn{Column: name}
		}
	}

	var peaks []Peak
	for row := 2; ; row++ {
		record, err := r.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("read peaks row %d: %w", row, err)
		}

		cells := peakRow{
			row:       row,
			lat:       record[columns["lat"]],
			lon:       record[columns["lon"]],
			label:     record[columns["label"]],
			visited:   record[columns["visited"]],
			elevation: record[columns["elevation"]],
		}

		peak, ok, err := cells.toPeak()
		if err != nil {
			return nil, err
		}
		if ok {
			peaks = append(peaks, peak)
		}
	}

	return peaks, nil
}

// toPeak converts raw cells into a Peak. Rows without coordinates (empty or
// "nan" cells, a spreadsheet export artifact) are skipped rather than
// rejected.
func (r *peakRow) toPeak() (Peak, bool, error) {
	if missingCoordinate(r.lat) || missingCoordinate(r.lon) {
		return Peak{}, false, nil
	}

	lat, err := strconv.ParseFloat(r.lat, 64)
	if err != nil {
		return Peak{}, false, &ErrInvalidField{Row: r.row, Column: "lat", Value: r.lat, Reason: "not a number"}
	}
	lon, err := strconv.ParseFloat(r.lon, 64)
	if err != nil {
		return Peak{}, false, &ErrInvalidField{Row: r.row, Column: "lon", Value: r.lon, Reason: "not a number"}
	}

	point, err := geo.Project(lat, lon)
	if err != nil {
		return Peak{}, false, fmt.Errorf("peaks CSV row %d: %w", r.row, err)
	}

	var visited bool
	switch r.visited {
	case "1":
		visited = true
	case "0", "":
		visited = false
	default:
		return Peak{}, false, &ErrInvalidVisited{Row: r.row, Value: r.visited}
	}

	peak := Peak{Point: point, Label: r.label, Visited: visited}
	if r.elevation != "" {
		elevation, err := strconv.Atoi(r.elevation)
		if err != nil || elevation < 0 {
			return Peak{}, false, &ErrInvalidField{
				Row:    r.row,
				Column: "elevation",
				Value:  r.elevation,
				Reason: "must be a non-negative integer",
			}
		}
		peak.Elevation = &elevation
	}

	return peak, true, nil
}

func missingCoordinate(cell string) bool {
	return cell == "" || strings.EqualFold(cell, "nan")
}
