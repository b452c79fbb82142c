package parser

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/tmazeau/puymap/internal/geo"
)

// LoadBoundary loads a region outline in the Osmosis POLY format: a title
// line, then named rings of "lon lat" pairs, each ring terminated by END.
// A final END (or end of file) after the last ring closes the boundary.
func LoadBoundary(path string) (*Boundary, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open boundary: %w", err)
	}
	defer file.Close()

	return parseBoundary(file)
}

func parseBoundary(reader io.Reader) (*Boundary, error) {
	scanner := bufio.NewScanner(reader)
	line := 0

	next := func() (string, error) {
		if scanner.Scan() {
			line++
			return scanner.Text(), nil
		}
		if err := scanner.Err(); err != nil {
			return "", fmt.Errorf("read boundary: %w", err)
		}
		return "", io.EOF
	}

	title, err := next()
	if err == io.EOF {
		return nil, &ErrMalformedBoundary{Reason: "empty file"}
	}
	if err != nil {
		return nil, err
	}

	boundary := &Boundary{Title: strings.TrimSpace(title)}

	for {
		name, err := next()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, err
		}

		name = strings.TrimSpace(name)
		if name == "END" {
			break
		}
		if name == "" {
			return nil, &ErrMalformedBoundary{Line: line, Reason: "empty ring name"}
		}

		ring := Ring{Name: name}
		for {
			text, err := next()
			if err == io.EOF {
				return nil, &ErrMalformedBoundary{Line: line, Reason: fmt.Sprintf("ring %q not terminated by END", name)}
			}
			if err != nil {
				return nil, err
			}
			if strings.TrimSpace(text) == "END" {
				break
			}

			fields := strings.Fields(text)
			if len(fields) != 2 {
				return nil, &ErrMalformedBoundary{Line: line, Reason: "want a lon lat pair"}
			}
			lon, err := strconv.ParseFloat(fields[0], 64)
			if err != nil {
				return nil, &ErrMalformedBoundary{Line: line, Reason: fmt.Sprintf("invalid lon %q", fields[0])}
			}
			lat, err := strconv.ParseFloat(fields[1], 64)
			if err != nil {
				return nil, &ErrMalformedBoundary{Line: line, Reason: fmt.Sprintf("invalid lat %q", fields[1])}
			}

			p, err := geo.Project(lat, lon)
			if err != nil {
				return nil, fmt.Errorf("boundary line %d: %w", line, err)
			}
			ring.Points = append(ring.Points, p)
		}

		if len(ring.Points) == 0 {
			return nil, &ErrMalformedBoundary{Line: line, Reason: fmt.Sprintf("ring %q has no points", name)}
		}
		boundary.Rings = append(boundary.Rings, ring)
	}

	if len(boundary.Rings) == 0 {
		return nil, &ErrMalformedBoundary{Reason: "no rings"}
	}

	return boundary, nil
}
