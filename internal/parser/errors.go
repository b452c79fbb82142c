package parser

import (
	"fmt"
)

// ErrMissingNode indicates a way references a node id absent from the file
type ErrMissingNode struct {
	WayID  string
	NodeID string
}

func (e *ErrMissingNode) Error() string {
	return fmt.Sprintf("way %s references missing node %s", e.WayID, e.NodeID)
}

// ErrInvalidElevation indicates an ele tag that is not a non-negative integer
type ErrInvalidElevation struct {
	WayID string
	Value string
}

func (e *ErrInvalidElevation) Error() string {
	return fmt.Sprintf("way %s has invalid elevation %q (must be a non-negative integer)",
		e.WayID, e.Value)
}

// ErrMissingColumn indicates the CSV header lacks a required column
type ErrMissingColumn struct {
	Column string
}

func (e *ErrMissingColumn) Error() string {
	return fmt.Sprintf("peaks CSV header is missing required column %q", e.Column)
}

// ErrInvalidField indicates a CSV cell that cannot be converted
type ErrInvalidField struct {
	Row    int
	Column string
	Value  string
	Reason string
}

func (e *ErrInvalidField) Error() string {
	return fmt.Sprintf("peaks CSV row %d: invalid %s %q: %s",
		e.Row, e.Column, e.Value, e.Reason)
}

// ErrInvalidVisited indicates a visited flag outside the "1"/"0"/empty contract
type ErrInvalidVisited struct {
	Row   int
	Value string
}

func (e *ErrInvalidVisited) Error() string {
	return fmt.Sprintf("peaks CSV row %d: invalid visited flag %q (want \"1\", \"0\" or empty)",
		e.Row, e.Value)
}

// ErrMalformedBoundary indicates a POLY file structure violation
type ErrMalformedBoundary struct {
	Line   int
	Reason string
}

func (e *ErrMalformedBoundary) Error() string {
	if e.Line > 0 {
		return fmt.Sprintf("boundary line %d: %s", e.Line, e.Reason)
	}
	return fmt.Sprintf("boundary: %s", e.Reason)
}
