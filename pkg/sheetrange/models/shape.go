package models

import "github.com/ukaji3/sheetrange/pkg/sheetrange/cellrange"

// Shape represents a drawing shape: its cell anchor, position, text and
// connector details.
type Shape struct {
	// ID is the sequential shape id within the sheet (connectors have none).
	ID *int `json:"id,omitempty"`
	// Text is the visible text content of the shape.
	Text string `json:"text"`
	// Anchor is the block of cells the shape is drawn over. Nil for shapes
	// positioned in absolute offsets.
	Anchor *cellrange.Range `json:"anchor,omitempty"`
	// L is the left offset in pixels.
	L int `json:"l"`
	// T is the top offset in pixels.
	T int `json:"t"`
	// W is the shape width in pixels (verbose mode only).
	W *int `json:"w,omitempty"`
	// H is the shape height in pixels (verbose mode only).
	H *int `json:"h,omitempty"`
	// Type is the shape type label, e.g. AutoShape-Rectangle or Line.
	Type string `json:"type,omitempty"`
	// Rotation is the rotation angle in degrees.
	Rotation *float64 `json:"rotation,omitempty"`
	// BeginArrowStyle is the arrow style at the start of a connector.
	BeginArrowStyle *int `json:"begin_arrow_style,omitempty"`
	// EndArrowStyle is the arrow style at the end of a connector.
	EndArrowStyle *int `json:"end_arrow_style,omitempty"`
	// BeginID is the ID of the shape a connector starts at.
	BeginID *int `json:"begin_id,omitempty"`
	// EndID is the ID of the shape a connector ends at.
	EndID *int `json:"end_id,omitempty"`
	// Direction is the connector heading (N, NE, E, SE, S, SW, W, NW).
	Direction string `json:"direction,omitempty"`
}
