package models

import (
	"encoding/json"
	"errors"
)

var (
	// ErrDegenerateDrawable marks a drawable with no visible extent, e.g. a
	// stroke produced by a single click. These never enter a room's history.
	ErrDegenerateDrawable = errors.New("degenerate drawable")

	ErrMissingTool = errors.New("drawable is missing a tool")
)

// Point is a single canvas coordinate.
type Point struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// Drawable is one visual action: either a freehand Stroke or a parametric
// Shape. The wire payload is a flat bag of optional fields; it is decoded
// into its variant exactly once, at the boundary.
type Drawable interface {
	// Validate reports whether the drawable may enter a room's history.
	Validate() error

	isDrawable()
}

// Stroke is freehand input from the pen, marker, highlighter or eraser tools:
// an ordered path of at least two distinct points.
type Stroke struct {
	Tool      string          `json:"tool"`
	Color     json.RawMessage `json:"color,omitempty"`
	LineWidth float64         `json:"lineWidth,omitempty"`
	Path      []Point         `json:"path"`
}

func (s *Stroke) isDrawable() {}

func (s *Stroke) Validate() error {
	if s.Tool == "" {
		return ErrMissingTool
	}
	if len(s.Path) < 2 {
		return ErrDegenerateDrawable
	}
	for _, p := range s.Path[1:] {
		if p != s.Path[0] {
			return nil
		}
	}
	// Every point identical: a click, not a stroke.
	return ErrDegenerateDrawable
}

// Shape is a parametric element stretched between two anchor points. Text and
// imported images ride on the same payload, anchored at the start point.
type Shape struct {
	Tool      string          `json:"tool"`
	StartX    float64         `json:"startX"`
	StartY    float64         `json:"startY"`
	EndX      float64         `json:"endX"`
	EndY      float64         `json:"endY"`
	Color     json.RawMessage `json:"color,omitempty"`
	LineWidth float64         `json:"lineWidth,omitempty"`
	FillColor string          `json:"fillColor,omitempty"`
	Text      string          `json:"text,omitempty"`
	ImageData string          `json:"imageData,omitempty"`
	Width     float64         `json:"width,omitempty"`
	Height    float64         `json:"height,omitempty"`
}

func (s *Shape) isDrawable() {}

func (s *Shape) Validate() error {
	if s.Tool == "" {
		return ErrMissingTool
	}
	if s.StartX == s.EndX && s.StartY == s.EndY && s.Text == "" && s.ImageData == "" {
		return ErrDegenerateDrawable
	}
	return nil
}

// wireDrawable is the loose client payload before it is split into variants.
type wireDrawable struct {
	Tool      string          `json:"tool"`
	Color     json.RawMessage `json:"color"`
	LineWidth float64         `json:"lineWidth"`
	Path      []Point         `json:"path"`
	StartX    float64         `json:"startX"`
	StartY    float64         `json:"startY"`
	EndX      float64         `json:"endX"`
	EndY      float64         `json:"endY"`
	FillColor string          `json:"fillColor"`
	Text      string          `json:"text"`
	ImageData string          `json:"imageData"`
	Width     float64         `json:"width"`
	Height    float64         `json:"height"`
}

// DecodeDrawable parses a raw draw payload into its tagged variant and
// validates it. The presence of a path selects the stroke variant.
func DecodeDrawable(raw []byte) (Drawable, error) {
	var w wireDrawable
	if err := json.Unmarshal(raw, &w); err != nil {
		return nil, err
	}

	var d Drawable
	if w.Path != nil {
		d = &Stroke{
			Tool:      w.Tool,
			Color:     w.Color,
			LineWidth: w.LineWidth,
			Path:      w.Path,
		}
	} else {
		d = &Shape{
			Tool:      w.Tool,
			StartX:    w.StartX,
			StartY:    w.StartY,
			EndX:      w.EndX,
			EndY:      w.EndY,
			Color:     w.Color,
			LineWidth: w.LineWidth,
			FillColor: w.FillColor,
			Text:      w.Text,
			ImageData: w.ImageData,
			Width:     w.Width,
			Height:    w.Height,
		}
	}

	if err := d.Validate(); err != nil {
		return nil, err
	}
	return d, nil
}
