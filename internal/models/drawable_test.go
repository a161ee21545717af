package models

import (
	"errors"
	"testing"
)

func TestDecodeStroke(t *testing.T) {
	raw := []byte(`{
		"event": "draw",
		"roomId": "r1",
		"tool": "pen",
		"lineWidth": 2,
		"path": [{"x": 1, "y": 1}, {"x": 2, "y": 2}, {"x": 3, "y": 1}]
	}`)

	d, err := DecodeDrawable(raw)
	if err != nil {
		t.Fatalf("DecodeDrawable failed: %v", err)
	}

	stroke, ok := d.(*Stroke)
	if !ok {
		t.Fatalf("Expected *Stroke, got %T", d)
	}
	if stroke.Tool != "pen" {
		t.Errorf("Expected tool pen, got %q", stroke.Tool)
	}
	if len(stroke.Path) != 3 {
		t.Errorf("Expected 3 points, got %d", len(stroke.Path))
	}
}

func TestDecodeStrokeSinglePoint(t *testing.T) {
	raw := []byte(`{"tool": "pen", "path": [{"x": 5, "y": 5}]}`)

	if _, err := DecodeDrawable(raw); !errors.Is(err, ErrDegenerateDrawable) {
		t.Errorf("Expected ErrDegenerateDrawable, got %v", err)
	}
}

func TestDecodeStrokeIdenticalPoints(t *testing.T) {
	raw := []byte(`{"tool": "pen", "path": [{"x": 5, "y": 5}, {"x": 5, "y": 5}]}`)

	if _, err := DecodeDrawable(raw); !errors.Is(err, ErrDegenerateDrawable) {
		t.Errorf("Expected ErrDegenerateDrawable, got %v", err)
	}
}

func TestDecodeStrokeTwoDistinctPoints(t *testing.T) {
	raw := []byte(`{"tool": "eraser", "path": [{"x": 5, "y": 5}, {"x": 5, "y": 6}]}`)

	d, err := DecodeDrawable(raw)
	if err != nil {
		t.Fatalf("DecodeDrawable failed: %v", err)
	}
	if _, ok := d.(*Stroke); !ok {
		t.Errorf("Expected *Stroke, got %T", d)
	}
}

func TestDecodeShape(t *testing.T) {
	raw := []byte(`{
		"tool": "rectangle",
		"startX": 10, "startY": 10,
		"endX": 50, "endY": 40,
		"lineWidth": 4,
		"fillColor": "#ff0000"
	}`)

	d, err := DecodeDrawable(raw)
	if err != nil {
		t.Fatalf("DecodeDrawable failed: %v", err)
	}

	shape, ok := d.(*Shape)
	if !ok {
		t.Fatalf("Expected *Shape, got %T", d)
	}
	if shape.EndX != 50 || shape.EndY != 40 {
		t.Errorf("Unexpected end point: (%v, %v)", shape.EndX, shape.EndY)
	}
	if shape.FillColor != "#ff0000" {
		t.Errorf("Unexpected fill color: %q", shape.FillColor)
	}
}

func TestDecodeShapeDegenerateExtent(t *testing.T) {
	raw := []byte(`{"tool": "rectangle", "startX": 10, "startY": 10, "endX": 10, "endY": 10}`)

	if _, err := DecodeDrawable(raw); !errors.Is(err, ErrDegenerateDrawable) {
		t.Errorf("Expected ErrDegenerateDrawable, got %v", err)
	}
}

func TestDecodeShapeTextAnchoredAtPoint(t *testing.T) {
	// Text and images are anchored at a single point; that is not degenerate.
	raw := []byte(`{"tool": "text", "startX": 10, "startY": 10, "endX": 10, "endY": 10, "text": "hello"}`)

	if _, err := DecodeDrawable(raw); err != nil {
		t.Errorf("Expected text shape to be valid, got %v", err)
	}

	raw = []byte(`{"tool": "image", "startX": 10, "startY": 10, "endX": 10, "endY": 10, "imageData": "data:image/png;base64,xyz"}`)

	if _, err := DecodeDrawable(raw); err != nil {
		t.Errorf("Expected image shape to be valid, got %v", err)
	}
}

func TestDecodeMissingTool(t *testing.T) {
	raw := []byte(`{"path": [{"x": 1, "y": 1}, {"x": 2, "y": 2}]}`)

	if _, err := DecodeDrawable(raw); !errors.Is(err, ErrMissingTool) {
		t.Errorf("Expected ErrMissingTool, got %v", err)
	}
}

func TestDecodeInvalidJSON(t *testing.T) {
	if _, err := DecodeDrawable([]byte(`{not json`)); err == nil {
		t.Error("Expected error for invalid JSON")
	}
}
