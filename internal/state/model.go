package state

import (
	"errors"
	"fmt"
	"image/color"
	"strings"
)

var (
	ErrUnknownTool  = errors.New("unknown tool")
	ErrInvalidColor = errors.New("invalid color")
	ErrInvalidWidth = errors.New("invalid brush width")
)

// Point is a position in surface-local logical coordinates.
type Point struct{ X, Y float64 }

// Tool is the drawing mode of a stroke.
type Tool int

const (
	ToolPen Tool = iota
	ToolEraser
)

func (t Tool) String() string {
	switch t {
	case ToolPen:
		return "pen"
	case ToolEraser:
		return "eraser"
	}
	return fmt.Sprintf("Tool(%d)", int(t))
}

// ParseTool accepts the names produced by Tool.String.
func ParseTool(s string) (Tool, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "pen":
		return ToolPen, nil
	case "eraser":
		return ToolEraser, nil
	}
	return ToolPen, fmt.Errorf("%w: %q", ErrUnknownTool, s)
}

// Style is the tool, colour and width applied to one stroke segment.
type Style struct {
	Tool  Tool
	Color color.RGBA
	Width float64
}

// Stroke is the in-progress gesture between pointer-down and pointer-up.
// Only its rendered pixels outlive it.
type Stroke struct {
	Points []Point
	Style  Style
}

// Last returns the most recently recorded point.
func (s *Stroke) Last() Point {
	return s.Points[len(s.Points)-1]
}

// Add records p and applies the style used to reach it.
func (s *Stroke) Add(p Point, st Style) {
	s.Points = append(s.Points, p)
	s.Style = st
}
