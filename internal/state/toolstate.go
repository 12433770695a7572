package state

import (
	"fmt"
	"image/color"
	"math"
	"strconv"
	"strings"
)

const (
	DefaultWidth = 5.0
	MaxWidth     = 200.0
)

// ToolState is the brush configuration read by every stroke segment.
// It is only changed through its setters.
type ToolState struct {
	tool  Tool
	color color.RGBA
	width float64
}

func NewToolState() *ToolState {
	return &ToolState{
		tool:  ToolPen,
		color: color.RGBA{A: 255},
		width: DefaultWidth,
	}
}

func (ts *ToolState) Tool() Tool        { return ts.tool }
func (ts *ToolState) Color() color.RGBA { return ts.color }
func (ts *ToolState) Width() float64    { return ts.width }

func (ts *ToolState) Style() Style {
	return Style{Tool: ts.tool, Color: ts.color, Width: ts.width}
}

func (ts *ToolState) SetTool(t Tool) error {
	if t != ToolPen && t != ToolEraser {
		return fmt.Errorf("%w: %v", ErrUnknownTool, t)
	}
	ts.tool = t
	return nil
}

// SetColor stores c as an opaque colour; pen strokes never blend with
// partial alpha.
func (ts *ToolState) SetColor(c color.Color) {
	n := color.NRGBAModel.Convert(c).(color.NRGBA)
	ts.color = color.RGBA{R: n.R, G: n.G, B: n.B, A: 255}
}

func (ts *ToolState) SetWidth(w float64) error {
	if math.IsNaN(w) || math.IsInf(w, 0) || w <= 0 {
		return fmt.Errorf("%w: %v", ErrInvalidWidth, w)
	}
	ts.width = math.Min(w, MaxWidth)
	return nil
}

// ParseColor reads #rgb, #rrggbb and #rrggbbaa hex notation. The alpha
// component is parsed but the returned colour is straight (non-premultiplied).
func ParseColor(s string) (color.NRGBA, error) {
	hex := strings.TrimPrefix(strings.TrimSpace(s), "#")
	switch len(hex) {
	case 3:
		hex = string([]byte{hex[0], hex[0], hex[1], hex[1], hex[2], hex[2]}) + "ff"
	case 6:
		hex += "ff"
	case 8:
	default:
		return color.NRGBA{}, fmt.Errorf("%w: %q", ErrInvalidColor, s)
	}
	v, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return color.NRGBA{}, fmt.Errorf("%w: %q", ErrInvalidColor, s)
	}
	return color.NRGBA{R: uint8(v >> 24), G: uint8(v >> 16), B: uint8(v >> 8), A: uint8(v)}, nil
}

// FormatColor renders c as #rrggbb.
func FormatColor(c color.Color) string {
	r, g, b, _ := c.RGBA()
	return fmt.Sprintf("#%02x%02x%02x", r>>8, g>>8, b>>8)
}
