// Package surface owns the raster buffer that strokes are painted on.
package surface

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	"math"

	xdraw "golang.org/x/image/draw"
)

var ErrInvalidSize = errors.New("invalid surface size")

// Background is the colour of a blank surface.
var Background = color.RGBA{R: 255, G: 255, B: 255, A: 255}

// Surface is a premultiplied RGBA buffer addressed in logical units. The
// buffer is always round(width*ratio) by round(height*ratio) device pixels.
type Surface struct {
	width, height float64
	ratio         float64
	buf           *image.RGBA
}

// New allocates a blank surface.
func New(width, height, ratio float64) (*Surface, error) {
	if !validRatio(ratio) {
		return nil, fmt.Errorf("%w: pixel ratio %v", ErrInvalidSize, ratio)
	}
	s := &Surface{ratio: ratio}
	if err := s.Reallocate(width, height); err != nil {
		return nil, err
	}
	return s, nil
}

func validRatio(r float64) bool {
	return r > 0 && !math.IsNaN(r) && !math.IsInf(r, 0)
}

// DeviceSize converts a logical size to buffer dimensions.
func DeviceSize(width, height, ratio float64) (int, int) {
	return int(math.Round(width * ratio)), int(math.Round(height * ratio))
}

func (s *Surface) Width() float64      { return s.width }
func (s *Surface) Height() float64     { return s.height }
func (s *Surface) PixelRatio() float64 { return s.ratio }

// Bounds is the buffer rectangle in device pixels.
func (s *Surface) Bounds() image.Rectangle { return s.buf.Bounds() }

// Reallocate replaces the buffer with a blank one of the new logical size.
// Previous content is dropped; callers that want it back repaint with Paint.
func (s *Surface) Reallocate(width, height float64) error {
	dw, dh := DeviceSize(width, height, s.ratio)
	if math.IsNaN(width) || math.IsNaN(height) || dw < 1 || dh < 1 {
		return fmt.Errorf("%w: %vx%v at ratio %v", ErrInvalidSize, width, height, s.ratio)
	}
	s.width, s.height = width, height
	s.buf = image.NewRGBA(image.Rect(0, 0, dw, dh))
	s.Clear()
	return nil
}

// Clear fills the whole buffer with the opaque background.
func (s *Surface) Clear() {
	xdraw.Draw(s.buf, s.buf.Bounds(), &image.Uniform{C: Background}, image.Point{}, xdraw.Src)
}

// Paint replaces the buffer content with img. Images of the same size are
// copied exactly, anything else is stretched over the whole buffer.
func (s *Surface) Paint(img image.Image) {
	dst := s.buf.Bounds()
	src := img.Bounds()
	if src.Size() == dst.Size() {
		xdraw.Draw(s.buf, dst, img, src.Min, xdraw.Src)
		return
	}
	xdraw.BiLinear.Scale(s.buf, dst, img, src, xdraw.Src, nil)
}

// Image returns a copy of the buffer.
func (s *Surface) Image() *image.RGBA {
	out := image.NewRGBA(s.buf.Bounds())
	copy(out.Pix, s.buf.Pix)
	return out
}

// RGBAAt reads the device pixel at (x, y).
func (s *Surface) RGBAAt(x, y int) color.RGBA {
	return s.buf.RGBAAt(x, y)
}

// At reads the device pixel covering the logical point (x, y).
func (s *Surface) At(x, y float64) color.RGBA {
	return s.buf.RGBAAt(int(math.Floor(x*s.ratio)), int(math.Floor(y*s.ratio)))
}
