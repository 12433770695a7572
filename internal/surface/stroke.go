package surface

import (
	"image"
	"math"

	xdraw "golang.org/x/image/draw"
	"golang.org/x/image/vector"

	"LocalSketch/internal/state"
)

// minArcSteps is the number of segments used for the smallest cap.
const minArcSteps = 8

// StrokeSegment paints a round-capped line of st.Width logical units from
// a to b. Pen segments are composited source-over with the opaque colour,
// eraser segments remove coverage from the destination alpha. A zero-length
// segment paints nothing.
func (s *Surface) StrokeSegment(a, b state.Point, st state.Style) {
	if a == b || st.Width <= 0 {
		return
	}
	ax, ay := a.X*s.ratio, a.Y*s.ratio
	bx, by := b.X*s.ratio, b.Y*s.ratio
	r := st.Width * s.ratio / 2

	box := image.Rect(
		int(math.Floor(math.Min(ax, bx)-r)), int(math.Floor(math.Min(ay, by)-r)),
		int(math.Ceil(math.Max(ax, bx)+r)), int(math.Ceil(math.Max(ay, by)+r)),
	).Intersect(s.buf.Bounds())
	if box.Empty() {
		return
	}

	mask := capsuleMask(box, ax, ay, bx, by, r)
	switch st.Tool {
	case state.ToolEraser:
		destinationOut(s.buf, box, mask)
	default:
		xdraw.DrawMask(s.buf, box, &image.Uniform{C: st.Color}, image.Point{}, mask, image.Point{}, xdraw.Over)
	}
}

// capsuleMask rasterises the outline of a segment with round caps into an
// alpha mask whose origin is box.Min.
func capsuleMask(box image.Rectangle, ax, ay, bx, by, r float64) *image.Alpha {
	ox, oy := float64(box.Min.X), float64(box.Min.Y)
	z := vector.NewRasterizer(box.Dx(), box.Dy())
	z.DrawOp = xdraw.Src

	theta := math.Atan2(by-ay, bx-ax)
	steps := arcSteps(r)
	pt := func(cx, cy, angle float64) (float32, float32) {
		return float32(cx + r*math.Cos(angle) - ox), float32(cy + r*math.Sin(angle) - oy)
	}

	// Half circle around b from -90 to +90 degrees relative to the direction,
	// then half circle around a from +90 to +270.
	z.MoveTo(pt(bx, by, theta-math.Pi/2))
	for i := 1; i <= steps; i++ {
		z.LineTo(pt(bx, by, theta-math.Pi/2+math.Pi*float64(i)/float64(steps)))
	}
	for i := 0; i <= steps; i++ {
		z.LineTo(pt(ax, ay, theta+math.Pi/2+math.Pi*float64(i)/float64(steps)))
	}
	z.ClosePath()

	mask := image.NewAlpha(image.Rect(0, 0, box.Dx(), box.Dy()))
	z.Draw(mask, mask.Bounds(), image.Opaque, image.Point{})
	return mask
}

func arcSteps(r float64) int {
	n := int(math.Ceil(r * math.Pi / 2))
	if n < minArcSteps {
		return minArcSteps
	}
	if n > 128 {
		return 128
	}
	return n
}

// destinationOut scales every channel of dst by (1 - coverage). The image
// package has no Porter-Duff "destination out" operator.
func destinationOut(dst *image.RGBA, box image.Rectangle, mask *image.Alpha) {
	for y := box.Min.Y; y < box.Max.Y; y++ {
		mrow := mask.Pix[(y-box.Min.Y)*mask.Stride:]
		i := dst.PixOffset(box.Min.X, y)
		for x := 0; x < box.Dx(); x, i = x+1, i+4 {
			m := uint32(mrow[x])
			if m == 0 {
				continue
			}
			keep := 255 - m
			p := dst.Pix[i : i+4 : i+4]
			p[0] = uint8((uint32(p[0])*keep + 127) / 255)
			p[1] = uint8((uint32(p[1])*keep + 127) / 255)
			p[2] = uint8((uint32(p[2])*keep + 127) / 255)
			p[3] = uint8((uint32(p[3])*keep + 127) / 255)
		}
	}
}
