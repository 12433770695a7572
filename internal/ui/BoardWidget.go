package ui

import (
	"image"
	"image/color"
	"log/slog"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/driver/desktop"
	"fyne.io/fyne/v2/widget"

	"LocalSketch/internal/sketch"
	"LocalSketch/internal/state"
)

// BoardWidget feeds pointer events into a sketch session and shows its
// surface.
type BoardWidget struct {
	widget.BaseWidget
	session *sketch.Session
	log     *slog.Logger
}

var _ fyne.Widget = (*BoardWidget)(nil)
var _ fyne.Draggable = (*BoardWidget)(nil)
var _ desktop.Mouseable = (*BoardWidget)(nil)

func NewBoardWidget(s *sketch.Session, logger *slog.Logger) *BoardWidget {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	b := &BoardWidget{session: s, log: logger}
	b.ExtendBaseWidget(b)
	return b
}

func (b *BoardWidget) Session() *sketch.Session { return b.session }

func toPoint(p fyne.Position) state.Point {
	return state.Point{X: float64(p.X), Y: float64(p.Y)}
}

func (b *BoardWidget) MouseDown(e *desktop.MouseEvent) {
	if e.Button != desktop.MouseButtonPrimary {
		return
	}
	b.session.BeginStroke(toPoint(e.Position))
}

func (b *BoardWidget) MouseUp(e *desktop.MouseEvent) {
	if e.Button != desktop.MouseButtonPrimary {
		return
	}
	b.session.EndStroke()
	b.Refresh()
}

func (b *BoardWidget) Dragged(e *fyne.DragEvent) {
	b.session.ExtendStroke(toPoint(e.Position))
	b.Refresh()
}

// DragEnd also covers gestures whose button release never reaches us.
func (b *BoardWidget) DragEnd() {
	b.session.CancelStroke()
	b.Refresh()
}

// Resize asks the session for a debounced reallocation; the surface keeps
// its content stretched to the new size.
func (b *BoardWidget) Resize(size fyne.Size) {
	b.BaseWidget.Resize(size)
	if size.Width > 0 && size.Height > 0 {
		b.session.RequestResize(float64(size.Width), float64(size.Height))
	}
}

func (b *BoardWidget) MouseIn(*desktop.MouseEvent)    {}
func (b *BoardWidget) MouseOut()                      {}
func (b *BoardWidget) MouseMoved(*desktop.MouseEvent) {}

func (b *BoardWidget) CreateRenderer() fyne.WidgetRenderer {
	r := &boardWidgetRenderer{board: b}
	// Erased pixels are transparent; show them as paper.
	r.background = canvas.NewRectangle(color.White)
	r.raster = canvas.NewRaster(func(int, int) image.Image {
		return b.session.Image()
	})
	return r
}
