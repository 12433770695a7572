package ui

import (
	"image/color"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/layout"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"

	"LocalSketch/internal/state"
)

// palette is offered as swatches next to the hex entry.
var palette = []color.NRGBA{
	{A: 255},
	{R: 255, A: 255},
	{G: 160, A: 255},
	{B: 255, A: 255},
	{R: 255, G: 200, A: 255},
}

// --- Custom Widget for Color Swatches ---
type colorSwatch struct {
	widget.BaseWidget
	Color    color.Color
	OnTapped func(color.Color)
}

func newColorSwatch(c color.Color, tapped func(color.Color)) *colorSwatch {
	s := &colorSwatch{Color: c, OnTapped: tapped}
	s.ExtendBaseWidget(s)
	return s
}

func (s *colorSwatch) CreateRenderer() fyne.WidgetRenderer {
	rect := canvas.NewRectangle(s.Color)
	rect.SetMinSize(fyne.NewSize(28, 28))

	border := canvas.NewRectangle(color.Transparent)
	border.StrokeColor = color.Gray{Y: 150}
	border.StrokeWidth = 1

	return widget.NewSimpleRenderer(container.NewStack(rect, border))
}

func (s *colorSwatch) Tapped(_ *fyne.PointEvent) {
	if s.OnTapped != nil {
		s.OnTapped(s.Color)
	}
}

// Toolbar holds the inputs that change tool, colour and width, plus the
// history and export buttons.
type Toolbar struct {
	ctl   *controller
	tool  *widget.Select
	hex   *widget.Entry
	width *widget.Slider

	Object fyne.CanvasObject
}

func newToolbar(ctl *controller) *Toolbar {
	t := &Toolbar{ctl: ctl}
	s := ctl.board.Session()
	current := s.Tools()

	t.tool = widget.NewSelect([]string{state.ToolPen.String(), state.ToolEraser.String()}, t.onTool)
	t.tool.SetSelected(current.Tool.String())

	t.hex = widget.NewEntry()
	t.hex.SetText(state.FormatColor(current.Color))
	t.hex.OnSubmitted = t.onHex

	swatches := container.NewHBox()
	for _, c := range palette {
		swatches.Add(newColorSwatch(c, t.onSwatch))
	}

	t.width = widget.NewSlider(1, 50)
	t.width.SetValue(current.Width)
	t.width.OnChanged = func(v float64) {
		if err := s.SetBrushSize(v); err != nil {
			ctl.log.Warn("brush size rejected", "value", v, "err", err)
		}
	}
	widthBox := container.New(layout.NewGridWrapLayout(fyne.NewSize(150, 35)), t.width)
	hexBox := container.New(layout.NewGridWrapLayout(fyne.NewSize(100, 35)), t.hex)

	t.Object = container.NewHBox(
		widget.NewLabel("Tool:"),
		t.tool,
		widget.NewSeparator(),
		widget.NewLabel("Color:"),
		swatches,
		hexBox,
		widget.NewSeparator(),
		widget.NewLabel("Size:"),
		widthBox,
		layout.NewSpacer(),
		widget.NewButtonWithIcon("", theme.ContentUndoIcon(), ctl.undo),
		widget.NewButtonWithIcon("", theme.DeleteIcon(), ctl.confirmClear),
		widget.NewButtonWithIcon("", theme.DownloadIcon(), ctl.download),
		widget.NewButtonWithIcon("", theme.DocumentSaveIcon(), ctl.saveAs),
		widget.NewButtonWithIcon("", theme.DocumentPrintIcon(), ctl.exportPDF),
	)
	return t
}

// SelectTool updates the selector, which in turn updates the session.
func (t *Toolbar) SelectTool(tool state.Tool) {
	t.tool.SetSelected(tool.String())
}

func (t *Toolbar) onTool(name string) {
	tool, err := state.ParseTool(name)
	if err == nil {
		err = t.ctl.board.Session().SetTool(tool)
	}
	if err != nil {
		t.ctl.log.Warn("tool rejected", "value", name, "err", err)
	}
}

func (t *Toolbar) onHex(value string) {
	if err := t.ctl.board.Session().SetBrushColorHex(value); err != nil {
		t.ctl.setStatus("Invalid color " + value)
		return
	}
	t.ctl.setStatus("Color " + value)
}

func (t *Toolbar) onSwatch(c color.Color) {
	t.ctl.board.Session().SetBrushColor(c)
	t.hex.SetText(state.FormatColor(c))
}
