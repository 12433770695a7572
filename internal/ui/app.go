package ui

import (
	"fmt"
	"log/slog"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/widget"

	"LocalSketch/internal/sketch"
	"LocalSketch/internal/state"
)

const (
	appID         = "io.localsketch.app"
	initialWidth  = 1024
	initialHeight = 720
)

// RunApp opens the drawing window and blocks until it is closed.
func RunApp(logger *slog.Logger) error {
	myApp := app.NewWithID(appID)
	myWindow := myApp.NewWindow("Local Sketch")
	myWindow.Resize(fyne.NewSize(initialWidth, initialHeight))

	var board *BoardWidget
	s, err := sketch.New(initialWidth, initialHeight,
		sketch.WithLogger(logger),
		sketch.WithPixelRatio(float64(myWindow.Canvas().Scale())),
		sketch.WithOnChange(func() {
			fyne.Do(func() {
				if board != nil {
					board.Refresh()
				}
			})
		}),
	)
	if err != nil {
		return fmt.Errorf("create session: %w", err)
	}
	board = NewBoardWidget(s, logger)

	ctl := newController(myWindow, board, logger)
	toolbar := newToolbar(ctl)
	ctl.toolbar = toolbar

	myWindow.Canvas().SetOnTypedRune(ctl.handleRune)
	myWindow.SetOnClosed(s.Close)
	myWindow.SetContent(container.NewBorder(toolbar.Object, ctl.status, nil, nil, board))
	myWindow.ShowAndRun()
	return nil
}

// controller turns toolbar clicks and keyboard shortcuts into session calls.
type controller struct {
	window  fyne.Window
	board   *BoardWidget
	toolbar *Toolbar
	keymap  sketch.Keymap
	status  *widget.Label
	log     *slog.Logger
}

func newController(w fyne.Window, board *BoardWidget, logger *slog.Logger) *controller {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &controller{
		window: w,
		board:  board,
		keymap: sketch.DefaultKeymap(),
		status: widget.NewLabel("Ready"),
		log:    logger,
	}
}

func (c *controller) handleRune(r rune) {
	switch c.keymap.Lookup(r) {
	case sketch.ActionUndo:
		c.undo()
	case sketch.ActionClear:
		c.confirmClear()
	case sketch.ActionEraser:
		c.selectTool(state.ToolEraser)
	case sketch.ActionPen:
		c.selectTool(state.ToolPen)
	case sketch.ActionSave:
		c.download()
	}
}

func (c *controller) selectTool(t state.Tool) {
	if c.toolbar != nil {
		c.toolbar.SelectTool(t)
		return
	}
	if err := c.board.Session().SetTool(t); err != nil {
		c.log.Warn("tool rejected", "tool", t, "err", err)
	}
}

func (c *controller) undo() {
	if c.board.Session().Undo() == nil {
		c.setStatus("Nothing to undo")
		return
	}
	c.board.Refresh()
}

func (c *controller) confirmClear() {
	dialog.ShowConfirm("Clear canvas", "Discard the current drawing?", func(ok bool) {
		if !ok {
			return
		}
		c.clear()
	}, c.window)
}

func (c *controller) clear() {
	c.board.Session().Clear()
	c.board.Refresh()
	c.setStatus("Cleared")
}

// setStatus may be called from any goroutine.
func (c *controller) setStatus(text string) {
	fyne.Do(func() {
		c.status.SetText(text)
	})
}
