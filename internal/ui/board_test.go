package ui

import (
	"testing"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/driver/desktop"
	"fyne.io/fyne/v2/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"LocalSketch/internal/sketch"
	"LocalSketch/internal/state"
)

func newTestBoard(t *testing.T) (*BoardWidget, fyne.Window) {
	t.Helper()
	a := test.NewApp()
	t.Cleanup(a.Quit)

	s, err := sketch.New(200, 200, sketch.WithResizeQuiescence(time.Millisecond))
	require.NoError(t, err)
	t.Cleanup(s.Close)

	board := NewBoardWidget(s, nil)
	w := test.NewWindow(board)
	t.Cleanup(w.Close)
	return board, w
}

func primary(x, y float32) *desktop.MouseEvent {
	return &desktop.MouseEvent{
		PointEvent: fyne.PointEvent{Position: fyne.NewPos(x, y)},
		Button:     desktop.MouseButtonPrimary,
	}
}

func drag(x, y float32) *fyne.DragEvent {
	return &fyne.DragEvent{PointEvent: fyne.PointEvent{Position: fyne.NewPos(x, y)}}
}

func TestBoardWidget_DragDrawsOneStroke(t *testing.T) {
	board, _ := newTestBoard(t)
	s := board.Session()

	board.MouseDown(primary(10, 10))
	assert.True(t, s.Drawing())
	board.Dragged(drag(40, 40))
	board.Dragged(drag(60, 40))
	board.DragEnd()

	assert.False(t, s.Drawing())
	assert.Equal(t, 2, s.HistoryLen())
}

func TestBoardWidget_SecondaryButtonIgnored(t *testing.T) {
	board, _ := newTestBoard(t)
	s := board.Session()

	board.MouseDown(&desktop.MouseEvent{
		PointEvent: fyne.PointEvent{Position: fyne.NewPos(10, 10)},
		Button:     desktop.MouseButtonSecondary,
	})
	assert.False(t, s.Drawing())
	board.Dragged(drag(40, 40))
	assert.Equal(t, 1, s.HistoryLen())
}

func TestController_Shortcuts(t *testing.T) {
	board, w := newTestBoard(t)
	s := board.Session()
	ctl := newController(w, board, nil)
	ctl.toolbar = newToolbar(ctl)

	ctl.handleRune('e')
	assert.Equal(t, state.ToolEraser, s.Tools().Tool)
	ctl.handleRune('P')
	assert.Equal(t, state.ToolPen, s.Tools().Tool)

	ctl.handleRune('z')
	assert.Equal(t, "Nothing to undo", ctl.status.Text)

	board.MouseDown(primary(10, 10))
	board.Dragged(drag(50, 50))
	board.MouseUp(primary(50, 50))
	require.Equal(t, 2, s.HistoryLen())

	ctl.handleRune('Z')
	assert.Equal(t, 1, s.HistoryLen())

	ctl.handleRune('q')
	assert.Equal(t, 1, s.HistoryLen())
}

func TestController_ClearRecordsHistory(t *testing.T) {
	board, w := newTestBoard(t)
	ctl := newController(w, board, nil)

	ctl.clear()
	assert.Equal(t, 2, board.Session().HistoryLen())
	assert.Equal(t, "Cleared", ctl.status.Text)
}

func TestToolbar_HexEntry(t *testing.T) {
	board, w := newTestBoard(t)
	ctl := newController(w, board, nil)
	tb := newToolbar(ctl)

	tb.onHex("#ff0000")
	assert.Equal(t, "#ff0000", state.FormatColor(board.Session().Tools().Color))

	tb.onHex("nope")
	assert.Equal(t, "Invalid color nope", ctl.status.Text)
	assert.Equal(t, "#ff0000", state.FormatColor(board.Session().Tools().Color))
}
