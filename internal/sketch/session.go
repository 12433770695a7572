// Package sketch implements the drawing session: stroke state machine,
// snapshot undo, clear, resize with content preservation and export.
//
// A Session owns every piece of mutable drawing state. Event glue (pointer,
// keyboard, toolbar) only calls its exported methods.
package sketch

import (
	"bytes"
	"fmt"
	"image"
	"image/color"
	"io"
	"log/slog"
	"sync"

	"LocalSketch/internal/state"
	"LocalSketch/internal/surface"
)

// Session is one drawing widget instance.
type Session struct {
	mu      sync.Mutex
	opts    options
	log     *slog.Logger
	clock   *state.Clock
	surface *surface.Surface
	tools   *state.ToolState
	history *state.HistoryStack

	// stroke is nil while idle.
	stroke *state.Stroke
	// dirty is set when the surface holds pixels the history tail lacks.
	dirty   bool
	pending *Restore

	resizer  *debouncer
	decoders sync.WaitGroup
}

// New creates a blank white session of the given logical size and records
// the baseline snapshot.
func New(width, height float64, opts ...Option) (*Session, error) {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	surf, err := surface.New(width, height, o.pixelRatio)
	if err != nil {
		return nil, fmt.Errorf("initialize surface: %w", err)
	}
	clock := state.NewClock()
	s := &Session{
		opts:    o,
		log:     o.logger.With("session", clock.SessionID()),
		clock:   clock,
		surface: surf,
		tools:   state.NewToolState(),
		history: state.NewHistoryStack(o.historyDepth),
		resizer: newDebouncer(o.resizeQuiescence),
	}
	snap, err := s.capture()
	if err != nil {
		return nil, fmt.Errorf("baseline snapshot: %w", err)
	}
	s.history.Push(snap)
	s.log.Debug("session initialized",
		"width", width, "height", height, "ratio", o.pixelRatio,
		"depth", s.history.Depth())
	return s, nil
}

// Close drops pending resize requests and waits for background decodes.
func (s *Session) Close() {
	s.resizer.stop()
	s.decoders.Wait()
}

func (s *Session) SetTool(t state.Tool) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.tools.SetTool(t)
}

func (s *Session) SetBrushColor(c color.Color) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.tools.SetColor(c)
}

// SetBrushColorHex parses a colour input value such as "#1e90ff".
func (s *Session) SetBrushColorHex(value string) error {
	c, err := state.ParseColor(value)
	if err != nil {
		return err
	}
	s.SetBrushColor(c)
	return nil
}

func (s *Session) SetBrushSize(w float64) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.tools.SetWidth(w)
}

// Tools returns a copy of the current brush configuration.
func (s *Session) Tools() state.Style {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.tools.Style()
}

// BeginStroke starts a gesture at p. It is ignored while a stroke is in
// progress.
func (s *Session) BeginStroke(p state.Point) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.settleLocked()
	if s.stroke != nil {
		s.log.Debug("begin ignored, stroke in progress")
		return
	}
	if s.dirty {
		// The last post-stroke snapshot was lost; checkpoint before drawing
		// so undo can still return here.
		s.pushLocked("checkpoint")
	}
	s.stroke = &state.Stroke{Points: []state.Point{p}, Style: s.tools.Style()}
}

// ExtendStroke draws a segment from the previous point to p using the
// current tool settings. It is ignored while idle.
func (s *Session) ExtendStroke(p state.Point) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.stroke == nil {
		return
	}
	s.settleLocked()
	st := s.tools.Style()
	s.surface.StrokeSegment(s.stroke.Last(), p, st)
	s.stroke.Add(p, st)
	s.dirty = true
}

// EndStroke finishes the gesture and records the post-stroke snapshot. It
// is ignored while idle.
func (s *Session) EndStroke() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.settleLocked()
	s.endLocked()
}

// CancelStroke handles an interrupted gesture exactly like EndStroke.
func (s *Session) CancelStroke() { s.EndStroke() }

func (s *Session) endLocked() {
	if s.stroke == nil {
		return
	}
	n := len(s.stroke.Points)
	s.stroke = nil
	s.pushLocked("stroke")
	s.log.Debug("stroke finished", "points", n, "history", s.history.Len())
}

// Drawing reports whether a stroke is in progress.
func (s *Session) Drawing() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.stroke != nil
}

// Undo drops the latest snapshot and repaints from the one before it. It
// returns nil when only the oldest retained snapshot is left. A stroke in
// progress is finished first.
func (s *Session) Undo() *Restore {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.settleLocked()
	s.endLocked()
	prev, ok := s.history.Undo()
	if !ok {
		s.log.Debug("undo ignored at oldest snapshot")
		return nil
	}
	s.dirty = false
	r := newRestore(restoreUndo, prev)
	s.startLocked(r)
	return r
}

// Clear paints the whole surface white and records a snapshot. Confirming
// with the user is the caller's job.
func (s *Session) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.settleLocked()
	s.endLocked()
	s.surface.Clear()
	s.pushLocked("clear")
}

// HistoryLen is the number of retained snapshots, baseline included.
func (s *Session) HistoryLen() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.history.Len()
}

// Size returns the logical surface size.
func (s *Session) Size() (width, height float64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.surface.Width(), s.surface.Height()
}

func (s *Session) PixelRatio() float64 { return s.opts.pixelRatio }

// Image returns a copy of the surface at device resolution, after any
// pending restore has been applied.
func (s *Session) Image() *image.RGBA {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.settleLocked()
	return s.surface.Image()
}

// ExportPNG encodes the full-resolution surface.
func (s *Session) ExportPNG() ([]byte, error) {
	var buf bytes.Buffer
	if err := s.WritePNG(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// WritePNG streams the full-resolution surface as PNG.
func (s *Session) WritePNG(w io.Writer) error {
	if err := surface.EncodePNG(w, s.Image()); err != nil {
		return fmt.Errorf("encode png: %w", err)
	}
	return nil
}

// capture encodes the current surface into an unrecorded snapshot.
func (s *Session) capture() (state.Snapshot, error) {
	img := s.surface.Image()
	var buf bytes.Buffer
	if err := s.opts.codec.Encode(&buf, img); err != nil {
		return state.Snapshot{}, err
	}
	b := img.Bounds()
	return s.clock.Stamp(buf.Bytes(), b.Dx(), b.Dy()), nil
}

// pushLocked records the surface in history. An encode failure only costs
// history depth: the push is skipped and the surface is marked dirty.
func (s *Session) pushLocked(reason string) {
	snap, err := s.capture()
	if err != nil {
		s.dirty = true
		s.log.Warn("snapshot skipped", "reason", reason, "err", err)
		return
	}
	s.dirty = false
	if old, evicted := s.history.Push(snap); evicted {
		s.log.Debug("snapshot evicted", "seq", old.Seq)
	}
	s.log.Debug("snapshot recorded", "reason", reason, "seq", snap.Seq, "bytes", snap.Size())
}
