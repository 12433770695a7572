package sketch

import (
	"log/slog"
	"time"

	"LocalSketch/internal/state"
	"LocalSketch/internal/surface"
)

// DefaultResizeQuiescence is how long resize requests must stop arriving
// before RequestResize reallocates the surface.
const DefaultResizeQuiescence = 150 * time.Millisecond

type options struct {
	pixelRatio       float64
	historyDepth     int
	resizeQuiescence time.Duration
	codec            surface.Codec
	logger           *slog.Logger
	onChange         func()
}

func defaultOptions() options {
	return options{
		pixelRatio:       1,
		historyDepth:     state.DefaultHistoryDepth,
		resizeQuiescence: DefaultResizeQuiescence,
		codec:            surface.TIFFCodec{},
		logger:           newNopLogger(),
	}
}

// Option configures a Session.
type Option func(*options)

// WithPixelRatio sets the device pixels per logical unit.
func WithPixelRatio(r float64) Option { return func(o *options) { o.pixelRatio = r } }

// WithHistoryDepth bounds the undo history, baseline included.
func WithHistoryDepth(n int) Option { return func(o *options) { o.historyDepth = n } }

// WithResizeQuiescence overrides the RequestResize coalescing window.
func WithResizeQuiescence(d time.Duration) Option {
	return func(o *options) { o.resizeQuiescence = d }
}

// WithSnapshotCodec replaces the encoder used for history snapshots.
func WithSnapshotCodec(c surface.Codec) Option { return func(o *options) { o.codec = c } }

// WithLogger routes session diagnostics to l. Sessions are silent by default.
func WithLogger(l *slog.Logger) Option {
	return func(o *options) {
		if l == nil {
			l = newNopLogger()
		}
		o.logger = l
	}
}

// WithOnChange registers a callback for surface changes that complete
// asynchronously (restores and debounced resizes). It runs on the goroutine
// that finished the work, without the session lock held.
func WithOnChange(fn func()) Option { return func(o *options) { o.onChange = fn } }
