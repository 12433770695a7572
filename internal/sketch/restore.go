package sketch

import (
	"context"
	"errors"
	"image"

	"LocalSketch/internal/state"
)

// ErrSuperseded is reported by a restore that was replaced by a later one
// before it could repaint.
var ErrSuperseded = errors.New("restore superseded")

type restoreKind int

const (
	restoreUndo restoreKind = iota
	restoreResize
)

func (k restoreKind) String() string {
	if k == restoreResize {
		return "resize"
	}
	return "undo"
}

// Restore tracks a repaint from an encoded snapshot. The decode runs in the
// background; the surface only shows the restored content once Done is
// closed. Any later session operation that touches pixels applies a pending
// restore first, so pixel order always follows call order.
type Restore struct {
	kind     restoreKind
	source   state.Snapshot
	decoded  chan struct{}
	done     chan struct{}
	img      image.Image
	err      error
	replaced bool
}

func newRestore(kind restoreKind, src state.Snapshot) *Restore {
	return &Restore{
		kind:    kind,
		source:  src,
		decoded: make(chan struct{}),
		done:    make(chan struct{}),
	}
}

// Done is closed once the restore has been applied, has failed or has been
// superseded.
func (r *Restore) Done() <-chan struct{} { return r.done }

// Snapshot is the content being restored.
func (r *Restore) Snapshot() state.Snapshot { return r.source }

// Wait blocks until the restore finishes or ctx is cancelled. It returns
// the decode error, ErrSuperseded, or nil once the surface shows the
// restored content.
func (r *Restore) Wait(ctx context.Context) error {
	select {
	case <-r.done:
		if r.replaced {
			return ErrSuperseded
		}
		return r.err
	case <-ctx.Done():
		return ctx.Err()
	}
}

func (r *Restore) supersede() {
	r.replaced = true
	close(r.done)
}
