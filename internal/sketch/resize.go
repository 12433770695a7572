package sketch

import (
	"math"

	"LocalSketch/internal/state"
	"LocalSketch/internal/surface"
)

// Resize reallocates the surface at a new logical size and repaints the
// previous content stretched over it. History is not touched. It returns
// nil when the size is invalid or unchanged. A resize arriving while an
// earlier resize is still decoding supersedes it and repaints from the
// same original content.
func (s *Session) Resize(width, height float64) *Restore {
	s.mu.Lock()
	defer s.mu.Unlock()

	dw, dh := surface.DeviceSize(width, height, s.opts.pixelRatio)
	if math.IsNaN(width) || math.IsNaN(height) || dw < 1 || dh < 1 {
		s.log.Debug("resize ignored", "width", width, "height", height)
		return nil
	}
	if width == s.surface.Width() && height == s.surface.Height() {
		return nil
	}

	var src state.Snapshot
	if p := s.pending; p != nil && p.kind == restoreResize {
		src = p.source
		s.pending = nil
		p.supersede()
	} else {
		s.settleLocked()
		snap, err := s.capture()
		if err != nil {
			// Keep the content anyway by stretching the in-memory copy.
			s.log.Warn("resize snapshot failed, repainting directly", "err", err)
			prev := s.surface.Image()
			if err := s.surface.Reallocate(width, height); err != nil {
				s.log.Warn("resize failed", "err", err)
				return nil
			}
			s.surface.Paint(prev)
			return nil
		}
		src = snap
	}

	if err := s.surface.Reallocate(width, height); err != nil {
		s.log.Warn("resize failed", "err", err)
		return nil
	}
	s.log.Debug("surface resized", "width", width, "height", height,
		"device", s.surface.Bounds().Size())
	r := newRestore(restoreResize, src)
	s.startLocked(r)
	return r
}

// RequestResize coalesces bursts of resize notifications: only the last
// request made within the quiescence window is applied.
func (s *Session) RequestResize(width, height float64) {
	s.resizer.call(func() { s.Resize(width, height) })
}

func (s *Session) startLocked(r *Restore) {
	s.pending = r
	s.decoders.Add(1)
	go s.decode(r)
}

func (s *Session) decode(r *Restore) {
	defer s.decoders.Done()
	r.img, r.err = s.opts.codec.Decode(r.source.Reader())
	close(r.decoded)

	s.mu.Lock()
	applied := s.pending == r
	if applied {
		s.applyLocked(r)
	}
	s.mu.Unlock()

	if applied && s.opts.onChange != nil {
		s.opts.onChange()
	}
}

// settleLocked applies a pending restore, waiting for its decode if needed.
func (s *Session) settleLocked() {
	if r := s.pending; r != nil {
		<-r.decoded
		s.applyLocked(r)
	}
}

func (s *Session) applyLocked(r *Restore) {
	s.pending = nil
	if r.err != nil {
		s.dirty = true
		s.log.Warn("restore failed", "kind", r.kind, "seq", r.source.Seq, "err", r.err)
	} else {
		s.surface.Paint(r.img)
	}
	close(r.done)
}
