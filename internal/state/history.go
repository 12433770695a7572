package state

import (
	"bytes"
	"io"

	"github.com/google/uuid"
)

// DefaultHistoryDepth bounds the number of retained snapshots.
const DefaultHistoryDepth = 20

// Snapshot is an immutable encoded copy of the surface pixels. Snapshots
// are compared by ID and ordered by Seq, never by content.
type Snapshot struct {
	ID     uuid.UUID
	Seq    uint64
	Width  int // device pixels at capture time
	Height int
	data   []byte
}

// Reader returns a fresh reader over the encoded pixels.
func (s Snapshot) Reader() io.Reader { return bytes.NewReader(s.data) }

// Size is the encoded size in bytes.
func (s Snapshot) Size() int { return len(s.data) }

func (s Snapshot) IsZero() bool { return s.ID == uuid.Nil }

// HistoryStack is a bounded stack of snapshots. Once the baseline is pushed
// it is never empty: Undo refuses to drop the last element, and pushing past
// the bound evicts the oldest.
type HistoryStack struct {
	depth     int
	snapshots []Snapshot
}

func NewHistoryStack(depth int) *HistoryStack {
	if depth < 1 {
		depth = DefaultHistoryDepth
	}
	return &HistoryStack{depth: depth, snapshots: make([]Snapshot, 0, depth)}
}

func (h *HistoryStack) Depth() int { return h.depth }
func (h *HistoryStack) Len() int   { return len(h.snapshots) }

// Push appends s and returns the evicted snapshot, if any.
func (h *HistoryStack) Push(s Snapshot) (evicted Snapshot, ok bool) {
	if len(h.snapshots) == h.depth {
		evicted = h.snapshots[0]
		copy(h.snapshots, h.snapshots[1:])
		h.snapshots = h.snapshots[:len(h.snapshots)-1]
		ok = true
	}
	h.snapshots = append(h.snapshots, s)
	return evicted, ok
}

// Top returns the most recent snapshot.
func (h *HistoryStack) Top() (Snapshot, bool) {
	if len(h.snapshots) == 0 {
		return Snapshot{}, false
	}
	return h.snapshots[len(h.snapshots)-1], true
}

// Undo discards the most recent snapshot and returns the one below it.
// With one or no snapshots left it does nothing and reports false.
func (h *HistoryStack) Undo() (Snapshot, bool) {
	if len(h.snapshots) <= 1 {
		return Snapshot{}, false
	}
	h.snapshots[len(h.snapshots)-1] = Snapshot{}
	h.snapshots = h.snapshots[:len(h.snapshots)-1]
	return h.snapshots[len(h.snapshots)-1], true
}

// Bottom returns the oldest retained snapshot.
func (h *HistoryStack) Bottom() (Snapshot, bool) {
	if len(h.snapshots) == 0 {
		return Snapshot{}, false
	}
	return h.snapshots[0], true
}
