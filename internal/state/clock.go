package state

import (
	"sync/atomic"

	"github.com/google/uuid"
)

// Clock stamps snapshots with a session-unique identity and a
// monotonically increasing sequence number.
type Clock struct {
	sessionID string
	seq       atomic.Uint64
}

func NewClock() *Clock {
	return &Clock{sessionID: uuid.NewString()}
}

func (c *Clock) SessionID() string { return c.sessionID }

// Next returns the next sequence number, starting at 1.
func (c *Clock) Next() uint64 {
	return c.seq.Add(1)
}

// Stamp wraps data in a new Snapshot.
func (c *Clock) Stamp(data []byte, width, height int) Snapshot {
	return Snapshot{
		ID:     uuid.New(),
		Seq:    c.Next(),
		Width:  width,
		Height: height,
		data:   data,
	}
}
