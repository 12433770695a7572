package state

import (
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func stamp(c *Clock, tag string) Snapshot {
	return c.Stamp([]byte(tag), 1, 1)
}

func TestHistoryPushEvictsOldest(t *testing.T) {
	c := NewClock()
	h := NewHistoryStack(3)
	first := stamp(c, "a")
	h.Push(first)
	h.Push(stamp(c, "b"))
	_, evicted := h.Push(stamp(c, "c"))
	assert.False(t, evicted)

	old, evicted := h.Push(stamp(c, "d"))
	require.True(t, evicted)
	assert.Equal(t, first.ID, old.ID)
	assert.Equal(t, 3, h.Len())

	bottom, ok := h.Bottom()
	require.True(t, ok)
	data, err := io.ReadAll(bottom.Reader())
	require.NoError(t, err)
	assert.Equal(t, "b", string(data))
}

func TestHistoryUndoKeepsBaseline(t *testing.T) {
	c := NewClock()
	h := NewHistoryStack(DefaultHistoryDepth)

	_, ok := h.Undo()
	assert.False(t, ok, "empty stack")

	base := stamp(c, "base")
	h.Push(base)
	_, ok = h.Undo()
	assert.False(t, ok)
	assert.Equal(t, 1, h.Len())

	h.Push(stamp(c, "one"))
	prev, ok := h.Undo()
	require.True(t, ok)
	assert.Equal(t, base.ID, prev.ID)
	assert.Equal(t, 1, h.Len())

	_, ok = h.Undo()
	assert.False(t, ok)
	top, _ := h.Top()
	assert.Equal(t, base.ID, top.ID)
}

func TestHistoryBoundedDepth(t *testing.T) {
	c := NewClock()
	h := NewHistoryStack(DefaultHistoryDepth)
	h.Push(stamp(c, "base"))
	for i := 0; i < 25; i++ {
		h.Push(stamp(c, "s"))
		want := i + 2
		if want > DefaultHistoryDepth {
			want = DefaultHistoryDepth
		}
		assert.Equal(t, want, h.Len())
	}

	bottom, _ := h.Bottom()
	for i := 0; i < 19; i++ {
		_, ok := h.Undo()
		require.True(t, ok)
	}
	top, _ := h.Top()
	assert.Equal(t, bottom.ID, top.ID)
	assert.NotEqual(t, uint64(1), top.Seq, "baseline was evicted")
}

func TestClockOrdersSnapshots(t *testing.T) {
	c := NewClock()
	a := stamp(c, "a")
	b := stamp(c, "b")
	assert.Less(t, a.Seq, b.Seq)
	assert.NotEqual(t, a.ID, b.ID)
	assert.False(t, a.IsZero())
	assert.True(t, Snapshot{}.IsZero())
	assert.NotEmpty(t, c.SessionID())
}
