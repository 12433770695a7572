package sketch

import (
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestDefaultKeymap(t *testing.T) {
	k := DefaultKeymap()
	assert.Equal(t, ActionUndo, k.Lookup('z'))
	assert.Equal(t, ActionUndo, k.Lookup('Z'))
	assert.Equal(t, ActionClear, k.Lookup('c'))
	assert.Equal(t, ActionEraser, k.Lookup('E'))
	assert.Equal(t, ActionPen, k.Lookup('p'))
	assert.Equal(t, ActionSave, k.Lookup('s'))
	assert.Equal(t, ActionNone, k.Lookup('q'))
	assert.Equal(t, "save", ActionSave.String())
}

func TestDebouncerStop(t *testing.T) {
	var runs atomic.Int32
	d := newDebouncer(10 * time.Millisecond)
	d.call(func() { runs.Add(1) })
	d.stop()
	time.Sleep(50 * time.Millisecond)
	assert.Equal(t, int32(0), runs.Load())

	d.call(func() { runs.Add(1) })
	d.call(func() { runs.Add(10) })
	time.Sleep(80 * time.Millisecond)
	assert.Equal(t, int32(10), runs.Load(), "only the last call runs")
}
