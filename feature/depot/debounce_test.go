package depot

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

type calls struct {
	mu   sync.Mutex
	args []int
}

func (c *calls) add(n int) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.args = append(c.args, n)
}

func (c *calls) get() []int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return append([]int(nil), c.args...)
}

func TestDebouncer_TrailingEdge(t *testing.T) {
	var c calls
	d := NewDebouncer(30*time.Millisecond, c.add)

	d.Call(1)
	d.Call(2)
	d.Call(3)
	assert.True(t, d.Pending())

	assert.Eventually(t, func() bool { return len(c.get()) == 1 }, time.Second, 5*time.Millisecond)
	assert.Equal(t, []int{3}, c.get(), "only the last argument is delivered")
	assert.False(t, d.Pending())
}

func TestDebouncer_Rearm(t *testing.T) {
	var c calls
	d := NewDebouncer(60*time.Millisecond, c.add)

	d.Call(1)
	time.Sleep(30 * time.Millisecond)
	d.Call(2)
	time.Sleep(40 * time.Millisecond)
	assert.Empty(t, c.get(), "re-armed timer has not expired yet")

	assert.Eventually(t, func() bool { return len(c.get()) == 1 }, time.Second, 5*time.Millisecond)
	assert.Equal(t, []int{2}, c.get())
}

func TestDebouncer_Cancel(t *testing.T) {
	var c calls
	d := NewDebouncer(20*time.Millisecond, c.add)

	d.Call(1)
	assert.True(t, d.Cancel())
	assert.False(t, d.Cancel())

	assert.Never(t, func() bool { return len(c.get()) > 0 }, 80*time.Millisecond, 10*time.Millisecond)
}
