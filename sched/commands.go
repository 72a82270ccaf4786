package sched

import "sync"

// Commands buffers work for the scheduler goroutine. Input producers Push
// from any goroutine; systems Drain the pending inputs and Defer functions
// that run once every system of the frame has finished.
type Commands struct {
	mu      sync.Mutex
	pending []any

	defers []func()
}

func NewCommands() *Commands {
	return &Commands{}
}

// Push queues an input. Safe for concurrent use.
func (c *Commands) Push(cmd any) {
	c.mu.Lock()
	c.pending = append(c.pending, cmd)
	c.mu.Unlock()
}

// Len reports how many inputs are waiting.
func (c *Commands) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.pending)
}

// Drain hands over every queued input in arrival order and empties the queue.
func (c *Commands) Drain() []any {
	c.mu.Lock()
	defer c.mu.Unlock()

	if len(c.pending) == 0 {
		return nil
	}
	out := c.pending
	c.pending = nil
	return out
}

// Defer queues fn to run at the end of the current frame. Only call it from
// the goroutine that drives Once.
func (c *Commands) Defer(fn func()) {
	c.defers = append(c.defers, fn)
}

// Flush runs the deferred functions in order and resets the defer buffer.
// Functions deferred while flushing run in the same flush.
func (c *Commands) Flush() {
	for i := 0; i < len(c.defers); i++ {
		c.defers[i]()
	}
	c.defers = c.defers[:0]
}
