// Package mainloop runs the workspace shell inside a Bubble Tea program.
package mainloop

import "sync"

// Coalescer merges bursts of work posted to the UI goroutine. While a key
// is queued, later posts under the same key replace its callback instead
// of queuing again; only the latest callback runs.
type Coalescer struct {
	mu     sync.Mutex
	latest map[string]func()
	post   func(func())
	closed bool
}

// NewCoalescer creates a coalescer that hands work to post, which must
// run it on the UI goroutine.
func NewCoalescer(post func(func())) *Coalescer {
	if post == nil {
		panic("mainloop.NewCoalescer: post function cannot be nil")
	}
	return &Coalescer{latest: make(map[string]func()), post: post}
}

// Post queues fn under key. It is safe to call from any goroutine.
func (c *Coalescer) Post(key string, fn func()) {
	if fn == nil || key == "" {
		return
	}

	c.mu.Lock()
	if c.closed {
		c.mu.Unlock()
		return
	}
	_, queued := c.latest[key]
	c.latest[key] = fn
	c.mu.Unlock()

	if !queued {
		c.post(func() { c.run(key) })
	}
}

func (c *Coalescer) run(key string) {
	c.mu.Lock()
	fn, ok := c.latest[key]
	delete(c.latest, key)
	closed := c.closed
	c.mu.Unlock()

	if ok && !closed {
		fn()
	}
}

// Pending returns the number of queued keys.
func (c *Coalescer) Pending() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.latest)
}

// Close drops queued work and ignores later posts.
func (c *Coalescer) Close() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.closed = true
	clear(c.latest)
}
