// Package bootstrap provides helpers for workspace startup.
package bootstrap

import (
	"context"
	"sync"
	"time"

	"github.com/bnema/bomtool/internal/logging"
)

// StartupTimer records how long each startup phase took. Phases timed in
// parallel goroutines report through Record.
type StartupTimer struct {
	mu     sync.Mutex
	start  time.Time
	last   time.Time
	phases []phase
}

type phase struct {
	name string
	took time.Duration
}

// NewStartupTimer starts timing now.
func NewStartupTimer() *StartupTimer {
	now := time.Now()
	return &StartupTimer{start: now, last: now}
}

// Mark records the time since the previous mark, or since the start.
func (t *StartupTimer) Mark(name string) {
	t.mu.Lock()
	defer t.mu.Unlock()

	now := time.Now()
	t.phases = append(t.phases, phase{name: name, took: now.Sub(t.last)})
	t.last = now
}

// Record stores a duration measured elsewhere. It does not move the mark.
func (t *StartupTimer) Record(name string, d time.Duration) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.phases = append(t.phases, phase{name: name, took: d})
}

// Time runs fn and records how long it took.
func (t *StartupTimer) Time(name string, fn func()) {
	begin := time.Now()
	fn()
	t.Record(name, time.Since(begin))
}

// Phase returns the recorded duration of name.
func (t *StartupTimer) Phase(name string) (time.Duration, bool) {
	t.mu.Lock()
	defer t.mu.Unlock()
	for _, p := range t.phases {
		if p.name == name {
			return p.took, true
		}
	}
	return 0, false
}

// Total returns the time elapsed since the timer started.
func (t *StartupTimer) Total() time.Duration {
	t.mu.Lock()
	defer t.mu.Unlock()
	return time.Since(t.start)
}

// Log writes every phase in recording order at debug level.
func (t *StartupTimer) Log(ctx context.Context) {
	t.mu.Lock()
	defer t.mu.Unlock()

	event := logging.FromContext(ctx).Debug().Dur("total", time.Since(t.start))
	for _, p := range t.phases {
		event = event.Dur(p.name, p.took)
	}
	event.Msg("startup timing")
}
