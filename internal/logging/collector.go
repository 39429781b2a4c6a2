package logging

import (
	"encoding/json"
	"sync"
	"time"

	"github.com/bnema/bomtool/internal/application/port"
	"github.com/rs/zerolog"
)

// DefaultMaxEvents is the ring size used when none is configured.
const DefaultMaxEvents = 1000

// EventCollector keeps the most recent log events in memory for the log
// viewer. It is a zerolog sink: it expects one JSON event per Write.
type EventCollector struct {
	mu     sync.Mutex
	events []port.LogEvent
	start  int
	count  int
	notify func()
}

// NewEventCollector creates a collector retaining up to maxEvents events.
func NewEventCollector(maxEvents int) *EventCollector {
	if maxEvents <= 0 {
		maxEvents = DefaultMaxEvents
	}
	return &EventCollector{events: make([]port.LogEvent, maxEvents)}
}

// Write implements io.Writer. Lines that are not JSON objects are kept as
// plain messages.
func (c *EventCollector) Write(p []byte) (int, error) {
	event := decodeEvent(p)

	c.mu.Lock()
	idx := (c.start + c.count) % len(c.events)
	c.events[idx] = event
	if c.count < len(c.events) {
		c.count++
	} else {
		c.start = (c.start + 1) % len(c.events)
	}
	notify := c.notify
	c.mu.Unlock()

	if notify != nil {
		notify()
	}
	return len(p), nil
}

// SetNotify registers fn to run after every captured event. fn runs on the
// writing goroutine and must not block.
func (c *EventCollector) SetNotify(fn func()) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.notify = fn
}

// Events implements port.LogFeed.
func (c *EventCollector) Events() []port.LogEvent {
	c.mu.Lock()
	defer c.mu.Unlock()

	out := make([]port.LogEvent, 0, c.count)
	for i := 0; i < c.count; i++ {
		out = append(out, c.events[(c.start+i)%len(c.events)])
	}
	return out
}

// Clear implements port.LogFeed.
func (c *EventCollector) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()

	clear(c.events)
	c.start = 0
	c.count = 0
}

// Len returns the number of retained events.
func (c *EventCollector) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.count
}

func decodeEvent(p []byte) port.LogEvent {
	var raw map[string]any
	if err := json.Unmarshal(p, &raw); err != nil {
		return port.LogEvent{
			Time:    time.Now(),
			Level:   zerolog.NoLevel,
			Message: string(p),
		}
	}

	event := port.LogEvent{Time: time.Now(), Level: zerolog.NoLevel}
	if s, ok := raw[zerolog.LevelFieldName].(string); ok {
		if lvl, err := zerolog.ParseLevel(s); err == nil {
			event.Level = lvl
		}
		delete(raw, zerolog.LevelFieldName)
	}
	if s, ok := raw[zerolog.TimestampFieldName].(string); ok {
		if ts, err := time.Parse(zerolog.TimeFieldFormat, s); err == nil {
			event.Time = ts
		}
		delete(raw, zerolog.TimestampFieldName)
	}
	if s, ok := raw[zerolog.MessageFieldName].(string); ok {
		event.Message = s
		delete(raw, zerolog.MessageFieldName)
	}
	if s, ok := raw["component"].(string); ok {
		event.Component = s
		delete(raw, "component")
	}
	if len(raw) > 0 {
		event.Fields = raw
	}
	return event
}

var _ port.LogFeed = (*EventCollector)(nil)
