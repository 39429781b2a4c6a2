package port

import (
	"time"

	"github.com/rs/zerolog"
)

// LogEvent is one captured log record.
type LogEvent struct {
	Time      time.Time
	Level     zerolog.Level
	Component string
	Message   string
	Fields    map[string]any
}

// LogFeed exposes recently captured log events.
type LogFeed interface {
	// Events returns the retained events, oldest first.
	Events() []LogEvent
	// Clear drops every retained event.
	Clear()
}
