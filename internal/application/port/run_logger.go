package port

import (
	"context"
	"io"

	"github.com/rs/zerolog"
)

// RunLogConfig selects where the interactive run writes its logs.
type RunLogConfig struct {
	Level      string
	Format     string
	TimeFormat string
	LogDir     string
	MaxSizeMB  int
	MaxBackups int
}

// RunLogger creates the logger of an interactive run. The terminal belongs
// to the UI, so output goes to a file plus the given sinks.
type RunLogger interface {
	CreateLogger(ctx context.Context, cfg RunLogConfig, sinks ...io.Writer) (zerolog.Logger, func(), error)
}
