package logging

import (
	"context"
	"io"

	"github.com/bnema/bomtool/internal/application/port"
	corelogging "github.com/bnema/bomtool/internal/logging"
	"github.com/rs/zerolog"
)

const runLogFile = "bomtool.log"

// RunLoggerAdapter writes run logs to a rotated file under the log dir.
type RunLoggerAdapter struct{}

var _ port.RunLogger = (*RunLoggerAdapter)(nil)

func NewRunLoggerAdapter() *RunLoggerAdapter {
	return &RunLoggerAdapter{}
}

// CreateLogger opens the log file and returns a logger writing to it and to
// sinks. When the file cannot be opened the logger still feeds sinks, and
// the error is returned so the caller can report it.
func (*RunLoggerAdapter) CreateLogger(
	_ context.Context,
	cfg port.RunLogConfig,
	sinks ...io.Writer,
) (zerolog.Logger, func(), error) {
	logCfg := corelogging.Config{
		Level:      corelogging.ParseLevel(cfg.Level),
		Format:     cfg.Format,
		TimeFormat: cfg.TimeFormat,
		NoColor:    true,
	}

	rotator, err := corelogging.NewLogRotator(cfg.LogDir, runLogFile, cfg.MaxSizeMB, cfg.MaxBackups)
	if err != nil {
		return corelogging.New(logCfg, io.Discard, sinks...), func() {}, err
	}

	logger := corelogging.New(logCfg, rotator, sinks...)
	cleanup := func() {
		_ = rotator.Close()
	}
	return logger, cleanup, nil
}
