package mainloop

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/bnema/bomtool/internal/infrastructure/config"
	"github.com/bnema/bomtool/internal/logging"
)

// RunOptions wires background sources into the running program.
type RunOptions struct {
	// Events triggers a redraw whenever a log event is captured.
	Events *logging.EventCollector
	// Config delivers live config reloads.
	Config *config.Manager
	// ProgramOptions are passed to tea.NewProgram after the defaults.
	ProgramOptions []tea.ProgramOption
}

// Run starts the Bubble Tea program and blocks until the workspace closes.
// SIGINT and SIGTERM go through the shutdown prompt like the quit key.
func Run(ctx context.Context, m *Model, opts RunOptions) error {
	log := logging.FromContext(ctx)

	programOpts := append([]tea.ProgramOption{
		tea.WithAltScreen(),
		tea.WithContext(ctx),
		tea.WithoutSignalHandler(),
	}, opts.ProgramOptions...)
	p := tea.NewProgram(m, programOpts...)

	// Send blocks until the loop reads the message, and posts may come from
	// the UI goroutine itself.
	co := NewCoalescer(func(fn func()) {
		go p.Send(runMsg{fn: fn})
	})
	defer co.Close()

	if opts.Events != nil {
		opts.Events.SetNotify(func() { co.Post("logs", func() {}) })
		defer opts.Events.SetNotify(nil)
	}
	if opts.Config != nil {
		opts.Config.OnConfigChange(func(cfg *config.Config) {
			co.Post("config", func() {
				m.ApplyConfig(cfg)
				log.Info().Msg("config reloaded")
			})
		})
	}

	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(sigs)
	done := make(chan struct{})
	defer close(done)
	go func() {
		for {
			select {
			case sig := <-sigs:
				log.Info().Str("signal", sig.String()).Msg("close requested by signal")
				p.Send(closeRequestMsg{})
			case <-done:
				return
			}
		}
	}()

	if _, err := p.Run(); err != nil {
		if errors.Is(err, tea.ErrProgramKilled) && ctx.Err() != nil {
			return nil
		}
		return fmt.Errorf("run workspace: %w", err)
	}
	return nil
}
