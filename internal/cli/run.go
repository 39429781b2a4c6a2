package cli

import (
	"context"

	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"

	"github.com/bnema/bomtool/internal/application/port"
	"github.com/bnema/bomtool/internal/bootstrap"
	"github.com/bnema/bomtool/internal/domain/entity"
	infralogging "github.com/bnema/bomtool/internal/infrastructure/logging"
	"github.com/bnema/bomtool/internal/logging"
	"github.com/bnema/bomtool/internal/ui/appctx"
	"github.com/bnema/bomtool/internal/ui/mainloop"
	"github.com/bnema/bomtool/internal/ui/shell"
)

// RunWorkspace starts the interactive workspace and blocks until it closes.
// ctx should carry the CLI logger, see Ctx.
func (a *App) RunWorkspace(ctx context.Context) error {
	timer := bootstrap.NewStartupTimer()
	collector := logging.NewEventCollector(a.Config.Logging.MaxEvents)

	// The log file and the database (WASM compilation plus migrations) are
	// independent and both slow enough to overlap.
	var (
		logger  zerolog.Logger
		cleanup = func() {}
		logErr  error
		dbErr   error
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		timer.Time("log_file", func() {
			var c func()
			logger, c, logErr = infralogging.NewRunLoggerAdapter().CreateLogger(gctx, port.RunLogConfig{
				Level:      a.Config.Logging.Level,
				Format:     a.Config.Logging.Format,
				TimeFormat: a.Config.Logging.TimeFormat,
				LogDir:     a.Config.Logging.LogDir,
				MaxSizeMB:  a.Config.Logging.MaxSizeMB,
				MaxBackups: a.Config.Logging.MaxBackups,
			}, collector)
			if c != nil {
				cleanup = c
			}
		})
		return nil
	})
	g.Go(func() error {
		timer.Time("database", func() {
			_, dbErr = a.db.DB(gctx)
		})
		return gctx.Err()
	})
	if err := g.Wait(); err != nil {
		cleanup()
		return err
	}
	defer cleanup()

	ctx = logging.WithContext(ctx, logger)
	log := logging.FromContext(ctx)
	if logErr != nil {
		log.Warn().Err(logErr).Msg("log file unavailable, events only reach the log viewer")
	}
	if dbErr != nil {
		log.Warn().Err(dbErr).Str("path", a.DBPath()).Msg("state database unavailable")
	}

	state := entity.DefaultAppState()
	if a.Config.Session.RestoreOnStart {
		state = a.RestoreStateUC.Execute(ctx).State
	}
	timer.Mark("restore")

	cx := appctx.New(
		appctx.WithConfig(*a.Config, a.ConfigMgr.GetConfigFile()),
		appctx.WithBuildInfo(a.BuildInfo),
		appctx.WithLogFeed(collector),
		appctx.WithLogger(logger.With().Str("component", "tabs").Logger()),
	)
	app := shell.New(ctx, shell.Options{State: state, Context: cx, Saver: a.SaveStateUC})

	if err := a.ConfigMgr.Watch(ctx); err != nil {
		log.Warn().Err(err).Msg("config hot reload disabled")
	}

	timer.Log(ctx)
	log.Info().
		Int("pane_count", state.Tree.PaneCount()).
		Str("config", a.ConfigMgr.GetConfigFile()).
		Msg("workspace starting")

	return mainloop.Run(ctx, mainloop.NewModel(ctx, app, a.Theme), mainloop.RunOptions{
		Events: collector,
		Config: a.ConfigMgr,
	})
}
