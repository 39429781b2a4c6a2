// Package cli wires bomtool's dependencies for the Cobra commands.
package cli

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/bnema/bomtool/internal/application/usecase"
	"github.com/bnema/bomtool/internal/cli/styles"
	"github.com/bnema/bomtool/internal/domain/build"
	"github.com/bnema/bomtool/internal/domain/repository"
	"github.com/bnema/bomtool/internal/infrastructure/config"
	"github.com/bnema/bomtool/internal/infrastructure/persistence/sqlite"
	"github.com/bnema/bomtool/internal/logging"
)

// App holds CLI dependencies.
type App struct {
	Config    *config.Config
	ConfigMgr *config.Manager
	Theme     *styles.Theme
	BuildInfo build.Info

	db        *sqlite.LazyDB
	StateRepo repository.AppStateRepository

	// Use cases
	RestoreStateUC *usecase.RestoreStateUseCase
	SaveStateUC    *usecase.SaveStateUseCase
	ResetStateUC   *usecase.ResetStateUseCase

	// Context with logger
	ctx context.Context
}

// NewApp loads the config and prepares the state store. The database is
// opened on first use.
func NewApp(ctx context.Context) (*App, error) {
	mgr, err := config.NewManager()
	if err != nil {
		return nil, fmt.Errorf("create config manager: %w", err)
	}
	if err := mgr.Load(); err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}
	cfg := mgr.Get()

	logger := logging.NewFromConfigValues(cliLogLevel(cfg.Logging.Level), cfg.Logging.Format)
	ctx = logging.WithContext(ctx, logger)
	if mgr.Created() {
		logger.Info().Str("path", mgr.GetConfigFile()).Msg("default config created")
	}

	db := sqlite.NewLazyDB(cfg.Database.Path)
	stateRepo := sqlite.NewLazyAppStateRepository(db)

	logger.Debug().Str("db_path", cfg.Database.Path).Msg("state store configured")

	return &App{
		Config:         cfg,
		ConfigMgr:      mgr,
		Theme:          styles.NewTheme(cfg),
		db:             db,
		StateRepo:      stateRepo,
		RestoreStateUC: usecase.NewRestoreStateUseCase(stateRepo),
		SaveStateUC:    usecase.NewSaveStateUseCase(stateRepo),
		ResetStateUC:   usecase.NewResetStateUseCase(stateRepo),
		ctx:            ctx,
	}, nil
}

// cliLogLevel keeps one-shot commands quiet unless a verbose level was asked
// for.
func cliLogLevel(level string) string {
	if logging.ParseLevel(level) == zerolog.InfoLevel {
		return "warn"
	}
	return level
}

// DBPath returns the state database file.
func (a *App) DBPath() string {
	return a.db.Path()
}

// Close releases all resources.
func (a *App) Close() error {
	return a.db.Close()
}

// Ctx returns the application context with logger.
func (a *App) Ctx() context.Context {
	return a.ctx
}
