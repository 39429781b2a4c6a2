// Package appctx holds the state the shell lends to tab and window content
// every frame.
package appctx

import (
	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/bnema/bomtool/internal/application/port"
	"github.com/bnema/bomtool/internal/domain/build"
	"github.com/bnema/bomtool/internal/domain/entity"
	"github.com/bnema/bomtool/internal/infrastructure/config"
)

// Context is shared by every tab and window. It is only touched from the
// UI goroutine.
type Context struct {
	Config     config.Config
	ConfigPath string
	Build      build.Info
	LogFeed    port.LogFeed
	Logger     zerolog.Logger

	newID func() string
}

// Option configures a Context.
type Option func(*Context)

// WithConfig sets the effective configuration.
func WithConfig(cfg config.Config, path string) Option {
	return func(c *Context) {
		c.Config = cfg
		c.ConfigPath = path
	}
}

// WithBuildInfo sets the build metadata shown in the about window.
func WithBuildInfo(info build.Info) Option {
	return func(c *Context) { c.Build = info }
}

// WithLogFeed sets the feed read by the log viewer.
func WithLogFeed(feed port.LogFeed) Option {
	return func(c *Context) { c.LogFeed = feed }
}

// WithLogger sets the logger used by tab content.
func WithLogger(logger zerolog.Logger) Option {
	return func(c *Context) { c.Logger = logger }
}

// WithSessionIDs replaces the import session id generator.
func WithSessionIDs(fn func() string) Option {
	return func(c *Context) {
		if fn != nil {
			c.newID = fn
		}
	}
}

// New creates a context with default config and random session ids.
func New(opts ...Option) *Context {
	c := &Context{
		Config: *config.DefaultConfig(),
		Logger: zerolog.Nop(),
		newID:  uuid.NewString,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// RequiredColumns returns the columns new import sessions require.
func (c *Context) RequiredColumns() []entity.RequiredColumn {
	if len(c.Config.Importer.RequiredColumns) == 0 {
		return entity.DefaultRequiredColumns()
	}
	return c.Config.Importer.RequiredColumns
}

// NewSession starts an import session with the configured columns.
func (c *Context) NewSession() *entity.ImportSession {
	session := entity.NewImportSession(c.newID(), c.RequiredColumns())
	c.Logger.Debug().Str("session_id", session.ID).Int("columns", len(session.Columns)).Msg("import session started")
	return session
}

// EnsureSession attaches a session to an importer tab that has none.
// It returns nil for other tab kinds.
func (c *Context) EnsureSession(tab *entity.Tab) *entity.ImportSession {
	if tab == nil || tab.Importer == nil {
		return nil
	}
	if tab.Importer.Session == nil {
		tab.Importer.Session = c.NewSession()
	}
	return tab.Importer.Session
}
