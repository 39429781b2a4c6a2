package mainloop

import (
	"context"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/bnema/bomtool/internal/application/port"
	"github.com/bnema/bomtool/internal/cli/styles"
	"github.com/bnema/bomtool/internal/infrastructure/config"
	"github.com/bnema/bomtool/internal/logging"
	"github.com/bnema/bomtool/internal/ui/shell"
	"github.com/bnema/bomtool/internal/ui/textui"
)

// closeRequestMsg is sent when the OS asks the program to stop.
type closeRequestMsg struct{}

// autosaveMsg fires on every autosave tick.
type autosaveMsg struct{}

// runMsg carries work posted from other goroutines.
type runMsg struct{ fn func() }

// redrawMsg asks for a frame without input.
type redrawMsg struct{}

// Model runs one shell frame per Bubble Tea message and implements
// port.Host for it.
type Model struct {
	ctx   context.Context
	app   *shell.App
	ui    *textui.Context
	help  help.Model
	keys  keyMap
	theme *styles.Theme

	autosave time.Duration
	width    int
	height   int
	view     string

	closeRequested bool
	closePending   bool
}

// NewModel creates the main loop model around app.
func NewModel(ctx context.Context, app *shell.App, theme *styles.Theme) *Model {
	if theme == nil {
		theme = styles.NewTheme(nil)
	}
	m := &Model{
		ctx:   logging.WithComponent(ctx, "mainloop"),
		app:   app,
		ui:    textui.NewContext(theme),
		help:  help.New(),
		keys:  defaultKeyMap(),
		theme: theme,
	}
	m.help.Styles.ShortKey = theme.HelpKey
	m.help.Styles.ShortDesc = theme.HelpDesc
	m.help.Styles.FullKey = theme.HelpKey
	m.help.Styles.FullDesc = theme.HelpDesc
	m.ApplyConfig(&app.Context().Config)
	return m
}

// ApplyConfig applies display and autosave settings. It must run on the UI
// goroutine.
func (m *Model) ApplyConfig(cfg *config.Config) {
	if cfg == nil {
		return
	}
	m.theme = styles.NewTheme(cfg)
	m.ui.SetTheme(m.theme)
	m.ui.SetSideWidth(cfg.Workspace.SidePanelWidth)
	m.autosave = time.Duration(cfg.Session.AutosaveIntervalSeconds) * time.Second
	m.app.Context().Config = *cfg
}

// CloseRequested implements port.Host.
func (m *Model) CloseRequested() bool {
	return m.closeRequested
}

// CancelClose implements port.Host.
func (m *Model) CancelClose() {
	m.closeRequested = false
}

// Close implements port.Host.
func (m *Model) Close() {
	m.closePending = true
}

// Init implements tea.Model.
func (m *Model) Init() tea.Cmd {
	return tea.Batch(m.autosaveTick(), func() tea.Msg { return redrawMsg{} })
}

func (m *Model) autosaveTick() tea.Cmd {
	if m.autosave <= 0 {
		return nil
	}
	return tea.Tick(m.autosave, func(time.Time) tea.Msg { return autosaveMsg{} })
}

// Update implements tea.Model.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var (
		in   textui.Input
		cmds []tea.Cmd
	)

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		m.resize()

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.closeRequested = true
		case key.Matches(msg, m.keys.Next):
			in.Next = true
		case key.Matches(msg, m.keys.Prev):
			in.Prev = true
		case key.Matches(msg, m.keys.Activate):
			in.Activate = true
		case key.Matches(msg, m.keys.Escape):
			in.Escape = true
		case key.Matches(msg, m.keys.Save):
			m.save("manual")
		case key.Matches(msg, m.keys.Help):
			m.help.ShowAll = !m.help.ShowAll
			m.resize()
		}

	case closeRequestMsg:
		m.closeRequested = true

	case autosaveMsg:
		m.save("autosave")
		cmds = append(cmds, m.autosaveTick())

	case runMsg:
		msg.fn()
	}

	m.render(in)
	if in.Activate {
		// Show the outcome of the activation in the same update.
		m.render(textui.Input{})
	}

	if m.closeRequested {
		logging.FromContext(m.ctx).Info().Msg("closing workspace")
		return m, tea.Quit
	}
	if m.closePending {
		cmds = append(cmds, func() tea.Msg { return redrawMsg{} })
	}
	return m, tea.Batch(cmds...)
}

func (m *Model) render(in textui.Input) {
	if m.closePending {
		m.closePending = false
		m.closeRequested = true
	}
	m.view = m.ui.Run(in, func(f port.Frame) { m.app.Update(f, m) })
}

func (m *Model) resize() {
	if m.width == 0 {
		return
	}
	footer := lipgloss.Height(m.help.View(m.keys))
	m.ui.SetSize(m.width, max(m.height-footer, 0))
}

func (m *Model) save(reason string) {
	log := logging.FromContext(m.ctx)
	if err := m.app.Save(); err != nil {
		log.Warn().Err(err).Str("reason", reason).Msg("workspace not saved")
		return
	}
	log.Debug().Str("reason", reason).Msg("workspace saved")
}

// View implements tea.Model.
func (m *Model) View() string {
	return lipgloss.JoinVertical(lipgloss.Left, m.view, m.help.View(m.keys))
}

var _ port.Host = (*Model)(nil)
