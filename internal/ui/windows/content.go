package windows

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/rs/zerolog"

	"github.com/bnema/bomtool/internal/application/port"
	"github.com/bnema/bomtool/internal/domain/build"
	"github.com/bnema/bomtool/internal/ui/appctx"
)

// maxShownEvents bounds the log viewer to the newest events.
const maxShownEvents = 30

type levelFilter struct {
	level zerolog.Level
	set   bool
}

var levelChoices = []zerolog.Level{
	zerolog.DebugLevel,
	zerolog.InfoLevel,
	zerolog.WarnLevel,
	zerolog.ErrorLevel,
}

func showLogViewer(s port.Surface, cx *appctx.Context, h *handle, open *bool) {
	if h.feed == nil {
		s.Weak("No log feed attached.")
		return
	}

	s.Horizontal(func(row port.Surface) {
		if row.SelectableLabel(!h.minLevel.set, "all") {
			h.minLevel = levelFilter{}
		}
		for _, lvl := range levelChoices {
			if row.SelectableLabel(h.minLevel.set && h.minLevel.level == lvl, lvl.String()+"+") {
				h.minLevel = levelFilter{level: lvl, set: true}
			}
		}
	})

	events := filterEvents(h.feed.Events(), h.minLevel)
	if len(events) > maxShownEvents {
		s.Weak(fmt.Sprintf("%d older events hidden", len(events)-maxShownEvents))
		events = events[len(events)-maxShownEvents:]
	}
	if len(events) == 0 {
		s.Weak("No events yet.")
	}
	for _, e := range events {
		line := FormatEvent(e, cx.Config.Logging.TimeFormat)
		if e.Level >= zerolog.ErrorLevel && e.Level != zerolog.NoLevel {
			s.Error(line)
			continue
		}
		s.Monospace(line)
	}

	s.Separator()
	s.Horizontal(func(row port.Surface) {
		if row.Button("Clear") {
			h.feed.Clear()
		}
		if row.Button("Close") {
			*open = false
		}
	})
}

func filterEvents(events []port.LogEvent, f levelFilter) []port.LogEvent {
	if !f.set {
		return events
	}
	out := events[:0:0]
	for _, e := range events {
		if e.Level != zerolog.NoLevel && e.Level >= f.level {
			out = append(out, e)
		}
	}
	return out
}

// FormatEvent renders one event on a single line.
func FormatEvent(e port.LogEvent, timeFormat string) string {
	if timeFormat == "" {
		timeFormat = "15:04:05"
	}
	var b strings.Builder
	b.WriteString(e.Time.Format(timeFormat))
	b.WriteByte(' ')
	b.WriteString(levelTag(e.Level))
	if e.Component != "" {
		b.WriteString(" [" + e.Component + "]")
	}
	b.WriteByte(' ')
	b.WriteString(e.Message)

	keys := make([]string, 0, len(e.Fields))
	for k := range e.Fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		fmt.Fprintf(&b, " %s=%v", k, e.Fields[k])
	}
	return b.String()
}

func levelTag(level zerolog.Level) string {
	s := level.String()
	if len(s) < 3 {
		return "???"
	}
	return strings.ToUpper(s[:3])
}

func showSettings(s port.Surface, cx *appctx.Context, open *bool) {
	cfg := cx.Config
	rows := [][2]string{
		{"config file", cx.ConfigPath},
		{"database", cfg.Database.Path},
		{"log level", cfg.Logging.Level},
		{"log format", cfg.Logging.Format},
		{"log dir", cfg.Logging.LogDir},
		{"restore on start", strconv.FormatBool(cfg.Session.RestoreOnStart)},
		{"autosave", autosaveLabel(cfg.Session.AutosaveIntervalSeconds)},
		{"side panel width", strconv.Itoa(cfg.Workspace.SidePanelWidth)},
		{"accent", cfg.Appearance.Palette.Accent},
	}

	s.Columns(2, func(i int, col port.Surface) {
		for _, r := range rows {
			if i == 0 {
				col.Weak(r[0])
				continue
			}
			if r[1] == "" {
				col.Monospace("-")
				continue
			}
			col.Monospace(r[1])
		}
	})
	s.Weak("Edit the config file to change these; it is reloaded on save.")
	if s.Button("Close") {
		*open = false
	}
}

func autosaveLabel(seconds int) string {
	if seconds <= 0 {
		return "off"
	}
	return fmt.Sprintf("every %ds", seconds)
}

func showAbout(s port.Surface, cx *appctx.Context, open *bool) {
	s.Heading(cx.Build.String())
	if cx.Build.GoVersion != "" {
		s.Weak(cx.Build.GoVersion)
	}
	s.Label("Workspace for BOM import sessions.")
	s.Monospace(build.RepoURL())
	s.Weak("Contributors: " + strings.Join(build.Contributors(), ", "))
	if s.Button("Close") {
		*open = false
	}
}
