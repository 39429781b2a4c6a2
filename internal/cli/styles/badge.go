package styles

import (
	"fmt"
	"time"
)

// AccentBadge renders a badge with accent color.
func (t *Theme) AccentBadge(text string) string {
	return t.Badge.Render(text)
}

// MutedBadge renders a badge with muted colors.
func (t *Theme) MutedBadge(text string) string {
	return t.BadgeMuted.Render(text)
}

// TimeBadge renders a relative time badge.
func (t *Theme) TimeBadge(tm time.Time) string {
	return t.BadgeMuted.Render(RelativeTime(tm))
}

// RelativeTime formats a time as a human-readable relative string.
func RelativeTime(tm time.Time) string {
	if tm.IsZero() {
		return "never"
	}
	diff := time.Since(tm)

	switch {
	case diff < time.Minute:
		return "just now"
	case diff < time.Hour:
		return plural(int(diff.Minutes()), "m")
	case diff < 24*time.Hour:
		return plural(int(diff.Hours()), "h")
	case diff < 7*24*time.Hour:
		return plural(int(diff.Hours()/24), "d")
	case diff < 30*24*time.Hour:
		return plural(int(diff.Hours()/(24*7)), "w")
	case diff < 365*24*time.Hour:
		return plural(int(diff.Hours()/(24*30)), "mo")
	default:
		return plural(int(diff.Hours()/(24*365)), "y")
	}
}

func plural(n int, unit string) string {
	return fmt.Sprintf("%d%s ago", n, unit)
}
