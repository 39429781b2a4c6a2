package entity

import (
	"fmt"
	"time"
)

// TabKind identifies what a pane shows.
type TabKind string

const (
	TabKindImporter    TabKind = "importer"      // BOM import session
	TabKindPlaceholder TabKind = "placeholder_b" // Scratch view
)

// TabKinds lists every tab kind in declaration order.
func TabKinds() []TabKind {
	return []TabKind{TabKindImporter, TabKindPlaceholder}
}

// Tab is the content of a pane. Exactly one payload matching Kind is set.
type Tab struct {
	Kind        TabKind         `json:"kind"`
	Ordinal     int             `json:"ordinal"`
	Importer    *ImporterTab    `json:"importer,omitempty"`
	Placeholder *PlaceholderTab `json:"placeholder,omitempty"`
}

// ImporterTab holds the state of a BOM import tab.
type ImporterTab struct {
	// Tag pins the tab to a numbered slot. Tagged importers cannot be closed.
	Tag *int `json:"tag,omitempty"`

	// Session is attached lazily at render time and never persisted.
	Session *ImportSession `json:"-"`
}

// PlaceholderTab holds the state of the scratch view.
type PlaceholderTab struct {
	Clicks int `json:"clicks"`
}

// NewTabFromKind builds a fresh tab of kind tagged with ordinal.
// Importers built this way carry the ordinal as their tag.
func NewTabFromKind(kind TabKind, ordinal int) Tab {
	switch kind {
	case TabKindImporter:
		tag := ordinal
		return Tab{Kind: kind, Ordinal: ordinal, Importer: &ImporterTab{Tag: &tag}}
	case TabKindPlaceholder:
		return Tab{Kind: kind, Ordinal: ordinal, Placeholder: &PlaceholderTab{}}
	}
	panic(fmt.Sprintf("entity.NewTabFromKind: unknown tab kind %q", kind))
}

// NewUntaggedImporter builds an importer tab that the user may close.
func NewUntaggedImporter(ordinal int) Tab {
	return Tab{Kind: TabKindImporter, Ordinal: ordinal, Importer: &ImporterTab{}}
}

// Title returns the display title.
func (t *Tab) Title() string {
	switch t.Kind {
	case TabKindImporter:
		if t.Importer != nil && t.Importer.Tag != nil {
			return fmt.Sprintf("BOM %d", *t.Importer.Tag)
		}
		return "BOM"
	case TabKindPlaceholder:
		return fmt.Sprintf("B %d", t.Ordinal)
	}
	return string(t.Kind)
}

// IsCloseable reports whether the user may close the tab.
func (t *Tab) IsCloseable() bool {
	switch t.Kind {
	case TabKindImporter:
		return t.Importer == nil || t.Importer.Tag == nil
	case TabKindPlaceholder:
		return true
	}
	return true
}

func (t *Tab) validate() error {
	switch t.Kind {
	case TabKindImporter:
		if t.Importer == nil || t.Placeholder != nil {
			return fmt.Errorf("%w: importer tab %d has a mismatched payload", ErrInvalidTree, t.Ordinal)
		}
	case TabKindPlaceholder:
		if t.Placeholder == nil || t.Importer != nil {
			return fmt.Errorf("%w: placeholder tab %d has a mismatched payload", ErrInvalidTree, t.Ordinal)
		}
	default:
		return fmt.Errorf("%w: unknown tab kind %q", ErrInvalidTree, t.Kind)
	}
	if t.Ordinal < 0 {
		return fmt.Errorf("%w: negative ordinal %d", ErrInvalidTree, t.Ordinal)
	}
	return nil
}

// ColumnType is the value type a required import column must parse as.
type ColumnType string

const (
	ColumnString ColumnType = "str"
	ColumnU32    ColumnType = "u32"
)

// RequiredColumn describes a column an import must provide.
type RequiredColumn struct {
	Name     string     `json:"name" toml:"name" mapstructure:"name"`
	Type     ColumnType `json:"type" toml:"type" mapstructure:"type"`
	Synonyms []string   `json:"synonyms,omitempty" toml:"synonyms,omitempty" mapstructure:"synonyms"`
}

// DefaultRequiredColumns returns the columns a BOM import needs.
func DefaultRequiredColumns() []RequiredColumn {
	return []RequiredColumn{
		{Name: "key", Type: ColumnString, Synonyms: []string{"parameter", "parameter_name"}},
		{Name: "value", Type: ColumnU32},
	}
}

// ImportSession is the runtime handle of an importer tab.
type ImportSession struct {
	ID        string
	Columns   []RequiredColumn
	StartedAt time.Time
}

// NewImportSession creates a session with a copy of columns.
func NewImportSession(id string, columns []RequiredColumn) *ImportSession {
	cols := make([]RequiredColumn, len(columns))
	copy(cols, columns)
	return &ImportSession{
		ID:        id,
		Columns:   cols,
		StartedAt: time.Now(),
	}
}
