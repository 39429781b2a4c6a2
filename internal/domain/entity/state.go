package entity

import (
	"errors"
	"fmt"
	"time"
)

// AppStateVersion is the current schema version of the persisted state.
// Snapshots with any other version are discarded in favor of the default.
const AppStateVersion = 1

// AppStateKey is the storage key of the persisted state record.
const AppStateKey = "app"

// DefaultTreeID names the workspace tree.
const DefaultTreeID = "workspace"

// ErrVersionMismatch is returned when a snapshot has an unsupported version.
var ErrVersionMismatch = errors.New("state version mismatch")

// AppState is everything the workspace persists between runs.
type AppState struct {
	Tree              *Tree
	SidePanelExpanded bool
	Windows           *WindowRegistry
	NextOrdinal       int
}

// DefaultAppState builds the canonical starting workspace: two importer
// tabs and one placeholder tab grouped under a single tab container root.
func DefaultAppState() *AppState {
	state := &AppState{
		Tree:              NewTree(DefaultTreeID),
		SidePanelExpanded: true,
		Windows:           DefaultWindowRegistry(),
	}

	panes := []TileID{
		state.Tree.InsertPane(state.NewTab(TabKindImporter)),
		state.Tree.InsertPane(state.NewTab(TabKindImporter)),
		state.Tree.InsertPane(state.NewTab(TabKindPlaceholder)),
	}
	root := state.Tree.InsertTabContainer(panes)
	if err := state.Tree.SetRoot(root); err != nil {
		panic(err)
	}
	return state
}

// NewTab builds a tab of kind with the next ordinal.
func (s *AppState) NewTab(kind TabKind) Tab {
	tab := NewTabFromKind(kind, s.NextOrdinal)
	s.NextOrdinal++
	return tab
}

// NewUntaggedImporter builds a closeable importer tab with the next ordinal.
func (s *AppState) NewUntaggedImporter() Tab {
	tab := NewUntaggedImporter(s.NextOrdinal)
	s.NextOrdinal++
	return tab
}

// AppStateSnapshot is the persisted shape of AppState.
type AppStateSnapshot struct {
	Version           int           `json:"version"`
	Tree              TreeSnapshot  `json:"tree"`
	SidePanelExpanded bool          `json:"side_panel_expanded"`
	Windows           []WindowEntry `json:"windows"`
	NextOrdinal       int           `json:"next_ordinal"`
	SavedAt           time.Time     `json:"saved_at"`
}

// TreeSnapshot captures a tile tree.
type TreeSnapshot struct {
	ID     string         `json:"id"`
	Root   *TileID        `json:"root,omitempty"`
	NextID TileID         `json:"next_id"`
	Tiles  []TileSnapshot `json:"tiles"`
}

// TileSnapshot captures one tile.
type TileSnapshot struct {
	ID        TileID             `json:"id"`
	Pane      *Tab               `json:"pane,omitempty"`
	Container *ContainerSnapshot `json:"container,omitempty"`
}

// ContainerSnapshot captures a container tile.
type ContainerSnapshot struct {
	Kind     ContainerKind `json:"kind"`
	Children []TileID      `json:"children"`
	Active   TileID        `json:"active"`
}

// SnapshotFromAppState captures state for persistence.
func SnapshotFromAppState(state *AppState) *AppStateSnapshot {
	if state == nil {
		state = DefaultAppState()
	}
	return &AppStateSnapshot{
		Version:           AppStateVersion,
		Tree:              SnapshotTree(state.Tree),
		SidePanelExpanded: state.SidePanelExpanded,
		Windows:           state.Windows.Snapshot(),
		NextOrdinal:       state.NextOrdinal,
		SavedAt:           time.Now(),
	}
}

// SnapshotTree captures every tile of tree, ordered by id.
func SnapshotTree(tree *Tree) TreeSnapshot {
	snap := TreeSnapshot{ID: tree.ID, NextID: tree.nextID}
	if root, ok := tree.Root(); ok {
		snap.Root = &root
	}

	for id := TileID(1); id < tree.nextID; id++ {
		tile, ok := tree.tiles[id]
		if !ok {
			continue
		}
		ts := TileSnapshot{ID: id}
		if tile.Pane != nil {
			pane := copyTab(*tile.Pane)
			ts.Pane = &pane
		}
		if tile.Container != nil {
			ts.Container = &ContainerSnapshot{
				Kind:     tile.Container.Kind,
				Children: append([]TileID(nil), tile.Container.Children...),
				Active:   tile.Container.Active,
			}
		}
		snap.Tiles = append(snap.Tiles, ts)
	}
	return snap
}

// TreeFromSnapshot rebuilds a tree and validates its invariants.
func TreeFromSnapshot(snap TreeSnapshot) (*Tree, error) {
	if snap.NextID == maxTileID {
		return nil, fmt.Errorf("%w: tile id counter exhausted", ErrInvalidTree)
	}
	tree := NewTree(snap.ID)
	tree.nextID = snap.NextID
	if tree.nextID == 0 {
		tree.nextID = 1
	}

	for _, ts := range snap.Tiles {
		if ts.ID == 0 {
			return nil, fmt.Errorf("%w: tile id 0 is reserved", ErrInvalidTree)
		}
		if _, dup := tree.tiles[ts.ID]; dup {
			return nil, fmt.Errorf("%w: duplicate %s", ErrInvalidTree, ts.ID)
		}
		tile := &Tile{}
		if ts.Pane != nil {
			pane := copyTab(*ts.Pane)
			tile.Pane = &pane
		}
		if ts.Container != nil {
			tile.Container = &Container{
				Kind:     ts.Container.Kind,
				Children: append([]TileID(nil), ts.Container.Children...),
				Active:   ts.Container.Active,
			}
		}
		tree.tiles[ts.ID] = tile
	}

	if snap.Root != nil {
		tree.root = *snap.Root
		tree.hasRoot = true
	}

	if err := tree.Validate(); err != nil {
		return nil, err
	}
	return tree, nil
}

// AppStateFromSnapshot rebuilds AppState from its persisted shape.
// windowsReset reports that the window registry did not match the declared
// window kinds and was replaced by the default.
func AppStateFromSnapshot(snap *AppStateSnapshot) (state *AppState, windowsReset bool, err error) {
	if snap == nil {
		return nil, false, errors.New("snapshot is nil")
	}
	if snap.Version != AppStateVersion {
		return nil, false, fmt.Errorf("%w: got %d, want %d", ErrVersionMismatch, snap.Version, AppStateVersion)
	}

	tree, err := TreeFromSnapshot(snap.Tree)
	if err != nil {
		return nil, false, fmt.Errorf("restore tree: %w", err)
	}

	windows, reset := RestoreWindowRegistry(snap.Windows)

	next := snap.NextOrdinal
	for _, id := range tree.Panes() {
		tile, _ := tree.Get(id)
		if tile.Pane.Ordinal >= next {
			next = tile.Pane.Ordinal + 1
		}
	}

	return &AppState{
		Tree:              tree,
		SidePanelExpanded: snap.SidePanelExpanded,
		Windows:           windows,
		NextOrdinal:       next,
	}, reset, nil
}

// copyTab deep-copies the persisted fields of a tab. Runtime handles are
// not carried over.
func copyTab(tab Tab) Tab {
	out := Tab{Kind: tab.Kind, Ordinal: tab.Ordinal}
	if tab.Importer != nil {
		imp := &ImporterTab{}
		if tab.Importer.Tag != nil {
			tag := *tab.Importer.Tag
			imp.Tag = &tag
		}
		out.Importer = imp
	}
	if tab.Placeholder != nil {
		p := *tab.Placeholder
		out.Placeholder = &p
	}
	return out
}
