package entity

import (
	"errors"
	"fmt"
	"math"
	"sort"
	"strings"
)

// TileID uniquely identifies a tile within a tree.
// IDs come from a per-tree counter and are never handed out twice.
type TileID uint64

// maxTileID is never allocated; a counter at this value is exhausted.
const maxTileID = TileID(math.MaxUint64)

// String implements fmt.Stringer.
func (id TileID) String() string {
	return fmt.Sprintf("TileID(%d)", uint64(id))
}

// ContainerKind selects how a container lays out its children.
type ContainerKind int

const (
	ContainerTabs       ContainerKind = iota // One visible child, selected through a tab bar
	ContainerHorizontal                      // Children side by side
	ContainerVertical                        // Children stacked top to bottom
)

// ContainerKinds lists every container kind in display order.
func ContainerKinds() []ContainerKind {
	return []ContainerKind{ContainerTabs, ContainerHorizontal, ContainerVertical}
}

// String implements fmt.Stringer.
func (k ContainerKind) String() string {
	switch k {
	case ContainerTabs:
		return "Tabs"
	case ContainerHorizontal:
		return "Horizontal"
	case ContainerVertical:
		return "Vertical"
	}
	return fmt.Sprintf("ContainerKind(%d)", int(k))
}

// Container groups an ordered list of child tiles.
type Container struct {
	Kind     ContainerKind
	Children []TileID
	Active   TileID // Visible child for tab containers
}

// Tile is either a pane holding a tab or a container holding tiles.
// Exactly one of Pane and Container is non-nil.
type Tile struct {
	Pane      *Tab
	Container *Container
}

// IsPane returns true if the tile wraps tab content.
func (t *Tile) IsPane() bool {
	return t != nil && t.Pane != nil
}

// IsContainer returns true if the tile groups other tiles.
func (t *Tile) IsContainer() bool {
	return t != nil && t.Container != nil
}

var (
	// ErrTileNotFound is returned when an operation references an unknown tile.
	ErrTileNotFound = errors.New("tile not found")
	// ErrNotContainer is returned when a container operation targets a pane.
	ErrNotContainer = errors.New("tile is not a container")
	// ErrAlreadyAttached is returned when a tile already has a place in the tree.
	ErrAlreadyAttached = errors.New("tile already attached")
	// ErrInvalidTree is returned by Validate for structural violations.
	ErrInvalidTree = errors.New("invalid tile tree")
)

// Tree is a rooted tree of tiles addressed by TileID.
type Tree struct {
	ID      string
	tiles   map[TileID]*Tile
	root    TileID
	hasRoot bool
	nextID  TileID
}

// NewTree creates an empty tree.
func NewTree(id string) *Tree {
	return &Tree{
		ID:     id,
		tiles:  make(map[TileID]*Tile),
		nextID: 1,
	}
}

func (t *Tree) allocate(tile *Tile) TileID {
	if t.nextID == maxTileID {
		panic("entity.Tree: tile id space exhausted")
	}
	id := t.nextID
	t.nextID++
	t.tiles[id] = tile
	return id
}

// InsertPane allocates a new pane wrapping tab and returns its id.
// The pane is detached until it is added to a container or made root.
func (t *Tree) InsertPane(tab Tab) TileID {
	return t.allocate(&Tile{Pane: &tab})
}

// InsertTabContainer creates a tab container over children.
// It panics if any child is not in the tree, already has a parent, or is
// listed twice.
func (t *Tree) InsertTabContainer(children []TileID) TileID {
	return t.InsertContainer(ContainerTabs, children)
}

// InsertContainer creates a container of the given kind over children.
// It panics if any child is not in the tree, already has a parent, or is
// listed twice.
func (t *Tree) InsertContainer(kind ContainerKind, children []TileID) TileID {
	seen := make(map[TileID]bool, len(children))
	for _, child := range children {
		if _, ok := t.tiles[child]; !ok {
			panic(fmt.Sprintf("entity.Tree.InsertContainer: child %s is not in the tree", child))
		}
		if seen[child] {
			panic(fmt.Sprintf("entity.Tree.InsertContainer: child %s listed twice", child))
		}
		seen[child] = true
		if parent, ok := t.Parent(child); ok {
			panic(fmt.Sprintf("entity.Tree.InsertContainer: child %s already belongs to %s", child, parent))
		}
	}
	container := &Container{
		Kind:     kind,
		Children: append([]TileID(nil), children...),
	}
	if len(children) > 0 {
		container.Active = children[0]
	}
	return t.allocate(&Tile{Container: container})
}

// SetRoot designates id as the root tile.
func (t *Tree) SetRoot(id TileID) error {
	if _, ok := t.tiles[id]; !ok {
		return fmt.Errorf("set root %s: %w", id, ErrTileNotFound)
	}
	t.root = id
	t.hasRoot = true
	return nil
}

// Root returns the root tile id, or false if the tree is empty.
func (t *Tree) Root() (TileID, bool) {
	if t == nil || !t.hasRoot {
		return 0, false
	}
	return t.root, true
}

// Get returns the tile for id.
func (t *Tree) Get(id TileID) (*Tile, bool) {
	tile, ok := t.tiles[id]
	return tile, ok
}

// Len returns the number of tiles, attached or not.
func (t *Tree) Len() int {
	return len(t.tiles)
}

// NextID returns the id the next inserted tile will receive.
func (t *Tree) NextID() TileID {
	return t.nextID
}

// Children returns the children of a container, or nil for panes.
func (t *Tree) Children(id TileID) []TileID {
	tile, ok := t.tiles[id]
	if !ok || tile.Container == nil {
		return nil
	}
	return tile.Container.Children
}

// Parent returns the container holding id.
func (t *Tree) Parent(id TileID) (TileID, bool) {
	for parentID, tile := range t.tiles {
		if tile.Container == nil {
			continue
		}
		for _, child := range tile.Container.Children {
			if child == id {
				return parentID, true
			}
		}
	}
	return 0, false
}

// Walk visits the tiles reachable from the root depth-first.
// Returning false from fn skips the tile's children.
func (t *Tree) Walk(fn func(id TileID, tile *Tile) bool) {
	root, ok := t.Root()
	if !ok {
		return
	}
	t.walk(root, fn)
}

func (t *Tree) walk(id TileID, fn func(TileID, *Tile) bool) {
	tile, ok := t.tiles[id]
	if !ok {
		return
	}
	if !fn(id, tile) {
		return
	}
	if tile.Container != nil {
		for _, child := range tile.Container.Children {
			t.walk(child, fn)
		}
	}
}

// PaneCount returns the number of panes reachable from the root.
func (t *Tree) PaneCount() int {
	count := 0
	t.Walk(func(_ TileID, tile *Tile) bool {
		if tile.IsPane() {
			count++
		}
		return true
	})
	return count
}

// Panes returns the reachable pane ids in depth-first order.
func (t *Tree) Panes() []TileID {
	var ids []TileID
	t.Walk(func(id TileID, tile *Tile) bool {
		if tile.IsPane() {
			ids = append(ids, id)
		}
		return true
	})
	return ids
}

// ActiveTiles returns every tile on the visible path from the root.
// Tab containers contribute only their active child; linear containers
// contribute all children.
func (t *Tree) ActiveTiles() []TileID {
	root, ok := t.Root()
	if !ok {
		return nil
	}
	var active []TileID
	t.collectActive(root, &active)
	return active
}

func (t *Tree) collectActive(id TileID, out *[]TileID) {
	tile, ok := t.tiles[id]
	if !ok {
		return
	}
	*out = append(*out, id)
	if tile.Container == nil {
		return
	}
	if tile.Container.Kind == ContainerTabs {
		t.collectActive(tile.Container.Active, out)
		return
	}
	for _, child := range tile.Container.Children {
		t.collectActive(child, out)
	}
}

// AddChild appends child to the parent container.
func (t *Tree) AddChild(parent, child TileID) error {
	tile, ok := t.tiles[parent]
	if !ok {
		return fmt.Errorf("add child to %s: %w", parent, ErrTileNotFound)
	}
	if tile.Container == nil {
		return fmt.Errorf("add child to %s: %w", parent, ErrNotContainer)
	}
	if _, ok := t.tiles[child]; !ok {
		return fmt.Errorf("add child %s: %w", child, ErrTileNotFound)
	}
	if _, attached := t.Parent(child); attached || child == parent || (t.hasRoot && t.root == child) {
		return fmt.Errorf("add child %s to %s: %w", child, parent, ErrAlreadyAttached)
	}
	tile.Container.Children = append(tile.Container.Children, child)
	if len(tile.Container.Children) == 1 {
		tile.Container.Active = child
	}
	return nil
}

// SetActive selects the visible child of a container.
func (t *Tree) SetActive(container, child TileID) error {
	tile, ok := t.tiles[container]
	if !ok {
		return fmt.Errorf("set active on %s: %w", container, ErrTileNotFound)
	}
	if tile.Container == nil {
		return fmt.Errorf("set active on %s: %w", container, ErrNotContainer)
	}
	for _, c := range tile.Container.Children {
		if c == child {
			tile.Container.Active = child
			return nil
		}
	}
	return fmt.Errorf("set active %s on %s: %w", child, container, ErrTileNotFound)
}

// SetContainerKind changes the layout of a container.
func (t *Tree) SetContainerKind(id TileID, kind ContainerKind) error {
	tile, ok := t.tiles[id]
	if !ok {
		return fmt.Errorf("set kind on %s: %w", id, ErrTileNotFound)
	}
	if tile.Container == nil {
		return fmt.Errorf("set kind on %s: %w", id, ErrNotContainer)
	}
	tile.Container.Kind = kind
	return nil
}

// Remove deletes id and its subtree and returns the removed tabs.
// A container left without children is removed as well; removing the
// last tile under the root leaves the tree empty.
func (t *Tree) Remove(id TileID) ([]Tab, error) {
	if _, ok := t.tiles[id]; !ok {
		return nil, fmt.Errorf("remove %s: %w", id, ErrTileNotFound)
	}

	parent, hasParent := t.Parent(id)
	removed := t.removeSubtree(id)

	if !hasParent {
		if t.hasRoot && t.root == id {
			t.hasRoot = false
			t.root = 0
		}
		return removed, nil
	}

	container := t.tiles[parent].Container
	idx := indexOf(container.Children, id)
	container.Children = append(container.Children[:idx], container.Children[idx+1:]...)

	if len(container.Children) == 0 {
		more, err := t.Remove(parent)
		if err != nil {
			return removed, err
		}
		return append(removed, more...), nil
	}

	if container.Active == id {
		if idx >= len(container.Children) {
			idx = len(container.Children) - 1
		}
		container.Active = container.Children[idx]
	}

	return removed, nil
}

func (t *Tree) removeSubtree(id TileID) []Tab {
	tile, ok := t.tiles[id]
	if !ok {
		return nil
	}
	delete(t.tiles, id)

	if tile.Pane != nil {
		return []Tab{*tile.Pane}
	}
	var removed []Tab
	for _, child := range tile.Container.Children {
		removed = append(removed, t.removeSubtree(child)...)
	}
	return removed
}

func indexOf(ids []TileID, id TileID) int {
	for i, candidate := range ids {
		if candidate == id {
			return i
		}
	}
	return -1
}

// Validate checks the structural invariants: the root exists, every tile is
// reachable exactly once, containers are nonempty and tab containers point
// at one of their children. Detached tiles are reported as errors.
func (t *Tree) Validate() error {
	if !t.hasRoot {
		if len(t.tiles) > 0 {
			return fmt.Errorf("%w: %d tiles without a root", ErrInvalidTree, len(t.tiles))
		}
		return nil
	}
	if _, ok := t.tiles[t.root]; !ok {
		return fmt.Errorf("%w: root %s missing", ErrInvalidTree, t.root)
	}

	seen := make(map[TileID]bool, len(t.tiles))
	var visit func(id TileID) error
	visit = func(id TileID) error {
		if seen[id] {
			return fmt.Errorf("%w: %s has more than one parent or forms a cycle", ErrInvalidTree, id)
		}
		tile, ok := t.tiles[id]
		if !ok {
			return fmt.Errorf("%w: %s referenced but missing", ErrInvalidTree, id)
		}
		seen[id] = true
		if id >= t.nextID {
			return fmt.Errorf("%w: %s is not below next id %d", ErrInvalidTree, id, t.nextID)
		}
		switch {
		case tile.Pane != nil && tile.Container != nil:
			return fmt.Errorf("%w: %s is both pane and container", ErrInvalidTree, id)
		case tile.Pane != nil:
			return tile.Pane.validate()
		case tile.Container != nil:
			if len(tile.Container.Children) == 0 {
				return fmt.Errorf("%w: container %s has no children", ErrInvalidTree, id)
			}
			if tile.Container.Kind == ContainerTabs && indexOf(tile.Container.Children, tile.Container.Active) < 0 {
				return fmt.Errorf("%w: container %s active child %s is not a child", ErrInvalidTree, id, tile.Container.Active)
			}
			for _, child := range tile.Container.Children {
				if err := visit(child); err != nil {
					return err
				}
			}
			return nil
		default:
			return fmt.Errorf("%w: %s is empty", ErrInvalidTree, id)
		}
	}
	if err := visit(t.root); err != nil {
		return err
	}

	if len(seen) != len(t.tiles) {
		return fmt.Errorf("%w: %d detached tiles", ErrInvalidTree, len(t.tiles)-len(seen))
	}
	return nil
}

// DebugString renders the tree as an indented outline.
func (t *Tree) DebugString() string {
	var b strings.Builder
	fmt.Fprintf(&b, "Tree %q (next id %d)\n", t.ID, t.nextID)
	root, ok := t.Root()
	if !ok {
		b.WriteString("  <empty>\n")
		return b.String()
	}
	t.debugNode(&b, root, 1)

	reachable := make(map[TileID]bool, len(t.tiles))
	t.Walk(func(id TileID, _ *Tile) bool {
		reachable[id] = true
		return true
	})
	var detached []TileID
	for id := range t.tiles {
		if !reachable[id] {
			detached = append(detached, id)
		}
	}
	if len(detached) > 0 {
		sort.Slice(detached, func(i, j int) bool { return detached[i] < detached[j] })
		fmt.Fprintf(&b, "  detached: %v\n", detached)
	}
	return b.String()
}

func (t *Tree) debugNode(b *strings.Builder, id TileID, depth int) {
	indent := strings.Repeat("  ", depth)
	tile, ok := t.tiles[id]
	if !ok {
		fmt.Fprintf(b, "%s%s <missing>\n", indent, id)
		return
	}
	if tile.Pane != nil {
		fmt.Fprintf(b, "%s%s Pane %s ordinal=%d %q\n", indent, id, tile.Pane.Kind, tile.Pane.Ordinal, tile.Pane.Title())
		return
	}
	fmt.Fprintf(b, "%s%s %s active=%s\n", indent, id, tile.Container.Kind, tile.Container.Active)
	for _, child := range tile.Container.Children {
		t.debugNode(b, child, depth+1)
	}
}
