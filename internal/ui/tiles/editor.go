package tiles

import (
	"fmt"

	"github.com/bnema/bomtool/internal/application/port"
	"github.com/bnema/bomtool/internal/domain/entity"
)

// EditTree draws a collapsible outline of tree. Containers get a layout
// selector.
func EditTree(s port.Surface, tree *entity.Tree, b *Behavior) {
	root, ok := tree.Root()
	if !ok {
		s.Weak("(empty)")
		return
	}
	editTile(s, tree, b, root)
}

// TileLabel formats the outline entry of id.
func TileLabel(tree *entity.Tree, b *Behavior, id entity.TileID) string {
	return fmt.Sprintf("%s - %s", b.TabTitleForTile(tree, id), id)
}

func editTile(s port.Surface, tree *entity.Tree, b *Behavior, id entity.TileID) {
	tile, ok := tree.Get(id)
	if !ok {
		return
	}
	if tile.IsPane() {
		s.Label(TileLabel(tree, b, id))
		return
	}

	s.Collapsing(fmt.Sprintf("tree-edit-%d", id), TileLabel(tree, b, id), true, func(inner port.Surface) {
		inner.Horizontal(func(row port.Surface) {
			for _, kind := range entity.ContainerKinds() {
				if row.SelectableLabel(tile.Container.Kind == kind, kind.String()) {
					_ = tree.SetContainerKind(id, kind)
				}
			}
		})
		for _, child := range tile.Container.Children {
			editTile(inner, tree, b, child)
		}
	})
}
