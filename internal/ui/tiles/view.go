package tiles

import (
	"fmt"

	"github.com/bnema/bomtool/internal/application/port"
	"github.com/bnema/bomtool/internal/domain/entity"
)

// Render draws tree from its root. Tabs closed from a tab bar are removed
// once the traversal is over; the removed tabs are returned.
func Render(tree *entity.Tree, b *Behavior, s port.Surface) ([]entity.Tab, error) {
	root, ok := tree.Root()
	if !ok {
		s.Weak("The workspace is empty. Use Help > Reset mem to restore it.")
		return nil, nil
	}

	var closes []entity.TileID
	renderTile(tree, b, s, root, &closes)

	var removed []entity.Tab
	for _, id := range closes {
		tabs, err := tree.Remove(id)
		if err != nil {
			return removed, fmt.Errorf("close %s: %w", id, err)
		}
		removed = append(removed, tabs...)
	}
	return removed, nil
}

func renderTile(tree *entity.Tree, b *Behavior, s port.Surface, id entity.TileID, closes *[]entity.TileID) {
	tile, ok := tree.Get(id)
	if !ok {
		s.Error(fmt.Sprintf("%s is missing", id))
		return
	}
	if tile.IsPane() {
		b.PaneUI(s, id, tile.Pane)
		return
	}

	c := tile.Container
	switch c.Kind {
	case entity.ContainerTabs:
		s.Horizontal(func(bar port.Surface) {
			for _, child := range c.Children {
				if bar.SelectableLabel(child == c.Active, b.TabTitleForTile(tree, child)) {
					_ = tree.SetActive(id, child)
				}
				if b.ShowCloseButtons && b.IsTabCloseable(tree, child) && bar.Button("x") {
					*closes = append(*closes, child)
				}
			}
			if b.ShowAddButtons {
				b.TopBarRight(bar, tree, id)
			}
		})
		s.Separator()
		if _, ok := tree.Get(c.Active); ok {
			renderTile(tree, b, s, c.Active, closes)
		}
	case entity.ContainerHorizontal:
		children := c.Children
		s.Columns(len(children), func(i int, col port.Surface) {
			renderTile(tree, b, col, children[i], closes)
		})
	case entity.ContainerVertical:
		for i, child := range c.Children {
			if i > 0 {
				s.Separator()
			}
			renderTile(tree, b, s, child, closes)
		}
	}
}
