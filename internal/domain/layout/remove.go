package layout

import (
	"slices"

	"github.com/bnema/dockyard/internal/domain/entity"
)

// RemovePanel takes panelID out of whichever container holds it.
//
// A container left empty is pruned. When the active tab goes, the first
// remaining tab becomes active. Splits drop pruned children and rescale the
// survivors' shares to sum to 1; a split left with one child collapses into
// it and one left with none is pruned too. The result is nil when the tree
// held nothing else.
func RemovePanel(node entity.LayoutNode, panelID string) entity.LayoutNode {
	switch n := node.(type) {
	case *entity.TabsNode:
		return removeTab(n, panelID)
	case *entity.SplitNode:
		return removeFromSplit(n, panelID)
	}
	return node
}

func removeTab(n *entity.TabsNode, panelID string) entity.LayoutNode {
	idx := slices.Index(n.Tabs, panelID)
	if idx < 0 {
		return n
	}
	remaining := slices.Delete(slices.Clone(n.Tabs), idx, idx+1)
	if len(remaining) == 0 {
		return nil
	}

	active := n.ActiveTabID
	if !slices.Contains(remaining, active) {
		active = remaining[0]
	}
	return &entity.TabsNode{ID: n.ID, Tabs: remaining, ActiveTabID: active}
}

func removeFromSplit(n *entity.SplitNode, panelID string) entity.LayoutNode {
	children := make([]entity.LayoutNode, 0, len(n.Children))
	sizes := make([]float64, 0, len(n.Children))
	changed := false

	for i, child := range n.Children {
		next := RemovePanel(child, panelID)
		if next != child {
			changed = true
		}
		if next == nil {
			continue
		}
		children = append(children, next)
		sizes = append(sizes, shareAt(n.Sizes, i))
	}

	if !changed {
		return n
	}
	switch len(children) {
	case 0:
		return nil
	case 1:
		return children[0]
	}
	return &entity.SplitNode{
		ID:        n.ID,
		Direction: n.Direction,
		Children:  children,
		Sizes:     normalizeSizes(sizes),
	}
}

// shareAt tolerates malformed trees whose sizes are shorter than children.
func shareAt(sizes []float64, i int) float64 {
	if i < len(sizes) {
		return sizes[i]
	}
	return 0
}
