package layout

import (
	"slices"

	"github.com/bnema/dockyard/internal/domain/entity"
)

// Walk visits node and its descendants depth-first, children in order.
// Returning false from fn skips the node's children.
func Walk(node entity.LayoutNode, fn func(n entity.LayoutNode, depth int) bool) {
	walk(node, 0, fn)
}

func walk(node entity.LayoutNode, depth int, fn func(entity.LayoutNode, int) bool) {
	if node == nil || !fn(node, depth) {
		return
	}
	if split, ok := node.(*entity.SplitNode); ok {
		for _, child := range split.Children {
			walk(child, depth+1, fn)
		}
	}
}

// ContainsPanel reports whether panelID is docked anywhere in the tree.
func ContainsPanel(node entity.LayoutNode, panelID string) bool {
	return FindPanel(node, panelID) != nil
}

// FindPanel returns the tabs container holding panelID, or nil.
func FindPanel(node entity.LayoutNode, panelID string) *entity.TabsNode {
	switch n := node.(type) {
	case *entity.TabsNode:
		if n.Has(panelID) {
			return n
		}
	case *entity.SplitNode:
		for _, child := range n.Children {
			if found := FindPanel(child, panelID); found != nil {
				return found
			}
		}
	}
	return nil
}

// FindTabsNode returns the first tabs container with the given id in
// depth-first order, or nil.
func FindTabsNode(node entity.LayoutNode, tabsID string) *entity.TabsNode {
	var found *entity.TabsNode
	Walk(node, func(n entity.LayoutNode, _ int) bool {
		if found != nil {
			return false
		}
		if tabs, ok := n.(*entity.TabsNode); ok && tabs.ID == tabsID {
			found = tabs
		}
		return found == nil
	})
	return found
}

// FindSplitNode returns the split with the given id, or nil.
func FindSplitNode(node entity.LayoutNode, splitID string) *entity.SplitNode {
	var found *entity.SplitNode
	Walk(node, func(n entity.LayoutNode, _ int) bool {
		if found != nil {
			return false
		}
		if split, ok := n.(*entity.SplitNode); ok && split.ID == splitID {
			found = split
		}
		return found == nil
	})
	return found
}

// Parent returns the split directly containing the node with the given id,
// or nil for the root and unknown ids.
func Parent(node entity.LayoutNode, id string) *entity.SplitNode {
	split, ok := node.(*entity.SplitNode)
	if !ok {
		return nil
	}
	for _, child := range split.Children {
		if child.NodeID() == id {
			return split
		}
		if found := Parent(child, id); found != nil {
			return found
		}
	}
	return nil
}

// Panels returns every docked panel in visual order.
func Panels(node entity.LayoutNode) []string {
	var panels []string
	Walk(node, func(n entity.LayoutNode, _ int) bool {
		if tabs, ok := n.(*entity.TabsNode); ok {
			panels = append(panels, tabs.Tabs...)
		}
		return true
	})
	return panels
}

// Depth returns the number of levels in the tree, 0 for the empty layout.
func Depth(node entity.LayoutNode) int {
	depth := 0
	Walk(node, func(_ entity.LayoutNode, d int) bool {
		depth = max(depth, d+1)
		return true
	})
	return depth
}

// rewrite substitutes the first node whose id matches with fn's result.
// Only splits on the path to that node are copied; every other subtree keeps
// its pointer. When fn returns its argument the original root comes back.
func rewrite(node entity.LayoutNode, id string, fn func(entity.LayoutNode) entity.LayoutNode) entity.LayoutNode {
	if node == nil {
		return nil
	}
	if node.NodeID() == id {
		return fn(node)
	}
	split, ok := node.(*entity.SplitNode)
	if !ok {
		return node
	}
	for i, child := range split.Children {
		next := rewrite(child, id, fn)
		if next == child {
			continue
		}
		children := slices.Clone(split.Children)
		children[i] = next
		return &entity.SplitNode{
			ID:        split.ID,
			Direction: split.Direction,
			Children:  children,
			Sizes:     split.Sizes,
		}
	}
	return node
}

// replaceTabsNode swaps the tabs container with the given id for replacement.
func replaceTabsNode(node entity.LayoutNode, tabsID string, replacement entity.LayoutNode) entity.LayoutNode {
	return rewrite(node, tabsID, func(n entity.LayoutNode) entity.LayoutNode {
		if _, ok := n.(*entity.TabsNode); !ok {
			return n
		}
		return replacement
	})
}

// updateTabs applies fn to the tabs container with the given id.
func updateTabs(node entity.LayoutNode, tabsID string, fn func(*entity.TabsNode) *entity.TabsNode) entity.LayoutNode {
	return rewrite(node, tabsID, func(n entity.LayoutNode) entity.LayoutNode {
		tabs, ok := n.(*entity.TabsNode)
		if !ok {
			return n
		}
		return fn(tabs)
	})
}
