package layout

import (
	"slices"

	"github.com/bnema/dockyard/internal/domain/entity"
)

// AddToTabs docks panelID into an existing container, creating one when the
// tree is empty. Inside a split the panel goes to the second child, so new
// panels land in the secondary pane. A panel already docked anywhere leaves
// the tree unchanged.
func (e *Engine) AddToTabs(node entity.LayoutNode, panelID string) entity.LayoutNode {
	if ContainsPanel(node, panelID) {
		return node
	}
	return e.addToTabs(node, panelID)
}

func (e *Engine) addToTabs(node entity.LayoutNode, panelID string) entity.LayoutNode {
	switch n := node.(type) {
	case *entity.TabsNode:
		return appendTab(n, panelID)
	case *entity.SplitNode:
		slot := min(1, len(n.Children)-1)
		if slot < 0 {
			return e.MakeTabs(panelID)
		}
		children := slices.Clone(n.Children)
		children[slot] = e.addToTabs(children[slot], panelID)
		return &entity.SplitNode{
			ID:        n.ID,
			Direction: n.Direction,
			Children:  children,
			Sizes:     n.Sizes,
		}
	}
	return e.MakeTabs(panelID)
}

func appendTab(n *entity.TabsNode, panelID string) *entity.TabsNode {
	if n.Has(panelID) {
		return n
	}
	tabs := make([]string, len(n.Tabs), len(n.Tabs)+1)
	copy(tabs, n.Tabs)
	return &entity.TabsNode{
		ID:          n.ID,
		Tabs:        append(tabs, panelID),
		ActiveTabID: panelID,
	}
}

// InsertIntoTabs appends panelID to the container with the given id and makes
// it active. A panel docked in another container is moved. The tree is
// unchanged when the container is unknown or already holds the panel.
func InsertIntoTabs(node entity.LayoutNode, tabsID, panelID string) entity.LayoutNode {
	target := FindTabsNode(node, tabsID)
	if target == nil || target.Has(panelID) {
		return node
	}
	return insertTab(RemovePanel(node, panelID), tabsID, panelID)
}

func insertTab(node entity.LayoutNode, tabsID, panelID string) entity.LayoutNode {
	return updateTabs(node, tabsID, func(t *entity.TabsNode) *entity.TabsNode {
		return appendTab(t, panelID)
	})
}

// MovePanel moves sourceID into the container with the given id.
//
// An unknown container leaves the tree unchanged. When the container only
// held the source panel it disappears with the removal; the panel then stays
// where it was, or gets a fresh container when nothing else is docked. This
// keeps the panel docked rather than dropping it from the tree.
func (e *Engine) MovePanel(node entity.LayoutNode, sourceID, tabsID string) entity.LayoutNode {
	if FindTabsNode(node, tabsID) == nil {
		return node
	}
	cleaned := RemovePanel(node, sourceID)
	if FindTabsNode(cleaned, tabsID) == nil {
		if cleaned == nil {
			return e.MakeTabs(sourceID)
		}
		return node
	}
	return insertTab(cleaned, tabsID, sourceID)
}

// SetActiveTab selects panelID in the container with the given id. Unknown
// containers and panels that are not tabs of it leave the tree unchanged.
func SetActiveTab(node entity.LayoutNode, tabsID, panelID string) entity.LayoutNode {
	return updateTabs(node, tabsID, func(t *entity.TabsNode) *entity.TabsNode {
		if !t.Has(panelID) || t.ActiveTabID == panelID {
			return t
		}
		return &entity.TabsNode{ID: t.ID, Tabs: t.Tabs, ActiveTabID: panelID}
	})
}

// ReplaceTab swaps oldID for newID in the container holding oldID. The new
// panel is appended last and made active; if it was docked elsewhere it is
// moved. Unknown oldID leaves the tree unchanged.
func ReplaceTab(node entity.LayoutNode, oldID, newID string) entity.LayoutNode {
	holder := FindPanel(node, oldID)
	if holder == nil || oldID == newID {
		return node
	}
	if !holder.Has(newID) {
		node = RemovePanel(node, newID)
	}
	return updateTabs(node, holder.ID, func(t *entity.TabsNode) *entity.TabsNode {
		tabs := slices.DeleteFunc(slices.Clone(t.Tabs), func(id string) bool {
			return id == oldID
		})
		if !slices.Contains(tabs, newID) {
			tabs = append(tabs, newID)
		}
		return &entity.TabsNode{ID: t.ID, Tabs: tabs, ActiveTabID: newID}
	})
}
