package layout

import (
	"github.com/bnema/dockyard/internal/domain/entity"
)

// DockAtRoot places panelID against an edge of the whole layout, or into
// the secondary tabs for the center zone.
//
// Edge docks wrap the current root and a new container in a split along the
// zone's axis, the new pane taking 35%. When the root already splits along
// that axis the new pane joins it at the matching end instead of nesting:
// existing shares are scaled by 0.65 and the set is renormalized.
// A panel already docked is moved. Invalid zones leave the tree unchanged.
func (e *Engine) DockAtRoot(node entity.LayoutNode, panelID string, zone entity.DockZone) entity.LayoutNode {
	if !zone.Valid() {
		return node
	}
	node = RemovePanel(node, panelID)

	if zone == entity.ZoneCenter {
		return e.addToTabs(node, panelID)
	}
	if node == nil {
		return e.MakeTabs(panelID)
	}

	pane := e.MakeTabs(panelID)
	dir := zone.Axis()

	if split, ok := node.(*entity.SplitNode); ok && split.Direction == dir {
		return mergeIntoSplit(split, pane, zone.IsBefore())
	}
	return e.splitAround(node, pane, zone)
}

func mergeIntoSplit(split *entity.SplitNode, pane entity.LayoutNode, before bool) *entity.SplitNode {
	scaled := make([]float64, len(split.Sizes))
	for i, s := range split.Sizes {
		scaled[i] = s * ExistingShare
	}

	children := make([]entity.LayoutNode, 0, len(split.Children)+1)
	sizes := make([]float64, 0, len(scaled)+1)
	if before {
		children = append(append(children, pane), split.Children...)
		sizes = append(append(sizes, NewPaneShare), scaled...)
	} else {
		children = append(append(children, split.Children...), pane)
		sizes = append(append(sizes, scaled...), NewPaneShare)
	}

	return &entity.SplitNode{
		ID:        split.ID,
		Direction: split.Direction,
		Children:  children,
		Sizes:     normalizeSizes(sizes),
	}
}

// splitAround wraps existing and pane in a new two-child split ordered by zone.
func (e *Engine) splitAround(existing, pane entity.LayoutNode, zone entity.DockZone) *entity.SplitNode {
	if zone.IsBefore() {
		return e.MakeSplit(zone.Axis(), []entity.LayoutNode{pane, existing}, NewPaneShare, ExistingShare)
	}
	return e.MakeSplit(zone.Axis(), []entity.LayoutNode{existing, pane}, ExistingShare, NewPaneShare)
}

// DockAtContainer places panelID relative to the tabs container targetID:
// into it for the center zone, or beside it in a new split for the edges.
// Only the target is replaced; everything else keeps its identity.
//
// An unknown target falls back to DockAtRoot. Dropping a panel on the
// container it alone occupies leaves the tree unchanged.
func (e *Engine) DockAtContainer(node entity.LayoutNode, panelID, targetID string, zone entity.DockZone) entity.LayoutNode {
	if !zone.Valid() {
		return node
	}
	if FindTabsNode(node, targetID) == nil {
		return e.DockAtRoot(node, panelID, zone)
	}

	cleaned := RemovePanel(node, panelID)
	target := FindTabsNode(cleaned, targetID)
	if target == nil {
		return node
	}

	if zone == entity.ZoneCenter {
		return insertTab(cleaned, targetID, panelID)
	}

	split := e.splitAround(target, e.MakeTabs(panelID), zone)
	return replaceTabsNode(cleaned, targetID, split)
}
