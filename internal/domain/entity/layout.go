// Package entity contains domain entities representing core layout concepts.
// These entities are pure Go types with no infrastructure dependencies.
package entity

import (
	"fmt"
	"slices"
	"strings"
)

// NodeKind discriminates the two layout node variants.
type NodeKind string

const (
	KindTabs  NodeKind = "tabs"
	KindSplit NodeKind = "split"
)

// Direction indicates the axis along which a split divides its children.
type Direction string

const (
	Horizontal Direction = "horizontal" // Left/right split
	Vertical   Direction = "vertical"   // Top/bottom split
)

// DockZone describes where, relative to a target, a panel should be placed.
type DockZone string

const (
	ZoneLeft   DockZone = "left"
	ZoneRight  DockZone = "right"
	ZoneTop    DockZone = "top"
	ZoneBottom DockZone = "bottom"
	ZoneCenter DockZone = "center"
)

// DockZones lists every valid zone.
var DockZones = []DockZone{ZoneLeft, ZoneRight, ZoneTop, ZoneBottom, ZoneCenter}

// ParseDockZone converts a host-supplied string into a DockZone.
func ParseDockZone(s string) (DockZone, error) {
	z := DockZone(strings.ToLower(strings.TrimSpace(s)))
	if !z.Valid() {
		return "", fmt.Errorf("unknown dock zone %q", s)
	}
	return z, nil
}

// Valid reports whether z is one of the five known zones.
func (z DockZone) Valid() bool {
	return slices.Contains(DockZones, z)
}

// Axis returns the split direction implied by the zone.
// Center has no axis and reports Horizontal.
func (z DockZone) Axis() Direction {
	switch z {
	case ZoneTop, ZoneBottom:
		return Vertical
	default:
		return Horizontal
	}
}

// IsBefore reports whether the zone places the new pane first (left/top).
func (z DockZone) IsBefore() bool {
	return z == ZoneLeft || z == ZoneTop
}

// LayoutNode is a node of the arrangement tree: either *TabsNode or *SplitNode.
// A nil LayoutNode is the empty layout.
//
// Nodes are immutable once built. Rewrites produce new nodes along the
// changed path and keep pointers of untouched subtrees, so hosts can diff
// snapshots by identity.
type LayoutNode interface {
	NodeID() string
	Kind() NodeKind
	layoutNode()
}

// TabsNode is a container holding an ordered set of panels shown as tabs.
type TabsNode struct {
	ID          string
	Tabs        []string
	ActiveTabID string
}

// NodeID implements LayoutNode.
func (n *TabsNode) NodeID() string { return n.ID }

// Kind implements LayoutNode.
func (n *TabsNode) Kind() NodeKind { return KindTabs }

func (*TabsNode) layoutNode() {}

// Has reports whether panelID is one of the container's tabs.
func (n *TabsNode) Has(panelID string) bool {
	return slices.Contains(n.Tabs, panelID)
}

// SplitNode divides space between two or more children along an axis.
type SplitNode struct {
	ID        string
	Direction Direction
	Children  []LayoutNode
	Sizes     []float64
}

// NodeID implements LayoutNode.
func (n *SplitNode) NodeID() string { return n.ID }

// Kind implements LayoutNode.
func (n *SplitNode) Kind() NodeKind { return KindSplit }

func (*SplitNode) layoutNode() {}
