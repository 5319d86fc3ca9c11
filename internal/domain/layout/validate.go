package layout

import (
	"errors"
	"fmt"
	"math"

	"github.com/bnema/dockyard/internal/domain/entity"
)

// ErrInvalidTree is wrapped by every error Validate returns.
var ErrInvalidTree = errors.New("invalid layout tree")

// Validate checks the invariants every engine-produced tree holds: non-empty
// containers with a member active tab, panels and node ids unique across the
// tree, and splits whose shares match their children, sum to 1 and respect
// the floor. A nil tree is valid.
func Validate(node entity.LayoutNode) error {
	v := validator{
		panels: make(map[string]string),
		ids:    make(map[string]bool),
	}
	return v.check(node, "root")
}

type validator struct {
	panels map[string]string // panel id -> holding container id
	ids    map[string]bool
}

func (v *validator) check(node entity.LayoutNode, path string) error {
	if node == nil {
		if path == "root" {
			return nil
		}
		return fmt.Errorf("%w: %s: nil child", ErrInvalidTree, path)
	}

	id := node.NodeID()
	path = path + "/" + id
	if id == "" {
		return fmt.Errorf("%w: %s: empty node id", ErrInvalidTree, path)
	}
	if v.ids[id] {
		return fmt.Errorf("%w: %s: duplicate node id", ErrInvalidTree, path)
	}
	v.ids[id] = true

	switch n := node.(type) {
	case *entity.TabsNode:
		return v.checkTabs(n, path)
	case *entity.SplitNode:
		return v.checkSplit(n, path)
	}
	return fmt.Errorf("%w: %s: unknown node type %T", ErrInvalidTree, path, node)
}

func (v *validator) checkTabs(n *entity.TabsNode, path string) error {
	if len(n.Tabs) == 0 {
		return fmt.Errorf("%w: %s: empty tabs container", ErrInvalidTree, path)
	}
	for _, panel := range n.Tabs {
		if holder, seen := v.panels[panel]; seen {
			return fmt.Errorf("%w: %s: panel %q already docked in %s", ErrInvalidTree, path, panel, holder)
		}
		v.panels[panel] = n.ID
	}
	if !n.Has(n.ActiveTabID) {
		return fmt.Errorf("%w: %s: active tab %q is not a tab", ErrInvalidTree, path, n.ActiveTabID)
	}
	return nil
}

func (v *validator) checkSplit(n *entity.SplitNode, path string) error {
	if n.Direction != entity.Horizontal && n.Direction != entity.Vertical {
		return fmt.Errorf("%w: %s: unknown direction %q", ErrInvalidTree, path, n.Direction)
	}
	if len(n.Children) == 0 {
		return fmt.Errorf("%w: %s: split without children", ErrInvalidTree, path)
	}
	if len(n.Sizes) != len(n.Children) {
		return fmt.Errorf("%w: %s: %d sizes for %d children", ErrInvalidTree, path, len(n.Sizes), len(n.Children))
	}

	floor := floorFor(len(n.Sizes))
	total := 0.0
	for i, s := range n.Sizes {
		if s < floor-SizeTolerance {
			return fmt.Errorf("%w: %s: size[%d]=%g under floor %g", ErrInvalidTree, path, i, s, floor)
		}
		total += s
	}
	if math.Abs(total-1) > SizeTolerance {
		return fmt.Errorf("%w: %s: sizes sum to %g", ErrInvalidTree, path, total)
	}

	for _, child := range n.Children {
		if err := v.check(child, path); err != nil {
			return err
		}
	}
	return nil
}
