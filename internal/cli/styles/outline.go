package styles

import (
	"fmt"
	"strings"

	"github.com/bnema/dockyard/internal/domain/entity"
)

// OutlineRenderer draws an arrangement snapshot as an indented tree.
type OutlineRenderer struct {
	theme *Theme
}

// NewOutlineRenderer creates an outline renderer with the given theme.
func NewOutlineRenderer(theme *Theme) *OutlineRenderer {
	return &OutlineRenderer{theme: theme}
}

// RenderArrangement renders the layout tree followed by floating windows,
// the drag source, and the menu bar.
func (r *OutlineRenderer) RenderArrangement(a entity.Arrangement) string {
	var sb strings.Builder

	sb.WriteString(r.theme.Title.Render(IconPane+" layout") + "\n")
	if a.Layout == nil {
		sb.WriteString("  " + r.theme.Subtle.Render("(empty)") + "\n")
	} else {
		r.renderNode(&sb, a.Layout, "  ", "", a.Registry)
	}

	if len(a.Windows) > 0 {
		sb.WriteString(r.theme.Title.Render(IconSession+" floating") + "\n")
		for _, w := range a.Windows {
			line := fmt.Sprintf("%s x=%d y=%d %dx%d z=%d",
				r.title(a.Registry, w.PanelID), w.X, w.Y, w.Width, w.Height, w.Z)
			sb.WriteString("  " + r.theme.Window.Render(line) + "\n")
		}
	}

	if a.DraggingPanelID != "" {
		sb.WriteString(r.theme.Dragging.Render("dragging "+a.DraggingPanelID) + "\n")
	}

	if len(a.MenuBar) > 0 {
		labels := make([]string, 0, len(a.MenuBar))
		for _, g := range a.MenuBar {
			labels = append(labels, g.Label)
		}
		sb.WriteString(r.theme.Subtle.Render("menu: "+strings.Join(labels, " · ")) + "\n")
	}

	if a.Theme.Name != "" {
		sb.WriteString(r.theme.Subtle.Render("theme: "+a.Theme.Name) + "\n")
	}
	return sb.String()
}

// RenderLayout renders only the tree.
func (r *OutlineRenderer) RenderLayout(node entity.LayoutNode, registry map[string]entity.PanelRegistration) string {
	if node == nil {
		return r.theme.Subtle.Render("(empty)") + "\n"
	}
	var sb strings.Builder
	r.renderNode(&sb, node, "", "", registry)
	return sb.String()
}

func (r *OutlineRenderer) renderNode(
	sb *strings.Builder,
	node entity.LayoutNode,
	prefix, branch string,
	registry map[string]entity.PanelRegistration,
) {
	sb.WriteString(prefix + r.theme.Guide.Render(branch))

	switch n := node.(type) {
	case *entity.TabsNode:
		tabs := make([]string, 0, len(n.Tabs))
		for _, id := range n.Tabs {
			label := r.title(registry, id)
			if id == n.ActiveTabID {
				tabs = append(tabs, r.theme.ActiveTab.Render("*"+label))
			} else {
				tabs = append(tabs, r.theme.InactiveTab.Render(label))
			}
		}
		sb.WriteString(r.theme.TabsID.Render(n.ID) + " " + strings.Join(tabs, " ") + "\n")

	case *entity.SplitNode:
		sizes := make([]string, len(n.Sizes))
		for i, s := range n.Sizes {
			sizes[i] = fmt.Sprintf("%.3g", s)
		}
		sb.WriteString(fmt.Sprintf("%s %s %s\n",
			r.theme.SplitID.Render(n.ID),
			string(n.Direction),
			r.theme.Sizes.Render("["+strings.Join(sizes, " ")+"]"),
		))

		childPrefix := prefix
		switch branch {
		case "├─ ":
			childPrefix += "│  "
		case "└─ ":
			childPrefix += "   "
		}
		for i, child := range n.Children {
			b := "├─ "
			if i == len(n.Children)-1 {
				b = "└─ "
			}
			r.renderNode(sb, child, childPrefix, b, registry)
		}
	}
}

func (r *OutlineRenderer) title(registry map[string]entity.PanelRegistration, panelID string) string {
	if reg, ok := registry[panelID]; ok && reg.Title != "" && reg.Title != panelID {
		return fmt.Sprintf("%s(%s)", panelID, reg.Title)
	}
	return panelID
}
