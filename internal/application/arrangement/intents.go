package arrangement

import (
	"cmp"
	"context"
	"maps"
	"slices"

	"github.com/bnema/dockyard/internal/domain/entity"
	"github.com/bnema/dockyard/internal/domain/layout"
)

// RegisterPanel adds or updates a panel's metadata. The first panel
// registered into an empty layout becomes the initial view.
func (s *Store) RegisterPanel(ctx context.Context, reg entity.PanelRegistration) bool {
	if reg.ID == "" {
		s.log(ctx).Warn().Msg("ignoring panel registration without id")
		return false
	}
	return s.apply(ctx, "register_panel", func(st entity.Arrangement) (entity.Arrangement, bool) {
		existing, known := st.Registry[reg.ID]
		seed := st.Layout == nil && !st.IsFloating(reg.ID)
		if known && existing == reg && !seed {
			return st, false
		}

		registry := maps.Clone(st.Registry)
		registry[reg.ID] = reg
		st.Registry = registry
		if seed {
			st.Layout = s.engine.MakeTabs(reg.ID)
		}
		return st, true
	})
}

// OpenPanel shows a registered panel: docked panels stay put, floating ones
// are raised, hidden ones are added to the secondary tabs.
func (s *Store) OpenPanel(ctx context.Context, panelID string) bool {
	return s.apply(ctx, "open_panel", func(st entity.Arrangement) (entity.Arrangement, bool) {
		if !s.known(ctx, st, panelID) {
			return st, false
		}
		if st.IsFloating(panelID) {
			return raiseWindow(st, panelID)
		}
		next := s.engine.AddToTabs(st.Layout, panelID)
		if next == st.Layout {
			return st, false
		}
		st.Layout = next
		return st, true
	})
}

// ClosePanel hides a panel wherever it is, docked or floating.
func (s *Store) ClosePanel(ctx context.Context, panelID string) bool {
	return s.apply(ctx, "close_panel", func(st entity.Arrangement) (entity.Arrangement, bool) {
		next := layout.RemovePanel(st.Layout, panelID)
		windows, floated := withoutWindow(st.Windows, panelID)
		dragging := st.DraggingPanelID == panelID

		if next == st.Layout && !floated && !dragging {
			return st, false
		}
		st.Layout = next
		st.Windows = windows
		if dragging {
			st.DraggingPanelID = ""
		}
		return st, true
	})
}

// ToggleFloat moves a panel between the layout and a floating window. New
// windows open at the configured position above every other window.
func (s *Store) ToggleFloat(ctx context.Context, panelID string) bool {
	return s.apply(ctx, "toggle_float", func(st entity.Arrangement) (entity.Arrangement, bool) {
		if !s.known(ctx, st, panelID) {
			return st, false
		}

		if windows, floated := withoutWindow(st.Windows, panelID); floated {
			st.Windows = windows
			st.Layout = s.engine.AddToTabs(st.Layout, panelID)
			return st, true
		}

		st.Layout = layout.RemovePanel(st.Layout, panelID)
		st.NextZ++
		st.Windows = append(slices.Clone(st.Windows), entity.PanelWindow{
			PanelID: panelID,
			X:       s.windows.X,
			Y:       s.windows.Y,
			Width:   s.windows.Width,
			Height:  s.windows.Height,
			Z:       st.NextZ,
		})
		return st, true
	})
}

// MoveWindow translates a floating window.
func (s *Store) MoveWindow(ctx context.Context, panelID string, dx, dy int) bool {
	if dx == 0 && dy == 0 {
		return false
	}
	return s.apply(ctx, "move_window", func(st entity.Arrangement) (entity.Arrangement, bool) {
		return updateWindow(st, panelID, func(w entity.PanelWindow) entity.PanelWindow {
			w.X += dx
			w.Y += dy
			return w
		})
	})
}

// ResizeWindow grows or shrinks a floating window, never below the panel's
// registered minimum or the configured floor.
func (s *Store) ResizeWindow(ctx context.Context, panelID string, dw, dh int) bool {
	return s.apply(ctx, "resize_window", func(st entity.Arrangement) (entity.Arrangement, bool) {
		minW, minH := s.windows.MinWidth, s.windows.MinHeight
		if reg, ok := st.Registry[panelID]; ok {
			minW = cmp.Or(reg.MinWidth, minW)
			minH = cmp.Or(reg.MinHeight, minH)
		}
		return updateWindow(st, panelID, func(w entity.PanelWindow) entity.PanelWindow {
			w.Width = max(minW, w.Width+dw)
			w.Height = max(minH, w.Height+dh)
			return w
		})
	})
}

// FocusWindow raises a floating window above all others.
func (s *Store) FocusWindow(ctx context.Context, panelID string) bool {
	return s.apply(ctx, "focus_window", func(st entity.Arrangement) (entity.Arrangement, bool) {
		return raiseWindow(st, panelID)
	})
}

// DockPanel drops any current placement of the panel and docks it against an
// edge of the whole layout, or into the secondary tabs for the center zone.
func (s *Store) DockPanel(ctx context.Context, panelID string, zone entity.DockZone) bool {
	return s.apply(ctx, "dock_panel", func(st entity.Arrangement) (entity.Arrangement, bool) {
		if !s.known(ctx, st, panelID) || !s.validZone(ctx, zone) {
			return st, false
		}
		st.Windows, _ = withoutWindow(st.Windows, panelID)
		st.Layout = s.engine.DockAtRoot(layout.RemovePanel(st.Layout, panelID), panelID, zone)
		return st, true
	})
}

// DropPanel completes a drag: the host has classified the pointer into a
// target container and zone. Unknown containers dock against the root.
// The drag source is cleared either way.
func (s *Store) DropPanel(ctx context.Context, panelID, targetTabsID string, zone entity.DockZone) bool {
	return s.apply(ctx, "drop_panel", func(st entity.Arrangement) (entity.Arrangement, bool) {
		if !s.known(ctx, st, panelID) || !s.validZone(ctx, zone) {
			if st.DraggingPanelID == "" {
				return st, false
			}
			st.DraggingPanelID = ""
			return st, true
		}

		next := s.engine.DockAtContainer(st.Layout, panelID, targetTabsID, zone)
		windows, floated := withoutWindow(st.Windows, panelID)
		if next == st.Layout && !floated && st.DraggingPanelID == "" {
			return st, false
		}
		st.Layout = next
		st.Windows = windows
		st.DraggingPanelID = ""
		return st, true
	})
}

// AttachToTabs moves a panel into the named tabs container, or creates the
// first container when nothing is docked. An unknown container leaves the
// arrangement unchanged.
func (s *Store) AttachToTabs(ctx context.Context, panelID, tabsID string) bool {
	return s.apply(ctx, "attach_to_tabs", func(st entity.Arrangement) (entity.Arrangement, bool) {
		if !s.known(ctx, st, panelID) {
			return st, false
		}
		if st.Layout == nil {
			st.Windows, _ = withoutWindow(st.Windows, panelID)
			st.Layout = s.engine.MakeTabs(panelID)
			return st, true
		}
		if layout.FindTabsNode(st.Layout, tabsID) == nil {
			s.log(ctx).Debug().Str("tabs_id", tabsID).Msg("attach target not found")
			return st, false
		}

		next := s.engine.MovePanel(st.Layout, panelID, tabsID)
		windows, floated := withoutWindow(st.Windows, panelID)
		if next == st.Layout && !floated {
			return st, false
		}
		st.Layout = next
		st.Windows = windows
		return st, true
	})
}

// SetDragSource records the panel being dragged; an empty id clears it.
func (s *Store) SetDragSource(ctx context.Context, panelID string) bool {
	return s.apply(ctx, "set_drag_source", func(st entity.Arrangement) (entity.Arrangement, bool) {
		if panelID != "" && !s.known(ctx, st, panelID) {
			return st, false
		}
		if st.DraggingPanelID == panelID {
			return st, false
		}
		st.DraggingPanelID = panelID
		return st, true
	})
}

// SetActiveTab selects a tab of a container.
func (s *Store) SetActiveTab(ctx context.Context, tabsID, panelID string) bool {
	return s.apply(ctx, "set_active_tab", func(st entity.Arrangement) (entity.Arrangement, bool) {
		return withLayout(st, layout.SetActiveTab(st.Layout, tabsID, panelID))
	})
}

// SetSplitSizes applies a manual resize of a split.
func (s *Store) SetSplitSizes(ctx context.Context, splitID string, sizes []float64) bool {
	return s.apply(ctx, "set_split_sizes", func(st entity.Arrangement) (entity.Arrangement, bool) {
		return withLayout(st, layout.SetSplitSizes(st.Layout, splitID, sizes))
	})
}

// ReplacePanel swaps a docked panel for another registered panel in the same
// container. A floating replacement leaves its window.
func (s *Store) ReplacePanel(ctx context.Context, oldID, newID string) bool {
	return s.apply(ctx, "replace_panel", func(st entity.Arrangement) (entity.Arrangement, bool) {
		if !s.known(ctx, st, newID) {
			return st, false
		}
		next := layout.ReplaceTab(st.Layout, oldID, newID)
		if next == st.Layout {
			return st, false
		}
		st.Layout = next
		st.Windows, _ = withoutWindow(st.Windows, newID)
		return st, true
	})
}

// RegisterMenu inserts or replaces a menu group by id and keeps the bar
// sorted by order, ties keeping registration order.
func (s *Store) RegisterMenu(ctx context.Context, group entity.MenuGroup) bool {
	if group.ID == "" {
		s.log(ctx).Warn().Msg("ignoring menu group without id")
		return false
	}
	return s.apply(ctx, "register_menu", func(st entity.Arrangement) (entity.Arrangement, bool) {
		menus := slices.Clone(st.MenuBar)
		if i := slices.IndexFunc(menus, func(m entity.MenuGroup) bool { return m.ID == group.ID }); i >= 0 {
			menus[i] = group
		} else {
			menus = append(menus, group)
		}
		slices.SortStableFunc(menus, func(a, b entity.MenuGroup) int {
			return cmp.Compare(a.SortKey(), b.SortKey())
		})
		st.MenuBar = menus
		return st, true
	})
}

// SetTheme swaps the active palette. Unknown names are ignored.
func (s *Store) SetTheme(ctx context.Context, name string) bool {
	return s.apply(ctx, "set_theme", func(st entity.Arrangement) (entity.Arrangement, bool) {
		if s.themes == nil {
			return st, false
		}
		theme, ok := s.themes.Theme(name)
		if !ok {
			s.log(ctx).Warn().Str("theme", name).Msg("unknown theme")
			return st, false
		}
		if sameTheme(st.Theme, theme) {
			return st, false
		}
		st.Theme = theme
		return st, true
	})
}

// Reset returns the store to its freshly created state. Observers stay
// subscribed and receive the empty snapshot.
func (s *Store) Reset(ctx context.Context) bool {
	return s.apply(ctx, "reset", func(entity.Arrangement) (entity.Arrangement, bool) {
		return s.initialState(), true
	})
}
