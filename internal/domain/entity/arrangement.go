package entity

import "slices"

// Arrangement is an immutable snapshot of everything the host renders:
// the layout tree, floating windows, and ancillary UI state.
//
// Slices and maps in a snapshot are shared with later snapshots and must not
// be modified by observers.
type Arrangement struct {
	Registry        map[string]PanelRegistration
	Layout          LayoutNode // nil when nothing is docked
	Windows         []PanelWindow
	DraggingPanelID string // empty when no drag is in progress
	MenuBar         []MenuGroup
	Theme           Theme
	NextZ           int
}

// IsRegistered reports whether the panel is known to the registry.
func (a Arrangement) IsRegistered(panelID string) bool {
	_, ok := a.Registry[panelID]
	return ok
}

// Window returns the floating window of a panel, if any.
func (a Arrangement) Window(panelID string) (PanelWindow, bool) {
	i := a.windowIndex(panelID)
	if i < 0 {
		return PanelWindow{}, false
	}
	return a.Windows[i], true
}

// IsFloating reports whether the panel currently has a floating window.
func (a Arrangement) IsFloating(panelID string) bool {
	return a.windowIndex(panelID) >= 0
}

func (a Arrangement) windowIndex(panelID string) int {
	return slices.IndexFunc(a.Windows, func(w PanelWindow) bool {
		return w.PanelID == panelID
	})
}

// PanelIDs returns registered panel ids sorted for stable presentation.
func (a Arrangement) PanelIDs() []string {
	ids := make([]string, 0, len(a.Registry))
	for id := range a.Registry {
		ids = append(ids, id)
	}
	slices.Sort(ids)
	return ids
}
