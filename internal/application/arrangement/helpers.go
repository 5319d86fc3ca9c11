package arrangement

import (
	"context"
	"maps"
	"slices"

	"github.com/bnema/dockyard/internal/domain/entity"
)

func (s *Store) known(ctx context.Context, st entity.Arrangement, panelID string) bool {
	if st.IsRegistered(panelID) {
		return true
	}
	s.log(ctx).Debug().Str("panel_id", panelID).Msg("ignoring intent for unregistered panel")
	return false
}

func (s *Store) validZone(ctx context.Context, zone entity.DockZone) bool {
	if zone.Valid() {
		return true
	}
	s.log(ctx).Warn().Str("zone", string(zone)).Msg("ignoring invalid dock zone")
	return false
}

// withoutWindow returns windows minus the panel's window and whether one
// was removed. The input slice is never modified.
func withoutWindow(windows []entity.PanelWindow, panelID string) ([]entity.PanelWindow, bool) {
	i := slices.IndexFunc(windows, func(w entity.PanelWindow) bool { return w.PanelID == panelID })
	if i < 0 {
		return windows, false
	}
	return slices.Delete(slices.Clone(windows), i, i+1), true
}

func updateWindow(st entity.Arrangement, panelID string, fn func(entity.PanelWindow) entity.PanelWindow) (entity.Arrangement, bool) {
	i := slices.IndexFunc(st.Windows, func(w entity.PanelWindow) bool { return w.PanelID == panelID })
	if i < 0 {
		return st, false
	}
	updated := fn(st.Windows[i])
	if updated == st.Windows[i] {
		return st, false
	}
	windows := slices.Clone(st.Windows)
	windows[i] = updated
	st.Windows = windows
	return st, true
}

// raiseWindow puts the panel's window on top. A window already on top is
// left alone.
func raiseWindow(st entity.Arrangement, panelID string) (entity.Arrangement, bool) {
	w, ok := st.Window(panelID)
	if !ok || w.Z == st.NextZ {
		return st, false
	}
	z := st.NextZ + 1
	next, _ := updateWindow(st, panelID, func(w entity.PanelWindow) entity.PanelWindow {
		w.Z = z
		return w
	})
	next.NextZ = z
	return next, true
}

func withLayout(st entity.Arrangement, next entity.LayoutNode) (entity.Arrangement, bool) {
	if next == st.Layout {
		return st, false
	}
	st.Layout = next
	return st, true
}

func sameTheme(a, b entity.Theme) bool {
	return a.Name == b.Name &&
		a.FontFamily == b.FontFamily &&
		a.Radius == b.Radius &&
		a.Spacing == b.Spacing &&
		a.BorderWidth == b.BorderWidth &&
		maps.Equal(a.Colors, b.Colors)
}
