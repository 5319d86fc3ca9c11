package entity

// PanelRegistration is the display metadata a host registers for a panel.
// The content renderer itself stays on the host side, keyed by ID.
type PanelRegistration struct {
	ID        string
	Title     string
	Icon      string
	MinWidth  int // Floating window floor, 0 means use the configured default
	MinHeight int
}

// PanelWindow is the rectangle of a floating (non-docked) panel.
type PanelWindow struct {
	PanelID string
	X, Y    int
	Width   int
	Height  int
	Z       int // Stacking order, higher is on top
}

// MenuItem is an entry of a menu group. Actions are bound by the host using ID.
type MenuItem struct {
	ID        string
	Label     string
	Separator bool
	Enabled   bool
	Submenu   []MenuItem
	Order     *int
}

// MenuGroup is a top-level menu bar entry.
type MenuGroup struct {
	ID    string
	Label string
	Items []MenuItem
	Order *int // nil sorts as 0
}

// SortKey returns the group's ordering priority.
func (g MenuGroup) SortKey() int {
	if g.Order == nil {
		return 0
	}
	return *g.Order
}

// Theme is the active palette handed to the renderer.
type Theme struct {
	Name        string
	Colors      map[string]string
	FontFamily  string
	Radius      int
	Spacing     int
	BorderWidth int
}

// Color returns the named color or fallback when absent.
func (t Theme) Color(name, fallback string) string {
	if c, ok := t.Colors[name]; ok && c != "" {
		return c
	}
	return fallback
}
