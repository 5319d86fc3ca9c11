// Package model provides Bubble Tea models for CLI commands.
package model

import (
	"cmp"
	"context"
	"fmt"
	"maps"
	"slices"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/bnema/dockyard/internal/application/arrangement"
	"github.com/bnema/dockyard/internal/cli/styles"
	"github.com/bnema/dockyard/internal/domain/entity"
	"github.com/bnema/dockyard/internal/domain/layout"
	"github.com/bnema/dockyard/internal/logging"
)

const (
	windowStep = 10   // cells per move-window keypress
	resizeStep = 20   // cells per resize-window keypress
	shareStep  = 0.05 // split share per grow/shrink keypress on a docked panel
)

// DemoPanels are registered when PlayConfig lists none.
func DemoPanels() []entity.PanelRegistration {
	return []entity.PanelRegistration{
		{ID: "scene", Title: "Scene"},
		{ID: "inspector", Title: "Inspector", MinWidth: 280},
		{ID: "assets", Title: "Assets"},
		{ID: "console", Title: "Console", MinHeight: 120},
		{ID: "timeline", Title: "Timeline"},
	}
}

// DemoMenus are registered alongside DemoPanels.
func DemoMenus() []entity.MenuGroup {
	order := func(v int) *int { return &v }
	return []entity.MenuGroup{
		{ID: "view", Label: "View", Order: order(2)},
		{ID: "file", Label: "File", Order: order(1)},
		{ID: "window", Label: "Window", Order: order(3)},
	}
}

// PlayConfig holds the panels and themes offered by the play model.
type PlayConfig struct {
	Panels []entity.PanelRegistration
	Menus  []entity.MenuGroup
	Themes []string // cycled by the theme key
}

// arrangementChangedMsg is sent when the store publishes a new snapshot.
type arrangementChangedMsg struct{}

// PlayModel is an interactive host for an arrangement store: it lists the
// registered panels, forwards keypresses as intents, and renders every
// published snapshot as an outline.
type PlayModel struct {
	// UI components
	help    help.Model
	keys    styles.PlayKeyMap
	theme   *styles.Theme
	outline *styles.OutlineRenderer

	// State
	snap          entity.Arrangement
	selectedIdx   int
	width         int
	height        int
	statusMessage string

	// Dependencies
	ctx         context.Context
	store       *arrangement.Store
	cfg         PlayConfig
	changed     chan struct{}
	unsubscribe func()
}

// NewPlayModel registers the configured panels with store and subscribes to
// its snapshots. Call Close once the program exits.
func NewPlayModel(ctx context.Context, store *arrangement.Store, cfg PlayConfig) *PlayModel {
	if len(cfg.Panels) == 0 {
		cfg.Panels = DemoPanels()
		cfg.Menus = append(cfg.Menus, DemoMenus()...)
	}

	m := &PlayModel{
		keys:    styles.DefaultPlayKeyMap(),
		width:   80,
		height:  24,
		ctx:     ctx,
		store:   store,
		cfg:     cfg,
		changed: make(chan struct{}, 1),
	}

	// Notifications only signal; the model re-reads the snapshot itself so a
	// burst of intents collapses into one redraw.
	m.unsubscribe = store.SubscribeFunc(func(entity.Arrangement) {
		select {
		case m.changed <- struct{}{}:
		default:
		}
	})

	m.seed()
	m.refresh()
	return m
}

// Close detaches the model from the store.
func (m *PlayModel) Close() {
	if m.unsubscribe != nil {
		m.unsubscribe()
	}
}

func (m *PlayModel) seed() {
	for _, reg := range m.cfg.Panels {
		m.store.RegisterPanel(m.ctx, reg)
	}
	for _, group := range m.cfg.Menus {
		m.store.RegisterMenu(m.ctx, group)
	}
}

// refresh pulls the latest snapshot and rebuilds styles when the theme moved.
func (m *PlayModel) refresh() {
	prev := m.snap.Theme
	m.snap = m.store.Snapshot()

	if m.theme == nil || prev.Name != m.snap.Theme.Name || !maps.Equal(prev.Colors, m.snap.Theme.Colors) {
		m.theme = styles.NewTheme(m.snap.Theme)
		m.outline = styles.NewOutlineRenderer(m.theme)
		m.help = styles.NewStyledHelp(m.theme)
		m.help.Width = m.width
	}

	if n := len(m.cfg.Panels); m.selectedIdx >= n {
		m.selectedIdx = max(n-1, 0)
	}
}

func (m *PlayModel) waitForChange() tea.Msg {
	select {
	case <-m.changed:
		return arrangementChangedMsg{}
	case <-m.ctx.Done():
		return nil
	}
}

// Init implements tea.Model.
func (m *PlayModel) Init() tea.Cmd {
	return m.waitForChange
}

// Update implements tea.Model.
func (m *PlayModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		return m, nil

	case arrangementChangedMsg:
		m.refresh()
		return m, m.waitForChange

	case tea.KeyMsg:
		return m.handleKeyMsg(msg)
	}

	return m, nil
}

func (m *PlayModel) selected() string {
	if m.selectedIdx < 0 || m.selectedIdx >= len(m.cfg.Panels) {
		return ""
	}
	return m.cfg.Panels[m.selectedIdx].ID
}

func (m *PlayModel) handleKeyMsg(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	id := m.selected()

	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit

	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
		return m, nil

	case key.Matches(msg, m.keys.Up):
		if m.selectedIdx > 0 {
			m.selectedIdx--
		}
		return m, nil

	case key.Matches(msg, m.keys.Down):
		if m.selectedIdx < len(m.cfg.Panels)-1 {
			m.selectedIdx++
		}
		return m, nil

	case key.Matches(msg, m.keys.Open):
		m.report("open "+id, m.store.OpenPanel(m.ctx, id))
	case key.Matches(msg, m.keys.Close):
		m.report("close "+id, m.store.ClosePanel(m.ctx, id))
	case key.Matches(msg, m.keys.Float):
		m.report("float "+id, m.store.ToggleFloat(m.ctx, id))
	case key.Matches(msg, m.keys.Focus):
		m.report("raise "+id, m.store.FocusWindow(m.ctx, id))

	case key.Matches(msg, m.keys.DockLeft):
		m.dock(id, entity.ZoneLeft)
	case key.Matches(msg, m.keys.DockRight):
		m.dock(id, entity.ZoneRight)
	case key.Matches(msg, m.keys.DockTop):
		m.dock(id, entity.ZoneTop)
	case key.Matches(msg, m.keys.DockBottom):
		m.dock(id, entity.ZoneBottom)
	case key.Matches(msg, m.keys.DockCenter):
		m.dock(id, entity.ZoneCenter)

	case key.Matches(msg, m.keys.Drag):
		if m.snap.DraggingPanelID == id {
			m.report("drag cancelled", m.store.SetDragSource(m.ctx, ""))
		} else {
			m.report("dragging "+id, m.store.SetDragSource(m.ctx, id))
		}

	case key.Matches(msg, m.keys.Activate):
		holder := layout.FindPanel(m.snap.Layout, id)
		if holder == nil {
			m.report("activate "+id, false)
			break
		}
		m.report("activate "+id, m.store.SetActiveTab(m.ctx, holder.ID, id))

	case key.Matches(msg, m.keys.MoveLeft):
		m.report("move "+id, m.store.MoveWindow(m.ctx, id, -windowStep, 0))
	case key.Matches(msg, m.keys.MoveRight):
		m.report("move "+id, m.store.MoveWindow(m.ctx, id, windowStep, 0))
	case key.Matches(msg, m.keys.MoveUp):
		m.report("move "+id, m.store.MoveWindow(m.ctx, id, 0, -windowStep))
	case key.Matches(msg, m.keys.MoveDown):
		m.report("move "+id, m.store.MoveWindow(m.ctx, id, 0, windowStep))

	case key.Matches(msg, m.keys.Grow):
		m.resize(id, 1)
	case key.Matches(msg, m.keys.Shrink):
		m.resize(id, -1)

	case key.Matches(msg, m.keys.ToggleTheme):
		next := m.nextTheme()
		m.report("theme "+next, m.store.SetTheme(m.ctx, next))

	case key.Matches(msg, m.keys.Reset):
		m.store.Reset(m.ctx)
		m.seed()
		m.report("reset", true)

	default:
		return m, nil
	}

	m.refresh()
	return m, nil
}

// dock places the selected panel at the edge of the layout, or, while a drag
// is in progress, drops the dragged panel next to the selected panel's
// container.
func (m *PlayModel) dock(id string, zone entity.DockZone) {
	source := m.snap.DraggingPanelID
	if source == "" {
		m.report(fmt.Sprintf("dock %s %s", id, zone), m.store.DockPanel(m.ctx, id, zone))
		return
	}

	target := layout.FindPanel(m.snap.Layout, id)
	if target == nil {
		// Dropping on a panel that is not docked docks at the root edge.
		changed := m.store.DockPanel(m.ctx, source, zone)
		m.store.SetDragSource(m.ctx, "")
		m.report(fmt.Sprintf("dock %s %s", source, zone), changed)
		return
	}
	m.report(fmt.Sprintf("drop %s %s of %s", source, zone, target.ID),
		m.store.DropPanel(m.ctx, source, target.ID, zone))
}

// resize grows or shrinks a floating window, or the share of a docked
// panel's container in its parent split.
func (m *PlayModel) resize(id string, sign int) {
	if m.snap.IsFloating(id) {
		m.report("resize "+id, m.store.ResizeWindow(m.ctx, id, sign*resizeStep, sign*resizeStep))
		return
	}

	holder := layout.FindPanel(m.snap.Layout, id)
	if holder == nil {
		m.report("resize "+id, false)
		return
	}
	parent := layout.Parent(m.snap.Layout, holder.ID)
	if parent == nil {
		m.report("resize "+id, false)
		return
	}

	idx := slices.IndexFunc(parent.Children, func(n entity.LayoutNode) bool { return n.NodeID() == holder.ID })
	sizes := slices.Clone(parent.Sizes)
	sizes[idx] = max(sizes[idx]+float64(sign)*shareStep, 0)
	m.report("resize "+id, m.store.SetSplitSizes(m.ctx, parent.ID, sizes))
}

func (m *PlayModel) nextTheme() string {
	themes := m.cfg.Themes
	if len(themes) == 0 {
		return m.snap.Theme.Name
	}
	i := slices.Index(themes, m.snap.Theme.Name)
	return themes[(i+1)%len(themes)]
}

func (m *PlayModel) report(action string, changed bool) {
	if changed {
		m.statusMessage = action
	} else {
		m.statusMessage = action + " (no change)"
	}
	logging.FromContext(m.ctx).Debug().
		Str("action", action).
		Bool("changed", changed).
		Msg("play intent")
}

// View implements tea.Model.
func (m *PlayModel) View() string {
	t := m.theme
	var b strings.Builder

	b.WriteString(m.renderHeader())
	b.WriteString("\n\n")
	b.WriteString(m.renderPanelList())
	b.WriteString("\n")
	b.WriteString(m.outline.RenderArrangement(m.snap))

	if m.statusMessage != "" {
		b.WriteString("\n")
		b.WriteString(t.Subtle.Render(m.statusMessage))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(m.help.View(m.keys))
	return b.String()
}

func (m *PlayModel) renderHeader() string {
	t := m.theme
	iconStyle := lipgloss.NewStyle().Foreground(t.Primary)

	var docked, floating int
	for _, reg := range m.cfg.Panels {
		switch {
		case m.snap.IsFloating(reg.ID):
			floating++
		case layout.ContainsPanel(m.snap.Layout, reg.ID):
			docked++
		}
	}

	stats := t.Subtle.Render(fmt.Sprintf("  %s %d docked  %s %d floating",
		styles.IconPane, docked,
		styles.IconSession, floating,
	))
	return iconStyle.Render(styles.IconTab) + t.Title.MarginLeft(1).Render("Dockyard") + stats
}

func (m *PlayModel) renderPanelList() string {
	t := m.theme
	var b strings.Builder

	for i, reg := range m.cfg.Panels {
		cursor := "  "
		nameStyle := t.Normal
		if i == m.selectedIdx {
			cursor = t.Accent.Render(styles.IconCursor + " ")
			nameStyle = t.Accent
		}

		var state string
		switch {
		case m.snap.DraggingPanelID == reg.ID:
			state = t.Dragging.Render("dragging")
		case m.snap.IsFloating(reg.ID):
			state = t.Window.Render("floating")
		case layout.ContainsPanel(m.snap.Layout, reg.ID):
			state = t.Subtle.Render("docked")
		default:
			state = t.Subtle.Render("hidden")
		}

		fmt.Fprintf(&b, "%s%s  %s\n", cursor, nameStyle.Render(cmp.Or(reg.Title, reg.ID)), state)
	}
	return b.String()
}

// Snapshot returns the arrangement the model last rendered.
func (m *PlayModel) Snapshot() entity.Arrangement {
	return m.snap
}

// Ensure interface compliance at compile time.
var _ tea.Model = (*PlayModel)(nil)
