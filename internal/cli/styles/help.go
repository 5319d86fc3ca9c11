package styles

import (
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/lipgloss"
)

// KeyMap defines keybindings that can be rendered as help.
type KeyMap interface {
	ShortHelp() []key.Binding
	FullHelp() [][]key.Binding
}

// PlayKeyMap defines keybindings for the interactive arrangement host.
type PlayKeyMap struct {
	Up          key.Binding
	Down        key.Binding
	Open        key.Binding
	Close       key.Binding
	Float       key.Binding
	DockLeft    key.Binding
	DockRight   key.Binding
	DockTop     key.Binding
	DockBottom  key.Binding
	DockCenter  key.Binding
	Drag        key.Binding
	Activate    key.Binding
	MoveLeft    key.Binding
	MoveRight   key.Binding
	MoveUp      key.Binding
	MoveDown    key.Binding
	Grow        key.Binding
	Shrink      key.Binding
	Focus       key.Binding
	ToggleTheme key.Binding
	Reset       key.Binding
	Help        key.Binding
	Quit        key.Binding
}

// ShortHelp returns keybindings to show in compact help.
func (k PlayKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Open, k.Float, k.Drag, k.Help, k.Quit}
}

// FullHelp returns keybindings for expanded help.
func (k PlayKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.Open, k.Close, k.Activate},
		{k.DockLeft, k.DockRight, k.DockTop, k.DockBottom, k.DockCenter, k.Drag},
		{k.Float, k.MoveLeft, k.MoveRight, k.MoveUp, k.MoveDown, k.Grow, k.Shrink, k.Focus},
		{k.ToggleTheme, k.Reset, k.Help, k.Quit},
	}
}

// DefaultPlayKeyMap returns the default play keybindings.
func DefaultPlayKeyMap() PlayKeyMap {
	return PlayKeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("↑/k", "up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("↓/j", "down"),
		),
		Open: key.NewBinding(
			key.WithKeys("enter", "o"),
			key.WithHelp("enter", "open"),
		),
		Close: key.NewBinding(
			key.WithKeys("x"),
			key.WithHelp("x", "close"),
		),
		Float: key.NewBinding(
			key.WithKeys("f"),
			key.WithHelp("f", "float"),
		),
		DockLeft: key.NewBinding(
			key.WithKeys("H"),
			key.WithHelp("H", "dock left"),
		),
		DockRight: key.NewBinding(
			key.WithKeys("L"),
			key.WithHelp("L", "dock right"),
		),
		DockTop: key.NewBinding(
			key.WithKeys("K"),
			key.WithHelp("K", "dock top"),
		),
		DockBottom: key.NewBinding(
			key.WithKeys("J"),
			key.WithHelp("J", "dock bottom"),
		),
		DockCenter: key.NewBinding(
			key.WithKeys("c"),
			key.WithHelp("c", "dock center"),
		),
		Drag: key.NewBinding(
			key.WithKeys("g"),
			key.WithHelp("g", "drag"),
		),
		Activate: key.NewBinding(
			key.WithKeys("tab"),
			key.WithHelp("tab", "activate tab"),
		),
		MoveLeft: key.NewBinding(
			key.WithKeys("a"),
			key.WithHelp("a", "move left"),
		),
		MoveRight: key.NewBinding(
			key.WithKeys("d"),
			key.WithHelp("d", "move right"),
		),
		MoveUp: key.NewBinding(
			key.WithKeys("w"),
			key.WithHelp("w", "move up"),
		),
		MoveDown: key.NewBinding(
			key.WithKeys("s"),
			key.WithHelp("s", "move down"),
		),
		Grow: key.NewBinding(
			key.WithKeys("+", "="),
			key.WithHelp("+", "grow"),
		),
		Shrink: key.NewBinding(
			key.WithKeys("-"),
			key.WithHelp("-", "shrink"),
		),
		Focus: key.NewBinding(
			key.WithKeys("z"),
			key.WithHelp("z", "raise"),
		),
		ToggleTheme: key.NewBinding(
			key.WithKeys("T"),
			key.WithHelp("T", "theme"),
		),
		Reset: key.NewBinding(
			key.WithKeys("R"),
			key.WithHelp("R", "reset"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "help"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// NewStyledHelp creates a themed help model.
func NewStyledHelp(theme *Theme) help.Model {
	h := help.New()
	h.Styles.ShortKey = lipgloss.NewStyle().Foreground(theme.Primary)
	h.Styles.ShortDesc = lipgloss.NewStyle().Foreground(theme.TextMuted)
	h.Styles.ShortSeparator = lipgloss.NewStyle().Foreground(theme.Border)
	h.Styles.FullKey = lipgloss.NewStyle().Foreground(theme.Primary)
	h.Styles.FullDesc = lipgloss.NewStyle().Foreground(theme.Text)
	h.Styles.FullSeparator = lipgloss.NewStyle().Foreground(theme.Border)
	return h
}
