// Package styles provides reusable lipgloss-based TUI components.
package styles

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/bnema/dockyard/internal/domain/entity"
	"github.com/bnema/dockyard/internal/ui/theme"
)

// Theme holds lipgloss colors and styles derived from the active
// arrangement theme.
type Theme struct {
	Name string

	Background lipgloss.Color
	Surface    lipgloss.Color
	Muted      lipgloss.Color
	Border     lipgloss.Color
	Primary    lipgloss.Color
	Text       lipgloss.Color
	TextMuted  lipgloss.Color
	Danger     lipgloss.Color
	Highlight  lipgloss.Color

	// Pre-built styles
	Title      lipgloss.Style
	Subtle     lipgloss.Style
	Normal     lipgloss.Style
	Accent     lipgloss.Style
	ErrorStyle lipgloss.Style

	// Layout outline
	TabsID      lipgloss.Style
	SplitID     lipgloss.Style
	ActiveTab   lipgloss.Style
	InactiveTab lipgloss.Style
	Sizes       lipgloss.Style
	Guide       lipgloss.Style
	Window      lipgloss.Style
	Dragging    lipgloss.Style

	HelpKey  lipgloss.Style
	HelpDesc lipgloss.Style

	Box lipgloss.Style
}

// NewTheme creates a Theme from an arrangement theme. Missing colors fall
// back to the built-in dark palette.
func NewTheme(t entity.Theme) *Theme {
	d := theme.DefaultDarkPalette()
	s := &Theme{
		Name:       t.Name,
		Background: lipgloss.Color(t.Color(theme.ColorBackground, d.Background)),
		Surface:    lipgloss.Color(t.Color(theme.ColorSurface, d.Surface)),
		Muted:      lipgloss.Color(t.Color(theme.ColorMuted, d.Muted)),
		Border:     lipgloss.Color(t.Color(theme.ColorBorder, d.Border)),
		Primary:    lipgloss.Color(t.Color(theme.ColorPrimary, d.Primary)),
		Text:       lipgloss.Color(t.Color(theme.ColorText, d.Text)),
		TextMuted:  lipgloss.Color(t.Color(theme.ColorTextMuted, d.TextMuted)),
		Danger:     lipgloss.Color(t.Color(theme.ColorDanger, d.Danger)),
		Highlight:  lipgloss.Color(t.Color(theme.ColorHighlight, d.Highlight)),
	}
	s.buildStyles()
	return s
}

// buildStyles creates all derived lipgloss styles.
func (t *Theme) buildStyles() {
	t.Title = lipgloss.NewStyle().
		Foreground(t.Text).
		Bold(true)

	t.Subtle = lipgloss.NewStyle().
		Foreground(t.TextMuted)

	t.Normal = lipgloss.NewStyle().
		Foreground(t.Text)

	t.Accent = lipgloss.NewStyle().
		Foreground(t.Primary).
		Bold(true)

	t.ErrorStyle = lipgloss.NewStyle().
		Foreground(t.Danger)

	t.TabsID = lipgloss.NewStyle().
		Foreground(t.TextMuted)

	t.SplitID = lipgloss.NewStyle().
		Foreground(t.Primary)

	t.ActiveTab = lipgloss.NewStyle().
		Foreground(t.Background).
		Background(t.Primary).
		Bold(true)

	t.InactiveTab = lipgloss.NewStyle().
		Foreground(t.Text).
		Background(t.Muted)

	t.Sizes = lipgloss.NewStyle().
		Foreground(t.TextMuted).
		Italic(true)

	t.Guide = lipgloss.NewStyle().
		Foreground(t.Border)

	t.Window = lipgloss.NewStyle().
		Foreground(t.Text).
		Background(t.Surface)

	t.Dragging = lipgloss.NewStyle().
		Foreground(t.Text).
		Background(t.Highlight)

	t.HelpKey = lipgloss.NewStyle().
		Foreground(t.Primary)

	t.HelpDesc = lipgloss.NewStyle().
		Foreground(t.TextMuted)

	t.Box = lipgloss.NewStyle().
		BorderStyle(lipgloss.RoundedBorder()).
		BorderForeground(t.Border).
		Padding(0, 1)
}
