package styles

import (
	"bytes"
	"fmt"

	"github.com/BurntSushi/toml"
	"github.com/charmbracelet/lipgloss"

	"github.com/bnema/dockyard/internal/infrastructure/config"
)

// ConfigRenderer renders config status messages with styled output.
type ConfigRenderer struct {
	theme *Theme
}

// NewConfigRenderer creates a new config renderer with the given theme.
func NewConfigRenderer(theme *Theme) *ConfigRenderer {
	return &ConfigRenderer{theme: theme}
}

// RenderConfigInfo renders the config file path.
func (r *ConfigRenderer) RenderConfigInfo(path string) string {
	iconStyle := lipgloss.NewStyle().Foreground(r.theme.Primary)
	return fmt.Sprintf("\n  %s Config %s\n", iconStyle.Render(IconConfig), r.theme.Subtle.Render(path))
}

// RenderConfig renders the effective configuration as TOML.
func (r *ConfigRenderer) RenderConfig(cfg *config.Config) (string, error) {
	var buf bytes.Buffer
	if err := toml.NewEncoder(&buf).Encode(cfg); err != nil {
		return "", fmt.Errorf("encode config: %w", err)
	}
	return buf.String(), nil
}

// RenderError renders an error message.
func (r *ConfigRenderer) RenderError(err error) string {
	iconStyle := lipgloss.NewStyle().Foreground(r.theme.Danger)
	return fmt.Sprintf("\n  %s Config error: %v\n", iconStyle.Render(IconX), err)
}

// ReplayRenderer renders the result of one intent script.
type ReplayRenderer struct {
	theme   *Theme
	outline *OutlineRenderer
}

// NewReplayRenderer creates a replay renderer with the given theme.
func NewReplayRenderer(theme *Theme) *ReplayRenderer {
	return &ReplayRenderer{theme: theme, outline: NewOutlineRenderer(theme)}
}

// RenderHeader renders the script name and step count.
func (r *ReplayRenderer) RenderHeader(path string, steps int) string {
	iconStyle := lipgloss.NewStyle().Foreground(r.theme.Primary)
	return fmt.Sprintf("%s %s %s\n",
		iconStyle.Render(IconPlay),
		r.theme.Title.Render(path),
		r.theme.Subtle.Render(fmt.Sprintf("(%d steps)", steps)),
	)
}

// RenderFailure renders a script that could not run to completion.
func (r *ReplayRenderer) RenderFailure(path string, err error) string {
	iconStyle := lipgloss.NewStyle().Foreground(r.theme.Danger)
	return fmt.Sprintf("%s %s %s\n", iconStyle.Render(IconX), r.theme.Title.Render(path), r.theme.ErrorStyle.Render(err.Error()))
}

// Outline exposes the arrangement renderer.
func (r *ReplayRenderer) Outline() *OutlineRenderer {
	return r.outline
}
