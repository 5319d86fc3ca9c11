package colorscheme

import (
	"os"
	"strconv"
	"strings"
)

const (
	detectorNameTerminal = "COLORFGBG"
	priorityTerminal     = 30

	detectorNameEnv = "GTK_THEME"
	priorityEnv     = 20
)

// TerminalDetector reads COLORFGBG ("fg;bg"), which many terminals export.
// Background colors 7 and 15 are the light grays and white of the ANSI
// palette; every other index is treated as dark.
type TerminalDetector struct {
	getenv func(string) string
}

// NewTerminalDetector creates a COLORFGBG-based detector.
func NewTerminalDetector() *TerminalDetector {
	return &TerminalDetector{getenv: os.Getenv}
}

// Name implements port.ColorSchemeDetector.
func (*TerminalDetector) Name() string {
	return detectorNameTerminal
}

// Priority implements port.ColorSchemeDetector.
func (*TerminalDetector) Priority() int {
	return priorityTerminal
}

// Available implements port.ColorSchemeDetector.
func (d *TerminalDetector) Available() bool {
	return d.getenv("COLORFGBG") != ""
}

// Detect implements port.ColorSchemeDetector.
func (d *TerminalDetector) Detect() (prefersDark, ok bool) {
	value := d.getenv("COLORFGBG")
	idx := strings.LastIndexByte(value, ';')
	if idx < 0 {
		return false, false
	}
	bg, err := strconv.Atoi(value[idx+1:])
	if err != nil {
		return false, false
	}
	return bg != 7 && bg != 15, true
}

// EnvDetector detects color scheme from the GTK_THEME environment variable.
type EnvDetector struct {
	getenv func(string) string
}

// NewEnvDetector creates a new environment variable-based detector.
func NewEnvDetector() *EnvDetector {
	return &EnvDetector{getenv: os.Getenv}
}

// Name implements port.ColorSchemeDetector.
func (*EnvDetector) Name() string {
	return detectorNameEnv
}

// Priority implements port.ColorSchemeDetector.
func (*EnvDetector) Priority() int {
	return priorityEnv
}

// Available implements port.ColorSchemeDetector.
func (d *EnvDetector) Available() bool {
	return d.getenv("GTK_THEME") != ""
}

// Detect implements port.ColorSchemeDetector. Any theme name containing
// "dark" counts as dark, everything else as light.
func (d *EnvDetector) Detect() (prefersDark, ok bool) {
	gtkTheme := d.getenv("GTK_THEME")
	if gtkTheme == "" {
		return false, false
	}
	return strings.Contains(strings.ToLower(gtkTheme), "dark"), true
}
