package config

import (
	"errors"
	"fmt"
	"regexp"
	"slices"
	"strings"
)

// ErrInvalidConfig wraps every validation failure.
var ErrInvalidConfig = errors.New("invalid configuration")

var hexColor = regexp.MustCompile(`^#(?:[0-9a-fA-F]{3}|[0-9a-fA-F]{6}|[0-9a-fA-F]{8})$`)

// validateConfig collects every problem instead of stopping at the first.
func validateConfig(config *Config) error {
	var validationErrors []string

	validationErrors = append(validationErrors, validateLogging(config)...)
	validationErrors = append(validationErrors, validateAppearance(config)...)
	validationErrors = append(validationErrors, validateWindows(config)...)
	if config.Replay.Parallelism < 0 {
		validationErrors = append(validationErrors, "replay.parallelism must be non-negative")
	}

	if len(validationErrors) > 0 {
		return fmt.Errorf("%w:\n  - %s", ErrInvalidConfig, strings.Join(validationErrors, "\n  - "))
	}
	return nil
}

func validateLogging(config *Config) []string {
	var validationErrors []string
	levels := []string{"trace", "debug", "info", "warn", "warning", "error", "off", "disabled"}
	if !slices.Contains(levels, config.Logging.Level) {
		validationErrors = append(validationErrors,
			fmt.Sprintf("logging.level %q must be one of trace, debug, info, warn, error, off", config.Logging.Level))
	}
	if config.Logging.Format != "console" && config.Logging.Format != "json" {
		validationErrors = append(validationErrors,
			fmt.Sprintf("logging.format %q must be console or json", config.Logging.Format))
	}
	if config.Logging.MaxSizeMB < 1 {
		validationErrors = append(validationErrors, "logging.max_size_mb must be at least 1")
	}
	if config.Logging.MaxBackups < 0 || config.Logging.MaxAgeDays < 0 {
		validationErrors = append(validationErrors, "logging.max_backups and logging.max_age_days must be non-negative")
	}
	return validationErrors
}

func validateAppearance(config *Config) []string {
	var validationErrors []string
	a := config.Appearance
	if a.Theme != "dark" && a.Theme != "light" && a.Theme != "auto" {
		validationErrors = append(validationErrors,
			fmt.Sprintf("appearance.theme %q must be dark, light or auto", a.Theme))
	}
	if a.Radius < 0 || a.Spacing < 0 || a.BorderWidth < 0 {
		validationErrors = append(validationErrors, "appearance.radius, spacing and border_width must be non-negative")
	}
	validationErrors = append(validationErrors, validatePalette("appearance.dark_palette", a.DarkPalette)...)
	validationErrors = append(validationErrors, validatePalette("appearance.light_palette", a.LightPalette)...)
	return validationErrors
}

func validatePalette(section string, p ColorPalette) []string {
	var validationErrors []string
	fields := []struct {
		name  string
		value string
	}{
		{"background", p.Background},
		{"surface", p.Surface},
		{"muted", p.Muted},
		{"border", p.Border},
		{"primary", p.Primary},
		{"text", p.Text},
		{"text_muted", p.TextMuted},
		{"danger", p.Danger},
		{"highlight", p.Highlight},
	}
	for _, f := range fields {
		if f.value != "" && !hexColor.MatchString(f.value) {
			validationErrors = append(validationErrors,
				fmt.Sprintf("%s.%s %q must be a hex color like #1d232c", section, f.name, f.value))
		}
	}
	return validationErrors
}

func validateWindows(config *Config) []string {
	var validationErrors []string
	w := config.Windows
	if w.MinWidth < 1 || w.MinHeight < 1 {
		validationErrors = append(validationErrors, "windows.min_width and windows.min_height must be at least 1")
	}
	if w.DefaultWidth < w.MinWidth || w.DefaultHeight < w.MinHeight {
		validationErrors = append(validationErrors, "windows.default_width/default_height must not be below the minimum size")
	}
	if w.InitialZ < 0 {
		validationErrors = append(validationErrors, "windows.initial_z must be non-negative")
	}
	return validationErrors
}
