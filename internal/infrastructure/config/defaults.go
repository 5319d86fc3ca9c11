package config

// Default configuration constants
const (
	defaultLogLevel  = "info"
	defaultLogFormat = "console"

	defaultLogMaxSizeMB  = 10
	defaultLogMaxBackups = 3
	defaultLogMaxAgeDays = 7

	defaultTheme       = "dark"
	defaultFontFamily  = `"Space Grotesk", "Segoe UI", system-ui, -apple-system, sans-serif`
	defaultRadius      = 8
	defaultSpacing     = 8
	defaultBorderWidth = 1

	// Floating windows
	defaultWindowX      = 140
	defaultWindowY      = 140
	defaultWindowWidth  = 420
	defaultWindowHeight = 320
	defaultMinWidth     = 240
	defaultMinHeight    = 160
	defaultInitialZ     = 10

	defaultReplayParallelism = 4
)

// DefaultConfig returns the built-in configuration. Palette overrides are
// empty so the theme package's colors apply.
func DefaultConfig() *Config {
	return &Config{
		Logging: LoggingConfig{
			Level:      defaultLogLevel,
			Format:     defaultLogFormat,
			MaxSizeMB:  defaultLogMaxSizeMB,
			MaxBackups: defaultLogMaxBackups,
			MaxAgeDays: defaultLogMaxAgeDays,
			Compress:   true,
		},
		Appearance: AppearanceConfig{
			Theme:       defaultTheme,
			FontFamily:  defaultFontFamily,
			Radius:      defaultRadius,
			Spacing:     defaultSpacing,
			BorderWidth: defaultBorderWidth,
		},
		Windows: WindowsConfig{
			DefaultX:      defaultWindowX,
			DefaultY:      defaultWindowY,
			DefaultWidth:  defaultWindowWidth,
			DefaultHeight: defaultWindowHeight,
			MinWidth:      defaultMinWidth,
			MinHeight:     defaultMinHeight,
			InitialZ:      defaultInitialZ,
		},
		Replay: ReplayConfig{
			Parallelism: defaultReplayParallelism,
		},
	}
}
