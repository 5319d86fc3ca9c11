package config

// Config is the complete dockyard configuration.
type Config struct {
	Logging    LoggingConfig    `mapstructure:"logging" toml:"logging" json:"logging"`
	Appearance AppearanceConfig `mapstructure:"appearance" toml:"appearance" json:"appearance"`
	Windows    WindowsConfig    `mapstructure:"windows" toml:"windows" json:"windows"`
	Replay     ReplayConfig     `mapstructure:"replay" toml:"replay" json:"replay"`
}

// LoggingConfig holds logging preferences.
type LoggingConfig struct {
	Level  string `mapstructure:"level" toml:"level" json:"level" jsonschema:"enum=trace,enum=debug,enum=info,enum=warn,enum=error,enum=off"`
	Format string `mapstructure:"format" toml:"format" json:"format" jsonschema:"enum=console,enum=json"`

	// File logging, used by the interactive commands where stderr belongs
	// to the terminal UI. An empty LogDir means $XDG_STATE_HOME/dockyard/logs.
	LogDir     string `mapstructure:"log_dir" toml:"log_dir" json:"log_dir"`
	MaxSizeMB  int    `mapstructure:"max_size_mb" toml:"max_size_mb" json:"max_size_mb" jsonschema:"minimum=1"`
	MaxBackups int    `mapstructure:"max_backups" toml:"max_backups" json:"max_backups" jsonschema:"minimum=0"`
	MaxAgeDays int    `mapstructure:"max_age_days" toml:"max_age_days" json:"max_age_days" jsonschema:"minimum=0"`
	Compress   bool   `mapstructure:"compress" toml:"compress" json:"compress"`
}

// AppearanceConfig selects the active theme and tunes both palettes.
type AppearanceConfig struct {
	// Theme is the palette applied at startup: "dark", "light", or "auto"
	// to follow the terminal or desktop preference.
	Theme       string `mapstructure:"theme" toml:"theme" json:"theme" jsonschema:"enum=dark,enum=light,enum=auto"`
	FontFamily  string `mapstructure:"font_family" toml:"font_family" json:"font_family"`
	Radius      int    `mapstructure:"radius" toml:"radius" json:"radius" jsonschema:"minimum=0"`
	Spacing     int    `mapstructure:"spacing" toml:"spacing" json:"spacing" jsonschema:"minimum=0"`
	BorderWidth int    `mapstructure:"border_width" toml:"border_width" json:"border_width" jsonschema:"minimum=0"`

	// Palette overrides; empty fields keep the built-in colors.
	DarkPalette  ColorPalette `mapstructure:"dark_palette" toml:"dark_palette" json:"dark_palette"`
	LightPalette ColorPalette `mapstructure:"light_palette" toml:"light_palette" json:"light_palette"`
}

// ColorPalette holds hex color overrides for one theme.
type ColorPalette struct {
	Background string `mapstructure:"background" toml:"background" json:"background,omitempty"`
	Surface    string `mapstructure:"surface" toml:"surface" json:"surface,omitempty"`
	Muted      string `mapstructure:"muted" toml:"muted" json:"muted,omitempty"`
	Border     string `mapstructure:"border" toml:"border" json:"border,omitempty"`
	Primary    string `mapstructure:"primary" toml:"primary" json:"primary,omitempty"`
	Text       string `mapstructure:"text" toml:"text" json:"text,omitempty"`
	TextMuted  string `mapstructure:"text_muted" toml:"text_muted" json:"text_muted,omitempty"`
	Danger     string `mapstructure:"danger" toml:"danger" json:"danger,omitempty"`
	Highlight  string `mapstructure:"highlight" toml:"highlight" json:"highlight,omitempty"`
}

// WindowsConfig controls floating window placement.
type WindowsConfig struct {
	DefaultX      int `mapstructure:"default_x" toml:"default_x" json:"default_x"`
	DefaultY      int `mapstructure:"default_y" toml:"default_y" json:"default_y"`
	DefaultWidth  int `mapstructure:"default_width" toml:"default_width" json:"default_width" jsonschema:"minimum=1"`
	DefaultHeight int `mapstructure:"default_height" toml:"default_height" json:"default_height" jsonschema:"minimum=1"`
	MinWidth      int `mapstructure:"min_width" toml:"min_width" json:"min_width" jsonschema:"minimum=1"`
	MinHeight     int `mapstructure:"min_height" toml:"min_height" json:"min_height" jsonschema:"minimum=1"`
	InitialZ      int `mapstructure:"initial_z" toml:"initial_z" json:"initial_z" jsonschema:"minimum=0"`
}

// ReplayConfig tunes `dockyard replay`.
type ReplayConfig struct {
	// Parallelism caps how many scripts run at once; 0 means unlimited.
	Parallelism int `mapstructure:"parallelism" toml:"parallelism" json:"parallelism" jsonschema:"minimum=0"`
}
