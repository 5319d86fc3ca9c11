// Package config loads dockyard's TOML configuration through viper, applies
// DOCKYARD_ environment overrides, and watches the file for live changes.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/spf13/viper"

	"github.com/bnema/dockyard/internal/logging"
)

// Manager handles configuration loading, watching, and reloading.
type Manager struct {
	config    *Config
	viper     *viper.Viper
	mu        sync.RWMutex
	callbacks []func(*Config)
	watching  bool
}

// NewManager creates a new configuration manager.
func NewManager() (*Manager, error) {
	v := viper.New()

	v.SetConfigName("config")
	v.SetConfigType("toml")

	configDir, err := GetConfigDir()
	if err != nil {
		return nil, fmt.Errorf("failed to determine config directory: %w\nCheck XDG_CONFIG_HOME environment variable or HOME directory", err)
	}
	v.AddConfigPath(configDir)

	// DOCKYARD_WINDOWS_MIN_WIDTH overrides windows.min_width, and so on.
	v.SetEnvPrefix("DOCKYARD")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Shared with logging.NewFromEnv, which runs before any config is read.
	if err := v.BindEnv("logging.level", "DOCKYARD_LOG_LEVEL"); err != nil {
		return nil, fmt.Errorf("failed to bind DOCKYARD_LOG_LEVEL: %w", err)
	}
	if err := v.BindEnv("logging.format", "DOCKYARD_LOG_FORMAT"); err != nil {
		return nil, fmt.Errorf("failed to bind DOCKYARD_LOG_FORMAT: %w", err)
	}
	if err := v.BindEnv("appearance.theme", "DOCKYARD_THEME"); err != nil {
		return nil, fmt.Errorf("failed to bind DOCKYARD_THEME: %w", err)
	}

	return &Manager{
		viper:     v,
		callbacks: make([]func(*Config), 0),
	}, nil
}

// Load reads the configuration file, creating a default one on first run,
// then applies environment overrides and validates the result.
func (m *Manager) Load() error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.setDefaults()

	if err := m.readConfigFile(); err != nil {
		return err
	}

	config, err := m.unmarshalConfig()
	if err != nil {
		return err
	}
	normalizeConfig(config)

	if err := validateConfig(config); err != nil {
		return fmt.Errorf("configuration validation failed: %w", err)
	}

	m.config = config
	return nil
}

func (m *Manager) readConfigFile() error {
	err := m.viper.ReadInConfig()
	if err == nil {
		return nil
	}

	var notFound viper.ConfigFileNotFoundError
	if !errors.As(err, &notFound) {
		configFile := m.viper.ConfigFileUsed()
		if configFile == "" {
			configFile, _ = GetConfigFile()
		}
		return fmt.Errorf("failed to read config file at %s: %w\nCheck the file format (must be valid TOML) and permissions", configFile, err)
	}

	if createErr := m.createDefaultConfig(); createErr != nil {
		configDir, _ := GetConfigDir()
		return fmt.Errorf(
			"failed to create default config at %s: %w\nTry creating the directory manually or check permissions",
			configDir,
			createErr,
		)
	}
	if rereadErr := m.viper.ReadInConfig(); rereadErr != nil {
		return fmt.Errorf("failed to read newly created config file: %w", rereadErr)
	}
	return nil
}

func (m *Manager) unmarshalConfig() (*Config, error) {
	config := &Config{}
	if err := m.viper.Unmarshal(config); err != nil {
		return nil, fmt.Errorf(
			"failed to parse config file at %s: %w\nCheck for syntax errors, invalid values, or type mismatches",
			m.viper.ConfigFileUsed(),
			err,
		)
	}
	return config, nil
}

func normalizeConfig(config *Config) {
	config.Logging.Level = strings.ToLower(strings.TrimSpace(config.Logging.Level))
	switch config.Logging.Level {
	case "warning":
		config.Logging.Level = "warn"
	case "disabled":
		config.Logging.Level = "off"
	case "":
		config.Logging.Level = defaultLogLevel
	}

	config.Logging.Format = strings.ToLower(strings.TrimSpace(config.Logging.Format))
	if config.Logging.Format == "" {
		config.Logging.Format = defaultLogFormat
	}

	config.Logging.LogDir = strings.TrimSpace(config.Logging.LogDir)

	config.Appearance.Theme = strings.ToLower(strings.TrimSpace(config.Appearance.Theme))
	if config.Appearance.Theme == "" {
		config.Appearance.Theme = defaultTheme
	}
	config.Appearance.FontFamily = strings.TrimSpace(config.Appearance.FontFamily)
	if config.Appearance.FontFamily == "" {
		config.Appearance.FontFamily = defaultFontFamily
	}
}

// Get returns a copy of the current configuration (thread-safe).
func (m *Manager) Get() *Config {
	m.mu.RLock()
	defer m.mu.RUnlock()

	if m.config == nil {
		return DefaultConfig()
	}
	configCopy := *m.config
	return &configCopy
}

// ConfigFile returns the path to the configuration file being used.
func (m *Manager) ConfigFile() string {
	return m.viper.ConfigFileUsed()
}

// createDefaultConfig writes the defaults to disk alongside a JSON schema
// editors can use for completion.
func (m *Manager) createDefaultConfig() error {
	configFile, err := GetConfigFile()
	if err != nil {
		return err
	}

	if err := os.MkdirAll(filepath.Dir(configFile), dirPerm); err != nil {
		return err
	}

	m.viper.SetConfigType("toml")
	if err := m.viper.SafeWriteConfigAs(configFile); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	log := logging.NewFromEnv()
	log.Info().Str("file", configFile).Msg("created default configuration file")

	if err := GenerateSchemaFile(filepath.Dir(configFile)); err != nil {
		log.Warn().Err(err).Msg("failed to write config schema")
	}
	return nil
}

// setDefaults sets default configuration values in Viper.
func (m *Manager) setDefaults() {
	defaults := DefaultConfig()

	m.viper.SetDefault("logging.level", defaults.Logging.Level)
	m.viper.SetDefault("logging.format", defaults.Logging.Format)
	m.viper.SetDefault("logging.log_dir", defaults.Logging.LogDir)
	m.viper.SetDefault("logging.max_size_mb", defaults.Logging.MaxSizeMB)
	m.viper.SetDefault("logging.max_backups", defaults.Logging.MaxBackups)
	m.viper.SetDefault("logging.max_age_days", defaults.Logging.MaxAgeDays)
	m.viper.SetDefault("logging.compress", defaults.Logging.Compress)

	m.setAppearanceDefaults(defaults)
	m.setWindowDefaults(defaults)

	m.viper.SetDefault("replay.parallelism", defaults.Replay.Parallelism)
}

func (m *Manager) setAppearanceDefaults(defaults *Config) {
	m.viper.SetDefault("appearance.theme", defaults.Appearance.Theme)
	m.viper.SetDefault("appearance.font_family", defaults.Appearance.FontFamily)
	m.viper.SetDefault("appearance.radius", defaults.Appearance.Radius)
	m.viper.SetDefault("appearance.spacing", defaults.Appearance.Spacing)
	m.viper.SetDefault("appearance.border_width", defaults.Appearance.BorderWidth)

	// Palette keys are registered so env overrides reach them; empty means
	// "use the built-in color".
	for _, palette := range []string{"dark_palette", "light_palette"} {
		for _, key := range paletteKeys {
			m.viper.SetDefault("appearance."+palette+"."+key, "")
		}
	}
}

var paletteKeys = []string{
	"background", "surface", "muted", "border", "primary",
	"text", "text_muted", "danger", "highlight",
}

func (m *Manager) setWindowDefaults(defaults *Config) {
	m.viper.SetDefault("windows.default_x", defaults.Windows.DefaultX)
	m.viper.SetDefault("windows.default_y", defaults.Windows.DefaultY)
	m.viper.SetDefault("windows.default_width", defaults.Windows.DefaultWidth)
	m.viper.SetDefault("windows.default_height", defaults.Windows.DefaultHeight)
	m.viper.SetDefault("windows.min_width", defaults.Windows.MinWidth)
	m.viper.SetDefault("windows.min_height", defaults.Windows.MinHeight)
	m.viper.SetDefault("windows.initial_z", defaults.Windows.InitialZ)
}
