// Package cli wires configuration, logging, and the arrangement store for
// the dockyard commands.
package cli

import (
	"context"
	"time"

	"github.com/bnema/dockyard/internal/application/arrangement"
	"github.com/bnema/dockyard/internal/cli/styles"
	"github.com/bnema/dockyard/internal/domain/build"
	"github.com/bnema/dockyard/internal/infrastructure/colorscheme"
	"github.com/bnema/dockyard/internal/infrastructure/config"
	"github.com/bnema/dockyard/internal/logging"
	"github.com/bnema/dockyard/internal/ui/theme"
)

// AppOptions tunes NewApp per command.
type AppOptions struct {
	// LogToFile sends logs to the rotated log file instead of stderr, for
	// commands that own the terminal.
	LogToFile bool
}

// App holds CLI dependencies.
type App struct {
	Config    *config.Config
	ConfigMgr *config.Manager
	Themes    *theme.Manager
	Theme     *styles.Theme
	BuildInfo build.Info

	// ConfigErr is set when the config file could not be loaded and the
	// defaults are in use.
	ConfigErr error

	// Context with logger
	ctx        context.Context
	logCleanup func()
}

// NewApp loads configuration and builds the logger and theme manager.
func NewApp(opts AppOptions) (*App, error) {
	mgr, cfg, cfgErr := loadConfig()

	logCfg := logging.Config{
		Level:      logging.ParseLevel(cfg.Logging.Level),
		Format:     cfg.Logging.Format,
		TimeFormat: time.TimeOnly,
	}

	var fileCfg logging.FileConfig
	if opts.LogToFile {
		dir, err := config.GetLogDir(cfg.Logging.LogDir)
		if err != nil {
			return nil, err
		}
		fileCfg = logging.FileConfig{
			Enabled:    true,
			Dir:        dir,
			MaxSizeMB:  cfg.Logging.MaxSizeMB,
			MaxBackups: cfg.Logging.MaxBackups,
			MaxAgeDays: cfg.Logging.MaxAgeDays,
			Compress:   cfg.Logging.Compress,
		}
	}

	logger, logCleanup, err := logging.NewWithFile(logCfg, fileCfg)
	if err != nil {
		// Keep going on stderr; the terminal UI may be garbled but usable.
		logger.Warn().Err(err).Msg("file logging unavailable")
	}
	ctx := logging.WithContext(context.Background(), logger)

	if cfgErr != nil {
		logger.Warn().Err(cfgErr).Msg("using default configuration")
	}

	resolver := colorscheme.NewResolver(colorscheme.DefaultDetectors()...)
	themes := theme.NewManager(ctx, cfg, theme.WithSchemeResolver(resolver))

	return &App{
		Config:     cfg,
		ConfigMgr:  mgr,
		Themes:     themes,
		Theme:      styles.NewTheme(themes.DefaultTheme()),
		ConfigErr:  cfgErr,
		ctx:        ctx,
		logCleanup: logCleanup,
	}, nil
}

// NewStore creates an arrangement store using the configured window
// defaults and theme manager.
func (a *App) NewStore(opts ...arrangement.Option) *arrangement.Store {
	base := []arrangement.Option{
		arrangement.WithThemeProvider(a.Themes),
		arrangement.WithWindowDefaults(WindowDefaults(a.Config.Windows)),
	}
	return arrangement.New(a.ctx, append(base, opts...)...)
}

// Close releases all resources.
func (a *App) Close() error {
	if a.logCleanup != nil {
		a.logCleanup()
	}
	return nil
}

// Ctx returns the application context with logger.
func (a *App) Ctx() context.Context {
	return a.ctx
}

// WindowDefaults maps the [windows] config section onto store defaults.
func WindowDefaults(w config.WindowsConfig) arrangement.WindowDefaults {
	return arrangement.WindowDefaults{
		X:         w.DefaultX,
		Y:         w.DefaultY,
		Width:     w.DefaultWidth,
		Height:    w.DefaultHeight,
		MinWidth:  w.MinWidth,
		MinHeight: w.MinHeight,
		InitialZ:  w.InitialZ,
	}
}

// loadConfig loads configuration from standard locations, falling back to
// the defaults when the file is unusable.
func loadConfig() (*config.Manager, *config.Config, error) {
	mgr, err := config.NewManager()
	if err != nil {
		return nil, config.DefaultConfig(), err
	}
	if err := mgr.Load(); err != nil {
		return mgr, config.DefaultConfig(), err
	}
	return mgr, mgr.Get(), nil
}
