package logging

import (
	"io"
	"os"

	"github.com/rs/zerolog"
)

// FileConfig enables writing logs to a rotated file.
type FileConfig struct {
	Enabled       bool
	Dir           string
	MaxSizeMB     int
	MaxBackups    int
	MaxAgeDays    int
	Compress      bool
	WriteToStderr bool // also keep the stderr output
}

// NewWithFile creates a logger that writes to a rotated file in addition to,
// or instead of, stderr. The returned cleanup closes the file. When the file
// cannot be opened the stderr logger is returned together with the error.
func NewWithFile(cfg Config, fileCfg FileConfig) (zerolog.Logger, func(), error) {
	noop := func() {}
	if !fileCfg.Enabled {
		return New(cfg), noop, nil
	}

	rotator, err := NewLogRotator(fileCfg.Dir, fileCfg.MaxSizeMB, fileCfg.MaxBackups, fileCfg.MaxAgeDays, fileCfg.Compress)
	if err != nil {
		return New(cfg), noop, err
	}

	var fileOut io.Writer = rotator
	if cfg.Format == "console" {
		fileOut = zerolog.ConsoleWriter{Out: rotator, TimeFormat: cfg.TimeFormat, NoColor: true}
	}

	out := fileOut
	if fileCfg.WriteToStderr {
		stderr := cfg.Output
		if stderr == nil {
			stderr = os.Stderr
		}
		var errOut io.Writer = stderr
		if cfg.Format == "console" {
			errOut = zerolog.ConsoleWriter{Out: stderr, TimeFormat: cfg.TimeFormat}
		}
		out = zerolog.MultiLevelWriter(fileOut, errOut)
	}

	logger := zerolog.New(out).
		Level(cfg.Level).
		With().
		Timestamp().
		Logger()

	return logger, func() { _ = rotator.Close() }, nil
}
