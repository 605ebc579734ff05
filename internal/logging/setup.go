// Package logging configures the process logger.
package logging

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/log"
	"gopkg.in/natefinch/lumberjack.v2"

	"github.com/bnema/hoard/internal/config"
)

// Setup builds the logger described by cfg and installs it as the default
// charmbracelet logger. When cfg.File is set, output is also written to a
// rotated log file; the returned closer releases it. HOARD_LOG_LEVEL
// overrides cfg.Level, and verbose forces debug.
func Setup(cfg config.LogConfig, stderr io.Writer, verbose bool) (*log.Logger, io.Closer, error) {
	levelName := cfg.Level
	if env := os.Getenv("HOARD_LOG_LEVEL"); env != "" {
		levelName = env
	}
	level, err := log.ParseLevel(strings.ToLower(levelName))
	if err != nil {
		level = log.InfoLevel
	}
	if verbose {
		level = log.DebugLevel
	}

	var (
		out    = stderr
		closer io.Closer = nopCloser{}
	)
	if cfg.File != "" {
		// Create logs directory with secure permissions (0700 - owner only)
		if err := os.MkdirAll(filepath.Dir(cfg.File), 0o700); err != nil {
			return nil, nil, fmt.Errorf("failed to create logs directory: %w", err)
		}
		file := &lumberjack.Logger{
			Filename:   cfg.File,
			MaxSize:    cfg.MaxSize,
			MaxBackups: cfg.MaxBackups,
			MaxAge:     cfg.MaxAge,
			Compress:   cfg.Compress,
		}
		out = io.MultiWriter(stderr, file)
		closer = file
	}

	logger := log.NewWithOptions(out, log.Options{
		Level:           level,
		ReportTimestamp: true,
		TimeFormat:      "15:04:05",
	})
	log.SetDefault(logger)

	if err != nil {
		logger.Warn("invalid log level, using info", "level", levelName)
	}
	if cfg.File != "" {
		logger.Debug("file logging initialized", "file", cfg.File, "level", level.String())
	}
	return logger, closer, nil
}

type nopCloser struct{}

func (nopCloser) Close() error { return nil }
