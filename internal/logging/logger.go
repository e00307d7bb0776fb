// Package logging builds the zap loggers used across buzzboard.
// Loggers are split into named categories so a log file can be filtered by subsystem.
// The interactive planner owns the terminal, so it only logs when a file is configured.
package logging

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"buzzboard/internal/config"
)

// Category represents a log category/system
type Category string

const (
	CategoryBoot      Category = "boot"      // Startup, config loading
	CategoryConfig    Category = "config"    // Config and schema files
	CategoryWizard    Category = "wizard"    // Questionnaire transitions
	CategoryRecommend Category = "recommend" // Derivation results
	CategoryDashboard Category = "dashboard" // Report rendering and export
	CategoryUI        Category = "ui"        // Terminal UI events
)

// ParseLevel maps debug/info/warn/error to a zap level. Unknown or empty
// values mean info.
func ParseLevel(s string) zapcore.Level {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return zapcore.DebugLevel
	case "warn", "warning":
		return zapcore.WarnLevel
	case "error":
		return zapcore.ErrorLevel
	default:
		return zapcore.InfoLevel
	}
}

// New builds a logger from cfg. Format "json" selects the production encoder,
// anything else the console encoder. Output goes to cfg.File when set,
// stderr otherwise.
func New(cfg config.LoggingConfig) (*zap.Logger, error) {
	var zc zap.Config
	if strings.EqualFold(cfg.Format, "json") {
		zc = zap.NewProductionConfig()
	} else {
		zc = zap.NewDevelopmentConfig()
		zc.Development = false
	}
	zc.Level = zap.NewAtomicLevelAt(ParseLevel(cfg.Level))
	zc.Sampling = nil

	if cfg.File != "" {
		if err := os.MkdirAll(filepath.Dir(cfg.File), 0755); err != nil {
			return nil, fmt.Errorf("failed to create log directory: %w", err)
		}
		zc.OutputPaths = []string{cfg.File}
		zc.ErrorOutputPaths = []string{cfg.File}
	} else {
		zc.OutputPaths = []string{"stderr"}
		zc.ErrorOutputPaths = []string{"stderr"}
	}

	logger, err := zc.Build()
	if err != nil {
		return nil, fmt.Errorf("failed to initialize logger: %w", err)
	}
	return logger, nil
}

// NewInteractive is New for the terminal UI: without a log file it returns a
// no-op logger so nothing is written over the screen.
func NewInteractive(cfg config.LoggingConfig) (*zap.Logger, error) {
	if cfg.File == "" {
		return zap.NewNop(), nil
	}
	return New(cfg)
}

// For returns the child logger for a category.
func For(l *zap.Logger, c Category) *zap.Logger {
	if l == nil {
		l = zap.NewNop()
	}
	return l.Named(string(c))
}

// WithSession tags every entry with the planning session id.
func WithSession(l *zap.Logger, sessionID string) *zap.Logger {
	return l.With(zap.String("session_id", sessionID))
}
