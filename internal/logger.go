package internal

import (
	"log/slog"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"
)

// NewLogger builds the application logger from the logging configuration
// and returns it as a *slog.Logger. Logs go to stderr so command output
// on stdout stays clean.
func NewLogger(cfg *Config) *slog.Logger {
	level, err := log.ParseLevel(cfg.Log.Level)
	if err != nil {
		level = log.InfoLevel
	}

	formatter := log.TextFormatter
	if cfg.Log.Format == "json" {
		formatter = log.JSONFormatter
	}

	logger := log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		Level:           level,
		Prefix:          DefaultAppName,
		Formatter:       formatter,
	})
	logger.SetStyles(loggerStyles())

	return slog.New(logger)
}

// loggerStyles colors the level badges and leaves the rest of the default
// styling alone.
func loggerStyles() *log.Styles {
	styles := log.DefaultStyles()

	styles.Levels[log.DebugLevel] = lipgloss.NewStyle().
		SetString("DEBUG").
		Bold(true).
		Foreground(lipgloss.AdaptiveColor{Light: "#7E57C2", Dark: "#7E57C2"})
	styles.Levels[log.InfoLevel] = lipgloss.NewStyle().
		SetString("INFO").
		Bold(true).
		Foreground(lipgloss.AdaptiveColor{Light: "#04B575", Dark: "#04B575"})
	styles.Levels[log.WarnLevel] = lipgloss.NewStyle().
		SetString("WARN").
		Bold(true).
		Foreground(lipgloss.AdaptiveColor{Light: "#FFB454", Dark: "#FFB454"})
	styles.Levels[log.ErrorLevel] = lipgloss.NewStyle().
		SetString("ERROR").
		Bold(true).
		Foreground(lipgloss.AdaptiveColor{Light: "#FF6B6B", Dark: "#FF6B6B"})

	return styles
}
