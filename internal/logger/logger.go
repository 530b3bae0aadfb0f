// Package logger builds the slog logger shared by every component.
package logger

import (
	"io"
	"log/slog"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"
	"github.com/hance08/concil/internal/config"
)

// New returns a charm backed slog logger writing to w. Unknown levels fall
// back to warn and unknown formats to text.
func New(cfg config.LogConfig, w io.Writer) *slog.Logger {
	level, err := log.ParseLevel(cfg.Level)
	if err != nil {
		level = log.WarnLevel
	}

	formatters := map[string]log.Formatter{
		"json":   log.JSONFormatter,
		"text":   log.TextFormatter,
		"logfmt": log.LogfmtFormatter,
	}
	formatter := log.TextFormatter
	if f, ok := formatters[cfg.Format]; ok {
		formatter = f
	}

	handler := log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		TimeFormat:      cfg.TimeFormat,
		Level:           level,
		Prefix:          cfg.Prefix,
		Formatter:       formatter,
	})
	handler.SetStyles(styles())

	return slog.New(handler)
}

func styles() *log.Styles {
	s := log.DefaultStyles()

	colors := map[log.Level]lipgloss.AdaptiveColor{
		log.DebugLevel: {Light: "#7E57C2", Dark: "#7E57C2"},
		log.InfoLevel:  {Light: "#04B575", Dark: "#04B575"},
		log.WarnLevel:  {Light: "#EE6FF8", Dark: "#EE6FF8"},
		log.ErrorLevel: {Light: "#FF6B6B", Dark: "#FF6B6B"},
	}
	for level, color := range colors {
		s.Levels[level] = s.Levels[level].Bold(true).Foreground(color)
	}

	s.Keys["error"] = lipgloss.NewStyle().Foreground(colors[log.ErrorLevel])
	s.Values["error"] = lipgloss.NewStyle().Bold(true)
	s.Keys["id"] = lipgloss.NewStyle().Foreground(colors[log.InfoLevel])
	return s
}
