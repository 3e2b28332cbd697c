package initializer

import (
	"log/slog"
	"os"

	"github.com/amirasaad/ledger/pkg/config"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"
)

var (
	infoColor  = lipgloss.AdaptiveColor{Light: "#04B575", Dark: "#04B575"}
	warnColor  = lipgloss.AdaptiveColor{Light: "#EE6FF8", Dark: "#EE6FF8"}
	errorColor = lipgloss.AdaptiveColor{Light: "#FF6B6B", Dark: "#FF6B6B"}
	debugColor = lipgloss.AdaptiveColor{Light: "#7E57C2", Dark: "#7E57C2"}
)

func levelStyle(icon string, color lipgloss.AdaptiveColor) lipgloss.Style {
	return lipgloss.NewStyle().SetString(icon).Bold(true).Padding(0, 1).Foreground(color)
}

func ledgerStyles() *log.Styles {
	styles := log.DefaultStyles()
	styles.Levels[log.ErrorLevel] = levelStyle("❌", errorColor)
	styles.Levels[log.InfoLevel] = levelStyle("ℹ️", infoColor)
	styles.Levels[log.WarnLevel] = levelStyle("⚠️", warnColor)
	styles.Levels[log.DebugLevel] = levelStyle("🐛", debugColor)

	keyColors := map[string]lipgloss.AdaptiveColor{
		"error":   errorColor,
		"warn":    warnColor,
		"user_id": infoColor,
		"acc_id":  infoColor,
		"id":      infoColor,
		"prefix":  debugColor,
		"caller":  debugColor,
		"time":    debugColor,
	}
	for key, color := range keyColors {
		styles.Keys[key] = lipgloss.NewStyle().Foreground(color)
		styles.Values[key] = lipgloss.NewStyle().Bold(true)
	}
	return styles
}

// setupLogger builds the process logger on top of charmbracelet/log and
// installs it as the slog default.
func setupLogger(cfg *config.Log) *slog.Logger {
	if cfg == nil {
		cfg = &config.Log{Format: "text", TimeFormat: "2006-01-02 15:04:05", Prefix: "[ledger]"}
	}
	formatter := log.TextFormatter
	switch cfg.Format {
	case "json":
		formatter = log.JSONFormatter
	case "logfmt":
		formatter = log.LogfmtFormatter
	}

	logger := log.NewWithOptions(os.Stdout, log.Options{
		ReportCaller:    true,
		ReportTimestamp: true,
		TimeFormat:      cfg.TimeFormat,
		Level:           log.Level(cfg.Level),
		Prefix:          cfg.Prefix,
		Formatter:       formatter,
	})
	logger.SetStyles(ledgerStyles())

	slogger := slog.New(logger)
	slog.SetDefault(slogger)
	return slogger
}
