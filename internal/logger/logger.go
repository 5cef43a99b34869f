// Package logger owns the process-wide slog logger. Call InitFromConfig
// once at startup; L() falls back to text at info level before that.
package logger

import (
	"io"
	"log/slog"
	"os"
	"strings"
	"sync/atomic"
	"time"

	"github.com/mattn/go-isatty"

	"github.com/oggyb/lovespark/internal/config"
)

// ServiceName is attached to every record as "service".
const ServiceName = "lovespark"

type Format string

const (
	FormatJSON Format = "json"
	FormatText Format = "text"
	// FormatAuto picks text on an interactive terminal and JSON otherwise.
	FormatAuto Format = "auto"
)

type Config struct {
	Level      string
	Format     Format
	Component  string
	WithSource bool
	// Output defaults to os.Stdout.
	Output io.Writer
}

var current atomic.Pointer[slog.Logger]

// InitFromConfig initializes the global logger from app config.
func InitFromConfig(c *config.Config) {
	if c == nil {
		Init(nil)
		return
	}
	Init(&Config{
		Level:      c.Log.Level,
		Format:     Format(c.Log.Format),
		Component:  c.Log.Component,
		WithSource: c.Log.Source,
	})
}

// Init builds the global logger and makes it slog's default as well.
// Safe to call multiple times; nil means defaults.
func Init(c *Config) {
	if c == nil {
		c = &Config{Level: "info", Format: FormatText}
	}
	out := c.Output
	if out == nil {
		out = os.Stdout
	}

	base := slog.New(newHandler(out, resolveFormat(c.Format, out), c)).With("service", ServiceName)
	if c.Component != "" {
		base = base.With("component", c.Component)
	}
	current.Store(base)
	slog.SetDefault(base)
}

// L returns the global logger. Always returns a non-nil instance.
func L() *slog.Logger {
	if l := current.Load(); l != nil {
		return l
	}
	Init(nil)
	return current.Load()
}

// With creates a child logger with additional attributes.
func With(args ...any) *slog.Logger { return L().With(args...) }

func Debug(msg string, args ...any) { L().Debug(msg, args...) }
func Info(msg string, args ...any)  { L().Info(msg, args...) }
func Warn(msg string, args ...any)  { L().Warn(msg, args...) }
func Error(msg string, args ...any) { L().Error(msg, args...) }

func newHandler(out io.Writer, format Format, c *Config) slog.Handler {
	opts := &slog.HandlerOptions{
		Level:     parseLevel(c.Level),
		AddSource: c.WithSource,
	}
	if format == FormatJSON {
		return slog.NewJSONHandler(out, opts)
	}
	// short local timestamps read better on a console
	opts.ReplaceAttr = func(_ []string, a slog.Attr) slog.Attr {
		if a.Key == slog.TimeKey {
			return slog.String(slog.TimeKey, a.Value.Time().Format(time.DateTime))
		}
		return a
	}
	return slog.NewTextHandler(out, opts)
}

// resolveFormat maps auto to text when out is a terminal.
func resolveFormat(f Format, out io.Writer) Format {
	switch Format(strings.ToLower(strings.TrimSpace(string(f)))) {
	case FormatJSON:
		return FormatJSON
	case FormatAuto:
		if file, ok := out.(*os.File); ok {
			fd := file.Fd()
			if isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd) {
				return FormatText
			}
		}
		return FormatJSON
	default:
		return FormatText
	}
}

func parseLevel(s string) slog.Leveler {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
