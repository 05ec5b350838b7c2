package system

import (
	"io"
	"os"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	clog "github.com/charmbracelet/log"
)

// TraceLevel sits below debug for very chatty request/response diagnostics.
const TraceLevel = clog.DebugLevel - 4

// DevMode reports whether the runtime mode is "development". Debug and trace
// output is emitted only in that mode.
func DevMode() bool {
	return strings.EqualFold(strings.TrimSpace(os.Getenv("ITEMCTL_ENV")), "development")
}

// Logger is a leveled diagnostic logger bound to a component name.
// It prints timestamped lines to a console sink and never panics; context
// values that cannot be serialized are rendered by logfmt best-effort.
type Logger struct {
	l *clog.Logger
}

// NewLogger returns a logger for the named component writing to stderr.
func NewLogger(component string) *Logger {
	return NewLoggerTo(os.Stderr, component)
}

// NewLoggerTo returns a logger for the named component writing to w.
func NewLoggerTo(w io.Writer, component string) *Logger {
	l := clog.NewWithOptions(w, clog.Options{
		ReportTimestamp: true,
		TimeFormat:      time.RFC3339,
		Prefix:          component,
	})
	styles := clog.DefaultStyles()
	styles.Levels[TraceLevel] = lipgloss.NewStyle().SetString("TRACE").Foreground(lipgloss.Color("8"))
	l.SetStyles(styles)
	if DevMode() {
		l.SetLevel(TraceLevel)
	} else {
		l.SetLevel(clog.InfoLevel)
	}
	return &Logger{l: l}
}

// Info logs a message with optional key/value context.
func (g *Logger) Info(msg string, kv ...any) { g.l.Info(msg, kv...) }

// Debug logs a message in development mode only.
func (g *Logger) Debug(msg string, kv ...any) { g.l.Debug(msg, kv...) }

// Warn logs a warning.
func (g *Logger) Warn(msg string, kv ...any) { g.l.Warn(msg, kv...) }

// Trace logs at trace level in development mode only.
func (g *Logger) Trace(msg string, kv ...any) { g.l.Log(TraceLevel, msg, kv...) }

// Error logs an error. When err is non-nil its message is appended to the
// structured context under the "err" key.
func (g *Logger) Error(msg string, err error, kv ...any) {
	if err != nil {
		kv = append(kv, "err", err)
	}
	g.l.Error(msg, kv...)
}

// Default is the shared application logger for CLI output.
var Default = NewLogger("itemctl")
