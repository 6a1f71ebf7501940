// Package console prints teardown progress to the terminal and mirrors every
// line to a durable run log.
package console

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/charmbracelet/lipgloss"
	"github.com/go-logr/logr"
)

// LogFileName is the run log written inside the log directory.
const LogFileName = "script-delete.log"

var (
	colorGreen  = lipgloss.Color("#22c55e")
	colorRed    = lipgloss.Color("#ef4444")
	colorYellow = lipgloss.Color("#eab308")
	colorBlue   = lipgloss.Color("#3b82f6")
)

// Reporter writes styled lines to a terminal and plain structured records to
// a logr sink.
type Reporter struct {
	mu     sync.Mutex
	out    io.Writer
	log    logr.Logger
	closer io.Closer

	info    lipgloss.Style
	success lipgloss.Style
	warn    lipgloss.Style
	fail    lipgloss.Style
}

// New creates a reporter that prints to out and mirrors to sink. A nil sink
// discards the mirror.
func New(out io.Writer, sink io.Writer) *Reporter {
	log := logr.Discard()
	if sink != nil {
		log = logr.FromSlogHandler(slog.NewTextHandler(sink, nil))
	}

	renderer := lipgloss.NewRenderer(out)
	return &Reporter{
		out:     out,
		log:     log,
		info:    renderer.NewStyle().Foreground(colorBlue),
		success: renderer.NewStyle().Foreground(colorGreen),
		warn:    renderer.NewStyle().Foreground(colorYellow),
		fail:    renderer.NewStyle().Foreground(colorRed).Bold(true),
	}
}

// Open creates a reporter whose mirror is appended to LogFileName in logDir.
// The directory is created if needed. Callers must Close the reporter.
func Open(out io.Writer, logDir string) (*Reporter, error) {
	if err := os.MkdirAll(logDir, 0o750); err != nil {
		return nil, fmt.Errorf("failed to create log directory %s: %w", logDir, err)
	}
	path := filepath.Join(logDir, LogFileName)
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600) //nolint:gosec // path is built from the configured log dir
	if err != nil {
		return nil, fmt.Errorf("failed to open log file %s: %w", path, err)
	}

	r := New(out, f)
	r.closer = f
	return r, nil
}

// Close flushes and closes the run log, if one was opened.
func (r *Reporter) Close() error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.closer == nil {
		return nil
	}
	err := r.closer.Close()
	r.closer = nil
	return err
}

// Printf prints an unstyled line.
func (r *Reporter) Printf(format string, v ...any) {
	r.emit(lipgloss.NewStyle(), "info", format, v...)
}

// Infof prints an informational line.
func (r *Reporter) Infof(format string, v ...any) {
	r.emit(r.info, "info", format, v...)
}

// Successf prints a success line.
func (r *Reporter) Successf(format string, v ...any) {
	r.emit(r.success, "success", format, v...)
}

// Warnf prints a warning line.
func (r *Reporter) Warnf(format string, v ...any) {
	r.emit(r.warn, "warning", format, v...)
}

// Errorf prints an error line.
func (r *Reporter) Errorf(format string, v ...any) {
	r.emit(r.fail, "error", format, v...)
}

func (r *Reporter) emit(style lipgloss.Style, severity, format string, v ...any) {
	msg := strings.TrimRight(fmt.Sprintf(format, v...), "\n")

	r.mu.Lock()
	defer r.mu.Unlock()

	fmt.Fprintln(r.out, style.Render(msg))
	if severity == "error" {
		r.log.Error(nil, msg)
		return
	}
	r.log.Info(msg, "severity", severity)
}
