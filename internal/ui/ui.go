// Package ui provides console output for the sensor-extractor CLI.
package ui

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/fatih/color"
)

// InitUI applies the global color setting.
func InitUI(noColor bool) {
	if noColor {
		color.NoColor = true
	}
}

// Console writes user-facing messages. Status lines go to out, errors to errOut.
type Console struct {
	out    io.Writer
	errOut io.Writer
	quiet  bool
}

// NewConsole creates a console on stdout and stderr.
func NewConsole() *Console {
	return NewConsoleWriters(os.Stdout, os.Stderr)
}

// NewConsoleWriters creates a console on the given writers.
func NewConsoleWriters(out, errOut io.Writer) *Console {
	return &Console{out: out, errOut: errOut}
}

// SetQuiet suppresses everything but errors. Used when stdout carries data.
func (c *Console) SetQuiet(quiet bool) {
	c.quiet = quiet
}

// Quiet reports whether status output is suppressed.
func (c *Console) Quiet() bool {
	return c.quiet
}

// Out is the writer status output goes to.
func (c *Console) Out() io.Writer {
	return c.out
}

// ErrOut is the writer errors and transient progress go to.
func (c *Console) ErrOut() io.Writer {
	return c.errOut
}

// Success prints a success message.
func (c *Console) Success(format string, args ...interface{}) {
	if c.quiet {
		return
	}
	color.New(color.FgGreen).Fprintf(c.out, "✓ %s\n", fmt.Sprintf(format, args...))
}

// Warning prints a warning message.
func (c *Console) Warning(format string, args ...interface{}) {
	if c.quiet {
		return
	}
	color.New(color.FgYellow).Fprintf(c.out, "⚠ %s\n", fmt.Sprintf(format, args...))
}

// Info prints an informational message.
func (c *Console) Info(format string, args ...interface{}) {
	if c.quiet {
		return
	}
	color.New(color.FgCyan).Fprintf(c.out, "ℹ %s\n", fmt.Sprintf(format, args...))
}

// Error prints an error message. It is never suppressed.
func (c *Console) Error(format string, args ...interface{}) {
	color.New(color.FgRed).Fprintf(c.errOut, "✗ %s\n", fmt.Sprintf(format, args...))
}

// Section displays a section header.
func (c *Console) Section(title string) {
	if c.quiet {
		return
	}
	color.New(color.Bold).Fprintf(c.out, "\n%s\n", title)
	fmt.Fprintf(c.out, "%s\n\n", strings.Repeat("=", len([]rune(title))))
}

// KeyValue displays a key-value pair.
func (c *Console) KeyValue(key, value string) {
	if c.quiet {
		return
	}
	fmt.Fprintf(c.out, "  %s: %s\n", key, value)
}
