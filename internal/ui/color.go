package ui

import (
	"fmt"
	"io"

	"github.com/fatih/color"
)

var (
	successColor = color.New(color.FgGreen)
	infoColor    = color.New(color.FgBlue)
	warnColor    = color.New(color.FgYellow)
	errorColor   = color.New(color.FgRed, color.Bold)
)

// Success prints a green line to w.
func Success(w io.Writer, format string, args ...any) {
	successColor.Fprintln(w, fmt.Sprintf(format, args...))
}

// Info prints a blue line to w.
func Info(w io.Writer, format string, args ...any) {
	infoColor.Fprintln(w, fmt.Sprintf(format, args...))
}

// Warn prints a yellow line to w.
func Warn(w io.Writer, format string, args ...any) {
	warnColor.Fprintln(w, fmt.Sprintf(format, args...))
}

// Error prints a bold red line to w.
func Error(w io.Writer, format string, args ...any) {
	errorColor.Fprintln(w, fmt.Sprintf(format, args...))
}
