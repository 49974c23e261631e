package ux

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-isatty"
)

// Text styles. lipgloss drops the colors when stdout is not a terminal.
var (
	Bold   = lipgloss.NewStyle().Bold(true)
	Dim    = lipgloss.NewStyle().Faint(true)
	Red    = lipgloss.NewStyle().Foreground(lipgloss.AdaptiveColor{Light: "#DC2626", Dark: "#EF4444"})
	Green  = lipgloss.NewStyle().Foreground(lipgloss.AdaptiveColor{Light: "#059669", Dark: "#10B981"})
	Yellow = lipgloss.NewStyle().Foreground(lipgloss.AdaptiveColor{Light: "#D97706", Dark: "#F59E0B"})
	Cyan   = lipgloss.NewStyle().Foreground(lipgloss.AdaptiveColor{Light: "#0E7490", Dark: "#22D3EE"})
)

// Out receives all user-facing CLI output. Tests swap it for a buffer.
var Out io.Writer = os.Stdout

// Interactive reports whether stdin is a terminal a prompt can read from.
func Interactive() bool {
	return IsTerminal(os.Stdin)
}

// IsTerminal reports whether f is attached to a terminal.
func IsTerminal(f *os.File) bool {
	fd := f.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}

func timestamp() string {
	return time.Now().Format("15:04:05")
}

// Step prints a timestamped header for one stage of a command.
func Step(format string, args ...any) {
	fmt.Fprintf(Out, "%s %s\n", Dim.Render("["+timestamp()+"]"), Bold.Render(fmt.Sprintf(format, args...)))
}

// Created reports a file or directory written by a command.
func Created(path string) {
	fmt.Fprintf(Out, "  %s %s\n", Green.Render("created"), path)
}

// Updated reports an existing file that was modified.
func Updated(path string) {
	fmt.Fprintf(Out, "  %s %s\n", Cyan.Render("updated"), path)
}

// Skipped reports a path left alone, with the reason.
func Skipped(path, reason string) {
	fmt.Fprintf(Out, "  %s %s %s\n", Dim.Render("skipped"), path, Dim.Render("("+reason+")"))
}

// Warn prints a non-fatal problem.
func Warn(format string, args ...any) {
	fmt.Fprintf(Out, "%s %s\n", Yellow.Render("warning:"), fmt.Sprintf(format, args...))
}

// Success prints a final success message.
func Success(format string, args ...any) {
	fmt.Fprintf(Out, "\n%s\n", Green.Render("✓ "+fmt.Sprintf(format, args...)))
}

// Hint prints a follow-up command the user probably wants to run.
func Hint(label, command string) {
	fmt.Fprintf(Out, "%s %s\n", Yellow.Render(label+":"), command)
}

// Error prints err the way every entry point reports a fatal failure.
func Error(w io.Writer, err error) {
	fmt.Fprintf(w, "%s %v\n", Red.Render("error:"), err)
}
