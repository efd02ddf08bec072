package errors

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
)

// CLIErrorAdapter maps errors to user-facing messages and exit codes.
type CLIErrorAdapter struct {
	verbose bool
	logger  *slog.Logger
	out     io.Writer
}

// NewCLIErrorAdapter creates an adapter writing messages to stderr.
func NewCLIErrorAdapter(verbose bool, logger *slog.Logger) *CLIErrorAdapter {
	if logger == nil {
		logger = slog.Default()
	}
	return &CLIErrorAdapter{verbose: verbose, logger: logger, out: os.Stderr}
}

// ExitCodeFor returns the process exit code for err.
func (a *CLIErrorAdapter) ExitCodeFor(err error) int {
	if err == nil {
		return 0
	}
	dne, ok := As(err)
	if !ok {
		return 1
	}
	switch dne.Category {
	case CategoryValidation:
		return 2
	case CategoryConfig:
		return 7
	case CategoryNetwork, CategoryGit:
		return 8
	case CategoryContent, CategoryIndex, CategoryFileSystem:
		return 11
	case CategoryRuntime:
		return 12
	case CategoryInternal:
		return 10
	default:
		return 1
	}
}

// FormatError renders err for display.
func (a *CLIErrorAdapter) FormatError(err error) string {
	if err == nil {
		return ""
	}
	dne, ok := As(err)
	if !ok {
		return fmt.Sprintf("Error: %v", err)
	}
	if a.verbose {
		return dne.Error()
	}
	switch dne.Category {
	case CategoryConfig, CategoryValidation:
		return contextSuffix(dne.Message, dne.Context)
	default:
		return fmt.Sprintf("%s: %s", dne.Category, contextSuffix(dne.Message, dne.Context))
	}
}

// Handle logs err when appropriate, prints it and returns the exit code.
func (a *CLIErrorAdapter) Handle(err error) int {
	if err == nil {
		return 0
	}
	if a.shouldLog(err) {
		a.logError(err)
	}
	_, _ = fmt.Fprintln(a.out, a.FormatError(err))
	return a.ExitCodeFor(err)
}

func (a *CLIErrorAdapter) shouldLog(err error) bool {
	if a.verbose {
		return true
	}
	if dne, ok := As(err); ok {
		return dne.Category == CategoryInternal || dne.Category == CategoryRuntime
	}
	return true
}

func (a *CLIErrorAdapter) logError(err error) {
	dne, ok := As(err)
	if !ok {
		a.logger.Error("Unclassified error", "error", err)
		return
	}
	attrs := []slog.Attr{slog.String("category", string(dne.Category))}
	for k, v := range dne.Context {
		attrs = append(attrs, slog.Any(k, v))
	}
	if dne.Cause != nil {
		attrs = append(attrs, slog.String("cause", dne.Cause.Error()))
	}
	a.logger.LogAttrs(context.Background(), levelFor(dne.Severity), dne.Message, attrs...)
}

func levelFor(severity ErrorSeverity) slog.Level {
	switch severity {
	case SeverityInfo:
		return slog.LevelInfo
	case SeverityWarning:
		return slog.LevelWarn
	default:
		return slog.LevelError
	}
}

func contextSuffix(msg string, ctx ContextFields) string {
	for _, k := range []string{"path", "file", "dir", "field", "slug"} {
		if v, ok := ctx[k]; ok {
			return fmt.Sprintf("%s: %v", msg, v)
		}
	}
	return msg
}
