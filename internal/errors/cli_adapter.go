package errors

import (
	"fmt"
	"log/slog"
	"os"
)

// CLIErrorAdapter handles error presentation and exit code determination for the CLI.
type CLIErrorAdapter struct {
	verbose bool
	logger  *slog.Logger
}

// NewCLIErrorAdapter creates a new CLI error adapter.
func NewCLIErrorAdapter(verbose bool, logger *slog.Logger) *CLIErrorAdapter {
	if logger == nil {
		logger = slog.Default()
	}
	return &CLIErrorAdapter{
		verbose: verbose,
		logger:  logger,
	}
}

// ExitCodeFor determines the appropriate exit code for an error.
func (a *CLIErrorAdapter) ExitCodeFor(err error) int {
	if err == nil {
		return 0
	}

	if sge, ok := err.(*SiteGenError); ok {
		return a.exitCodeFromSiteGen(sge)
	}

	return 1
}

// exitCodeFromSiteGen maps SiteGenError to exit codes.
func (a *CLIErrorAdapter) exitCodeFromSiteGen(err *SiteGenError) int {
	switch err.Category {
	case CategoryValidation:
		return 2 // Invalid usage
	case CategoryConfig:
		return 7 // Configuration error
	case CategoryContent, CategoryTemplate, CategoryFileSystem, CategoryGit:
		return 11 // Build error
	case CategoryInternal:
		return 10 // Internal error
	default:
		return 1 // General error
	}
}

// FormatError formats an error for user-friendly display.
func (a *CLIErrorAdapter) FormatError(err error) string {
	if err == nil {
		return ""
	}

	if sge, ok := err.(*SiteGenError); ok {
		if a.verbose {
			return sge.Error()
		}
		switch sge.Category {
		case CategoryConfig, CategoryValidation:
			return sge.Message
		default:
			return fmt.Sprintf("%s: %s", sge.Category, sge.Message)
		}
	}

	return fmt.Sprintf("Error: %v", err)
}

// HandleError processes an error and exits the program with appropriate code.
func (a *CLIErrorAdapter) HandleError(err error) {
	if err == nil {
		return
	}

	exitCode := a.ExitCodeFor(err)
	message := a.FormatError(err)

	if a.shouldLog(err) {
		a.logError(err)
	}

	fmt.Fprintf(os.Stderr, "%s\n", message)
	os.Exit(exitCode)
}

// shouldLog determines if an error should be logged.
func (a *CLIErrorAdapter) shouldLog(err error) bool {
	if a.verbose {
		return true
	}

	if sge, ok := err.(*SiteGenError); ok {
		return sge.Category == CategoryInternal || sge.Severity == SeverityFatal
	}

	return true
}

// logError logs an error with appropriate level and context.
func (a *CLIErrorAdapter) logError(err error) {
	if sge, ok := err.(*SiteGenError); ok {
		level := slog.LevelError
		if sge.Severity == SeverityWarning {
			level = slog.LevelWarn
		}
		attrs := []slog.Attr{
			slog.String("category", string(sge.Category)),
		}
		a.logger.LogAttrs(nil, level, sge.Message, attrs...)
		return
	}

	a.logger.Error("Unclassified error", "error", err)
}
