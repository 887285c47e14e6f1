package main

import (
	"errors"
	"os"

	chart2html "github.com/alnah/go-chart2html"
	"github.com/alnah/go-chart2html/internal/config"
	"github.com/alnah/go-chart2html/internal/tabular"
)

// Exit codes for the chart2html CLI.
// Follows Unix conventions: 0=success, 1=general, 2=usage, and custom codes < 126.
const (
	ExitSuccess = 0 // Chart written (and shown)
	ExitGeneral = 1 // General/unexpected error
	ExitUsage   = 2 // Invalid flags, config, data, or options
	ExitIO      = 3 // File not found, permission denied, write failure
	ExitBrowser = 4 // Browser/Chrome errors during snapshot
)

// exitCodeFor returns the appropriate exit code for an error.
// It uses errors.Is to check wrapped errors, so callers must use fmt.Errorf("%w", err).
func exitCodeFor(err error) int {
	if err == nil {
		return ExitSuccess
	}

	// Browser errors (exit 4)
	if errors.Is(err, chart2html.ErrBrowserConnect) ||
		errors.Is(err, chart2html.ErrPageCreate) ||
		errors.Is(err, chart2html.ErrPageLoad) ||
		errors.Is(err, chart2html.ErrSnapshot) {
		return ExitBrowser
	}

	// I/O errors (exit 3)
	if errors.Is(err, os.ErrNotExist) ||
		errors.Is(err, os.ErrPermission) ||
		errors.Is(err, chart2html.ErrWriteOutput) ||
		errors.Is(err, ErrReadData) ||
		errors.Is(err, ErrNoInput) {
		return ExitIO
	}

	// Usage/config/validation errors (exit 2)
	if errors.Is(err, config.ErrConfigNotFound) ||
		errors.Is(err, config.ErrConfigParse) ||
		errors.Is(err, config.ErrFieldTooLong) ||
		errors.Is(err, config.ErrInvalidValue) ||
		errors.Is(err, chart2html.ErrUnsupportedDataType) ||
		errors.Is(err, chart2html.ErrEmptyData) ||
		errors.Is(err, chart2html.ErrInvalidTable) ||
		errors.Is(err, chart2html.ErrInvalidOptions) ||
		errors.Is(err, chart2html.ErrInvalidSeriesConfiguration) ||
		errors.Is(err, chart2html.ErrInvalidDisplayMode) ||
		errors.Is(err, chart2html.ErrInvalidSnapshotFormat) ||
		errors.Is(err, chart2html.ErrMissingPlaceholder) ||
		errors.Is(err, chart2html.ErrDuplicatePlaceholder) ||
		errors.Is(err, chart2html.ErrStyleNotFound) ||
		errors.Is(err, chart2html.ErrTemplateNotFound) ||
		errors.Is(err, chart2html.ErrInvalidAssetPath) ||
		errors.Is(err, tabular.ErrNoHeader) ||
		errors.Is(err, tabular.ErrSheetNotFound) ||
		errors.Is(err, ErrUnsupportedInput) ||
		errors.Is(err, ErrInvalidOptionsFile) ||
		errors.Is(err, ErrUsage) {
		return ExitUsage
	}

	return ExitGeneral
}
