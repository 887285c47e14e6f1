package chart2html

import "errors"

// Sentinel errors for library operations.
var (
	// Input normalization errors.
	ErrUnsupportedDataType = errors.New("unsupported data type")
	ErrEmptyData           = errors.New("data cannot be empty")
	ErrInvalidTable        = errors.New("invalid table")

	// Configuration merge errors.
	ErrInvalidOptions             = errors.New("invalid chart options")
	ErrInvalidSeriesConfiguration = errors.New("invalid series configuration")

	// Serialization and rendering errors.
	ErrSerialize            = errors.New("options serialization failed")
	ErrMissingPlaceholder   = errors.New("template placeholder not found")
	ErrDuplicatePlaceholder = errors.New("template placeholder appears more than once")
	ErrCaptionConversion    = errors.New("caption conversion failed")

	// Output and display errors.
	ErrWriteOutput           = errors.New("failed to write output file")
	ErrDisplayUnavailable    = errors.New("inline display unavailable")
	ErrInvalidDisplayMode    = errors.New("invalid display mode")
	ErrInvalidSnapshotFormat = errors.New("invalid snapshot format")

	// Browser errors (snapshot export).
	ErrBrowserConnect = errors.New("failed to connect to browser")
	ErrPageCreate     = errors.New("failed to create browser page")
	ErrPageLoad       = errors.New("failed to load page")
	ErrSnapshot       = errors.New("snapshot generation failed")

	// Asset loading errors.
	ErrTemplateNotFound = errors.New("template not found")
	ErrStyleNotFound    = errors.New("style not found")
	ErrInvalidAssetPath = errors.New("invalid asset path")
)
