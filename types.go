package chart2html

import (
	"fmt"
	"log/slog"
	"strings"
	"time"
)

// Chart defaults.
const (
	// DefaultChartType is used when Input.Type is empty.
	DefaultChartType = "line"

	// RenderTarget is the id of the element the chart is drawn into.
	// Templates must contain an element with this id.
	RenderTarget = "container"

	// DefaultOutputPath is used when Input.Save is empty.
	DefaultOutputPath = "chart.html"
)

// Options is a Highcharts configuration object. Apart from "chart" and
// "series", its content is passed through untouched.
type Options map[string]any

// DisplayMode selects how a written chart is shown.
type DisplayMode string

// Display modes.
const (
	// DisplayInline hands the document to the configured Displayer.
	DisplayInline DisplayMode = "inline"
	// DisplayExternal opens the written file in the system browser.
	DisplayExternal DisplayMode = "external"
	// DisplayNone writes the file and shows nothing.
	DisplayNone DisplayMode = "none"
)

// ParseDisplayMode parses a display mode name (case-insensitive).
// "tab" is accepted as an alias of "external".
func ParseDisplayMode(s string) (DisplayMode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "inline":
		return DisplayInline, nil
	case "external", "tab":
		return DisplayExternal, nil
	case "none":
		return DisplayNone, nil
	default:
		return "", fmt.Errorf("%w: %q (must be inline, external, or none)", ErrInvalidDisplayMode, s)
	}
}

// SnapshotFormat selects an optional image export of the written page.
type SnapshotFormat string

// Snapshot formats.
const (
	SnapshotNone SnapshotFormat = ""
	SnapshotPNG  SnapshotFormat = "png"
	SnapshotPDF  SnapshotFormat = "pdf"
)

// ParseSnapshotFormat parses a snapshot format name (case-insensitive).
// The empty string means no snapshot.
func ParseSnapshotFormat(s string) (SnapshotFormat, error) {
	switch f := SnapshotFormat(strings.ToLower(strings.TrimSpace(s))); f {
	case SnapshotNone, SnapshotPNG, SnapshotPDF:
		return f, nil
	default:
		return "", fmt.Errorf("%w: %q (must be png or pdf)", ErrInvalidSnapshotFormat, s)
	}
}

// Input contains the parameters of one Plot call.
type Input struct {
	Data     any            // Records, mapping, or Tabular (required)
	Options  Options        // Chart options (optional)
	Type     string         // Chart type tag (default: "line")
	Save     string         // Output path (default: "chart.html")
	Show     DisplayMode    // Display mode (default: inline)
	CSS      string         // Extra CSS appended after the plotter style (optional)
	Caption  string         // Markdown shown under the chart (optional)
	Snapshot SnapshotFormat // Image export next to the HTML (optional)
}

// Result describes a completed Plot call.
type Result struct {
	Path         string // Written HTML file
	HTML         string // Document content
	SnapshotPath string // Written snapshot, empty if none
}

// Option configures a Plotter.
type Option func(*Plotter)

// plotterConfig holds internal configuration for Plotter.
type plotterConfig struct {
	timeout      time.Duration
	assetPath    string
	templateName string
	styleInput   string
	style        string // resolved CSS
}

// defaultTimeout bounds snapshot rendering.
const defaultTimeout = 30 * time.Second

// WithTimeout sets the snapshot rendering timeout.
// Panics if d <= 0 (programmer error, similar to time.NewTicker).
func WithTimeout(d time.Duration) Option {
	if d <= 0 {
		panic("chart2html: WithTimeout duration must be positive")
	}
	return func(p *Plotter) {
		p.cfg.timeout = d
	}
}

// WithAssetPath sets a directory holding custom templates/ and styles/.
// Assets missing there fall back to the built-in ones.
func WithAssetPath(dir string) Option {
	return func(p *Plotter) {
		p.cfg.assetPath = dir
	}
}

// WithTemplate selects the page template by name (default: "default").
func WithTemplate(name string) Option {
	return func(p *Plotter) {
		p.cfg.templateName = name
	}
}

// NoStyle passed to WithStyle disables the page style.
const NoStyle = "none"

// WithStyle sets the page style: a style name, a path to a CSS file, or
// inline CSS content. Defaults to the built-in "default" style.
func WithStyle(style string) Option {
	return func(p *Plotter) {
		p.cfg.styleInput = style
	}
}

// WithDisplayer sets the Displayer used by DisplayInline.
func WithDisplayer(d Displayer) Option {
	return func(p *Plotter) {
		p.displayer = d
	}
}

// WithOpener replaces the function DisplayExternal uses to open the written
// file URL. Defaults to the system browser.
func WithOpener(open func(url string)) Option {
	return func(p *Plotter) {
		if open != nil {
			p.open = open
		}
	}
}

// WithLogger sets the logger. Defaults to slog.Default().
func WithLogger(l *slog.Logger) Option {
	return func(p *Plotter) {
		p.logger = l
	}
}
