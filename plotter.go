package chart2html

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"sync"

	"github.com/natefinch/atomic"

	"github.com/alnah/go-chart2html/internal/assets"
	"github.com/alnah/go-chart2html/internal/fileutil"
	"github.com/alnah/go-chart2html/internal/pipeline"
)

// Plotter turns data and chart options into a standalone HTML page.
// Create with NewPlotter, call Plot or Render, and Close when done.
// A Plotter holds no per-call state; it only caches the loaded assets and,
// after a snapshot, the headless browser. It is safe for concurrent use if
// its Displayer is.
type Plotter struct {
	cfg             plotterConfig
	assetLoader     assets.AssetLoader
	template        string
	displayer       Displayer
	logger          *slog.Logger
	captionConv     pipeline.CaptionConverter
	cssInjector     pipeline.CSSInjector
	captionInjector pipeline.CaptionInjector
	snapMu          sync.Mutex // guards snapshotter
	snapshotter     snapshotter
	open            func(url string)
}

// NewPlotter creates a Plotter and loads its template and style.
// Returns ErrInvalidAssetPath, ErrTemplateNotFound or ErrStyleNotFound when
// the configured assets cannot be loaded.
func NewPlotter(opts ...Option) (*Plotter, error) {
	p := &Plotter{
		cfg: plotterConfig{
			timeout:      defaultTimeout,
			templateName: assets.DefaultTemplateName,
		},
		captionConv:     pipeline.NewGoldmarkConverter(),
		cssInjector:     &pipeline.CSSInjection{},
		captionInjector: &pipeline.CaptionInjection{},
		open:            openExternal,
	}

	for _, opt := range opts {
		opt(p)
	}

	if p.logger == nil {
		p.logger = slog.Default()
	}

	resolver, err := assets.NewAssetResolver(p.cfg.assetPath)
	if err != nil {
		return nil, convertAssetError(err)
	}
	p.assetLoader = resolver

	p.template, err = p.assetLoader.LoadTemplate(p.cfg.templateName)
	if err != nil {
		return nil, fmt.Errorf("loading template %q: %w", p.cfg.templateName, convertAssetError(err))
	}

	if err := p.resolveStyle(); err != nil {
		return nil, err
	}

	return p, nil
}

// Plot renders a chart page, writes it to in.Save and shows it according to
// in.Show.
//
// Failures before the write leave the filesystem untouched. When only the
// display step fails (for example ErrDisplayUnavailable in inline mode), the
// file has been written and the returned Result is valid alongside the error.
func (p *Plotter) Plot(ctx context.Context, in Input) (*Result, error) {
	mode, err := resolveDisplayMode(in.Show)
	if err != nil {
		return nil, err
	}
	if _, err := ParseSnapshotFormat(string(in.Snapshot)); err != nil {
		return nil, err
	}

	doc, err := p.Render(ctx, in)
	if err != nil {
		return nil, err
	}

	path := in.Save
	if path == "" {
		path = DefaultOutputPath
	}
	if err := writeOutput(path, doc); err != nil {
		return nil, err
	}
	p.logger.Debug("chart written", "path", path, "bytes", len(doc))

	res := &Result{Path: path, HTML: doc}

	if in.Snapshot != SnapshotNone {
		snapPath, err := p.snapshot(ctx, path, in.Snapshot)
		if err != nil {
			return res, fmt.Errorf("exporting %s snapshot: %w", in.Snapshot, err)
		}
		res.SnapshotPath = snapPath
		p.logger.Debug("snapshot written", "path", snapPath)
	}

	if err := p.display(ctx, mode, path, doc); err != nil {
		return res, err
	}
	return res, nil
}

// Render builds the chart page without writing or showing it.
func (p *Plotter) Render(ctx context.Context, in Input) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	data, err := NormalizeData(in.Data)
	if err != nil {
		return "", err
	}

	options, err := MergeOptions(data, in.Options, in.Type)
	if err != nil {
		return "", err
	}

	payload, err := MarshalOptions(options)
	if err != nil {
		return "", err
	}

	doc, err := renderTemplate(p.template, payload)
	if err != nil {
		return "", fmt.Errorf("rendering template %q: %w", p.cfg.templateName, err)
	}

	// Plotter style first, per-call CSS last so it can override.
	css := p.cfg.style
	if in.CSS != "" {
		if css != "" {
			css += "\n"
		}
		css += in.CSS
	}
	doc = p.cssInjector.InjectCSS(ctx, doc, css)

	if in.Caption != "" {
		fragment, err := p.captionConv.ToFragment(ctx, in.Caption)
		if err != nil {
			return "", fmt.Errorf("%w: %v", ErrCaptionConversion, err)
		}
		doc, err = p.captionInjector.InjectCaption(ctx, doc, fragment)
		if err != nil {
			return "", err
		}
	}

	if err := ctx.Err(); err != nil {
		return "", err
	}
	return doc, nil
}

// Close releases the headless browser if a snapshot started one.
func (p *Plotter) Close() error {
	p.snapMu.Lock()
	defer p.snapMu.Unlock()
	if p.snapshotter != nil {
		return p.snapshotter.Close()
	}
	return nil
}

// Plot is a one-shot helper: it creates a Plotter with opts, plots in, and
// closes the Plotter.
func Plot(ctx context.Context, in Input, opts ...Option) (*Result, error) {
	p, err := NewPlotter(opts...)
	if err != nil {
		return nil, err
	}
	defer p.Close()

	return p.Plot(ctx, in)
}

func resolveDisplayMode(m DisplayMode) (DisplayMode, error) {
	if m == "" {
		return DisplayInline, nil
	}
	return ParseDisplayMode(string(m))
}

// display shows the written document. Inline mode requires a Displayer and
// never falls back to external. External mode is fire-and-forget.
func (p *Plotter) display(ctx context.Context, mode DisplayMode, path, doc string) error {
	switch mode {
	case DisplayInline:
		if p.displayer == nil {
			return fmt.Errorf("%w: no displayer configured (use WithDisplayer or the external mode)", ErrDisplayUnavailable)
		}
		if err := p.displayer.Display(ctx, doc); err != nil {
			return fmt.Errorf("%w: %v", ErrDisplayUnavailable, err)
		}
		return nil
	case DisplayExternal:
		url, err := fileutil.FileURL(path)
		if err != nil {
			p.logger.Debug("cannot open viewer", "path", path, "error", err)
			return nil
		}
		p.logger.Debug("opening viewer", "url", url)
		p.open(url)
		return nil
	default:
		return nil
	}
}

// snapshot exports the written page next to it, e.g. chart.html -> chart.png.
func (p *Plotter) snapshot(ctx context.Context, htmlPath string, format SnapshotFormat) (string, error) {
	url, err := fileutil.FileURL(htmlPath)
	if err != nil {
		return "", err
	}

	p.snapMu.Lock()
	if p.snapshotter == nil {
		p.snapshotter = newRodSnapshotter(p.cfg.timeout)
	}
	data, err := p.snapshotter.Snapshot(ctx, url, format)
	p.snapMu.Unlock()
	if err != nil {
		return "", err
	}

	out := fileutil.ReplaceExt(htmlPath, "."+string(format))
	if err := atomic.WriteFile(out, bytes.NewReader(data)); err != nil {
		return "", fmt.Errorf("%w: %v", ErrWriteOutput, err)
	}
	return out, nil
}

// resolveStyle resolves the style input (name, path, or CSS content) to CSS.
// An unset style selects the built-in default; NoStyle disables styling.
func (p *Plotter) resolveStyle() error {
	input := p.cfg.styleInput
	switch input {
	case NoStyle:
		return nil
	case "":
		input = assets.DefaultStyleName
	}

	if fileutil.IsCSS(input) {
		p.cfg.style = input
		return nil
	}

	if fileutil.IsFilePath(input) {
		content, err := os.ReadFile(input) // #nosec G304 -- user-provided path
		if err != nil {
			return fmt.Errorf("loading style file %q: %w", input, err)
		}
		p.cfg.style = string(content)
		return nil
	}

	css, err := p.assetLoader.LoadStyle(input)
	if err != nil {
		return fmt.Errorf("loading style %q: %w", input, convertAssetError(err))
	}
	p.cfg.style = css
	return nil
}

// convertAssetError maps internal asset errors to public sentinels while
// keeping the original message.
func convertAssetError(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, assets.ErrTemplateNotFound):
		return wrapError(ErrTemplateNotFound, err)
	case errors.Is(err, assets.ErrStyleNotFound):
		return wrapError(ErrStyleNotFound, err)
	case errors.Is(err, assets.ErrInvalidBasePath),
		errors.Is(err, assets.ErrPathTraversal),
		errors.Is(err, assets.ErrInvalidAssetName):
		return wrapError(ErrInvalidAssetPath, err)
	default:
		return err
	}
}

// wrapError returns an error that prints like original and matches sentinel
// with errors.Is.
func wrapError(sentinel, original error) error {
	return &wrappedAssetError{sentinel: sentinel, original: original}
}

type wrappedAssetError struct {
	sentinel error
	original error
}

func (e *wrappedAssetError) Error() string {
	return e.original.Error()
}

// Unwrap returns the public sentinel; internal errors stay hidden.
func (e *wrappedAssetError) Unwrap() error {
	return e.sentinel
}
