package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"

	chart2html "github.com/alnah/go-chart2html"
	"github.com/alnah/go-chart2html/internal/assets"
	"github.com/alnah/go-chart2html/internal/config"
	"github.com/alnah/go-chart2html/internal/fileutil"
	"github.com/alnah/go-chart2html/internal/hints"
)

// defaultShow is the CLI display mode; a terminal has no inline display.
const defaultShow = chart2html.DisplayExternal

// run plots one data file according to flags, environment, and config.
func run(ctx context.Context, flags *plotFlags, args []string, env *Environment, logger *slog.Logger) error {
	switch {
	case len(args) == 0:
		return ErrNoInput
	case len(args) > 1:
		return fmt.Errorf("%w: expected one data file, got %d", ErrUsage, len(args))
	}

	warnUnknownEnvVars(logger, env.Environ())
	envCfg := loadEnvConfig(env.Getenv)

	cfg, err := loadConfig(configName(flags, envCfg))
	if err != nil {
		return err
	}
	applyEnvConfig(envCfg, cfg)
	mergeFlags(flags, cfg)
	if err := cfg.Validate(); err != nil {
		return err
	}

	input, err := buildInput(flags, args[0], cfg, env)
	if err != nil {
		return err
	}

	opts, err := plotterOptions(flags, cfg, env, logger)
	if err != nil {
		return err
	}

	p, err := chart2html.NewPlotter(opts...)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := p.Close(); cerr != nil {
			logger.Debug("closing browser", "error", cerr)
		}
	}()

	logger.Debug("plotting", "data", args[0], "type", input.Type, "output", input.Save, "show", input.Show)

	res, err := p.Plot(ctx, input)
	if res != nil && input.Show != chart2html.DisplayInline && !flags.common.quiet {
		fmt.Fprintln(env.Stdout, res.Path)
		if res.SnapshotPath != "" {
			fmt.Fprintln(env.Stdout, res.SnapshotPath)
		}
	}
	return err
}

// configName returns the config requested by flag, then by environment.
func configName(flags *plotFlags, envCfg *envConfig) string {
	if flags.common.config != "" {
		return flags.common.config
	}
	return envCfg.ConfigPath
}

// loadConfig loads the named config, or the neutral default when name is empty.
func loadConfig(name string) (*config.Config, error) {
	if name == "" {
		return config.DefaultConfig(), nil
	}
	cfg, err := config.LoadConfig(name)
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}
	return cfg, nil
}

// mergeFlags merges CLI flags into config. CLI values override config values.
func mergeFlags(flags *plotFlags, cfg *config.Config) {
	if flags.typ != "" {
		cfg.Chart.Type = flags.typ
	}
	if flags.output.path != "" {
		cfg.Output.Path = flags.output.path
	}
	if flags.output.show != "" {
		cfg.Output.Show = flags.output.show
	}
	if flags.output.snapshot != "" {
		cfg.Output.Snapshot = flags.output.snapshot
	}
	if flags.assets.style != "" {
		cfg.Assets.Style = flags.assets.style
	}
	if flags.assets.noStyle {
		cfg.Assets.Style = chart2html.NoStyle
	}
	if flags.assets.template != "" {
		cfg.Assets.Template = flags.assets.template
	}
	if flags.assets.assetPath != "" {
		cfg.Assets.BasePath = flags.assets.assetPath
	}
	if flags.caption != "" {
		cfg.Caption = flags.caption
	}
	if flags.timeout != "" {
		cfg.Timeout = flags.timeout
	}
}

// buildInput assembles the plot input from the data file and merged config.
func buildInput(flags *plotFlags, dataPath string, cfg *config.Config, env *Environment) (chart2html.Input, error) {
	data, err := loadData(dataPath, flags.sheet, env.Stdin)
	if err != nil {
		return chart2html.Input{}, err
	}

	options := mergeOptions(cfg.Chart.Options, nil)
	if flags.options != "" {
		fileOptions, err := loadOptions(flags.options)
		if err != nil {
			return chart2html.Input{}, err
		}
		options = mergeOptions(cfg.Chart.Options, fileOptions)
	}

	css := cfg.CSS
	if flags.css != "" {
		content, err := os.ReadFile(flags.css) // #nosec G304 -- user-provided path
		if err != nil {
			return chart2html.Input{}, fmt.Errorf("%w: %w", ErrReadData, err)
		}
		css = joinCSS(css, string(content))
	}

	caption, err := resolveCaption(cfg.Caption)
	if err != nil {
		return chart2html.Input{}, err
	}

	show := defaultShow
	if cfg.Output.Show != "" {
		show, err = chart2html.ParseDisplayMode(cfg.Output.Show)
		if err != nil {
			return chart2html.Input{}, err
		}
	}

	snapshot, err := chart2html.ParseSnapshotFormat(cfg.Output.Snapshot)
	if err != nil {
		return chart2html.Input{}, err
	}

	return chart2html.Input{
		Data:     data,
		Options:  options,
		Type:     cfg.Chart.Type,
		Save:     cfg.Output.Path,
		Show:     show,
		CSS:      css,
		Caption:  caption,
		Snapshot: snapshot,
	}, nil
}

// plotterOptions converts config into Plotter options.
func plotterOptions(flags *plotFlags, cfg *config.Config, env *Environment, logger *slog.Logger) ([]chart2html.Option, error) {
	opts := []chart2html.Option{
		chart2html.WithLogger(logger),
		chart2html.WithDisplayer(chart2html.NewWriterDisplay(env.Stdout)),
		chart2html.WithOpener(env.Open),
	}

	timeout, err := cfg.TimeoutDuration()
	if err != nil {
		return nil, err
	}
	if timeout > 0 {
		opts = append(opts, chart2html.WithTimeout(timeout))
	}
	if cfg.Assets.BasePath != "" {
		opts = append(opts, chart2html.WithAssetPath(cfg.Assets.BasePath))
	}
	if cfg.Assets.Template != "" {
		opts = append(opts, chart2html.WithTemplate(cfg.Assets.Template))
	}
	if cfg.Assets.Style != "" {
		opts = append(opts, chart2html.WithStyle(cfg.Assets.Style))
	}
	return opts, nil
}

// resolveCaption reads caption from a file when it names one, otherwise
// returns it as Markdown text.
func resolveCaption(caption string) (string, error) {
	if caption == "" || !fileutil.FileExists(caption) {
		return caption, nil
	}
	content, err := os.ReadFile(caption) // #nosec G304 -- user-provided path
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrReadData, err)
	}
	return string(content), nil
}

func joinCSS(a, b string) string {
	switch {
	case a == "":
		return b
	case b == "":
		return a
	default:
		return a + "\n" + b
	}
}

// hintFor returns an actionable hint for err, or "".
func hintFor(err error, cfgName string) string {
	switch {
	case errors.Is(err, chart2html.ErrBrowserConnect):
		return hints.ForBrowserConnect()
	case errors.Is(err, context.DeadlineExceeded):
		return hints.ForTimeout()
	case errors.Is(err, config.ErrConfigNotFound):
		return hints.ForConfigNotFound(config.SearchPaths(cfgName))
	case errors.Is(err, chart2html.ErrStyleNotFound):
		return hints.ForAssetNotFound("style", assets.StyleNames())
	case errors.Is(err, chart2html.ErrTemplateNotFound):
		return hints.ForAssetNotFound("template", assets.TemplateNames())
	case errors.Is(err, chart2html.ErrDisplayUnavailable):
		return hints.ForDisplayUnavailable()
	case errors.Is(err, ErrUnsupportedInput), errors.Is(err, chart2html.ErrUnsupportedDataType):
		return hints.ForUnsupportedData()
	case errors.Is(err, chart2html.ErrWriteOutput):
		return hints.ForOutputDirectory()
	default:
		return ""
	}
}
