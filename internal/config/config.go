package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/alnah/go-chart2html/internal/fileutil"
	"github.com/alnah/go-chart2html/internal/yamlutil"
)

// Sentinel errors for config operations.
var (
	ErrConfigNotFound  = errors.New("config file not found")
	ErrEmptyConfigName = errors.New("config name cannot be empty")
	ErrConfigParse     = errors.New("failed to parse config")
	ErrFieldTooLong    = errors.New("field exceeds maximum length")
	ErrInvalidValue    = errors.New("invalid config value")
)

// AppDir is the directory name under the user config directory.
const AppDir = "go-chart2html"

// Field length limits.
const (
	MaxTypeLength     = 50    // Highcharts type tags are short ("column", "arearange")
	MaxPathLength     = 4096  // PATH_MAX on Linux
	MaxNameLength     = 100   // Template and style names
	MaxCaptionLength  = 10000 // Markdown caption
	MaxCSSLength      = 65536 // Inline CSS
	MaxDurationLength = 20    // "30s", "1m30s"
)

// Config holds the defaults applied to every chart.
type Config struct {
	Chart   ChartConfig  `yaml:"chart"`
	Output  OutputConfig `yaml:"output"`
	Assets  AssetsConfig `yaml:"assets"`
	Caption string       `yaml:"caption"` // Markdown shown under the chart
	CSS     string       `yaml:"css"`     // Extra CSS appended after the style
	Timeout string       `yaml:"timeout"` // Snapshot timeout, e.g. "30s"
}

// ChartConfig defines the chart type and base options.
type ChartConfig struct {
	Type    string         `yaml:"type"`    // Highcharts series type (default: "line")
	Options map[string]any `yaml:"options"` // Highcharts options merged under per-call options
}

// OutputConfig defines where and how the chart page is produced.
type OutputConfig struct {
	Path     string `yaml:"path"`     // HTML output path (default: "chart.html")
	Show     string `yaml:"show"`     // "inline", "external", "none"
	Snapshot string `yaml:"snapshot"` // "", "png", "pdf"
}

// AssetsConfig defines asset loading options.
type AssetsConfig struct {
	BasePath string `yaml:"basePath"` // Empty = use embedded assets
	Template string `yaml:"template"` // Template name (default: "default")
	Style    string `yaml:"style"`    // Style name, CSS file path, or "none"
}

// Validate checks field lengths and enumerated values.
// Called automatically by LoadConfig, but available for consumers
// who construct Config manually.
func (c *Config) Validate() error {
	if err := validateFieldLength("chart.type", c.Chart.Type, MaxTypeLength); err != nil {
		return err
	}
	if err := validateFieldLength("output.path", c.Output.Path, MaxPathLength); err != nil {
		return err
	}
	if err := validateFieldLength("assets.basePath", c.Assets.BasePath, MaxPathLength); err != nil {
		return err
	}
	if err := validateFieldLength("assets.template", c.Assets.Template, MaxNameLength); err != nil {
		return err
	}
	if err := validateFieldLength("assets.style", c.Assets.Style, MaxPathLength); err != nil {
		return err
	}
	if err := validateFieldLength("caption", c.Caption, MaxCaptionLength); err != nil {
		return err
	}
	if err := validateFieldLength("css", c.CSS, MaxCSSLength); err != nil {
		return err
	}
	if err := validateFieldLength("timeout", c.Timeout, MaxDurationLength); err != nil {
		return err
	}

	if c.Output.Show != "" {
		switch strings.ToLower(c.Output.Show) {
		case "inline", "external", "tab", "none":
			// valid
		default:
			return fmt.Errorf("%w: output.show %q (must be inline, external, or none)", ErrInvalidValue, c.Output.Show)
		}
	}

	if c.Output.Snapshot != "" {
		switch strings.ToLower(c.Output.Snapshot) {
		case "png", "pdf":
			// valid
		default:
			return fmt.Errorf("%w: output.snapshot %q (must be png or pdf)", ErrInvalidValue, c.Output.Snapshot)
		}
	}

	if c.Timeout != "" {
		if _, err := c.TimeoutDuration(); err != nil {
			return err
		}
	}

	return nil
}

// TimeoutDuration parses Timeout. An empty Timeout returns 0.
func (c *Config) TimeoutDuration() (time.Duration, error) {
	if c.Timeout == "" {
		return 0, nil
	}
	d, err := time.ParseDuration(c.Timeout)
	if err != nil {
		return 0, fmt.Errorf("%w: timeout %q: %v", ErrInvalidValue, c.Timeout, err)
	}
	if d <= 0 {
		return 0, fmt.Errorf("%w: timeout must be positive, got %s", ErrInvalidValue, c.Timeout)
	}
	return d, nil
}

// validateFieldLength checks if a field exceeds its maximum allowed length.
func validateFieldLength(fieldName, value string, maxLength int) error {
	if len(value) > maxLength {
		return fmt.Errorf("%w: %s (%d chars, max %d)", ErrFieldTooLong, fieldName, len(value), maxLength)
	}
	return nil
}

// DefaultConfig returns a neutral configuration: every field empty, so the
// library defaults apply.
func DefaultConfig() *Config {
	return &Config{}
}

// LoadConfig loads configuration from a file path or config name.
// If nameOrPath contains a path separator, it's treated as a file path.
// Otherwise, it's treated as a config name and searched in standard locations.
// Returns error if the file is not found (no silent fallback).
func LoadConfig(nameOrPath string) (*Config, error) {
	if nameOrPath == "" {
		return nil, ErrEmptyConfigName
	}

	var configPath string
	var err error

	if fileutil.IsFilePath(nameOrPath) {
		configPath = nameOrPath
	} else {
		configPath, err = resolveConfigPath(nameOrPath)
		if err != nil {
			return nil, err
		}
	}

	data, err := os.ReadFile(configPath) // #nosec G304 -- config path is user-provided
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrConfigNotFound, configPath)
		}
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	var cfg Config
	if err := yamlutil.UnmarshalStrict(data, &cfg); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrConfigParse, err)
	}
	if cfg.Chart.Options != nil {
		cfg.Chart.Options, _ = yamlutil.Normalize(cfg.Chart.Options).(map[string]any)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// SearchPaths lists the files resolveConfigPath tries for name, in order.
func SearchPaths(name string) []string {
	extensions := []string{".yaml", ".yml"}
	paths := make([]string, 0, len(extensions)*2) // 2 locations

	for _, ext := range extensions {
		paths = append(paths, name+ext)
	}

	if userConfigDir, err := os.UserConfigDir(); err == nil {
		for _, ext := range extensions {
			paths = append(paths, filepath.Join(userConfigDir, AppDir, name+ext))
		}
	}
	return paths
}

// resolveConfigPath searches for a config file by name in standard locations.
// Tries the current directory, then the user config directory, with .yaml
// before .yml in each.
func resolveConfigPath(name string) (string, error) {
	tried := SearchPaths(name)
	for _, p := range tried {
		if fileutil.FileExists(p) {
			return p, nil
		}
	}
	return "", fmt.Errorf("%w: tried %s", ErrConfigNotFound, strings.Join(tried, ", "))
}
