package main

import (
	"log/slog"
	"strings"

	"github.com/alnah/go-chart2html/internal/config"
)

// envPrefix prefixes every environment variable the command reads.
const envPrefix = "CHART2HTML_"

// envConfig holds configuration from environment variables.
// Provides CI/CD-friendly overrides without requiring YAML files.
type envConfig struct {
	ConfigPath string // CHART2HTML_CONFIG: config file name or path
	Type       string // CHART2HTML_TYPE: chart type
	Output     string // CHART2HTML_OUTPUT: output HTML path
	Show       string // CHART2HTML_SHOW: display mode
	Style      string // CHART2HTML_STYLE: style name, path, or CSS
	Template   string // CHART2HTML_TEMPLATE: template name
	AssetPath  string // CHART2HTML_ASSET_PATH: custom asset directory
	Snapshot   string // CHART2HTML_SNAPSHOT: png or pdf
	Timeout    string // CHART2HTML_TIMEOUT: snapshot timeout
}

// knownEnvVars lists valid CHART2HTML_* environment variables.
// Used to detect typos and warn users about unknown variables.
var knownEnvVars = map[string]bool{
	"CHART2HTML_CONFIG":     true,
	"CHART2HTML_TYPE":       true,
	"CHART2HTML_OUTPUT":     true,
	"CHART2HTML_SHOW":       true,
	"CHART2HTML_STYLE":      true,
	"CHART2HTML_TEMPLATE":   true,
	"CHART2HTML_ASSET_PATH": true,
	"CHART2HTML_SNAPSHOT":   true,
	"CHART2HTML_TIMEOUT":    true,
}

// loadEnvConfig reads configuration from environment variables.
func loadEnvConfig(getenv func(string) string) *envConfig {
	return &envConfig{
		ConfigPath: getenv("CHART2HTML_CONFIG"),
		Type:       getenv("CHART2HTML_TYPE"),
		Output:     getenv("CHART2HTML_OUTPUT"),
		Show:       getenv("CHART2HTML_SHOW"),
		Style:      getenv("CHART2HTML_STYLE"),
		Template:   getenv("CHART2HTML_TEMPLATE"),
		AssetPath:  getenv("CHART2HTML_ASSET_PATH"),
		Snapshot:   getenv("CHART2HTML_SNAPSHOT"),
		Timeout:    getenv("CHART2HTML_TIMEOUT"),
	}
}

// warnUnknownEnvVars logs warnings for unrecognized CHART2HTML_* variables.
// Helps catch typos like CHART2HTML_STYEL.
func warnUnknownEnvVars(logger *slog.Logger, environ []string) {
	for _, env := range environ {
		if !strings.HasPrefix(env, envPrefix) {
			continue
		}
		name, _, _ := strings.Cut(env, "=")
		if !knownEnvVars[name] {
			logger.Warn("unknown environment variable (typo?)", "name", name)
		}
	}
}

// applyEnvConfig applies environment variable values to config.
// Only sets values if the env var is set AND the config value is empty.
// This ensures: CLI flags > env vars > config file > defaults
// (CLI flags are applied later via mergeFlags)
func applyEnvConfig(env *envConfig, cfg *config.Config) {
	setIfEmpty(&cfg.Chart.Type, env.Type)
	setIfEmpty(&cfg.Output.Path, env.Output)
	setIfEmpty(&cfg.Output.Show, env.Show)
	setIfEmpty(&cfg.Output.Snapshot, env.Snapshot)
	setIfEmpty(&cfg.Assets.Style, env.Style)
	setIfEmpty(&cfg.Assets.Template, env.Template)
	setIfEmpty(&cfg.Assets.BasePath, env.AssetPath)
	setIfEmpty(&cfg.Timeout, env.Timeout)
}

func setIfEmpty(dst *string, v string) {
	if v != "" && *dst == "" {
		*dst = v
	}
}
