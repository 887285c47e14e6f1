package main

import (
	"bytes"
	"log/slog"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/alnah/go-chart2html/internal/config"
)

func TestLoadEnvConfig(t *testing.T) {
	t.Parallel()

	vars := map[string]string{
		"CHART2HTML_CONFIG":     "team",
		"CHART2HTML_TYPE":       "pie",
		"CHART2HTML_OUTPUT":     "out.html",
		"CHART2HTML_SHOW":       "none",
		"CHART2HTML_STYLE":      "dark",
		"CHART2HTML_TEMPLATE":   "wide",
		"CHART2HTML_ASSET_PATH": "/assets",
		"CHART2HTML_SNAPSHOT":   "png",
		"CHART2HTML_TIMEOUT":    "1m",
	}

	got := loadEnvConfig(func(k string) string { return vars[k] })
	want := &envConfig{
		ConfigPath: "team",
		Type:       "pie",
		Output:     "out.html",
		Show:       "none",
		Style:      "dark",
		Template:   "wide",
		AssetPath:  "/assets",
		Snapshot:   "png",
		Timeout:    "1m",
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("loadEnvConfig() mismatch (-want +got):\n%s", diff)
	}
}

func TestApplyEnvConfig_ConfigWins(t *testing.T) {
	t.Parallel()

	cfg := &config.Config{
		Chart:  config.ChartConfig{Type: "area"},
		Output: config.OutputConfig{Path: "cfg.html"},
	}
	env := &envConfig{Type: "pie", Output: "env.html", Show: "none", Style: "dark", Timeout: "5s"}

	applyEnvConfig(env, cfg)

	if cfg.Chart.Type != "area" {
		t.Errorf("Chart.Type = %q, config value should win", cfg.Chart.Type)
	}
	if cfg.Output.Path != "cfg.html" {
		t.Errorf("Output.Path = %q, config value should win", cfg.Output.Path)
	}
	if cfg.Output.Show != "none" || cfg.Assets.Style != "dark" || cfg.Timeout != "5s" {
		t.Errorf("env values not applied to empty fields: %+v", cfg)
	}
}

func TestMergeFlags_FlagsWin(t *testing.T) {
	t.Parallel()

	cfg := &config.Config{
		Chart:  config.ChartConfig{Type: "area"},
		Assets: config.AssetsConfig{Style: "dark"},
	}
	flags := &plotFlags{typ: "bar", timeout: "10s"}
	flags.assets.noStyle = true
	flags.output.show = "inline"

	mergeFlags(flags, cfg)

	if cfg.Chart.Type != "bar" {
		t.Errorf("Chart.Type = %q, want bar", cfg.Chart.Type)
	}
	if cfg.Assets.Style != "none" {
		t.Errorf("Assets.Style = %q, --no-style should win", cfg.Assets.Style)
	}
	if cfg.Output.Show != "inline" || cfg.Timeout != "10s" {
		t.Errorf("flags not merged: %+v", cfg)
	}
}

func TestWarnUnknownEnvVars(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, nil))

	warnUnknownEnvVars(logger, []string{
		"CHART2HTML_TYPE=line",
		"CHART2HTML_TYPO=1",
		"HOME=/root",
	})

	out := buf.String()
	if !strings.Contains(out, "CHART2HTML_TYPO") {
		t.Errorf("expected warning for CHART2HTML_TYPO, got %q", out)
	}
	if strings.Contains(out, "CHART2HTML_TYPE") {
		t.Errorf("known variable should not warn, got %q", out)
	}
}
