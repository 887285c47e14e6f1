package main

import (
	"io"
	"testing"
)

func TestParseFlags(t *testing.T) {
	t.Parallel()

	f, args, err := parseFlags([]string{
		"-t", "pie", "-o", "out.html", "-O", "opts.json",
		"--show", "none", "--snapshot", "pdf", "--style", "dark",
		"--caption", "*hi*", "--sheet", "Q2", "--timeout", "1m",
		"-c", "team", "-v", "data.xlsx",
	}, io.Discard)
	if err != nil {
		t.Fatalf("parseFlags() error: %v", err)
	}

	if f.typ != "pie" || f.output.path != "out.html" || f.options != "opts.json" {
		t.Errorf("chart flags = %+v", f)
	}
	if f.output.show != "none" || f.output.snapshot != "pdf" {
		t.Errorf("output flags = %+v", f.output)
	}
	if f.assets.style != "dark" || f.caption != "*hi*" || f.sheet != "Q2" || f.timeout != "1m" {
		t.Errorf("flags = %+v", f)
	}
	if f.common.config != "team" || !f.common.verbose || f.common.quiet {
		t.Errorf("common flags = %+v", f.common)
	}
	if len(args) != 1 || args[0] != "data.xlsx" {
		t.Errorf("args = %v, want [data.xlsx]", args)
	}
}

func TestParseFlags_StdinArg(t *testing.T) {
	t.Parallel()

	_, args, err := parseFlags([]string{"--show", "inline", "-"}, io.Discard)
	if err != nil {
		t.Fatalf("parseFlags() error: %v", err)
	}
	if len(args) != 1 || args[0] != stdinArg {
		t.Errorf("args = %v, want [-]", args)
	}
}

func TestParseFlags_Unknown(t *testing.T) {
	t.Parallel()

	if _, _, err := parseFlags([]string{"--bogus"}, io.Discard); err == nil {
		t.Error("expected error for unknown flag")
	}
}
