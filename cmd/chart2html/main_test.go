package main

// Notes:
// - runMain is exercised end to end with temp data files and --show none, so
//   no browser is launched; the external mode uses a recording opener
// - Environment variables come from a per-test map, so tests stay parallel
// - Snapshot export is not covered here (needs Chrome)

import (
	"bytes"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"

	"github.com/tidwall/gjson"
)

// ---------------------------------------------------------------------------
// Test Infrastructure
// ---------------------------------------------------------------------------

type testEnv struct {
	*Environment
	stdout *bytes.Buffer
	stderr *bytes.Buffer

	mu     sync.Mutex
	opened []string
}

func newTestEnv(vars map[string]string) *testEnv {
	te := &testEnv{stdout: &bytes.Buffer{}, stderr: &bytes.Buffer{}}
	te.Environment = &Environment{
		Stdin:  strings.NewReader(""),
		Stdout: te.stdout,
		Stderr: te.stderr,
		Getenv: func(k string) string { return vars[k] },
		Environ: func() []string {
			out := make([]string, 0, len(vars))
			for k, v := range vars {
				out = append(out, k+"="+v)
			}
			return out
		},
	}
	te.Open = func(url string) {
		te.mu.Lock()
		defer te.mu.Unlock()
		te.opened = append(te.opened, url)
	}
	return te
}

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("setup: %v", err)
	}
	return path
}

func readFile(t *testing.T, path string) string {
	t.Helper()
	content, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("reading %s: %v", path, err)
	}
	return string(content)
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// payloadOf extracts the chart options JSON from a written page.
func payloadOf(t *testing.T, path string) string {
	t.Helper()
	content, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("reading output: %v", err)
	}
	doc := string(content)
	const open = "new Highcharts.Chart("
	start := strings.Index(doc, open)
	end := strings.LastIndex(doc, ");")
	if start == -1 || end == -1 {
		t.Fatalf("chart constructor not found in:\n%s", doc)
	}
	return doc[start+len(open) : end]
}

// ---------------------------------------------------------------------------
// runMain
// ---------------------------------------------------------------------------

func TestRunMain_CSVToHTML(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	data := writeFile(t, dir, "sales.csv", "month,y\nJan,10\nFeb,20\n")
	out := filepath.Join(dir, "sales.html")
	te := newTestEnv(nil)

	code := runMain([]string{"chart2html", "-t", "column", "-o", out, "--show", "none", data}, te.Environment)
	if code != ExitSuccess {
		t.Fatalf("exit code = %d, stderr: %s", code, te.stderr)
	}

	payload := payloadOf(t, out)
	if got := gjson.Get(payload, "chart.type").String(); got != "column" {
		t.Errorf("chart.type = %q, want column", got)
	}
	if got := gjson.Get(payload, "series.0.data.1.month").String(); got != "Feb" {
		t.Errorf("series.0.data.1.month = %q, want Feb", got)
	}
	if got := gjson.Get(payload, "series.0.data.1.y").Int(); got != 20 {
		t.Errorf("series.0.data.1.y = %d, want 20", got)
	}
	if strings.TrimSpace(te.stdout.String()) != out {
		t.Errorf("stdout = %q, want output path", te.stdout.String())
	}
}

func TestRunMain_CSVMissingValuesPlotAsNull(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	data := writeFile(t, dir, "gaps.csv", "x,y\n1,2\n2,NaN\n3,inf\n")
	out := filepath.Join(dir, "gaps.html")
	te := newTestEnv(nil)

	code := runMain([]string{"chart2html", "-o", out, "--show", "none", data}, te.Environment)
	if code != ExitSuccess {
		t.Fatalf("exit code = %d, stderr: %s", code, te.stderr)
	}

	payload := payloadOf(t, out)
	for _, path := range []string{"series.0.data.1.y", "series.0.data.2.y"} {
		got := gjson.Get(payload, path)
		if !got.Exists() || got.Type != gjson.Null {
			t.Errorf("%s = %s, want null", path, got.Raw)
		}
	}
}

func TestRunMain_JSONWithOptionsFile(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	data := writeFile(t, dir, "points.json", `[{"x":1,"y":2},{"x":2,"y":3}]`)
	opts := writeFile(t, dir, "opts.yaml", "title:\n  text: Points\nseries:\n  - name: measured\n")
	out := filepath.Join(dir, "points.html")
	te := newTestEnv(nil)

	code := runMain([]string{"chart2html", "-O", opts, "-o", out, "--show", "none", "-q", data}, te.Environment)
	if code != ExitSuccess {
		t.Fatalf("exit code = %d, stderr: %s", code, te.stderr)
	}

	payload := payloadOf(t, out)
	if got := gjson.Get(payload, "title.text").String(); got != "Points" {
		t.Errorf("title.text = %q", got)
	}
	if got := gjson.Get(payload, "series.0.name").String(); got != "measured" {
		t.Errorf("series.0.name = %q", got)
	}
	if got := gjson.Get(payload, "series.0.data.#").Int(); got != 2 {
		t.Errorf("series.0.data length = %d, want 2", got)
	}
	if te.stdout.Len() != 0 {
		t.Errorf("quiet mode should not print, got %q", te.stdout.String())
	}
}

func TestRunMain_StdinInline(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	out := filepath.Join(dir, "inline.html")
	te := newTestEnv(nil)
	te.Stdin = strings.NewReader("a: 1\nb: 2\n")

	code := runMain([]string{"chart2html", "--show", "inline", "-o", out, "-"}, te.Environment)
	if code != ExitSuccess {
		t.Fatalf("exit code = %d, stderr: %s", code, te.stderr)
	}

	if !strings.HasPrefix(te.stdout.String(), "<!DOCTYPE html>") {
		t.Errorf("inline mode should write the page to stdout, got %q", te.stdout.String())
	}
	written, _ := os.ReadFile(out)
	if string(written) != te.stdout.String() {
		t.Error("stdout differs from the written file")
	}
}

func TestRunMain_ExternalOpensViewer(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	data := writeFile(t, dir, "d.json", `[1,2,3]`)
	out := filepath.Join(dir, "d.html")
	te := newTestEnv(nil)

	code := runMain([]string{"chart2html", "-o", out, data}, te.Environment)
	if code != ExitSuccess {
		t.Fatalf("exit code = %d, stderr: %s", code, te.stderr)
	}
	if len(te.opened) != 1 || !strings.HasSuffix(te.opened[0], "/d.html") {
		t.Errorf("opened = %v, want the output file URL", te.opened)
	}
}

func TestRunMain_ConfigAndEnv(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	data := writeFile(t, dir, "d.tsv", "k\tv\na\t1\n")
	out := filepath.Join(dir, "from-env.html")
	cfgPath := writeFile(t, dir, "chart.yaml", `chart:
  type: area
  options:
    legend:
      enabled: false
output:
  show: none
assets:
  style: dark
`)
	te := newTestEnv(map[string]string{
		"CHART2HTML_CONFIG": cfgPath,
		"CHART2HTML_OUTPUT": out,
		"CHART2HTML_TYPE":   "bar", // config wins over env
	})

	code := runMain([]string{"chart2html", data}, te.Environment)
	if code != ExitSuccess {
		t.Fatalf("exit code = %d, stderr: %s", code, te.stderr)
	}

	payload := payloadOf(t, out)
	if got := gjson.Get(payload, "chart.type").String(); got != "area" {
		t.Errorf("chart.type = %q, want area", got)
	}
	if got := gjson.Get(payload, "legend.enabled").String(); got != "false" {
		t.Errorf("legend.enabled = %q, want false", got)
	}
	page, _ := os.ReadFile(out)
	if !strings.Contains(string(page), "#1e1e24") {
		t.Error("dark style not applied")
	}
}

func TestRunMain_ExitCodes(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	good := writeFile(t, dir, "good.json", `[1]`)
	scalar := writeFile(t, dir, "scalar.json", `42`)
	empty := writeFile(t, dir, "empty.json", `[]`)
	text := writeFile(t, dir, "notes.txt", "hello")

	tests := []struct {
		name string
		args []string
		want int
	}{
		{"help", []string{"--help"}, ExitSuccess},
		{"version", []string{"--version"}, ExitSuccess},
		{"unknown flag", []string{"--nope"}, ExitUsage},
		{"no input", []string{}, ExitIO},
		{"too many inputs", []string{good, good}, ExitUsage},
		{"missing file", []string{filepath.Join(dir, "missing.csv")}, ExitIO},
		{"unsupported extension", []string{text}, ExitUsage},
		{"scalar data", []string{scalar}, ExitUsage},
		{"empty data", []string{empty}, ExitUsage},
		{"bad show", []string{"--show", "popup", good}, ExitUsage},
		{"bad snapshot", []string{"--snapshot", "gif", good}, ExitUsage},
		{"bad timeout", []string{"--timeout", "soon", good}, ExitUsage},
		{"unknown style", []string{"--style", "nope", good}, ExitUsage},
		{"missing config", []string{"-c", filepath.Join(dir, "none.yaml"), good}, ExitUsage},
		{"missing output dir", []string{"-o", filepath.Join(dir, "no", "x.html"), good}, ExitIO},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			te := newTestEnv(nil)
			args := append([]string{"chart2html", "--show", "none", "-o", filepath.Join(t.TempDir(), "c.html")}, tt.args...)
			if got := runMain(args, te.Environment); got != tt.want {
				t.Errorf("exit code = %d, want %d (stderr: %s)", got, tt.want, te.stderr)
			}
		})
	}
}

func TestRunMain_ErrorHints(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	good := writeFile(t, dir, "good.json", `[1]`)
	te := newTestEnv(nil)

	code := runMain([]string{"chart2html", "--show", "none", "-o", filepath.Join(dir, "o.html"), "--style", "missing", good}, te.Environment)
	if code != ExitUsage {
		t.Fatalf("exit code = %d, want %d", code, ExitUsage)
	}
	stderr := te.stderr.String()
	if !strings.Contains(stderr, "error:") || !strings.Contains(stderr, "hint: available:") {
		t.Errorf("stderr = %q, want error with available styles hint", stderr)
	}
}

func TestRunMain_WarnsUnknownEnvVar(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	good := writeFile(t, dir, "good.json", `[1]`)
	te := newTestEnv(map[string]string{"CHART2HTML_STYEL": "dark"})

	code := runMain([]string{"chart2html", "--show", "none", "-o", filepath.Join(dir, "o.html"), good}, te.Environment)
	if code != ExitSuccess {
		t.Fatalf("exit code = %d, stderr: %s", code, te.stderr)
	}
	if !strings.Contains(te.stderr.String(), "CHART2HTML_STYEL") {
		t.Errorf("stderr = %q, want unknown variable warning", te.stderr.String())
	}
}
