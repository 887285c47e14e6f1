package main

import (
	"errors"
	"fmt"
	"io"
	"maps"
	"os"
	"path/filepath"
	"strings"

	chart2html "github.com/alnah/go-chart2html"
	"github.com/alnah/go-chart2html/internal/tabular"
	"github.com/alnah/go-chart2html/internal/yamlutil"
)

// Sentinel errors for CLI input handling.
var (
	ErrNoInput            = errors.New("no data file specified")
	ErrUsage              = errors.New("invalid usage")
	ErrReadData           = errors.New("failed to read input")
	ErrUnsupportedInput   = errors.New("unsupported data file extension")
	ErrInvalidOptionsFile = errors.New("options file must contain a mapping")
)

// stdinArg selects standard input as the data source.
const stdinArg = "-"

// loadData reads a data file and returns a value chart2html accepts:
// a *chart2html.Table for delimited and spreadsheet files, decoded
// sequences or mappings for JSON and YAML.
func loadData(path, sheet string, stdin io.Reader) (any, error) {
	if path == stdinArg {
		content, err := readLimited(stdin)
		if err != nil {
			return nil, fmt.Errorf("%w: stdin: %w", ErrReadData, err)
		}
		return decodeDocument(content, "stdin")
	}

	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".csv":
		return readDelimited(path, ',')
	case ".tsv":
		return readDelimited(path, '\t')
	case ".xlsx":
		s, err := tabular.ReadXLSX(path, sheet)
		if err != nil {
			return nil, fmt.Errorf("%w: %s: %w", ErrReadData, path, err)
		}
		return sheetTable(s), nil
	case ".json", ".yaml", ".yml":
		content, err := os.ReadFile(path) // #nosec G304 -- user-provided path
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrReadData, err)
		}
		return decodeDocument(content, path)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedInput, ext)
	}
}

func readDelimited(path string, comma rune) (*chart2html.Table, error) {
	f, err := os.Open(path) // #nosec G304 -- user-provided path
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrReadData, err)
	}
	defer f.Close()

	s, err := tabular.ReadCSV(f, comma)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrReadData, path, err)
	}
	return sheetTable(s), nil
}

func sheetTable(s *tabular.Sheet) *chart2html.Table {
	return chart2html.NewTable(s.Columns, s.Rows)
}

// decodeDocument parses JSON or YAML content. An empty document is empty data.
func decodeDocument(content []byte, source string) (any, error) {
	v, err := yamlutil.Decode(content)
	if err != nil {
		if errors.Is(err, yamlutil.ErrNilData) {
			return nil, fmt.Errorf("%w: %s", chart2html.ErrEmptyData, source)
		}
		return nil, fmt.Errorf("%w: %s: %w", ErrReadData, source, err)
	}
	return v, nil
}

// loadOptions reads a JSON or YAML options file.
func loadOptions(path string) (chart2html.Options, error) {
	content, err := os.ReadFile(path) // #nosec G304 -- user-provided path
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrReadData, err)
	}
	v, err := yamlutil.Decode(content)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrInvalidOptionsFile, path, err)
	}
	m, ok := v.(map[string]any)
	if !ok {
		return nil, fmt.Errorf("%w: %s holds %T", ErrInvalidOptionsFile, path, v)
	}
	return chart2html.Options(m), nil
}

// mergeOptions overlays override on base, top-level keys only.
// Neither argument is modified.
func mergeOptions(base map[string]any, override chart2html.Options) chart2html.Options {
	out := make(chart2html.Options, len(base)+len(override))
	maps.Copy(out, base)
	maps.Copy(out, override)
	return out
}

func readLimited(r io.Reader) ([]byte, error) {
	content, err := io.ReadAll(io.LimitReader(r, int64(yamlutil.MaxInputSize)+1))
	if err != nil {
		return nil, err
	}
	if len(content) > yamlutil.MaxInputSize {
		return nil, yamlutil.ErrInputTooLarge
	}
	return content, nil
}
