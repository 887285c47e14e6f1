package chart2html

import (
	"fmt"
	"maps"
)

// MergeOptions builds the complete chart configuration from normalized data,
// caller options and a chart type tag. options is never modified.
//
// chart.type and chart.renderTo are always overwritten. Series data follows
// the caller-wins rule:
//   - no "series" key: one series is created with data as its "data"
//   - first series without "data": data is injected there
//   - first series with "data": the caller's series are kept and data is discarded
//
// An empty or malformed series list returns ErrInvalidSeriesConfiguration.
func MergeOptions(data any, options Options, chartType string) (Options, error) {
	if chartType == "" {
		chartType = DefaultChartType
	}

	merged := make(Options, len(options)+2)
	maps.Copy(merged, options)

	chart, err := chartSection(merged["chart"])
	if err != nil {
		return nil, err
	}
	chart["type"] = chartType
	chart["renderTo"] = RenderTarget
	merged["chart"] = chart

	raw, ok := merged["series"]
	if !ok {
		merged["series"] = []any{map[string]any{"data": data}}
		return merged, nil
	}

	series, err := seriesList(raw)
	if err != nil {
		return nil, err
	}
	first, ok := asMapping(series[0])
	if !ok {
		return nil, fmt.Errorf("%w: first series is %T, want a mapping", ErrInvalidSeriesConfiguration, series[0])
	}
	if _, hasData := first["data"]; !hasData {
		entry := make(map[string]any, len(first)+1)
		maps.Copy(entry, first)
		entry["data"] = data
		series[0] = entry
	}
	merged["series"] = series

	return merged, nil
}

// chartSection returns a writable copy of the "chart" section.
func chartSection(v any) (map[string]any, error) {
	if v == nil {
		return map[string]any{}, nil
	}
	m, ok := asMapping(v)
	if !ok {
		return nil, fmt.Errorf("%w: chart is %T, want a mapping", ErrInvalidOptions, v)
	}
	if m == nil {
		return map[string]any{}, nil
	}
	return maps.Clone(m), nil
}

// seriesList returns a copy of the series list as []any. The list must hold
// at least one entry.
func seriesList(v any) ([]any, error) {
	var out []any
	switch s := v.(type) {
	case []any:
		out = append([]any(nil), s...)
	case []map[string]any:
		for _, e := range s {
			out = append(out, e)
		}
	case []Options:
		for _, e := range s {
			out = append(out, e)
		}
	case []Record:
		for _, e := range s {
			out = append(out, e)
		}
	default:
		return nil, fmt.Errorf("%w: series is %T, want a list", ErrInvalidSeriesConfiguration, v)
	}
	if len(out) == 0 {
		return nil, fmt.Errorf("%w: series list is empty", ErrInvalidSeriesConfiguration)
	}
	return out, nil
}

// asMapping views the mapping types callers commonly nest in Options.
func asMapping(v any) (map[string]any, bool) {
	switch m := v.(type) {
	case map[string]any:
		return m, true
	case Options:
		return m, true
	case Record:
		return m, true
	default:
		return nil, false
	}
}
