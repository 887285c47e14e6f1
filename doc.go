// Package chart2html renders data and Highcharts options into a standalone
// HTML page.
//
// # Quick Start
//
// Create a plotter, plot, and close when done:
//
//	p, err := chart2html.NewPlotter()
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer p.Close()
//
//	res, err := p.Plot(ctx, chart2html.Input{
//	    Data: []chart2html.Record{{"x": 1, "y": 10}, {"x": 2, "y": 20}},
//	    Type: "column",
//	    Save: "sales.html",
//	    Show: chart2html.DisplayExternal,
//	})
//
// The page loads Highcharts from its CDN and draws the chart into the
// element with id "container".
//
// # Plot Pipeline
//
// Plot runs these stages in order and stops at the first error:
//
//  1. Data normalization: records pass through, mappings pass through,
//     Tabular values become one Record per row
//  2. Option merge: chart.type and chart.renderTo are set, data is attached
//     to the first series unless that series already has data
//  3. Serialization to JSON, with Raw strings emitted as code
//  4. Template rendering at the single @@options placeholder
//  5. Style and caption injection
//  6. Atomic write to Input.Save
//  7. Optional PNG or PDF snapshot through headless Chrome
//  8. Display: inline (Displayer), external (system browser), or none
//
// Nothing is written if any stage before the write fails.
//
// # Data Shapes
//
// Input.Data accepts:
//
//   - a sequence of records ([]Record, []map[string]any, any slice)
//   - a mapping (Record, map[string]any, any string-keyed map)
//   - a Tabular value such as *Table
//
// Anything else returns ErrUnsupportedDataType. Empty data of any shape
// returns ErrEmptyData.
//
// # Raw JavaScript
//
// Highcharts callbacks are functions, which JSON cannot carry. Wrap them with
// Raw so they are emitted unquoted:
//
//	Options{"tooltip": map[string]any{
//	    "formatter": chart2html.Raw("function() { return this.y + ' pts'; }"),
//	}}
//
// # Display Modes
//
// DisplayInline, the default, hands the page to the Displayer set with
// WithDisplayer and returns ErrDisplayUnavailable when none is set; it never
// falls back to the system browser. DisplayExternal opens the written file
// and does not wait. DisplayNone only writes.
//
// # Customization
//
// Use WithAssetPath to load templates and styles from a directory laid out as
// templates/{name}.html and styles/{name}.css. Missing assets fall back to
// the built-in ones. Templates must contain @@options exactly once and an
// element with id "container".
//
// # Error Handling
//
// Errors wrap the sentinels in errors.go; match them with errors.Is.
package chart2html
