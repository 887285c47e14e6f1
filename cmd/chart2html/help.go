package main

import (
	"fmt"
	"io"
)

// printUsage prints the command usage.
func printUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: chart2html [flags] <data>")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Render data as a standalone Highcharts HTML page.")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Arguments:")
	fmt.Fprintln(w, "  data    .csv, .tsv, .xlsx, .json, .yaml or .yml file; \"-\" reads JSON/YAML from stdin")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Chart:")
	fmt.Fprintln(w, "  -t, --type <s>            Chart type: line, column, bar, pie, ... (default: line)")
	fmt.Fprintln(w, "  -O, --options <path>      Highcharts options file (.json, .yaml, .yml)")
	fmt.Fprintln(w, "      --caption <md>        Markdown caption file or text under the chart")
	fmt.Fprintln(w, "      --sheet <name>        Worksheet for .xlsx input (default: first)")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Output:")
	fmt.Fprintln(w, "  -o, --output <path>       Output HTML file (default: chart.html)")
	fmt.Fprintln(w, "      --show <mode>         external, inline (HTML to stdout), none (default: external)")
	fmt.Fprintln(w, "      --snapshot <fmt>      Also export png or pdf (requires Chrome)")
	fmt.Fprintln(w, "      --timeout <d>         Snapshot timeout (default: 30s)")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Styling:")
	fmt.Fprintln(w, "      --style <s>           Style name, CSS file path, or inline CSS")
	fmt.Fprintln(w, "      --css <path>          Extra CSS file")
	fmt.Fprintln(w, "      --template <name>     Page template name")
	fmt.Fprintln(w, "      --asset-path <dir>    Custom asset directory")
	fmt.Fprintln(w, "      --no-style            Disable page styling")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "General:")
	fmt.Fprintln(w, "  -c, --config <name>       Config file name or path")
	fmt.Fprintln(w, "  -q, --quiet               Only show errors")
	fmt.Fprintln(w, "  -v, --verbose             Show debug logs")
	fmt.Fprintln(w, "      --version             Show version information")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Environment:")
	fmt.Fprintln(w, "  CHART2HTML_CONFIG, CHART2HTML_TYPE, CHART2HTML_OUTPUT, CHART2HTML_SHOW,")
	fmt.Fprintln(w, "  CHART2HTML_STYLE, CHART2HTML_TEMPLATE, CHART2HTML_ASSET_PATH,")
	fmt.Fprintln(w, "  CHART2HTML_SNAPSHOT, CHART2HTML_TIMEOUT")
}
