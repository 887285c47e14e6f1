package main

import (
	"io"

	flag "github.com/spf13/pflag"
)

// commonFlags holds flags controlling config and verbosity.
type commonFlags struct {
	config  string
	quiet   bool
	verbose bool
}

// assetFlags holds asset-related flags (styles, templates, custom asset path).
type assetFlags struct {
	style     string // Name, path, or inline CSS
	template  string // Template name
	assetPath string // Override asset directory
	noStyle   bool   // Disable the page style
}

// outputFlags holds output destination and display flags.
type outputFlags struct {
	path     string
	show     string
	snapshot string
}

// plotFlags holds all flags of the chart2html command.
type plotFlags struct {
	common  commonFlags
	assets  assetFlags
	output  outputFlags
	typ     string
	options string
	css     string
	caption string
	sheet   string
	timeout string
	version bool
	help    bool
}

// addCommonFlags adds common flags to a FlagSet.
func addCommonFlags(fs *flag.FlagSet, f *commonFlags) {
	fs.StringVarP(&f.config, "config", "c", "", "config file name or path")
	fs.BoolVarP(&f.quiet, "quiet", "q", false, "only show errors")
	fs.BoolVarP(&f.verbose, "verbose", "v", false, "show debug logs")
}

// addAssetFlags adds asset-related flags to a FlagSet.
func addAssetFlags(fs *flag.FlagSet, f *assetFlags) {
	fs.StringVar(&f.style, "style", "", "style name, CSS file path, or inline CSS")
	fs.StringVar(&f.template, "template", "", "page template name")
	fs.StringVar(&f.assetPath, "asset-path", "", "custom asset directory (templates/, styles/)")
	fs.BoolVar(&f.noStyle, "no-style", false, "disable page styling")
}

// addOutputFlags adds output flags to a FlagSet.
func addOutputFlags(fs *flag.FlagSet, f *outputFlags) {
	fs.StringVarP(&f.path, "output", "o", "", "output HTML file (default: chart.html)")
	fs.StringVar(&f.show, "show", "", "display mode: external, inline, none (default: external)")
	fs.StringVar(&f.snapshot, "snapshot", "", "also export png or pdf next to the HTML file")
}

// parseFlags parses command-line arguments (without the program name) and
// returns positional args. Parse errors are reported on errOut.
func parseFlags(args []string, errOut io.Writer) (*plotFlags, []string, error) {
	fs := flag.NewFlagSet("chart2html", flag.ContinueOnError)
	fs.SetOutput(errOut)
	f := &plotFlags{}

	fs.StringVarP(&f.typ, "type", "t", "", "chart type (default: line)")
	fs.StringVarP(&f.options, "options", "O", "", "chart options file (.json, .yaml, .yml)")
	fs.StringVar(&f.css, "css", "", "extra CSS file appended after the style")
	fs.StringVar(&f.caption, "caption", "", "Markdown caption file or text shown under the chart")
	fs.StringVar(&f.sheet, "sheet", "", "worksheet name for .xlsx input (default: first)")
	fs.StringVar(&f.timeout, "timeout", "", "snapshot timeout (e.g., 30s, 2m)")
	fs.BoolVar(&f.version, "version", false, "show version information")
	fs.BoolVarP(&f.help, "help", "h", false, "show help")

	addCommonFlags(fs, &f.common)
	addAssetFlags(fs, &f.assets)
	addOutputFlags(fs, &f.output)

	fs.Usage = func() { printUsage(errOut) }

	if err := fs.Parse(args); err != nil {
		return nil, nil, err
	}

	return f, fs.Args(), nil
}
