package chart2html

import (
	"fmt"
	"regexp"
)

// PlaceholderDelimiter starts the template placeholder. It differs from Go
// and JS interpolation syntax so template scripts are never mistaken for it.
const PlaceholderDelimiter = "@@"

// Placeholder is the single substitution point a page template must contain.
const Placeholder = PlaceholderDelimiter + "options"

// placeholderPattern matches Placeholder ending at a word boundary, so
// "@@optionsX" is not a placeholder.
var placeholderPattern = regexp.MustCompile(regexp.QuoteMeta(Placeholder) + `\b`)

// renderTemplate substitutes serialized options at the template placeholder.
// The template must contain the placeholder exactly once. Substitution is
// literal: "$" sequences in options are not expanded.
func renderTemplate(tmpl, options string) (string, error) {
	locs := placeholderPattern.FindAllStringIndex(tmpl, 2)
	switch len(locs) {
	case 0:
		return "", fmt.Errorf("%w: %s", ErrMissingPlaceholder, Placeholder)
	case 1:
		start, end := locs[0][0], locs[0][1]
		return tmpl[:start] + options + tmpl[end:], nil
	default:
		return "", fmt.Errorf("%w: %s", ErrDuplicatePlaceholder, Placeholder)
	}
}
