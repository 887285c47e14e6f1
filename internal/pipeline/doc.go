// Package pipeline holds the HTML decoration stages applied to a rendered
// chart page:
//   - Markdown caption conversion via Goldmark
//   - CSS injection into the document head
//   - caption injection before the end of the body
//
// Building the chart configuration and substituting it into the page template
// happens in the root chart2html package; this package only edits the
// resulting document.
package pipeline
