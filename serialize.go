package chart2html

import (
	"bytes"
	"encoding/json"
	"fmt"
	"regexp"
	"strings"
)

// RawMarker delimits option strings that must be emitted as code rather than
// as quoted strings, e.g. Highcharts formatter callbacks. It shares the
// placeholder delimiter: MarshalOptions strips every marker from its output,
// so a rendered page never contains the delimiter outside the template.
const RawMarker = PlaceholderDelimiter

// Raw wraps code so MarshalOptions emits it unquoted:
//
//	Options{"tooltip": map[string]any{
//	    "formatter": chart2html.Raw("function() { return this.y; }"),
//	}}
//
// The code is emitted verbatim apart from "</script", which becomes
// "<\/script" so it cannot end the page's script element.
func Raw(code string) string {
	return RawMarker + code + RawMarker
}

// rawStringPattern matches a whole JSON string wrapped in markers and
// captures its escaped body.
var rawStringPattern = regexp.MustCompile(`"` + RawMarker + `((?:[^"\\]|\\.)*?)` + RawMarker + `"`)

// MarshalOptions serializes options to JSON for embedding in a script
// element. Strings wrapped with Raw are emitted unquoted. Unbalanced markers
// are dropped and the surrounding string stays quoted.
func MarshalOptions(options Options) (string, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(options); err != nil {
		return "", fmt.Errorf("%w: %v", ErrSerialize, err)
	}

	return unwrapRaw(strings.TrimSuffix(buf.String(), "\n")), nil
}

// unwrapRaw runs the textual post-pass over serialized JSON: marked strings
// lose their quotes and markers and are unescaped back to the original code.
// Text outside them has remaining markers removed and is made safe to embed
// in a script element.
func unwrapRaw(serialized string) string {
	var b strings.Builder
	b.Grow(len(serialized))

	last := 0
	for _, loc := range rawStringPattern.FindAllStringSubmatchIndex(serialized, -1) {
		b.WriteString(escapeScriptText(serialized[last:loc[0]]))
		b.WriteString(rawCode(serialized[loc[2]:loc[3]]))
		last = loc[1]
	}
	b.WriteString(escapeScriptText(serialized[last:]))
	return b.String()
}

// rawCode decodes the escaped body of a marked JSON string.
func rawCode(body string) string {
	var code string
	if err := json.Unmarshal([]byte(`"`+body+`"`), &code); err != nil {
		code = body
	}
	code = strings.ReplaceAll(code, RawMarker, "")
	return scriptClosePattern.ReplaceAllString(code, `<\/$1`)
}

// scriptClosePattern matches an end tag for the script element.
var scriptClosePattern = regexp.MustCompile(`(?i)</(script)`)

// scriptTextEscaper keeps JSON text from ending the enclosing <script>
// element or opening an HTML comment inside it. Both replacements decode to
// the original characters in JSON and JS strings.
var scriptTextEscaper = strings.NewReplacer(
	"</", `<\/`,
	"<!--", `\u003c!--`,
)

// escapeScriptText drops stray markers first, so a marker splitting "</"
// cannot hide it from the escaper.
func escapeScriptText(s string) string {
	return scriptTextEscaper.Replace(strings.ReplaceAll(s, RawMarker, ""))
}
