package pipeline

import (
	"context"
	"strings"
)

// CSSInjector defines the contract for CSS injection into HTML.
type CSSInjector interface {
	InjectCSS(ctx context.Context, htmlContent, cssContent string) string
}

// CSSInjection injects CSS as a <style> block into HTML content.
type CSSInjection struct{}

// InjectCSS inserts a <style> block into HTML content.
// Tries </head> first, then <body>, then prepends to the HTML.
func (s *CSSInjection) InjectCSS(ctx context.Context, htmlContent, cssContent string) string {
	if cssContent == "" || ctx.Err() != nil {
		return htmlContent
	}

	styleBlock := "<style>" + sanitizeCSS(cssContent) + "</style>"
	lowerHTML := strings.ToLower(htmlContent)

	if idx := strings.Index(lowerHTML, "</head>"); idx != -1 {
		return htmlContent[:idx] + styleBlock + htmlContent[idx:]
	}

	if pos, ok := afterBodyOpen(htmlContent, lowerHTML); ok {
		return htmlContent[:pos] + styleBlock + htmlContent[pos:]
	}

	return styleBlock + htmlContent
}

// sanitizeCSS escapes "</" so the CSS cannot close the <style> element.
func sanitizeCSS(css string) string {
	return strings.ReplaceAll(css, "</", `<\/`)
}

// CaptionInjector defines the contract for caption injection into HTML.
type CaptionInjector interface {
	InjectCaption(ctx context.Context, htmlContent, captionHTML string) (string, error)
}

// CaptionInjection wraps a caption fragment and places it before </body>.
type CaptionInjection struct{}

// InjectCaption inserts captionHTML, wrapped in a div.chart-caption, before
// </body>, appending to the document when there is no body end tag.
// An empty caption leaves htmlContent unchanged.
func (c *CaptionInjection) InjectCaption(ctx context.Context, htmlContent, captionHTML string) (string, error) {
	if captionHTML == "" {
		return htmlContent, nil
	}
	if err := ctx.Err(); err != nil {
		return "", err
	}

	block := `<div class="chart-caption">` + captionHTML + `</div>` + "\n"
	lowerHTML := strings.ToLower(htmlContent)

	if idx := strings.LastIndex(lowerHTML, "</body>"); idx != -1 {
		return htmlContent[:idx] + block + htmlContent[idx:], nil
	}

	return htmlContent + block, nil
}

// afterBodyOpen returns the offset just past the <body ...> tag.
func afterBodyOpen(htmlContent, lowerHTML string) (int, bool) {
	idx := strings.Index(lowerHTML, "<body")
	if idx == -1 {
		return 0, false
	}
	closeIdx := strings.Index(htmlContent[idx:], ">")
	if closeIdx == -1 {
		return 0, false
	}
	return idx + closeIdx + 1, true
}

var (
	_ CSSInjector     = (*CSSInjection)(nil)
	_ CaptionInjector = (*CaptionInjection)(nil)
)
