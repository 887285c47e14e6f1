package pipeline

import (
	"bytes"
	"context"
	"errors"
	"fmt"

	chromahtml "github.com/alecthomas/chroma/v2/formatters/html"
	"github.com/yuin/goldmark"
	highlighting "github.com/yuin/goldmark-highlighting/v2"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/renderer/html"
)

// ErrCaptionConversion indicates Markdown to HTML conversion failed.
var ErrCaptionConversion = errors.New("caption conversion failed")

// CaptionConverter turns caption Markdown into an HTML fragment.
type CaptionConverter interface {
	ToFragment(ctx context.Context, markdown string) (string, error)
}

// GoldmarkConverter converts Markdown to HTML using goldmark (pure Go).
type GoldmarkConverter struct {
	md goldmark.Markdown
}

// NewGoldmarkConverter creates a GoldmarkConverter with GFM extensions and
// syntax highlighting for fenced code.
func NewGoldmarkConverter() *GoldmarkConverter {
	md := goldmark.New(
		goldmark.WithExtensions(
			extension.GFM,
			highlighting.NewHighlighting(
				highlighting.WithStyle("github"),
				highlighting.WithFormatOptions(
					chromahtml.WithClasses(false), // inline colors, the page has no chroma stylesheet
				),
			),
		),
		goldmark.WithRendererOptions(
			html.WithXHTML(),
			// Raw HTML in captions is dropped (no WithUnsafe).
		),
	)
	return &GoldmarkConverter{md: md}
}

// ToFragment converts Markdown to an HTML fragment without a document wrapper.
func (c *GoldmarkConverter) ToFragment(ctx context.Context, markdown string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	var buf bytes.Buffer
	if err := c.md.Convert([]byte(markdown), &buf); err != nil {
		return "", fmt.Errorf("%w: %v", ErrCaptionConversion, err)
	}
	return buf.String(), nil
}

var _ CaptionConverter = (*GoldmarkConverter)(nil)
