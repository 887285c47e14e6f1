package chart2html

import (
	"context"
	"fmt"
	"io"

	"github.com/go-rod/rod/lib/launcher"
)

// Displayer shows a rendered document inside an interactive session, such as
// a notebook kernel's display channel.
type Displayer interface {
	Display(ctx context.Context, html string) error
}

// WriterDisplay is a Displayer that writes the document to an io.Writer.
type WriterDisplay struct {
	w io.Writer
}

// NewWriterDisplay creates a WriterDisplay writing to w.
func NewWriterDisplay(w io.Writer) *WriterDisplay {
	return &WriterDisplay{w: w}
}

// Display writes html to the underlying writer.
func (d *WriterDisplay) Display(ctx context.Context, html string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if _, err := io.WriteString(d.w, html); err != nil {
		return fmt.Errorf("writing document: %w", err)
	}
	return nil
}

var _ Displayer = (*WriterDisplay)(nil)

// openExternal opens a URL in the system browser without waiting for it.
// launcher.Open reports no errors, which keeps headless hosts working.
func openExternal(url string) {
	launcher.Open(url)
}
