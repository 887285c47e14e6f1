package chart2html

import (
	"bytes"
	"context"
	"errors"
	"testing"
)

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) {
	return 0, errors.New("closed")
}

func TestWriterDisplay(t *testing.T) {
	t.Parallel()

	t.Run("writes document", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		if err := NewWriterDisplay(&buf).Display(context.Background(), "<html></html>"); err != nil {
			t.Fatalf("Display() error: %v", err)
		}
		if buf.String() != "<html></html>" {
			t.Errorf("written = %q", buf.String())
		}
	})

	t.Run("write error", func(t *testing.T) {
		t.Parallel()

		if err := NewWriterDisplay(failingWriter{}).Display(context.Background(), "x"); err == nil {
			t.Error("expected error")
		}
	})

	t.Run("canceled context", func(t *testing.T) {
		t.Parallel()

		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		var buf bytes.Buffer
		err := NewWriterDisplay(&buf).Display(ctx, "x")
		if !errors.Is(err, context.Canceled) {
			t.Errorf("error = %v, want context.Canceled", err)
		}
		if buf.Len() != 0 {
			t.Error("nothing should be written")
		}
	})
}
