package pipeline

import (
	"context"
	"strings"
	"testing"
)

func TestGoldmarkConverter_ToFragment(t *testing.T) {
	t.Parallel()

	conv := NewGoldmarkConverter()

	tests := []struct {
		name        string
		markdown    string
		wantContain []string
		wantAbsent  []string
	}{
		{
			name:        "paragraph with emphasis",
			markdown:    "Sales for **Q3**.",
			wantContain: []string{"<p>", "<strong>Q3</strong>"},
			wantAbsent:  []string{"<html", "<body"},
		},
		{
			name:        "GFM table",
			markdown:    "| a | b |\n|---|---|\n| 1 | 2 |\n",
			wantContain: []string{"<table>", "<td>1</td>"},
		},
		{
			name:        "fenced code is highlighted",
			markdown:    "```go\nfunc main() {}\n```\n",
			wantContain: []string{"<pre", "style="},
		},
		{
			name:       "raw HTML is dropped",
			markdown:   "<script>alert(1)</script>\n",
			wantAbsent: []string{"<script>"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := conv.ToFragment(context.Background(), tt.markdown)
			if err != nil {
				t.Fatalf("ToFragment() error = %v", err)
			}
			for _, want := range tt.wantContain {
				if !strings.Contains(got, want) {
					t.Errorf("ToFragment() = %q, should contain %q", got, want)
				}
			}
			for _, absent := range tt.wantAbsent {
				if strings.Contains(got, absent) {
					t.Errorf("ToFragment() = %q, should not contain %q", got, absent)
				}
			}
		})
	}
}

func TestGoldmarkConverter_CancelledContext(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if _, err := NewGoldmarkConverter().ToFragment(ctx, "text"); err == nil {
		t.Error("ToFragment() expected context error")
	}
}
