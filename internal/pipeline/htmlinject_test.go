package pipeline

import (
	"context"
	"strings"
	"testing"
)

func TestSanitizeCSS(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"empty string", "", ""},
		{"no escape needed", "body { color: red; }", "body { color: red; }"},
		{"escapes style close", "</style>", `<\/style>`},
		{"escapes script close", "</script>", `<\/script>`},
		{"multiple occurrences", "</a></b>", `<\/a><\/b>`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := sanitizeCSS(tt.input); got != tt.expected {
				t.Errorf("sanitizeCSS(%q) = %q, want %q", tt.input, got, tt.expected)
			}
		})
	}
}

func TestInjectCSS(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		html     string
		css      string
		expected string
	}{
		{
			name:     "empty CSS returns HTML unchanged",
			html:     "<html><head></head><body></body></html>",
			css:      "",
			expected: "<html><head></head><body></body></html>",
		},
		{
			name:     "inserts before </head>",
			html:     "<html><head><title>T</title></head><body></body></html>",
			css:      "#container{height:300px}",
			expected: "<html><head><title>T</title><style>#container{height:300px}</style></head><body></body></html>",
		},
		{
			name:     "case insensitive head",
			html:     "<HTML><HEAD></HEAD><BODY></BODY></HTML>",
			css:      "a{}",
			expected: "<HTML><HEAD><style>a{}</style></HEAD><BODY></BODY></HTML>",
		},
		{
			name:     "falls back to after <body>",
			html:     `<body class="x"><div id="container"></div></body>`,
			css:      "a{}",
			expected: `<body class="x"><style>a{}</style><div id="container"></div></body>`,
		},
		{
			name:     "prepends without head or body",
			html:     `<div id="container"></div>`,
			css:      "a{}",
			expected: `<style>a{}</style><div id="container"></div>`,
		},
	}

	injector := &CSSInjection{}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got := injector.InjectCSS(context.Background(), tt.html, tt.css)
			if got != tt.expected {
				t.Errorf("InjectCSS() = %q, want %q", got, tt.expected)
			}
		})
	}
}

func TestInjectCSS_CancelledContext(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	html := "<head></head>"
	if got := (&CSSInjection{}).InjectCSS(ctx, html, "a{}"); got != html {
		t.Errorf("InjectCSS() with cancelled context = %q, want unchanged", got)
	}
}

func TestInjectCaption(t *testing.T) {
	t.Parallel()

	injector := &CaptionInjection{}

	t.Run("empty caption is a no-op", func(t *testing.T) {
		t.Parallel()

		html := "<body></body>"
		got, err := injector.InjectCaption(context.Background(), html, "")
		if err != nil {
			t.Fatalf("InjectCaption() error = %v", err)
		}
		if got != html {
			t.Errorf("InjectCaption() = %q, want unchanged", got)
		}
	})

	t.Run("inserts before the last </body>", func(t *testing.T) {
		t.Parallel()

		html := "<body><script>var s='</body>';</script></body></html>"
		got, err := injector.InjectCaption(context.Background(), html, "<p>Note</p>")
		if err != nil {
			t.Fatalf("InjectCaption() error = %v", err)
		}
		want := "<body><script>var s='</body>';</script>" +
			`<div class="chart-caption"><p>Note</p></div>` + "\n</body></html>"
		if got != want {
			t.Errorf("InjectCaption() = %q, want %q", got, want)
		}
	})

	t.Run("appends without body end tag", func(t *testing.T) {
		t.Parallel()

		got, err := injector.InjectCaption(context.Background(), "<div></div>", "<p>x</p>")
		if err != nil {
			t.Fatalf("InjectCaption() error = %v", err)
		}
		if !strings.HasSuffix(got, `<div class="chart-caption"><p>x</p></div>`+"\n") {
			t.Errorf("InjectCaption() = %q, want caption appended", got)
		}
	})

	t.Run("cancelled context", func(t *testing.T) {
		t.Parallel()

		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		if _, err := injector.InjectCaption(ctx, "<body></body>", "<p>x</p>"); err == nil {
			t.Error("InjectCaption() expected context error")
		}
	})
}
