package chart2html

import (
	"context"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/go-rod/rod"
	"github.com/go-rod/rod/lib/launcher"
	"github.com/go-rod/rod/lib/proto"

	"github.com/alnah/go-chart2html/internal/process"
)

// snapshotter renders a written chart page to image bytes.
type snapshotter interface {
	Snapshot(ctx context.Context, fileURL string, format SnapshotFormat) ([]byte, error)
	Close() error
}

// stableWait is how long the page must stay quiet (chart animation,
// CDN requests) before it is captured.
const stableWait = 500 * time.Millisecond

// rodSnapshotter implements snapshotter using headless Chrome via go-rod.
// Rod downloads Chromium on first run if no browser is found.
type rodSnapshotter struct {
	launcher *launcher.Launcher
	browser  *rod.Browser
	timeout  time.Duration
}

func newRodSnapshotter(timeout time.Duration) *rodSnapshotter {
	return &rodSnapshotter{timeout: timeout}
}

// ensureBrowser lazily connects to the browser.
func (r *rodSnapshotter) ensureBrowser() error {
	if r.browser != nil {
		return nil
	}

	l := launcher.New()

	// Pre-installed browser for containerized environments.
	if bin := os.Getenv("ROD_BROWSER_BIN"); bin != "" {
		l = l.Bin(bin)
	}

	if os.Getenv("CI") == "true" || os.Getenv("ROD_BROWSER_BIN") != "" || os.Getenv("ROD_NO_SANDBOX") == "1" {
		l = l.NoSandbox(true)
	}
	u, err := l.Launch()
	if err != nil {
		return fmt.Errorf("%w: %v", ErrBrowserConnect, err)
	}
	r.launcher = l

	r.browser = rod.New().ControlURL(u)
	if err := r.browser.Connect(); err != nil {
		r.browser = nil
		r.killLauncher()
		return fmt.Errorf("%w: %v", ErrBrowserConnect, err)
	}
	return nil
}

// Close releases browser resources and kills the browser process tree.
func (r *rodSnapshotter) Close() error {
	var err error
	if r.browser != nil {
		err = r.browser.Close()
		r.browser = nil
	}
	r.killLauncher()
	return err
}

func (r *rodSnapshotter) killLauncher() {
	if r.launcher == nil {
		return
	}
	process.KillTree(r.launcher.PID())
	r.launcher.Kill()
	r.launcher = nil
}

// Snapshot opens fileURL in headless Chrome, waits for the chart container
// and captures the page as PNG or PDF.
func (r *rodSnapshotter) Snapshot(ctx context.Context, fileURL string, format SnapshotFormat) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	if err := r.ensureBrowser(); err != nil {
		return nil, err
	}

	page, err := r.browser.Page(proto.TargetCreateTarget{URL: fileURL})
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrPageCreate, err)
	}
	defer page.Close()

	timeout := r.timeout
	if deadline, ok := ctx.Deadline(); ok {
		timeout = time.Until(deadline)
		if timeout <= 0 {
			return nil, context.DeadlineExceeded
		}
	}

	page = page.Context(ctx).Timeout(timeout)
	if err := page.WaitLoad(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrPageLoad, err)
	}
	if _, err := page.Element("#" + RenderTarget); err != nil {
		return nil, fmt.Errorf("%w: chart container: %v", ErrPageLoad, err)
	}
	if err := page.WaitStable(stableWait); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrPageLoad, err)
	}

	switch format {
	case SnapshotPNG:
		img, err := page.Screenshot(true, &proto.PageCaptureScreenshot{
			Format: proto.PageCaptureScreenshotFormatPng,
		})
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrSnapshot, err)
		}
		return img, nil
	case SnapshotPDF:
		reader, err := page.PDF(&proto.PagePrintToPDF{
			Landscape:       true,
			PrintBackground: true,
		})
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrSnapshot, err)
		}
		buf, err := io.ReadAll(reader)
		if err != nil {
			return nil, fmt.Errorf("%w: reading PDF stream: %v", ErrSnapshot, err)
		}
		return buf, nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrInvalidSnapshotFormat, format)
	}
}

var _ snapshotter = (*rodSnapshotter)(nil)
