package pdf

import (
	"context"
	"os"
	"os/exec"
	"time"

	"github.com/chromedp/chromedp"

	"github.com/greenvolt/solarquote/internal/logging"
	"github.com/greenvolt/solarquote/internal/quote"
)

// Options configures the shared browser process.
type Options struct {
	// ChromeBin overrides binary discovery when set.
	ChromeBin string
	// Timeout bounds a single materialization, page launch included.
	Timeout time.Duration
	// MaxPages bounds concurrently open pages; at capacity requests fail fast.
	MaxPages int
}

// Browser owns one headless Chrome allocator for the whole process. Each
// materialization gets its own isolated page context, cancelled on every
// exit path so the page is always torn down.
type Browser struct {
	allocCtx context.Context
	cancel   context.CancelFunc
	limiter  *Limiter
	timeout  time.Duration
	log      *logging.Logger
}

// NewBrowser prepares the allocator. Chrome itself launches lazily on
// the first page, so a missing binary only surfaces per request, as a
// MaterializationFailed.
func NewBrowser(opts Options, log *logging.Logger) *Browser {
	bin := opts.ChromeBin
	if bin == "" {
		bin = FindBinary()
	}
	if bin == "" {
		log.Warn("[pdf] no Chrome/Chromium binary found; server-side materialization will fail")
	} else {
		log.Info("[pdf] using browser binary: %s", bin)
	}

	allocOpts := append(chromedp.DefaultExecAllocatorOptions[:],
		chromedp.Flag("headless", true),
		chromedp.Flag("disable-gpu", true),
		chromedp.Flag("no-sandbox", true),
		chromedp.Flag("disable-dev-shm-usage", true),
	)
	if bin != "" {
		allocOpts = append(allocOpts, chromedp.ExecPath(bin))
	}

	allocCtx, cancel := chromedp.NewExecAllocator(context.Background(), allocOpts...)

	timeout := opts.Timeout
	if timeout <= 0 {
		timeout = 30 * time.Second
	}

	return &Browser{
		allocCtx: allocCtx,
		cancel:   cancel,
		limiter:  NewLimiter(opts.MaxPages),
		timeout:  timeout,
		log:      log,
	}
}

// Close tears down the allocator and any remaining pages.
func (b *Browser) Close() {
	b.cancel()
}

// withPage claims a capacity slot, opens a fresh page context bounded by
// the materialization timeout and the caller's context, runs fn, and
// releases everything regardless of outcome.
func (b *Browser) withPage(ctx context.Context, fn func(ctx context.Context) error) error {
	if !b.limiter.TryAcquire() {
		return quote.Errorf(quote.KindMaterializationFailed,
			"render capacity exhausted (%d concurrent pages)", b.limiter.Cap())
	}
	defer b.limiter.Release()

	tabCtx, cancelTab := chromedp.NewContext(b.allocCtx,
		chromedp.WithLogf(func(string, ...interface{}) {}))
	defer cancelTab()

	tabCtx, cancelTimeout := context.WithTimeout(tabCtx, b.timeout)
	defer cancelTimeout()

	// Abandoning the request releases the page.
	stop := context.AfterFunc(ctx, cancelTab)
	defer stop()

	return fn(tabCtx)
}

// FindBinary locates a Chrome/Chromium binary, or returns "".
func FindBinary() string {
	if bin := os.Getenv("CHROME_BIN"); bin != "" {
		return bin
	}

	names := []string{"google-chrome-stable", "google-chrome", "chromium", "chromium-browser"}
	for _, name := range names {
		if path, err := exec.LookPath(name); err == nil {
			return path
		}
	}

	paths := []string{
		"/usr/bin/google-chrome-stable",
		"/usr/bin/google-chrome",
		"/usr/bin/chromium-browser",
		"/usr/bin/chromium",
		"/snap/bin/chromium",
		"/opt/google/chrome/google-chrome",
	}
	for _, p := range paths {
		if _, err := os.Stat(p); err == nil {
			return p
		}
	}

	return ""
}
