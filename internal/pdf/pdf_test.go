package pdf

import (
	"bytes"
	"context"
	"image"
	"image/color"
	"image/png"
	"strings"
	"testing"
	"time"

	"github.com/greenvolt/solarquote/internal/logging"
	"github.com/greenvolt/solarquote/internal/quote"
)

func TestA4Defaults(t *testing.T) {
	opts := A4()

	if opts.WidthInches != 8.27 || opts.HeightInches != 11.69 {
		t.Fatalf("unexpected page size: %+v", opts)
	}
	if opts.MarginInches != 0.4 {
		t.Fatalf("unexpected margin: %v", opts.MarginInches)
	}
	if !opts.PrintBackground {
		t.Fatal("backgrounds must print")
	}
}

func TestLimiterFailsFastAtCapacity(t *testing.T) {
	l := NewLimiter(2)

	if !l.TryAcquire() || !l.TryAcquire() {
		t.Fatal("expected two acquisitions to succeed")
	}
	if l.TryAcquire() {
		t.Fatal("third acquisition must fail fast, not queue")
	}

	l.Release()
	if !l.TryAcquire() {
		t.Fatal("released slot must be reusable")
	}
}

func TestLimiterNormalizesCapacity(t *testing.T) {
	if got := NewLimiter(0).Cap(); got != 1 {
		t.Fatalf("Cap() = %d, want 1", got)
	}
}

func testPNG(t *testing.T, w, h int) []byte {
	t.Helper()

	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.Set(x, y, color.RGBA{R: 240, G: 244, B: 238, A: 255})
		}
	}

	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		t.Fatalf("encode png: %v", err)
	}
	return buf.Bytes()
}

func TestAssemblePDFSinglePage(t *testing.T) {
	out, err := assemblePDF(testPNG(t, 794, 600), A4())
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}

	if !bytes.HasPrefix(out, []byte("%PDF")) {
		t.Fatal("output is not a PDF")
	}
	if !bytes.Contains(out, []byte("/Count 1")) {
		t.Fatal("expected a single page")
	}
}

func TestAssemblePDFSlicesTallCaptures(t *testing.T) {
	// 3400 px at A4 usable width scales to roughly three usable page
	// heights worth of content.
	out, err := assemblePDF(testPNG(t, 794, 3400), A4())
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}

	if !bytes.Contains(out, []byte("/Count 3")) {
		t.Fatal("expected three pages")
	}
}

func TestAssemblePDFRejectsGarbage(t *testing.T) {
	if _, err := assemblePDF([]byte("not a png"), A4()); err == nil {
		t.Fatal("expected decode error")
	}
}

// The end-to-end backend tests need a local Chrome/Chromium install and
// skip when none is discoverable.

func newTestBrowser(t *testing.T) *Browser {
	t.Helper()

	if FindBinary() == "" {
		t.Skip("no Chrome/Chromium binary available")
	}
	b := NewBrowser(Options{Timeout: 60 * time.Second, MaxPages: 2}, logging.New())
	t.Cleanup(b.Close)
	return b
}

const testMarkup = `<!DOCTYPE html><html><head><style>body{font-family:sans-serif}</style></head>` +
	`<body><h1>Quotation</h1><p>4 kW grid-tie system</p></body></html>`

func TestPrintBackendEndToEnd(t *testing.T) {
	b := newTestBrowser(t)

	out, err := NewPrintBackend(b).Materialize(context.Background(), testMarkup, A4())
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if !bytes.HasPrefix(out, []byte("%PDF")) {
		t.Fatal("output is not a PDF")
	}
}

func TestRasterBackendEndToEnd(t *testing.T) {
	b := newTestBrowser(t)

	out, err := NewRasterBackend(b).Materialize(context.Background(), testMarkup, A4())
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if !bytes.HasPrefix(out, []byte("%PDF")) {
		t.Fatal("output is not a PDF")
	}
}

func TestWithPageFailsFastAtCapacity(t *testing.T) {
	b := NewBrowser(Options{Timeout: time.Second, MaxPages: 1}, logging.New())
	t.Cleanup(b.Close)

	// Occupy the only slot without touching the browser.
	if !b.limiter.TryAcquire() {
		t.Fatal("expected to claim the slot")
	}
	defer b.limiter.Release()

	err := b.withPage(context.Background(), func(context.Context) error { return nil })
	if quote.KindOf(err) != quote.KindMaterializationFailed {
		t.Fatalf("kind = %q, want %q", quote.KindOf(err), quote.KindMaterializationFailed)
	}
	if !strings.Contains(err.Error(), "capacity") {
		t.Fatalf("unexpected message: %v", err)
	}
}
