package pdf

import (
	"bytes"
	"context"
	"image/png"
	"math"

	"github.com/chromedp/chromedp"
	"github.com/jung-kurt/gofpdf"

	"github.com/greenvolt/solarquote/internal/quote"
)

const mmPerInch = 25.4

// viewportWidthPx is the CSS pixel width the document is laid out at
// before capture: full A4 width at 96 dpi.
const viewportWidthPx = 794

// RasterBackend materializes markup by capturing the laid-out page as a
// PNG at a fixed device scale and slicing the capture into pages. The
// result is raster rather than vector, mirroring a DOM-to-canvas
// capture pipeline, but carries the same page geometry as the print
// backend.
type RasterBackend struct {
	browser *Browser
}

// NewRasterBackend creates the raster backend over a shared Browser.
func NewRasterBackend(b *Browser) *RasterBackend {
	return &RasterBackend{browser: b}
}

// Materialize captures the markup and assembles the PDF.
func (r *RasterBackend) Materialize(ctx context.Context, html string, opts PageOptions) ([]byte, error) {
	scale := opts.DeviceScale
	if scale <= 0 {
		scale = 1
	}

	var shot []byte
	err := r.browser.withPage(ctx, func(tabCtx context.Context) error {
		return chromedp.Run(tabCtx,
			chromedp.EmulateViewport(viewportWidthPx, 1, chromedp.EmulateScale(scale)),
			chromedp.Navigate("about:blank"),
			setDocumentContent(html),
			chromedp.WaitReady("body", chromedp.ByQuery),
			// Quality 100 selects lossless PNG capture of the full page.
			chromedp.FullScreenshot(&shot, 100),
		)
	})
	if err != nil {
		if quote.KindOf(err) != "" {
			return nil, err
		}
		return nil, quote.Wrap(quote.KindMaterializationFailed, err, "capture page")
	}

	out, err := assemblePDF(shot, opts)
	if err != nil {
		return nil, quote.Wrap(quote.KindMaterializationFailed, err, "assemble PDF from capture")
	}
	return out, nil
}

// assemblePDF slices one tall page capture into fixed-size PDF pages.
// The capture is scaled to the usable page width and repeated with a
// vertical offset per page, clipped to the content box.
func assemblePDF(pngBytes []byte, opts PageOptions) ([]byte, error) {
	cfg, err := png.DecodeConfig(bytes.NewReader(pngBytes))
	if err != nil {
		return nil, err
	}
	if cfg.Width <= 0 || cfg.Height <= 0 {
		return nil, quote.Errorf(quote.KindMaterializationFailed, "empty page capture")
	}

	pageW := opts.WidthInches * mmPerInch
	pageH := opts.HeightInches * mmPerInch
	margin := opts.MarginInches * mmPerInch
	usableW := pageW - 2*margin
	usableH := pageH - 2*margin

	imgW := usableW
	imgH := float64(cfg.Height) * usableW / float64(cfg.Width)
	pages := int(math.Ceil(imgH / usableH))
	if pages < 1 {
		pages = 1
	}

	doc := gofpdf.NewCustom(&gofpdf.InitType{
		OrientationStr: "P",
		UnitStr:        "mm",
		Size:           gofpdf.SizeType{Wd: pageW, Ht: pageH},
	})
	imgOpts := gofpdf.ImageOptions{ImageType: "PNG"}
	doc.RegisterImageOptionsReader("capture", imgOpts, bytes.NewReader(pngBytes))

	for p := 0; p < pages; p++ {
		doc.AddPage()
		doc.ClipRect(margin, margin, usableW, usableH, false)
		doc.ImageOptions("capture", margin, margin-float64(p)*usableH, imgW, imgH, false, imgOpts, 0, "")
		doc.ClipEnd()
	}

	var buf bytes.Buffer
	if err := doc.Output(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
