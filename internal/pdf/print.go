package pdf

import (
	"context"

	"github.com/chromedp/cdproto/page"
	"github.com/chromedp/chromedp"

	"github.com/greenvolt/solarquote/internal/quote"
)

// PrintBackend materializes markup through Chrome's native PDF printer.
// Output is vector text, paginated by the browser.
type PrintBackend struct {
	browser *Browser
}

// NewPrintBackend creates the print backend over a shared Browser.
func NewPrintBackend(b *Browser) *PrintBackend {
	return &PrintBackend{browser: b}
}

// Materialize loads the markup into an isolated page and prints it.
func (p *PrintBackend) Materialize(ctx context.Context, html string, opts PageOptions) ([]byte, error) {
	var out []byte

	err := p.browser.withPage(ctx, func(tabCtx context.Context) error {
		return chromedp.Run(tabCtx,
			chromedp.Navigate("about:blank"),
			setDocumentContent(html),
			chromedp.WaitReady("body", chromedp.ByQuery),
			chromedp.ActionFunc(func(ctx context.Context) error {
				buf, _, err := page.PrintToPDF().
					WithPaperWidth(opts.WidthInches).
					WithPaperHeight(opts.HeightInches).
					WithMarginTop(opts.MarginInches).
					WithMarginBottom(opts.MarginInches).
					WithMarginLeft(opts.MarginInches).
					WithMarginRight(opts.MarginInches).
					WithPrintBackground(opts.PrintBackground).
					Do(ctx)
				if err != nil {
					return err
				}
				out = buf
				return nil
			}),
		)
	})
	if err != nil {
		if quote.KindOf(err) != "" {
			return nil, err
		}
		return nil, quote.Wrap(quote.KindMaterializationFailed, err, "print to PDF")
	}

	return out, nil
}

// setDocumentContent replaces the blank page's document with the markup.
// The markup is self-contained, so the page is idle as soon as the DOM is
// ready; there are no external resources to wait for.
func setDocumentContent(html string) chromedp.Action {
	return chromedp.ActionFunc(func(ctx context.Context) error {
		frameTree, err := page.GetFrameTree().Do(ctx)
		if err != nil {
			return err
		}
		return page.SetDocumentContent(frameTree.Frame.ID, html).Do(ctx)
	})
}
