package printing

import (
	"context"
	"time"

	"github.com/chromedp/cdproto/page"
	"github.com/chromedp/chromedp"

	"github.com/jonathan/cv-builder/internal/templates"
	"github.com/jonathan/cv-builder/internal/types"
)

// A4 paper dimensions in inches, as PrintToPDF expects.
const (
	a4WidthIn  = 8.27
	a4HeightIn = 11.69
)

// DefaultTimeout bounds a single PDF generation run.
const DefaultTimeout = 60 * time.Second

// Generator renders print documents to PDF bytes in a headless browser.
// Requires Chrome/Chromium to be installed on the system.
type Generator struct {
	execPath string
	timeout  time.Duration
}

// Option configures a Generator.
type Option func(*Generator)

// WithExecPath points the generator at a specific Chrome/Chromium binary.
func WithExecPath(path string) Option {
	return func(g *Generator) {
		g.execPath = path
	}
}

// WithTimeout overrides the per-run timeout.
func WithTimeout(d time.Duration) Option {
	return func(g *Generator) {
		if d > 0 {
			g.timeout = d
		}
	}
}

// NewGenerator creates a PDF generator with the given options.
func NewGenerator(opts ...Option) *Generator {
	g := &Generator{timeout: DefaultTimeout}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// Generate renders the document with the resolved template and returns the
// PDF bytes. Engine failures surface as RenderFailureError; the document is
// untouched and the export can simply be retried.
func (g *Generator) Generate(ctx context.Context, doc *types.CVDocument, templateID string, registry *templates.Registry) ([]byte, error) {
	html, err := BuildPrintHTML(doc, templateID, registry)
	if err != nil {
		return nil, err
	}
	return g.printHTML(ctx, string(html))
}

func (g *Generator) printHTML(ctx context.Context, html string) ([]byte, error) {
	opts := append(chromedp.DefaultExecAllocatorOptions[:],
		chromedp.Flag("headless", true),
		chromedp.Flag("disable-gpu", true),
		chromedp.Flag("no-sandbox", true),
		chromedp.Flag("disable-dev-shm-usage", true),
	)
	if g.execPath != "" {
		opts = append(opts, chromedp.ExecPath(g.execPath))
	}

	allocCtx, cancel := chromedp.NewExecAllocator(ctx, opts...)
	defer cancel()

	browserCtx, cancel := chromedp.NewContext(allocCtx)
	defer cancel()

	browserCtx, cancel = context.WithTimeout(browserCtx, g.timeout)
	defer cancel()

	var pdf []byte
	err := chromedp.Run(browserCtx,
		chromedp.Navigate("about:blank"),
		chromedp.ActionFunc(func(ctx context.Context) error {
			frameTree, err := page.GetFrameTree().Do(ctx)
			if err != nil {
				return err
			}
			return page.SetDocumentContent(frameTree.Frame.ID, html).Do(ctx)
		}),
		chromedp.WaitReady("body"),
		chromedp.ActionFunc(func(ctx context.Context) error {
			buf, _, err := page.PrintToPDF().
				WithPaperWidth(a4WidthIn).
				WithPaperHeight(a4HeightIn).
				WithPrintBackground(true).
				WithPreferCSSPageSize(true).
				Do(ctx)
			if err != nil {
				return err
			}
			pdf = buf
			return nil
		}),
	)
	if err != nil {
		return nil, &RenderFailureError{
			Message: "PDF engine failed to produce output",
			Cause:   err,
		}
	}

	return pdf, nil
}
