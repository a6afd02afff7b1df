package export

import (
	"bytes"
	"context"
	"image/png"
	"log"
	"os"
	"path/filepath"
	"time"

	"github.com/chromedp/chromedp"
	"github.com/jung-kurt/gofpdf"
)

// letterWidthPx is the fixed render width used for capture. It matches
// the skins' max-width so the capture sees the same layout a viewer
// would.
const letterWidthPx = 816

// PDF rasterizes rendered HTML in a headless browser and assembles the
// capture into an A4 PDF. Content taller than one page is sliced by
// shifting the same image up one page height at a time. Requires
// Chrome/Chromium on the system.
func PDF(ctx context.Context, html string, timeout time.Duration, verbose bool) ([]byte, error) {
	shot, err := capture(ctx, html, timeout, verbose)
	if err != nil {
		return nil, err
	}
	return assemble(shot, verbose)
}

// capture loads the HTML from a temp file and takes a full-height
// screenshot at the fixed render width.
func capture(ctx context.Context, html string, timeout time.Duration, verbose bool) ([]byte, error) {
	dir, err := os.MkdirTemp("", "resume-capture-*")
	if err != nil {
		return nil, &CaptureError{Message: "failed to stage capture file", Cause: err}
	}
	defer os.RemoveAll(dir)

	page := filepath.Join(dir, "page.html")
	if err := os.WriteFile(page, []byte(html), 0o644); err != nil {
		return nil, &CaptureError{Message: "failed to stage capture file", Cause: err}
	}

	if verbose {
		log.Printf("[BROWSER] Capturing %d bytes of HTML", len(html))
	}

	allocCtx, cancel := chromedp.NewExecAllocator(ctx,
		append(chromedp.DefaultExecAllocatorOptions[:],
			chromedp.Flag("headless", true),
			chromedp.Flag("disable-gpu", true),
			chromedp.Flag("no-sandbox", true),
			chromedp.Flag("disable-dev-shm-usage", true),
		)...,
	)
	defer cancel()

	browserCtx, cancel := chromedp.NewContext(allocCtx)
	defer cancel()

	browserCtx, cancel = context.WithTimeout(browserCtx, timeout)
	defer cancel()

	var shot []byte
	err = chromedp.Run(browserCtx,
		chromedp.EmulateViewport(letterWidthPx, 1056),
		chromedp.Navigate("file://"+page),
		chromedp.WaitReady("body"),
		// Let fonts and layout settle before capture.
		chromedp.Sleep(200*time.Millisecond),
		chromedp.FullScreenshot(&shot, 100),
	)
	if err != nil {
		return nil, &CaptureError{Message: "browser capture failed", Cause: err}
	}

	if verbose {
		log.Printf("[BROWSER] Captured screenshot: %d bytes", len(shot))
	}
	return shot, nil
}

// assemble fits the screenshot to A4 width and emits one page per page
// height of image, shifting the image up between pages.
func assemble(shot []byte, verbose bool) ([]byte, error) {
	cfg, err := png.DecodeConfig(bytes.NewReader(shot))
	if err != nil {
		return nil, &CaptureError{Message: "captured image is not a valid PNG", Cause: err}
	}

	pdf := gofpdf.New("P", "pt", "A4", "")
	pageW, pageH := pdf.GetPageSize()
	imgH := float64(cfg.Height) * pageW / float64(cfg.Width)

	opts := gofpdf.ImageOptions{ImageType: "PNG"}
	pdf.RegisterImageOptionsReader("resume", opts, bytes.NewReader(shot))

	pages := 0
	for offset := 0.0; offset < imgH; offset += pageH {
		pdf.AddPage()
		pdf.ImageOptions("resume", 0, -offset, pageW, imgH, false, opts, 0, "")
		pages++
	}

	var out bytes.Buffer
	if err := pdf.Output(&out); err != nil {
		return nil, &CaptureError{Message: "pdf assembly failed", Cause: err}
	}

	if verbose {
		log.Printf("[EXPORT] Assembled %d page PDF (%d bytes)", pages, out.Len())
	}
	return out.Bytes(), nil
}
