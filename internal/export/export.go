package export

import (
	"context"
	"log"
	"os"
	"path/filepath"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/jonathan/resume-studio/internal/render"
	"github.com/jonathan/resume-studio/internal/schema"
)

// Exporter writes export artifacts into a directory under a common base
// name.
type Exporter struct {
	OutDir   string
	BaseName string
	Template schema.Template
	Timeout  time.Duration
	Verbose  bool
}

// NewExporter returns an Exporter with a 60 second capture timeout.
func NewExporter(outDir, baseName string, template schema.Template) *Exporter {
	return &Exporter{
		OutDir:   outDir,
		BaseName: baseName,
		Template: template,
		Timeout:  60 * time.Second,
	}
}

func (e *Exporter) path(ext string) string {
	return filepath.Join(e.OutDir, e.BaseName+ext)
}

func (e *Exporter) write(path string, data []byte) (string, error) {
	if err := os.MkdirAll(e.OutDir, 0o755); err != nil {
		return "", &WriteError{Path: path, Cause: err}
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return "", &WriteError{Path: path, Cause: err}
	}
	if e.Verbose {
		log.Printf("[EXPORT] Wrote %s (%d bytes)", path, len(data))
	}
	return path, nil
}

// WriteText writes the plain text export and returns its path.
func (e *Exporter) WriteText(r *schema.Resume) (string, error) {
	return e.write(e.path(".txt"), []byte(Text(r)))
}

// WriteRTF writes the word processor export and returns its path.
func (e *Exporter) WriteRTF(r *schema.Resume) (string, error) {
	return e.write(e.path(".rtf"), []byte(RTF(r)))
}

// WriteHTML renders the selected skin and writes the result.
func (e *Exporter) WriteHTML(r *schema.Resume, enabledOrder []schema.SectionKey) (string, error) {
	html, err := e.renderHTML(r, enabledOrder)
	if err != nil {
		return "", err
	}
	return e.write(e.path(".html"), []byte(html))
}

// WritePDF renders the selected skin, captures it in a headless
// browser, and writes the assembled PDF.
func (e *Exporter) WritePDF(ctx context.Context, r *schema.Resume, enabledOrder []schema.SectionKey) (string, error) {
	html, err := e.renderHTML(r, enabledOrder)
	if err != nil {
		return "", err
	}
	pdf, err := PDF(ctx, html, e.Timeout, e.Verbose)
	if err != nil {
		return "", err
	}
	return e.write(e.path(".pdf"), pdf)
}

// All writes the text, RTF, HTML, and PDF exports concurrently and
// returns the paths written. A failure in any artifact fails the whole
// batch.
func (e *Exporter) All(ctx context.Context, r *schema.Resume, enabledOrder []schema.SectionKey) ([]string, error) {
	paths := make([]string, 4)
	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		p, err := e.WriteText(r)
		paths[0] = p
		return err
	})
	g.Go(func() error {
		p, err := e.WriteRTF(r)
		paths[1] = p
		return err
	})
	g.Go(func() error {
		p, err := e.WriteHTML(r, enabledOrder)
		paths[2] = p
		return err
	})
	g.Go(func() error {
		p, err := e.WritePDF(gctx, r, enabledOrder)
		paths[3] = p
		return err
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return paths, nil
}

func (e *Exporter) renderHTML(r *schema.Resume, enabledOrder []schema.SectionKey) (string, error) {
	skin, err := render.ForTemplate(e.Template)
	if err != nil {
		return "", err
	}
	return skin.Render(r, enabledOrder)
}
