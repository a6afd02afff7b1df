// Package importer extracts a rough resume draft from pasted text or an
// HTML page. Extraction is rule based and deliberately crude: it pulls
// out a name and email and parks everything else in the summary for the
// user to reorganize in the editor.
package importer

import (
	"io"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"github.com/jonathan/resume-studio/internal/schema"
)

// Draft is the extracted subset of a resume.
type Draft struct {
	Name    string
	Email   string
	Summary string
}

// ErrEmptyInput is returned when the input has no usable lines.
var ErrEmptyInput = &ParseError{Message: "no content to import"}

// FromText extracts a draft from pasted plain text. The first non-blank
// line becomes the name, the first line containing '@' becomes the
// email, and every other line joins into the summary.
func FromText(raw string) (*Draft, error) {
	lines := make([]string, 0)
	for _, line := range strings.Split(raw, "\n") {
		if trimmed := strings.TrimSpace(line); trimmed != "" {
			lines = append(lines, trimmed)
		}
	}
	if len(lines) == 0 {
		return nil, ErrEmptyInput
	}

	name := lines[0]

	emailIndex := -1
	for i, line := range lines {
		if strings.Contains(line, "@") {
			emailIndex = i
			break
		}
	}

	email := ""
	if emailIndex != -1 {
		email = lines[emailIndex]
	}

	summaryLines := make([]string, 0, len(lines))
	for i, line := range lines {
		if i == 0 || i == emailIndex {
			continue
		}
		summaryLines = append(summaryLines, line)
	}

	return &Draft{
		Name:    name,
		Email:   email,
		Summary: strings.Join(summaryLines, "\n"),
	}, nil
}

// FromHTML extracts a draft from an HTML document, such as a saved
// profile page, by flattening its body text and applying the text
// rules.
func FromHTML(r io.Reader) (*Draft, error) {
	doc, err := goquery.NewDocumentFromReader(r)
	if err != nil {
		return nil, &ParseError{Message: "failed to parse HTML", Cause: err}
	}

	doc.Find("script, style, noscript").Remove()

	var b strings.Builder
	doc.Find("body").Each(func(_ int, sel *goquery.Selection) {
		sel.Contents().Each(func(_ int, node *goquery.Selection) {
			text := strings.TrimSpace(node.Text())
			if text != "" {
				b.WriteString(text + "\n")
			}
		})
	})

	// Flatten runs of inline text into one line per block.
	text := b.String()
	if text == "" {
		text = strings.TrimSpace(doc.Text())
	}
	return FromText(text)
}

// Apply merges a draft into a resume, overwriting only the fields the
// draft filled.
func Apply(r *schema.Resume, d *Draft) {
	if d.Name != "" {
		r.Basics.Name = d.Name
	}
	if d.Email != "" {
		r.Basics.Email = d.Email
	}
	if d.Summary != "" {
		r.Basics.Summary = d.Summary
	}
}
