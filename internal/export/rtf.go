package export

import (
	"fmt"
	"strings"

	"github.com/jonathan/resume-studio/internal/render"
	"github.com/jonathan/resume-studio/internal/schema"
)

// RTF renders the resume as a Rich Text Format document that word
// processors open natively. Structure mirrors the text export: centered
// name and label header, a contact line, then summary, experience,
// education, and skills sections with bold headings and bulleted
// highlight lists.
func RTF(r *schema.Resume) string {
	var b strings.Builder

	b.WriteString(`{\rtf1\ansi\deff0{\fonttbl{\f0 Calibri;}}`)
	b.WriteString(`\f0\fs22` + "\n")

	// Header
	fmt.Fprintf(&b, `{\pard\qc\b\fs40 %s\par}`+"\n", rtfEscape(r.Basics.Name))
	if r.Basics.Label != "" {
		fmt.Fprintf(&b, `{\pard\qc\fs28 %s\par}`+"\n", rtfEscape(r.Basics.Label))
	}
	contact := fmt.Sprintf("%s | %s | %s, %s", r.Basics.Email, r.Basics.Phone, r.Basics.Location.City, r.Basics.Location.Region)
	if r.Basics.URL != "" {
		contact += " | " + r.Basics.URL
	}
	fmt.Fprintf(&b, `{\pard\qc\sa200 %s\par}`+"\n", rtfEscape(contact))

	if r.Basics.Summary != "" {
		writeRTFHeading(&b, "Professional Summary")
		fmt.Fprintf(&b, `{\pard\sa200 %s\par}`+"\n", rtfEscape(r.Basics.Summary))
	}

	if len(r.Work) > 0 {
		writeRTFHeading(&b, "Work Experience")
		for _, w := range r.Work {
			fmt.Fprintf(&b, `{\pard{\b %s}{\i  at %s}  (%s)\par}`+"\n",
				rtfEscape(w.Position), rtfEscape(w.Name), rtfEscape(render.DateRange(w.StartDate, w.EndDate)))
			if w.Summary != "" {
				fmt.Fprintf(&b, `{\pard %s\par}`+"\n", rtfEscape(w.Summary))
			}
			writeRTFBullets(&b, w.Highlights)
			b.WriteString(`{\pard\sa100\par}` + "\n")
		}
	}

	if len(r.Education) > 0 {
		writeRTFHeading(&b, "Education")
		for _, e := range r.Education {
			fmt.Fprintf(&b, `{\pard{\b %s}, %s in %s\par}`+"\n",
				rtfEscape(e.Institution), rtfEscape(e.StudyType), rtfEscape(e.Area))
			line := fmt.Sprintf("%s - %s", e.StartDate, e.EndDate)
			if e.Score != "" {
				line += " | GPA: " + e.Score
			}
			fmt.Fprintf(&b, `{\pard\sa100 %s\par}`+"\n", rtfEscape(line))
		}
	}

	if len(r.Skills) > 0 {
		writeRTFHeading(&b, "Skills")
		for _, s := range r.Skills {
			fmt.Fprintf(&b, `{\pard{\b %s: }%s\par}`+"\n",
				rtfEscape(s.Name), rtfEscape(strings.Join(render.NonEmpty(s.Keywords), ", ")))
		}
	}

	b.WriteString("}")
	return b.String()
}

// LetterRTF renders a cover letter as an RTF document.
func LetterRTF(c *schema.CoverLetter, basics schema.Basics) string {
	var b strings.Builder

	b.WriteString(`{\rtf1\ansi\deff0{\fonttbl{\f0 Calibri;}}`)
	b.WriteString(`\f0\fs22` + "\n")

	fmt.Fprintf(&b, `{\pard\qc\b\fs36 %s\par}`+"\n", rtfEscape(basics.Name))
	fmt.Fprintf(&b, `{\pard\qc\sa200 %s | %s\par}`+"\n", rtfEscape(basics.Email), rtfEscape(basics.Phone))

	if c.Date != "" {
		fmt.Fprintf(&b, `{\pard\qr\sa200 %s\par}`+"\n", rtfEscape(c.Date))
	}
	for _, line := range render.NonEmpty([]string{c.RecipientName, c.RecipientTitle, c.CompanyName}) {
		fmt.Fprintf(&b, `{\pard %s\par}`+"\n", rtfEscape(line))
	}
	fmt.Fprintf(&b, `{\pard\sb200\b %s\par}`+"\n", rtfEscape(c.Salutation))
	for _, p := range render.NonEmpty(c.Body) {
		fmt.Fprintf(&b, `{\pard\sb200\qj %s\par}`+"\n", rtfEscape(p))
	}
	fmt.Fprintf(&b, `{\pard\sb200 %s\par}`+"\n", rtfEscape(c.Signoff))
	fmt.Fprintf(&b, `{\pard\b %s\par}`+"\n", rtfEscape(basics.Name))

	b.WriteString("}")
	return b.String()
}

func writeRTFHeading(b *strings.Builder, title string) {
	fmt.Fprintf(b, `{\pard\sb200\sa100\b\fs28 %s\par}`+"\n", rtfEscape(title))
	b.WriteString(`{\pard\brdrb\brdrs\brdrw10\sa100\par}` + "\n")
}

func writeRTFBullets(b *strings.Builder, lines []string) {
	for _, line := range render.NonEmpty(lines) {
		fmt.Fprintf(b, `{\pard\fi-260\li360 \bullet  %s\par}`+"\n", rtfEscape(line))
	}
}

// rtfEscape backslash-escapes RTF control characters and encodes
// non-ASCII runes as \uN escapes.
func rtfEscape(s string) string {
	var b strings.Builder
	for _, r := range s {
		switch {
		case r == '\\' || r == '{' || r == '}':
			b.WriteByte('\\')
			b.WriteRune(r)
		case r == '\n':
			b.WriteString(`\line `)
		case r > 127:
			fmt.Fprintf(&b, `\u%d?`, r)
		default:
			b.WriteRune(r)
		}
	}
	return b.String()
}
