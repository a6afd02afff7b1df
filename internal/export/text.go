// Package export writes a resume out as plain text, RTF, or PDF. The
// text and RTF forms flatten the resume into a fixed section order so
// the output is stable regardless of the on-screen layout; the PDF form
// rasterizes the selected HTML skin through a headless browser.
package export

import (
	"fmt"
	"strings"

	"github.com/jonathan/resume-studio/internal/render"
	"github.com/jonathan/resume-studio/internal/schema"
)

const divider = "----------------------------------------"

// Text flattens the resume into plain text. Sections appear in a fixed
// order (summary, experience, education, skills, projects) and empty
// collections are skipped entirely.
func Text(r *schema.Resume) string {
	var b strings.Builder

	b.WriteString(strings.ToUpper(r.Basics.Name) + "\n")
	b.WriteString(r.Basics.Label + "\n")
	fmt.Fprintf(&b, "%s | %s | %s, %s\n", r.Basics.Email, r.Basics.Phone, r.Basics.Location.City, r.Basics.Location.Region)
	if r.Basics.URL != "" {
		b.WriteString(r.Basics.URL + "\n")
	}
	for _, p := range r.Basics.Profiles {
		fmt.Fprintf(&b, "%s: %s\n", p.Network, p.URL)
	}
	b.WriteString("\n" + divider + "\n\n")

	if r.Basics.Summary != "" {
		fmt.Fprintf(&b, "SUMMARY\n%s\n\n", r.Basics.Summary)
	}

	if len(r.Work) > 0 {
		b.WriteString("EXPERIENCE\n\n")
		for _, w := range r.Work {
			fmt.Fprintf(&b, "%s | %s, %s\n", w.Position, w.Name, w.Location)
			b.WriteString(render.DateRange(w.StartDate, w.EndDate) + "\n")
			if w.Summary != "" {
				b.WriteString(w.Summary + "\n")
			}
			writeBullets(&b, w.Highlights)
			b.WriteString("\n")
		}
	}

	if len(r.Education) > 0 {
		b.WriteString("EDUCATION\n\n")
		for _, e := range r.Education {
			fmt.Fprintf(&b, "%s | %s in %s\n", e.Institution, e.StudyType, e.Area)
			score := e.Score
			if score == "" {
				score = "N/A"
			}
			fmt.Fprintf(&b, "%s - %s | GPA: %s\n", e.StartDate, e.EndDate, score)
			if courses := render.NonEmpty(e.Courses); len(courses) > 0 {
				fmt.Fprintf(&b, "Courses: %s\n", strings.Join(courses, ", "))
			}
			b.WriteString("\n")
		}
	}

	if len(r.Skills) > 0 {
		b.WriteString("SKILLS\n\n")
		for _, s := range r.Skills {
			fmt.Fprintf(&b, "%s (Level: %d/5)\n", s.Name, s.Level)
			if kw := render.NonEmpty(s.Keywords); len(kw) > 0 {
				fmt.Fprintf(&b, "  %s\n", strings.Join(kw, ", "))
			}
		}
		b.WriteString("\n")
	}

	if len(r.Projects) > 0 {
		b.WriteString("PROJECTS\n\n")
		for _, p := range r.Projects {
			fmt.Fprintf(&b, "%s (%s)\n", p.Name, p.URL)
			b.WriteString(render.DateRange(p.StartDate, p.EndDate) + "\n")
			if p.Description != "" {
				b.WriteString(p.Description + "\n")
			}
			writeBullets(&b, p.Highlights)
			b.WriteString("\n")
		}
	}

	return b.String()
}

// LetterText flattens a cover letter into plain text.
func LetterText(c *schema.CoverLetter, basics schema.Basics) string {
	var b strings.Builder

	b.WriteString(basics.Name + "\n")
	fmt.Fprintf(&b, "%s | %s\n", basics.Email, basics.Phone)
	b.WriteString("\n" + divider + "\n\n")

	if c.Date != "" {
		b.WriteString(c.Date + "\n\n")
	}
	for _, line := range render.NonEmpty([]string{c.RecipientName, c.RecipientTitle, c.CompanyName}) {
		b.WriteString(line + "\n")
	}
	b.WriteString("\n" + c.Salutation + "\n\n")
	for _, p := range render.NonEmpty(c.Body) {
		b.WriteString(p + "\n\n")
	}
	b.WriteString(c.Signoff + "\n")
	b.WriteString(basics.Name + "\n")

	return b.String()
}

func writeBullets(b *strings.Builder, lines []string) {
	for _, line := range render.NonEmpty(lines) {
		b.WriteString("• " + line + "\n")
	}
}
