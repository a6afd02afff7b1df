package render

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/jonathan/resume-studio/internal/schema"
)

// TerminalSkin renders the resume as styled text for the `show` command.
// It honors the same contract as the HTML skins.
type TerminalSkin struct {
	name    lipgloss.Style
	label   lipgloss.Style
	heading lipgloss.Style
	entry   lipgloss.Style
	muted   lipgloss.Style
	bullet  lipgloss.Style
}

// NewTerminalSkin returns a terminal renderer with the default palette.
func NewTerminalSkin() *TerminalSkin {
	return &TerminalSkin{
		name:    lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("15")),
		label:   lipgloss.NewStyle().Foreground(lipgloss.Color("12")),
		heading: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("11")).Underline(true),
		entry:   lipgloss.NewStyle().Bold(true),
		muted:   lipgloss.NewStyle().Foreground(lipgloss.Color("8")),
		bullet:  lipgloss.NewStyle().PaddingLeft(2),
	}
}

// Render implements Renderer.
func (t *TerminalSkin) Render(r *schema.Resume, enabledOrder []schema.SectionKey) (string, error) {
	var b strings.Builder

	b.WriteString(t.name.Render(r.Basics.Name) + "\n")
	if r.Basics.Label != "" {
		b.WriteString(t.label.Render(r.Basics.Label) + "\n")
	}
	contact := joinNonEmpty(" | ", r.Basics.Email, r.Basics.Phone, r.Basics.URL)
	if contact != "" {
		b.WriteString(t.muted.Render(contact) + "\n")
	}
	if r.Basics.Summary != "" {
		b.WriteString("\n" + r.Basics.Summary + "\n")
	}

	for _, key := range enabledOrder {
		if SectionEmpty(r, key) {
			continue
		}
		b.WriteString("\n" + t.heading.Render(SectionTitle(key)) + "\n")
		t.renderSection(&b, r, key)
	}

	return b.String(), nil
}

// renderSection dispatches on the section key; the switch is exhaustive
// over the closed key set.
func (t *TerminalSkin) renderSection(b *strings.Builder, r *schema.Resume, key schema.SectionKey) {
	switch key {
	case schema.KeyWork:
		for _, w := range r.Work {
			t.entryLine(b, joinNonEmpty(" @ ", w.Position, w.Name), DateRange(w.StartDate, w.EndDate))
			if w.Summary != "" {
				fmt.Fprintf(b, "%s\n", w.Summary)
			}
			t.bullets(b, w.Highlights)
		}
	case schema.KeyVolunteer:
		for _, v := range r.Volunteer {
			t.entryLine(b, joinNonEmpty(" @ ", v.Position, v.Organization), DateRange(v.StartDate, v.EndDate))
			t.bullets(b, v.Highlights)
		}
	case schema.KeyEducation:
		for _, e := range r.Education {
			t.entryLine(b, joinNonEmpty(", ", e.Institution, joinNonEmpty(" in ", e.StudyType, e.Area)), DateRange(e.StartDate, e.EndDate))
			if len(NonEmpty(e.Courses)) > 0 {
				fmt.Fprintf(b, "%s\n", t.muted.Render("Courses: "+strings.Join(NonEmpty(e.Courses), ", ")))
			}
		}
	case schema.KeyAwards:
		for _, a := range r.Awards {
			t.entryLine(b, joinNonEmpty(" - ", a.Title, a.Awarder), a.Date)
		}
	case schema.KeyCertificates:
		for _, c := range r.Certificates {
			t.entryLine(b, joinNonEmpty(" - ", c.Name, c.Issuer), c.Date)
		}
	case schema.KeyPublications:
		for _, p := range r.Publications {
			t.entryLine(b, joinNonEmpty(" - ", p.Name, p.Publisher), p.ReleaseDate)
		}
	case schema.KeySkills:
		for _, s := range r.Skills {
			line := s.Name
			if kw := NonEmpty(s.Keywords); len(kw) > 0 {
				line += " " + t.muted.Render("("+strings.Join(kw, ", ")+")")
			}
			b.WriteString(line + "\n")
		}
	case schema.KeyLanguages:
		for _, l := range r.Languages {
			b.WriteString(joinNonEmpty(": ", l.Language, l.Fluency) + "\n")
		}
	case schema.KeyInterests:
		for _, i := range r.Interests {
			b.WriteString(i.Name + "\n")
		}
	case schema.KeyReferences:
		for _, ref := range r.References {
			t.entryLine(b, ref.Name, "")
			if ref.Reference != "" {
				fmt.Fprintf(b, "%s\n", ref.Reference)
			}
		}
	case schema.KeyProjects:
		for _, p := range r.Projects {
			t.entryLine(b, p.Name, DateRange(p.StartDate, p.EndDate))
			if p.Description != "" {
				fmt.Fprintf(b, "%s\n", p.Description)
			}
			t.bullets(b, p.Highlights)
		}
	}
}

func (t *TerminalSkin) entryLine(b *strings.Builder, head, dates string) {
	line := t.entry.Render(head)
	if dates != "" {
		line += "  " + t.muted.Render(dates)
	}
	b.WriteString(line + "\n")
}

func (t *TerminalSkin) bullets(b *strings.Builder, lines []string) {
	for _, line := range NonEmpty(lines) {
		b.WriteString(t.bullet.Render("• "+line) + "\n")
	}
}

func joinNonEmpty(sep string, parts ...string) string {
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p != "" {
			out = append(out, p)
		}
	}
	return strings.Join(out, sep)
}
