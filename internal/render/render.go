// Package render turns a resume and its enabled section order into a
// visual document. Rendering is a pure function of its inputs: skins
// hold no state, never mutate the schema, and re-render deterministically
// on every call.
//
// Every skin honors the same contract: sections absent from the key list
// never render, sections whose backing collection is empty render
// nothing (not an empty heading), relative order follows the key list,
// and empty sub-fields disappear instead of leaving stray punctuation.
package render

import (
	"github.com/jonathan/resume-studio/internal/schema"
)

// Renderer is one interchangeable skin.
type Renderer interface {
	// Render produces the document for the resume, showing exactly the
	// sections named in enabledOrder whose collections are non-empty.
	Render(r *schema.Resume, enabledOrder []schema.SectionKey) (string, error)
}

// LetterRenderer renders a cover letter in a skin's visual style.
type LetterRenderer interface {
	RenderLetter(c *schema.CoverLetter, basics schema.Basics) (string, error)
}

// ForTemplate returns the HTML skin for a template choice. The switch is
// exhaustive over the Template enum.
func ForTemplate(t schema.Template) (Renderer, error) {
	switch t {
	case schema.TemplateClassic, schema.TemplateModern, schema.TemplateOnyx, schema.TemplatePikachu:
		return newHTMLSkin(t)
	}
	return nil, &schema.UnknownTemplateError{Name: string(t)}
}

// LetterForTemplate returns the cover letter renderer for a template
// choice.
func LetterForTemplate(t schema.Template) (LetterRenderer, error) {
	switch t {
	case schema.TemplateClassic, schema.TemplateModern, schema.TemplateOnyx, schema.TemplatePikachu:
		return newHTMLSkin(t)
	}
	return nil, &schema.UnknownTemplateError{Name: string(t)}
}

// SectionEmpty reports whether the backing collection for key has no
// entries. Presence in the enabled order is necessary but not
// sufficient; empty sections render nothing.
func SectionEmpty(r *schema.Resume, key schema.SectionKey) bool {
	switch key {
	case schema.KeyWork:
		return len(r.Work) == 0
	case schema.KeyVolunteer:
		return len(r.Volunteer) == 0
	case schema.KeyEducation:
		return len(r.Education) == 0
	case schema.KeyAwards:
		return len(r.Awards) == 0
	case schema.KeyCertificates:
		return len(r.Certificates) == 0
	case schema.KeyPublications:
		return len(r.Publications) == 0
	case schema.KeySkills:
		return len(r.Skills) == 0
	case schema.KeyLanguages:
		return len(r.Languages) == 0
	case schema.KeyInterests:
		return len(r.Interests) == 0
	case schema.KeyReferences:
		return len(r.References) == 0
	case schema.KeyProjects:
		return len(r.Projects) == 0
	}
	return true
}

// SectionTitle returns the default display heading for a section.
func SectionTitle(key schema.SectionKey) string {
	switch key {
	case schema.KeyWork:
		return "Experience"
	case schema.KeyVolunteer:
		return "Volunteer"
	case schema.KeyEducation:
		return "Education"
	case schema.KeyAwards:
		return "Awards"
	case schema.KeyCertificates:
		return "Certificates"
	case schema.KeyPublications:
		return "Publications"
	case schema.KeySkills:
		return "Skills"
	case schema.KeyLanguages:
		return "Languages"
	case schema.KeyInterests:
		return "Interests"
	case schema.KeyReferences:
		return "References"
	case schema.KeyProjects:
		return "Projects"
	}
	return string(key)
}

// NonEmpty filters blank entries out of a list field for display. Blank
// separator lines are kept in storage but must never render as bullets.
func NonEmpty(lines []string) []string {
	out := make([]string, 0, len(lines))
	for _, line := range lines {
		if line != "" {
			out = append(out, line)
		}
	}
	return out
}

// DateRange formats a start/end pair, substituting Present for an open
// end. Both empty yields an empty string so no stray dash renders.
func DateRange(start, end string) string {
	if start == "" && end == "" {
		return ""
	}
	if end == "" {
		end = "Present"
	}
	if start == "" {
		return end
	}
	return start + " - " + end
}
