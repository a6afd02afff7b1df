package schema

// SectionKey identifies one resume sub-section. The set is closed: every
// key must be handled by the editor dispatch, the layout defaults, and
// every skin. "basics" is a sentinel, never part of a Layout's order.
type SectionKey string

// The fixed section keys plus the basics sentinel.
const (
	KeyBasics       SectionKey = "basics"
	KeyWork         SectionKey = "work"
	KeyVolunteer    SectionKey = "volunteer"
	KeyEducation    SectionKey = "education"
	KeyAwards       SectionKey = "awards"
	KeyCertificates SectionKey = "certificates"
	KeyPublications SectionKey = "publications"
	KeySkills       SectionKey = "skills"
	KeyLanguages    SectionKey = "languages"
	KeyInterests    SectionKey = "interests"
	KeyReferences   SectionKey = "references"
	KeyProjects     SectionKey = "projects"
)

// AllSectionKeys lists every orderable key (basics excluded). The order
// here is the canonical reference set, not a display order.
var AllSectionKeys = []SectionKey{
	KeyWork, KeyVolunteer, KeyEducation, KeyAwards, KeyCertificates,
	KeyPublications, KeySkills, KeyLanguages, KeyInterests,
	KeyReferences, KeyProjects,
}

// ParseSectionKey converts a raw string to a SectionKey, returning an
// error for unknown values. The basics sentinel is not accepted here
// because it is never a member of sectionOrder.
func ParseSectionKey(s string) (SectionKey, error) {
	key := SectionKey(s)
	for _, k := range AllSectionKeys {
		if k == key {
			return key, nil
		}
	}
	return "", &UnknownSectionError{Key: s}
}

// Section describes one togglable resume section.
type Section struct {
	ID      SectionKey `json:"id"`
	Name    string     `json:"name"`
	Enabled bool       `json:"enabled"`
}

// Layout tracks which sections are enabled and their display order.
// SectionOrder is always a permutation of AllSectionKeys: reordering only
// permutes it, toggling only flips Enabled, nothing ever removes a key.
type Layout struct {
	Sections     map[SectionKey]Section `json:"sections"`
	SectionOrder []SectionKey           `json:"sectionOrder"`
}

// Clone returns a deep copy so callers can mutate freely.
func (l Layout) Clone() Layout {
	out := Layout{
		Sections:     make(map[SectionKey]Section, len(l.Sections)),
		SectionOrder: append([]SectionKey(nil), l.SectionOrder...),
	}
	for k, v := range l.Sections {
		out.Sections[k] = v
	}
	return out
}
