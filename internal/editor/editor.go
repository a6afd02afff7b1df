// Package editor translates field-level edits into updates of the resume
// aggregate. Every operation addresses collection items by their stable
// ID, never by position, so concurrent inserts and removals cannot
// redirect an edit to the wrong entry.
package editor

import (
	"strconv"

	"github.com/jonathan/resume-studio/internal/schema"
)

// List-valued field names. Raw input for these fields is one multi-line
// string, split on newline boundaries verbatim: no trimming and no
// de-duplication, so intentionally blank separator lines survive the
// round trip (the skins skip them at render time).
const (
	fieldHighlights = "highlights"
	fieldKeywords   = "keywords"
	fieldCourses    = "courses"
)

// UpdateField sets one field of the entity with the given id inside the
// named collection. List-valued fields accept multi-line raw input;
// skills.level parses as an integer. Unknown collections and fields are
// errors, an unknown id is a NotFoundError.
func UpdateField(r *schema.Resume, collection schema.SectionKey, id, field, raw string) error {
	switch collection {
	case schema.KeyWork:
		return apply(r.Work, id, workID, func(w *schema.Work) error {
			switch field {
			case "name":
				w.Name = raw
			case "position":
				w.Position = raw
			case "url":
				w.URL = raw
			case "location":
				w.Location = raw
			case "startDate":
				w.StartDate = raw
			case "endDate":
				w.EndDate = raw
			case "summary":
				w.Summary = raw
			case fieldHighlights:
				w.Highlights = SplitLines(raw)
			default:
				return &UnknownFieldError{Collection: collection, Field: field}
			}
			return nil
		})
	case schema.KeyVolunteer:
		return apply(r.Volunteer, id, volunteerID, func(v *schema.Volunteer) error {
			switch field {
			case "organization":
				v.Organization = raw
			case "position":
				v.Position = raw
			case "url":
				v.URL = raw
			case "startDate":
				v.StartDate = raw
			case "endDate":
				v.EndDate = raw
			case "summary":
				v.Summary = raw
			case fieldHighlights:
				v.Highlights = SplitLines(raw)
			default:
				return &UnknownFieldError{Collection: collection, Field: field}
			}
			return nil
		})
	case schema.KeyEducation:
		return apply(r.Education, id, educationID, func(e *schema.Education) error {
			switch field {
			case "institution":
				e.Institution = raw
			case "url":
				e.URL = raw
			case "area":
				e.Area = raw
			case "studyType":
				e.StudyType = raw
			case "startDate":
				e.StartDate = raw
			case "endDate":
				e.EndDate = raw
			case "score":
				e.Score = raw
			case fieldCourses:
				e.Courses = SplitLines(raw)
			default:
				return &UnknownFieldError{Collection: collection, Field: field}
			}
			return nil
		})
	case schema.KeyAwards:
		return apply(r.Awards, id, awardID, func(a *schema.Award) error {
			switch field {
			case "title":
				a.Title = raw
			case "date":
				a.Date = raw
			case "awarder":
				a.Awarder = raw
			case "summary":
				a.Summary = raw
			default:
				return &UnknownFieldError{Collection: collection, Field: field}
			}
			return nil
		})
	case schema.KeyCertificates:
		return apply(r.Certificates, id, certificateID, func(c *schema.Certificate) error {
			switch field {
			case "name":
				c.Name = raw
			case "date":
				c.Date = raw
			case "issuer":
				c.Issuer = raw
			case "url":
				c.URL = raw
			default:
				return &UnknownFieldError{Collection: collection, Field: field}
			}
			return nil
		})
	case schema.KeyPublications:
		return apply(r.Publications, id, publicationID, func(p *schema.Publication) error {
			switch field {
			case "name":
				p.Name = raw
			case "publisher":
				p.Publisher = raw
			case "releaseDate":
				p.ReleaseDate = raw
			case "url":
				p.URL = raw
			case "summary":
				p.Summary = raw
			default:
				return &UnknownFieldError{Collection: collection, Field: field}
			}
			return nil
		})
	case schema.KeySkills:
		return apply(r.Skills, id, skillID, func(s *schema.Skill) error {
			switch field {
			case "name":
				s.Name = raw
			case "level":
				level, err := strconv.Atoi(raw)
				if err != nil {
					return &FieldValueError{Field: field, Value: raw, Cause: err}
				}
				s.Level = level
			case fieldKeywords:
				s.Keywords = SplitLines(raw)
			default:
				return &UnknownFieldError{Collection: collection, Field: field}
			}
			return nil
		})
	case schema.KeyLanguages:
		return apply(r.Languages, id, languageID, func(l *schema.Language) error {
			switch field {
			case "language":
				l.Language = raw
			case "fluency":
				l.Fluency = raw
			default:
				return &UnknownFieldError{Collection: collection, Field: field}
			}
			return nil
		})
	case schema.KeyInterests:
		return apply(r.Interests, id, interestID, func(i *schema.Interest) error {
			switch field {
			case "name":
				i.Name = raw
			case fieldKeywords:
				i.Keywords = SplitLines(raw)
			default:
				return &UnknownFieldError{Collection: collection, Field: field}
			}
			return nil
		})
	case schema.KeyReferences:
		return apply(r.References, id, referenceID, func(ref *schema.Reference) error {
			switch field {
			case "name":
				ref.Name = raw
			case "reference":
				ref.Reference = raw
			default:
				return &UnknownFieldError{Collection: collection, Field: field}
			}
			return nil
		})
	case schema.KeyProjects:
		return apply(r.Projects, id, projectID, func(p *schema.Project) error {
			switch field {
			case "name":
				p.Name = raw
			case "description":
				p.Description = raw
			case "url":
				p.URL = raw
			case "startDate":
				p.StartDate = raw
			case "endDate":
				p.EndDate = raw
			case fieldHighlights:
				p.Highlights = SplitLines(raw)
			case fieldKeywords:
				p.Keywords = SplitLines(raw)
			default:
				return &UnknownFieldError{Collection: collection, Field: field}
			}
			return nil
		})
	}
	return &schema.UnknownSectionError{Key: string(collection)}
}

// AddItem appends a blank entry to the named collection and returns its
// freshly generated id.
func AddItem(r *schema.Resume, collection schema.SectionKey) (string, error) {
	switch collection {
	case schema.KeyWork:
		item := schema.BlankWork()
		r.Work = append(r.Work, item)
		return item.ID, nil
	case schema.KeyVolunteer:
		item := schema.BlankVolunteer()
		r.Volunteer = append(r.Volunteer, item)
		return item.ID, nil
	case schema.KeyEducation:
		item := schema.BlankEducation()
		r.Education = append(r.Education, item)
		return item.ID, nil
	case schema.KeyAwards:
		item := schema.BlankAward()
		r.Awards = append(r.Awards, item)
		return item.ID, nil
	case schema.KeyCertificates:
		item := schema.BlankCertificate()
		r.Certificates = append(r.Certificates, item)
		return item.ID, nil
	case schema.KeyPublications:
		item := schema.BlankPublication()
		r.Publications = append(r.Publications, item)
		return item.ID, nil
	case schema.KeySkills:
		item := schema.BlankSkill()
		r.Skills = append(r.Skills, item)
		return item.ID, nil
	case schema.KeyLanguages:
		item := schema.BlankLanguage()
		r.Languages = append(r.Languages, item)
		return item.ID, nil
	case schema.KeyInterests:
		item := schema.BlankInterest()
		r.Interests = append(r.Interests, item)
		return item.ID, nil
	case schema.KeyReferences:
		item := schema.BlankReference()
		r.References = append(r.References, item)
		return item.ID, nil
	case schema.KeyProjects:
		item := schema.BlankProject()
		r.Projects = append(r.Projects, item)
		return item.ID, nil
	}
	return "", &schema.UnknownSectionError{Key: string(collection)}
}

// RemoveItem filters the entity with the given id out of the named
// collection. A missing id is a no-op, not an error.
func RemoveItem(r *schema.Resume, collection schema.SectionKey, id string) error {
	switch collection {
	case schema.KeyWork:
		r.Work = removeByID(r.Work, id, workID)
	case schema.KeyVolunteer:
		r.Volunteer = removeByID(r.Volunteer, id, volunteerID)
	case schema.KeyEducation:
		r.Education = removeByID(r.Education, id, educationID)
	case schema.KeyAwards:
		r.Awards = removeByID(r.Awards, id, awardID)
	case schema.KeyCertificates:
		r.Certificates = removeByID(r.Certificates, id, certificateID)
	case schema.KeyPublications:
		r.Publications = removeByID(r.Publications, id, publicationID)
	case schema.KeySkills:
		r.Skills = removeByID(r.Skills, id, skillID)
	case schema.KeyLanguages:
		r.Languages = removeByID(r.Languages, id, languageID)
	case schema.KeyInterests:
		r.Interests = removeByID(r.Interests, id, interestID)
	case schema.KeyReferences:
		r.References = removeByID(r.References, id, referenceID)
	case schema.KeyProjects:
		r.Projects = removeByID(r.Projects, id, projectID)
	default:
		return &schema.UnknownSectionError{Key: string(collection)}
	}
	return nil
}

// AddHighlight appends a single highlight to one entity without the
// caller re-serializing the whole list. Used when an AI suggestion is
// accepted one bullet at a time. Only the highlight-bearing collections
// are valid targets.
func AddHighlight(r *schema.Resume, collection schema.SectionKey, id, text string) error {
	switch collection {
	case schema.KeyWork:
		return apply(r.Work, id, workID, func(w *schema.Work) error {
			w.Highlights = append(w.Highlights, text)
			return nil
		})
	case schema.KeyVolunteer:
		return apply(r.Volunteer, id, volunteerID, func(v *schema.Volunteer) error {
			v.Highlights = append(v.Highlights, text)
			return nil
		})
	case schema.KeyProjects:
		return apply(r.Projects, id, projectID, func(p *schema.Project) error {
			p.Highlights = append(p.Highlights, text)
			return nil
		})
	}
	return &schema.UnknownSectionError{Key: string(collection)}
}

// apply runs mutate against the item whose ID matches id.
func apply[T any](items []T, id string, idOf func(T) string, mutate func(*T) error) error {
	for i := range items {
		if idOf(items[i]) == id {
			return mutate(&items[i])
		}
	}
	return &NotFoundError{ID: id}
}

func removeByID[T any](items []T, id string, idOf func(T) string) []T {
	out := items[:0]
	for _, item := range items {
		if idOf(item) != id {
			out = append(out, item)
		}
	}
	return out
}

// ID accessors shared by apply and removeByID.
var (
	workID        = func(w schema.Work) string { return w.ID }
	volunteerID   = func(v schema.Volunteer) string { return v.ID }
	educationID   = func(e schema.Education) string { return e.ID }
	awardID       = func(a schema.Award) string { return a.ID }
	certificateID = func(c schema.Certificate) string { return c.ID }
	publicationID = func(p schema.Publication) string { return p.ID }
	skillID       = func(s schema.Skill) string { return s.ID }
	languageID    = func(l schema.Language) string { return l.ID }
	interestID    = func(i schema.Interest) string { return i.ID }
	referenceID   = func(r schema.Reference) string { return r.ID }
	projectID     = func(p schema.Project) string { return p.ID }
)
