// Package schema defines the resume and cover letter data model.
// Field names and nesting follow the JSON Resume schema
// (https://jsonresume.org/schema/), extended with stable per-item IDs
// so that edits, removals, and reorders never depend on positions.
package schema

import "github.com/google/uuid"

// NewID returns a fresh opaque identifier for a collection item.
// IDs are generated once at creation and never recomputed; they are the
// sole correlation key for edit and remove operations.
func NewID() string {
	return uuid.NewString()
}

// Profile is a social or professional network profile under basics.
type Profile struct {
	ID       string `json:"id"`
	Network  string `json:"network"`
	Username string `json:"username"`
	URL      string `json:"url"`
}

// Location is the city/region pair shown on the contact line.
type Location struct {
	City        string `json:"city"`
	Region      string `json:"region"`
	CountryCode string `json:"countryCode,omitempty"`
}

// Basics holds the single-record contact and summary block.
type Basics struct {
	Name     string    `json:"name"`
	Label    string    `json:"label"`
	Email    string    `json:"email"`
	Phone    string    `json:"phone"`
	URL      string    `json:"url"`
	Summary  string    `json:"summary"`
	Location Location  `json:"location"`
	Profiles []Profile `json:"profiles"`
}

// Work is one work experience entry.
type Work struct {
	ID         string   `json:"id"`
	Name       string   `json:"name"`     // company
	Position   string   `json:"position"` // job title
	URL        string   `json:"url,omitempty"`
	Location   string   `json:"location"`
	StartDate  string   `json:"startDate"`
	EndDate    string   `json:"endDate"`
	Summary    string   `json:"summary"`
	Highlights []string `json:"highlights"`
}

// Volunteer is one volunteer experience entry.
type Volunteer struct {
	ID           string   `json:"id"`
	Organization string   `json:"organization"`
	Position     string   `json:"position"`
	URL          string   `json:"url,omitempty"`
	StartDate    string   `json:"startDate"`
	EndDate      string   `json:"endDate"`
	Summary      string   `json:"summary"`
	Highlights   []string `json:"highlights"`
}

// Education is one education entry.
type Education struct {
	ID          string   `json:"id"`
	Institution string   `json:"institution"`
	URL         string   `json:"url,omitempty"`
	Area        string   `json:"area"`      // field of study
	StudyType   string   `json:"studyType"` // degree
	StartDate   string   `json:"startDate"`
	EndDate     string   `json:"endDate"`
	Score       string   `json:"score,omitempty"` // GPA
	Courses     []string `json:"courses"`
}

// Award is one award entry.
type Award struct {
	ID      string `json:"id"`
	Title   string `json:"title"`
	Date    string `json:"date"`
	Awarder string `json:"awarder"`
	Summary string `json:"summary"`
}

// Certificate is one certificate entry.
type Certificate struct {
	ID     string `json:"id"`
	Name   string `json:"name"`
	Date   string `json:"date"`
	Issuer string `json:"issuer"`
	URL    string `json:"url,omitempty"`
}

// Publication is one publication entry.
type Publication struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Publisher   string `json:"publisher"`
	ReleaseDate string `json:"releaseDate"`
	URL         string `json:"url,omitempty"`
	Summary     string `json:"summary"`
}

// Skill is one skill entry. Level is a 1-5 proficiency used by the skins.
type Skill struct {
	ID       string   `json:"id"`
	Name     string   `json:"name"`
	Level    int      `json:"level"`
	Keywords []string `json:"keywords"`
}

// Language is one spoken language entry.
type Language struct {
	ID       string `json:"id"`
	Language string `json:"language"`
	Fluency  string `json:"fluency"`
}

// Interest is one interest entry.
type Interest struct {
	ID       string   `json:"id"`
	Name     string   `json:"name"`
	Keywords []string `json:"keywords"`
}

// Reference is one reference entry.
type Reference struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Reference string `json:"reference"`
}

// Project is one project entry.
type Project struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	Description string   `json:"description"`
	Highlights  []string `json:"highlights"`
	Keywords    []string `json:"keywords"`
	URL         string   `json:"url"`
	StartDate   string   `json:"startDate"`
	EndDate     string   `json:"endDate"`
}

// Resume is the aggregate root: basics plus eleven repeated collections.
// Dates are free-form strings ("YYYY-MM" or "Present" by convention) and
// are never validated.
type Resume struct {
	Basics       Basics        `json:"basics"`
	Work         []Work        `json:"work"`
	Volunteer    []Volunteer   `json:"volunteer"`
	Education    []Education   `json:"education"`
	Awards       []Award       `json:"awards"`
	Certificates []Certificate `json:"certificates"`
	Publications []Publication `json:"publications"`
	Skills       []Skill       `json:"skills"`
	Languages    []Language    `json:"languages"`
	Interests    []Interest    `json:"interests"`
	References   []Reference   `json:"references"`
	Projects     []Project     `json:"projects"`
}

// Tone selects the writing voice for AI-drafted cover letter bodies.
type Tone string

// Cover letter tones.
const (
	ToneProfessional Tone = "Professional"
	ToneConfident    Tone = "Confident"
	ToneHumble       Tone = "Humble"
	ToneCreative     Tone = "Creative"
)

// ValidTone reports whether t is one of the known tones.
func ValidTone(t Tone) bool {
	switch t {
	case ToneProfessional, ToneConfident, ToneHumble, ToneCreative:
		return true
	}
	return false
}

// CoverLetter is the flat cover letter record. Body is an ordered sequence
// of paragraphs and must never become empty; the editor refuses to remove
// the last paragraph.
type CoverLetter struct {
	Date           string   `json:"date"`
	RecipientName  string   `json:"recipientName"`
	RecipientTitle string   `json:"recipientTitle"`
	CompanyName    string   `json:"companyName"`
	Salutation     string   `json:"salutation"`
	Body           []string `json:"body"`
	Signoff        string   `json:"signoff"`
	JobDescription string   `json:"jobDescription,omitempty"`
	Tone           Tone     `json:"tone,omitempty"`
}

// Template identifies one of the interchangeable visual skins.
type Template string

// Available skins.
const (
	TemplateClassic Template = "Classic"
	TemplateModern  Template = "Modern"
	TemplateOnyx    Template = "Onyx"
	TemplatePikachu Template = "Pikachu"
)

// ParseTemplate converts a raw string to a Template, returning an error
// for unknown values.
func ParseTemplate(s string) (Template, error) {
	t := Template(s)
	switch t {
	case TemplateClassic, TemplateModern, TemplateOnyx, TemplatePikachu:
		return t, nil
	}
	return "", &UnknownTemplateError{Name: s}
}
