package editor

import "github.com/jonathan/resume-studio/internal/schema"

// SetCoverLetterField updates one flat field of the cover letter.
func SetCoverLetterField(c *schema.CoverLetter, field, value string) error {
	switch field {
	case "date":
		c.Date = value
	case "recipientName":
		c.RecipientName = value
	case "recipientTitle":
		c.RecipientTitle = value
	case "companyName":
		c.CompanyName = value
	case "salutation":
		c.Salutation = value
	case "signoff":
		c.Signoff = value
	case "jobDescription":
		c.JobDescription = value
	case "tone":
		tone := schema.Tone(value)
		if !schema.ValidTone(tone) {
			return &FieldValueError{Field: field, Value: value}
		}
		c.Tone = tone
	default:
		return &UnknownFieldError{Collection: "coverLetter", Field: field}
	}
	return nil
}

// AddParagraph appends a body paragraph.
func AddParagraph(c *schema.CoverLetter, text string) {
	c.Body = append(c.Body, text)
}

// UpdateParagraph replaces the paragraph at index i.
func UpdateParagraph(c *schema.CoverLetter, i int, text string) error {
	if i < 0 || i >= len(c.Body) {
		return &ParagraphIndexError{Index: i, Length: len(c.Body)}
	}
	c.Body[i] = text
	return nil
}

// RemoveParagraph deletes the paragraph at index i. The body must keep
// at least one paragraph; removing the last one is refused.
func RemoveParagraph(c *schema.CoverLetter, i int) error {
	if i < 0 || i >= len(c.Body) {
		return &ParagraphIndexError{Index: i, Length: len(c.Body)}
	}
	if len(c.Body) == 1 {
		return ErrLastParagraph
	}
	c.Body = append(c.Body[:i], c.Body[i+1:]...)
	return nil
}
