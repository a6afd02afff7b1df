package export

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/resume-studio/internal/schema"
)

func sampleResume() *schema.Resume {
	return &schema.Resume{
		Basics: schema.Basics{
			Name:     "Jane Doe",
			Label:    "Engineer",
			Email:    "jane@example.com",
			Phone:    "555-0100",
			Location: schema.Location{City: "Springfield", Region: "IL"},
			Profiles: []schema.Profile{{ID: "p1", Network: "GitHub", URL: "github.com/jane"}},
			Summary:  "Builds reliable systems.",
		},
		Work: []schema.Work{{
			ID:         "w1",
			Name:       "Acme",
			Position:   "Engineer",
			Location:   "Springfield",
			StartDate:  "2020-01",
			Highlights: []string{"Shipped the thing", "", "Kept it running"},
		}},
		Education: []schema.Education{{
			ID:          "e1",
			Institution: "State University",
			StudyType:   "BSc",
			Area:        "CS",
			StartDate:   "2014-09",
			EndDate:     "2018-05",
		}},
		Skills: []schema.Skill{{ID: "s1", Name: "Go", Level: 5, Keywords: []string{"Backend"}}},
	}
}

func TestText_HeaderAndSectionOrder(t *testing.T) {
	out := Text(sampleResume())

	assert.True(t, strings.HasPrefix(out, "JANE DOE\n"), "name must be uppercased on the first line")
	assert.Contains(t, out, "jane@example.com | 555-0100 | Springfield, IL")
	assert.Contains(t, out, "GitHub: github.com/jane")

	sumAt := strings.Index(out, "SUMMARY")
	expAt := strings.Index(out, "EXPERIENCE")
	eduAt := strings.Index(out, "EDUCATION")
	sklAt := strings.Index(out, "SKILLS")
	require.NotEqual(t, -1, sumAt)
	require.NotEqual(t, -1, expAt)
	require.NotEqual(t, -1, eduAt)
	require.NotEqual(t, -1, sklAt)
	assert.Less(t, sumAt, expAt)
	assert.Less(t, expAt, eduAt)
	assert.Less(t, eduAt, sklAt)
}

func TestText_BulletsSkipBlankLines(t *testing.T) {
	out := Text(sampleResume())

	assert.Contains(t, out, "• Shipped the thing")
	assert.Contains(t, out, "• Kept it running")
	assert.NotContains(t, out, "• \n", "blank highlight must not render a bare bullet")
	assert.Equal(t, 2, strings.Count(out, "• "))
}

func TestText_OpenEndedDatesShowPresent(t *testing.T) {
	out := Text(sampleResume())
	assert.Contains(t, out, "2020-01 - Present")
}

func TestText_MissingScoreShowsNA(t *testing.T) {
	out := Text(sampleResume())
	assert.Contains(t, out, "GPA: N/A")
}

func TestText_EmptyCollectionsOmitted(t *testing.T) {
	r := sampleResume()
	out := Text(r)
	assert.NotContains(t, out, "PROJECTS", "section must be absent when collection is empty")
}

func TestRTF_ValidStructureAndEscaping(t *testing.T) {
	r := sampleResume()
	r.Work[0].Summary = `Shipped {braces} and \slashes`
	out := RTF(r)

	assert.True(t, strings.HasPrefix(out, `{\rtf1`))
	assert.True(t, strings.HasSuffix(out, "}"))
	assert.Contains(t, out, `\{braces\}`)
	assert.Contains(t, out, `\\slashes`)
	assert.Contains(t, out, "Work Experience")
	assert.Contains(t, out, `\bullet  Shipped the thing`)
}

func TestLetterText_ParagraphsAndSignature(t *testing.T) {
	c := &schema.CoverLetter{
		Date:       "May 1, 2026",
		Salutation: "Dear Hiring Manager,",
		Body:       []string{"First.", "", "Second."},
		Signoff:    "Sincerely,",
	}
	out := LetterText(c, sampleResume().Basics)

	assert.Contains(t, out, "Dear Hiring Manager,")
	assert.Contains(t, out, "First.")
	assert.Contains(t, out, "Second.")
	assert.True(t, strings.HasSuffix(strings.TrimSpace(out), "Jane Doe"))
}

func TestExporter_WritesArtifacts(t *testing.T) {
	dir := t.TempDir()
	e := NewExporter(dir, "resume", schema.TemplateClassic)

	txtPath, err := e.WriteText(sampleResume())
	require.NoError(t, err)
	assert.FileExists(t, txtPath)

	rtfPath, err := e.WriteRTF(sampleResume())
	require.NoError(t, err)
	assert.FileExists(t, rtfPath)

	htmlPath, err := e.WriteHTML(sampleResume(), []schema.SectionKey{schema.KeyWork, schema.KeySkills})
	require.NoError(t, err)
	assert.FileExists(t, htmlPath)
}
