package render

import (
	"strings"
	"testing"

	"github.com/PuerkitoBio/goquery"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/resume-studio/internal/schema"
)

func fixtureResume() *schema.Resume {
	return &schema.Resume{
		Basics: schema.Basics{
			Name:  "Jane Doe",
			Label: "Engineer",
			Email: "jane@example.com",
		},
		Work: []schema.Work{{
			ID:         "w1",
			Name:       "Acme",
			Position:   "Engineer",
			StartDate:  "2020-01",
			Highlights: []string{"Shipped things", "", "Fixed things"},
		}},
		Education: []schema.Education{{
			ID:          "e1",
			Institution: "State University",
			StudyType:   "BSc",
			Area:        "CS",
		}},
		Skills: []schema.Skill{{ID: "s1", Name: "Go", Level: 5, Keywords: []string{"Backend"}}},
	}
}

func parseHTML(t *testing.T, html string) *goquery.Document {
	t.Helper()
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	require.NoError(t, err)
	return doc
}

func allSkins(t *testing.T) map[schema.Template]Renderer {
	t.Helper()
	skins := make(map[schema.Template]Renderer)
	for _, name := range []schema.Template{
		schema.TemplateClassic, schema.TemplateModern,
		schema.TemplateOnyx, schema.TemplatePikachu,
	} {
		skin, err := ForTemplate(name)
		require.NoError(t, err)
		skins[name] = skin
	}
	return skins
}

func TestRender_OrderFollowsEnabledKeys(t *testing.T) {
	r := fixtureResume()
	order := []schema.SectionKey{schema.KeySkills, schema.KeyEducation}

	for name, skin := range allSkins(t) {
		html, err := skin.Render(r, order)
		require.NoError(t, err, name)

		skillsAt := strings.Index(html, "sec-skills")
		eduAt := strings.Index(html, "sec-education")
		require.NotEqual(t, -1, skillsAt, "%s: skills missing", name)
		require.NotEqual(t, -1, eduAt, "%s: education missing", name)
		assert.Less(t, skillsAt, eduAt, "%s: skills must precede education", name)
		assert.NotContains(t, html, "sec-work", "%s: work not in enabled order", name)
	}
}

func TestRender_EmptyCollectionRendersNothing(t *testing.T) {
	r := fixtureResume()
	// references is in the order but its collection is empty.
	order := []schema.SectionKey{schema.KeyWork, schema.KeyReferences}

	for name, skin := range allSkins(t) {
		html, err := skin.Render(r, order)
		require.NoError(t, err, name)
		assert.NotContains(t, html, "sec-references", "%s: empty section must not render a heading", name)
	}
}

func TestRender_BlankHighlightLinesSkipped(t *testing.T) {
	r := fixtureResume()
	order := []schema.SectionKey{schema.KeyWork}

	for name, skin := range allSkins(t) {
		html, err := skin.Render(r, order)
		require.NoError(t, err, name)

		doc := parseHTML(t, html)
		items := doc.Find(".sec-work li")
		assert.Equal(t, 2, items.Length(), "%s: blank separator line rendered as bullet", name)
	}
}

func TestRender_EmptySubfieldsOmitted(t *testing.T) {
	r := fixtureResume()
	// The one work entry has no URL and no summary.
	order := []schema.SectionKey{schema.KeyWork}

	for name, skin := range allSkins(t) {
		html, err := skin.Render(r, order)
		require.NoError(t, err, name)

		doc := parseHTML(t, html)
		assert.Equal(t, 0, doc.Find(".sec-work .url").Length(), "%s: empty url rendered", name)
		assert.Equal(t, 0, doc.Find(".sec-work .summary").Length(), "%s: empty summary rendered", name)
	}
}

func TestRender_DoesNotMutateInput(t *testing.T) {
	r := fixtureResume()
	skin, err := ForTemplate(schema.TemplateOnyx)
	require.NoError(t, err)

	first, err := skin.Render(r, []schema.SectionKey{schema.KeyWork, schema.KeySkills})
	require.NoError(t, err)
	second, err := skin.Render(r, []schema.SectionKey{schema.KeyWork, schema.KeySkills})
	require.NoError(t, err)

	assert.Equal(t, first, second, "rendering must be deterministic")
	assert.Equal(t, []string{"Shipped things", "", "Fixed things"}, r.Work[0].Highlights,
		"blank lines must survive rendering untouched")
}

func TestRenderModern_SidebarPartitionPreservesRelativeOrder(t *testing.T) {
	r := fixtureResume()
	r.Languages = []schema.Language{{ID: "l1", Language: "English", Fluency: "Native"}}
	// skills after languages in the enabled order.
	order := []schema.SectionKey{
		schema.KeyWork, schema.KeyLanguages, schema.KeySkills, schema.KeyEducation,
	}

	skin, err := ForTemplate(schema.TemplateModern)
	require.NoError(t, err)
	html, err := skin.Render(r, order)
	require.NoError(t, err)

	doc := parseHTML(t, html)
	// Sidebar holds skills and languages, main holds work and education.
	assert.Equal(t, 1, doc.Find(".sidebar .sec-skills").Length())
	assert.Equal(t, 1, doc.Find(".sidebar .sec-languages").Length())
	assert.Equal(t, 1, doc.Find(".main .sec-work").Length())
	assert.Equal(t, 1, doc.Find(".main .sec-education").Length())

	langAt := strings.Index(html, "sec-languages")
	skillsAt := strings.Index(html, "sec-skills")
	assert.Less(t, langAt, skillsAt, "relative order within the sidebar region must follow the enabled order")
}

func TestRenderLetter_BodyParagraphs(t *testing.T) {
	c := &schema.CoverLetter{
		Date:          "May 1, 2026",
		RecipientName: "Hiring Manager",
		Salutation:    "Dear Hiring Manager,",
		Body:          []string{"First paragraph.", "Second paragraph."},
		Signoff:       "Sincerely,",
	}
	basics := schema.Basics{Name: "Jane Doe", Email: "jane@example.com"}

	skin, err := LetterForTemplate(schema.TemplateClassic)
	require.NoError(t, err)
	html, err := skin.RenderLetter(c, basics)
	require.NoError(t, err)

	doc := parseHTML(t, html)
	assert.Equal(t, 2, doc.Find(".body p").Length())
	assert.Contains(t, doc.Find("h1").Text(), "Jane Doe")
	assert.Contains(t, html, "Dear Hiring Manager,")
}

func TestTerminalSkin_HonorsContract(t *testing.T) {
	r := fixtureResume()
	skin := NewTerminalSkin()

	out, err := skin.Render(r, []schema.SectionKey{schema.KeySkills, schema.KeyEducation, schema.KeyReferences})
	require.NoError(t, err)

	skillsAt := strings.Index(out, "Skills")
	eduAt := strings.Index(out, "Education")
	require.NotEqual(t, -1, skillsAt)
	require.NotEqual(t, -1, eduAt)
	assert.Less(t, skillsAt, eduAt)
	assert.NotContains(t, out, "References", "empty section must not render")
	assert.NotContains(t, out, "Experience", "work was not in the enabled order")
}

func TestDateRange(t *testing.T) {
	assert.Equal(t, "2020-01 - Present", DateRange("2020-01", ""))
	assert.Equal(t, "2020-01 - 2021-02", DateRange("2020-01", "2021-02"))
	assert.Equal(t, "", DateRange("", ""), "no stray dash for missing dates")
}
