package defaults

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/resume-studio/internal/schema"
)

func TestResumeSeedShape(t *testing.T) {
	r := Resume()

	assert.Equal(t, "Your Name", r.Basics.Name)
	assert.NotEmpty(t, r.Basics.Summary)
	require.NotEmpty(t, r.Work)
	require.NotEmpty(t, r.Education)
	require.NotEmpty(t, r.Skills)

	// Empty collections seed as empty slices, not nil, so merge-on-read
	// and the skins never see a nil list.
	assert.NotNil(t, r.Volunteer)
	assert.NotNil(t, r.Awards)
	assert.NotNil(t, r.References)
}

func TestResumeSeedFreshIDs(t *testing.T) {
	a := Resume()
	b := Resume()

	require.NotEmpty(t, a.Work[0].ID)
	assert.NotEqual(t, a.Work[0].ID, b.Work[0].ID, "two profiles must never share item identity")
	assert.NotEqual(t, a.Basics.Profiles[0].ID, b.Basics.Profiles[0].ID)
}

func TestLayoutOrderIsPermutation(t *testing.T) {
	l := Layout()

	require.Len(t, l.SectionOrder, len(schema.AllSectionKeys))
	seen := make(map[schema.SectionKey]bool)
	for _, key := range l.SectionOrder {
		require.False(t, seen[key], "duplicate key %s", key)
		seen[key] = true
		_, ok := l.Sections[key]
		require.True(t, ok, "ordered key %s missing from sections", key)
	}
	for _, key := range schema.AllSectionKeys {
		assert.True(t, seen[key], "key %s missing from order", key)
	}
}

func TestLayoutEnabledSections(t *testing.T) {
	l := Layout()

	enabled := []schema.SectionKey{
		schema.KeyWork, schema.KeyEducation, schema.KeySkills,
		schema.KeyProjects, schema.KeyLanguages,
	}
	for _, key := range enabled {
		assert.True(t, l.Sections[key].Enabled, "%s should start enabled", key)
	}
	assert.False(t, l.Sections[schema.KeyReferences].Enabled)
	assert.False(t, l.Sections[schema.KeyVolunteer].Enabled)
}

func TestLayoutReturnsFreshCopy(t *testing.T) {
	a := Layout()
	a.SectionOrder[0] = schema.KeyReferences
	section := a.Sections[schema.KeyWork]
	section.Enabled = false
	a.Sections[schema.KeyWork] = section

	b := Layout()
	assert.Equal(t, schema.KeyWork, b.SectionOrder[0])
	assert.True(t, b.Sections[schema.KeyWork].Enabled)
}

func TestCoverLetterSeed(t *testing.T) {
	c := CoverLetter()

	assert.Equal(t, "Dear Hiring Manager,", c.Salutation)
	assert.Equal(t, "Sincerely,", c.Signoff)
	assert.Equal(t, schema.ToneProfessional, c.Tone)
	assert.NotEmpty(t, c.Date)
	require.NotEmpty(t, c.Body, "body starts with at least one paragraph")
}
