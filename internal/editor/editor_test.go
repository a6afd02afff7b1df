package editor

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/resume-studio/internal/schema"
)

func TestAddItem_AssignsFreshIDs(t *testing.T) {
	r := &schema.Resume{}

	idA, err := AddItem(r, schema.KeyWork)
	require.NoError(t, err)
	idB, err := AddItem(r, schema.KeyWork)
	require.NoError(t, err)

	require.Len(t, r.Work, 2)
	assert.NotEmpty(t, idA)
	assert.NotEqual(t, idA, idB)
}

func TestRemoveItem_LeavesOtherIDsAndValuesUntouched(t *testing.T) {
	r := &schema.Resume{}
	var ids []string
	for i := 0; i < 5; i++ {
		id, err := AddItem(r, schema.KeySkills)
		require.NoError(t, err)
		require.NoError(t, UpdateField(r, schema.KeySkills, id, "name", "skill"))
		ids = append(ids, id)
	}

	require.NoError(t, RemoveItem(r, schema.KeySkills, ids[2]))

	require.Len(t, r.Skills, 4)
	want := []string{ids[0], ids[1], ids[3], ids[4]}
	for i, s := range r.Skills {
		assert.Equal(t, want[i], s.ID)
		assert.Equal(t, "skill", s.Name)
	}
}

func TestRemoveItem_MissingIDIsNoOp(t *testing.T) {
	r := &schema.Resume{}
	id, err := AddItem(r, schema.KeyWork)
	require.NoError(t, err)

	require.NoError(t, RemoveItem(r, schema.KeyWork, "does-not-exist"))
	require.Len(t, r.Work, 1)
	assert.Equal(t, id, r.Work[0].ID)
}

func TestUpdateField_ByIDNotPosition(t *testing.T) {
	r := &schema.Resume{}
	first, err := AddItem(r, schema.KeyWork)
	require.NoError(t, err)
	second, err := AddItem(r, schema.KeyWork)
	require.NoError(t, err)

	// Remove the first item; the edit must still land on the survivor.
	require.NoError(t, RemoveItem(r, schema.KeyWork, first))
	require.NoError(t, UpdateField(r, schema.KeyWork, second, "position", "Engineer"))

	require.Len(t, r.Work, 1)
	assert.Equal(t, "Engineer", r.Work[0].Position)
}

func TestUpdateField_UnknownIDIsNotFound(t *testing.T) {
	r := &schema.Resume{}
	_, err := AddItem(r, schema.KeyWork)
	require.NoError(t, err)

	err = UpdateField(r, schema.KeyWork, "nope", "position", "Engineer")
	var notFound *NotFoundError
	assert.ErrorAs(t, err, &notFound)
}

func TestUpdateField_ListFieldRoundTripsVerbatim(t *testing.T) {
	r := &schema.Resume{}
	id, err := AddItem(r, schema.KeyWork)
	require.NoError(t, err)

	raw := "a\nb\nc"
	require.NoError(t, UpdateField(r, schema.KeyWork, id, "highlights", raw))

	assert.Equal(t, []string{"a", "b", "c"}, r.Work[0].Highlights)
	assert.Equal(t, raw, JoinLines(r.Work[0].Highlights))
}

func TestUpdateField_BlankLinesPreserved(t *testing.T) {
	r := &schema.Resume{}
	id, err := AddItem(r, schema.KeyProjects)
	require.NoError(t, err)

	raw := "one\n\ntwo"
	require.NoError(t, UpdateField(r, schema.KeyProjects, id, "highlights", raw))

	assert.Equal(t, []string{"one", "", "two"}, r.Projects[0].Highlights)
	assert.Equal(t, raw, JoinLines(r.Projects[0].Highlights))
}

func TestUpdateField_SkillLevelParsesInt(t *testing.T) {
	r := &schema.Resume{}
	id, err := AddItem(r, schema.KeySkills)
	require.NoError(t, err)

	require.NoError(t, UpdateField(r, schema.KeySkills, id, "level", "5"))
	assert.Equal(t, 5, r.Skills[0].Level)

	err = UpdateField(r, schema.KeySkills, id, "level", "high")
	var valueErr *FieldValueError
	assert.ErrorAs(t, err, &valueErr)
}

func TestUpdateField_UnknownFieldRejected(t *testing.T) {
	r := &schema.Resume{}
	id, err := AddItem(r, schema.KeyLanguages)
	require.NoError(t, err)

	err = UpdateField(r, schema.KeyLanguages, id, "dialect", "x")
	var fieldErr *UnknownFieldError
	assert.ErrorAs(t, err, &fieldErr)
}

func TestAddHighlight_AppendsSingleEntry(t *testing.T) {
	r := &schema.Resume{}
	id, err := AddItem(r, schema.KeyWork)
	require.NoError(t, err)
	require.NoError(t, UpdateField(r, schema.KeyWork, id, "highlights", "existing"))

	require.NoError(t, AddHighlight(r, schema.KeyWork, id, "accepted suggestion"))
	assert.Equal(t, []string{"existing", "accepted suggestion"}, r.Work[0].Highlights)

	err = AddHighlight(r, schema.KeyEducation, id, "x")
	var sectionErr *schema.UnknownSectionError
	assert.ErrorAs(t, err, &sectionErr, "education has no highlights")
}

func TestSetBasicsField_NestedLocation(t *testing.T) {
	r := &schema.Resume{}
	require.NoError(t, SetBasicsField(r, "city", "Berlin"))
	require.NoError(t, SetBasicsField(r, "region", "BE"))
	require.NoError(t, SetBasicsField(r, "name", "Jane"))

	assert.Equal(t, "Berlin", r.Basics.Location.City)
	assert.Equal(t, "BE", r.Basics.Location.Region)
	assert.Equal(t, "Jane", r.Basics.Name)
}

func TestProfiles_AddUpdateRemove(t *testing.T) {
	r := &schema.Resume{}
	id := AddProfile(r)
	require.NoError(t, UpdateProfile(r, id, "network", "GitHub"))

	require.Len(t, r.Basics.Profiles, 1)
	assert.Equal(t, "GitHub", r.Basics.Profiles[0].Network)

	RemoveProfile(r, id)
	assert.Empty(t, r.Basics.Profiles)
}
