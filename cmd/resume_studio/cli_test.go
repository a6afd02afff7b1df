package main

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/resume-studio/internal/schema"
	"github.com/jonathan/resume-studio/internal/store"
	"github.com/jonathan/resume-studio/internal/tracker"
)

// useTempProfile points every command at a throwaway profile directory.
func useTempProfile(t *testing.T) {
	t.Helper()
	rootProfileDir = t.TempDir()
	rootProfile = "default"
	rootVerbose = false
	t.Cleanup(func() {
		rootProfileDir = ""
	})
}

func readStored[T any](t *testing.T, key string, def T) T {
	t.Helper()
	s, err := openStore()
	require.NoError(t, err)
	defer s.Close() //nolint:errcheck
	v, err := store.Load(s, rootProfile, key, def)
	require.NoError(t, err)
	return v
}

func TestInitSeedsProfile(t *testing.T) {
	useTempProfile(t)

	require.NoError(t, runInit(initCmd, nil))

	r := readStored(t, store.KeyResumeData, schema.Resume{})
	assert.Equal(t, "Your Name", r.Basics.Name)

	lay := readStored(t, store.KeyResumeLayout, schema.Layout{})
	assert.Len(t, lay.SectionOrder, len(schema.AllSectionKeys))
}

func TestSetBasicsField(t *testing.T) {
	useTempProfile(t)

	require.NoError(t, runSet(setCmd, []string{"name", "Jane Doe"}))

	r := readStored(t, store.KeyResumeData, schema.Resume{})
	assert.Equal(t, "Jane Doe", r.Basics.Name)

	assert.Error(t, runSet(setCmd, []string{"shoeSize", "42"}))
}

func TestItemAddSetRemove(t *testing.T) {
	useTempProfile(t)

	require.NoError(t, runItemAdd(itemAddCmd, []string{"awards"}))

	r := readStored(t, store.KeyResumeData, schema.Resume{})
	require.Len(t, r.Awards, 1)
	id := r.Awards[0].ID

	require.NoError(t, runItemSet(itemSetCmd, []string{"awards", id, "title", "Best in Show"}))
	r = readStored(t, store.KeyResumeData, schema.Resume{})
	assert.Equal(t, "Best in Show", r.Awards[0].Title)

	require.NoError(t, runItemRemove(itemRemoveCmd, []string{"awards", id}))
	r = readStored(t, store.KeyResumeData, schema.Resume{})
	assert.Empty(t, r.Awards)

	assert.Error(t, runItemAdd(itemAddCmd, []string{"hobbies"}))
}

func TestHighlightAdd(t *testing.T) {
	useTempProfile(t)

	require.NoError(t, runInit(initCmd, nil))
	r := readStored(t, store.KeyResumeData, schema.Resume{})
	require.NotEmpty(t, r.Work)
	id := r.Work[0].ID
	before := len(r.Work[0].Highlights)

	require.NoError(t, runHighlightAdd(highlightAddCmd, []string{"work", id, "Cut build times in half"}))

	r = readStored(t, store.KeyResumeData, schema.Resume{})
	require.Len(t, r.Work[0].Highlights, before+1)
	assert.Equal(t, "Cut build times in half", r.Work[0].Highlights[before])
}

func TestSectionToggleAndMove(t *testing.T) {
	useTempProfile(t)

	require.NoError(t, runSectionToggle(sectionToggleCmd, []string{"references"}))
	lay := readStored(t, store.KeyResumeLayout, schema.Layout{})
	assert.True(t, lay.Sections[schema.KeyReferences].Enabled)

	first := lay.SectionOrder[0]
	second := lay.SectionOrder[1]
	require.NoError(t, runSectionMove(sectionMoveCmd, []string{"0", "1"}))
	lay = readStored(t, store.KeyResumeLayout, schema.Layout{})
	assert.Equal(t, second, lay.SectionOrder[0])
	assert.Equal(t, first, lay.SectionOrder[1])

	assert.Error(t, runSectionMove(sectionMoveCmd, []string{"0", "99"}))
}

func TestTemplateSet(t *testing.T) {
	useTempProfile(t)

	templateLetter = false
	require.NoError(t, runTemplateSet(templateSetCmd, []string{"Modern"}))
	assert.Equal(t, "Modern", readStored(t, store.KeySelectedTemplate, ""))

	templateLetter = true
	require.NoError(t, runTemplateSet(templateSetCmd, []string{"Onyx"}))
	assert.Equal(t, "Onyx", readStored(t, store.KeyCoverLetterTemplate, ""))
	assert.Equal(t, "Modern", readStored(t, store.KeySelectedTemplate, ""))
	templateLetter = false

	assert.Error(t, runTemplateSet(templateSetCmd, []string{"Vaporwave"}))
}

func TestCoverletterParagraphs(t *testing.T) {
	useTempProfile(t)

	require.NoError(t, runCoverletterParagraphAdd(coverletterParagraphAddCmd, []string{"Closing thoughts."}))
	c := readStored(t, store.KeyCoverLetterData, schema.CoverLetter{})
	require.NotEmpty(t, c.Body)
	last := len(c.Body) - 1
	assert.Equal(t, "Closing thoughts.", c.Body[last])

	require.NoError(t, runCoverletterParagraphSet(coverletterParagraphSetCmd, []string{"0", "Opening rewritten."}))
	c = readStored(t, store.KeyCoverLetterData, schema.CoverLetter{})
	assert.Equal(t, "Opening rewritten.", c.Body[0])

	require.NoError(t, runCoverletterParagraphRemove(coverletterParagraphRemoveCmd, []string{"0"}))
	c = readStored(t, store.KeyCoverLetterData, schema.CoverLetter{})
	assert.Len(t, c.Body, last)
}

func TestJobsAddMoveRemove(t *testing.T) {
	useTempProfile(t)

	jobsStatus, jobsLink, jobsNotes = "", "", ""
	require.NoError(t, runJobsAdd(jobsAddCmd, []string{"Acme", "Engineer"}))

	jobs := readStored(t, store.KeyJobs, []tracker.Job{})
	require.Len(t, jobs, 1)
	assert.Equal(t, tracker.StatusApplied, jobs[0].Status)
	id := jobs[0].ID

	require.NoError(t, runJobsMove(jobsMoveCmd, []string{id, "Interview"}))
	jobs = readStored(t, store.KeyJobs, []tracker.Job{})
	assert.Equal(t, tracker.StatusInterview, jobs[0].Status)

	assert.Error(t, runJobsMove(jobsMoveCmd, []string{id, "Wishlist"}))

	require.NoError(t, runJobsRemove(jobsRemoveCmd, []string{id}))
	jobs = readStored(t, store.KeyJobs, []tracker.Job{})
	assert.Empty(t, jobs)
}

func TestBackupRestoreRoundTrip(t *testing.T) {
	useTempProfile(t)

	require.NoError(t, runSet(setCmd, []string{"name", "Backup Me"}))

	path := filepath.Join(t.TempDir(), "backup.json")
	require.NoError(t, runBackup(backupCmd, []string{path}))

	require.NoError(t, runSet(setCmd, []string{"name", "Overwritten"}))
	require.NoError(t, runRestore(restoreCmd, []string{path}))

	r := readStored(t, store.KeyResumeData, schema.Resume{})
	assert.Equal(t, "Backup Me", r.Basics.Name)

	garbage := filepath.Join(t.TempDir(), "garbage.json")
	require.NoError(t, os.WriteFile(garbage, []byte("not a backup"), 0o644))
	assert.Error(t, runRestore(restoreCmd, []string{garbage}))
}

func TestImportText(t *testing.T) {
	useTempProfile(t)

	path := filepath.Join(t.TempDir(), "resume.txt")
	content := "Sam Carter\nsam@example.com\nBuilt things for ten years."
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	importHTML = false
	require.NoError(t, runImport(importCmd, []string{path}))

	r := readStored(t, store.KeyResumeData, schema.Resume{})
	assert.Equal(t, "Sam Carter", r.Basics.Name)
	assert.Equal(t, "sam@example.com", r.Basics.Email)
}

func TestExportText(t *testing.T) {
	useTempProfile(t)

	exportOut = t.TempDir()
	exportName = "Test"
	exportTemplate = ""
	t.Cleanup(func() {
		exportOut, exportName = "exports", ""
	})
	exportCmd.SetContext(context.Background())

	require.NoError(t, runExport(exportCmd, []string{"text"}))

	data, err := os.ReadFile(filepath.Join(exportOut, "Test.txt"))
	require.NoError(t, err)
	assert.Contains(t, string(data), "YOUR NAME")

	assert.Error(t, runExport(exportCmd, []string{"docx"}))
}

func TestBaseName(t *testing.T) {
	assert.Equal(t, "Jane_Doe_Resume", baseName("Jane Doe"))
	assert.Equal(t, "Resume", baseName("  "))
}
