package main

import (
	"os"

	"github.com/jonathan/resume-studio/internal/config"
	"github.com/jonathan/resume-studio/internal/defaults"
	"github.com/jonathan/resume-studio/internal/observability"
	"github.com/jonathan/resume-studio/internal/schema"
	"github.com/jonathan/resume-studio/internal/store"
)

// openStore opens the file-backed store for the selected profile
// directory. Callers must Close it.
func openStore() (*store.FileStore, error) {
	dir := rootProfileDir
	if dir == "" {
		dir = config.DefaultProfileDir()
	}
	return store.NewFileStore(dir)
}

func printer() *observability.Printer {
	return observability.NewPrinter(os.Stdout)
}

// loadResume reads the profile's resume, seeding defaults on first use.
func loadResume(s store.Store) (schema.Resume, error) {
	r, err := store.Load(s, rootProfile, store.KeyResumeData, defaults.Resume())
	if err != nil {
		return schema.Resume{}, err
	}
	schema.NormalizeResume(&r)
	return r, nil
}

func saveResume(s store.Store, r schema.Resume) error {
	return store.Save(s, rootProfile, store.KeyResumeData, r)
}

func loadLayout(s store.Store) (schema.Layout, error) {
	return store.Load(s, rootProfile, store.KeyResumeLayout, defaults.Layout())
}

func saveLayout(s store.Store, l schema.Layout) error {
	return store.Save(s, rootProfile, store.KeyResumeLayout, l)
}

func loadTemplate(s store.Store) (schema.Template, error) {
	name, err := store.Load(s, rootProfile, store.KeySelectedTemplate, string(schema.TemplateClassic))
	if err != nil {
		return "", err
	}
	tmpl, err := schema.ParseTemplate(name)
	if err != nil {
		return schema.TemplateClassic, nil
	}
	return tmpl, nil
}

func loadCoverLetter(s store.Store) (schema.CoverLetter, error) {
	c, err := store.Load(s, rootProfile, store.KeyCoverLetterData, defaults.CoverLetter())
	if err != nil {
		return schema.CoverLetter{}, err
	}
	schema.NormalizeCoverLetter(&c)
	return c, nil
}

func saveCoverLetter(s store.Store, c schema.CoverLetter) error {
	return store.Save(s, rootProfile, store.KeyCoverLetterData, c)
}

// geminiKey resolves the API key from the flag value or the
// environment.
func geminiKey(flagValue string) string {
	if flagValue != "" {
		return flagValue
	}
	return os.Getenv("GEMINI_API_KEY")
}
