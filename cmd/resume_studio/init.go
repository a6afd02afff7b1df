package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jonathan/resume-studio/internal/schema"
	"github.com/jonathan/resume-studio/internal/store"
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Seed a new profile with starter content",
	Long:  "Create the profile store and seed it with the starter resume, layout, and cover letter so every later command has data to work with.",
	RunE:  runInit,
}

func init() {
	rootCmd.AddCommand(initCmd)
}

func runInit(_ *cobra.Command, _ []string) error {
	s, err := openStore()
	if err != nil {
		return err
	}
	defer s.Close() //nolint:errcheck

	// Loading seeds defaults on first read.
	r, err := loadResume(s)
	if err != nil {
		return err
	}
	if _, err := loadLayout(s); err != nil {
		return err
	}
	if _, err := loadTemplate(s); err != nil {
		return err
	}
	if _, err := loadCoverLetter(s); err != nil {
		return err
	}
	if _, err := store.Load(s, rootProfile, store.KeyCoverLetterTemplate, string(schema.TemplateClassic)); err != nil {
		return err
	}
	if _, err := store.Load(s, rootProfile, store.KeyIsPremium, false); err != nil {
		return err
	}

	fmt.Fprintf(os.Stdout, "Initialized profile %q\n", rootProfile)
	if rootVerbose {
		printer().PrintResume(&r)
	}
	return nil
}
