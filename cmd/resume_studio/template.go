package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jonathan/resume-studio/internal/schema"
	"github.com/jonathan/resume-studio/internal/store"
)

var templateCmd = &cobra.Command{
	Use:   "template",
	Short: "Get or set the active skin",
	Long:  "Get or set the visual skin used for rendering. Skins: Classic, Modern, Onyx, Pikachu. Use --letter to address the cover letter skin instead of the resume skin.",
}

var templateGetCmd = &cobra.Command{
	Use:   "get",
	Short: "Print the active skin",
	RunE:  runTemplateGet,
}

var templateSetCmd = &cobra.Command{
	Use:   "set <name>",
	Short: "Select a skin",
	Args:  cobra.ExactArgs(1),
	RunE:  runTemplateSet,
}

var templateLetter bool

func init() {
	templateCmd.PersistentFlags().BoolVar(&templateLetter, "letter", false, "Address the cover letter skin")
	templateCmd.AddCommand(templateGetCmd)
	templateCmd.AddCommand(templateSetCmd)
	rootCmd.AddCommand(templateCmd)
}

func templateKey() string {
	if templateLetter {
		return store.KeyCoverLetterTemplate
	}
	return store.KeySelectedTemplate
}

func runTemplateGet(_ *cobra.Command, _ []string) error {
	s, err := openStore()
	if err != nil {
		return err
	}
	defer s.Close() //nolint:errcheck

	name, err := store.Load(s, rootProfile, templateKey(), string(schema.TemplateClassic))
	if err != nil {
		return err
	}
	fmt.Fprintln(os.Stdout, name)
	return nil
}

func runTemplateSet(_ *cobra.Command, args []string) error {
	tmpl, err := schema.ParseTemplate(args[0])
	if err != nil {
		return err
	}

	s, err := openStore()
	if err != nil {
		return err
	}
	defer s.Close() //nolint:errcheck

	if err := store.Save(s, rootProfile, templateKey(), string(tmpl)); err != nil {
		return err
	}

	fmt.Fprintf(os.Stdout, "Template set to %s\n", tmpl)
	return nil
}
