package main

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/jonathan/resume-studio/internal/editor"
	"github.com/jonathan/resume-studio/internal/layout"
	"github.com/jonathan/resume-studio/internal/render"
	"github.com/jonathan/resume-studio/internal/schema"
)

var wizardCmd = &cobra.Command{
	Use:   "wizard",
	Short: "Fill in the resume step by step",
	Long:  "Walk through basics and every enabled section in display order, prompting for each field. Press Enter to keep a current value, and answer n to skip adding entries to a section.",
	RunE:  runWizard,
}

func init() {
	rootCmd.AddCommand(wizardCmd)
}

// wizardFields lists the prompted fields per section. List-valued
// fields stay out of the wizard; they are edited with 'item set' and
// 'highlight add'.
var wizardFields = map[schema.SectionKey][]string{
	schema.KeyWork:         {"name", "position", "startDate", "endDate", "summary"},
	schema.KeyVolunteer:    {"organization", "position", "startDate", "endDate"},
	schema.KeyEducation:    {"institution", "area", "studyType", "startDate", "endDate", "score"},
	schema.KeyAwards:       {"title", "date", "awarder"},
	schema.KeyCertificates: {"name", "date", "issuer"},
	schema.KeyPublications: {"name", "publisher", "releaseDate"},
	schema.KeySkills:       {"name", "level"},
	schema.KeyLanguages:    {"language", "fluency"},
	schema.KeyInterests:    {"name"},
	schema.KeyReferences:   {"name", "reference"},
	schema.KeyProjects:     {"name", "description", "startDate", "endDate"},
}

var basicsFields = []string{"name", "label", "email", "phone", "summary"}

func runWizard(cmd *cobra.Command, _ []string) error {
	s, err := openStore()
	if err != nil {
		return err
	}
	defer s.Close() //nolint:errcheck

	r, err := loadResume(s)
	if err != nil {
		return err
	}
	lay, err := loadLayout(s)
	if err != nil {
		return err
	}

	in := bufio.NewScanner(cmd.InOrStdin())
	out := cmd.OutOrStdout()
	stepper := editor.NewStepper(layout.EnabledOrderedKeys(lay))

	for {
		key := stepper.Current()
		fmt.Fprintf(out, "\n[%d/%d] %s\n", stepper.Index()+1, stepper.Len(), stepTitle(key))

		if key == schema.KeyBasics {
			if err := wizardBasics(in, out, &r); err != nil {
				return err
			}
		} else if err := wizardSection(in, out, &r, key); err != nil {
			return err
		}

		if stepper.Index() == stepper.Len()-1 {
			break
		}
		stepper.Next()
	}

	if err := saveResume(s, r); err != nil {
		return err
	}
	fmt.Fprintln(out, "\nSaved. Run 'show' or 'serve' to see the result.")
	return nil
}

func stepTitle(key schema.SectionKey) string {
	if key == schema.KeyBasics {
		return "Basics"
	}
	return render.SectionTitle(key)
}

func wizardBasics(in *bufio.Scanner, out io.Writer, r *schema.Resume) error {
	current := map[string]string{
		"name":    r.Basics.Name,
		"label":   r.Basics.Label,
		"email":   r.Basics.Email,
		"phone":   r.Basics.Phone,
		"summary": r.Basics.Summary,
	}
	for _, field := range basicsFields {
		value, ok := prompt(in, out, field, current[field])
		if !ok {
			return nil
		}
		if value == "" {
			continue
		}
		if err := editor.SetBasicsField(r, field, value); err != nil {
			return err
		}
	}
	return nil
}

func wizardSection(in *bufio.Scanner, out io.Writer, r *schema.Resume, key schema.SectionKey) error {
	for {
		fmt.Fprintf(out, "Add %s entry? [y/N] ", render.SectionTitle(key))
		if !in.Scan() {
			return nil
		}
		answer := strings.ToLower(strings.TrimSpace(in.Text()))
		if answer != "y" && answer != "yes" {
			return nil
		}

		id, err := editor.AddItem(r, key)
		if err != nil {
			return err
		}
		for _, field := range wizardFields[key] {
			value, ok := prompt(in, out, field, "")
			if !ok {
				return nil
			}
			if value == "" {
				continue
			}
			if err := editor.UpdateField(r, key, id, field, value); err != nil {
				fmt.Fprintf(out, "  %v\n", err)
			}
		}
	}
}

// prompt asks for one field, showing the current value when there is
// one. It reports false when input ran out.
func prompt(in *bufio.Scanner, out io.Writer, field, current string) (string, bool) {
	if current != "" {
		fmt.Fprintf(out, "  %s [%s]: ", field, current)
	} else {
		fmt.Fprintf(out, "  %s: ", field)
	}
	if !in.Scan() {
		return "", false
	}
	return strings.TrimSpace(in.Text()), true
}
