package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jonathan/resume-studio/internal/editor"
)

var setCmd = &cobra.Command{
	Use:   "set <field> <value>",
	Short: "Set a basics field",
	Long:  "Set one field of the resume basics record. Fields: name, label, email, phone, url, summary, city, region.",
	Args:  cobra.ExactArgs(2),
	RunE:  runSet,
}

func init() {
	rootCmd.AddCommand(setCmd)
}

func runSet(_ *cobra.Command, args []string) error {
	field, value := args[0], args[1]

	s, err := openStore()
	if err != nil {
		return err
	}
	defer s.Close() //nolint:errcheck

	r, err := loadResume(s)
	if err != nil {
		return err
	}
	if err := editor.SetBasicsField(&r, field, value); err != nil {
		return err
	}
	if err := saveResume(s, r); err != nil {
		return err
	}

	fmt.Fprintf(os.Stdout, "Set %s\n", field)
	return nil
}
