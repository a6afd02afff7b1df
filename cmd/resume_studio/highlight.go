package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jonathan/resume-studio/internal/editor"
	"github.com/jonathan/resume-studio/internal/schema"
)

var highlightCmd = &cobra.Command{
	Use:   "highlight",
	Short: "Manage highlight bullets on an entry",
}

var highlightAddCmd = &cobra.Command{
	Use:   "add <section> <id> <text>",
	Short: "Append one highlight bullet",
	Long:  "Append one highlight bullet to the entry with the given id. Only work, volunteer, and projects entries carry highlights.",
	Args:  cobra.ExactArgs(3),
	RunE:  runHighlightAdd,
}

func init() {
	highlightCmd.AddCommand(highlightAddCmd)
	rootCmd.AddCommand(highlightCmd)
}

func runHighlightAdd(_ *cobra.Command, args []string) error {
	key, err := schema.ParseSectionKey(args[0])
	if err != nil {
		return err
	}
	id, text := args[1], args[2]

	s, err := openStore()
	if err != nil {
		return err
	}
	defer s.Close() //nolint:errcheck

	r, err := loadResume(s)
	if err != nil {
		return err
	}
	if err := editor.AddHighlight(&r, key, id, text); err != nil {
		return err
	}
	if err := saveResume(s, r); err != nil {
		return err
	}

	fmt.Fprintf(os.Stdout, "Added highlight to %s entry %s\n", key, id)
	return nil
}
