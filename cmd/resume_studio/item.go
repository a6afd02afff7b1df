package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jonathan/resume-studio/internal/editor"
	"github.com/jonathan/resume-studio/internal/schema"
)

var itemCmd = &cobra.Command{
	Use:   "item",
	Short: "Manage entries inside a resume section",
	Long:  "Add, edit, or remove entries inside a resume section. Entries are addressed by their stable id, printed by 'item add' and 'show --format json'.",
}

var itemAddCmd = &cobra.Command{
	Use:   "add <section>",
	Short: "Append a blank entry to a section",
	Args:  cobra.ExactArgs(1),
	RunE:  runItemAdd,
}

var itemSetCmd = &cobra.Command{
	Use:   "set <section> <id> <field> <value>",
	Short: "Set one field of an entry",
	Long:  "Set one field of the entry with the given id. List-valued fields (highlights, keywords, courses) take the value as newline-separated lines.",
	Args:  cobra.ExactArgs(4),
	RunE:  runItemSet,
}

var itemRemoveCmd = &cobra.Command{
	Use:   "remove <section> <id>",
	Short: "Remove an entry from a section",
	Args:  cobra.ExactArgs(2),
	RunE:  runItemRemove,
}

func init() {
	itemCmd.AddCommand(itemAddCmd)
	itemCmd.AddCommand(itemSetCmd)
	itemCmd.AddCommand(itemRemoveCmd)
	rootCmd.AddCommand(itemCmd)
}

func runItemAdd(_ *cobra.Command, args []string) error {
	key, err := schema.ParseSectionKey(args[0])
	if err != nil {
		return err
	}

	s, err := openStore()
	if err != nil {
		return err
	}
	defer s.Close() //nolint:errcheck

	r, err := loadResume(s)
	if err != nil {
		return err
	}
	id, err := editor.AddItem(&r, key)
	if err != nil {
		return err
	}
	if err := saveResume(s, r); err != nil {
		return err
	}

	fmt.Fprintf(os.Stdout, "Added %s entry %s\n", key, id)
	return nil
}

func runItemSet(_ *cobra.Command, args []string) error {
	key, err := schema.ParseSectionKey(args[0])
	if err != nil {
		return err
	}
	id, field, value := args[1], args[2], args[3]

	s, err := openStore()
	if err != nil {
		return err
	}
	defer s.Close() //nolint:errcheck

	r, err := loadResume(s)
	if err != nil {
		return err
	}
	if err := editor.UpdateField(&r, key, id, field, value); err != nil {
		return err
	}
	if err := saveResume(s, r); err != nil {
		return err
	}

	fmt.Fprintf(os.Stdout, "Set %s.%s on %s\n", key, field, id)
	return nil
}

func runItemRemove(_ *cobra.Command, args []string) error {
	key, err := schema.ParseSectionKey(args[0])
	if err != nil {
		return err
	}
	id := args[1]

	s, err := openStore()
	if err != nil {
		return err
	}
	defer s.Close() //nolint:errcheck

	r, err := loadResume(s)
	if err != nil {
		return err
	}
	if err := editor.RemoveItem(&r, key, id); err != nil {
		return err
	}
	if err := saveResume(s, r); err != nil {
		return err
	}

	fmt.Fprintf(os.Stdout, "Removed %s entry %s\n", key, id)
	return nil
}
