package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jonathan/resume-studio/internal/editor"
)

var profileCmd = &cobra.Command{
	Use:   "social",
	Short: "Manage social profiles under basics",
}

var profileAddCmd = &cobra.Command{
	Use:   "add",
	Short: "Append a blank social profile",
	RunE:  runProfileAdd,
}

var profileSetCmd = &cobra.Command{
	Use:   "set <id> <field> <value>",
	Short: "Set a social profile field",
	Long:  "Set one field of the social profile with the given id. Fields: network, username, url.",
	Args:  cobra.ExactArgs(3),
	RunE:  runProfileSet,
}

var profileRemoveCmd = &cobra.Command{
	Use:   "remove <id>",
	Short: "Remove a social profile",
	Args:  cobra.ExactArgs(1),
	RunE:  runProfileRemove,
}

func init() {
	profileCmd.AddCommand(profileAddCmd)
	profileCmd.AddCommand(profileSetCmd)
	profileCmd.AddCommand(profileRemoveCmd)
	rootCmd.AddCommand(profileCmd)
}

func runProfileAdd(_ *cobra.Command, _ []string) error {
	s, err := openStore()
	if err != nil {
		return err
	}
	defer s.Close() //nolint:errcheck

	r, err := loadResume(s)
	if err != nil {
		return err
	}
	id := editor.AddProfile(&r)
	if err := saveResume(s, r); err != nil {
		return err
	}

	fmt.Fprintf(os.Stdout, "Added social profile %s\n", id)
	return nil
}

func runProfileSet(_ *cobra.Command, args []string) error {
	id, field, value := args[0], args[1], args[2]

	s, err := openStore()
	if err != nil {
		return err
	}
	defer s.Close() //nolint:errcheck

	r, err := loadResume(s)
	if err != nil {
		return err
	}
	if err := editor.UpdateProfile(&r, id, field, value); err != nil {
		return err
	}
	if err := saveResume(s, r); err != nil {
		return err
	}

	fmt.Fprintf(os.Stdout, "Set %s on %s\n", field, id)
	return nil
}

func runProfileRemove(_ *cobra.Command, args []string) error {
	s, err := openStore()
	if err != nil {
		return err
	}
	defer s.Close() //nolint:errcheck

	r, err := loadResume(s)
	if err != nil {
		return err
	}
	editor.RemoveProfile(&r, args[0])
	if err := saveResume(s, r); err != nil {
		return err
	}

	fmt.Fprintf(os.Stdout, "Removed social profile %s\n", args[0])
	return nil
}
