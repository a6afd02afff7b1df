package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jonathan/resume-studio/internal/backup"
)

var restoreCmd = &cobra.Command{
	Use:   "restore <file>",
	Short: "Restore the profile from a backup file",
	Long:  "Replace stored profile values with the contents of a backup file. The file is validated in full before anything is written, so a bad backup never leaves the profile half restored.",
	Args:  cobra.ExactArgs(1),
	RunE:  runRestore,
}

func init() {
	rootCmd.AddCommand(restoreCmd)
}

func runRestore(_ *cobra.Command, args []string) error {
	data, err := os.ReadFile(args[0])
	if err != nil {
		return err
	}

	s, err := openStore()
	if err != nil {
		return err
	}
	defer s.Close() //nolint:errcheck

	if err := backup.Restore(s, rootProfile, data); err != nil {
		return err
	}

	fmt.Fprintf(os.Stdout, "Restored profile %q from %s\n", rootProfile, args[0])
	return nil
}
