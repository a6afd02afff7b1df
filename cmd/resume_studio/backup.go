package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jonathan/resume-studio/internal/backup"
)

var backupCmd = &cobra.Command{
	Use:   "backup [file]",
	Short: "Write the profile to a backup file",
	Long:  "Write every stored profile value to a single JSON backup file. The default file name is resume_studio_backup.json.",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runBackup,
}

func init() {
	rootCmd.AddCommand(backupCmd)
}

func runBackup(_ *cobra.Command, args []string) error {
	path := "resume_studio_backup.json"
	if len(args) == 1 {
		path = args[0]
	}

	s, err := openStore()
	if err != nil {
		return err
	}
	defer s.Close() //nolint:errcheck

	snap, err := backup.Export(s, rootProfile)
	if err != nil {
		return err
	}
	data, err := backup.Marshal(snap)
	if err != nil {
		return err
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return err
	}

	fmt.Fprintf(os.Stdout, "Backed up %d keys to %s\n", len(snap), path)
	return nil
}
