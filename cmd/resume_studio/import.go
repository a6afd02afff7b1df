package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/jonathan/resume-studio/internal/importer"
)

var importCmd = &cobra.Command{
	Use:   "import <file>",
	Short: "Import a resume from text or HTML",
	Long:  "Extract a rough draft (name, email, summary) from a plain text or HTML file and merge it into the stored resume. Fields that already hold content are left alone.",
	Args:  cobra.ExactArgs(1),
	RunE:  runImport,
}

var importHTML bool

func init() {
	importCmd.Flags().BoolVar(&importHTML, "html", false, "Treat the input as HTML regardless of extension")
	rootCmd.AddCommand(importCmd)
}

func runImport(_ *cobra.Command, args []string) error {
	path := args[0]

	f, err := os.Open(path)
	if err != nil {
		return err
	}
	defer f.Close() //nolint:errcheck

	var draft *importer.Draft
	ext := strings.ToLower(filepath.Ext(path))
	if importHTML || ext == ".html" || ext == ".htm" {
		draft, err = importer.FromHTML(f)
	} else {
		var data []byte
		data, err = os.ReadFile(path)
		if err == nil {
			draft, err = importer.FromText(string(data))
		}
	}
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
	importer.Apply(&r, draft)
	if err := saveResume(s, r); err != nil {
		return err
	}

	fmt.Fprintf(os.Stdout, "Imported %s\n", path)
	if rootVerbose {
		printer().PrintResume(&r)
	}
	return nil
}
