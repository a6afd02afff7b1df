package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/jonathan/resume-studio/internal/export"
	"github.com/jonathan/resume-studio/internal/layout"
	"github.com/jonathan/resume-studio/internal/schema"
)

var exportCmd = &cobra.Command{
	Use:   "export <format>",
	Short: "Export the resume to a file",
	Long:  "Export the resume as text, rtf, html, or pdf, or all four at once. PDF export renders the HTML skin in headless Chrome and paginates the capture.",
	Args:  cobra.ExactArgs(1),
	RunE:  runExport,
}

var (
	exportOut      string
	exportName     string
	exportTemplate string
)

func init() {
	exportCmd.Flags().StringVarP(&exportOut, "out", "o", "exports", "Output directory")
	exportCmd.Flags().StringVar(&exportName, "name", "", "Base file name (defaults to <Name>_Resume)")
	exportCmd.Flags().StringVar(&exportTemplate, "template", "", "Skin override for html and pdf output")
	rootCmd.AddCommand(exportCmd)
}

func runExport(cmd *cobra.Command, args []string) error {
	format := strings.ToLower(args[0])

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

	tmpl, err := loadTemplate(s)
	if err != nil {
		return err
	}
	if exportTemplate != "" {
		tmpl, err = schema.ParseTemplate(exportTemplate)
		if err != nil {
			return err
		}
	}

	name := exportName
	if name == "" {
		name = baseName(r.Basics.Name)
	}

	e := export.NewExporter(exportOut, name, tmpl)
	e.Verbose = rootVerbose
	order := layout.EnabledOrderedKeys(lay)
	ctx := cmd.Context()

	var paths []string
	switch format {
	case "text", "txt":
		path, err := e.WriteText(&r)
		if err != nil {
			return err
		}
		paths = []string{path}
	case "rtf":
		path, err := e.WriteRTF(&r)
		if err != nil {
			return err
		}
		paths = []string{path}
	case "html":
		path, err := e.WriteHTML(&r, order)
		if err != nil {
			return err
		}
		paths = []string{path}
	case "pdf":
		path, err := e.WritePDF(ctx, &r, order)
		if err != nil {
			return err
		}
		paths = []string{path}
	case "all":
		paths, err = e.All(ctx, &r, order)
		if err != nil {
			return err
		}
	default:
		return fmt.Errorf("unknown format %q (want text, rtf, html, pdf, or all)", format)
	}

	printer().PrintExportPaths(paths)
	return nil
}

// baseName derives the export file stem from the candidate's name.
func baseName(name string) string {
	name = strings.TrimSpace(name)
	if name == "" {
		return "Resume"
	}
	return strings.ReplaceAll(name, " ", "_") + "_Resume"
}
