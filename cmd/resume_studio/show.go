package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jonathan/resume-studio/internal/export"
	"github.com/jonathan/resume-studio/internal/layout"
	"github.com/jonathan/resume-studio/internal/render"
)

var showCmd = &cobra.Command{
	Use:   "show",
	Short: "Print the resume",
	Long:  "Print the resume to the terminal. Formats: term (styled), text (flattened export), json (raw document), summary (overview box).",
	RunE:  runShow,
}

var showFormat string

func init() {
	showCmd.Flags().StringVarP(&showFormat, "format", "f", "term", "Output format: term, text, json, summary")
	rootCmd.AddCommand(showCmd)
}

func runShow(_ *cobra.Command, _ []string) error {
	s, err := openStore()
	if err != nil {
		return err
	}
	defer s.Close() //nolint:errcheck

	r, err := loadResume(s)
	if err != nil {
		return err
	}

	switch showFormat {
	case "term":
		lay, err := loadLayout(s)
		if err != nil {
			return err
		}
		skin := render.NewTerminalSkin()
		out, err := skin.Render(&r, layout.EnabledOrderedKeys(lay))
		if err != nil {
			return err
		}
		fmt.Fprint(os.Stdout, out)
	case "text":
		fmt.Fprint(os.Stdout, export.Text(&r))
	case "json":
		data, err := json.MarshalIndent(r, "", "  ")
		if err != nil {
			return err
		}
		fmt.Fprintln(os.Stdout, string(data))
	case "summary":
		printer().PrintResume(&r)
	default:
		return fmt.Errorf("unknown format %q (want term, text, json, or summary)", showFormat)
	}
	return nil
}
