package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/jonathan/resume-studio/internal/genai"
)

var atsCmd = &cobra.Command{
	Use:   "ats [job description]",
	Short: "Analyze the resume against a job description",
	Long:  "Compare the resume against a job description and report matched and missing keywords. The description comes from the argument, --file, or the stored cover letter job description, in that order.",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runAts,
}

var atsFile string

func init() {
	atsCmd.Flags().StringVar(&atsFile, "file", "", "Read the job description from a file")
	atsCmd.Flags().StringVar(&draftAPIKey, "api-key", "", "Gemini API key (defaults to GEMINI_API_KEY)")
	atsCmd.Flags().StringVar(&draftModel, "model", genai.DefaultModel, "Gemini model name")
	rootCmd.AddCommand(atsCmd)
}

func runAts(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	s, err := openStore()
	if err != nil {
		return err
	}
	defer s.Close() //nolint:errcheck

	r, err := loadResume(s)
	if err != nil {
		return err
	}

	var jobDescription string
	switch {
	case len(args) == 1:
		jobDescription = args[0]
	case atsFile != "":
		data, err := os.ReadFile(atsFile)
		if err != nil {
			return err
		}
		jobDescription = string(data)
	default:
		c, err := loadCoverLetter(s)
		if err != nil {
			return err
		}
		jobDescription = c.JobDescription
	}
	if strings.TrimSpace(jobDescription) == "" {
		return fmt.Errorf("no job description: pass one as an argument, via --file, or store it with 'coverletter set jobDescription'")
	}

	d, closeClient, err := newDrafter(ctx)
	if err != nil {
		return err
	}
	defer closeClient()

	analysis, err := d.AnalyzeJobDescription(ctx, jobDescription, &r)
	if err != nil {
		return err
	}
	printer().PrintAnalysis(analysis)
	return nil
}
