package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jonathan/resume-studio/internal/editor"
	"github.com/jonathan/resume-studio/internal/genai"
	"github.com/jonathan/resume-studio/internal/schema"
)

var draftCmd = &cobra.Command{
	Use:   "draft",
	Short: "Draft resume content with AI",
	Long:  "Draft resume and cover letter content with the Gemini API and write the result back to the profile. Requires an API key via --api-key or the GEMINI_API_KEY environment variable.",
}

var draftSummaryCmd = &cobra.Command{
	Use:   "summary",
	Short: "Draft the professional summary",
	RunE:  runDraftSummary,
}

var draftExperienceCmd = &cobra.Command{
	Use:   "experience <id>",
	Short: "Draft highlight bullets for a work entry",
	Args:  cobra.ExactArgs(1),
	RunE:  runDraftExperience,
}

var draftProjectCmd = &cobra.Command{
	Use:   "project <id>",
	Short: "Draft highlight bullets for a project entry",
	Args:  cobra.ExactArgs(1),
	RunE:  runDraftProject,
}

var draftCoverletterCmd = &cobra.Command{
	Use:   "coverletter",
	Short: "Draft the cover letter body",
	Long:  "Draft the cover letter body from the stored job description, tone, and resume, replacing the current body paragraphs.",
	RunE:  runDraftCoverletter,
}

var (
	draftAPIKey string
	draftModel  string
)

func init() {
	draftCmd.PersistentFlags().StringVar(&draftAPIKey, "api-key", "", "Gemini API key (defaults to GEMINI_API_KEY)")
	draftCmd.PersistentFlags().StringVar(&draftModel, "model", genai.DefaultModel, "Gemini model name")
	draftCmd.AddCommand(draftSummaryCmd)
	draftCmd.AddCommand(draftExperienceCmd)
	draftCmd.AddCommand(draftProjectCmd)
	draftCmd.AddCommand(draftCoverletterCmd)
	rootCmd.AddCommand(draftCmd)
}

// newDrafter builds a Drafter over a live Gemini client. The returned
// close func must run after the drafting call completes.
func newDrafter(ctx context.Context) (*genai.Drafter, func(), error) {
	key := geminiKey(draftAPIKey)
	if key == "" {
		return nil, nil, fmt.Errorf("no API key: pass --api-key or set GEMINI_API_KEY")
	}
	client, err := genai.NewGeminiClient(ctx, key, draftModel)
	if err != nil {
		return nil, nil, err
	}
	d := genai.NewDrafter(client)
	d.Verbose = rootVerbose
	return d, func() { _ = client.Close() }, nil
}

func runDraftSummary(cmd *cobra.Command, _ []string) error {
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

	d, closeClient, err := newDrafter(ctx)
	if err != nil {
		return err
	}
	defer closeClient()

	summary, err := d.Summary(ctx, &r)
	if err != nil {
		return err
	}
	r.Basics.Summary = summary
	if err := saveResume(s, r); err != nil {
		return err
	}

	fmt.Fprintln(os.Stdout, summary)
	return nil
}

func runDraftExperience(cmd *cobra.Command, args []string) error {
	return draftHighlights(cmd.Context(), schema.KeyWork, args[0])
}

func runDraftProject(cmd *cobra.Command, args []string) error {
	return draftHighlights(cmd.Context(), schema.KeyProjects, args[0])
}

func draftHighlights(ctx context.Context, key schema.SectionKey, id string) error {
	s, err := openStore()
	if err != nil {
		return err
	}
	defer s.Close() //nolint:errcheck

	r, err := loadResume(s)
	if err != nil {
		return err
	}

	d, closeClient, err := newDrafter(ctx)
	if err != nil {
		return err
	}
	defer closeClient()

	var highlights []string
	switch key {
	case schema.KeyWork:
		w, ok := findWork(&r, id)
		if !ok {
			return fmt.Errorf("no work entry with id %s", id)
		}
		highlights, err = d.ExperienceHighlights(ctx, w)
	case schema.KeyProjects:
		p, ok := findProject(&r, id)
		if !ok {
			return fmt.Errorf("no project entry with id %s", id)
		}
		highlights, err = d.ProjectHighlights(ctx, p)
	}
	if err != nil {
		return err
	}

	if err := editor.UpdateField(&r, key, id, "highlights", editor.JoinLines(highlights)); err != nil {
		return err
	}
	if err := saveResume(s, r); err != nil {
		return err
	}

	for _, h := range highlights {
		fmt.Fprintf(os.Stdout, "• %s\n", h)
	}
	return nil
}

func runDraftCoverletter(cmd *cobra.Command, _ []string) error {
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
	c, err := loadCoverLetter(s)
	if err != nil {
		return err
	}

	d, closeClient, err := newDrafter(ctx)
	if err != nil {
		return err
	}
	defer closeClient()

	body, err := d.CoverLetterBody(ctx, &c, &r)
	if err != nil {
		return err
	}
	c.Body = body
	if err := saveCoverLetter(s, c); err != nil {
		return err
	}

	for i, p := range body {
		if i > 0 {
			fmt.Fprintln(os.Stdout)
		}
		fmt.Fprintln(os.Stdout, p)
	}
	return nil
}

func findWork(r *schema.Resume, id string) (schema.Work, bool) {
	for _, w := range r.Work {
		if w.ID == id {
			return w, true
		}
	}
	return schema.Work{}, false
}

func findProject(r *schema.Resume, id string) (schema.Project, bool) {
	for _, p := range r.Projects {
		if p.ID == id {
			return p, true
		}
	}
	return schema.Project{}, false
}
