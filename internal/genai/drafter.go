package genai

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"strings"
	"sync"

	"github.com/jonathan/resume-studio/internal/prompts"
	"github.com/jonathan/resume-studio/internal/schema"
)

// ErrinFlight is returned when a draft for the same entity is already
// running.
var ErrInFlight = errors.New("genai: a draft for this entity is already in progress")

// Placeholder text returned when generation fails.
const (
	summaryFallback    = "Error: Could not generate summary. Please check your API key and try again."
	highlightsFallback = "Error: Could not generate suggestions. Please check your API key and try again."
	letterFallback     = "Error: Could not generate cover letter. Please check your API key and try again."
	analysisFallback   = "There was an error communicating with the AI service. Please check your API key and try again."
)

const promptFile = "drafting.json"

// AtsKeywords groups missing keywords by category.
type AtsKeywords struct {
	Technical  []string `json:"technical"`
	SoftSkills []string `json:"softSkills"`
	Other      []string `json:"other"`
}

// AtsAnalysis is the result of comparing a resume against a job
// description.
type AtsAnalysis struct {
	MissingKeywords AtsKeywords `json:"missingKeywords"`
	PresentKeywords []string    `json:"presentKeywords"`
	Analysis        string      `json:"analysis"`
}

// Drafter runs drafting operations against a Client. At most one draft
// per entity runs at a time; a second concurrent request for the same
// entity fails fast with ErrInFlight.
type Drafter struct {
	client   Client
	inflight sync.Map
	Verbose  bool
}

// NewDrafter wraps a client.
func NewDrafter(client Client) *Drafter {
	return &Drafter{client: client}
}

// acquire marks a draft slot for key, reporting false if it is taken.
func (d *Drafter) acquire(key string) bool {
	_, loaded := d.inflight.LoadOrStore(key, struct{}{})
	return !loaded
}

func (d *Drafter) release(key string) {
	d.inflight.Delete(key)
}

// Summary drafts a professional summary from the resume's label,
// experience, and skills. On provider failure the returned string is a
// labeled placeholder.
func (d *Drafter) Summary(ctx context.Context, r *schema.Resume) (string, error) {
	if !d.acquire("summary") {
		return "", ErrInFlight
	}
	defer d.release("summary")

	prompt := prompts.Format(prompts.MustGet(promptFile, "summary"), map[string]string{
		"Label":      r.Basics.Label,
		"Experience": experienceLine(r.Work),
		"Skills":     skillNames(r.Skills, len(r.Skills)),
	})

	text, err := d.client.GenerateContent(ctx, prompt)
	if err != nil {
		d.logf("summary generation failed: %v", err)
		return summaryFallback, nil
	}
	return strings.TrimSpace(text), nil
}

// ExperienceHighlights drafts bullet points for one work entry.
func (d *Drafter) ExperienceHighlights(ctx context.Context, w schema.Work) ([]string, error) {
	if !d.acquire("work:" + w.ID) {
		return nil, ErrInFlight
	}
	defer d.release("work:" + w.ID)

	prompt := prompts.Format(prompts.MustGet(promptFile, "experience_highlights"), map[string]string{
		"Position":   w.Position,
		"Company":    w.Name,
		"Summary":    w.Summary,
		"Highlights": strings.Join(w.Highlights, " "),
	})

	text, err := d.client.GenerateContent(ctx, prompt)
	if err != nil {
		d.logf("experience generation failed: %v", err)
		return []string{highlightsFallback}, nil
	}
	return splitBullets(text), nil
}

// ProjectHighlights drafts bullet points for one project entry.
func (d *Drafter) ProjectHighlights(ctx context.Context, p schema.Project) ([]string, error) {
	if !d.acquire("project:" + p.ID) {
		return nil, ErrInFlight
	}
	defer d.release("project:" + p.ID)

	prompt := prompts.Format(prompts.MustGet(promptFile, "project_highlights"), map[string]string{
		"Name":        p.Name,
		"Description": p.Description,
	})

	text, err := d.client.GenerateContent(ctx, prompt)
	if err != nil {
		d.logf("project generation failed: %v", err)
		return []string{highlightsFallback}, nil
	}
	return splitBullets(text), nil
}

// CoverLetterBody drafts body paragraphs grounded in the resume and the
// letter's recipient details. The model response must be a JSON array
// of strings; anything else degrades to the placeholder.
func (d *Drafter) CoverLetterBody(ctx context.Context, c *schema.CoverLetter, r *schema.Resume) ([]string, error) {
	if !d.acquire("letter") {
		return nil, ErrInFlight
	}
	defer d.release("letter")

	role := c.RecipientTitle
	if role == "" {
		role = "the advertised position"
	}
	prompt := prompts.Format(prompts.MustGet(promptFile, "cover_letter_body"), map[string]string{
		"Tone":       string(c.Tone),
		"Name":       r.Basics.Name,
		"Role":       role,
		"Company":    c.CompanyName,
		"Summary":    r.Basics.Summary,
		"Skills":     skillNames(r.Skills, 5),
		"Experience": recentExperience(r.Work, 2),
	})

	raw, err := d.client.GenerateJSON(ctx, prompt)
	if err != nil {
		d.logf("cover letter generation failed: %v", err)
		return []string{letterFallback}, nil
	}
	if err := validateAgainst(paragraphsSchema, raw); err != nil {
		d.logf("cover letter response rejected: %v", err)
		return []string{letterFallback}, nil
	}

	var paragraphs []string
	if err := json.Unmarshal([]byte(raw), &paragraphs); err != nil {
		d.logf("cover letter response unreadable: %v", err)
		return []string{letterFallback}, nil
	}
	return paragraphs, nil
}

// AnalyzeJobDescription compares resume content against a job
// description and reports present and missing keywords.
func (d *Drafter) AnalyzeJobDescription(ctx context.Context, jobDescription string, r *schema.Resume) (*AtsAnalysis, error) {
	if !d.acquire("ats") {
		return nil, ErrInFlight
	}
	defer d.release("ats")

	prompt := prompts.Format(prompts.MustGet(promptFile, "ats_analysis"), map[string]string{
		"JobDescription": jobDescription,
		"ResumeText":     flattenForAnalysis(r),
	})

	raw, err := d.client.GenerateJSON(ctx, prompt)
	if err == nil {
		if verr := validateAgainst(atsSchema, raw); verr != nil {
			err = verr
		}
	}
	if err != nil {
		d.logf("job description analysis failed: %v", err)
		return &AtsAnalysis{
			MissingKeywords: AtsKeywords{Other: []string{"Error: Could not analyze the job description."}},
			PresentKeywords: []string{},
			Analysis:        analysisFallback,
		}, nil
	}

	var result AtsAnalysis
	if err := json.Unmarshal([]byte(raw), &result); err != nil {
		d.logf("analysis response unreadable: %v", err)
		return &AtsAnalysis{
			MissingKeywords: AtsKeywords{Other: []string{"Error: Could not analyze the job description."}},
			PresentKeywords: []string{},
			Analysis:        analysisFallback,
		}, nil
	}
	return &result, nil
}

func (d *Drafter) logf(format string, args ...any) {
	if d.Verbose {
		log.Printf("[GENAI] "+format, args...)
	}
}

// splitBullets turns bullet-prefixed model output into clean highlight
// lines.
func splitBullets(text string) []string {
	lines := strings.Split(strings.TrimSpace(text), "\n")
	out := make([]string, 0, len(lines))
	for _, line := range lines {
		line = strings.TrimSpace(strings.TrimPrefix(strings.TrimSpace(line), "•"))
		if line != "" {
			out = append(out, line)
		}
	}
	return out
}

func experienceLine(work []schema.Work) string {
	parts := make([]string, 0, len(work))
	for _, w := range work {
		parts = append(parts, fmt.Sprintf("%s at %s", w.Position, w.Name))
	}
	return strings.Join(parts, ", ")
}

func recentExperience(work []schema.Work, n int) string {
	if len(work) > n {
		work = work[:n]
	}
	parts := make([]string, 0, len(work))
	for _, w := range work {
		parts = append(parts, fmt.Sprintf("%s at %s", w.Position, w.Name))
	}
	return strings.Join(parts, "; ")
}

func skillNames(skills []schema.Skill, n int) string {
	if len(skills) > n {
		skills = skills[:n]
	}
	names := make([]string, 0, len(skills))
	for _, s := range skills {
		names = append(names, s.Name)
	}
	return strings.Join(names, ", ")
}

// flattenForAnalysis collapses the resume sections the analysis cares
// about into plain text.
func flattenForAnalysis(r *schema.Resume) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Summary: %s\n", r.Basics.Summary)

	b.WriteString("Experience: ")
	for _, w := range r.Work {
		b.WriteString(strings.Join(w.Highlights, " ") + " ")
	}
	b.WriteString("\nSkills: ")
	b.WriteString(skillNames(r.Skills, len(r.Skills)))
	b.WriteString("\nProjects: ")
	for _, p := range r.Projects {
		b.WriteString(p.Description + " " + strings.Join(p.Highlights, " ") + " ")
	}
	return b.String()
}
