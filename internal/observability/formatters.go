// Package observability provides formatted output utilities for verbose CLI mode.
package observability

import (
	"fmt"
	"io"
	"strings"

	"github.com/jonathan/resume-studio/internal/genai"
	"github.com/jonathan/resume-studio/internal/render"
	"github.com/jonathan/resume-studio/internal/schema"
	"github.com/jonathan/resume-studio/internal/tracker"
)

const (
	// boxWidth is the default width for formatted output boxes
	boxWidth = 60
	// maxItemsToShow is the default number of items to display in lists
	maxItemsToShow = 5
)

// Printer handles formatted output for verbose mode
type Printer struct {
	out io.Writer
}

// NewPrinter creates a new Printer that writes to the given writer
func NewPrinter(out io.Writer) *Printer {
	return &Printer{out: out}
}

// printBox prints a formatted box with a title and content
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) printBox(title string, content string) {
	border := strings.Repeat("─", boxWidth-2)
	fmt.Fprintf(p.out, "┌%s┐\n", border)
	fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, title)
	fmt.Fprintf(p.out, "├%s┤\n", border)

	lines := strings.Split(content, "\n")
	for _, line := range lines {
		// Truncate long lines
		if len(line) > boxWidth-4 {
			line = line[:boxWidth-7] + "..."
		}
		fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, line)
	}

	fmt.Fprintf(p.out, "└%s┘\n", border)
}

// PrintResume outputs a human-readable summary of the stored resume.
func (p *Printer) PrintResume(r *schema.Resume) {
	if r == nil {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Name:   %s\n", r.Basics.Name))
	sb.WriteString(fmt.Sprintf("Label:  %s\n", r.Basics.Label))
	sb.WriteString(fmt.Sprintf("Email:  %s\n", r.Basics.Email))
	sb.WriteString("\n")

	for _, key := range schema.AllSectionKeys {
		if render.SectionEmpty(r, key) {
			continue
		}
		sb.WriteString(fmt.Sprintf("%-14s %d entries\n", render.SectionTitle(key)+":", sectionCount(r, key)))
	}

	p.printBox("RESUME", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintLayout outputs the section order with enabled markers.
func (p *Printer) PrintLayout(l schema.Layout, active schema.SectionKey) {
	var sb strings.Builder
	for i, key := range l.SectionOrder {
		marker := " "
		if sec, ok := l.Sections[key]; ok && sec.Enabled {
			marker = "✓"
		}
		line := fmt.Sprintf("%2d. [%s] %s", i+1, marker, key)
		if key == active {
			line += "  (active)"
		}
		sb.WriteString(line + "\n")
	}
	p.printBox("SECTION LAYOUT", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintAnalysis outputs a job description analysis.
func (p *Printer) PrintAnalysis(a *genai.AtsAnalysis) {
	if a == nil {
		return
	}

	var sb strings.Builder

	if len(a.PresentKeywords) > 0 {
		sb.WriteString("Present:\n")
		count := min(len(a.PresentKeywords), maxItemsToShow)
		for i := 0; i < count; i++ {
			sb.WriteString(fmt.Sprintf("  ✓ %s\n", a.PresentKeywords[i]))
		}
		if len(a.PresentKeywords) > maxItemsToShow {
			sb.WriteString(fmt.Sprintf("  ... and %d more\n", len(a.PresentKeywords)-maxItemsToShow))
		}
		sb.WriteString("\n")
	}

	missing := map[string][]string{
		"Technical":   a.MissingKeywords.Technical,
		"Soft skills": a.MissingKeywords.SoftSkills,
		"Other":       a.MissingKeywords.Other,
	}
	for _, group := range []string{"Technical", "Soft skills", "Other"} {
		items := missing[group]
		if len(items) == 0 {
			continue
		}
		sb.WriteString(fmt.Sprintf("Missing %s:\n", strings.ToLower(group)))
		count := min(len(items), 3)
		for i := 0; i < count; i++ {
			sb.WriteString(fmt.Sprintf("  ⚠ %s\n", items[i]))
		}
		if len(items) > 3 {
			sb.WriteString(fmt.Sprintf("  ... and %d more\n", len(items)-3))
		}
	}
	sb.WriteString("\n")

	analysis := a.Analysis
	if len(analysis) > 150 {
		analysis = analysis[:147] + "..."
	}
	sb.WriteString(analysis)

	p.printBox("JOB DESCRIPTION ANALYSIS", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintJobs outputs the tracked applications.
func (p *Printer) PrintJobs(jobs []tracker.Job) {
	if len(jobs) == 0 {
		p.printBox("JOB TRACKER", "No applications yet.")
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Tracking %d applications:\n\n", len(jobs)))

	count := min(len(jobs), maxItemsToShow)
	for i := 0; i < count; i++ {
		job := jobs[i]
		sb.WriteString(fmt.Sprintf("%s at %s\n", job.Role, job.Company))
		line := fmt.Sprintf("  %s", job.Status)
		if job.DateApplied != "" {
			line += fmt.Sprintf("  applied %s", job.DateApplied)
		}
		sb.WriteString(line + "\n")
		if i < count-1 {
			sb.WriteString("\n")
		}
	}

	if len(jobs) > maxItemsToShow {
		sb.WriteString(fmt.Sprintf("\n... and %d more applications", len(jobs)-maxItemsToShow))
	}

	p.printBox("JOB TRACKER", sb.String())
}

// PrintExportPaths outputs the artifacts written by an export run.
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) PrintExportPaths(paths []string) {
	var sb strings.Builder
	for _, path := range paths {
		sb.WriteString(fmt.Sprintf("• %s\n", path))
	}
	p.printBox("EXPORTED ARTIFACTS", strings.TrimSuffix(sb.String(), "\n"))
}

func sectionCount(r *schema.Resume, key schema.SectionKey) int {
	switch key {
	case schema.KeyWork:
		return len(r.Work)
	case schema.KeyVolunteer:
		return len(r.Volunteer)
	case schema.KeyEducation:
		return len(r.Education)
	case schema.KeyAwards:
		return len(r.Awards)
	case schema.KeyCertificates:
		return len(r.Certificates)
	case schema.KeyPublications:
		return len(r.Publications)
	case schema.KeySkills:
		return len(r.Skills)
	case schema.KeyLanguages:
		return len(r.Languages)
	case schema.KeyInterests:
		return len(r.Interests)
	case schema.KeyReferences:
		return len(r.References)
	case schema.KeyProjects:
		return len(r.Projects)
	}
	return 0
}
