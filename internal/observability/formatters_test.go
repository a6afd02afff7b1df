package observability

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jonathan/resume-studio/internal/genai"
	"github.com/jonathan/resume-studio/internal/schema"
	"github.com/jonathan/resume-studio/internal/tracker"
)

func TestPrintResume(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	r := &schema.Resume{
		Basics: schema.Basics{Name: "Jane Doe", Label: "Engineer", Email: "jane@example.com"},
		Work: []schema.Work{
			{ID: "w1", Name: "Acme", Position: "Engineer"},
			{ID: "w2", Name: "Beta", Position: "Lead"},
		},
		Skills: []schema.Skill{{ID: "s1", Name: "Go"}},
	}

	p.PrintResume(r)
	output := buf.String()

	assert.Contains(t, output, "RESUME")
	assert.Contains(t, output, "Jane Doe")
	assert.Contains(t, output, "Experience:")
	assert.Contains(t, output, "2 entries")
	assert.NotContains(t, output, "Projects:", "empty sections omitted")
}

func TestPrintResume_Nil(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	p.PrintResume(nil)

	assert.Empty(t, buf.String())
}

func TestPrintLayout(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	l := schema.Layout{
		Sections: map[schema.SectionKey]schema.Section{
			schema.KeyWork:   {ID: schema.KeyWork, Name: "Work Experience", Enabled: true},
			schema.KeySkills: {ID: schema.KeySkills, Name: "Skills", Enabled: false},
		},
		SectionOrder: []schema.SectionKey{schema.KeyWork, schema.KeySkills},
	}

	p.PrintLayout(l, schema.KeyWork)
	output := buf.String()

	assert.Contains(t, output, "SECTION LAYOUT")
	assert.Contains(t, output, "[✓] work")
	assert.Contains(t, output, "[ ] skills")
	assert.Contains(t, output, "(active)")
}

func TestPrintAnalysis(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	a := &genai.AtsAnalysis{
		MissingKeywords: genai.AtsKeywords{
			Technical:  []string{"Kubernetes"},
			SoftSkills: []string{"Mentoring"},
		},
		PresentKeywords: []string{"Go", "PostgreSQL"},
		Analysis:        "The resume covers the core stack well.",
	}

	p.PrintAnalysis(a)
	output := buf.String()

	assert.Contains(t, output, "JOB DESCRIPTION ANALYSIS")
	assert.Contains(t, output, "✓ Go")
	assert.Contains(t, output, "⚠ Kubernetes")
	assert.Contains(t, output, "⚠ Mentoring")
	assert.Contains(t, output, "covers the core stack")
}

func TestPrintAnalysis_Nil(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	p.PrintAnalysis(nil)

	assert.Empty(t, buf.String())
}

func TestPrintJobs(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	jobs := []tracker.Job{
		{ID: "1", Company: "Acme", Role: "Engineer", Status: tracker.StatusApplied, DateApplied: "2026-08-01"},
		{ID: "2", Company: "Beta", Role: "Lead", Status: tracker.StatusWishlist},
	}

	p.PrintJobs(jobs)
	output := buf.String()

	assert.Contains(t, output, "JOB TRACKER")
	assert.Contains(t, output, "Engineer at Acme")
	assert.Contains(t, output, "applied 2026-08-01")
	assert.Contains(t, output, "Wishlist")
}

func TestPrintJobs_Empty(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	p.PrintJobs(nil)

	assert.Contains(t, buf.String(), "No applications yet.")
}

func TestPrintBox_LongLines(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	r := &schema.Resume{
		Basics: schema.Basics{
			Name:  "A Very Long Name That Should Be Truncated To Fit The Box Width",
			Label: "Senior Staff Principal Distinguished Engineer Level 99",
		},
	}

	p.PrintResume(r)
	output := buf.String()

	// Should contain box characters
	assert.True(t, strings.Contains(output, "┌"))
	assert.True(t, strings.Contains(output, "└"))
	assert.True(t, strings.Contains(output, "│"))
}
