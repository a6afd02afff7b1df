package importer

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/resume-studio/internal/schema"
)

func TestFromText_ExtractsNameEmailSummary(t *testing.T) {
	raw := "Jane Doe\n\njane@example.com\nSenior engineer with ten years of experience.\nLed platform migrations."

	d, err := FromText(raw)
	require.NoError(t, err)
	assert.Equal(t, "Jane Doe", d.Name)
	assert.Equal(t, "jane@example.com", d.Email)
	assert.Equal(t, "Senior engineer with ten years of experience.\nLed platform migrations.", d.Summary)
}

func TestFromText_NoEmailLine(t *testing.T) {
	d, err := FromText("Jane Doe\nBuilds systems.")
	require.NoError(t, err)
	assert.Equal(t, "Jane Doe", d.Name)
	assert.Empty(t, d.Email)
	assert.Equal(t, "Builds systems.", d.Summary)
}

func TestFromText_FirstAtLineWins(t *testing.T) {
	d, err := FromText("Jane Doe\njane@example.com\nother@example.com")
	require.NoError(t, err)
	assert.Equal(t, "jane@example.com", d.Email)
	assert.Equal(t, "other@example.com", d.Summary, "later @ lines stay in the summary")
}

func TestFromText_WhitespaceOnlyInput(t *testing.T) {
	_, err := FromText("   \n\n\t\n")
	assert.Error(t, err)
}

func TestFromText_NameLineContainingEmail(t *testing.T) {
	// The first line is both the name and the first @ line. It fills
	// both fields and is excluded from the summary once.
	d, err := FromText("jane@example.com\nBuilds systems.")
	require.NoError(t, err)
	assert.Equal(t, "jane@example.com", d.Name)
	assert.Equal(t, "jane@example.com", d.Email)
	assert.Equal(t, "Builds systems.", d.Summary)
}

func TestFromHTML_FlattensBodyText(t *testing.T) {
	html := `<html><head><style>p { color: red; }</style></head><body>
		<h1>Jane Doe</h1>
		<p>jane@example.com</p>
		<p>Senior engineer.</p>
		<script>console.log("ignore me")</script>
	</body></html>`

	d, err := FromHTML(strings.NewReader(html))
	require.NoError(t, err)
	assert.Equal(t, "Jane Doe", d.Name)
	assert.Equal(t, "jane@example.com", d.Email)
	assert.Contains(t, d.Summary, "Senior engineer.")
	assert.NotContains(t, d.Summary, "console.log")
	assert.NotContains(t, d.Summary, "color: red")
}

func TestApply_OnlyOverwritesFilledFields(t *testing.T) {
	r := &schema.Resume{Basics: schema.Basics{
		Name:    "Old Name",
		Email:   "old@example.com",
		Summary: "Old summary.",
	}}

	Apply(r, &Draft{Name: "Jane Doe", Summary: "New summary."})

	assert.Equal(t, "Jane Doe", r.Basics.Name)
	assert.Equal(t, "old@example.com", r.Basics.Email, "empty draft field must not clobber")
	assert.Equal(t, "New summary.", r.Basics.Summary)
}
