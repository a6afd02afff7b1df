package genai

import (
	"fmt"
	"strings"

	"github.com/xeipuuv/gojsonschema"
)

// paragraphsSchema constrains a cover letter body response to a
// non-empty array of strings.
const paragraphsSchema = `{
  "type": "array",
  "items": { "type": "string" },
  "minItems": 1
}`

// atsSchema constrains a job description analysis response.
const atsSchema = `{
  "type": "object",
  "required": ["missingKeywords", "presentKeywords", "analysis"],
  "properties": {
    "missingKeywords": {
      "type": "object",
      "properties": {
        "technical": { "type": "array", "items": { "type": "string" } },
        "softSkills": { "type": "array", "items": { "type": "string" } },
        "other": { "type": "array", "items": { "type": "string" } }
      }
    },
    "presentKeywords": { "type": "array", "items": { "type": "string" } },
    "analysis": { "type": "string" }
  }
}`

// validateAgainst checks a raw JSON document against a schema and
// returns a descriptive error listing every violation.
func validateAgainst(schema, document string) error {
	result, err := gojsonschema.Validate(
		gojsonschema.NewStringLoader(schema),
		gojsonschema.NewStringLoader(document),
	)
	if err != nil {
		return fmt.Errorf("schema validation failed: %w", err)
	}

	if !result.Valid() {
		issues := make([]string, 0, len(result.Errors()))
		for _, desc := range result.Errors() {
			issues = append(issues, desc.String())
		}
		return fmt.Errorf("response does not match expected shape: %s", strings.Join(issues, "; "))
	}

	return nil
}
