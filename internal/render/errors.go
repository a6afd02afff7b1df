package render

import (
	"fmt"

	"github.com/jonathan/resume-studio/internal/schema"
)

// SkinError represents a template parse or execution failure inside one
// skin.
type SkinError struct {
	Skin    schema.Template
	Message string
	Cause   error
}

func (e *SkinError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("skin %s: %s: %v", e.Skin, e.Message, e.Cause)
	}
	return fmt.Sprintf("skin %s: %s", e.Skin, e.Message)
}

func (e *SkinError) Unwrap() error { return e.Cause }
