package layout

import (
	"fmt"

	"github.com/jonathan/resume-studio/internal/schema"
)

// DisabledSectionError is returned when the active-edit pointer is moved
// to a section that is not currently enabled.
type DisabledSectionError struct {
	Key schema.SectionKey
}

func (e *DisabledSectionError) Error() string {
	return fmt.Sprintf("section %q is disabled", e.Key)
}

// IndexError is returned for an out-of-range reorder index.
type IndexError struct {
	Index  int
	Length int
}

func (e *IndexError) Error() string {
	return fmt.Sprintf("index %d out of range for list of %d", e.Index, e.Length)
}
