package editor

import (
	"errors"
	"fmt"

	"github.com/jonathan/resume-studio/internal/schema"
)

// ErrLastParagraph is returned when removing a cover letter paragraph
// would leave the body empty.
var ErrLastParagraph = errors.New("cover letter body must keep at least one paragraph")

// NotFoundError is returned when no item in a collection carries the
// requested id.
type NotFoundError struct {
	ID string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("no item with id %q", e.ID)
}

// UnknownFieldError is returned for a field name the collection does not
// define.
type UnknownFieldError struct {
	Collection schema.SectionKey
	Field      string
}

func (e *UnknownFieldError) Error() string {
	return fmt.Sprintf("collection %q has no field %q", e.Collection, e.Field)
}

// FieldValueError is returned when a raw value cannot be converted to
// the field's type.
type FieldValueError struct {
	Field string
	Value string
	Cause error
}

func (e *FieldValueError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("invalid value %q for field %q: %v", e.Value, e.Field, e.Cause)
	}
	return fmt.Sprintf("invalid value %q for field %q", e.Value, e.Field)
}

func (e *FieldValueError) Unwrap() error { return e.Cause }

// ParagraphIndexError is returned for an out-of-range paragraph index.
type ParagraphIndexError struct {
	Index  int
	Length int
}

func (e *ParagraphIndexError) Error() string {
	return fmt.Sprintf("paragraph index %d out of range for body of %d", e.Index, e.Length)
}
