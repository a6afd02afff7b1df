package schema

import "fmt"

// UnknownSectionError is returned when a string does not name a section key.
type UnknownSectionError struct {
	Key string
}

func (e *UnknownSectionError) Error() string {
	return fmt.Sprintf("unknown section %q", e.Key)
}

// UnknownTemplateError is returned when a string does not name a skin.
type UnknownTemplateError struct {
	Name string
}

func (e *UnknownTemplateError) Error() string {
	return fmt.Sprintf("unknown template %q", e.Name)
}
