package importer

import "fmt"

// ParseError wraps a failure extracting a draft from input.
type ParseError struct {
	Message string
	Cause   error
}

func (e *ParseError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("import: %s: %v", e.Message, e.Cause)
	}
	return fmt.Sprintf("import: %s", e.Message)
}

func (e *ParseError) Unwrap() error { return e.Cause }
