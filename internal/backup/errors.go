package backup

import "fmt"

// FormatError reports a backup file that cannot be restored.
type FormatError struct {
	Message string
	Cause   error
}

func (e *FormatError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("backup: %s: %v", e.Message, e.Cause)
	}
	return fmt.Sprintf("backup: %s", e.Message)
}

func (e *FormatError) Unwrap() error { return e.Cause }
