package export

import "fmt"

// CaptureError wraps failures in the browser capture or PDF assembly
// pipeline.
type CaptureError struct {
	Message string
	Cause   error
}

func (e *CaptureError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("export: %s: %v", e.Message, e.Cause)
	}
	return fmt.Sprintf("export: %s", e.Message)
}

func (e *CaptureError) Unwrap() error { return e.Cause }

// WriteError wraps a failure writing an export artifact to disk.
type WriteError struct {
	Path  string
	Cause error
}

func (e *WriteError) Error() string {
	return fmt.Sprintf("export: failed to write %s: %v", e.Path, e.Cause)
}

func (e *WriteError) Unwrap() error { return e.Cause }
