package store

import "fmt"

// OpenError represents a failure to open or watch a store directory.
type OpenError struct {
	Dir   string
	Cause error
}

func (e *OpenError) Error() string {
	return fmt.Sprintf("store error: cannot open %s: %v", e.Dir, e.Cause)
}

func (e *OpenError) Unwrap() error { return e.Cause }

// ReadError represents a failure reading a storage key.
type ReadError struct {
	Key   string
	Cause error
}

func (e *ReadError) Error() string {
	return fmt.Sprintf("store error: read %s: %v", e.Key, e.Cause)
}

func (e *ReadError) Unwrap() error { return e.Cause }

// WriteError represents a failure writing a storage key.
type WriteError struct {
	Key   string
	Cause error
}

func (e *WriteError) Error() string {
	return fmt.Sprintf("store error: write %s: %v", e.Key, e.Cause)
}

func (e *WriteError) Unwrap() error { return e.Cause }
