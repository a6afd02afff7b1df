package tracker

import "fmt"

// UnknownStatusError reports a status string outside the enum.
type UnknownStatusError struct {
	Value string
}

func (e *UnknownStatusError) Error() string {
	return fmt.Sprintf("tracker: unknown application status %q", e.Value)
}

// TransitionError reports a status move the pipeline does not allow.
type TransitionError struct {
	From Status
	To   Status
}

func (e *TransitionError) Error() string {
	return fmt.Sprintf("tracker: cannot move application from %s to %s", e.From, e.To)
}

// JobNotFoundError reports an id with no matching job.
type JobNotFoundError struct {
	ID string
}

func (e *JobNotFoundError) Error() string {
	return fmt.Sprintf("tracker: no job with id %s", e.ID)
}

// InvalidJobError wraps field validation failures.
type InvalidJobError struct {
	Cause error
}

func (e *InvalidJobError) Error() string {
	return fmt.Sprintf("tracker: invalid job: %v", e.Cause)
}

func (e *InvalidJobError) Unwrap() error { return e.Cause }
