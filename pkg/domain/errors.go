package domain

import "fmt"

// ValidationError reports a request the caller can fix. Its message is
// returned to the caller verbatim with a 400-class status.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

// ProcessingError reports an internal failure while transforming a
// message. Reason is safe to expose to callers; Err carries the
// internal detail and is only written to logs.
type ProcessingError struct {
	Reason string
	Err    error
}

func (e *ProcessingError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Reason, e.Err)
	}
	return e.Reason
}

func (e *ProcessingError) Unwrap() error {
	return e.Err
}
