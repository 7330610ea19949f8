package services

import "fmt"

// ExtractionError reports that the uploaded PDF could not be turned into
// text. The pipeline must stop before any remote call when it occurs.
type ExtractionError struct {
	Reason string
	Err    error
}

func (e *ExtractionError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("pdf extraction failed: %s: %v", e.Reason, e.Err)
	}
	return fmt.Sprintf("pdf extraction failed: %s", e.Reason)
}

func (e *ExtractionError) Unwrap() error {
	return e.Err
}

// CompletionError reports a failed exchange with the remote completion
// endpoint: a non-2xx status, a timeout, or a body that cannot be read as
// the expected reply shape. Body is truncated to a displayable length.
type CompletionError struct {
	StatusCode int
	Body       string
	Err        error
}

func (e *CompletionError) Error() string {
	if e.StatusCode != 0 {
		return fmt.Sprintf("completion request failed with status %d: %s", e.StatusCode, e.Body)
	}
	return fmt.Sprintf("completion request failed: %v", e.Err)
}

func (e *CompletionError) Unwrap() error {
	return e.Err
}
