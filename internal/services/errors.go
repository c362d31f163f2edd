package services

import (
	"errors"
	"fmt"
)

// Evaluate-fit preconditions. The HTTP layer collapses both into the same
// user-facing warning; tests and logs keep them apart.
var (
	ErrMissingCV             = errors.New("cv text is not present in the session")
	ErrMissingJobDescription = errors.New("job description is not present in the session")
	ErrSessionNotFound       = errors.New("session not found")
)

// DocumentParseError reports a PDF that could not be read at all. Individual
// unreadable pages do not produce this error.
type DocumentParseError struct {
	Cause error
}

func (e *DocumentParseError) Error() string {
	return fmt.Sprintf("failed to parse document: %v", e.Cause)
}

func (e *DocumentParseError) Unwrap() error { return e.Cause }

// ScrapeError reports a failed job-description fetch: network failure,
// timeout, non-OK status or a non-text response.
type ScrapeError struct {
	URL   string
	Cause error
}

func (e *ScrapeError) Error() string {
	return fmt.Sprintf("failed to scrape %s: %v", e.URL, e.Cause)
}

func (e *ScrapeError) Unwrap() error { return e.Cause }

// MissingPlaceholderError reports a prompt template rendered without one of
// its required placeholder values.
type MissingPlaceholderError struct {
	Template    string
	Placeholder string
}

func (e *MissingPlaceholderError) Error() string {
	return fmt.Sprintf("template %q is missing value for placeholder %q", e.Template, e.Placeholder)
}

// InferenceError reports a failed call to the external completion endpoint.
type InferenceError struct {
	Cause error
}

func (e *InferenceError) Error() string {
	return fmt.Sprintf("inference request failed: %v", e.Cause)
}

func (e *InferenceError) Unwrap() error { return e.Cause }
