package wizard

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrSessionNotFound    = errors.New("wizard session not found")
	ErrJobNotFound        = errors.New("job posting not found")
	ErrEncodingInProgress = errors.New("resume encoding in progress")
	ErrResumeRequired     = errors.New("resume attachment required")
	ErrSubmitInFlight     = errors.New("submission already in flight")
	ErrNotAtReview        = errors.New("submission only allowed from review step")
	ErrAlreadyAtReview    = errors.New("already at final step")
)

const (
	ErrorCodeValidation = "VALIDATION_ERROR"
	ErrorCodeBusy       = "BUSY"
	ErrorCodeSubmission = "SUBMISSION_FAILED"
)

// FieldError reports one invalid field on a step.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// ValidationError carries the full set of field errors for a rejected
// step transition. The wizard stays on the current step.
type ValidationError struct {
	Fields []FieldError
}

func (e *ValidationError) Error() string {
	if len(e.Fields) == 0 {
		return "validation failed"
	}
	parts := make([]string, 0, len(e.Fields))
	for _, f := range e.Fields {
		parts = append(parts, f.Field)
	}
	return fmt.Sprintf("validation failed: %s", strings.Join(parts, ", "))
}

// SubmissionError wraps an upstream submission failure with the text
// shown to the applicant.
type SubmissionError struct {
	Message string
	Err     error
}

func (e *SubmissionError) Error() string {
	return e.Message
}

func (e *SubmissionError) Unwrap() error {
	return e.Err
}
