package enrichment

import (
	"errors"
	"fmt"
)

// ErrUnavailable wraps transport-level failures of the generation
// backend (unreachable, timed out, rate limited after retries). Callers
// may retry the whole submission later.
var ErrUnavailable = errors.New("enrichment: generation service unavailable")

// ErrEmptyDraft is returned when the draft has no usable name or
// description to build prompts from.
var ErrEmptyDraft = errors.New("enrichment: draft name and description are required")

// InvalidRatingError means the model answered the classification prompt
// with something outside {High, Moderate, Low}. The raw output is kept
// for diagnosis.
type InvalidRatingError struct {
	Raw string
}

func (e *InvalidRatingError) Error() string {
	return fmt.Sprintf("enrichment: model returned invalid eco rating %q", e.Raw)
}

// InvalidScoreError means the model answered the carbon footprint
// prompt with something that does not parse as a number.
type InvalidScoreError struct {
	Raw string
	Err error
}

func (e *InvalidScoreError) Error() string {
	return fmt.Sprintf("enrichment: model returned invalid carbon footprint score %q", e.Raw)
}

func (e *InvalidScoreError) Unwrap() error { return e.Err }
