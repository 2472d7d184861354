package agent

import (
	"errors"
	"fmt"
)

// ErrInvalidInput rejects empty or whitespace-only questions before any
// network call is made.
var ErrInvalidInput = errors.New("question cannot be empty")

// SynthesisError is the pipeline's only fatal failure: the final LLM call
// produced no answer.
type SynthesisError struct {
	Err error
}

func (e *SynthesisError) Error() string {
	return fmt.Sprintf("answer synthesis failed: %v", e.Err)
}

func (e *SynthesisError) Unwrap() error { return e.Err }
