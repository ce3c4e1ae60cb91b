package providers

import (
	"context"
	"errors"
	"fmt"
)

// Generator is the model-inference abstraction: one prompt in, one
// generated text out, synchronously.
type Generator interface {
	Generate(ctx context.Context, prompt string) (string, error)
	Name() string
}

// InferenceError reports a failed call to the inference endpoint:
// connection failure, timeout, non-2xx status, or an unparseable body.
type InferenceError struct {
	StatusCode int
	Body       string
	Err        error
}

func (e *InferenceError) Error() string {
	if e.StatusCode != 0 {
		return fmt.Sprintf("inference endpoint returned status %d: %s", e.StatusCode, e.Body)
	}
	return fmt.Sprintf("inference request failed: %v", e.Err)
}

func (e *InferenceError) Unwrap() error { return e.Err }

// IsInferenceError reports whether err (or anything it wraps) is a *InferenceError.
func IsInferenceError(err error) bool {
	var ie *InferenceError
	return errors.As(err, &ie)
}
