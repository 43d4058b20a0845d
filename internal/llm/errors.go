package llm

import "fmt"

// GenerationError indicates the completion call failed or returned no
// usable content. Callers surface a generic message to clients; the
// underlying cause is for logs only.
type GenerationError struct {
	Message string
	Cause   error
}

func (e *GenerationError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Cause)
	}
	return e.Message
}

// Unwrap returns the underlying cause
func (e *GenerationError) Unwrap() error {
	return e.Cause
}
