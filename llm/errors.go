package llm

import "fmt"

type ErrorKind string

const (
	ErrKindModelNotFound ErrorKind = "model_not_found"
	ErrKindRateLimited   ErrorKind = "rate_limited"
	ErrKindBackend       ErrorKind = "backend_error"
)

// GenerationError describes one failed backend call. The kind only feeds
// logging and user messaging; callers treat every kind the same way.
type GenerationError struct {
	Model      string
	Kind       ErrorKind
	StatusCode int
	Message    string
}

func (e *GenerationError) Error() string {
	if e.StatusCode != 0 {
		return fmt.Sprintf("model %s: %s (%s, status %d)", e.Model, e.Message, e.Kind, e.StatusCode)
	}
	return fmt.Sprintf("model %s: %s (%s)", e.Model, e.Message, e.Kind)
}

func classifyStatus(code int) (ErrorKind, string) {
	switch code {
	case 404:
		return ErrKindModelNotFound, "model unavailable"
	case 429:
		return ErrKindRateLimited, "rate limited"
	default:
		return ErrKindBackend, "backend error"
	}
}
