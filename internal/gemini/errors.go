package gemini

import (
	"errors"
	"fmt"
)

var (
	// ErrNoCandidates is returned when a successful response carries no candidates.
	ErrNoCandidates = errors.New("gemini response has no candidates")
	// ErrMalformedCandidate is returned when the first candidate has no content parts.
	ErrMalformedCandidate = errors.New("gemini candidate has no content parts")
)

// APIError is returned when the endpoint answers with a non-2xx status.
type APIError struct {
	StatusCode int
	Body       string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("gemini API returned status %d", e.StatusCode)
}
