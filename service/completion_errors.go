package service

import "fmt"

// Provider error kinds, logged distinctly for observability.
const (
	KindRateLimit  = "rate_limit"
	KindAuth       = "auth"
	KindBadRequest = "bad_request"
	KindProvider   = "provider"
)

// ProviderError wraps a recoverable completion-provider failure. The
// caller treats it as "no answer"; the kind only changes what gets logged.
type ProviderError struct {
	Kind string
	Err  error
}

func (e *ProviderError) Error() string {
	return fmt.Sprintf("provider error (%s): %v", e.Kind, e.Err)
}

func (e *ProviderError) Unwrap() error {
	return e.Err
}
