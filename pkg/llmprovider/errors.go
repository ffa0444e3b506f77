package llmprovider

import (
	"errors"
	"fmt"
)

var (
	// ErrUnavailable indicates the provider could not be reached or
	// returned no content. Transient: worth one retry.
	ErrUnavailable = errors.New("provider unavailable")

	// ErrUpstream indicates the provider was reached but rejected the
	// request (quota, bad request). Never retried.
	ErrUpstream = errors.New("provider rejected request")

	// ErrAllProvidersFailed indicates all providers failed to generate content
	ErrAllProvidersFailed = errors.New("all providers failed")

	// ErrNoProvidersConfigured indicates no providers are enabled
	ErrNoProvidersConfigured = errors.New("no providers configured")
)

// ProviderError wraps provider-specific errors
type ProviderError struct {
	Provider string
	Err      error
}

func (e *ProviderError) Error() string {
	return fmt.Sprintf("provider %s: %v", e.Provider, e.Err)
}

func (e *ProviderError) Unwrap() error {
	return e.Err
}
