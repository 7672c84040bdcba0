package domain

import (
	"errors"
	"fmt"
)

// ProviderError a network/auth/rate-limit failure of the completion provider.
type ProviderError struct {
	Provider string
	// StatusCode the HTTP status, 0 if the request never got a response
	StatusCode int
	// Retryable whether the same request may succeed later (rate limits, server errors, network errors)
	Retryable bool
	Err       error
}

func (e *ProviderError) Error() string {
	if e.StatusCode != 0 {
		return fmt.Sprintf("%s provider error (status %d): %v", e.Provider, e.StatusCode, e.Err)
	}
	return fmt.Sprintf("%s provider error: %v", e.Provider, e.Err)
}

func (e *ProviderError) Unwrap() error {
	return e.Err
}

// MalformedResponseError the provider replied, but not in the expected shape.
type MalformedResponseError struct {
	Reason   string
	Response string
}

func (e *MalformedResponseError) Error() string {
	return "malformed response: " + e.Reason
}

func NewMalformedResponseError(reason, response string) *MalformedResponseError {
	return &MalformedResponseError{Reason: reason, Response: response}
}

func IsProviderError(err error) bool {
	var providerError *ProviderError
	return errors.As(err, &providerError)
}

func IsMalformedResponseError(err error) bool {
	var malformedResponseError *MalformedResponseError
	return errors.As(err, &malformedResponseError)
}

// IsRetryable tells whether repeating the same completion request makes sense.
func IsRetryable(err error) bool {
	var providerError *ProviderError
	if errors.As(err, &providerError) {
		return providerError.Retryable
	}
	return false
}
