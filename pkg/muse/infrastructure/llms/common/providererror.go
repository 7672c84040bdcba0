package common

import (
	"context"
	"errors"
	"net/http"

	"kgeyst.com/muse/pkg/muse/domain"
)

// NewProviderError classifies a failed completion request. `statusCode` is 0 if the request never got an HTTP
// response (network failures, timeouts).
func NewProviderError(provider string, statusCode int, err error) *domain.ProviderError {
	return &domain.ProviderError{
		Provider:   provider,
		StatusCode: statusCode,
		Retryable:  isRetryable(statusCode, err),
		Err:        err,
	}
}

func isRetryable(statusCode int, err error) bool {
	if errors.Is(err, context.Canceled) {
		return false
	}
	switch {
	case statusCode == 0:
		return true
	case statusCode == http.StatusRequestTimeout, statusCode == http.StatusTooManyRequests:
		return true
	case statusCode >= http.StatusInternalServerError:
		return true
	}
	return false
}

var ErrMissingAPIKey = errors.New("missing API key")
