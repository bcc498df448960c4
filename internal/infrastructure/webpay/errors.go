package webpay

import (
	"errors"
	"fmt"
)

// APIError is a non-2xx answer from the Webpay REST API.
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("webpay error: %s (status: %d)", e.Message, e.StatusCode)
}

func (e *APIError) IsRetryable() bool {
	return e.StatusCode >= 500
}

func IsAPIError(err error) (*APIError, bool) {
	var apiErr *APIError
	ok := errors.As(err, &apiErr)
	return apiErr, ok
}
