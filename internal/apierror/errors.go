// Package apierror holds the error taxonomy shared by every client of the Curiona API.
package apierror

import (
	"errors"
	"fmt"
	"net/http"
)

// AuthError signals missing, invalid or rejected credentials. Callers should
// prompt the user to authenticate again.
type AuthError struct {
	Status  int    `json:"-"`
	Code    string `json:"code"`
	Message string `json:"message"`
}

func (e *AuthError) Error() string {
	return e.Message
}

// NetworkError wraps transport failures and timeouts.
type NetworkError struct {
	Op      string
	Err     error
	Timeout bool
}

func (e *NetworkError) Error() string {
	if e.Timeout {
		return fmt.Sprintf("%s: request timed out", e.Op)
	}
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

func (e *NetworkError) Unwrap() error {
	return e.Err
}

// APIError is a non-2xx response from the remote API that is not an auth failure.
type APIError struct {
	Status  int    `json:"-"`
	Code    string `json:"code"`
	Message string `json:"message"`
}

func (e *APIError) Error() string {
	return e.Message
}

var (
	ErrSessionExpired = &AuthError{
		Status:  http.StatusUnauthorized,
		Code:    "session_expired",
		Message: "Your session has expired. Please sign in again.",
	}

	ErrInvalidResponse = &APIError{
		Status:  http.StatusBadGateway,
		Code:    "invalid_response",
		Message: "Unexpected response from the Curiona API",
	}
)

func IsAuth(err error) bool {
	var authErr *AuthError
	return errors.As(err, &authErr)
}

func IsNetwork(err error) bool {
	var netErr *NetworkError
	return errors.As(err, &netErr)
}

// Message returns the text shown to a person for err.
func Message(err error) string {
	if err == nil {
		return ""
	}

	var authErr *AuthError
	if errors.As(err, &authErr) {
		return authErr.Message
	}

	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr.Message
	}

	var netErr *NetworkError
	if errors.As(err, &netErr) {
		if netErr.Timeout {
			return "The Curiona API did not respond in time"
		}
		return "Unable to reach the Curiona API"
	}

	return err.Error()
}

// Status maps err to the status code a handler should answer with.
func Status(err error) int {
	var authErr *AuthError
	if errors.As(err, &authErr) {
		return http.StatusUnauthorized
	}

	var apiErr *APIError
	if errors.As(err, &apiErr) && apiErr.Status != 0 {
		return apiErr.Status
	}

	var netErr *NetworkError
	if errors.As(err, &netErr) {
		if netErr.Timeout {
			return http.StatusGatewayTimeout
		}
		return http.StatusBadGateway
	}

	return http.StatusInternalServerError
}

// Code returns the machine readable code for err.
func Code(err error) string {
	var authErr *AuthError
	if errors.As(err, &authErr) {
		if authErr.Code != "" {
			return authErr.Code
		}
		return "unauthorized"
	}

	var apiErr *APIError
	if errors.As(err, &apiErr) {
		if apiErr.Code != "" {
			return apiErr.Code
		}
		return "api_error"
	}

	if IsNetwork(err) {
		return "network_error"
	}

	return "internal_error"
}
