package client

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
)

// APIError is returned when the server answers with a non-2xx status. Detail
// carries the "detail" field of the error body when the server provided one,
// otherwise the raw body text.
type APIError struct {
	StatusCode int
	Detail     string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("api error %d: %s", e.StatusCode, e.Detail)
}

// AuthError is the APIError specialization for rejected credentials
// (HTTP 401 and 403).
type AuthError struct {
	APIError
}

// ValidationError reports invalid caller input. It is returned before any
// network activity.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}

// NetworkError wraps a transport-level failure, a timeout, or a cancelled
// context.
type NetworkError struct {
	Err error
}

func (e *NetworkError) Error() string { return "network error: " + e.Err.Error() }
func (e *NetworkError) Unwrap() error { return e.Err }

// ProtocolError reports a 2xx response whose body does not decode into the
// expected shape. Body keeps the offending payload for diagnostics.
type ProtocolError struct {
	Err  error
	Body []byte
}

func (e *ProtocolError) Error() string {
	return fmt.Sprintf("protocol error: %v (body: %s)", e.Err, e.Body)
}

func (e *ProtocolError) Unwrap() error { return e.Err }

// newAPIError classifies a non-2xx response. The server puts error messages
// in a {"detail": "..."} body; anything else is kept verbatim.
func newAPIError(status int, body []byte) error {
	detail := strings.TrimSpace(string(body))
	var payload struct {
		Detail string `json:"detail"`
	}
	if err := json.Unmarshal(body, &payload); err == nil && payload.Detail != "" {
		detail = payload.Detail
	}
	if detail == "" {
		detail = http.StatusText(status)
	}
	apiErr := APIError{StatusCode: status, Detail: detail}
	if status == http.StatusUnauthorized || status == http.StatusForbidden {
		return &AuthError{APIError: apiErr}
	}
	return &apiErr
}
