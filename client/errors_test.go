package client

import (
	"errors"
	"net/http"
	"testing"
)

func TestNewAPIError(t *testing.T) {
	tests := []struct {
		name       string
		status     int
		body       string
		wantAuth   bool
		wantDetail string
	}{
		{
			name:       "401 with detail is an auth error",
			status:     http.StatusUnauthorized,
			body:       `{"detail": "invalid API key"}`,
			wantAuth:   true,
			wantDetail: "invalid API key",
		},
		{
			name:       "403 is an auth error",
			status:     http.StatusForbidden,
			body:       `{"detail": "key revoked"}`,
			wantAuth:   true,
			wantDetail: "key revoked",
		},
		{
			name:       "400 keeps the detail field",
			status:     http.StatusBadRequest,
			body:       `{"detail": "insufficient funds"}`,
			wantDetail: "insufficient funds",
		},
		{
			name:       "non-json body is kept verbatim",
			status:     http.StatusInternalServerError,
			body:       "upstream exploded",
			wantDetail: "upstream exploded",
		},
		{
			name:       "empty body falls back to the status text",
			status:     http.StatusBadGateway,
			body:       "",
			wantDetail: "Bad Gateway",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := newAPIError(tt.status, []byte(tt.body))

			var authErr *AuthError
			if got := errors.As(err, &authErr); got != tt.wantAuth {
				t.Fatalf("auth classification: got %v, want %v (err: %v)", got, tt.wantAuth, err)
			}

			var detail string
			var status int
			if tt.wantAuth {
				detail, status = authErr.Detail, authErr.StatusCode
			} else {
				var apiErr *APIError
				if !errors.As(err, &apiErr) {
					t.Fatalf("expected *APIError, got %v", err)
				}
				detail, status = apiErr.Detail, apiErr.StatusCode
			}
			if status != tt.status {
				t.Errorf("status: got %d, want %d", status, tt.status)
			}
			if detail != tt.wantDetail {
				t.Errorf("detail: got %q, want %q", detail, tt.wantDetail)
			}
		})
	}
}

func TestErrorMessages(t *testing.T) {
	tests := []struct {
		err  error
		want string
	}{
		{&APIError{StatusCode: 404, Detail: "no such currency"}, "api error 404: no such currency"},
		{&ValidationError{Field: "page", Reason: "must be >= 1"}, "invalid page: must be >= 1"},
		{&NetworkError{Err: errors.New("connection refused")}, "network error: connection refused"},
	}
	for _, tt := range tests {
		if got := tt.err.Error(); got != tt.want {
			t.Errorf("Error(): got %q, want %q", got, tt.want)
		}
	}
}
