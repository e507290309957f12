package client

import (
	"errors"
	"fmt"
	"io"
	"strings"
	"testing"
)

func TestNetworkError_Error(t *testing.T) {
	tests := []struct {
		name     string
		err      *NetworkError
		contains []string
	}{
		{
			name:     "status without cause",
			err:      &NetworkError{Class: ErrorClassServer, StatusCode: 503, Message: "503 Service Unavailable"},
			contains: []string{"server", "503", "Service Unavailable"},
		},
		{
			name:     "transport failure",
			err:      &NetworkError{Class: ErrorClassNetwork, Message: "request failed", Err: io.ErrUnexpectedEOF},
			contains: []string{"network", "request failed", "unexpected EOF"},
		},
		{
			name:     "decode with status",
			err:      &NetworkError{Class: ErrorClassDecode, StatusCode: 200, Message: "decode response body", Err: errors.New("invalid character")},
			contains: []string{"decode", "status 200", "invalid character"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			msg := tt.err.Error()
			for _, want := range tt.contains {
				if !strings.Contains(msg, want) {
					t.Errorf("Error() = %q, missing %q", msg, want)
				}
			}
		})
	}
}

func TestNetworkError_Unwrap(t *testing.T) {
	cause := io.EOF
	err := fmt.Errorf("search: %w", &NetworkError{Class: ErrorClassNetwork, Err: cause})

	if !errors.Is(err, io.EOF) {
		t.Error("errors.Is should find the wrapped cause")
	}
	if !IsNetworkError(err) {
		t.Error("IsNetworkError should see through fmt wrapping")
	}
}

func TestAsNetworkError(t *testing.T) {
	if AsNetworkError(nil, "x") != nil {
		t.Error("nil error should stay nil")
	}

	original := &NetworkError{Class: ErrorClassServer, StatusCode: 500}
	if got := AsNetworkError(fmt.Errorf("wrap: %w", original), "x"); got != original {
		t.Errorf("AsNetworkError returned %v, want the original", got)
	}

	plain := errors.New("boom")
	got := AsNetworkError(plain, "hydrate")
	if got.Class != ErrorClassNetwork {
		t.Errorf("Class = %q, want network", got.Class)
	}
	if !errors.Is(got, plain) {
		t.Error("wrapped error should unwrap to the plain cause")
	}
}

func TestShouldRetry(t *testing.T) {
	tests := []struct {
		class ErrorClass
		want  bool
	}{
		{ErrorClassClient, false},
		{ErrorClassDecode, false},
		{ErrorClassServer, true},
		{ErrorClassRateLimit, true},
		{ErrorClassNetwork, true},
		{"", false},
	}

	for _, tt := range tests {
		if got := shouldRetry(tt.class); got != tt.want {
			t.Errorf("shouldRetry(%q) = %v, want %v", tt.class, got, tt.want)
		}
	}
}
