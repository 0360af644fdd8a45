package statuswatch

import (
	"testing"
	"time"
)

func TestNewTarget_Valid(t *testing.T) {
	target, err := NewTarget("API", "https://api.example.com/health")
	if err != nil {
		t.Fatalf("NewTarget() error = %v", err)
	}

	if target.Name() != "API" {
		t.Errorf("Name() = %v, want %v", target.Name(), "API")
	}
	if target.URL() != "https://api.example.com/health" {
		t.Errorf("URL() = %v, want %v", target.URL(), "https://api.example.com/health")
	}
	if target.Timeout() != 0 {
		t.Errorf("Timeout() = %v, want 0 (global default applies)", target.Timeout())
	}
}

func TestNewTarget_EmptyName(t *testing.T) {
	_, err := NewTarget("", "https://example.com")
	if err == nil {
		t.Error("NewTarget() expected error for empty name, got nil")
	}
}

func TestNewTarget_InvalidURL(t *testing.T) {
	tests := []struct {
		name   string
		rawURL string
	}{
		{"no scheme", "example.com"},
		{"bad scheme", "ftp://example.com"},
		{"no host", "https://"},
		{"garbage", "://nope"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := NewTarget("T", tt.rawURL); err == nil {
				t.Errorf("NewTarget(%q) expected error, got nil", tt.rawURL)
			}
		})
	}
}

func TestWithTargetTimeout(t *testing.T) {
	target, err := NewTarget("Slow", "https://slow.example.com",
		WithTargetTimeout(3*time.Second),
	)
	if err != nil {
		t.Fatalf("NewTarget() error = %v", err)
	}

	if target.Timeout() != 3*time.Second {
		t.Errorf("Timeout() = %v, want %v", target.Timeout(), 3*time.Second)
	}
}

func TestWithTargetTimeout_Invalid(t *testing.T) {
	if _, err := NewTarget("T", "https://example.com", WithTargetTimeout(0)); err == nil {
		t.Error("NewTarget() expected error for zero timeout, got nil")
	}
	if _, err := NewTarget("T", "https://example.com", WithTargetTimeout(-time.Second)); err == nil {
		t.Error("NewTarget() expected error for negative timeout, got nil")
	}
}
