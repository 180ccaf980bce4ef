package notes

import (
	"strings"
	"testing"
)

func TestValidateTitle(t *testing.T) {
	tests := []struct {
		name    string
		title   string
		wantErr string
	}{
		{"empty", "", "Title must be at least 3 characters long"},
		{"two chars", "ab", "Title must be at least 3 characters long"},
		{"three chars is valid", "abc", ""},
		{"fifty chars is valid", strings.Repeat("a", 50), ""},
		{"fifty-one chars", strings.Repeat("a", 51), "Title must be at most 50 characters long"},
		{"way too long", strings.Repeat("a", 500), "Title must be at most 50 characters long"},
		{"multibyte runes count as one", "äöü", ""},
		{"two multibyte runes", "äö", "Title must be at least 3 characters long"},
		{"fifty multibyte runes", strings.Repeat("ü", 50), ""},
		{"fifty-one multibyte runes", strings.Repeat("ü", 51), "Title must be at most 50 characters long"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateTitle(tt.title)
			if tt.wantErr == "" {
				if err != nil {
					t.Errorf("expected valid, got %q", err)
				}
				return
			}
			if err == nil {
				t.Fatalf("expected %q, got nil", tt.wantErr)
			}
			if err.Error() != tt.wantErr {
				t.Errorf("expected %q, got %q", tt.wantErr, err)
			}
		})
	}
}

func TestValidateContent(t *testing.T) {
	tests := []struct {
		name    string
		content string
		wantErr string
	}{
		{"empty is valid", "", ""},
		{"short", "hello", ""},
		{"hundred-twenty chars is valid", strings.Repeat("x", 120), ""},
		{"hundred-twenty-one chars", strings.Repeat("x", 121), "Text must be at most 120 characters long"},
		{"hundred-twenty multibyte runes", strings.Repeat("é", 120), ""},
		{"hundred-twenty-one multibyte runes", strings.Repeat("é", 121), "Text must be at most 120 characters long"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateContent(tt.content)
			if tt.wantErr == "" {
				if err != nil {
					t.Errorf("expected valid, got %q", err)
				}
				return
			}
			if err == nil {
				t.Fatalf("expected %q, got nil", tt.wantErr)
			}
			if err.Error() != tt.wantErr {
				t.Errorf("expected %q, got %q", tt.wantErr, err)
			}
		})
	}
}

func TestValidatorsAreDeterministic(t *testing.T) {
	for i := 0; i < 3; i++ {
		if err := ValidateTitle("ab"); err == nil {
			t.Fatal("expected violation on every call")
		}
		if err := ValidateTitle("abc"); err != nil {
			t.Fatalf("expected valid on every call, got %v", err)
		}
	}
}
