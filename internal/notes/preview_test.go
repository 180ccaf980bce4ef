package notes

import "testing"

func TestPreview(t *testing.T) {
	tests := []struct {
		name    string
		content string
		max     int
		want    string
	}{
		{"empty", "", 40, ""},
		{"plain text", "just some text", 40, "just some text"},
		{"strips emphasis", "some *emphasized* and **bold** words", 40, "some emphasized and bold words"},
		{"strips heading marker", "# A heading\nbody", 40, "A heading body"},
		{"collapses newlines", "line one\n\nline two", 40, "line one line two"},
		{"keeps link text", "see [the docs](https://example.com) here", 40, "see the docs here"},
		{"code block marker", "intro\n\n```\nx := 1\n```", 40, "intro [code]"},
		{"truncates with ellipsis", "abcdefghij", 5, "abcd…"},
		{"exact length untouched", "abcde", 5, "abcde"},
		{"zero max means no limit", "abcdefghij", 0, "abcdefghij"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Preview(tt.content, tt.max)
			if got != tt.want {
				t.Errorf("Preview(%q, %d) = %q, want %q", tt.content, tt.max, got, tt.want)
			}
		})
	}
}

func TestPreviewTruncatesRunesNotBytes(t *testing.T) {
	got := Preview("éééééééééé", 5)
	if got != "éééé…" {
		t.Errorf("expected rune-aware truncation, got %q", got)
	}
}
