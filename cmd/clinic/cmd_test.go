// ABOUTME: Tests for CLI helper functions.
// ABOUTME: Covers time parsing, id parsing, and text formatting.
package main

import (
	"testing"
	"time"
)

func TestParseTime(t *testing.T) {
	tests := []struct {
		input string
		want  time.Time
	}{
		{"2024-12-14 07:30", time.Date(2024, 12, 14, 7, 30, 0, 0, time.Local)},
		{"2024-12-14T07:30", time.Date(2024, 12, 14, 7, 30, 0, 0, time.Local)},
		{"2024-12-14", time.Date(2024, 12, 14, 0, 0, 0, 0, time.Local)},
	}
	for _, tt := range tests {
		got, err := parseTime(tt.input)
		if err != nil {
			t.Errorf("parseTime(%q) returned error: %v", tt.input, err)
			continue
		}
		if !got.Equal(tt.want) {
			t.Errorf("parseTime(%q) = %v, want %v", tt.input, got, tt.want)
		}
	}
}

func TestParseTimeInvalid(t *testing.T) {
	for _, input := range []string{"", "yesterday", "14/12/2024"} {
		if _, err := parseTime(input); err == nil {
			t.Errorf("parseTime(%q) should fail", input)
		}
	}
}

func TestParseID(t *testing.T) {
	if id, err := parseID("42"); err != nil || id != 42 {
		t.Errorf("parseID(42) = %d, %v", id, err)
	}
	for _, input := range []string{"0", "-1", "abc", ""} {
		if _, err := parseID(input); err == nil {
			t.Errorf("parseID(%q) should fail", input)
		}
	}
}

func TestTruncate(t *testing.T) {
	if got := truncate("short", 10); got != "short" {
		t.Errorf("truncate(short, 10) = %q", got)
	}
	if got := truncate("a very long complaint text", 10); got != "a very ..." {
		t.Errorf("truncate long = %q", got)
	}
}

func TestPadRight(t *testing.T) {
	if got := padRight("ab", 5); got != "ab   " {
		t.Errorf("padRight(ab, 5) = %q", got)
	}
	if got := padRight("abcdef", 3); got != "abcdef" {
		t.Errorf("padRight(abcdef, 3) = %q", got)
	}
}
