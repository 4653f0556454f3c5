package util

import "testing"

func TestSanitizeTextRemovesNulAndControls(t *testing.T) {
	in := "ab\x00cd\x01\x02\n\txy"
	out := SanitizeText(in)
	if out != "abcd\n\txy" {
		t.Fatalf("unexpected sanitized output: %q", out)
	}
}

func TestTruncateRunes(t *testing.T) {
	if got := TruncateRunes("hello", 10); got != "hello" {
		t.Fatalf("short input changed: %q", got)
	}
	if got := TruncateRunes("hello", 2); got != "he" {
		t.Fatalf("unexpected truncation: %q", got)
	}
	if got := TruncateRunes("héllo", 2); got != "hé" {
		t.Fatalf("rune-unsafe truncation: %q", got)
	}
	if got := TruncateRunes("hello", 0); got != "" {
		t.Fatalf("expected empty string, got %q", got)
	}
}
