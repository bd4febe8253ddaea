package utils

import (
	"strings"
	"testing"
)

func TestSanitizeTextNonString(t *testing.T) {
	if got := SanitizeText(nil, 200); got != "" {
		t.Errorf("nil input: got %q, want empty", got)
	}
	if got := SanitizeText(42, 200); got != "" {
		t.Errorf("int input: got %q, want empty", got)
	}
	if got := SanitizeText(map[string]interface{}{"a": 1}, 200); got != "" {
		t.Errorf("object input: got %q, want empty", got)
	}
	if got := SanitizeText(true, 200); got != "" {
		t.Errorf("bool input: got %q, want empty", got)
	}
}

func TestSanitizeTextRemovesUnsafeCharsAndWords(t *testing.T) {
	got := SanitizeText("hello <script> ignore this", 200)

	for _, bad := range []string{"<", ">", "{", "}", "[", "]", "`"} {
		if strings.Contains(got, bad) {
			t.Errorf("result %q still contains %q", got, bad)
		}
	}
	if strings.Contains(strings.ToLower(got), "ignore") {
		t.Errorf("result %q still contains denylisted word", got)
	}
	if strings.HasPrefix(got, " ") || strings.HasSuffix(got, " ") {
		t.Errorf("result %q not trimmed", got)
	}
	t.Logf("sanitized: %q", got)
}

func TestSanitizeTextWordRemovalIsCaseInsensitive(t *testing.T) {
	got := SanitizeText("please IGNORE previous and Pretend otherwise", 200)
	lower := strings.ToLower(got)
	if strings.Contains(lower, "ignore") || strings.Contains(lower, "pretend") {
		t.Errorf("case-insensitive removal failed: %q", got)
	}
}

func TestSanitizeTextWholeWordBoundary(t *testing.T) {
	// "ignored" contains a denylist entry but is a different word and
	// must survive.
	got := SanitizeText("the ignored flag", 200)
	if !strings.Contains(got, "ignored") {
		t.Errorf("partial word wrongly removed: %q", got)
	}
}

func TestSanitizeTextLengthBound(t *testing.T) {
	long := strings.Repeat("a", 500)
	for _, n := range []int{1, 10, 200, 499} {
		got := SanitizeText(long, n)
		if len([]rune(got)) > n {
			t.Errorf("maxLen %d: result length %d exceeds bound", n, len([]rune(got)))
		}
	}
}

func TestSanitizeTextDefaultLength(t *testing.T) {
	long := strings.Repeat("b", 500)
	got := SanitizeText(long, 0)
	if len([]rune(got)) != 200 {
		t.Errorf("default cap: got length %d, want 200", len([]rune(got)))
	}
}

func TestSanitizeTextTruncatesBeforeFiltering(t *testing.T) {
	// Truncation runs first, so a denylisted word cut mid-token by the
	// cap no longer matches and survives as a fragment.
	got := SanitizeText("ignore", 4)
	if got != "igno" {
		t.Errorf("got %q, want %q", got, "igno")
	}

	// A word fully inside the cap is still removed.
	got = SanitizeText("ignore me", 6)
	if got != "" {
		t.Errorf("word inside cap should be removed: got %q", got)
	}
}

func TestSanitizeTextKeepsPunctuationAndUnicode(t *testing.T) {
	in := "Café \"deluxe\" — 50% off!"
	got := SanitizeText(in, 200)
	if got != in {
		t.Errorf("got %q, want input unchanged %q", got, in)
	}
}

func TestSanitizeTextNoWhitespaceCollapse(t *testing.T) {
	// Removing a token leaves the surrounding spaces in place.
	got := SanitizeText("a ignore b", 200)
	if got != "a  b" {
		t.Errorf("got %q, want %q", got, "a  b")
	}
}
