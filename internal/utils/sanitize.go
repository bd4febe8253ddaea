package utils

import (
	"regexp"
	"strings"
)

const defaultMaxInputLen = 200

var (
	// Characters that could break out of prompt templates or smuggle
	// markup into the model input.
	unsafeChars = regexp.MustCompile("[<>{}\\[\\]`]")

	// Whole words commonly used in prompt-injection attempts. Matched
	// case-insensitively on word boundaries.
	injectionWords = regexp.MustCompile(`(?i)\b(ignore|forget|disregard|override|instead|pretend|imagine|roleplay|jailbreak)\b`)
)

// SanitizeText cleans free-text user input before it is embedded into a
// prompt. Non-string input (nil, numbers, objects) yields "". The result
// is at most maxLen characters (default 200 when maxLen <= 0).
//
// The steps run in a fixed order: truncate, strip unsafe characters,
// remove injection words, trim. Truncation must happen before the regex
// substitutions so a filtered word split by the length cap is not
// reassembled.
func SanitizeText(input interface{}, maxLen int) string {
	s, ok := input.(string)
	if !ok {
		return ""
	}
	if maxLen <= 0 {
		maxLen = defaultMaxInputLen
	}

	if runes := []rune(s); len(runes) > maxLen {
		s = string(runes[:maxLen])
	}

	s = unsafeChars.ReplaceAllString(s, "")
	// Removed tokens leave their surrounding whitespace behind; only the
	// ends are trimmed.
	s = injectionWords.ReplaceAllString(s, "")

	return strings.TrimSpace(s)
}
